package handlers

import (
	"DonorLink/domain"
	"DonorLink/internal/api/presenters"
	"DonorLink/pkg/account"
	"DonorLink/pkg/jwt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Verify(c *fiber.Ctx) error
	}

	accountHandler struct {
		accountService account.AccountService
		validator      *validator.Validate
		jwtService     jwt.JWTService
	}
)

func NewAccountHandler(accountService account.AccountService, validator *validator.Validate, jwtService jwt.JWTService) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		validator:      validator,
		jwtService:     jwtService,
	}
}

func (h *accountHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	if err := h.accountService.Register(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"message": strings.ToUpper(req.Type) + " registered successfully",
	}, fiber.StatusOK, domain.MessageSuccessRegister)
}

func (h *accountHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.accountService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *accountHandler) Verify(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedVerify, domain.ErrTokenNotFound)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	userID, role, err := h.jwtService.GetUserIDByToken(token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedVerify, err)
	}

	return presenters.SuccessResponse(c, domain.VerifyResponse{
		Valid: true,
		User:  domain.VerifiedUser{ID: userID, Role: role},
	}, fiber.StatusOK, domain.MessageSuccessVerify)
}
