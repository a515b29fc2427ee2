package handlers

import (
	"DonorLink/domain"
	"DonorLink/internal/api/presenters"
	"DonorLink/internal/utils/storage"
	"DonorLink/pkg/donation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonorDonations(c *fiber.Ctx) error
		GetNearbyDonations(c *fiber.Ctx) error
		AcceptDonation(c *fiber.Ctx) error
		GetNgoDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Photo is optional.
	req.Photo, _ = c.FormFile("photo")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	created, err := h.donationService.CreateDonation(c.Context(), *req)
	if err != nil {
		// Bad input stays a 400; failures writing the photo or inserting
		// the record are server-side and surface as 500.
		if errors.Is(err, domain.ErrParseUUID) || errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusOK, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonorDonations(c *fiber.Ctx) error {
	donorID := c.Params("donor_id")
	if donorID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrParseUUID)
	}

	donations, err := h.donationService.GetDonorDonations(c.Context(), donorID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetNearbyDonations(c *fiber.Ctx) error {
	pincode := c.Params("pincode")
	if pincode == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrDonationNotFound)
	}

	donations, err := h.donationService.GetNearbyDonations(c.Context(), pincode)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNearbyDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetNearbyDonations)
}

func (h *donationHandler) AcceptDonation(c *fiber.Ctx) error {
	req := new(domain.AcceptDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptDonation, err)
	}

	if err := h.donationService.AcceptDonation(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrDonationAlreadyClaimed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptDonation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAcceptDonation, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"message": domain.MessageSuccessAcceptDonation,
	}, fiber.StatusOK, domain.MessageSuccessAcceptDonation)
}

func (h *donationHandler) GetNgoDonations(c *fiber.Ctx) error {
	ngoID := c.Params("ngo_id")
	if ngoID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrParseUUID)
	}

	donations, err := h.donationService.GetNgoAcceptedDonations(c.Context(), ngoID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
