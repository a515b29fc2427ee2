package account

import (
	"DonorLink/domain"
	"DonorLink/entities"
	"DonorLink/pkg/jwt"
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	AccountService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	}

	accountService struct {
		donorRepository AccountRepository
		ngoRepository   AccountRepository
		jwtService      jwt.JWTService
	}
)

func NewAccountService(donorRepository, ngoRepository AccountRepository, jwtService jwt.JWTService) AccountService {
	return &accountService{
		donorRepository: donorRepository,
		ngoRepository:   ngoRepository,
		jwtService:      jwtService,
	}
}

func (s *accountService) repositoryFor(role domain.Role) (AccountRepository, error) {
	switch role {
	case domain.RoleDonor:
		return s.donorRepository, nil
	case domain.RoleNgo:
		return s.ngoRepository, nil
	default:
		return nil, domain.ErrInvalidRole
	}
}

func (s *accountService) Register(ctx context.Context, req domain.RegisterRequest) error {
	repository, err := s.repositoryFor(domain.Role(req.Type))
	if err != nil {
		return err
	}

	exists, err := repository.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &entities.Account{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		City:     req.City,
		Pincode:  req.Pincode,
	}

	return repository.Create(ctx, account)
}

func (s *accountService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	repository, err := s.repositoryFor(domain.Role(req.Type))
	if err != nil {
		return nil, err
	}

	account, err := repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(account.ID.String(), req.Type)

	return &domain.LoginResponse{
		Token: token,
		User: domain.AccountResponse{
			ID:       account.ID.String(),
			Name:     account.Name,
			Email:    account.Email,
			UserType: req.Type,
		},
	}, nil
}
