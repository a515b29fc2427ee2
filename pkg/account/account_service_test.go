package account

import (
	"DonorLink/domain"
	"DonorLink/entities"
	"DonorLink/pkg/jwt"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) AccountService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.Donor{}, &entities.Ngo{}))

	return NewAccountService(NewDonorRepository(db), NewNgoRepository(db), jwt.NewJWTService())
}

func registerRequest(role string) domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "9876543210",
		City:            "Bengaluru",
		Pincode:         "560001",
		Type:            role,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, registerRequest("donor")))

	res, err := service.Login(ctx, domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Type:     "donor",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Asha Rao", res.User.Name)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.Equal(t, "donor", res.User.UserType)
	assert.NotEmpty(t, res.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, registerRequest("donor")))

	err := service.Register(ctx, registerRequest("donor"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)

	// The collections are disjoint: the same email is free on the NGO side.
	require.NoError(t, service.Register(ctx, registerRequest("ngo")))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, registerRequest("donor")))

	// Wrong password.
	_, err := service.Login(ctx, domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
		Type:     "donor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown email surfaces the very same error.
	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
		Type:     "donor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Right credentials against the wrong role's collection also fail.
	_, err = service.Login(ctx, domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Type:     "ngo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Type:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
