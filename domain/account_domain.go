package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessVerify   = "token verified"

	MessageFailedRegister = "registration failed"
	MessageFailedLogin    = "login failed"
	MessageFailedVerify   = "token verification failed"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
		Phone           string `json:"phone" validate:"required"`
		City            string `json:"city" validate:"required"`
		Pincode         string `json:"pincode" validate:"required"`
		Type            string `json:"type" validate:"required,oneof=donor ngo"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Type     string `json:"type" validate:"required,oneof=donor ngo"`
	}

	AccountResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		UserType string `json:"userType"`
	}

	LoginResponse struct {
		Token string          `json:"token"`
		User  AccountResponse `json:"user"`
	}

	VerifyResponse struct {
		Valid bool         `json:"valid"`
		User  VerifiedUser `json:"user"`
	}

	VerifiedUser struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
)
