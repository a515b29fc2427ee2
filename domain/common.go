package domain

import (
	"errors"
)

// Role selects which account table an operation targets. Donors and NGOs are
// disjoint collections; there is no shared user table.
type Role string

const (
	RoleDonor Role = "donor"
	RoleNgo   Role = "ngo"
)

func (r Role) Valid() bool {
	return r == RoleDonor || r == RoleNgo
}

var (
	MessageFailedBodyRequest  = "failed to process request"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrInvalidRole   = errors.New("invalid account role")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
