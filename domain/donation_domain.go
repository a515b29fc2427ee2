package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation     = "donation added successfully"
	MessageSuccessGetDonations       = "donations retrieved successfully"
	MessageSuccessGetNearbyDonations = "nearby donations retrieved successfully"
	MessageSuccessAcceptDonation     = "donation accepted successfully"

	MessageFailedCreateDonation     = "failed to add donation"
	MessageFailedGetDonations       = "failed to retrieve donations"
	MessageFailedGetNearbyDonations = "failed to retrieve nearby donations"
	MessageFailedAcceptDonation     = "failed to accept donation"

	ErrDonationNotFound = errors.New("donation not found")
	// ErrDonationAlreadyClaimed is returned whenever the conditional claim
	// update touches no row. A missing donation and an already-accepted one
	// are indistinguishable to the caller.
	ErrDonationAlreadyClaimed = errors.New("donation already accepted by another NGO")
)

type (
	CreateDonationRequest struct {
		DonorID     string                `form:"donor_id" validate:"required,uuid"`
		ItemName    string                `form:"item_name" validate:"required"`
		Quantity    int                   `form:"quantity" validate:"required,min=1"`
		Description string                `form:"description" validate:"omitempty"`
		Address     string                `form:"address" validate:"required"`
		City        string                `form:"city" validate:"required"`
		Pincode     string                `form:"pincode" validate:"required"`
		Photo       *multipart.FileHeader `form:"photo" json:"-"`
	}

	AcceptDonationRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		NgoID      string `json:"ngo_id" validate:"required,uuid"`
	}

	Donation struct {
		ID          string    `json:"id"`
		DonorID     string    `json:"donor_id"`
		ItemName    string    `json:"item_name"`
		Quantity    int       `json:"quantity"`
		Description string    `json:"description,omitempty"`
		Photo       string    `json:"photo,omitempty"`
		Address     string    `json:"address"`
		City        string    `json:"city"`
		Pincode     string    `json:"pincode"`
		Status      string    `json:"status"`
		NgoID       string    `json:"ngo_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`

		// Enrichment fields, filled depending on the listing.
		DonorName  string `json:"donor_name,omitempty"`
		DonorEmail string `json:"donor_email,omitempty"`
		DonorPhone string `json:"donor_phone,omitempty"`
		NgoName    string `json:"ngo_name,omitempty"`
		NgoEmail   string `json:"ngo_email,omitempty"`
		NgoPhone   string `json:"ngo_phone,omitempty"`
	}
)
