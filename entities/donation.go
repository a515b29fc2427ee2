package entities

import (
	"github.com/google/uuid"
)

const (
	DonationStatusPending  = "Pending"
	DonationStatusAccepted = "Accepted"
)

type Donation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DonorID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"donor_id"`
	ItemName    string     `gorm:"not null" json:"item_name"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	Description string     `json:"description"`
	Photo       string     `json:"photo,omitempty"`
	Address     string     `gorm:"not null" json:"address"`
	City        string     `gorm:"not null" json:"city"`
	Pincode     string     `gorm:"index;not null" json:"pincode"`
	Status      string     `gorm:"not null;default:Pending" json:"status"` // Pending or Accepted
	NgoID       *uuid.UUID `gorm:"type:uuid;index" json:"ngo_id,omitempty"`

	Donor *Donor `gorm:"foreignKey:DonorID" json:"-"`
	Ngo   *Ngo   `gorm:"foreignKey:NgoID" json:"-"`
	Timestamp
}
