package entities

import (
	"github.com/google/uuid"
)

// Account holds the fields shared by both account tables. Donors and NGOs
// live in disjoint tables with identical shape; email is unique within its
// own table only.
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `json:"phone"`
	City     string    `json:"city"`
	Pincode  string    `gorm:"index" json:"pincode"`
}

type Donor struct {
	Account

	Donations []*Donation `gorm:"foreignKey:DonorID" json:"-"`
	Timestamp
}

type Ngo struct {
	Account

	AcceptedDonations []*Donation `gorm:"foreignKey:NgoID" json:"-"`
	Timestamp
}
