package donation

import (
	"DonorLink/domain"
	"DonorLink/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error)
		GetPendingDonationsByPincode(ctx context.Context, pincode string) ([]*entities.Donation, error)
		GetAcceptedDonationsByNgo(ctx context.Context, ngoID string) ([]*entities.Donation, error)
		AcceptDonation(ctx context.Context, donationID string, ngoID string) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Ngo").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Ngo").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetPendingDonationsByPincode(ctx context.Context, pincode string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("pincode = ? AND status = ?", pincode, entities.DonationStatusPending).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetAcceptedDonationsByNgo(ctx context.Context, ngoID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("ngo_id = ? AND status = ?", ngoID, entities.DonationStatusAccepted).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// AcceptDonation claims a donation for an NGO with a single conditional
// update. The status guard in the WHERE clause is what makes concurrent
// claims safe: the database serializes the two writes and only one of them
// can see status = Pending. A read-then-write check here would leave a race
// window where both claimers read Pending and both write.
//
// Zero affected rows means the donation was already claimed or never
// existed; the two cases are deliberately not distinguished.
func (r *donationRepository) AcceptDonation(ctx context.Context, donationID string, ngoID string) error {
	tx := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", donationID, entities.DonationStatusPending).
		Updates(map[string]interface{}{
			"status": entities.DonationStatusAccepted,
			"ngo_id": ngoID,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrDonationAlreadyClaimed
	}
	return nil
}
