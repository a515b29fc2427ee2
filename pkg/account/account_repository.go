package account

import (
	"DonorLink/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// AccountRepository is implemented once per account table. The two
	// implementations carry fixed table models so a role can never select a
	// table by string.
	AccountRepository interface {
		Create(ctx context.Context, account *entities.Account) error
		EmailExists(ctx context.Context, email string) (bool, error)
		GetByEmail(ctx context.Context, email string) (*entities.Account, error)
		GetByID(ctx context.Context, id string) (*entities.Account, error)
	}

	donorRepository struct {
		db *gorm.DB
	}

	ngoRepository struct {
		db *gorm.DB
	}
)

func NewDonorRepository(db *gorm.DB) AccountRepository {
	return &donorRepository{db: db}
}

func NewNgoRepository(db *gorm.DB) AccountRepository {
	return &ngoRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, account *entities.Account) error {
	return r.db.WithContext(ctx).Create(&entities.Donor{Account: *account}).Error
}

func (r *donorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donor{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *donorRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor.Account, nil
}

func (r *donorRepository) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor.Account, nil
}

func (r *ngoRepository) Create(ctx context.Context, account *entities.Account) error {
	return r.db.WithContext(ctx).Create(&entities.Ngo{Account: *account}).Error
}

func (r *ngoRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ngo{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ngoRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var ngo entities.Ngo
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo.Account, nil
}

func (r *ngoRepository) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	var ngo entities.Ngo
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo.Account, nil
}

// IsNotFound reports whether err is the repository's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
