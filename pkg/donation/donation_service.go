package donation

import (
	"DonorLink/domain"
	"DonorLink/entities"
	"DonorLink/internal/utils/mailing"
	"DonorLink/internal/utils/storage"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.Donation, error)
		GetDonorDonations(ctx context.Context, donorID string) ([]*domain.Donation, error)
		GetNearbyDonations(ctx context.Context, pincode string) ([]*domain.Donation, error)
		GetNgoAcceptedDonations(ctx context.Context, ngoID string) ([]*domain.Donation, error)
		AcceptDonation(ctx context.Context, req domain.AcceptDonationRequest) error
	}

	donationService struct {
		donationRepository DonationRepository
		store              storage.Storage
		mailer             mailing.Mailer
	}
)

func NewDonationService(donationRepository DonationRepository, store storage.Storage, mailer mailing.Mailer) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		store:              store,
		mailer:             mailer,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.Donation, error) {
	donorUUID, err := uuid.Parse(req.DonorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := uuid.New()

	// Photo write happens before the insert; if the insert fails the stored
	// file is not cleaned up.
	var photoRef string
	if req.Photo != nil {
		objectKey, err := s.store.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.Photo,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		photoRef = s.store.GetPublicLinkKey(objectKey)
	}

	donation := &entities.Donation{
		ID:          donationID,
		DonorID:     donorUUID,
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Description: req.Description,
		Photo:       photoRef,
		Address:     req.Address,
		City:        req.City,
		Pincode:     req.Pincode,
		Status:      entities.DonationStatusPending,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDomainDonation(donation), nil
}

func (s *donationService) GetDonorDonations(ctx context.Context, donorID string) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetDonationsByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		d := toDomainDonation(donation)
		if donation.Ngo != nil {
			d.NgoName = donation.Ngo.Name
			d.NgoEmail = donation.Ngo.Email
			d.NgoPhone = donation.Ngo.Phone
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *donationService) GetNearbyDonations(ctx context.Context, pincode string) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetPendingDonationsByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		d := toDomainDonation(donation)
		if donation.Donor != nil {
			d.DonorName = donation.Donor.Name
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *donationService) GetNgoAcceptedDonations(ctx context.Context, ngoID string) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetAcceptedDonationsByNgo(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		d := toDomainDonation(donation)
		if donation.Donor != nil {
			d.DonorName = donation.Donor.Name
			d.DonorEmail = donation.Donor.Email
			d.DonorPhone = donation.Donor.Phone
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *donationService) AcceptDonation(ctx context.Context, req domain.AcceptDonationRequest) error {
	if _, err := uuid.Parse(req.NgoID); err != nil {
		return domain.ErrParseUUID
	}

	if err := s.donationRepository.AcceptDonation(ctx, req.DonationID, req.NgoID); err != nil {
		return err
	}

	s.notifyDonor(ctx, req.DonationID)
	return nil
}

// notifyDonor emails the donor after a successful claim. Best effort: the
// claim already happened, so failures are logged and never surfaced.
func (s *donationService) notifyDonor(ctx context.Context, donationID string) {
	if s.mailer == nil {
		return
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil || donation.Donor == nil || donation.Ngo == nil {
		log.Printf("skipping acceptance mail for donation %s: %v", donationID, err)
		return
	}

	subject := "Your donation has been accepted"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your donation <b>%s</b> has been accepted by <b>%s</b>. They will reach out on %s to arrange the pickup.</p>",
		donation.Donor.Name, donation.ItemName, donation.Ngo.Name, donation.Ngo.Phone,
	)
	if err := s.mailer.Send(donation.Donor.Email, subject, body); err != nil {
		log.Printf("failed to send acceptance mail for donation %s: %v", donationID, err)
	}
}

func toDomainDonation(donation *entities.Donation) *domain.Donation {
	d := &domain.Donation{
		ID:          donation.ID.String(),
		DonorID:     donation.DonorID.String(),
		ItemName:    donation.ItemName,
		Quantity:    donation.Quantity,
		Description: donation.Description,
		Photo:       donation.Photo,
		Address:     donation.Address,
		City:        donation.City,
		Pincode:     donation.Pincode,
		Status:      donation.Status,
		CreatedAt:   donation.CreatedAt,
	}
	if donation.NgoID != nil {
		d.NgoID = donation.NgoID.String()
	}
	return d
}
