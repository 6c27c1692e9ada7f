package donorservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=donorservice.go -destination=mock_donorservice.go -package=donorservice

var ErrDonorNotFound = errors.New("donor not found")

type DonorRepo interface {
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	FindByID(ctx context.Context, id int) (*domain.Donor, error)
	FindAll(ctx context.Context) ([]domain.Donor, error)
	UpdateLastDonation(ctx context.Context, id int, date time.Time) error
	Delete(ctx context.Context, id int) (bool, error)
}

type StockRepo interface {
	EnsureGroup(ctx context.Context, bloodGroup string) error
	Increment(ctx context.Context, bloodGroup string, units int) (bool, error)
}

type Service struct {
	donorRepo DonorRepo
	stockRepo StockRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(donorRepo DonorRepo, stockRepo StockRepo, txManager pg.TXManager) *Service {
	return &Service{
		donorRepo: donorRepo,
		stockRepo: stockRepo,
		txManager: txManager,
		now:       time.Now,
	}
}

// AddDonor registers a donor and opens an empty stock row for a blood group
// the bank has not seen before.
func (s *Service) AddDonor(ctx context.Context, name, bloodGroup, phone string) (*domain.Donor, error) {
	var donor *domain.Donor
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		donor, err = s.donorRepo.Create(ctx, &domain.Donor{Name: name, BloodGroup: bloodGroup, Phone: phone})
		if err != nil {
			return err
		}
		return s.stockRepo.EnsureGroup(ctx, bloodGroup)
	})
	if err != nil {
		zap.L().Error("failed to add donor", zap.Error(err))
		return nil, err
	}
	zap.L().Info("donor added", zap.Int("donor_id", donor.ID), zap.String("blood_group", bloodGroup))
	return donor, nil
}

// RecordDonation adds one unit to the donor's group and stamps today's date.
// It returns nil, nil when the donor or the stock row does not exist.
func (s *Service) RecordDonation(ctx context.Context, donorID int) (*domain.Donor, error) {
	var recorded *domain.Donor
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		donor, err := s.donorRepo.FindByID(ctx, donorID)
		if err != nil || donor == nil {
			return err
		}
		found, err := s.stockRepo.Increment(ctx, donor.BloodGroup, 1)
		if err != nil || !found {
			return err
		}
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if err := s.donorRepo.UpdateLastDonation(ctx, donor.ID, today); err != nil {
			return err
		}
		donor.LastDonationDate = &today
		recorded = donor
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record donation", zap.Int("donor_id", donorID), zap.Error(err))
		return nil, err
	}
	return recorded, nil
}

func (s *Service) DeleteDonor(ctx context.Context, donorID int) error {
	deleted, err := s.donorRepo.Delete(ctx, donorID)
	if err != nil {
		zap.L().Error("failed to delete donor", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrDonorNotFound
	}
	return nil
}

func (s *Service) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	return s.donorRepo.FindAll(ctx)
}
