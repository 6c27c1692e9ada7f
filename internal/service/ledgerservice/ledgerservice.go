package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

// UnitPrice is charged per issued unit, in INR.
var UnitPrice = decimal.NewFromInt(500)

const recentTransactions = 5

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidUnits        = errors.New("units must be at least 1")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type InsufficientStockError struct {
	BloodGroup string
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s! Only %d available.", e.BloodGroup, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type StockRepo interface {
	FindAll(ctx context.Context) ([]domain.BloodStock, error)
	FindByGroup(ctx context.Context, bloodGroup string) (*domain.BloodStock, error)
	Decrement(ctx context.Context, bloodGroup string, units int) (remaining int, ok bool, err error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Transaction, error)
}

type DonorRepo interface {
	FindAll(ctx context.Context) ([]domain.Donor, error)
}

type IssueInput struct {
	Patient    string
	Hospital   string
	BloodGroup string
	Units      int
	UTR        string
}

type Dashboard struct {
	Stock        []domain.BloodStock
	Donors       []domain.Donor
	Transactions []domain.Transaction
}

type Service struct {
	stockRepo       StockRepo
	transactionRepo TransactionRepo
	donorRepo       DonorRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(stockRepo StockRepo, transactionRepo TransactionRepo, donorRepo DonorRepo, txManager pg.TXManager) *Service {
	return &Service{
		stockRepo:       stockRepo,
		transactionRepo: transactionRepo,
		donorRepo:       donorRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

// IssueBlood takes units out of stock and records a paid transaction. The
// decrement is a single conditional UPDATE, so two concurrent issuances can
// never drive the balance below zero.
func (s *Service) IssueBlood(ctx context.Context, in IssueInput) (*domain.Transaction, error) {
	if in.Units < 1 {
		return nil, ErrInvalidUnits
	}
	total, _ := UnitPrice.Mul(decimal.NewFromInt(int64(in.Units))).Float64()

	var issued *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, ok, err := s.stockRepo.Decrement(ctx, in.BloodGroup, in.Units)
		if err != nil {
			return err
		}
		if !ok {
			available := 0
			stock, err := s.stockRepo.FindByGroup(ctx, in.BloodGroup)
			if err != nil {
				return err
			}
			if stock != nil {
				available = stock.Units
			}
			return &InsufficientStockError{BloodGroup: in.BloodGroup, Requested: in.Units, Available: available}
		}

		t := &domain.Transaction{
			PatientName:   in.Patient,
			HospitalName:  in.Hospital,
			BloodGroup:    in.BloodGroup,
			Units:         in.Units,
			TotalAmount:   total,
			Date:          s.now(),
			PaymentStatus: domain.PaymentPaid,
		}
		if in.UTR != "" {
			utr := in.UTR
			t.UTRNumber = &utr
		}
		issued, err = s.transactionRepo.Create(ctx, t)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			zap.L().Info("issuance refused", zap.String("blood_group", in.BloodGroup), zap.Int("units", in.Units))
			return nil, err
		}
		zap.L().Error("failed to issue blood", zap.Error(err))
		return nil, err
	}

	zap.L().Info("blood issued",
		zap.Int("transaction_id", issued.ID),
		zap.String("blood_group", issued.BloodGroup),
		zap.Int("units", issued.Units),
	)
	return issued, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stock, err := s.stockRepo.FindAll(ctx)
		d.Stock = stock
		return err
	})
	g.Go(func() error {
		donors, err := s.donorRepo.FindAll(ctx)
		d.Donors = donors
		return err
	})
	g.Go(func() error {
		transactions, err := s.transactionRepo.FindLatest(ctx, recentTransactions)
		d.Transactions = transactions
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load dashboard", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (s *Service) ListStock(ctx context.Context) ([]domain.BloodStock, error) {
	return s.stockRepo.FindAll(ctx)
}

// ListTransactions returns the whole ledger, newest first.
func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.FindLatest(ctx, 0)
}

func (s *Service) GetTransaction(ctx context.Context, id int) (*domain.Transaction, error) {
	t, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}
