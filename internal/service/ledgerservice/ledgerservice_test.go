package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var issuedAt = time.Date(2024, 6, 14, 9, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockStockRepo, *MockTransactionRepo, *MockDonorRepo) {
	ctrl := gomock.NewController(t)
	stockRepo := NewMockStockRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	donorRepo := NewMockDonorRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(stockRepo, transactionRepo, donorRepo, txManager)
	service.now = func() time.Time { return issuedAt }
	return service, stockRepo, transactionRepo, donorRepo
}

func TestIssueBlood(t *testing.T) {
	service, stockRepo, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		input         IssueInput
		prepareMock   func()
		expectedTotal float64
		expectedError error
		check         func(t *testing.T, err error)
	}{
		{
			name:  "Enough stock",
			input: IssueInput{Patient: "P", Hospital: "City", BloodGroup: "O+", Units: 2, UTR: "UTR1"},
			prepareMock: func() {
				stockRepo.EXPECT().Decrement(ctx, "O+", 2).Return(3, true, nil)
				transactionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, domain.PaymentPaid, tr.PaymentStatus)
					assert.Equal(t, issuedAt, tr.Date)
					assert.Equal(t, "UTR1", tr.UTR())
					tr.ID = 10
					return tr, nil
				})
			},
			expectedTotal: 1000,
		},
		{
			name:  "Without payment reference",
			input: IssueInput{Patient: "P", Hospital: "City", BloodGroup: "O+", Units: 1},
			prepareMock: func() {
				stockRepo.EXPECT().Decrement(ctx, "O+", 1).Return(0, true, nil)
				transactionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
					assert.Nil(t, tr.UTRNumber)
					tr.ID = 11
					return tr, nil
				})
			},
			expectedTotal: 500,
		},
		{
			name:  "Not enough stock",
			input: IssueInput{Patient: "P", Hospital: "City", BloodGroup: "A-", Units: 5},
			prepareMock: func() {
				stockRepo.EXPECT().Decrement(ctx, "A-", 5).Return(0, false, nil)
				stockRepo.EXPECT().FindByGroup(ctx, "A-").Return(&domain.BloodStock{BloodGroup: "A-", Units: 2}, nil)
			},
			expectedError: ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				var stockErr *InsufficientStockError
				assert.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 2, stockErr.Available)
				assert.Equal(t, 5, stockErr.Requested)
				assert.EqualError(t, err, "Insufficient stock for A-! Only 2 available.")
			},
		},
		{
			name:  "Unknown group",
			input: IssueInput{Patient: "P", Hospital: "City", BloodGroup: "O+", Units: 1},
			prepareMock: func() {
				stockRepo.EXPECT().Decrement(ctx, "O+", 1).Return(0, false, nil)
				stockRepo.EXPECT().FindByGroup(ctx, "O+").Return(nil, nil)
			},
			expectedError: ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "Insufficient stock for O+! Only 0 available.")
			},
		},
		{
			name:          "Zero units",
			input:         IssueInput{Patient: "P", Hospital: "City", BloodGroup: "O+", Units: 0},
			prepareMock:   func() {},
			expectedError: ErrInvalidUnits,
		},
		{
			name:  "Ledger write fails",
			input: IssueInput{Patient: "P", Hospital: "City", BloodGroup: "O+", Units: 1},
			prepareMock: func() {
				stockRepo.EXPECT().Decrement(ctx, "O+", 1).Return(0, true, nil)
				transactionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "database error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tr, err := service.IssueBlood(ctx, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
			if tt.expectedError == nil && tt.check == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, tr.TotalAmount)
				assert.Equal(t, tt.input.Units, tr.Units)
			} else {
				assert.Nil(t, tr)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	service, stockRepo, transactionRepo, donorRepo := NewMock(t)
	ctx := context.Background()

	stock := []domain.BloodStock{{ID: 1, BloodGroup: "O+", Units: 4}}
	donors := []domain.Donor{{ID: 1, Name: "A", BloodGroup: "O+"}}
	recent := []domain.Transaction{{ID: 2}, {ID: 1}}

	stockRepo.EXPECT().FindAll(gomock.Any()).Return(stock, nil)
	donorRepo.EXPECT().FindAll(gomock.Any()).Return(donors, nil)
	transactionRepo.EXPECT().FindLatest(gomock.Any(), 5).Return(recent, nil)

	d, err := service.Dashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &Dashboard{Stock: stock, Donors: donors, Transactions: recent}, d)

	stockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("database error"))
	donorRepo.EXPECT().FindAll(gomock.Any()).Return(donors, nil).AnyTimes()
	transactionRepo.EXPECT().FindLatest(gomock.Any(), 5).Return(recent, nil).AnyTimes()

	d, err = service.Dashboard(ctx)
	assert.EqualError(t, err, "database error")
	assert.Nil(t, d)
}

func TestListTransactions(t *testing.T) {
	service, _, transactionRepo, _ := NewMock(t)
	ctx := context.Background()
	all := []domain.Transaction{{ID: 3}, {ID: 2}, {ID: 1}}

	transactionRepo.EXPECT().FindLatest(ctx, 0).Return(all, nil)

	result, err := service.ListTransactions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, all, result)
}

func TestListStock(t *testing.T) {
	service, stockRepo, _, _ := NewMock(t)
	ctx := context.Background()

	stockRepo.EXPECT().FindAll(ctx).Return([]domain.BloodStock{{BloodGroup: "O+", Units: 1}}, nil)

	result, err := service.ListStock(ctx)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGetTransaction(t *testing.T) {
	service, _, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	transactionRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Transaction{ID: 1}, nil)
	transactionRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)

	tr, err := service.GetTransaction(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, tr.ID)

	_, err = service.GetTransaction(ctx, 2)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
