//go:build integration

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/config"
	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/GlebRadaev/bloodbank/internal/repo"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/internal/service/ledgerservice"
	"github.com/GlebRadaev/bloodbank/pkg/mailer"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type IntegrationSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	services  *Services
}

func TestIntegration(t *testing.T) {
	suite.Run(t, &IntegrationSuite{})
}

func (s *IntegrationSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("bloodbank"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = pg.NewPool(ctx, dsn)
	s.Require().NoError(err)
	s.Require().NoError(pg.RunMigrations(ctx, s.pool))

	notifier, err := mailer.New(mailer.LogSender{}, "test@bloodbank.local")
	s.Require().NoError(err)

	repos := repo.New(s.pool, pg.NewTXManager(s.pool))
	s.services = New(repos, &config.Config{SecretKey: "secret", BaseURL: "http://localhost:8080"}, notifier)
}

func (s *IntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *IntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		"TRUNCATE users, donors, blood_stock, transactions RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *IntegrationSuite) stock(group string) int {
	stock, err := s.services.LedgerService.ListStock(context.Background())
	s.Require().NoError(err)
	for _, row := range stock {
		if row.BloodGroup == group {
			return row.Units
		}
	}
	return -1
}

func (s *IntegrationSuite) TestDonateAndIssue() {
	ctx := context.Background()

	donor, err := s.services.DonorService.AddDonor(ctx, "A", "O+", "555")
	s.Require().NoError(err)
	s.Equal(0, s.stock("O+"))

	donated, err := s.services.DonorService.RecordDonation(ctx, donor.ID)
	s.Require().NoError(err)
	s.Require().NotNil(donated)
	s.Equal(1, s.stock("O+"))

	donors, err := s.services.DonorService.ListDonors(ctx)
	s.Require().NoError(err)
	s.Require().Len(donors, 1)
	s.Require().NotNil(donors[0].LastDonationDate)
	s.Equal(time.Now().Format("2006-01-02"), donors[0].LastDonationDate.Format("2006-01-02"))

	issued, err := s.services.LedgerService.IssueBlood(ctx, ledgerservice.IssueInput{
		Patient:    "P",
		Hospital:   "City",
		BloodGroup: "O+",
		Units:      1,
	})
	s.Require().NoError(err)
	s.Equal(500.0, issued.TotalAmount)
	s.Equal(domain.PaymentPaid, issued.PaymentStatus)
	s.Equal(0, s.stock("O+"))

	transactions, err := s.services.LedgerService.ListTransactions(ctx)
	s.Require().NoError(err)
	s.Len(transactions, 1)
}

func (s *IntegrationSuite) TestIssueMoreThanAvailable() {
	ctx := context.Background()

	donor, err := s.services.DonorService.AddDonor(ctx, "B", "A-", "555")
	s.Require().NoError(err)
	_, err = s.services.DonorService.RecordDonation(ctx, donor.ID)
	s.Require().NoError(err)

	_, err = s.services.LedgerService.IssueBlood(ctx, ledgerservice.IssueInput{
		Patient: "P", Hospital: "City", BloodGroup: "A-", Units: 2,
	})
	var insufficient *ledgerservice.InsufficientStockError
	s.Require().True(errors.As(err, &insufficient))
	s.Equal(1, insufficient.Available)
	s.Equal(1, s.stock("A-"))

	_, err = s.services.LedgerService.IssueBlood(ctx, ledgerservice.IssueInput{
		Patient: "P", Hospital: "City", BloodGroup: "AB+", Units: 1,
	})
	s.ErrorIs(err, ledgerservice.ErrInsufficientStock)
}

func (s *IntegrationSuite) TestConcurrentIssuance() {
	ctx := context.Background()

	donor, err := s.services.DonorService.AddDonor(ctx, "C", "B+", "555")
	s.Require().NoError(err)
	for range 3 {
		_, err = s.services.DonorService.RecordDonation(ctx, donor.ID)
		s.Require().NoError(err)
	}

	const workers = 2
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.LedgerService.IssueBlood(ctx, ledgerservice.IssueInput{
				Patient: "P", Hospital: "City", BloodGroup: "B+", Units: 3,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ledgerservice.ErrInsufficientStock):
				refused++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(1, refused)
	s.Equal(0, s.stock("B+"))
}

func (s *IntegrationSuite) TestDuplicateRegistration() {
	ctx := context.Background()

	first, err := s.services.AuthService.Register(ctx, authservice.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	s.Require().NoError(err)

	_, err = s.services.AuthService.Register(ctx, authservice.RegisterInput{
		Username: "mallory", Email: "alice@example.com", Password: "other12",
	})
	s.ErrorIs(err, authservice.ErrEmailTaken)

	user, err := s.services.AuthService.Authenticate(ctx, "alice@example.com", "secret1")
	s.Require().NoError(err)
	s.Equal(first.ID, user.ID)
	s.Equal("alice", user.Username)
}

func (s *IntegrationSuite) TestDeleteDonorKeepsStock() {
	ctx := context.Background()

	kept, err := s.services.DonorService.AddDonor(ctx, "Kept", "O-", "1")
	s.Require().NoError(err)
	gone, err := s.services.DonorService.AddDonor(ctx, "Gone", "O-", "2")
	s.Require().NoError(err)
	_, err = s.services.DonorService.RecordDonation(ctx, gone.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.services.DonorService.DeleteDonor(ctx, gone.ID))

	donors, err := s.services.DonorService.ListDonors(ctx)
	s.Require().NoError(err)
	s.Require().Len(donors, 1)
	s.Equal(kept.ID, donors[0].ID)
	s.Equal(1, s.stock("O-"))
}
