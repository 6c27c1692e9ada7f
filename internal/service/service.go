package service

import (
	"github.com/GlebRadaev/bloodbank/internal/config"
	"github.com/GlebRadaev/bloodbank/internal/handlers/auth"
	"github.com/GlebRadaev/bloodbank/internal/handlers/donors"
	"github.com/GlebRadaev/bloodbank/internal/handlers/ledger"
	"github.com/GlebRadaev/bloodbank/internal/handlers/profile"
	"github.com/GlebRadaev/bloodbank/internal/handlers/support"

	pkgauth "github.com/GlebRadaev/bloodbank/pkg/auth"

	"github.com/GlebRadaev/bloodbank/internal/repo"
	authservice "github.com/GlebRadaev/bloodbank/internal/service/authservice"
	donorservice "github.com/GlebRadaev/bloodbank/internal/service/donorservice"
	ledgerservice "github.com/GlebRadaev/bloodbank/internal/service/ledgerservice"
	supportservice "github.com/GlebRadaev/bloodbank/internal/service/supportservice"
)

type Services struct {
	AuthService    auth.Service
	ProfileService profile.Service
	DonorService   donors.Service
	LedgerService  ledger.Service
	SupportService support.Service
}

func New(repo *repo.Repositories, cfg *config.Config, notifier authservice.Notifier) *Services {
	authService := authservice.New(
		repo.UserRepo,
		notifier,
		pkgauth.NewHashService(0),
		pkgauth.NewJWTService(cfg.SecretKey),
		cfg.BaseURL,
	)
	donorService := donorservice.New(repo.DonorRepo, repo.DonorStock, repo.TxManager)
	ledgerService := ledgerservice.New(repo.LedgerStock, repo.TransactionRepo, repo.DonorRepo, repo.TxManager)
	supportService := supportservice.New(repo.UserRepo, notifier)

	return &Services{
		AuthService:    authService,
		ProfileService: authService,
		DonorService:   donorService,
		LedgerService:  ledgerService,
		SupportService: supportService,
	}
}
