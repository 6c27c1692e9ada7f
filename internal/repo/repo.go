package repo

import (
	"github.com/GlebRadaev/bloodbank/internal/pg"
	donorrepo "github.com/GlebRadaev/bloodbank/internal/repo/donor-repo"
	stockrepo "github.com/GlebRadaev/bloodbank/internal/repo/stock-repo"
	transactionrepo "github.com/GlebRadaev/bloodbank/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/bloodbank/internal/repo/user-repo"
	"github.com/GlebRadaev/bloodbank/internal/service/authservice"
	"github.com/GlebRadaev/bloodbank/internal/service/donorservice"
	"github.com/GlebRadaev/bloodbank/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	DonorRepo       donorservice.DonorRepo
	DonorStock      donorservice.StockRepo
	LedgerStock     ledgerservice.StockRepo
	TransactionRepo ledgerservice.TransactionRepo
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	db := pg.New(conn)
	stockRepo := stockrepo.New(db)

	return &Repositories{
		UserRepo:        userrepo.New(db),
		DonorRepo:       donorrepo.New(db),
		DonorStock:      stockRepo,
		LedgerStock:     stockRepo,
		TransactionRepo: transactionrepo.New(db),
		TxManager:       txManager,
	}
}
