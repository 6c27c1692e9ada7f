package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = "id, patient_name, hospital_name, blood_group, units, total_amount, date, payment_status, utr_number"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (patient_name, hospital_name, blood_group, units, total_amount, date, payment_status, utr_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, t.PatientName, t.HospitalName, t.BloodGroup, t.Units, t.TotalAmount,
		t.Date, t.PaymentStatus, t.UTRNumber).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id).
		Scan(&t.ID, &t.PatientName, &t.HospitalName, &t.BloodGroup, &t.Units, &t.TotalAmount, &t.Date, &t.PaymentStatus, &t.UTRNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// FindLatest returns transactions newest first; limit <= 0 means all of them.
func (r *Repository) FindLatest(ctx context.Context, limit int) ([]domain.Transaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, id DESC LIMIT $1", limit)
	} else {
		rows, err = r.db.Query(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, id DESC")
	}
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.PatientName, &t.HospitalName, &t.BloodGroup, &t.Units, &t.TotalAmount, &t.Date, &t.PaymentStatus, &t.UTRNumber)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transaction rows", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
