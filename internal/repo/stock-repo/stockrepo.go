package stockrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.BloodStock, error) {
	rows, err := r.db.Query(ctx, "SELECT id, blood_group, units FROM blood_stock ORDER BY blood_group")
	if err != nil {
		zap.L().Error("can't get blood stock", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stock []domain.BloodStock
	for rows.Next() {
		var s domain.BloodStock
		if err := rows.Scan(&s.ID, &s.BloodGroup, &s.Units); err != nil {
			zap.L().Error("can't scan blood stock row", zap.Error(err))
			return nil, err
		}
		stock = append(stock, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate blood stock rows", zap.Error(err))
		return nil, err
	}
	return stock, nil
}

func (r *Repository) FindByGroup(ctx context.Context, bloodGroup string) (*domain.BloodStock, error) {
	var s domain.BloodStock
	err := r.db.QueryRow(ctx, "SELECT id, blood_group, units FROM blood_stock WHERE blood_group = $1", bloodGroup).
		Scan(&s.ID, &s.BloodGroup, &s.Units)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find blood stock", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// EnsureGroup creates a zero-balance row for a blood group seen for the first time.
func (r *Repository) EnsureGroup(ctx context.Context, bloodGroup string) error {
	query := `
		INSERT INTO blood_stock (blood_group, units)
		VALUES ($1, 0)
		ON CONFLICT (blood_group) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, bloodGroup); err != nil {
		zap.L().Error("can't create blood stock row", zap.Error(err))
		return err
	}
	return nil
}

// Increment adds units to a group and reports whether the group row exists.
func (r *Repository) Increment(ctx context.Context, bloodGroup string, units int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE blood_stock SET units = units + $1 WHERE blood_group = $2", units, bloodGroup)
	if err != nil {
		zap.L().Error("can't increment blood stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Decrement subtracts units only when the balance covers them. ok is false
// when the group is missing or short; the balance is left untouched then.
func (r *Repository) Decrement(ctx context.Context, bloodGroup string, units int) (remaining int, ok bool, err error) {
	query := `
		UPDATE blood_stock
		SET units = units - $1
		WHERE blood_group = $2 AND units >= $1
		RETURNING units
	`
	err = r.db.QueryRow(ctx, query, units, bloodGroup).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("can't decrement blood stock", zap.Error(err))
		return 0, false, err
	}
	return remaining, true, nil
}
