package donorrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	query := `
		INSERT INTO donors (name, blood_group, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, donor.Name, donor.BloodGroup, donor.Phone).Scan(&donor.ID)
	if err != nil {
		zap.L().Error("can't save donor", zap.Error(err))
		return nil, err
	}
	return donor, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donor, error) {
	query := "SELECT id, name, blood_group, phone, last_donation_date FROM donors WHERE id = $1"

	var donor domain.Donor
	err := r.db.QueryRow(ctx, query, id).Scan(&donor.ID, &donor.Name, &donor.BloodGroup, &donor.Phone, &donor.LastDonationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find donor", zap.Error(err))
		return nil, err
	}
	return &donor, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Donor, error) {
	query := "SELECT id, name, blood_group, phone, last_donation_date FROM donors ORDER BY id"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get donors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donors []domain.Donor
	for rows.Next() {
		var donor domain.Donor
		if err := rows.Scan(&donor.ID, &donor.Name, &donor.BloodGroup, &donor.Phone, &donor.LastDonationDate); err != nil {
			zap.L().Error("can't scan donor row", zap.Error(err))
			return nil, err
		}
		donors = append(donors, donor)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate donor rows", zap.Error(err))
		return nil, err
	}
	return donors, nil
}

func (r *Repository) UpdateLastDonation(ctx context.Context, id int, date time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE donors SET last_donation_date = $1 WHERE id = $2", date, id)
	if err != nil {
		zap.L().Error("can't update last donation date", zap.Error(err))
		return err
	}
	return nil
}

// Delete reports whether a donor row was removed.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM donors WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete donor", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
