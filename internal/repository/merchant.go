package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/domain"
)

// MerchantRepo stores merchants with their raw schedule and fee documents.
type MerchantRepo struct{ db *pgxpool.Pool }

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(db *pgxpool.Pool) *MerchantRepo { return &MerchantRepo{db: db} }

// Get returns the merchant or nil when it does not exist.
func (r *MerchantRepo) Get(ctx context.Context, id int64) (*domain.Merchant, error) {
	var m domain.Merchant
	err := r.db.QueryRow(ctx, `
        SELECT id, name, lat, lon, schedule, fee_config, updated_at
        FROM merchants
        WHERE id = $1
    `, id).Scan(&m.ID, &m.Name, &m.Location.Lat, &m.Location.Lon, &m.Schedule, &m.FeeConfig, &m.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts a merchant and returns its id.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO merchants (name, lat, lon, schedule, fee_config)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, m.Name, m.Location.Lat, m.Location.Lon, m.Schedule, m.FeeConfig).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create merchant: %w", err)
	}
	return id, nil
}

// UpdateSchedule replaces the schedule document and reports whether the merchant exists.
func (r *MerchantRepo) UpdateSchedule(ctx context.Context, id int64, raw string) (bool, error) {
	return r.updateColumn(ctx, "schedule", id, raw)
}

// UpdateFeeConfig replaces the fee config document and reports whether the merchant exists.
func (r *MerchantRepo) UpdateFeeConfig(ctx context.Context, id int64, raw string) (bool, error) {
	return r.updateColumn(ctx, "fee_config", id, raw)
}

func (r *MerchantRepo) updateColumn(ctx context.Context, column string, id int64, raw string) (bool, error) {
	q := fmt.Sprintf(`UPDATE merchants SET %s = $2, updated_at = now() WHERE id = $1`, column)
	ct, err := r.db.Exec(ctx, q, id, raw)
	if err != nil {
		return false, fmt.Errorf("update merchant %d %s: %w", id, column, err)
	}
	return ct.RowsAffected() > 0, nil
}
