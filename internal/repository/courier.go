package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"order-policy-service/internal/domain"
)

// CourierRepo stores couriers and their last reported position.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

// Create inserts a courier and returns its id.
func (r *CourierRepo) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO couriers(name) VALUES($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// UpdateLocation stores the position and returns true if the courier exists.
func (r *CourierRepo) UpdateLocation(ctx context.Context, loc domain.CourierLocation) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET
            lat                 = $2,
            lon                 = $3,
            location_updated_at = $4,
            updated_at          = now()
        WHERE id = $1
    `, loc.CourierID, loc.Position.Lat, loc.Position.Lon, loc.ReportedAt)
	if err != nil {
		return false, fmt.Errorf("update courier %d location: %w", loc.CourierID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// GetLocation returns the last stored position, or nil when the courier is
// unknown or has never reported one.
func (r *CourierRepo) GetLocation(ctx context.Context, id int64) (*domain.CourierLocation, error) {
	var (
		lat, lon *float64
		at       *time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT lat, lon, location_updated_at FROM couriers WHERE id=$1`, id,
	).Scan(&lat, &lon, &at)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d location: %w", id, err)
	}
	if lat == nil || lon == nil || at == nil {
		return nil, nil
	}
	return &domain.CourierLocation{
		CourierID:  id,
		Position:   domain.Point{Lat: *lat, Lon: *lon},
		ReportedAt: *at,
	}, nil
}
