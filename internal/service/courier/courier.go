package courier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/domain"
)

// Service receives courier position updates and serves stored positions.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, now: time.Now}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateLocation(courierID int64, p domain.Point) error {
	if courierID <= 0 {
		return fmt.Errorf("courier id must be positive: %w", apperr.ErrInvalid)
	}
	if !p.Valid() {
		return fmt.Errorf("coordinates out of range: %w", apperr.ErrInvalid)
	}
	return nil
}

// Create registers a courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("courier name is empty: %w", apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, name)
}

// UpdateLocation stores the courier's reported position.
func (s *Service) UpdateLocation(ctx context.Context, courierID int64, lat, lon float64) (*domain.CourierLocation, error) {
	p := domain.Point{Lat: lat, Lon: lon}
	if err := validateLocation(courierID, p); err != nil {
		return nil, err
	}
	loc := domain.CourierLocation{
		CourierID:  courierID,
		Position:   p,
		ReportedAt: s.now().UTC(),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("courier %d: %w", courierID, apperr.ErrNotFound)
	}
	return &loc, nil
}

// Location returns the last stored position, or nil when none is known.
func (s *Service) Location(ctx context.Context, courierID int64) (*domain.CourierLocation, error) {
	if courierID <= 0 {
		return nil, fmt.Errorf("courier id must be positive: %w", apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.GetLocation(ctx, courierID)
}
