//go:generate mockgen -source=contracts.go -destination=quote_mocks_test.go -package=quote_test

package quote

import (
	"context"

	"order-policy-service/internal/domain"
)

// MerchantStore loads and updates merchants.
type MerchantStore interface {
	Get(ctx context.Context, id int64) (*domain.Merchant, error)
	Create(ctx context.Context, merchant *domain.Merchant) (int64, error)
	UpdateSchedule(ctx context.Context, id int64, raw string) (bool, error)
	UpdateFeeConfig(ctx context.Context, id int64, raw string) (bool, error)
}

// QuoteStore persists quote decisions per order.
type QuoteStore interface {
	Save(ctx context.Context, q *domain.Quote) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Quote, error)
	DeleteByOrderID(ctx context.Context, orderID string) (bool, error)
}

// CourierLocator returns the last known courier position, nil when unknown.
type CourierLocator interface {
	Location(ctx context.Context, courierID int64) (*domain.CourierLocation, error)
}
