package courier

import (
	"context"

	"order-policy-service/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	UpdateLocation(ctx context.Context, loc domain.CourierLocation) (bool, error)
	GetLocation(ctx context.Context, id int64) (*domain.CourierLocation, error)
}
