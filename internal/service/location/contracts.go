package location

//go:generate mockgen -source=contracts.go -destination=location_mocks_test.go -package=location_test

import (
	"context"

	"order-policy-service/internal/domain"
)

// Source produces device positions.
type Source interface {
	Current(ctx context.Context) (domain.Position, error)
	Watch(ctx context.Context, onPosition func(domain.Position), onError func(error)) (Subscription, error)
}

// Subscription is a live position stream.
type Subscription interface {
	Stop()
}

// Sender delivers a courier position upstream.
type Sender interface {
	ReportLocation(ctx context.Context, courierID int64, p domain.Point) error
}
