package handlers

import (
	"context"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/policy/availability"
)

// QuoteUsecase prices order attempts.
type QuoteUsecase interface {
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
	QuoteOrder(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
	StoredQuote(ctx context.Context, orderID string) (*domain.Quote, error)
}

// MerchantUsecase manages merchant policy documents.
type MerchantUsecase interface {
	CreateMerchant(ctx context.Context, m *domain.Merchant) (int64, error)
	Availability(ctx context.Context, merchantID int64) (availability.Result, error)
	SetSchedule(ctx context.Context, merchantID int64, raw []byte) error
	SetFeeConfig(ctx context.Context, merchantID int64, raw []byte) error
}

// CourierUsecase registers couriers and stores their positions.
type CourierUsecase interface {
	Create(ctx context.Context, name string) (int64, error)
	UpdateLocation(ctx context.Context, courierID int64, lat, lon float64) (*domain.CourierLocation, error)
}
