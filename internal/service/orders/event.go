package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"order-policy-service/internal/domain"
)

// Event is a single order event
type Event struct {
	OrderID     string
	MerchantID  int64
	Status      string
	OrderAmount *decimal.Decimal
	DistanceKm  *float64
	Destination *domain.Point
	CourierID   *int64
	CreatedAt   time.Time
}

// Request converts the event into a quote request.
func (e Event) Request() domain.QuoteRequest {
	return domain.QuoteRequest{
		OrderID:     e.OrderID,
		MerchantID:  e.MerchantID,
		OrderAmount: e.OrderAmount,
		DistanceKm:  e.DistanceKm,
		Destination: e.Destination,
		CourierID:   e.CourierID,
	}
}
