package kafka

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/service/orders"
)

// EventDTO is a data transfer object for orders.Event
type EventDTO struct {
	OrderID     string           `json:"order_id"`
	MerchantID  int64            `json:"merchant_id"`
	Status      string           `json:"status"`
	OrderAmount *decimal.Decimal `json:"order_amount,omitempty"`
	DistanceKm  *float64         `json:"distance_km,omitempty"`
	Destination *PointDTO        `json:"destination,omitempty"`
	CourierID   *int64           `json:"courier_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PointDTO is a serialized coordinate.
type PointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	e := orders.Event{
		OrderID:     strings.TrimSpace(dto.OrderID),
		MerchantID:  dto.MerchantID,
		Status:      strings.TrimSpace(dto.Status),
		OrderAmount: dto.OrderAmount,
		DistanceKm:  dto.DistanceKm,
		CourierID:   dto.CourierID,
		CreatedAt:   dto.CreatedAt,
	}
	if dto.Destination != nil {
		e.Destination = &domain.Point{Lat: dto.Destination.Lat, Lon: dto.Destination.Lon}
	}
	return e
}
