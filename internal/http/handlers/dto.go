package handlers

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"order-policy-service/internal/domain"
)

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type quoteRequest struct {
	OrderID     string           `json:"order_id,omitempty"`
	MerchantID  int64            `json:"merchant_id"`
	OrderAmount *decimal.Decimal `json:"order_amount,omitempty"`
	DistanceKm  *float64         `json:"distance_km,omitempty"`
	Destination *pointDTO        `json:"destination,omitempty"`
	CourierID   *int64           `json:"courier_id,omitempty"`
}

type quoteResponse struct {
	ID           string          `json:"id,omitempty"`
	OrderID      string          `json:"order_id,omitempty"`
	MerchantID   int64           `json:"merchant_id"`
	Accepted     bool            `json:"accepted"`
	NextOpenHint string          `json:"next_open_hint,omitempty"`
	DistanceKm   float64         `json:"distance_km,omitempty"`
	Fee          decimal.Decimal `json:"fee"`
	FeeSource    string          `json:"fee_source,omitempty"`
	Fallback     bool            `json:"fallback,omitempty"`
	QuotedAt     time.Time       `json:"quoted_at"`
}

type createMerchantRequest struct {
	Name      string          `json:"name"`
	Lat       float64         `json:"lat"`
	Lon       float64         `json:"lon"`
	Schedule  json.RawMessage `json:"schedule,omitempty"`
	FeeConfig json.RawMessage `json:"fee_config,omitempty"`
}

type createCourierRequest struct {
	Name string `json:"name"`
}

type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type locationResponse struct {
	CourierID  int64     `json:"courier_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	ReportedAt time.Time `json:"reported_at"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (req quoteRequest) toModel() domain.QuoteRequest {
	out := domain.QuoteRequest{
		OrderID:     req.OrderID,
		MerchantID:  req.MerchantID,
		OrderAmount: req.OrderAmount,
		DistanceKm:  req.DistanceKm,
		CourierID:   req.CourierID,
	}
	if req.Destination != nil {
		out.Destination = &domain.Point{Lat: req.Destination.Lat, Lon: req.Destination.Lon}
	}
	return out
}

func (req createMerchantRequest) toModel() *domain.Merchant {
	return &domain.Merchant{
		Name:      req.Name,
		Location:  domain.Point{Lat: req.Lat, Lon: req.Lon},
		Schedule:  rawString(req.Schedule),
		FeeConfig: rawString(req.FeeConfig),
	}
}

func rawString(m json.RawMessage) string {
	if len(m) == 0 || string(m) == "null" {
		return ""
	}
	return string(m)
}

func quoteToResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{
		ID:           q.ID,
		OrderID:      q.OrderID,
		MerchantID:   q.MerchantID,
		Accepted:     q.Accepted,
		NextOpenHint: q.NextOpenHint,
		DistanceKm:   q.DistanceKm,
		Fee:          q.Fee,
		FeeSource:    q.FeeSource,
		Fallback:     q.Fallback,
		QuotedAt:     q.QuotedAt,
	}
}

func locationToResponse(l *domain.CourierLocation) locationResponse {
	return locationResponse{
		CourierID:  l.CourierID,
		Lat:        l.Position.Lat,
		Lon:        l.Position.Lon,
		ReportedAt: l.ReportedAt,
	}
}
