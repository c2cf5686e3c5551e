package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest describes an order attempt to be priced.
// Nil pointers mean the value was not supplied.
type QuoteRequest struct {
	OrderID     string
	MerchantID  int64
	OrderAmount *decimal.Decimal
	DistanceKm  *float64
	Destination *Point
	CourierID   *int64
}

// Quote is the policy decision for an order attempt.
type Quote struct {
	ID           string
	OrderID      string
	MerchantID   int64
	Accepted     bool
	NextOpenHint string
	DistanceKm   float64
	Fee          decimal.Decimal
	FeeSource    string
	Fallback     bool
	QuotedAt     time.Time
}
