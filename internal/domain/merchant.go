package domain

import "time"

// Merchant is a venue accepting orders. Schedule and FeeConfig hold the
// serialized JSON documents exactly as stored; they are parsed on use.
type Merchant struct {
	ID        int64
	Name      string
	Location  Point
	Schedule  string
	FeeConfig string
	UpdatedAt time.Time
}
