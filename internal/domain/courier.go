package domain

import "time"

// CourierLocation is the last position reported by a courier.
type CourierLocation struct {
	CourierID  int64
	Position   Point
	ReportedAt time.Time
}

// Position is a single device fix produced by a position source.
type Position struct {
	Point
	At time.Time
}
