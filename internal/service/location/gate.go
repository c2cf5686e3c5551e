package location

import (
	"time"

	"order-policy-service/internal/domain"
)

// Gate bounds report frequency. A zero field disables that condition.
type Gate struct {
	MinInterval       time.Duration
	MinDistanceMeters float64
}

// Allow reports whether next may be sent after prev.
// Both the interval and the distance condition must hold.
func (g Gate) Allow(prev *domain.Position, next domain.Position) bool {
	if prev == nil {
		return true
	}
	if g.MinInterval > 0 && next.At.Sub(prev.At) < g.MinInterval {
		return false
	}
	if g.MinDistanceMeters > 0 && domain.DistanceKm(prev.Point, next.Point)*1000 < g.MinDistanceMeters {
		return false
	}
	return true
}
