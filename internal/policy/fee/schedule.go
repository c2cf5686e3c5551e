package fee

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidSchedule wraps every distance schedule validation failure.
var ErrInvalidSchedule = errors.New("invalid fee schedule")

// DistanceTier prices trips whose distance falls in [MinKm, MaxKm).
type DistanceTier struct {
	MinKm float64
	MaxKm float64
	Fee   decimal.Decimal
}

// Contains reports whether distanceKm falls inside the half-open band.
func (t DistanceTier) Contains(distanceKm float64) bool {
	return distanceKm >= t.MinKm && distanceKm < t.MaxKm
}

// Schedule is an ordered, contiguous, non-overlapping list of distance tiers
// starting at 0 km. The last tier's MaxKm stands in for infinity.
// The zero Schedule has no tiers; Resolve substitutes the default for it.
type Schedule struct {
	tiers []DistanceTier
}

// NewSchedule validates tiers and builds a Schedule.
func NewSchedule(tiers []DistanceTier) (Schedule, error) {
	if len(tiers) == 0 {
		return Schedule{}, fmt.Errorf("%w: no tiers", ErrInvalidSchedule)
	}
	for i, t := range tiers {
		if !finite(t.MinKm) || !finite(t.MaxKm) {
			return Schedule{}, fmt.Errorf("%w: tier %d has non-finite bounds", ErrInvalidSchedule, i)
		}
		if t.MinKm >= t.MaxKm {
			return Schedule{}, fmt.Errorf("%w: tier %d min %.3f >= max %.3f", ErrInvalidSchedule, i, t.MinKm, t.MaxKm)
		}
		if t.Fee.IsNegative() {
			return Schedule{}, fmt.Errorf("%w: tier %d has negative fee %s", ErrInvalidSchedule, i, t.Fee)
		}
		if i == 0 {
			if t.MinKm != 0 {
				return Schedule{}, fmt.Errorf("%w: first tier starts at %.3f, want 0", ErrInvalidSchedule, t.MinKm)
			}
			continue
		}
		prev := tiers[i-1]
		switch {
		case t.MinKm < prev.MaxKm:
			return Schedule{}, fmt.Errorf("%w: tier %d overlaps tier %d", ErrInvalidSchedule, i, i-1)
		case t.MinKm > prev.MaxKm:
			return Schedule{}, fmt.Errorf("%w: gap between %.3f and %.3f km", ErrInvalidSchedule, prev.MaxKm, t.MinKm)
		}
	}
	out := make([]DistanceTier, len(tiers))
	copy(out, tiers)
	return Schedule{tiers: out}, nil
}

// MustSchedule is NewSchedule for literals known to be valid.
func MustSchedule(tiers []DistanceTier) Schedule {
	s, err := NewSchedule(tiers)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultSchedule returns the platform seed schedule:
// [0,10)→50, [10,20)→80, [20,30)→120, [30,1000)→200.
func DefaultSchedule() Schedule {
	return MustSchedule([]DistanceTier{
		{MinKm: 0, MaxKm: 10, Fee: decimal.NewFromInt(50)},
		{MinKm: 10, MaxKm: 20, Fee: decimal.NewFromInt(80)},
		{MinKm: 20, MaxKm: 30, Fee: decimal.NewFromInt(120)},
		{MinKm: 30, MaxKm: 1000, Fee: decimal.NewFromInt(200)},
	})
}

// Empty reports whether s has no tiers.
func (s Schedule) Empty() bool { return len(s.tiers) == 0 }

// Tiers returns a copy of the tiers.
func (s Schedule) Tiers() []DistanceTier {
	out := make([]DistanceTier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// Lookup returns the tier containing distanceKm. When the distance lies
// outside every tier the nearest boundary tier is returned with exact=false.
// Lookup on an empty schedule returns the zero tier and exact=false.
func (s Schedule) Lookup(distanceKm float64) (tier DistanceTier, exact bool) {
	if len(s.tiers) == 0 {
		return DistanceTier{}, false
	}
	for _, t := range s.tiers {
		if t.Contains(distanceKm) {
			return t, true
		}
	}
	last := s.tiers[len(s.tiers)-1]
	if distanceKm >= last.MaxKm {
		return last, false
	}
	return s.tiers[0], false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
