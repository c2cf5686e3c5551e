package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, Point{Lat: 55.75, Lon: 37.62}.Valid())
	require.True(t, Point{Lat: -90, Lon: 180}.Valid())
	require.False(t, Point{Lat: 91, Lon: 0}.Valid())
	require.False(t, Point{Lat: 0, Lon: -181}.Valid())
	require.False(t, Point{Lat: math.NaN(), Lon: 0}.Valid())
}

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	p := Point{Lat: 60.17, Lon: 24.93}
	require.InDelta(t, 0, DistanceKm(p, p), 1e-9)

	// one degree of latitude is ~111.19 km
	got := DistanceKm(Point{Lat: 0, Lon: 0}, Point{Lat: 1, Lon: 0})
	require.InDelta(t, 111.19, got, 0.05)

	a, b := Point{Lat: 55.7558, Lon: 37.6173}, Point{Lat: 59.9343, Lon: 30.3351}
	require.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}
