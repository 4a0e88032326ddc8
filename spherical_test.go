package geodesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRhumb(t *testing.T) {
	dover := LatLon{Lat: 51.127, Lon: 1.338}
	calais := LatLon{Lat: 50.964, Lon: 1.853}

	assert.InDelta(t, 116.72186, RhumbBearing(dover, calais), 1e-5)
	assert.InDelta(t, 40307.8007, RhumbDistance(dover, calais, MeanRadius), 1e-3)

	d := RhumbDestination(dover, 40300, 116.7, MeanRadius)
	assert.InDelta(t, 50.964155, d.Lat, 1e-6)
	assert.InDelta(t, 1.853000, d.Lon, 1e-6)

	m := RhumbMidpoint(dover, calais)
	assert.InDelta(t, 51.0455, m.Lat, 1e-6)
	assert.InDelta(t, 1.595727, m.Lon, 1e-6)

	// the midpoint lies on the rhumb line, half way
	assert.InDelta(t, RhumbBearing(dover, calais), RhumbBearing(dover, m), 1e-6)
	assert.InDelta(t, RhumbDistance(dover, m, MeanRadius), RhumbDistance(m, calais, MeanRadius), 1e-3)

	assert.Equal(t, 0.0, RhumbBearing(dover, dover))
	assert.Equal(t, 0.0, RhumbDistance(dover, dover, MeanRadius))
}

func TestRhumbAlongParallel(t *testing.T) {
	p1 := LatLon{Lat: 60, Lon: 0}
	p2 := LatLon{Lat: 60, Lon: 10}
	assert.InDelta(t, 90, RhumbBearing(p1, p2), 1e-12)
	// half the equatorial length at 60°
	assert.InDelta(t, radians(10)*MeanRadius/2, RhumbDistance(p1, p2, MeanRadius), 1e-6)

	d := RhumbDestination(p1, radians(10)*MeanRadius/2, 90, MeanRadius)
	assert.InDelta(t, 60, d.Lat, 1e-12)
	assert.InDelta(t, 10, d.Lon, 1e-9)

	m := RhumbMidpoint(p1, p2)
	assert.InDelta(t, 60, m.Lat, 1e-12)
	assert.InDelta(t, 5, m.Lon, 1e-9)
}

func TestRhumbAntimeridian(t *testing.T) {
	p1 := LatLon{Lat: 10, Lon: 179}
	p2 := LatLon{Lat: 10, Lon: -179}
	assert.InDelta(t, 90, RhumbBearing(p1, p2), 1e-12)
	m := RhumbMidpoint(p1, p2)
	// on the antimeridian, from either side of it
	assert.InDelta(t, 0, AngleDiff(180, m.Lon), 1e-9)
	assert.True(t, m.Lon > -180 && m.Lon <= 180, "%v", m.Lon)
	assert.InDelta(t, RhumbDistance(p1, m, MeanRadius), RhumbDistance(m, p2, MeanRadius), 1e-6)

	d := RhumbDestination(p1, RhumbDistance(p1, p2, MeanRadius), 90, MeanRadius)
	assert.InDelta(t, -179, d.Lon, 1e-9)
}

func TestMaxLatitude(t *testing.T) {
	assert.InDelta(t, 89, MaxLatitude(LatLon{}, 1), 1e-12)
	assert.InDelta(t, 90, MaxLatitude(LatLon{}, 0), 1e-12)
	assert.InDelta(t, 0, MaxLatitude(LatLon{}, 90), 1e-12)
	assert.InDelta(t, 45, MaxLatitude(LatLon{Lat: 45}, 90), 1e-12)
	// the southern vertex mirrors the northern one
	assert.InDelta(t, MaxLatitude(LatLon{Lat: -30}, 60), MaxLatitude(LatLon{Lat: 30}, 120), 1e-12)
}

func TestCrossingParallels(t *testing.T) {
	lon1, lon2, ok := CrossingParallels(LatLon{}, LatLon{Lat: 60, Lon: 30}, 30)
	assert.True(t, ok)
	assert.InDelta(t, 9.594068, lon1, 1e-6)
	assert.InDelta(t, 170.405932, lon2, 1e-6)

	// the great circle never gets that far north
	_, _, ok = CrossingParallels(LatLon{}, LatLon{Lat: 10, Lon: 30}, 60)
	assert.False(t, ok)
}
