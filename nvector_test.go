package geodesy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNVectorRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10_000; i++ {
		p := randLatLon(rng)
		p.Height = rng.Float64() * 1000
		n := ToNVector(p)
		assert.InDelta(t, 1, n.Vector().Norm(), 1e-15)
		q := n.LatLon()
		if !eqish(p.Lat, q.Lat, 10) || !eqBearing(p.Lon, q.Lon, 10) || p.Height != q.Height {
			t.Fatalf("round trip %v -> %v", p, q)
		}

		// the same unit vector as s2
		s := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
		if !eqish(s.X, n.X(), 12) || !eqish(s.Y, n.Y(), 12) || !eqish(s.Z, n.Z(), 12) {
			t.Fatalf("%v: %v != %v", p, n, s)
		}
	}
}

func TestNVectorPoles(t *testing.T) {
	n := ToNVector(LatLon{Lat: 90, Lon: 123})
	assert.InDelta(t, 0, n.X(), 1e-16)
	assert.InDelta(t, 0, n.Y(), 1e-16)
	assert.InDelta(t, 1, n.Z(), 1e-16)
	assert.InDelta(t, 90, n.LatLon().Lat, 1e-12)

	s := ToNVector(LatLon{Lat: -90})
	assert.InDelta(t, -1, s.Z(), 1e-16)
	assert.True(t, n.Antipode().ApproxEqual(s, 1e-12))
}

func TestNewNVector(t *testing.T) {
	n, err := NewNVector(0, 0, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, n.Z())
	assert.Equal(t, 10.0, n.Height())
	assert.InDelta(t, 90, n.LatLon().Lat, 1e-12)

	n, err = NewNVector(1, 1, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 45, n.LatLon().Lon, 1e-12)

	_, err = NewNVector(0, 0, 0, 0)
	require.ErrorIs(t, err, ErrDegenerateVector)
	_, err = NewNVector(math.NaN(), 0, 0, 0)
	require.ErrorIs(t, err, ErrDegenerateVector)

	assert.Equal(t, 25.0, n.WithHeight(25).Height())
	assert.Equal(t, 0.0, n.Height(), "WithHeight returns a copy")
}

func TestGreatCircleThrough(t *testing.T) {
	n1 := ToNVector(LatLon{Lat: 0, Lon: 0})
	n2 := ToNVector(LatLon{Lat: 0, Lon: 90})
	c, err := GreatCircleThrough(n1, n2)
	require.NoError(t, err)
	assert.InDelta(t, 1, c.Z(), 1e-15)

	_, err = GreatCircleThrough(n1, n1)
	require.ErrorIs(t, err, ErrCoincidentOrAntipodal)
	_, err = GreatCircleThrough(n1, n1.Antipode())
	require.ErrorIs(t, err, ErrCoincidentOrAntipodal)

	// heading east along the equator gives the same circle
	g := GreatCircle(n1, 90)
	assert.True(t, g.ApproxEqual(c, 1e-12))
}

func TestIntersection(t *testing.T) {
	equator := GreatCircle(ToNVector(LatLon{}), 90)
	meridian := GreatCircle(ToNVector(LatLon{Lon: 30}), 0)
	i1, i2, err := Intersection(equator, meridian)
	require.NoError(t, err)
	p1, p2 := i1.LatLon(), i2.LatLon()
	assert.InDelta(t, 0, p1.Lat, 1e-12)
	assert.InDelta(t, 0, p2.Lat, 1e-12)
	assert.InDelta(t, 180, math.Abs(AngleDiff(p1.Lon, p2.Lon)), 1e-12)
	assert.True(t, math.Abs(AngleDiff(p1.Lon, 30)) < 1e-9 || math.Abs(AngleDiff(p2.Lon, 30)) < 1e-9)

	_, _, err = Intersection(equator, equator.Antipode())
	require.ErrorIs(t, err, ErrCoincidentOrAntipodal)
}

func TestMidpoint(t *testing.T) {
	n1 := ToNVector(LatLon{Lat: 52.205, Lon: 0.119, Height: 10})
	n2 := ToNVector(LatLon{Lat: 48.857, Lon: 2.351, Height: 30})
	m, err := Midpoint(n1, n2)
	require.NoError(t, err)
	p := m.LatLon()
	assert.InDelta(t, 50.536327, p.Lat, 1e-6)
	assert.InDelta(t, 1.274614, p.Lon, 1e-6)
	assert.Equal(t, 20.0, p.Height)
	assert.InDelta(t, Distance(n1, m, 1), Distance(m, n2, 1), 1e-12)

	_, err = Midpoint(n1, n1.Antipode())
	require.ErrorIs(t, err, ErrUndefinedMidpoint)
}

func TestMean(t *testing.T) {
	var ns []NVector
	for _, p := range []LatLon{
		{Lat: 10, Lon: -10}, {Lat: 10, Lon: 10}, {Lat: -10, Lon: 10}, {Lat: -10, Lon: -10},
	} {
		ns = append(ns, ToNVector(p))
	}
	m, err := Mean(ns...)
	require.NoError(t, err)
	p := m.LatLon()
	assert.InDelta(t, 0, p.Lat, 1e-12)
	assert.InDelta(t, 0, p.Lon, 1e-12)

	_, err = Mean()
	require.ErrorIs(t, err, ErrDegenerateVector)
	_, err = Mean(ns[0], ns[0].Antipode())
	require.ErrorIs(t, err, ErrDegenerateVector)
}

func TestDistanceAgainstS2(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 10_000; i++ {
		p1, p2 := randLatLon(rng), randLatLon(rng)
		if nearlyAntipodal(p1, p2) {
			// haversine loses precision there
			continue
		}
		d := Distance(ToNVector(p1), ToNVector(p2), MeanRadius)
		want := s2.LatLngFromDegrees(p1.Lat, p1.Lon).Distance(s2.LatLngFromDegrees(p2.Lat, p2.Lon))
		if !eqish(d, want.Radians()*MeanRadius, 4) {
			t.Fatalf("%v %v: %f != %f", p1, p2, d, want.Radians()*MeanRadius)
		}
	}

	n1 := ToNVector(LatLon{Lat: 52.205, Lon: 0.119})
	n2 := ToNVector(LatLon{Lat: 48.857, Lon: 2.351})
	assert.InDelta(t, 404279.164, Distance(n1, n2, 6371e3), 1e-3)
	assert.Equal(t, 0.0, Distance(n1, n1, 6371e3))
	assert.InDelta(t, math.Pi*6371e3, Distance(n1, n1.Antipode(), 6371e3), 1e-6)
}
