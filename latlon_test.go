package geodesy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLatLon(t *testing.T) {
	p, err := NewLatLon(45, 190)
	require.NoError(t, err)
	assert.Equal(t, LatLon{Lat: 45, Lon: -170}, p)

	p, err = NewLatLon(-90, -180)
	require.NoError(t, err)
	assert.Equal(t, 180.0, p.Lon)

	for _, lat := range []float64{90.0001, -91, math.NaN(), math.Inf(1)} {
		_, err := NewLatLon(lat, 0)
		require.ErrorIs(t, err, ErrInvalidLatitude, "%v", lat)
	}
	for _, lon := range []float64{math.NaN(), math.Inf(-1)} {
		_, err := NewLatLon(0, lon)
		require.ErrorIs(t, err, ErrDomain, "%v", lon)
	}
}

func TestLatLonEqual(t *testing.T) {
	assert.True(t, LatLon{Lat: 10, Lon: 180}.Equal(LatLon{Lat: 10, Lon: -180}))
	assert.True(t, LatLon{Lat: 10, Lon: 20}.Equal(LatLon{Lat: 10, Lon: 380, Height: 5}))
	assert.True(t, LatLon{Lat: 90, Lon: 20}.Equal(LatLon{Lat: 90, Lon: -100}))
	assert.False(t, LatLon{Lat: 90}.Equal(LatLon{Lat: -90}))
	assert.False(t, LatLon{Lat: 10, Lon: 20}.Equal(LatLon{Lat: 10, Lon: 20.000001}))
}

func TestLatLonIsAntipodal(t *testing.T) {
	assert.True(t, LatLon{Lat: 0, Lon: 0}.IsAntipodal(LatLon{Lat: 0, Lon: 180}, 0))
	assert.True(t, LatLon{Lat: 30, Lon: 10}.IsAntipodal(LatLon{Lat: -30, Lon: -170}, 1e-12))
	assert.True(t, LatLon{Lat: 90, Lon: 10}.IsAntipodal(LatLon{Lat: -90, Lon: 55}, 0))
	assert.True(t, LatLon{Lat: 0, Lon: 0}.IsAntipodal(LatLon{Lat: 0.5, Lon: 179.7}, 1))
	assert.False(t, LatLon{Lat: 0, Lon: 0}.IsAntipodal(LatLon{Lat: 0.5, Lon: 179.7}, 0.1))
	assert.False(t, LatLon{Lat: 30, Lon: 10}.IsAntipodal(LatLon{Lat: 30, Lon: -170}, 1e-12))
}

func TestLatLonString(t *testing.T) {
	assert.Equal(t, "51.477800, -0.001500", LatLon{Lat: 51.4778, Lon: -0.0015}.String())
	assert.Equal(t, "51.477800, -0.001500, 45.000m", LatLon{Lat: 51.4778, Lon: -0.0015, Height: 45}.String())
}

func TestConvergenceError(t *testing.T) {
	err := error(&ConvergenceError{Op: "inverse", Iterations: 200, Antipodal: true})
	assert.True(t, errors.Is(err, ErrFailedConvergence))
	assert.Equal(t, "geodesy: failed to converge: inverse after 200 iterations (antipodal points)", err.Error())

	err = &ConvergenceError{Op: "direct", Iterations: 3}
	assert.Equal(t, "geodesy: failed to converge: direct after 3 iterations", err.Error())

	var nilErr *ConvergenceError
	assert.Equal(t, "<nil>", nilErr.Error())
}
