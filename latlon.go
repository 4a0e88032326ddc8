package geodesy

import (
	"fmt"
	"math"
)

// LatLon is a geodetic position in degrees with an optional height in
// meters above the reference surface.
type LatLon struct {
	Lat    float64
	Lon    float64
	Height float64
}

// NewLatLon returns the position (lat, lon) with the longitude normalized
// into (-180, 180]. Latitudes outside [-90, 90] are not clamped; they
// return ErrInvalidLatitude.
func NewLatLon(lat, lon float64) (LatLon, error) {
	p := LatLon{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		return LatLon{}, err
	}
	return p.Normalize(), nil
}

// Validate checks the latitude range and that both coordinates are finite.
func (p LatLon) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: %v", ErrInvalidLatitude, p.Lat)
	}
	if !finite(p.Lon) {
		return fmt.Errorf("%w: longitude %v", ErrDomain, p.Lon)
	}
	return nil
}

// Normalize returns p with its longitude wrapped into (-180, 180].
func (p LatLon) Normalize() LatLon {
	p.Lon = Wrap180(p.Lon)
	return p
}

// Equal reports whether p and q are the same point on the surface.
// Longitudes are compared after normalization and every longitude at a
// pole is the same point. Heights are ignored.
func (p LatLon) Equal(q LatLon) bool {
	if p.Lat != q.Lat {
		return false
	}
	if math.Abs(p.Lat) == 90 {
		return true
	}
	return Wrap180(p.Lon) == Wrap180(q.Lon)
}

// IsAntipodal reports whether q is within eps degrees of the antipode of p.
func (p LatLon) IsAntipodal(q LatLon, eps float64) bool {
	if math.Abs(p.Lat+q.Lat) > eps {
		return false
	}
	if math.Abs(p.Lat) >= 90-eps {
		return true
	}
	return math.Abs(math.Abs(AngleDiff(p.Lon, q.Lon))-180) <= eps
}

func (p LatLon) String() string {
	if p.Height != 0 {
		return fmt.Sprintf("%.6f, %.6f, %.3fm", p.Lat, p.Lon, p.Height)
	}
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lon)
}
