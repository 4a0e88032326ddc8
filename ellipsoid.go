package geodesy

import (
	"fmt"
	"math"
)

// Standard ellipsoids with their published semi-major axes and inverse
// flattenings.
var (
	// WGS84 conforming ellipsoid
	// https://en.wikipedia.org/wiki/World_Geodetic_System
	WGS84 = mustEllipsoid("WGS84", 6378137, 1/298.257223563)
	// GRS80 is the Geodetic Reference System 1980 (NAD83, ETRS89).
	GRS80 = mustEllipsoid("GRS80", 6378137, 1/298.257222101)
	// WGS72 is the World Geodetic System 1972.
	WGS72 = mustEllipsoid("WGS72", 6378135, 1/298.26)
	// GRS67 is the Geodetic Reference System 1967.
	GRS67 = mustEllipsoid("GRS67", 6378160, 1/298.247167427)
	// Airy1830 is used by the OSGB36 datum of Great Britain.
	Airy1830 = mustEllipsoid("Airy1830", 6377563.396, 1/299.3249646)
	// AiryModified is used by the Ireland 1965 datum.
	AiryModified = mustEllipsoid("AiryModified", 6377340.189, 1/299.3249646)
	// Bessel1841 is used by several central European datums.
	Bessel1841 = mustEllipsoid("Bessel1841", 6377397.155, 1/299.1528128)
	// Clarke1866 is used by NAD27.
	Clarke1866 = mustEllipsoid("Clarke1866", 6378206.4, 1/294.978698214)
	// Clarke1880IGN is used by the NTF datum of France.
	Clarke1880IGN = mustEllipsoid("Clarke1880IGN", 6378249.2, 1/293.466021294)
	// Intl1924 is the International (Hayford) 1924 ellipsoid used by ED50.
	Intl1924 = mustEllipsoid("Intl1924", 6378388, 1/297.0)
	// Krassovsky1940 is used by the Pulkovo 1942 datum.
	Krassovsky1940 = mustEllipsoid("Krassovsky1940", 6378245, 1/298.3)
	// Sphere is a sphere with the mean radius of WGS84.
	Sphere = mustEllipsoid("Sphere", MeanRadius, 0)
	// Globe is a pre-initialized spherical representing Earth as a
	// terrestrial globe. Inverse and Direct on it use great-circle
	// trigonometry instead of Vincenty.
	Globe = NewSpherical("Globe", MeanRadius)
)

// MeanRadius is the mean radius (2a+b)/3 of the WGS84 ellipsoid, in meters.
const MeanRadius = 6371008.771415

// Ellipsoid is an object for performing geodesic operations.
type Ellipsoid struct {
	name       string
	radius     float64 // a
	flattening float64 // f
	b          float64
	e2         float64
	ep2        float64
	spherical  bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The radius must be positive and the flattening in [0, 1).
func NewEllipsoid(name string, radius, flattening float64) (*Ellipsoid, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %s: radius %v", ErrInvalidEllipsoid, name, radius)
	}
	if !(flattening >= 0 && flattening < 1) {
		return nil, fmt.Errorf("%w: %s: flattening %v", ErrInvalidEllipsoid, name, flattening)
	}
	e2 := flattening * (2 - flattening)
	return &Ellipsoid{
		name:       name,
		radius:     radius,
		flattening: flattening,
		b:          radius * (1 - flattening),
		e2:         e2,
		ep2:        e2 / (1 - e2),
	}, nil
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simplier great-circle
// calculations such as the Haversine formula.
//
// Param radius is the radius (meters); it must be positive.
func NewSpherical(name string, radius float64) *Ellipsoid {
	e := mustEllipsoid(name, radius, 0)
	e.spherical = true
	return e
}

func mustEllipsoid(name string, radius, flattening float64) *Ellipsoid {
	e, err := NewEllipsoid(name, radius, flattening)
	if err != nil {
		panic(err)
	}
	return e
}

// Name of the Ellipsoid
func (e *Ellipsoid) Name() string {
	return e.name
}

// Radius is the equatorial radius (semi-major axis) of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// PolarRadius is the semi-minor axis b = a(1-f).
func (e *Ellipsoid) PolarRadius() float64 {
	return e.b
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// InverseFlattening returns 1/f, or +Inf for a sphere.
func (e *Ellipsoid) InverseFlattening() float64 {
	if e.flattening == 0 {
		return math.Inf(1)
	}
	return 1 / e.flattening
}

// SecondFlattening returns f' = (a-b)/b.
func (e *Ellipsoid) SecondFlattening() float64 {
	return (e.radius - e.b) / e.b
}

// ThirdFlattening returns n = (a-b)/(a+b).
func (e *Ellipsoid) ThirdFlattening() float64 {
	return (e.radius - e.b) / (e.radius + e.b)
}

// Eccentricity2 returns the first eccentricity squared e² = f(2-f).
func (e *Ellipsoid) Eccentricity2() float64 {
	return e.e2
}

// SecondEccentricity2 returns e'² = e²/(1-e²).
func (e *Ellipsoid) SecondEccentricity2() float64 {
	return e.ep2
}

// MeanRadius returns R1 = (2a+b)/3.
func (e *Ellipsoid) MeanRadius() float64 {
	return (2*e.radius + e.b) / 3
}

// AuthalicRadius returns the radius of the sphere with the same surface
// area as the ellipsoid.
func (e *Ellipsoid) AuthalicRadius() float64 {
	if e.e2 == 0 {
		return e.radius
	}
	ecc := math.Sqrt(e.e2)
	return math.Sqrt((e.radius*e.radius + e.b*e.b*math.Atanh(ecc)/ecc) / 2)
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// Sphere returns a spherical model with the mean radius of e. Callers use
// it as the fallback model when Inverse fails with ErrFailedConvergence.
func (e *Ellipsoid) Sphere() *Ellipsoid {
	if e.spherical {
		return e
	}
	return NewSpherical(e.name+"/sphere", e.MeanRadius())
}

func (e *Ellipsoid) String() string {
	if e.flattening == 0 {
		return fmt.Sprintf("%s(a=%.3f)", e.name, e.radius)
	}
	return fmt.Sprintf("%s(a=%.3f, 1/f=%.9f)", e.name, e.radius, 1/e.flattening)
}
