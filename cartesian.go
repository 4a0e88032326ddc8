package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Cartesian is an earth-centered, earth-fixed (ECEF) position in meters:
// X towards (0°, 0°), Y towards (0°, 90°E), Z towards the north pole.
type Cartesian struct {
	r3.Vector
}

// ToCartesian converts the geodetic position p, including its height, to
// geocentric coordinates on e.
func (e *Ellipsoid) ToCartesian(p LatLon) Cartesian {
	sinφ, cosφ := math.Sincos(radians(p.Lat))
	sinλ, cosλ := math.Sincos(radians(p.Lon))
	ν := e.radius / math.Sqrt(1-e.e2*sinφ*sinφ) // prime vertical radius of curvature
	return Cartesian{r3.Vector{
		X: (ν + p.Height) * cosφ * cosλ,
		Y: (ν + p.Height) * cosφ * sinλ,
		Z: (ν*(1-e.e2) + p.Height) * sinφ,
	}}
}

// ToLatLon converts geocentric coordinates on e to a geodetic position
// using Bowring's method, accurate to the micrometer on the Earth's
// surface.
func (e *Ellipsoid) ToLatLon(c Cartesian) LatLon {
	a, b, e2, ε2 := e.radius, e.b, e.e2, e.ep2
	x, y, z := c.X, c.Y, c.Z
	p := math.Hypot(x, y) // distance from minor axis
	R := math.Hypot(p, z) // polar radius

	// parametric latitude (Bowring eqn.17, replacing tanβ = z⋅a / p⋅b)
	tanβ := (b * z) / (a * p) * (1 + ε2*b/R)
	sinβ := tanβ / math.Sqrt(1+tanβ*tanβ)
	cosβ := sinβ / tanβ
	if math.IsInf(tanβ, 0) {
		sinβ, cosβ = math.Copysign(1, z), 0
	}

	// geodetic latitude (Bowring eqn.18)
	φ := 0.0
	if !math.IsNaN(cosβ) {
		φ = math.Atan2(z+ε2*b*sinβ*sinβ*sinβ, p-e2*a*cosβ*cosβ*cosβ)
	}
	λ := math.Atan2(y, x)

	// height above ellipsoid (Bowring eqn.7)
	sinφ, cosφ := math.Sincos(φ)
	ν := a / math.Sqrt(1-e2*sinφ*sinφ)
	h := p*cosφ + z*sinφ - (a * a / ν)

	return LatLon{Lat: degrees(φ), Lon: Wrap180(degrees(λ)), Height: h}
}

// NVectorToCartesian converts an n-vector with height into geocentric
// coordinates on e, without going through latitude and longitude.
func (e *Ellipsoid) NVectorToCartesian(n NVector) Cartesian {
	x, y, z, h := n.v.X, n.v.Y, n.v.Z, n.h
	m := (1 - e.flattening) * (1 - e.flattening) // b²/a²
	k := e.b / math.Sqrt(x*x/m+y*y/m+z*z)
	return Cartesian{r3.Vector{
		X: k*x/m + x*h,
		Y: k*y/m + y*h,
		Z: k*z + z*h,
	}}
}

// CartesianToNVector returns the n-vector of the ellipsoid normal through c
// with the height of c above e.
func (e *Ellipsoid) CartesianToNVector(c Cartesian) NVector {
	return ToNVector(e.ToLatLon(c))
}

// Ned is a displacement in the local north, east, down frame (meters).
type Ned struct {
	North float64
	East  float64
	Down  float64
}

// Length of the displacement.
func (d Ned) Length() float64 {
	return math.Sqrt(d.North*d.North + d.East*d.East + d.Down*d.Down)
}

// Bearing of the horizontal component, degrees in [0, 360).
func (d Ned) Bearing() float64 {
	return Wrap360(degrees(math.Atan2(d.East, d.North)))
}

// Elevation above the local horizontal plane, degrees in [-90, 90].
func (d Ned) Elevation() float64 {
	return degrees(math.Asin(-d.Down / d.Length()))
}

func (d Ned) String() string {
	return fmt.Sprintf("[N:%.3f, E:%.3f, D:%.3f]", d.North, d.East, d.Down)
}

// nedFrame returns the unit north, east and down vectors at p.
func nedFrame(p LatLon) (north, east, down r3.Vector) {
	sinφ, cosφ := math.Sincos(radians(p.Lat))
	sinλ, cosλ := math.Sincos(radians(p.Lon))
	north = r3.Vector{X: -sinφ * cosλ, Y: -sinφ * sinλ, Z: cosφ}
	east = r3.Vector{X: -sinλ, Y: cosλ}
	down = r3.Vector{X: -cosφ * cosλ, Y: -cosφ * sinλ, Z: -sinφ}
	return north, east, down
}

// Delta returns the straight line displacement from p1 to p2 expressed in
// the local north, east, down frame at p1. Heights are taken into account.
func (e *Ellipsoid) Delta(p1, p2 LatLon) Ned {
	δ := e.ToCartesian(p2).Sub(e.ToCartesian(p1).Vector)
	north, east, down := nedFrame(p1)
	return Ned{North: δ.Dot(north), East: δ.Dot(east), Down: δ.Dot(down)}
}

// DestinationNed returns the point displaced from p by d, where d is
// expressed in the local frame at p.
func (e *Ellipsoid) DestinationNed(p LatLon, d Ned) LatLon {
	north, east, down := nedFrame(p)
	δ := north.Mul(d.North).Add(east.Mul(d.East)).Add(down.Mul(d.Down))
	c := e.ToCartesian(p)
	return e.ToLatLon(Cartesian{c.Add(δ)})
}
