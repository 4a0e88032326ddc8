package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// degenerateNorm is the length below which a cross product or vector sum
// is treated as zero: the inputs were parallel or antiparallel.
const degenerateNorm = 1e-12

// NVector is the unit vector normal to the reference surface at a position,
// paired with the height above that surface. It represents every position,
// poles included, without singularities.
type NVector struct {
	v r3.Vector
	h float64
}

// NewNVector returns the n-vector pointing along (x, y, z). The vector is
// normalized; a zero vector returns ErrDegenerateVector.
func NewNVector(x, y, z, height float64) (NVector, error) {
	v := r3.Vector{X: x, Y: y, Z: z}
	n := v.Norm()
	if !(n > 0) || math.IsInf(n, 0) {
		return NVector{}, fmt.Errorf("%w: (%v, %v, %v)", ErrDegenerateVector, x, y, z)
	}
	return NVector{v: v.Mul(1 / n), h: height}, nil
}

// ToNVector converts a geodetic position into its n-vector.
//
//	x = cosφ⋅cosλ, y = cosφ⋅sinλ, z = sinφ
func ToNVector(p LatLon) NVector {
	sinφ, cosφ := math.Sincos(radians(p.Lat))
	sinλ, cosλ := math.Sincos(radians(p.Lon))
	return NVector{
		v: r3.Vector{X: cosφ * cosλ, Y: cosφ * sinλ, Z: sinφ},
		h: p.Height,
	}
}

// LatLon converts n back into a geodetic position. It is the exact inverse
// of ToNVector.
//
//	φ = atan2(z, √(x²+y²)), λ = atan2(y, x)
func (n NVector) LatLon() LatLon {
	φ := math.Atan2(n.v.Z, math.Hypot(n.v.X, n.v.Y))
	λ := math.Atan2(n.v.Y, n.v.X)
	return LatLon{
		Lat:    degrees(φ),
		Lon:    Wrap180(degrees(λ)),
		Height: n.h,
	}
}

// X component.
func (n NVector) X() float64 { return n.v.X }

// Y component.
func (n NVector) Y() float64 { return n.v.Y }

// Z component.
func (n NVector) Z() float64 { return n.v.Z }

// Height above the reference surface (meters).
func (n NVector) Height() float64 { return n.h }

// Vector returns the unit vector without the height.
func (n NVector) Vector() r3.Vector { return n.v }

// WithHeight returns n at height h.
func (n NVector) WithHeight(h float64) NVector {
	n.h = h
	return n
}

// Antipode returns the n-vector on the opposite side of the Earth.
func (n NVector) Antipode() NVector {
	return NVector{v: n.v.Mul(-1), h: n.h}
}

// Dot returns the cosine of the angle between n and m.
func (n NVector) Dot(m NVector) float64 {
	return n.v.Dot(m.v)
}

// Cross returns n×m, which is not normalized.
func (n NVector) Cross(m NVector) r3.Vector {
	return n.v.Cross(m.v)
}

// ApproxEqual reports whether n and m point in the same direction within
// eps radians. Heights are ignored.
func (n NVector) ApproxEqual(m NVector, eps float64) bool {
	return angleBetween(n.v, m.v, r3.Vector{}) <= eps
}

func (n NVector) String() string {
	return fmt.Sprintf("[%.9f, %.9f, %.9f]", n.v.X, n.v.Y, n.v.Z)
}

func unit(v r3.Vector, err error) (NVector, error) {
	norm := v.Norm()
	if norm < degenerateNorm {
		return NVector{}, err
	}
	return NVector{v: v.Mul(1 / norm)}, nil
}

// GreatCircleThrough returns the normal of the plane holding n1, n2 and
// the Earth's center. Parallel or antiparallel inputs define no plane and
// return ErrCoincidentOrAntipodal.
func GreatCircleThrough(n1, n2 NVector) (NVector, error) {
	return unit(n1.v.Cross(n2.v), ErrCoincidentOrAntipodal)
}

// GreatCircle returns the normal of the great circle through n heading
// along bearing (degrees).
func GreatCircle(n NVector, bearing float64) NVector {
	p := n.LatLon()
	sinφ, cosφ := math.Sincos(radians(p.Lat))
	sinλ, cosλ := math.Sincos(radians(p.Lon))
	sinθ, cosθ := math.Sincos(radians(bearing))
	v := r3.Vector{
		X: sinλ*cosθ - sinφ*cosλ*sinθ,
		Y: -cosλ*cosθ - sinφ*sinλ*sinθ,
		Z: cosφ * sinθ,
	}
	return NVector{v: v.Normalize()}
}

// Intersection returns the two antipodal points where the great circles
// with normals c1 and c2 cross. The caller decides which one applies.
// Identical or opposite circles return ErrCoincidentOrAntipodal.
func Intersection(c1, c2 NVector) (NVector, NVector, error) {
	i, err := unit(c1.v.Cross(c2.v), ErrCoincidentOrAntipodal)
	if err != nil {
		return NVector{}, NVector{}, err
	}
	return i, i.Antipode(), nil
}

// Midpoint returns the point half way along the great circle arc between
// n1 and n2, at their mean height. Antipodal points have no unique
// midpoint and return ErrUndefinedMidpoint.
func Midpoint(n1, n2 NVector) (NVector, error) {
	m, err := unit(n1.v.Add(n2.v), ErrUndefinedMidpoint)
	if err != nil {
		return NVector{}, err
	}
	m.h = (n1.h + n2.h) / 2
	return m, nil
}

// Mean returns the geographic mean of ns.
func Mean(ns ...NVector) (NVector, error) {
	if len(ns) == 0 {
		return NVector{}, fmt.Errorf("%w: no positions", ErrDegenerateVector)
	}
	var x, y, z, h []float64
	for _, n := range ns {
		x = append(x, n.v.X)
		y = append(y, n.v.Y)
		z = append(z, n.v.Z)
		h = append(h, n.h)
	}
	sum := r3.Vector{X: Fsum(x...), Y: Fsum(y...), Z: Fsum(z...)}
	m, err := unit(sum, ErrDegenerateVector)
	if err != nil {
		return NVector{}, err
	}
	m.h = Fsum(h...) / float64(len(h))
	return m, nil
}

// Distance returns the great circle distance between n1 and n2 on a sphere
// of the given radius, in the same units as radius.
func Distance(n1, n2 NVector, radius float64) float64 {
	return angleBetween(n1.v, n2.v, r3.Vector{}) * radius
}

// angleBetween returns the angle from v1 to v2 in radians. With a zero sign
// vector the result is in [0, π]; otherwise it is in [-π, π], negative when
// v1×v2 points away from sign.
func angleBetween(v1, v2, sign r3.Vector) float64 {
	c := v1.Cross(v2)
	θ := math.Atan2(c.Norm(), v1.Dot(v2))
	if sign != (r3.Vector{}) && c.Dot(sign) < 0 {
		θ = -θ
	}
	return θ
}
