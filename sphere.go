package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

var northPole = r3.Vector{Z: 1}

// InitialBearing returns the bearing in degrees [0, 360) at n1 of the great
// circle path to n2. Coincident points and paths leaving a pole return 0.
func InitialBearing(n1, n2 NVector) float64 {
	c1 := n1.v.Cross(n2.v)     // great circle through n1 & n2
	c2 := n1.v.Cross(northPole) // great circle through n1 & north pole
	if c1.Norm() < degenerateNorm || c2.Norm() < degenerateNorm {
		return 0
	}
	return Wrap360(degrees(angleBetween(c1, c2, n1.v)))
}

// FinalBearing returns the bearing in degrees [0, 360) on arrival at n2
// when travelling from n1 along the great circle.
func FinalBearing(n1, n2 NVector) float64 {
	return Wrap360(InitialBearing(n2, n1) + 180)
}

// directions returns the unit east and north vectors tangent at n.
func directions(n NVector) (east, north r3.Vector) {
	p := n.LatLon()
	sinφ, cosφ := math.Sincos(radians(p.Lat))
	sinλ, cosλ := math.Sincos(radians(p.Lon))
	east = r3.Vector{X: -sinλ, Y: cosλ}
	north = r3.Vector{X: -sinφ * cosλ, Y: -sinφ * sinλ, Z: cosφ}
	return east, north
}

// Destination returns the point reached by travelling distance along the
// great circle leaving n at bearing (degrees) on a sphere of the given
// radius. A negative distance travels the opposite way.
func Destination(n NVector, distance, bearing, radius float64) NVector {
	δ := distance / radius
	sinθ, cosθ := math.Sincos(radians(bearing))
	sinδ, cosδ := math.Sincos(δ)
	east, north := directions(n)
	d := north.Mul(cosθ).Add(east.Mul(sinθ)) // direction at n
	v := n.v.Mul(cosδ).Add(d.Mul(sinδ))
	return NVector{v: v.Normalize(), h: n.h}
}

// IntermediatePoint returns the point at fraction of the way from n1 to n2
// along the great circle. Fraction 0 is n1 and 1 is n2; values outside
// [0, 1] extrapolate. Antipodal points define no unique path.
func IntermediatePoint(n1, n2 NVector, fraction float64) (NVector, error) {
	θ := angleBetween(n1.v, n2.v, r3.Vector{})
	if θ < degenerateNorm {
		return n1, nil
	}
	sinθ := math.Sin(θ)
	if sinθ < degenerateNorm {
		return NVector{}, fmt.Errorf("intermediate point: %w", ErrCoincidentOrAntipodal)
	}
	a := math.Sin((1-fraction)*θ) / sinθ
	b := math.Sin(fraction*θ) / sinθ
	v := n1.v.Mul(a).Add(n2.v.Mul(b))
	h := n1.h + fraction*(n2.h-n1.h)
	return NVector{v: v.Normalize(), h: h}, nil
}

// CrossTrackDistance returns the signed distance from p to the great circle
// through start and end: negative to the left of the path, positive to the
// right.
func CrossTrackDistance(p, start, end NVector, radius float64) (float64, error) {
	gc, err := GreatCircleThrough(start, end)
	if err != nil {
		return 0, fmt.Errorf("cross track: %w", err)
	}
	α := angleBetween(gc.v, p.v, r3.Vector{}) - math.Pi/2
	return α * radius, nil
}

// AlongTrackDistance returns how far along the path from start towards end
// the point closest to p lies. It is negative when that point is behind
// start.
func AlongTrackDistance(p, start, end NVector, radius float64) (float64, error) {
	gc, err := GreatCircleThrough(start, end)
	if err != nil {
		return 0, fmt.Errorf("along track: %w", err)
	}
	onGC := gc.v.Cross(p.v).Cross(gc.v) // p projected onto the great circle
	if onGC.Norm() < degenerateNorm {
		// p is a pole of the path
		return 0, fmt.Errorf("along track: %w", ErrCoincidentOrAntipodal)
	}
	α := angleBetween(start.v, onGC, gc.v)
	return α * radius, nil
}

// withinExtent reports whether p lies between the two lines normal to the
// segment a-b through its endpoints.
func withinExtent(p, a, b NVector) bool {
	e1 := p.v.Sub(a.v).Dot(b.v.Sub(a.v))
	e2 := p.v.Sub(b.v).Dot(a.v.Sub(b.v))
	sameHemisphere := p.Dot(a) >= 0 && p.Dot(b) >= 0
	return e1 >= 0 && e2 >= 0 && sameHemisphere
}

// NearestOnSegment returns the point on the great circle segment a-b
// nearest to p. When p lies beyond the segment's extent the nearer
// endpoint is returned.
func NearestOnSegment(p, a, b NVector) NVector {
	if withinExtent(p, a, b) {
		c1 := a.v.Cross(b.v)
		if c1.Norm() >= degenerateNorm {
			c2 := p.v.Cross(c1)
			if n := c1.Cross(c2); n.Norm() >= degenerateNorm {
				return NVector{v: n.Normalize()}
			}
		}
	}
	if Distance(p, a, 1) <= Distance(p, b, 1) {
		return a
	}
	return b
}

// NearestOn returns the point on path nearest to p and its distance from
// p on a sphere of the given radius. A closed path also includes the edge
// from its last point back to the first.
func NearestOn(p NVector, path []NVector, closed bool, radius float64) (NVector, float64, error) {
	if closed {
		path = trimClosed(path)
	}
	switch len(path) {
	case 0:
		return NVector{}, 0, fmt.Errorf("nearest on: %w", ErrEmptyPath)
	case 1:
		return path[0], Distance(p, path[0], radius), nil
	}
	edges := len(path) - 1
	if closed && len(path) > 2 {
		edges++
	}
	var nearest NVector
	best := math.Inf(1)
	for i := 0; i < edges; i++ {
		c := NearestOnSegment(p, path[i], path[(i+1)%len(path)])
		if d := Distance(p, c, radius); d < best {
			nearest, best = c, d
		}
	}
	return nearest, best, nil
}

// IntersectionOfPaths returns where the path leaving p1 at brng1 crosses
// the path leaving p2 at brng2. Of the two candidate points it picks the one
// both travellers head towards, or the further one when they travel in
// opposite senses.
func IntersectionOfPaths(p1 NVector, brng1 float64, p2 NVector, brng2 float64) (NVector, error) {
	c1 := GreatCircle(p1, brng1)
	c2 := GreatCircle(p2, brng2)
	i1, i2, err := Intersection(c1, c2)
	if err != nil {
		return NVector{}, fmt.Errorf("intersection of paths: %w", err)
	}
	// direction of travel is c×n
	dir1 := sign(c1.v.Cross(p1.v).Dot(i1.v))
	dir2 := sign(c2.v.Cross(p2.v).Dot(i1.v))
	switch dir1 + dir2 {
	case 2:
		return i1, nil
	case -2:
		return i2, nil
	}
	if p1.v.Add(p2.v).Dot(i1.v) > 0 {
		return i2, nil
	}
	return i1, nil
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// trimClosed drops the closing vertex of a polygon given as a closed ring.
func trimClosed(polygon []NVector) []NVector {
	if n := len(polygon); n > 1 && polygon[0].v == polygon[n-1].v {
		return polygon[:n-1]
	}
	return polygon
}

// IsEnclosedBy reports whether p lies inside polygon. The polygon may be
// open or closed and may be concave, but not self-intersecting.
func IsEnclosedBy(p NVector, polygon []NVector) bool {
	polygon = trimClosed(polygon)
	if len(polygon) < 3 {
		return false
	}
	toVertex := make([]r3.Vector, len(polygon)+1)
	for i, v := range polygon {
		toVertex[i] = p.v.Sub(v.v)
	}
	toVertex[len(polygon)] = toVertex[0]
	var angles []float64
	for i := 0; i < len(polygon); i++ {
		angles = append(angles, angleBetween(toVertex[i], toVertex[i+1], p.v))
	}
	return math.Abs(Fsum(angles...)) > math.Pi
}

// IsPolar reports whether polygon encloses the north or south pole. The
// course changes along a polygon sum to ±360° unless it goes round a pole,
// where they cancel out.
func IsPolar(polygon []NVector) bool {
	polygon = trimClosed(polygon)
	n := len(polygon)
	if n < 3 {
		return false
	}
	deltas := make([]float64, 0, 2*n)
	for i := range polygon {
		a, b, c := polygon[i], polygon[(i+1)%n], polygon[(i+2)%n]
		final := FinalBearing(a, b)
		deltas = append(deltas,
			Wrap180(final-InitialBearing(a, b)), // along the edge
			Wrap180(InitialBearing(b, c)-final), // turn at the vertex
		)
	}
	return math.Abs(Fsum(deltas...)) < 90
}

// AreaOf returns the area of polygon on a sphere of the given radius, in
// units of radius squared, from its spherical excess.
func AreaOf(polygon []NVector, radius float64) float64 {
	polygon = trimClosed(polygon)
	n := len(polygon)
	if n < 3 {
		return 0
	}
	// great circle normals of each edge
	c := make([]r3.Vector, n)
	for i := range polygon {
		c[i] = polygon[i].v.Cross(polygon[(i+1)%n].v)
	}
	exterior := make([]float64, n)
	for i := range c {
		exterior[i] = angleBetween(c[i], c[(i+1)%n], polygon[(i+1)%n].v)
	}
	interior := float64(n)*math.Pi - math.Abs(Fsum(exterior...))
	excess := interior - float64(n-2)*math.Pi
	return math.Abs(excess) * radius * radius
}
