package geodesy

import (
	"errors"
	"fmt"
)

// Polygon struct for accumulating information about a geodesic polygon.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Ellipsoid.PolygonInit before use.
type Polygon struct {
	e        *Ellipsoid
	polyline bool
	points   []LatLon
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices added by
// Polygon.AddPoint() define a polygon and the perimeter and area are
// returned by Polygon.Compute().
// If polyline is set, then the vertices define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The perimeter is accumulated with compensated summation to guard
// against the loss of accuracy with many-sided polygons. At any point you
// can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	return Polygon{e: e, polyline: polyline}
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	p.points = append(p.points, LatLon{Lat: lat, Lon: lon})
}

// AddEdge adds an edge to the polygon or polyline, ending at the point
// reached from the current point along azi for s meters.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) error {
	if len(p.points) == 0 {
		return errors.New("polygon: edge without a starting point")
	}
	next, err := p.e.Destination(p.points[len(p.points)-1], azi, s)
	if err != nil {
		return fmt.Errorf("polygon: %w", err)
	}
	p.points = append(p.points, next)
	return nil
}

// Compute the results for a polygon
//
// Returns the area of the polygon (meters-squared), zero for polylines,
// the perimeter of the polygon or length of the polyline (meters), and
// the number of points.
//
// The perimeter sums the geodesic edge lengths on the ellipsoid. The area
// is the spherical excess on the ellipsoid's authalic sphere and so is an
// approximation for large polygons on oblate ellipsoids. There's no need
// to "close" the polygon by repeating the first vertex. More points can be
// added to the polygon after this call.
func (p *Polygon) Compute() (area, perimeter float64, n int, err error) {
	n = len(p.points)
	if n < 2 {
		return 0, 0, n, nil
	}
	edges := n - 1
	if !p.polyline {
		edges = n
	}
	lengths := make([]float64, 0, edges)
	for i := 0; i < edges; i++ {
		s, err := p.e.Distance(p.points[i], p.points[(i+1)%n])
		if err != nil {
			return 0, 0, n, fmt.Errorf("polygon edge %d: %w", i, err)
		}
		lengths = append(lengths, s)
	}
	perimeter = Fsum(lengths...)
	if p.polyline || n < 3 {
		return 0, perimeter, n, nil
	}
	ns := make([]NVector, n)
	for i, pt := range p.points {
		ns[i] = ToNVector(pt)
	}
	area = AreaOf(ns, p.e.AuthalicRadius())
	return area, perimeter, n, nil
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	p.points = p.points[:0]
}
