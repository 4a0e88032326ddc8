package geodesy

import "fmt"

// Result is the solution of a direct or inverse geodesic problem.
type Result struct {
	// Start is the first point, with its longitude normalized.
	Start LatLon
	// End is the destination of a direct problem, or the normalized
	// second point of an inverse problem.
	End LatLon
	// Distance from Start to End along the geodesic (meters), never
	// negative. A direct problem with a negative distance reports its
	// magnitude.
	Distance float64
	// InitialBearing is the azimuth at Start, degrees in [0, 360).
	InitialBearing float64
	// FinalBearing is the (forward) azimuth at End, degrees in [0, 360).
	FinalBearing float64
	// Iterations used by the solver. Zero for coincident points and for
	// spherical ellipsoids.
	Iterations int
}

// Inverse solves the inverse geodesic problem.
//
// Param p1 is the first point; p1.Lat should be in the range [-90,+90].
// Param p2 is the second point; p2.Lat should be in the range [-90,+90].
//
// Returns the distance from p1 to p2 (meters) and the azimuths at both
// points (degrees). The values of the azimuths are in the range [0,360).
// Coincident points return a zero distance and zero azimuths.
//
// The solution is found with Vincenty's iteration on the auxiliary sphere.
// It fails with a *ConvergenceError (matching ErrFailedConvergence) for
// antipodal and some nearly antipodal points; the caller may then retry
// on e.Sphere(). Ellipsoids from NewSpherical use great circle formulas
// and never fail to converge.
func (e *Ellipsoid) Inverse(p1, p2 LatLon) (Result, error) {
	if err := p1.Validate(); err != nil {
		return Result{}, fmt.Errorf("inverse: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return Result{}, fmt.Errorf("inverse: %w", err)
	}
	p1, p2 = p1.Normalize(), p2.Normalize()
	if e.spherical {
		return sphericalInverse(e.radius, p1, p2), nil
	}
	return e.vincentyInverse(p1, p2)
}

// Direct solves the direct geodesic problem.
//
// Param p is the starting point; p.Lat should be in the range [-90,+90].
// Param bearing is the azimuth at p (degrees).
// Param distance is the distance from p to the destination (meters).
// Negative is ok and travels along bearing+180.
// Non-finite bearings and distances fail with ErrDomain.
//
// Returns the destination and the azimuth there, measured along bearing
// even when distance is negative. The longitude
// of the destination is in the range (-180,+180] and the azimuth in [0,360).
func (e *Ellipsoid) Direct(p LatLon, bearing, distance float64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("direct: %w", err)
	}
	if !finite(bearing) || !finite(distance) {
		return Result{}, fmt.Errorf("direct: %w: bearing %v, distance %v", ErrDomain, bearing, distance)
	}
	p = p.Normalize()
	if e.spherical {
		return sphericalDirect(e.radius, p, bearing, distance), nil
	}
	return e.vincentyDirect(p, bearing, distance)
}

// Distance returns the geodesic distance from p1 to p2 (meters).
func (e *Ellipsoid) Distance(p1, p2 LatLon) (float64, error) {
	res, err := e.Inverse(p1, p2)
	return res.Distance, err
}

// InitialBearing returns the azimuth at p1 of the geodesic to p2 (degrees).
func (e *Ellipsoid) InitialBearing(p1, p2 LatLon) (float64, error) {
	res, err := e.Inverse(p1, p2)
	return res.InitialBearing, err
}

// FinalBearing returns the azimuth on arrival at p2 from p1 (degrees).
func (e *Ellipsoid) FinalBearing(p1, p2 LatLon) (float64, error) {
	res, err := e.Inverse(p1, p2)
	return res.FinalBearing, err
}

// Destination returns the point reached from p after travelling distance
// meters along bearing.
func (e *Ellipsoid) Destination(p LatLon, bearing, distance float64) (LatLon, error) {
	res, err := e.Direct(p, bearing, distance)
	return res.End, err
}
