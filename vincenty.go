package geodesy

import (
	"math"
)

const (
	// vincentyTolerance is the change in λ (inverse) or σ (direct), in
	// radians, below which the iteration has converged. About 0.006 mm.
	vincentyTolerance = 1e-12
	// maxIterations bounds the work done on pathological inputs.
	maxIterations = 200
	// tiny stands in for cos φ at the poles.
	tiny = 1e-300
)

// reducedLatitude returns sin U and cos U for tan U = (1-f)⋅tan φ, where
// lat is φ in degrees. It works from the sine and cosine of φ so that the
// poles never divide by zero.
func reducedLatitude(f, lat float64) (sinU, cosU float64) {
	sinφ, cosφ := math.Sincos(radians(lat))
	if math.Abs(lat) == 90 {
		sinφ, cosφ = math.Copysign(1, lat), tiny
	}
	sinU = (1 - f) * sinφ
	r := math.Hypot(sinU, cosφ)
	return sinU / r, cosφ / r
}

// distanceSeries returns Vincenty's A and B coefficients for
// u² = cos²α⋅(a²-b²)/b².
func distanceSeries(uSq float64) (A, B float64) {
	A = 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B = uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	return A, B
}

// deltaSigma returns the difference Δσ between the auxiliary sphere arc
// and the geodesic arc scaled by b⋅A.
func deltaSigma(B, sinσ, cosσ, cos2σm float64) float64 {
	cos2σmSq := cos2σm * cos2σm
	return B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σmSq)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σmSq)))
}

// lambdaCorrection returns λ-L, the difference between the longitude on
// the auxiliary sphere and on the ellipsoid.
func lambdaCorrection(f, sinα, cosSqα, σ, sinσ, cosσ, cos2σm float64) float64 {
	C := f / 16 * cosSqα * (4 + f*(4-3*cosSqα))
	return (1 - C) * f * sinα * (σ + C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
}

// vincentyInverse solves the inverse problem between the normalized points
// p1 and p2, returning the distance (meters) and the forward azimuths at
// both ends (degrees, [0, 360)).
func (e *Ellipsoid) vincentyInverse(p1, p2 LatLon) (Result, error) {
	res := Result{Start: p1, End: p2}
	if p1.Equal(p2) {
		return res, nil
	}
	f, a, b := e.flattening, e.radius, e.b
	L := radians(AngleDiff(p1.Lon, p2.Lon))
	sinU1, cosU1 := reducedLatitude(f, p1.Lat)
	sinU2, cosU2 := reducedLatitude(f, p2.Lat)
	antipodal := math.Abs(L) > math.Pi/2 || math.Abs(radians(p2.Lat-p1.Lat)) > math.Pi/2

	var sinλ, cosλ, sinσ, cosσ, σ, sinα, cosSqα, cos2σm float64
	λ := L
	converged := false
	for res.Iterations < maxIterations {
		res.Iterations++
		sinλ, cosλ = math.Sincos(λ)
		t := fdot(cosU1, sinU2, -sinU1*cosU2, cosλ)
		sinSqσ := (cosU2*sinλ)*(cosU2*sinλ) + t*t
		cosσ = fdot(sinU1, sinU2, cosU1*cosU2, cosλ)
		if sinSqσ < 1e-24 {
			// σ is within 0.006 mm of 0 or π
			if cosσ > 0 {
				return res, nil
			}
			return Result{}, &ConvergenceError{Op: "inverse", Iterations: res.Iterations, Antipodal: true}
		}
		sinσ = math.Sqrt(sinSqσ)
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		cos2σm = 0 // equatorial line
		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		}
		prev := λ
		λ = L + lambdaCorrection(f, sinα, cosSqα, σ, sinσ, cosσ, cos2σm)
		check := math.Abs(λ)
		if antipodal {
			check -= math.Pi
		}
		if check > math.Pi {
			return Result{}, &ConvergenceError{Op: "inverse", Iterations: res.Iterations, Antipodal: antipodal}
		}
		if math.Abs(λ-prev) <= vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return Result{}, &ConvergenceError{Op: "inverse", Iterations: res.Iterations, Antipodal: antipodal}
	}

	uSq := cosSqα * (a*a - b*b) / (b * b)
	A, B := distanceSeries(uSq)
	res.Distance = b * A * (σ - deltaSigma(B, sinσ, cosσ, cos2σm))
	α1 := math.Atan2(cosU2*sinλ, fdot(cosU1, sinU2, -sinU1*cosU2, cosλ))
	α2 := math.Atan2(cosU1*sinλ, fdot(cosU1*sinU2, cosλ, -sinU1, cosU2))
	res.InitialBearing = Wrap360(degrees(α1))
	res.FinalBearing = Wrap360(degrees(α2))
	return res, nil
}

// vincentyDirect solves the direct problem from the normalized point p
// along bearing (degrees) for distance meters.
func (e *Ellipsoid) vincentyDirect(p LatLon, bearing, distance float64) (Result, error) {
	f, a, b := e.flattening, e.radius, e.b
	α1 := radians(bearing)
	sinα1, cosα1 := math.Sincos(α1)
	sinU1, cosU1 := reducedLatitude(f, p.Lat)
	σ1 := math.Atan2(sinU1, cosU1*cosα1)
	sinα := cosU1 * sinα1
	cosSqα := 1 - sinα*sinα
	uSq := cosSqα * (a*a - b*b) / (b * b)
	A, B := distanceSeries(uSq)

	res := Result{Start: p, Distance: math.Abs(distance), InitialBearing: Wrap360(bearing)}
	s := distance / (b * A)
	σ := s
	var sinσ, cosσ, cos2σm float64
	converged := false
	for res.Iterations < maxIterations {
		res.Iterations++
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ, cosσ = math.Sincos(σ)
		prev := σ
		σ = s + deltaSigma(B, sinσ, cosσ, cos2σm)
		if math.Abs(σ-prev) <= vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return Result{}, &ConvergenceError{Op: "direct", Iterations: res.Iterations}
	}
	// refresh the auxiliary quantities for the converged σ
	cos2σm = math.Cos(2*σ1 + σ)
	sinσ, cosσ = math.Sincos(σ)

	x := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1, (1-f)*math.Hypot(sinα, x))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	L := λ - lambdaCorrection(f, sinα, cosSqα, σ, sinσ, cosσ, cos2σm)
	α2 := math.Atan2(sinα, -x)

	res.End = LatLon{
		Lat:    degrees(φ2),
		Lon:    Wrap180(p.Lon + degrees(L)),
		Height: p.Height,
	}
	res.FinalBearing = Wrap360(degrees(α2))
	return res, nil
}
