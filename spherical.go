// API for the shperical routines in Go
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geodesy

import (
	"math"
)

func sphericalInverse(radius float64, p1, p2 LatLon) Result {
	res := Result{Start: p1, End: p2}
	if p1.Equal(p2) {
		return res
	}
	res.Distance = distance(radius, p1.Lat, p1.Lon, p2.Lat, p2.Lon)
	res.InitialBearing = bearing(p1.Lat, p1.Lon, p2.Lat, p2.Lon)
	res.FinalBearing = Wrap360(bearing(p2.Lat, p2.Lon, p1.Lat, p1.Lon) + 180)
	return res
}

func sphericalDirect(radius float64, p LatLon, azi1, s12 float64) Result {
	la2, lo2 := destination(radius, p.Lat, p.Lon, s12, azi1)
	res := Result{
		Start:          p,
		End:            LatLon{Lat: la2, Lon: lo2, Height: p.Height},
		Distance:       math.Abs(s12),
		InitialBearing: Wrap360(azi1),
	}
	// the final bearing is the heading at End along azi1, whichever way
	// the point was reached
	switch {
	case s12 == 0:
		res.FinalBearing = res.InitialBearing
	case s12 < 0:
		res.FinalBearing = bearing(la2, lo2, p.Lat, p.Lon)
	default:
		res.FinalBearing = Wrap360(bearing(la2, lo2, p.Lat, p.Lon) + 180)
	}
	return res
}

func destination(radius float64, lat1, lon1, meters, bearingDegrees float64) (lat2, lon2 float64) {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	δ := meters / radius
	θ := radians(bearingDegrees)
	φ1 := radians(lat1)
	λ1 := radians(lon1)
	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) +
		math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	return degrees(φ2), Wrap180(degrees(λ2))
}

func distance(radius float64, lat1, lon1, lat2, lon2 float64) float64 {
	// haversine formula
	φ1 := radians(lat1)
	λ1 := radians(lon1)
	φ2 := radians(lat2)
	λ2 := radians(lon2)
	Δφ := φ2 - φ1
	Δλ := λ2 - λ1
	sΔφ2 := math.Sin(Δφ / 2)
	sΔλ2 := math.Sin(Δλ / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return radius * 2 * math.Asin(math.Sqrt(math.Min(haver, 1)))
}

func bearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	φ1 := radians(lat1)
	φ2 := radians(lat2)
	Δλ := radians(lon2 - lon1)
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Atan2(y, x)
	return Wrap360(degrees(θ))
}

// MaxLatitude returns the most northerly latitude (degrees) reached by
// a great circle leaving p at bearing, using Clairaut's formula.
func MaxLatitude(p LatLon, bearing float64) float64 {
	θ := radians(bearing)
	φ := radians(p.Lat)
	φMax, _ := ClampedAcos(math.Abs(math.Sin(θ) * math.Cos(φ)))
	return degrees(φMax)
}

// CrossingParallels returns the two longitudes at which the great circle
// through p1 and p2 crosses the latitude lat. The last result is false
// when the great circle never reaches lat.
func CrossingParallels(p1, p2 LatLon, lat float64) (lon1, lon2 float64, ok bool) {
	φ := radians(lat)
	φ1, λ1 := radians(p1.Lat), radians(p1.Lon)
	φ2, λ2 := radians(p2.Lat), radians(p2.Lon)
	Δλ := λ2 - λ1

	x := math.Sin(φ1) * math.Cos(φ2) * math.Cos(φ) * math.Sin(Δλ)
	y := math.Sin(φ1)*math.Cos(φ2)*math.Cos(φ)*math.Cos(Δλ) - math.Cos(φ1)*math.Sin(φ2)*math.Cos(φ)
	z := math.Cos(φ1) * math.Cos(φ2) * math.Sin(φ) * math.Sin(Δλ)

	if z*z > x*x+y*y {
		return 0, 0, false
	}
	λm := math.Atan2(-y, x) // longitude at the maximum latitude
	Δλi, err := ClampedAcos(z / math.Hypot(x, y))
	if err != nil {
		return 0, 0, false
	}
	lon1 = Wrap180(degrees(λ1 + λm - Δλi))
	lon2 = Wrap180(degrees(λ1 + λm + Δλi))
	return lon1, lon2, true
}

// isometricDelta returns Δψ, the difference in isometric latitude between
// φ1 and φ2 (radians): the stretch of the Mercator projection.
func isometricDelta(φ1, φ2 float64) float64 {
	return math.Log(math.Tan(φ2/2+math.Pi/4) / math.Tan(φ1/2+math.Pi/4))
}

// rhumbRatio returns Δφ/Δψ, falling back to cos φ1 on east-west lines.
func rhumbRatio(Δφ, Δψ, φ1 float64) float64 {
	if math.Abs(Δψ) > 10e-12 {
		return Δφ / Δψ
	}
	return math.Cos(φ1)
}

// RhumbDistance returns the distance along the rhumb line (loxodrome)
// from p1 to p2 on a sphere of the given radius.
func RhumbDistance(p1, p2 LatLon, radius float64) float64 {
	φ1, φ2 := radians(p1.Lat), radians(p2.Lat)
	Δφ := φ2 - φ1
	Δλ := radians(AngleDiff(p1.Lon, p2.Lon))
	Δψ := isometricDelta(φ1, φ2)
	q := rhumbRatio(Δφ, Δψ, φ1)
	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)
	return δ * radius
}

// RhumbBearing returns the constant bearing (degrees) of the rhumb line
// from p1 to p2.
func RhumbBearing(p1, p2 LatLon) float64 {
	if p1.Equal(p2) {
		return 0
	}
	Δλ := radians(AngleDiff(p1.Lon, p2.Lon))
	Δψ := isometricDelta(radians(p1.Lat), radians(p2.Lat))
	return Wrap360(degrees(math.Atan2(Δλ, Δψ)))
}

// RhumbDestination returns the point reached by travelling distance along
// a rhumb line of constant bearing from p on a sphere of the given radius.
func RhumbDestination(p LatLon, distance, bearing, radius float64) LatLon {
	φ1, λ1 := radians(p.Lat), radians(p.Lon)
	θ := radians(bearing)
	δ := distance / radius
	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ
	// past a pole: continue on the other side
	if φ2 > math.Pi/2 {
		φ2 = math.Pi - φ2
	} else if φ2 < -math.Pi/2 {
		φ2 = -math.Pi - φ2
	}
	Δψ := isometricDelta(φ1, φ2)
	q := rhumbRatio(Δφ, Δψ, φ1)
	Δλ := δ * math.Sin(θ) / q
	return LatLon{Lat: degrees(φ2), Lon: Wrap180(degrees(λ1 + Δλ)), Height: p.Height}
}

// RhumbMidpoint returns the point half way along the rhumb line from p1
// to p2.
func RhumbMidpoint(p1, p2 LatLon) LatLon {
	φ1, λ1 := radians(p1.Lat), radians(p1.Lon)
	φ2, λ2 := radians(p2.Lat), radians(p2.Lon)
	if math.Abs(λ2-λ1) > math.Pi {
		λ1 += 2 * math.Pi // crossing anti-meridian
	}
	φ3 := (φ1 + φ2) / 2
	f1 := math.Tan(math.Pi/4 + φ1/2)
	f2 := math.Tan(math.Pi/4 + φ2/2)
	f3 := math.Tan(math.Pi/4 + φ3/2)
	λ3 := ((λ2-λ1)*math.Log(f3) + λ1*math.Log(f2) - λ2*math.Log(f1)) / math.Log(f2/f1)
	if math.IsNaN(λ3) || math.IsInf(λ3, 0) {
		λ3 = (λ1 + λ2) / 2 // parallel of latitude
	}
	return LatLon{Lat: degrees(φ3), Lon: Wrap180(degrees(λ3)), Height: (p1.Height + p2.Height) / 2}
}
