package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// domainTolerance is how far past ±1 an acos/asin argument may overshoot
// before it is treated as a caller error instead of rounding noise.
const domainTolerance = 1e-12

// ClampedAcos returns acos(x) in radians, clamping x into [-1, 1] first.
// Arguments further than 1e-12 outside that range return ErrDomain.
func ClampedAcos(x float64) (float64, error) {
	c, err := clamp1(x)
	if err != nil {
		return 0, fmt.Errorf("acos(%v): %w", x, err)
	}
	return math.Acos(c), nil
}

// ClampedAsin returns asin(x) in radians, clamping x into [-1, 1] first.
// Arguments further than 1e-12 outside that range return ErrDomain.
func ClampedAsin(x float64) (float64, error) {
	c, err := clamp1(x)
	if err != nil {
		return 0, fmt.Errorf("asin(%v): %w", x, err)
	}
	return math.Asin(c), nil
}

func clamp1(x float64) (float64, error) {
	switch {
	case math.IsNaN(x), x < -1-domainTolerance, x > 1+domainTolerance:
		return 0, ErrDomain
	case x < -1:
		return -1, nil
	case x > 1:
		return 1, nil
	}
	return x, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Wrap360 reduces degs into [0, 360).
func Wrap360(degs float64) float64 {
	if 0 <= degs && degs < 360 {
		return degs
	}
	degs = math.Mod(degs, 360)
	if degs < 0 {
		degs += 360
		// tiny negative inputs round up to 360
		if degs == 360 {
			degs = 0
		}
	}
	return degs
}

// Wrap180 reduces degs into (-180, 180]. It is used to normalize
// longitudes and signed bearing differences.
func Wrap180(degs float64) float64 {
	if -180 < degs && degs <= 180 {
		return degs
	}
	degs = math.Mod(degs, 360)
	if degs <= -180 {
		degs += 360
	} else if degs > 180 {
		degs -= 360
	}
	return degs
}

// AngleDiff returns the signed angle b-a in (-180, 180].
func AngleDiff(a, b float64) float64 {
	return Wrap180(Wrap180(b) - Wrap180(a))
}

// Fsum returns the sum of xs with Neumaier's compensation, which keeps
// the result exact to the last bit for most inputs.
func Fsum(xs ...float64) float64 {
	var s, c float64
	for _, x := range xs {
		var t float64
		s, t = twoSum(s, x)
		c += t
	}
	return s + c
}

// twoSum is an error free transformation of a sum: u + v = s + t exactly.
func twoSum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// fdot returns a*b + c*d with a single rounding for the second product.
func fdot(a, b, c, d float64) float64 {
	return math.FMA(a, b, c*d)
}

func radians(degs float64) float64 {
	return (s1.Angle(degs) * s1.Degree).Radians()
}

func degrees(rads float64) float64 {
	return s1.Angle(rads).Degrees()
}
