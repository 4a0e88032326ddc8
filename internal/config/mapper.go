package config

import (
	"fmt"

	"github.com/tidwall/geodesy"
)

func MapEllipsoids(path string, yf YAMLEllipsoidFile) ([]*geodesy.Ellipsoid, error) {
	out := make([]*geodesy.Ellipsoid, 0, len(yf.Ellipsoids))
	for i, ye := range yf.Ellipsoids {
		e, err := MapEllipsoid(ye)
		if err != nil {
			return nil, fmt.Errorf("%s: ellipsoids[%d]: %w", path, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func MapEllipsoid(ye YAMLEllipsoid) (*geodesy.Ellipsoid, error) {
	set := 0
	for _, p := range []*float64{ye.F, ye.RF, ye.B} {
		if p != nil {
			set++
		}
	}

	if ye.Spherical {
		if set != 0 {
			return nil, invalidField(ye.Name, "spherical", "a sphere takes no flattening")
		}
		// NewSpherical panics on a bad radius; validate it first
		if _, err := geodesy.NewEllipsoid(ye.Name, ye.A, 0); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return geodesy.NewSpherical(ye.Name, ye.A), nil
	}
	if set != 1 {
		return nil, invalidField(ye.Name, "f", "exactly one of f, rf or b is required")
	}

	var f float64
	switch {
	case ye.F != nil:
		f = *ye.F
	case ye.RF != nil:
		f = 1 / *ye.RF
	default:
		if *ye.B > ye.A {
			return nil, invalidField(ye.Name, "b", "semi-minor axis exceeds semi-major axis")
		}
		f = (ye.A - *ye.B) / ye.A
	}
	e, err := geodesy.NewEllipsoid(ye.Name, ye.A, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return e, nil
}

func invalidField(name, field, msg string) error {
	return fmt.Errorf("%w: %s.%s: %s", ErrInvalidConfig, name, field, msg)
}
