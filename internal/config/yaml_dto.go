package config

type YAMLEllipsoidFile struct {
	Ellipsoids []YAMLEllipsoid `yaml:"ellipsoids" validate:"required,min=1,dive"`
}

// YAMLEllipsoid defines an ellipsoid by its semi-major axis and exactly one
// of flattening, inverse flattening or semi-minor axis. Spherical selects
// great circle formulas and forbids all three.
type YAMLEllipsoid struct {
	Name      string   `yaml:"name"      validate:"required"`
	A         float64  `yaml:"a"         validate:"gt=0"`
	F         *float64 `yaml:"f"         validate:"omitempty,lt=1"`
	RF        *float64 `yaml:"rf"        validate:"omitempty,gt=1"`
	B         *float64 `yaml:"b"         validate:"omitempty,gt=0"`
	Spherical bool     `yaml:"spherical"`
}
