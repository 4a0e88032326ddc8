package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tidwall/geodesy"
)

// LoadEllipsoids reads the ellipsoid definitions in the YAML file at path.
func LoadEllipsoids(path string) ([]*geodesy.Ellipsoid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load ellipsoids: %w", err)
	}

	var dto YAMLEllipsoidFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := validator.New().Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return MapEllipsoids(path, dto)
}
