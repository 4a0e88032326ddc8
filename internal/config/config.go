package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/tidwall/geodesy"
)

// ErrInvalidConfig is wrapped by every validation failure of a config or
// ellipsoid file.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the runtime configuration of the geodesy command.
type Config struct {
	// Ellipsoid names the model used by inverse and direct.
	Ellipsoid string `mapstructure:"ellipsoid" validate:"required"`
	// Radius is the sphere radius (meters) for the n-vector commands.
	Radius float64 `mapstructure:"radius" validate:"gt=0"`
	// SphericalFallback retries a failed Vincenty inverse on the
	// ellipsoid's mean sphere.
	SphericalFallback bool `mapstructure:"spherical_fallback"`
	// EllipsoidFiles are YAML files with extra ellipsoid definitions.
	// Relative paths are taken from the directory of the config file.
	EllipsoidFiles []string  `mapstructure:"ellipsoid_files"`
	Log            LogConfig `mapstructure:"log"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Debug  bool   `mapstructure:"debug"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Ellipsoid: geodesy.WGS84.Name(),
		Radius:    geodesy.MeanRadius,
		Log:       LogConfig{Format: "text"},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("ellipsoid", d.Ellipsoid)
	v.SetDefault("radius", d.Radius)
	v.SetDefault("spherical_fallback", d.SphericalFallback)
	v.SetDefault("ellipsoid_files", []string{})
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix("GEODESY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from path, if not empty, and from GEODESY_*
// environment variables, which take precedence over the file.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if used := v.ConfigFileUsed(); used != "" {
		dir := filepath.Dir(used)
		for i, p := range cfg.EllipsoidFiles {
			if !filepath.IsAbs(p) {
				cfg.EllipsoidFiles[i] = filepath.Join(dir, p)
			}
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// BuildRegistry returns the standard ellipsoids plus those defined in
// cfg.EllipsoidFiles. A name defined twice is an error.
func BuildRegistry(cfg Config) (*geodesy.Registry, error) {
	reg := geodesy.StandardRegistry()
	for _, path := range cfg.EllipsoidFiles {
		es, err := LoadEllipsoids(path)
		if err != nil {
			return nil, err
		}
		for _, e := range es {
			if reg, err = reg.Register(e); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return reg, nil
}

// Resolve builds the registry for cfg and looks up the configured
// ellipsoid in it.
func Resolve(cfg Config) (*geodesy.Ellipsoid, *geodesy.Registry, error) {
	reg, err := BuildRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}
	e, err := reg.Lookup(cfg.Ellipsoid)
	if err != nil {
		return nil, nil, err
	}
	return e, reg, nil
}
