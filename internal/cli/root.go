package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tidwall/geodesy"
	"github.com/tidwall/geodesy/internal/config"
	"github.com/tidwall/geodesy/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the subcommands once the configuration has
// been loaded.
type app struct {
	configPath string
	ellipsoid  string
	debug      bool

	cfg      config.Config
	model    *geodesy.Ellipsoid
	registry *geodesy.Registry
	cleanup  func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "geodesy",
		Short: "Geodesic calculations on ellipsoidal and spherical earth models",
		Long: `Geodesic calculations on ellipsoidal and spherical earth models.

Coordinates are decimal degrees. Put "--" before the arguments when the
first one is negative, e.g. geodesy inverse -- -37.95 144.42 -37.65 143.93`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.cleanup != nil {
				return a.cleanup()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	pf.StringVarP(&a.ellipsoid, "ellipsoid", "e", "", "ellipsoid model (default from config, WGS84)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		inverseCmd(a),
		directCmd(a),
		midpointCmd(a),
		intersectCmd(a),
		ellipsoidsCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ellipsoid") {
		cfg.Ellipsoid = a.ellipsoid
	}
	if a.debug {
		cfg.Log.Debug = true
	}

	cleanup, err := logger.Setup(logger.Config{
		Format: cfg.Log.Format,
		Debug:  cfg.Log.Debug,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cleanup = cleanup

	model, reg, err := config.Resolve(cfg)
	if err != nil {
		return err
	}
	a.cfg, a.model, a.registry = cfg, model, reg
	logger.L().Debug("config.loaded",
		"file", a.configPath,
		"ellipsoid", model.Name(),
		"ellipsoids", reg.Len(),
		"spherical_fallback", cfg.SphericalFallback,
	)
	return nil
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], s, err)
		}
		out[i] = v
	}
	return out, nil
}

func latLon(lat, lon float64) (geodesy.LatLon, error) {
	p := geodesy.LatLon{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		return geodesy.LatLon{}, err
	}
	return p.Normalize(), nil
}
