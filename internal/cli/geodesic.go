package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tidwall/geodesy"
	"github.com/tidwall/geodesy/internal/logger"
)

func inverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse LAT1 LON1 LAT2 LON2",
		Short: "Distance and bearings between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "LAT1", "LON1", "LAT2", "LON2")
			if err != nil {
				return err
			}
			p1, err := latLon(v[0], v[1])
			if err != nil {
				return err
			}
			p2, err := latLon(v[2], v[3])
			if err != nil {
				return err
			}

			model := a.model
			res, err := model.Inverse(p1, p2)
			if errors.Is(err, geodesy.ErrFailedConvergence) && a.cfg.SphericalFallback {
				logger.L().Warn("inverse.fallback",
					"ellipsoid", model.Name(),
					"from", p1.String(),
					"to", p2.String(),
					"error", err,
				)
				model = model.Sphere()
				res, err = model.Inverse(p1, p2)
			}
			if err != nil {
				return err
			}
			logger.L().Debug("inverse.done", "ellipsoid", model.Name(), "iterations", res.Iterations)

			printResult(cmd.OutOrStdout(), model, res)
			return nil
		},
	}
}

func directCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "direct LAT LON BEARING DISTANCE",
		Short: "Destination reached from a point along a bearing",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "LAT", "LON", "BEARING", "DISTANCE")
			if err != nil {
				return err
			}
			p, err := latLon(v[0], v[1])
			if err != nil {
				return err
			}
			res, err := a.model.Direct(p, v[2], v[3])
			if err != nil {
				return err
			}
			logger.L().Debug("direct.done", "ellipsoid", a.model.Name(), "iterations", res.Iterations)

			printResult(cmd.OutOrStdout(), a.model, res)
			return nil
		},
	}
}

func printResult(w io.Writer, e *geodesy.Ellipsoid, res geodesy.Result) {
	fmt.Fprintf(w, "ellipsoid:       %s\n", e.Name())
	fmt.Fprintf(w, "start:           %s\n", res.Start)
	fmt.Fprintf(w, "end:             %s\n", res.End)
	fmt.Fprintf(w, "distance:        %.3f m\n", res.Distance)
	fmt.Fprintf(w, "initial bearing: %.6f°\n", res.InitialBearing)
	fmt.Fprintf(w, "final bearing:   %.6f°\n", res.FinalBearing)
	fmt.Fprintf(w, "iterations:      %d\n", res.Iterations)
}
