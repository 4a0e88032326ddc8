package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidwall/geodesy"
)

func midpointCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "midpoint LAT1 LON1 LAT2 LON2",
		Short: "Great circle midpoint of two points",
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
			n1, n2 := geodesy.ToNVector(p1), geodesy.ToNVector(p2)
			m, err := geodesy.Midpoint(n1, n2)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "midpoint: %s\n", m.LatLon())
			fmt.Fprintf(w, "distance: %.3f m\n", geodesy.Distance(n1, n2, a.cfg.Radius))
			return nil
		},
	}
}

func intersectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect LAT1 LON1 BEARING1 LAT2 LON2 BEARING2",
		Short: "Where two great circle paths cross",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "LAT1", "LON1", "BEARING1", "LAT2", "LON2", "BEARING2")
			if err != nil {
				return err
			}
			p1, err := latLon(v[0], v[1])
			if err != nil {
				return err
			}
			p2, err := latLon(v[3], v[4])
			if err != nil {
				return err
			}
			n1, n2 := geodesy.ToNVector(p1), geodesy.ToNVector(p2)
			i, err := geodesy.IntersectionOfPaths(n1, v[2], n2, v[5])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "intersection: %s\n", i.LatLon())
			fmt.Fprintf(w, "from first:   %.3f m\n", geodesy.Distance(n1, i, a.cfg.Radius))
			fmt.Fprintf(w, "from second:  %.3f m\n", geodesy.Distance(n2, i, a.cfg.Radius))
			return nil
		},
	}
}
