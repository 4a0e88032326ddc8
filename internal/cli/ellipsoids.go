package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type theme struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
}

func defaultTheme() theme {
	cell := lipgloss.NewStyle().PaddingRight(2)
	return theme{
		Header:   cell.Bold(true).Underline(true),
		Cell:     cell,
		Selected: cell.Foreground(lipgloss.Color("63")),
	}
}

func ellipsoidsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ellipsoids",
		Short: "List the known ellipsoids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := defaultTheme()
			widths := []int{22, 16, 16, 18}

			row := func(style lipgloss.Style, cols ...string) string {
				cells := make([]string, len(cols))
				for i, c := range cols {
					cells[i] = style.Width(widths[i]).Render(c)
				}
				return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, row(th.Header, "name", "a (m)", "b (m)", "1/f"))
			for _, e := range a.registry.Ellipsoids() {
				rf := "∞"
				if inv := e.InverseFlattening(); !math.IsInf(inv, 0) {
					rf = fmt.Sprintf("%.9f", inv)
				}
				name := e.Name()
				style := th.Cell
				if e == a.model {
					name += " *"
					style = th.Selected
				}
				fmt.Fprintln(w, row(style,
					name,
					fmt.Sprintf("%.3f", e.Radius()),
					fmt.Sprintf("%.3f", e.PolarRadius()),
					rf,
				))
			}
			return nil
		},
	}
}
