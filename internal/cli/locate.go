package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate X Y",
		Short: "Describe the cell under a world point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse X: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse Y: %w", err)
			}
			p := geom.Pt(x, y)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, scene.PointerLabel(p, hexgrid.Origin))
			cell := hexgrid.FromPixel(p)
			if r := configFromContext(cmd.Context()).Grid.Radius; hexgrid.Distance(cell, hexgrid.Origin) > r {
				printWarning(out, "outside the board (radius %d)", r)
			}
			return nil
		},
	}
}
