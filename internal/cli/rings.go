package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

func newRingsCmd() *cobra.Command {
	var (
		radius int
		list   bool
	)
	cmd := &cobra.Command{
		Use:   "rings",
		Short: "Count the tiles in each ring around the centre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("radius") {
				radius = configFromContext(cmd.Context()).Grid.Radius
			}
			if radius < 0 {
				return fmt.Errorf("--radius must be >= 0, got %d", radius)
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Rings around %v, radius %d", hexgrid.Origin, radius)
			total := 0
			for r := 0; r <= radius; r++ {
				n := 0
				for c := range hexgrid.Ring(hexgrid.Origin, r) {
					n++
					if list {
						fmt.Fprintf(out, "  %4d: (x=%d, y=%d, z=%d)\n", n, c.X, c.Y, c.Z())
					}
				}
				total += n
				fmt.Fprintf(out, "r = %s  tiles = %s  total = %s\n",
					styleNumber.Render(fmt.Sprint(r)),
					styleNumber.Render(fmt.Sprint(n)),
					styleNumber.Render(fmt.Sprint(total)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 0, "outermost ring (default from config)")
	cmd.Flags().BoolVar(&list, "list", false, "print every tile of every ring")
	return cmd
}
