package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	var (
		count, steps, radius int
		seed                 int64
		events               bool
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Generate one pass of random paths and summarise it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			flags := cmd.Flags()
			if flags.Changed("count") {
				cfg.Paths.Count = count
			}
			if flags.Changed("steps") {
				cfg.Paths.Steps = steps
			}
			if flags.Changed("radius") {
				cfg.Grid.Radius = radius
			}
			if flags.Changed("seed") {
				cfg.Paths.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			effective := cfg.Seed()
			prog := newProgress(logger)
			paths, b := runPass(cfg, effective)
			prog.done("Generated paths", "count", len(paths), "seed", effective)

			out := cmd.OutOrStdout()
			printTitle(out, "Paths (seed %d, radius %d)", effective, cfg.Grid.Radius)
			for i, p := range paths {
				line := fmt.Sprintf("path %d  start=%v  steps=%d  retries=%d", i, p.Start, len(p.Segments), p.Retries)
				if p.Stuck {
					printWarning(out, "%s  stuck", line)
				} else {
					printSuccess(out, "%s", line)
				}
			}
			s := summarise(effective, paths, b)
			fmt.Fprintln(out)
			printField(out, "steps", s.steps)
			printField(out, "claimed edges", s.claimed)
			printField(out, "stuck", s.stuck)
			printField(out, "fallbacks", s.fallback)
			printField(out, "reversals", s.rejectReversal)
			printField(out, "claimed hits", s.rejectClaimed)
			printField(out, "out of bounds", s.rejectBounds)
			if events {
				fmt.Fprintln(out)
				fmt.Fprint(out, b.Log().Format())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of paths (default from config)")
	cmd.Flags().IntVar(&steps, "steps", 0, "step budget per path (default from config)")
	cmd.Flags().IntVarP(&radius, "radius", "r", 0, "board radius (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time based (default from config)")
	cmd.Flags().BoolVar(&events, "events", false, "print the full walker event log")
	return cmd
}
