package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Thresholds past which a pass counts as congested: paths run into each
// other's claimed edges more than they wander freely.
const (
	congestedStuckRate     = 0.5
	congestedFallbackRatio = 0.1
)

func newReportCmd() *cobra.Command {
	var (
		runs     int
		seedBase int64
		seedStep int64
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run several path passes with consecutive seeds and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be > 0, got %d", runs)
			}
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			printTitle(out, "=== Path Pass Report ===")
			fmt.Fprintf(out, "runs=%d paths=%d steps=%d radius=%d seed_base=%d seed_step=%d\n\n",
				runs, cfg.Paths.Count, cfg.Paths.Steps, cfg.Grid.Radius, seedBase, seedStep)

			prog := newProgress(logger)
			all := make([]passStats, 0, runs)
			for i := range runs {
				seed := seedBase + int64(i)*seedStep
				paths, b := runPass(cfg, seed)
				s := summarise(seed, paths, b)
				all = append(all, s)
				printRun(out, i+1, s)
				logger.Debug("Finished run", "run", i+1, "seed", seed, "steps", s.steps, "stuck", s.stuck)
			}
			printAggregate(out, all)
			prog.done("Report complete", "runs", runs)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 5, "number of passes")
	cmd.Flags().Int64Var(&seedBase, "seed-base", 42, "seed of the first pass")
	cmd.Flags().Int64Var(&seedStep, "seed-step", 1, "seed increment between passes")
	return cmd
}

func printRun(w io.Writer, index int, s passStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", index, s.seed)
	fmt.Fprintf(w, "steps: total=%d shortest=%d longest=%d claimed_edges=%d\n",
		s.steps, s.shortest, s.longest, s.claimed)
	fmt.Fprintf(w, "terminations: stuck=%d/%d fallbacks=%d\n", s.stuck, s.paths, s.fallback)
	fmt.Fprintf(w, "rejections: reversal=%d claimed=%d bounds=%d total=%d\n",
		s.rejectReversal, s.rejectClaimed, s.rejectBounds, s.retries)
	if congested, reason := detectCongestion(s); congested {
		printWarning(w, "congested: %s", reason)
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []passStats) {
	var steps, claimed, stuck, paths, fallbacks, congested int
	for _, s := range all {
		steps += s.steps
		claimed += s.claimed
		stuck += s.stuck
		paths += s.paths
		fallbacks += s.fallback
		if c, _ := detectCongestion(s); c {
			congested++
		}
	}
	n := float64(len(all))
	printTitle(w, "=== Aggregate ===")
	fmt.Fprintf(w, "mean_steps=%.1f mean_claimed_edges=%.1f total_fallbacks=%d\n",
		float64(steps)/n, float64(claimed)/n, fallbacks)
	fmt.Fprintf(w, "stuck_rate=%.2f congested_runs=%d/%d\n", ratio(stuck, paths), congested, len(all))
}

// detectCongestion flags a pass where most paths got stuck, or where the
// walkers leaned on the eligible-neighbour fallback for a large share of
// their steps.
func detectCongestion(s passStats) (bool, string) {
	var reasons []string
	if s.paths > 0 && ratio(s.stuck, s.paths) >= congestedStuckRate {
		reasons = append(reasons, fmt.Sprintf("stuck_rate=%.2f", ratio(s.stuck, s.paths)))
	}
	if s.steps > 0 && ratio(s.fallback, s.steps) >= congestedFallbackRatio {
		reasons = append(reasons, fmt.Sprintf("fallback_ratio=%.2f", ratio(s.fallback, s.steps)))
	}
	if len(reasons) == 0 {
		return false, "free"
	}
	return true, strings.Join(reasons, " ")
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
