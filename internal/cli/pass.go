package cli

import (
	"github.com/Garsondee/Grid-Game/internal/config"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
)

// passStats summarises one path pass.
type passStats struct {
	seed     int64
	paths    int
	steps    int
	stuck    int
	retries  int
	fallback int
	claimed  int

	rejectReversal int
	rejectClaimed  int
	rejectBounds   int

	shortest, longest int
}

// runPass generates cfg.Paths.Count paths from random starts inside the
// board, all sharing one set of claimed edges.
func runPass(cfg config.Config, seed int64) ([]pathwalk.Path, *pathwalk.Builder) {
	opts := append(cfg.WalkOptions(seed), pathwalk.WithLog(pathwalk.NewLog(true)))
	b := pathwalk.NewBuilder(opts...)
	starts := b.RandomStarts(hexgrid.Origin, cfg.Grid.Radius, cfg.Paths.Count)
	return b.Build(starts), b
}

func summarise(seed int64, paths []pathwalk.Path, b *pathwalk.Builder) passStats {
	log := b.Log()
	s := passStats{
		seed:           seed,
		paths:          len(paths),
		fallback:       log.Count(pathwalk.EventFallback),
		claimed:        b.Claimed().Len(),
		rejectReversal: log.Count(pathwalk.EventRejectReversal),
		rejectClaimed:  log.Count(pathwalk.EventRejectClaimed),
		rejectBounds:   log.Count(pathwalk.EventRejectBounds),
		shortest:       -1,
	}
	for _, p := range paths {
		n := len(p.Segments)
		s.steps += n
		s.retries += p.Retries
		if p.Stuck {
			s.stuck++
		}
		if s.shortest < 0 || n < s.shortest {
			s.shortest = n
		}
		s.longest = max(s.longest, n)
	}
	if s.shortest < 0 {
		s.shortest = 0
	}
	return s
}
