package game

import (
	"github.com/Garsondee/Grid-Game/internal/config"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
)

// Pass is one generated set of paths. Every turn of the viewer shows one.
type Pass struct {
	Seed    int64
	Paths   []pathwalk.Path
	Claimed *pathwalk.ClaimedEdges
	Log     *pathwalk.Log
}

// Stuck counts the paths that ended early.
func (p Pass) Stuck() int {
	n := 0
	for _, path := range p.Paths {
		if path.Stuck {
			n++
		}
	}
	return n
}

// Generator builds the pass for a seed.
type Generator func(seed int64) Pass

// NewGenerator returns a Generator that walks cfg.Paths.Count paths from
// random starts inside the board.
func NewGenerator(cfg config.Config) Generator {
	return func(seed int64) Pass {
		log := pathwalk.NewLog(false)
		b := pathwalk.NewBuilder(append(cfg.WalkOptions(seed), pathwalk.WithLog(log))...)
		starts := b.RandomStarts(hexgrid.Origin, cfg.Grid.Radius, cfg.Paths.Count)
		return Pass{
			Seed:    seed,
			Paths:   b.Build(starts),
			Claimed: b.Claimed(),
			Log:     log,
		}
	}
}

// History is the list of passes the viewer can step through. Stepping past
// the newest pass generates another with the next seed.
type History struct {
	gen     Generator
	base    int64
	frames  []Pass
	current int
}

// NewHistory starts a history with the pass for seed.
func NewHistory(gen Generator, seed int64) *History {
	h := &History{gen: gen, base: seed}
	h.frames = []Pass{gen(seed)}
	return h
}

// Turn is the index of the pass on screen.
func (h *History) Turn() int { return h.current }

// Len is the number of passes generated so far.
func (h *History) Len() int { return len(h.frames) }

// Current returns the pass on screen.
func (h *History) Current() Pass { return h.frames[h.current] }

// AtFirst reports whether the first pass is on screen.
func (h *History) AtFirst() bool { return h.current == 0 }

// AtLast reports whether the newest pass is on screen.
func (h *History) AtLast() bool { return h.current == len(h.frames)-1 }

// First jumps to the first pass.
func (h *History) First() { h.current = 0 }

// Prev steps back one pass; it is a no-op on the first.
func (h *History) Prev() {
	if h.current > 0 {
		h.current--
	}
}

// Next steps forward, generating a new pass when already on the newest.
// It reports whether a pass was generated.
func (h *History) Next() bool {
	if h.AtLast() {
		h.frames = append(h.frames, h.gen(h.base+int64(len(h.frames))))
		h.current++
		return true
	}
	h.current++
	return false
}

// Last jumps to the newest pass.
func (h *History) Last() { h.current = len(h.frames) - 1 }

// Reset drops every pass but the first and shows it.
func (h *History) Reset() {
	h.frames = h.frames[:1]
	h.current = 0
}
