// Package pathwalk builds random paths across the hex grid. Each path is a
// walk from cell to neighbouring cell that never crosses a boundary any path
// of the same pass has already crossed, and never turns straight back.
package pathwalk

import (
	"iter"
	"math/rand"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

// Defaults for a walk.
const (
	DefaultSteps      = 100
	DefaultMaxRetries = 64
)

// State is the phase of a Walker.
type State uint8

const (
	StateStart   State = iota // nothing sampled yet
	StateWalking              // last sample accepted
	StateBlocked              // last sample rejected, retrying the same step
	StateDone                 // step budget spent or no way forward
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateWalking:
		return "walking"
	case StateBlocked:
		return "blocked"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Segment is one accepted step. Prev (absent on the first step) is the
// boundary crossed by the step before, Center the centre of the cell entered
// and Edge the midpoint of the boundary just crossed. For drawing, the step
// enters Cell through Prev, bends toward CellCenter and leaves through Edge
// into Next.
type Segment struct {
	Prev       geom.Point
	HasPrev    bool
	Center     geom.Point
	Edge       geom.Point
	CellCenter geom.Point

	Cell hexgrid.Coord
	Next hexgrid.Coord
	Key  hexgrid.EdgeKey
}

// Start returns where the curve begins: Prev, or the centre of the start
// cell on the first step.
func (s Segment) Start() geom.Point {
	if s.HasPrev {
		return s.Prev
	}
	return s.CellCenter
}

type settings struct {
	steps      int
	maxRetries int
	rng        *rand.Rand
	bounded    bool
	center     hexgrid.Coord
	radius     int
	log        *Log
	pathID     int
}

// Option configures a Walker or Builder.
type Option func(*settings)

// WithSteps sets the step budget of each walk.
func WithSteps(n int) Option {
	return func(s *settings) { s.steps = max(n, 0) }
}

// WithMaxRetries sets how many rejected samples a step tolerates before the
// walker stops sampling blindly and checks every neighbour.
func WithMaxRetries(n int) Option {
	return func(s *settings) { s.maxRetries = max(n, 0) }
}

// WithSeed makes the walk deterministic.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic randomness
	}
}

// WithRand shares an existing random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithBounds keeps walks inside the disc of the given radius around center.
func WithBounds(center hexgrid.Coord, radius int) Option {
	return func(s *settings) {
		s.bounded = true
		s.center = center
		s.radius = radius
	}
}

// WithLog records walker events into l.
func WithLog(l *Log) Option {
	return func(s *settings) { s.log = l }
}

func newSettings(opts []Option) settings {
	s := settings{
		steps:      DefaultSteps,
		maxRetries: DefaultMaxRetries,
	}
	for _, o := range opts {
		o(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1)) // #nosec G404 -- deterministic default
	}
	if s.log == nil {
		s.log = NewLog(false)
	}
	return s
}

// Walker walks one path. It is driven step by step with Step, or lazily with
// All, and writes every boundary it crosses into its ClaimedEdges.
type Walker struct {
	cfg     settings
	claimed *ClaimedEdges

	state    State
	start    hexgrid.Coord
	last     hexgrid.Coord
	lastEdge hexgrid.EdgeKey
	lastMid  geom.Point
	hasEdge  bool

	steps   int
	retries int // rejections in the current step
	total   int // rejections over the whole walk
	stuck   bool
}

// NewWalker prepares a walk from start. A nil claimed set gets a fresh one.
func NewWalker(start hexgrid.Coord, claimed *ClaimedEdges, opts ...Option) *Walker {
	if claimed == nil {
		claimed = NewClaimedEdges()
	}
	return newWalker(start, claimed, newSettings(opts))
}

func newWalker(start hexgrid.Coord, claimed *ClaimedEdges, cfg settings) *Walker {
	return &Walker{
		cfg:     cfg,
		claimed: claimed,
		state:   StateStart,
		start:   start,
		last:    start,
	}
}

func (w *Walker) State() State { return w.state }

// Steps is the number of accepted steps so far.
func (w *Walker) Steps() int { return w.steps }

// Retries is the number of rejected samples over the whole walk.
func (w *Walker) Retries() int { return w.total }

// Stuck reports whether the walk ended early because every neighbour of the
// current cell was a reversal, already claimed or out of bounds.
func (w *Walker) Stuck() bool { return w.stuck }

// Current is the cell the walk has reached.
func (w *Walker) Current() hexgrid.Coord { return w.last }

// End returns the end-of-path marker: the midpoint of the last boundary
// crossed. It is false until a step has been accepted.
func (w *Walker) End() (geom.Point, bool) {
	return w.lastMid, w.hasEdge
}

// Step advances the walk by one accepted step and returns it. It returns
// false once the walk is done, either because the step budget is spent or
// because no neighbour is eligible.
func (w *Walker) Step() (Segment, bool) {
	if w.state == StateDone {
		return Segment{}, false
	}
	if w.steps >= w.cfg.steps {
		w.finish(false)
		return Segment{}, false
	}
	w.state = StateWalking
	w.retries = 0
	for {
		d := hexgrid.Direction(w.cfg.rng.Intn(hexgrid.DirectionCount))
		reason := w.rejection(d)
		if reason == "" {
			return w.accept(d), true
		}
		w.cfg.log.AddVerbose(w.entry(reason, hexgrid.Neighbor(w.last, d), d.String()))
		w.state = StateBlocked
		w.retries++
		w.total++
		if w.retries < w.cfg.maxRetries {
			continue
		}

		eligible := w.eligible()
		if len(eligible) == 0 {
			w.finish(true)
			return Segment{}, false
		}
		d = eligible[w.cfg.rng.Intn(len(eligible))]
		w.cfg.log.Add(w.entry(EventFallback, hexgrid.Neighbor(w.last, d), d.String()))
		return w.accept(d), true
	}
}

// All yields the remaining steps of the walk.
func (w *Walker) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for {
			seg, ok := w.Step()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// rejection returns the event kind explaining why stepping in d is not
// allowed, or "" if it is.
func (w *Walker) rejection(d hexgrid.Direction) string {
	key := hexgrid.EdgeToward(w.last, d)
	if w.hasEdge && key == w.lastEdge {
		return EventRejectReversal
	}
	if w.cfg.bounded && hexgrid.Distance(w.cfg.center, hexgrid.Neighbor(w.last, d)) > w.cfg.radius {
		return EventRejectBounds
	}
	if w.claimed.Contains(key) {
		return EventRejectClaimed
	}
	return ""
}

func (w *Walker) eligible() []hexgrid.Direction {
	var out []hexgrid.Direction
	for _, d := range hexgrid.Directions {
		if w.rejection(d) == "" {
			out = append(out, d)
		}
	}
	return out
}

func (w *Walker) accept(d hexgrid.Direction) Segment {
	next := hexgrid.Neighbor(w.last, d)
	key := hexgrid.EdgeToward(w.last, d)
	mid := hexgrid.EdgeMidpoint(w.last, d)
	w.claimed.Claim(key)

	seg := Segment{
		Prev:       w.lastMid,
		HasPrev:    w.hasEdge,
		Center:     hexgrid.ToPixel(next),
		Edge:       mid,
		CellCenter: hexgrid.ToPixel(w.last),
		Cell:       w.last,
		Next:       next,
		Key:        key,
	}
	w.cfg.log.Add(w.entry(EventAccept, next, d.String()))

	w.last = next
	w.lastEdge = key
	w.lastMid = mid
	w.hasEdge = true
	w.steps++
	w.state = StateWalking
	return seg
}

func (w *Walker) finish(stuck bool) {
	w.state = StateDone
	w.stuck = stuck
	kind := EventDone
	if stuck {
		kind = EventStuck
	}
	w.cfg.log.Add(w.entry(kind, w.last, ""))
}

func (w *Walker) entry(kind string, to hexgrid.Coord, value string) LogEntry {
	return LogEntry{
		Path:  w.cfg.pathID,
		Step:  w.steps,
		Kind:  kind,
		From:  w.last,
		To:    to,
		Value: value,
	}
}
