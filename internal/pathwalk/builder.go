package pathwalk

import (
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

// Path is the result of one finished walk.
type Path struct {
	Start    hexgrid.Coord
	Segments []Segment
	End      geom.Point // end-of-path marker, valid when HasEnd
	HasEnd   bool
	Stuck    bool
	Retries  int
}

// Builder generates the paths of one pass. All walks of a pass share one
// ClaimedEdges and one random source and run strictly one after another.
type Builder struct {
	cfg     settings
	claimed *ClaimedEdges
	next    int
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		cfg:     newSettings(opts),
		claimed: NewClaimedEdges(),
	}
}

// Claimed exposes the edge set of the current pass.
func (b *Builder) Claimed() *ClaimedEdges { return b.claimed }

// Log returns the event log the walks write to.
func (b *Builder) Log() *Log { return b.cfg.log }

// Reset starts a new pass: the claimed edges and the log are cleared.
func (b *Builder) Reset() {
	b.claimed.Reset()
	b.cfg.log.Reset()
	b.next = 0
}

// Walker returns a walker for the next path of the pass. The caller must run
// it to completion before asking for another.
func (b *Builder) Walker(start hexgrid.Coord) *Walker {
	cfg := b.cfg
	cfg.pathID = b.next
	b.next++
	return newWalker(start, b.claimed, cfg)
}

// Walk runs one walk from start to completion within the current pass.
func (b *Builder) Walk(start hexgrid.Coord) Path {
	w := b.Walker(start)
	p := Path{Start: start}
	for seg := range w.All() {
		p.Segments = append(p.Segments, seg)
	}
	p.End, p.HasEnd = w.End()
	p.Stuck = w.Stuck()
	p.Retries = w.Retries()
	return p
}

// Build resets the pass and walks once from each start, in order.
func (b *Builder) Build(starts []hexgrid.Coord) []Path {
	b.Reset()
	paths := make([]Path, 0, len(starts))
	for _, s := range starts {
		paths = append(paths, b.Walk(s))
	}
	return paths
}

// RandomStarts picks n start cells uniformly from the disc of the given
// radius around center, using the builder's random source. A negative radius
// is an empty disc and yields nil, as does n <= 0.
func (b *Builder) RandomStarts(center hexgrid.Coord, radius, n int) []hexgrid.Coord {
	if radius < 0 || n <= 0 {
		return nil
	}
	cells := make([]hexgrid.Coord, 0, hexgrid.CellCount(radius))
	for _, c := range hexgrid.Spiral(center, radius) {
		cells = append(cells, c)
	}
	out := make([]hexgrid.Coord, n)
	for i := range out {
		out[i] = cells[b.cfg.rng.Intn(len(cells))]
	}
	return out
}
