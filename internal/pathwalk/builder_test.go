package pathwalk

import (
	"testing"

	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

func TestBuilder_PathsShareClaimedEdges(t *testing.T) {
	b := NewBuilder(WithSeed(11), WithSteps(100))
	starts := make([]hexgrid.Coord, 8) // all from the origin: heavy contention
	paths := b.Build(starts)

	seen := make(map[hexgrid.EdgeKey]int)
	total := 0
	for i, p := range paths {
		for _, s := range p.Segments {
			if prev, dup := seen[s.Key]; dup {
				t.Fatalf("edge %v crossed by path %d and path %d", s.Key, prev, i)
			}
			seen[s.Key] = i
			total++
		}
	}
	if b.Claimed().Len() != total {
		t.Fatalf("claimed %d edges, paths took %d steps", b.Claimed().Len(), total)
	}
	if got := b.Log().Count(EventAccept); got != total {
		t.Fatalf("log recorded %d accepted steps, want %d", got, total)
	}
}

func TestBuilder_BuildResetsPass(t *testing.T) {
	b := NewBuilder(WithSeed(2), WithSteps(20))
	b.Build([]hexgrid.Coord{hexgrid.Origin})
	first := b.Claimed().Len()
	paths := b.Build([]hexgrid.Coord{hexgrid.C(10, 10)})
	if b.Claimed().Len() != len(paths[0].Segments) {
		t.Fatalf("second pass kept %d stale edges from the first (%d)", b.Claimed().Len()-len(paths[0].Segments), first)
	}
	for _, e := range b.Log().Entries() {
		if e.Path != 0 {
			t.Fatalf("log entry from a previous pass survived: %v", e)
		}
	}
}

func TestBuilder_EndMarker(t *testing.T) {
	b := NewBuilder(WithSeed(4), WithSteps(15))
	p := b.Walk(hexgrid.C(0, 3))
	if len(p.Segments) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if !p.HasEnd || p.End != p.Segments[len(p.Segments)-1].Edge {
		t.Fatalf("end marker %v (has=%v), want %v", p.End, p.HasEnd, p.Segments[len(p.Segments)-1].Edge)
	}
}

func TestBuilder_RandomStartsWithinRadius(t *testing.T) {
	b := NewBuilder(WithSeed(8))
	center := hexgrid.C(4, -4)
	starts := b.RandomStarts(center, 3, 50)
	if len(starts) != 50 {
		t.Fatalf("got %d starts, want 50", len(starts))
	}
	for _, s := range starts {
		if d := hexgrid.Distance(center, s); d > 3 {
			t.Fatalf("start %v at distance %d, want <= 3", s, d)
		}
	}
}

func TestBuilder_RandomStartsEmptyDisc(t *testing.T) {
	b := NewBuilder(WithSeed(8))
	if got := b.RandomStarts(hexgrid.Origin, -1, 4); got != nil {
		t.Fatalf("negative radius gave %v, want nil", got)
	}
	if got := b.RandomStarts(hexgrid.Origin, 3, 0); got != nil {
		t.Fatalf("zero count gave %v, want nil", got)
	}
	if got := b.RandomStarts(hexgrid.Origin, 0, 3); len(got) != 3 || got[0] != hexgrid.Origin {
		t.Fatalf("radius 0 gave %v, want three origins", got)
	}
}

func TestClaimedEdges_ClaimTwice(t *testing.T) {
	ce := NewClaimedEdges()
	k := hexgrid.EdgeToward(hexgrid.Origin, hexgrid.East)
	if !ce.Claim(k) {
		t.Fatal("first claim should succeed")
	}
	if ce.Claim(k) {
		t.Fatal("second claim should be refused")
	}
	if !ce.Contains(hexgrid.EdgeToward(hexgrid.C(1, -1), hexgrid.West)) {
		t.Fatal("the same edge seen from the neighbour should be claimed")
	}
	ce.Reset()
	if ce.Len() != 0 || ce.Contains(k) {
		t.Fatal("Reset should empty the set")
	}
}
