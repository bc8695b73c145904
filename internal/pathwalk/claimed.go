package pathwalk

import "github.com/Garsondee/Grid-Game/internal/hexgrid"

// ClaimedEdges is the set of cell boundaries already crossed during one
// generation pass. Every walker of the pass shares it, one at a time, so no
// two paths ever cross the same boundary.
type ClaimedEdges struct {
	set   map[hexgrid.EdgeKey]struct{}
	order []hexgrid.EdgeKey
}

// NewClaimedEdges returns an empty set.
func NewClaimedEdges() *ClaimedEdges {
	return &ClaimedEdges{set: make(map[hexgrid.EdgeKey]struct{})}
}

// Contains reports whether k has been claimed.
func (ce *ClaimedEdges) Contains(k hexgrid.EdgeKey) bool {
	_, ok := ce.set[k]
	return ok
}

// Claim adds k. It returns false, leaving the set unchanged, if k was
// already claimed.
func (ce *ClaimedEdges) Claim(k hexgrid.EdgeKey) bool {
	if ce.Contains(k) {
		return false
	}
	ce.set[k] = struct{}{}
	ce.order = append(ce.order, k)
	return true
}

// Len is the number of claimed edges.
func (ce *ClaimedEdges) Len() int { return len(ce.order) }

// Keys returns the claimed edges in the order they were claimed.
func (ce *ClaimedEdges) Keys() []hexgrid.EdgeKey {
	out := make([]hexgrid.EdgeKey, len(ce.order))
	copy(out, ce.order)
	return out
}

// Reset empties the set for a new pass.
func (ce *ClaimedEdges) Reset() {
	clear(ce.set)
	ce.order = ce.order[:0]
}
