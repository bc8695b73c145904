package camera

import "github.com/Garsondee/Grid-Game/internal/geom"

// DefaultDragThreshold is how far, in pixels, the pointer must move with the
// button held before the press counts as a drag rather than a click.
const DefaultDragThreshold = 4.0

// Drag turns per-frame button and pointer samples into drag deltas. Small
// jitter during a click never pans the board.
type Drag struct {
	Threshold float64

	pressed  bool
	dragging bool
	origin   geom.Point
	last     geom.Point
}

// Update feeds one frame of input. It returns the pointer movement since the
// previous frame while the press is decidedly a drag.
func (d *Drag) Update(pressed bool, pos geom.Point) (geom.Point, bool) {
	if !pressed {
		d.pressed, d.dragging = false, false
		return geom.Point{}, false
	}
	if !d.pressed {
		d.pressed = true
		d.origin, d.last = pos, pos
		return geom.Point{}, false
	}
	if !d.dragging && pos.Sub(d.origin).Len() > d.Threshold {
		d.dragging = true
	}
	delta := pos.Sub(d.last)
	d.last = pos
	if !d.dragging {
		return geom.Point{}, false
	}
	return delta, true
}

// Dragging reports whether the current press has become a drag.
func (d *Drag) Dragging() bool { return d.dragging }
