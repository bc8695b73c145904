// Package camera holds the pan/zoom state of the board view and turns it
// into the world-to-screen transform of a frame.
package camera

import (
	"math"

	"github.com/Garsondee/Grid-Game/internal/geom"
)

// Limits bound how the camera reacts to input.
type Limits struct {
	ZoomMin       float64
	ZoomMax       float64
	ScrollDivisor float64 // zoom changes by exp(scroll/ScrollDivisor)
}

// DefaultLimits are the zoom bounds and scroll sensitivity of the viewer.
var DefaultLimits = Limits{ZoomMin: 0.25, ZoomMax: 20, ScrollDivisor: 500}

// State is the camera: the world point shown at the centre of the viewport
// and the zoom factor (1 shows the whole board). It is owned by the game host
// and changed once per input step.
type State struct {
	Position geom.Point
	Zoom     float64
}

// New returns a camera centred on the origin at zoom 1.
func New() State {
	return State{Zoom: 1}
}

// Reset returns the camera to its initial position and zoom.
func (s *State) Reset() {
	*s = New()
}

// Scroll zooms by an exponential factor of the scroll delta, clamped to lim.
func (s *State) Scroll(delta float64, lim Limits) {
	if delta == 0 || lim.ScrollDivisor == 0 {
		return
	}
	s.Zoom *= math.Exp(delta / lim.ScrollDivisor)
	s.clamp(lim)
}

// ZoomBy multiplies the zoom by factor, clamped to lim.
func (s *State) ZoomBy(factor float64, lim Limits) {
	s.Zoom *= factor
	s.clamp(lim)
}

func (s *State) clamp(lim Limits) {
	if lim.ZoomMin > 0 && s.Zoom < lim.ZoomMin {
		s.Zoom = lim.ZoomMin
	}
	if lim.ZoomMax > 0 && s.Zoom > lim.ZoomMax {
		s.Zoom = lim.ZoomMax
	}
}

// Pan moves the camera opposite to a pointer drag of screenDelta pixels, so
// the board follows the pointer. worldToScreen is the transform of the frame
// the drag happened in; screen Y grows downwards while world Y grows upwards.
func (s *State) Pan(screenDelta geom.Point, worldToScreen geom.Transform) {
	px := worldToScreen.MapDist(1)
	if px == 0 {
		return
	}
	s.Position.X -= screenDelta.X / px
	s.Position.Y += screenDelta.Y / px
}

// View is the world rectangle the camera shows, for a board of the given
// world extent. P1 is the top-left corner (Y up), P2 the bottom-right.
func (s State) View(extent geom.Point) geom.Rect {
	hw := extent.X / 2 / s.Zoom
	hh := extent.Y / 2 / s.Zoom
	return geom.Rect{
		P1: geom.Point{X: -hw + s.Position.X, Y: hh + s.Position.Y},
		P2: geom.Point{X: hw + s.Position.X, Y: -hh + s.Position.Y},
	}
}

// Transform builds the world-to-screen transform of a frame: the camera view
// letterboxed into the viewport, whose P1 is the top-left screen corner.
// A zero zoom or an empty viewport yields geom.ErrDegenerateRect.
func (s State) Transform(extent geom.Point, viewport geom.Rect) (geom.Transform, error) {
	return geom.NewLetterboxed(s.View(extent), viewport)
}
