package game

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

// keyZoomFactor is the zoom step of the +/- keys.
const keyZoomFactor = 1.25

func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.pointer = geom.Pt(float64(mx), float64(my))
	g.hasPointer = g.viewport().Contains(g.pointer)
	limits := g.cfg.Limits()

	if _, wy := ebiten.Wheel(); wy != 0 && g.hasPointer {
		g.cam.Scroll(wy*wheelPoints, limits)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.cam.ZoomBy(keyZoomFactor, limits)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.cam.ZoomBy(1/keyZoomFactor, limits)
	}

	// Left drag pans; a left click that never became a drag picks a cell.
	wasDragging := g.drag.Dragging()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressInside = g.hasPointer
	}
	pressed := g.pressInside && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if delta, ok := g.drag.Update(pressed, g.pointer); ok {
		if tr, err := g.sceneInput().WorldToScreen(); err == nil {
			g.cam.Pan(delta, tr)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.pressInside && !wasDragging {
		g.pick()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cam.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyLabel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.inspector.Clear()
	}

	// Turn navigation.
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.history.First()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.history.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		if g.history.Next() {
			g.notePass()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.history.Last()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.history.Last()
		g.history.Next()
		g.notePass()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.history.Reset()
		g.events.Add(0, EventInfo, "game reset")
		g.logger.Info("Game reset")
	}
}

// pick selects the cell under the pointer for the inspector.
func (g *Game) pick() {
	tr, err := g.sceneInput().WorldToScreen()
	if err != nil {
		return
	}
	c := hexgrid.FromPixel(tr.Inverse().MapPoint(g.pointer))
	g.inspector.Select(c, g.cfg.Grid.Radius)
}

// copyLabel puts the pointer label on the system clipboard.
func (g *Game) copyLabel() {
	label := g.Label()
	if label == "" {
		return
	}
	if err := clipboard.WriteAll(label); err != nil {
		g.logger.Warn("Clipboard unavailable", "err", err)
		g.events.Add(g.history.Turn(), EventError, "clipboard: %v", err)
		return
	}
	g.events.Add(g.history.Turn(), EventInfo, "copied %s", label)
}
