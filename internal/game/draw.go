package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

var (
	windowBackground = color.RGBA{R: 27, G: 27, B: 27, A: 255}
	barBackground    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	barEdge          = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	hudText          = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	hudDim           = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// drawScene paints a built scene. Outlines of every cell share one path
// and one stroke call.
func drawScene(screen *ebiten.Image, sc *scene.Scene) {
	bg := sc.Background
	lo, hi := bg.Min(), bg.Max()
	vector.FillRect(screen, float32(lo.X), float32(lo.Y), float32(hi.X-lo.X), float32(hi.Y-lo.Y), scene.ColorBackground, false)

	var outlines vector.Path
	for _, p := range sc.Cells {
		if c, ok := scene.FillColor(p.Fill); ok {
			var fill vector.Path
			appendPolygon(&fill, p.Points)
			fillPath(screen, &fill, c)
		}
		appendPolygon(&outlines, p.Points)
	}
	strokePath(screen, &outlines, 1, scene.ColorOutline)

	if sc.Hover != nil {
		var hover vector.Path
		appendPolygon(&hover, sc.Hover.Points)
		fillPath(screen, &hover, scene.ColorHover)
	}

	var curves vector.Path
	for _, c := range sc.Curves {
		curves.MoveTo(float32(c.P0.X), float32(c.P0.Y))
		curves.QuadTo(float32(c.P1.X), float32(c.P1.Y), float32(c.P2.X), float32(c.P2.Y))
	}
	strokePath(screen, &curves, 1, scene.ColorPath)

	for _, m := range sc.Markers {
		vector.FillCircle(screen, float32(m.Center.X), float32(m.Center.Y), float32(max(1, m.Radius)), m.Color(), true)
	}
}

func appendPolygon(path *vector.Path, pts []geom.Point) {
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
}

func fillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, path, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}, op)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawTopBar shows the turn controls on the left and the pointer label
// right-aligned.
func (g *Game) drawTopBar(screen *ebiten.Image) {
	w := float32(g.width)
	vector.FillRect(screen, 0, 0, w, topBarHeight, barBackground, false)
	vector.StrokeLine(screen, 0, topBarHeight, w, topBarHeight, 1, barEdge, false)

	x := 8.0
	x = g.barItem(screen, x, fmt.Sprintf("Turn: %d", g.history.Turn()), true)
	x = g.barItem(screen, x, "<< Home", !g.history.AtFirst())
	x = g.barItem(screen, x, "< Left", !g.history.AtFirst())
	x = g.barItem(screen, x, "Reset Game [Bksp]", true)
	x = g.barItem(screen, x, "> Right", true)
	g.barItem(screen, x, ">> End", !g.history.AtLast())

	if label := g.Label(); label != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(g.width)-8, 5)
		op.ColorScale.ScaleWithColor(hudText)
		op.PrimaryAlign = text.AlignEnd
		text.Draw(screen, label, g.face, op)
	}
}

// barItem draws one top-bar entry, dimmed when disabled, and returns the x
// position of the next.
func (g *Game) barItem(screen *ebiten.Image, x float64, s string, enabled bool) float64 {
	c := hudText
	if !enabled {
		c = hudDim
	}
	drawText(screen, g.face, s, x, 5, c)
	w, _ := text.Measure(s, g.face, 0)
	return x + w + 18
}

// drawHUD renders the key legend in the bottom-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.history.Current()
	lines := []string{
		fmt.Sprintf("seed %d  paths %d  stuck %d  edges %d", p.Seed, len(p.Paths), p.Stuck(), p.Claimed.Len()),
		"drag=pan  scroll or +/- = zoom  R=reset view",
		"N=new pass  C=copy label  click=inspect  H=hide HUD",
	}
	const lineH, pad = 16, 6
	boxW := 0.0
	for _, l := range lines {
		lw, _ := text.Measure(l, g.face, 0)
		boxW = max(boxW, lw)
	}
	boxW += pad * 2
	boxH := float64(len(lines)*lineH + pad*2)
	bx, by := 8.0, float64(g.height)-boxH-8

	vector.FillRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), color.RGBA{R: 8, G: 8, B: 8, A: 210}, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), 1, barEdge, false)
	for i, l := range lines {
		drawText(screen, g.face, l, bx+pad, by+pad+float64(i*lineH), hudText)
	}

	if g.cam.Zoom != 1 {
		ebitenutil.DebugPrintAt(screen, zoomReadout(g.cam.Zoom, g.scene), 8, topBarHeight+6)
	}
}

// zoomReadout formats the camera zoom, with the on-screen size of one world
// unit when a scene is laid out.
func zoomReadout(zoom float64, sc *scene.Scene) string {
	if sc == nil {
		return fmt.Sprintf("zoom: %.2fx", zoom)
	}
	return fmt.Sprintf("zoom: %.2fx  %.1f px/unit", zoom, sc.PxPerUnit)
}
