package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Grid-Game/internal/hexgrid"
)

const (
	inspWidth = 300
	inspPad   = 8
	inspLineH = 16
)

// Inspector holds the cell picked by a click.
type Inspector struct {
	selected hexgrid.Coord
	active   bool
}

// Select picks c, or clears the selection when c lies off the board.
func (in *Inspector) Select(c hexgrid.Coord, radius int) {
	in.selected = c
	in.active = hexgrid.Distance(hexgrid.Origin, c) <= radius
}

// Clear drops the selection.
func (in *Inspector) Clear() { in.active = false }

// Selected returns the picked cell, if any.
func (in *Inspector) Selected() (hexgrid.Coord, bool) { return in.selected, in.active }

// describeCell lists what the current pass did around c: which paths pass
// through it and which of its six edges are claimed, numbered in claim order.
func describeCell(c hexgrid.Coord, pass Pass) []string {
	lines := []string{
		fmt.Sprintf("Cell (x=%d, y=%d, z=%d)", c.X, c.Y, c.Z()),
		fmt.Sprintf("ring %d", hexgrid.Distance(hexgrid.Origin, c)),
	}

	visits := 0
	for i, p := range pass.Paths {
		for j, s := range p.Segments {
			if s.Cell != c {
				continue
			}
			visits++
			lines = append(lines, fmt.Sprintf("path %d step %d exits %v", i, j, s.Next))
		}
		if p.HasEnd && len(p.Segments) > 0 && p.Segments[len(p.Segments)-1].Next == c {
			end := "ends here"
			if p.Stuck {
				end = "stuck here"
			}
			lines = append(lines, fmt.Sprintf("path %d %s", i, end))
		}
	}
	if visits == 0 {
		lines = append(lines, "no path crosses this cell")
	}

	order := make(map[hexgrid.EdgeKey]int)
	if pass.Claimed != nil {
		for i, k := range pass.Claimed.Keys() {
			order[k] = i + 1
		}
	}
	claimed := 0
	for _, d := range hexgrid.Directions {
		mark := "-"
		if n, ok := order[hexgrid.EdgeToward(c, d)]; ok {
			mark = fmt.Sprintf("claimed #%d", n)
			claimed++
		}
		lines = append(lines, fmt.Sprintf("  %-2s %s", d, mark))
	}
	lines = append(lines, fmt.Sprintf("%d/6 edges claimed", claimed))
	return lines
}

// drawInspector renders the selected cell's panel in the bottom-right
// corner, left of the event panel.
func (g *Game) drawInspector(screen *ebiten.Image) {
	c, ok := g.inspector.Selected()
	if !ok {
		return
	}
	lines := describeCell(c, g.history.Current())
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	boxH := float32(len(lines)*inspLineH + inspPad*2)
	bx := float32(w - eventPanelWidth - inspWidth - 8)
	by := float32(h) - boxH - 8
	vector.FillRect(screen, bx, by, inspWidth, boxH, color.RGBA{R: 8, G: 8, B: 8, A: 225}, false)
	vector.StrokeRect(screen, bx, by, inspWidth, boxH, 1, color.RGBA{R: 90, G: 90, B: 90, A: 200}, false)
	for i, line := range lines {
		drawText(screen, g.face, line, float64(bx)+inspPad, float64(by)+inspPad+float64(i*inspLineH), color.RGBA{R: 220, G: 220, B: 220, A: 255})
	}
}
