package sink

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

// RenderSVG writes sc as an SVG document sized to its viewport. Coordinates
// are rounded to whole pixels.
func RenderSVG(w io.Writer, sc *scene.Scene, opts ...Option) error {
	o := newOptions(sc, opts)
	width, height := size(sc)
	origin := sc.Viewport.Min()
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+css(scene.ColorBackground))

	outline := fmt.Sprintf("stroke:%s;stroke-width:%g", css(scene.ColorOutline), o.lineWidth)
	canvas.Gid("cells")
	for _, p := range sc.Cells {
		xs, ys := ints(p.Points, origin)
		canvas.Polygon(xs, ys, polygonStyle(p.Fill)+";"+outline)
	}
	canvas.Gend()

	if sc.Hover != nil {
		xs, ys := ints(sc.Hover.Points, origin)
		canvas.Polygon(xs, ys, polygonStyle(scene.FillHover)+";stroke:none")
	}

	canvas.Gid("paths")
	curve := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", css(scene.ColorPath), o.lineWidth)
	for _, c := range sc.Curves {
		p0, p1, p2 := at(c.P0, origin), at(c.P1, origin), at(c.P2, origin)
		canvas.Qbez(p0[0], p0[1], p1[0], p1[1], p2[0], p2[1], curve)
	}
	for _, m := range sc.Markers {
		c := at(m.Center, origin)
		canvas.Circle(c[0], c[1], max(1, round(m.Radius)), "fill:"+css(m.Color()))
	}
	canvas.Gend()

	if o.caption != "" {
		canvas.Text(8, 18, o.caption, "font-family:monospace;font-size:14px;fill:"+css(scene.ColorLabel))
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func polygonStyle(f scene.Fill) string {
	c, ok := scene.FillColor(f)
	if !ok {
		return "fill:none"
	}
	return "fill:" + css(c) + ";fill-opacity:" + opacity(c)
}

func ints(pts []geom.Point, origin geom.Point) (xs, ys []int) {
	xs, ys = make([]int, len(pts)), make([]int, len(pts))
	for i, p := range pts {
		q := at(p, origin)
		xs[i], ys[i] = q[0], q[1]
	}
	return xs, ys
}

func at(p, origin geom.Point) [2]int {
	return [2]int{round(p.X - origin.X), round(p.Y - origin.Y)}
}

func round(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
