package sink

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

// RenderPNG rasterises sc and writes it as a PNG the size of its viewport.
// Captions are not drawn; the PNG sink carries no font.
func RenderPNG(w io.Writer, sc *scene.Scene, opts ...Option) error {
	img, err := Rasterize(sc, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Rasterize draws sc into a new RGBA image.
func Rasterize(sc *scene.Scene, opts ...Option) (*image.RGBA, error) {
	o := newOptions(sc, opts)
	width, height := size(sc)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize %dx%d viewport: %w", width, height, geom.ErrDegenerateRect)
	}
	origin := sc.Viewport.Min()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)

	gc.SetFillColor(scene.ColorBackground)
	draw2dkit.Rectangle(gc, 0, 0, float64(width), float64(height))
	gc.Fill()

	gc.SetLineWidth(o.lineWidth)
	gc.SetStrokeColor(scene.ColorOutline)
	for _, p := range sc.Cells {
		polygon(gc, p.Points, origin)
		if c, ok := scene.FillColor(p.Fill); ok {
			gc.SetFillColor(c)
			gc.FillStroke()
		} else {
			gc.Stroke()
		}
	}
	if sc.Hover != nil {
		polygon(gc, sc.Hover.Points, origin)
		gc.SetFillColor(scene.ColorHover)
		gc.Fill()
	}

	gc.SetStrokeColor(scene.ColorPath)
	for _, c := range sc.Curves {
		p0, p1, p2 := c.P0.Sub(origin), c.P1.Sub(origin), c.P2.Sub(origin)
		gc.BeginPath()
		gc.MoveTo(p0.X, p0.Y)
		gc.QuadCurveTo(p1.X, p1.Y, p2.X, p2.Y)
		gc.Stroke()
	}
	for _, m := range sc.Markers {
		c := m.Center.Sub(origin)
		gc.BeginPath()
		draw2dkit.Circle(gc, c.X, c.Y, max(1, m.Radius))
		gc.SetFillColor(m.Color())
		gc.Fill()
	}
	return img, nil
}

func polygon(gc *draw2dimg.GraphicContext, pts []geom.Point, origin geom.Point) {
	gc.BeginPath()
	for i, p := range pts {
		q := p.Sub(origin)
		if i == 0 {
			gc.MoveTo(q.X, q.Y)
		} else {
			gc.LineTo(q.X, q.Y)
		}
	}
	gc.Close()
}
