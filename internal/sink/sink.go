// Package sink writes a built scene to a file format. The SVG sink keeps
// the outlines and curves as vector shapes; the PNG sink rasterises them.
package sink

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/Garsondee/Grid-Game/internal/scene"
)

// ErrUnknownFormat is returned for an output format with no sink.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG}

// ParseFormat accepts a format name or a file extension such as ".PNG".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Option adjusts a render.
type Option func(*options)

type options struct {
	lineWidth float64
	caption   string
}

// WithLineWidth sets the stroke width of cell outlines and path curves, in
// pixels.
func WithLineWidth(w float64) Option { return func(o *options) { o.lineWidth = w } }

// WithCaption draws text in the top-left corner, replacing the pointer label.
func WithCaption(s string) Option { return func(o *options) { o.caption = s } }

func newOptions(sc *scene.Scene, opts []Option) options {
	o := options{lineWidth: 1, caption: sc.Label}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render writes sc to w in the given format.
func Render(w io.Writer, sc *scene.Scene, f Format, opts ...Option) error {
	switch f {
	case FormatSVG:
		return RenderSVG(w, sc, opts...)
	case FormatPNG:
		return RenderPNG(w, sc, opts...)
	}
	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

func size(sc *scene.Scene) (int, int) {
	return int(sc.Viewport.Width() + 0.5), int(sc.Viewport.Height() + 0.5)
}

// css renders c as an SVG colour plus opacity.
func css(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) string {
	return fmt.Sprintf("%.3f", float64(c.A)/255)
}
