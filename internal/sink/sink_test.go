package sink

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	b := pathwalk.NewBuilder(pathwalk.WithSeed(3), pathwalk.WithSteps(10), pathwalk.WithBounds(hexgrid.Origin, 2))
	sc, err := scene.Build(scene.Input{
		Radius:   2,
		Camera:   camera.New(),
		Viewport: geom.R(0, 0, 600, 400),
		Paths:    b.Build([]hexgrid.Coord{hexgrid.Origin}),
	})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	return sc
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"svg": FormatSVG, ".PNG": FormatPNG, "Png": FormatPNG}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("gif: err = %v, want ErrUnknownFormat", err)
	}
}

func TestRenderSVG_ListsEveryShape(t *testing.T) {
	sc := testScene(t)
	var buf bytes.Buffer
	if err := RenderSVG(&buf, sc, WithCaption("seed 3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `width="600"`) || !strings.Contains(out, `height="400"`) {
		t.Fatalf("svg not sized to the viewport:\n%.200s", out)
	}
	if got := strings.Count(out, "<polygon"); got != len(sc.Cells) {
		t.Fatalf("got %d polygons, want %d", got, len(sc.Cells))
	}
	if got := strings.Count(out, "<path"); got != len(sc.Curves) {
		t.Fatalf("got %d curves, want %d", got, len(sc.Curves))
	}
	if got := strings.Count(out, "<circle"); got != len(sc.Markers) {
		t.Fatalf("got %d markers, want %d", got, len(sc.Markers))
	}
	if !strings.Contains(out, "seed 3") {
		t.Fatal("caption missing")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatal("document not closed")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderSVG_ReportsWriteErrors(t *testing.T) {
	if err := RenderSVG(failingWriter{}, testScene(t)); err == nil {
		t.Fatal("expected the write error to surface")
	}
}

func TestRenderPNG_Decodes(t *testing.T) {
	sc := testScene(t)
	var buf bytes.Buffer
	if err := Render(&buf, sc, FormatPNG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Fatalf("bounds %v, want 600x400", b)
	}
	// The board is letterboxed horizontally, so the left edge is background.
	r, g, b, _ := img.At(0, 200).RGBA()
	if r>>8 != 10 || g>>8 != 10 || b>>8 != 10 {
		t.Fatalf("left edge pixel = (%d,%d,%d), want background", r>>8, g>>8, b>>8)
	}
}

func TestRasterize_DegenerateViewport(t *testing.T) {
	sc := &scene.Scene{Viewport: geom.R(0, 0, 0, 0)}
	if _, err := Rasterize(sc); !errors.Is(err, geom.ErrDegenerateRect) {
		t.Fatalf("err = %v, want ErrDegenerateRect", err)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, testScene(t), Format("bmp")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}
