// Package game hosts the hex board in an ebiten window: the camera follows
// scroll and drag, each turn shows one pass of random paths, and a top bar
// reports the world position and cell under the pointer.
package game

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/config"
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

// topBarHeight is the height in pixels of the turn and pointer bar.
const topBarHeight = 26

// wheelPoints converts one wheel notch into scroll points for camera.Scroll.
const wheelPoints = 50

type Game struct {
	cfg    config.Config
	logger *log.Logger
	face   text.Face

	width  int
	height int

	cam         camera.State
	drag        camera.Drag
	pressInside bool // the current left press started over the board

	history   *History
	events    *EventLog
	inspector Inspector
	showHUD   bool

	pointer    geom.Point
	hasPointer bool

	scene    *scene.Scene
	sceneErr error
}

// New creates a Game from cfg. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	face, err := loadFace(14)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		face:    face,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		cam:     camera.New(),
		drag:    camera.Drag{Threshold: cfg.Camera.DragThreshold},
		events:  NewEventLog(),
		showHUD: true,
	}
	seed := cfg.Seed()
	g.history = NewHistory(NewGenerator(cfg), seed)
	g.logger.Info("Board ready", "radius", cfg.Grid.Radius, "paths", cfg.Paths.Count, "seed", seed)
	g.notePass()
	return g, nil
}

func loadFace(size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.rebuildScene()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// viewport is the screen area the board is fitted into.
func (g *Game) viewport() geom.Rect {
	right := float64(g.width)
	if g.showHUD {
		right -= eventPanelWidth
	}
	return geom.R(0, topBarHeight, right, float64(g.height))
}

func (g *Game) sceneInput() scene.Input {
	return scene.Input{
		Radius:     g.cfg.Grid.Radius,
		Camera:     g.cam,
		Viewport:   g.viewport(),
		Paths:      g.history.Current().Paths,
		Pointer:    g.pointer,
		HasPointer: g.hasPointer,
	}
}

// rebuildScene lays out the next frame. A degenerate viewport (a minimised
// window) skips the board until the window is usable again.
func (g *Game) rebuildScene() {
	sc, err := scene.Build(g.sceneInput())
	if err != nil {
		if g.sceneErr == nil {
			g.logger.Warn("Skipping board", "err", err)
		}
		g.scene, g.sceneErr = nil, err
		return
	}
	if g.sceneErr != nil {
		g.logger.Info("Board visible again")
	}
	g.scene, g.sceneErr = sc, nil
}

// notePass records the pass on screen in the event panel.
func (g *Game) notePass() {
	p := g.history.Current()
	steps := 0
	for _, path := range p.Paths {
		steps += len(path.Segments)
	}
	turn := g.history.Turn()
	g.events.Add(turn, EventPass, "seed %d: %d paths, %d steps", p.Seed, len(p.Paths), steps)
	if n := p.Stuck(); n > 0 {
		g.events.Add(turn, EventStuck, "%d path(s) stuck", n)
	}
	g.logger.Debug("Pass generated", "turn", turn, "seed", p.Seed, "steps", steps, "stuck", p.Stuck(), "claimed", p.Claimed.Len())
}

// Label is the pointer description shown in the top bar.
func (g *Game) Label() string {
	if g.scene == nil {
		return ""
	}
	return g.scene.Label
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)
	if g.scene != nil {
		drawScene(screen, g.scene)
	}
	g.drawTopBar(screen)
	if g.showHUD {
		g.events.Draw(screen, g.face, topBarHeight)
		g.drawHUD(screen)
	}
	g.drawInspector(screen)
}

var _ ebiten.Game = (*Game)(nil)
