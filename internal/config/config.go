// Package config loads the viewer and CLI settings from TOML, layered over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/hexgrid"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
	"github.com/Garsondee/Grid-Game/internal/scene"
)

// ErrInvalid is returned when a setting is out of range or unknown.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables.
type Config struct {
	Window Window `toml:"window"`
	Grid   Grid   `toml:"grid"`
	Camera Camera `toml:"camera"`
	Paths  Paths  `toml:"paths"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Grid struct {
	Radius int `toml:"radius"`
}

type Camera struct {
	ZoomMin       float64 `toml:"zoom_min"`
	ZoomMax       float64 `toml:"zoom_max"`
	ScrollDivisor float64 `toml:"scroll_divisor"`
	DragThreshold float64 `toml:"drag_threshold"`
}

type Paths struct {
	Count      int   `toml:"count"`
	Steps      int   `toml:"steps"`
	MaxRetries int   `toml:"max_retries"`
	Seed       int64 `toml:"seed"` // 0 picks a fresh seed each run
	Bounded    bool  `toml:"bounded"`
}

type Log struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{Title: "Grid Game", Width: 1280, Height: 800},
		Grid:   Grid{Radius: scene.DefaultGridRadius},
		Camera: Camera{
			ZoomMin:       camera.DefaultLimits.ZoomMin,
			ZoomMax:       camera.DefaultLimits.ZoomMax,
			ScrollDivisor: camera.DefaultLimits.ScrollDivisor,
			DragThreshold: camera.DefaultDragThreshold,
		},
		Paths: Paths{
			Count:      6,
			Steps:      pathwalk.DefaultSteps,
			MaxRetries: pathwalk.DefaultMaxRetries,
			Bounded:    true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting is usable.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrInvalid)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Grid.Radius >= 0, "grid radius %d", c.Grid.Radius)
	check(c.Camera.ZoomMin > 0 && c.Camera.ZoomMax >= c.Camera.ZoomMin,
		"zoom range [%g, %g]", c.Camera.ZoomMin, c.Camera.ZoomMax)
	check(c.Camera.ScrollDivisor > 0, "scroll divisor %g", c.Camera.ScrollDivisor)
	check(c.Camera.DragThreshold >= 0, "drag threshold %g", c.Camera.DragThreshold)
	check(c.Paths.Count >= 0, "path count %d", c.Paths.Count)
	check(c.Paths.Steps >= 0, "path steps %d", c.Paths.Steps)
	check(c.Paths.MaxRetries >= 0, "path max retries %d", c.Paths.MaxRetries)
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "log level %q", c.Log.Level)
	}
	return errors.Join(errs...)
}

// Limits converts the camera settings.
func (c Config) Limits() camera.Limits {
	return camera.Limits{
		ZoomMin:       c.Camera.ZoomMin,
		ZoomMax:       c.Camera.ZoomMax,
		ScrollDivisor: c.Camera.ScrollDivisor,
	}
}

// Seed returns Paths.Seed, or a time-based seed when it is zero.
func (c Config) Seed() int64 {
	if c.Paths.Seed != 0 {
		return c.Paths.Seed
	}
	return time.Now().UnixNano()
}

// WalkOptions converts the path settings for a pathwalk.Builder. seed is the
// effective seed, already resolved from Paths.Seed.
func (c Config) WalkOptions(seed int64) []pathwalk.Option {
	opts := []pathwalk.Option{
		pathwalk.WithSteps(c.Paths.Steps),
		pathwalk.WithMaxRetries(c.Paths.MaxRetries),
		pathwalk.WithSeed(seed),
	}
	if c.Paths.Bounded {
		opts = append(opts, pathwalk.WithBounds(hexgrid.Origin, c.Grid.Radius))
	}
	return opts
}
