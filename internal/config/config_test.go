package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Grid.Radius != 40 || cfg.Paths.Steps != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestDecode_OverridesDefaults(t *testing.T) {
	src := `
[grid]
radius = 12

[paths]
count = 3
seed = 99
`
	cfg, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Grid.Radius != 12 || cfg.Paths.Count != 3 || cfg.Paths.Seed != 99 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Window.Width != 1280 || cfg.Paths.Steps != 100 {
		t.Fatalf("untouched keys lost their defaults: %+v", cfg)
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[grid]\nradious = 3\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "grid.radious") {
		t.Fatalf("error %q does not name the key", err)
	}
}

func TestDecode_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"negative radius": "[grid]\nradius = -1\n",
		"inverted zoom":   "[camera]\nzoom_min = 5.0\nzoom_max = 1.0\n",
		"zero divisor":    "[camera]\nscroll_divisor = 0.0\n",
		"bad level":       "[log]\nlevel = \"loud\"\n",
		"zero window":     "[window]\nwidth = 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(src)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDecode_MalformedTOML(t *testing.T) {
	if _, err := Decode(strings.NewReader("[grid\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	if err := os.WriteFile(path, []byte("[paths]\nsteps = 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paths.Steps != 7 {
		t.Fatalf("steps = %d, want 7", cfg.Paths.Steps)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err = %v", err)
	}
	if cfg, err := Load(""); err != nil || cfg != Default() {
		t.Fatalf("empty path: %+v, %v", cfg, err)
	}
}

func TestConfig_Conversions(t *testing.T) {
	cfg := Default()
	if lim := cfg.Limits(); lim.ZoomMin != cfg.Camera.ZoomMin || lim.ScrollDivisor != cfg.Camera.ScrollDivisor {
		t.Fatalf("Limits = %+v", lim)
	}
	if n := len(cfg.WalkOptions(1)); n != 4 {
		t.Fatalf("bounded config produced %d options, want 4", n)
	}
	cfg.Paths.Bounded = false
	if n := len(cfg.WalkOptions(1)); n != 3 {
		t.Fatalf("unbounded config produced %d options, want 3", n)
	}
}

func TestConfig_Seed(t *testing.T) {
	cfg := Default()
	cfg.Paths.Seed = 42
	if cfg.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", cfg.Seed())
	}
	cfg.Paths.Seed = 0
	if cfg.Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
}
