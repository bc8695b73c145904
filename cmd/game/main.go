package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Grid-Game/internal/config"
	"github.com/Garsondee/Grid-Game/internal/game"
)

func main() {
	var configPath string
	var verbose bool
	flag.StringVar(&configPath, "config", "", "TOML config file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "grid",
	})

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Loading config", "err", err)
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("Starting game", "err", err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("Game exited", "err", err)
	}
}
