package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Grid-Game/internal/camera"
	"github.com/Garsondee/Grid-Game/internal/geom"
	"github.com/Garsondee/Grid-Game/internal/pathwalk"
	"github.com/Garsondee/Grid-Game/internal/scene"
	"github.com/Garsondee/Grid-Game/internal/sink"
)

type renderOpts struct {
	out           string
	format        string
	width, height int
	zoom          float64
	x, y          float64
	radius        int
	seed          int64
	noPaths       bool
	lineWidth     float64
}

func newRenderCmd() *cobra.Command {
	var o renderOpts
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the board and one pass of paths to SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("width") {
				o.width = cfg.Window.Width
			}
			if !flags.Changed("height") {
				o.height = cfg.Window.Height
			}
			if flags.Changed("radius") {
				cfg.Grid.Radius = o.radius
			}
			if flags.Changed("seed") {
				cfg.Paths.Seed = o.seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := resolveFormat(o.format, o.out)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			seed := cfg.Seed()
			var paths []pathwalk.Path
			if !o.noPaths {
				paths, _ = runPass(cfg, seed)
			}
			cam := camera.New()
			cam.Position = geom.Pt(o.x, o.y)
			cam.ZoomBy(o.zoom, cfg.Limits())
			sc, err := scene.Build(scene.Input{
				Radius:   cfg.Grid.Radius,
				Camera:   cam,
				Viewport: geom.R(0, 0, float64(o.width), float64(o.height)),
				Paths:    paths,
			})
			if err != nil {
				return err
			}
			logger.Debug("Built scene", "cells", len(sc.Cells), "curves", len(sc.Curves), "markers", len(sc.Markers))

			w, closeFn, err := openOutput(cmd.OutOrStdout(), o.out)
			if err != nil {
				return err
			}
			opts := []sink.Option{sink.WithLineWidth(o.lineWidth), sink.WithCaption(fmt.Sprintf("seed %d", seed))}
			if err := sink.Render(w, sc, format, opts...); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return fmt.Errorf("close %s: %w", o.out, err)
			}
			prog.done("Rendered", "format", format, "out", o.out, "seed", seed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "svg or png (default from the output extension, else svg)")
	cmd.Flags().IntVar(&o.width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&o.height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().Float64Var(&o.zoom, "zoom", 1, "camera zoom")
	cmd.Flags().Float64Var(&o.x, "x", 0, "camera centre X in world units")
	cmd.Flags().Float64Var(&o.y, "y", 0, "camera centre Y in world units")
	cmd.Flags().IntVarP(&o.radius, "radius", "r", 0, "board radius (default from config)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed, 0 for time based (default from config)")
	cmd.Flags().BoolVar(&o.noPaths, "no-paths", false, "draw the board only")
	cmd.Flags().Float64Var(&o.lineWidth, "line-width", 1, "stroke width in pixels")
	return cmd
}

// resolveFormat prefers an explicit --format, then the output extension.
func resolveFormat(format, out string) (sink.Format, error) {
	if format != "" {
		return sink.ParseFormat(format)
	}
	if ext := filepath.Ext(out); ext != "" {
		return sink.ParseFormat(ext)
	}
	return sink.FormatSVG, nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
