// Package cli implements the hexgrid command-line tool: grid reports, path
// generation, static rendering and point lookup, all without opening a
// window.
//
// Every command reads the same TOML config as the game (--config) and logs
// through charmbracelet/log; --verbose switches to debug level.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Grid-Game/internal/config"
)

var version = "dev"

// SetVersion sets the string shown by --version.
func SetVersion(v string) { version = v }

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "hexgrid",
		Short:         "hexgrid inspects and renders the hex board without a window",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := levelFor(cfg.Log.Level)
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(stderr, level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newRingsCmd())
	root.AddCommand(newPathsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newLocateCmd())
	root.AddCommand(newReportCmd())
	return root
}

type cfgKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, cfgKey{}, cfg)
}

// configFromContext returns the loaded config, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(cfgKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
