package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the stholm CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (cluster,
// structure, analyze, convert, view), loads the TOML configuration, and
// configures logging based on the --verbose flag. The logger is attached to
// the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "stholm",
		Short:        "stholm clusters and inspects Stockholm alignments",
		Long:         `stholm is a CLI tool for working with Stockholm multiple sequence alignments: cluster sequences by similarity, inspect consensus secondary structure, classify compensatory mutations, and browse alignments in the terminal.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			var err error
			var loaded string
			if configPath != "" {
				cfg, err = config.LoadPath(configPath)
				loaded = configPath
			} else {
				cfg, loaded, err = config.Load()
			}
			if err != nil {
				return err
			}
			if loaded != "" {
				logger.Debugf("Loaded config from %s", loaded)
			}
			applyTheme(cfg.Theme)

			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stholm %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./stholm.toml, then the user config dir)")

	root.AddCommand(newClusterCmd(&cfg))
	root.AddCommand(newStructureCmd())
	root.AddCommand(newAnalyzeCmd(&cfg))
	root.AddCommand(newConvertCmd())
	root.AddCommand(newViewCmd(&cfg))

	return root.ExecuteContext(ctx)
}
