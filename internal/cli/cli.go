// Package cli implements the racklabel command-line interface.
//
// This package provides commands for generating printable label PDFs from
// spreadsheet files and for running the upload/progress/download HTTP
// server. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Turn a spreadsheet of part records into printable labels
//   - serve: Run the HTTP upload/progress/download API
//   - cache: Manage the rendered-artifact cache
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agilomatrix/racklabel/pkg/buildinfo"
	"github.com/agilomatrix/racklabel/pkg/cache"
	"github.com/agilomatrix/racklabel/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "racklabel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "racklabel turns inventory spreadsheets into printable rack labels",
		Long:         `racklabel reads tabular part records (part number, description, storage location) from Excel or CSV files and lays them out as color-coded, printable label pages.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/racklabel/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
