// Package cli implements the dbg command-line interface.
//
// The dbg library prints values from inside a program; the command exposes
// the same pretty-printer for data files and manages the settings and cache
// the library shares with it.
//
// # Commands
//
//   - fmt: Pretty-print a JSON, YAML or TOML document
//   - styles: List the available highlight styles
//   - config: Show, locate or create the dbg.toml configuration
//   - cache: Locate or clear the formatted output cache
//   - version: Print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; configuration warnings go through the
// same logger.
package cli

import (
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/cache"
)

// appName is used for directories and display.
const appName = "dbg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportTimestamp(level <= log.DebugLevel)
}

// newCache opens the output cache, falling back to a null cache when it is
// disabled or its directory cannot be created.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(cacheDir())
	if err != nil {
		c.Logger.Debug("Cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory ($XDG_CACHE_HOME/dbg).
func cacheDir() string {
	return filepath.Join(xdg.CacheHome, appName)
}
