// Package config loads dbg settings from TOML files.
//
// Settings are read from the user configuration file
// ($XDG_CONFIG_HOME/dbg/dbg.toml, created with defaults on first use) and
// then from dbg.toml in the working directory. Later files override earlier
// ones key by key.
//
// Problems in a file never fail a load: each one is logged as a warning and
// the affected key keeps its previous value.
package config

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/errors"
	"github.com/George-Ogden/dbg/pkg/highlight"
)

const (
	// FileName is the name of configuration files.
	FileName = "dbg.toml"

	// Section is the optional table holding the settings.
	Section = "dbg"

	userRelPath = "dbg/" + FileName
)

// Defaults used by Default.
const (
	DefaultIndent = 4
	DefaultStyle  = highlight.DefaultStyle
)

//go:embed default.toml
var defaultFile string

// Color says when output is highlighted.
type Color int

const (
	// ColorAuto highlights only when writing to a color terminal.
	ColorAuto Color = iota
	// ColorAlways always highlights.
	ColorAlways
	// ColorNever never highlights.
	ColorNever
)

// String returns the TOML spelling of c.
func (c Color) String() string {
	switch c {
	case ColorAlways:
		return "true"
	case ColorNever:
		return "false"
	default:
		return "auto"
	}
}

// ParseColor parses a color mode as accepted on the command line: auto,
// always, never, true or false.
func ParseColor(s string) (Color, error) {
	if err := errors.ValidateColorMode(s); err != nil {
		return ColorAuto, err
	}
	switch strings.ToLower(s) {
	case "always", "true":
		return ColorAlways, nil
	case "never", "false":
		return ColorNever, nil
	}
	return ColorAuto, nil
}

// ParseWidth parses a line width. "auto" returns zero, meaning the terminal
// width.
func ParseWidth(s string) (int, error) {
	if strings.EqualFold(s, "auto") {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidWidth, "width must be a number or \"auto\", got %q", s)
	}
	if err := errors.ValidateWidth(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Config holds the resolved settings.
type Config struct {
	Color  Color
	Style  string
	Indent int
	// Width is the line width; zero means the terminal width.
	Width int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:  ColorAuto,
		Style:  DefaultStyle,
		Indent: DefaultIndent,
	}
}

// Load returns the default settings overridden by the user file and then
// by the file in the working directory. The user file is created with
// defaults if it does not exist yet.
func Load(logger *log.Logger) Config {
	if logger == nil {
		logger = log.Default()
	}
	cfg := Default()
	if path, err := UserPath(); err != nil {
		logger.Debugf("No user config: %v", err)
	} else {
		cfg.Apply(path, logger)
	}
	if path, err := LocalPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			cfg.Apply(path, logger)
		}
	}
	return cfg
}

// UserPath returns the path of the user configuration file, creating it
// with the default settings if it does not exist.
func UserPath() (string, error) {
	path, err := xdg.SearchConfigFile(userRelPath)
	if err == nil {
		return path, nil
	}
	path, err = xdg.ConfigFile(userRelPath)
	if err != nil {
		return "", err
	}
	if err := WriteDefault(path); err != nil && !os.IsExist(err) {
		return "", err
	}
	return path, nil
}

// LocalPath returns the path of dbg.toml in the working directory.
func LocalPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, FileName), nil
}

// WriteDefault writes the commented default configuration to path. It
// fails with an os.ErrExist error if the file already exists.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, defaultFile); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// file is the TOML form of Config. Color is a bool or "auto" and Width an
// integer or "auto".
type file struct {
	Color  any    `toml:"color"`
	Style  string `toml:"style"`
	Indent int    `toml:"indent"`
	Width  any    `toml:"width"`
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	f := file{Color: "auto", Style: c.Style, Indent: c.Indent, Width: "auto"}
	switch c.Color {
	case ColorAlways:
		f.Color = true
	case ColorNever:
		f.Color = false
	}
	if c.Width > 0 {
		f.Width = c.Width
	}
	return toml.NewEncoder(w).Encode(f)
}
