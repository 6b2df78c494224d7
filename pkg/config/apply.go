package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/errors"
	"github.com/George-Ogden/dbg/pkg/highlight"
)

// Keys lists the settings a file may contain.
var Keys = []string{"color", "style", "indent", "width"}

// maxSuggestionDistance bounds how far a misspelled key may be from a known
// key to be suggested.
const maxSuggestionDistance = 2

// Apply overrides c with the settings in the file at path. Unreadable
// files, unknown keys and invalid values are logged as warnings.
func (c *Config) Apply(path string, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	var raw map[string]any
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		logger.Warnf("Unable to load config from '%s'. (%v)", path, err)
		return
	}

	l := loader{cfg: c, path: path, logger: logger}
	hasTopLevel := false
	for _, key := range md.Keys() {
		if len(key) == 1 && md.Type(key...) != "Hash" {
			hasTopLevel = true
		}
	}
	_, hasSection := raw[Section].(map[string]any)

	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			if md.Type(key...) == "Hash" {
				l.checkSection(key[0], hasTopLevel || hasSection)
				continue
			}
			l.set(key[0], raw[key[0]])
		case 2:
			table, _ := raw[key[0]].(map[string]any)
			l.set(key[1], table[key[1]])
		}
	}
}

// loader applies the settings of one file.
type loader struct {
	cfg    *Config
	path   string
	logger *log.Logger
}

func (l loader) checkSection(name string, others bool) {
	if name == Section {
		return
	}
	if others {
		l.logger.Warnf("Extra table [%s] found in '%s'. Please, use no tables or one table called [%s].", name, l.path, Section)
		return
	}
	l.logger.Warnf("Wrong table [%s] used in '%s'. Please, use [%s] or no tables.", name, l.path, Section)
}

func (l loader) set(key string, value any) {
	switch key {
	case "color":
		l.setColor(value)
	case "style":
		l.setStyle(value)
	case "indent":
		l.setIndent(value)
	case "width":
		l.setWidth(value)
	default:
		msg := fmt.Sprintf("Unused field '%s' found in '%s'.", key, l.path)
		if s := suggest(key); s != "" {
			msg += fmt.Sprintf(" Did you mean '%s'?", s)
		}
		l.logger.Warn(msg)
	}
}

func (l loader) setColor(value any) {
	switch v := value.(type) {
	case bool:
		l.cfg.Color = ColorNever
		if v {
			l.cfg.Color = ColorAlways
		}
		return
	case string:
		if v == "true" || v == "false" {
			l.warnQuotes(v)
		}
		if color, err := ParseColor(v); err == nil {
			l.cfg.Color = color
			return
		}
	}
	l.warnInvalid("color", value, `bool or "auto"`)
}

func (l loader) setStyle(value any) {
	v, ok := value.(string)
	if !ok {
		l.warnInvalid("style", value, "string")
		return
	}
	if err := highlight.ValidateStyle(v); err != nil {
		l.logger.Warnf("%v in '%s'.", err, l.path)
		return
	}
	l.cfg.Style = v
}

func (l loader) setIndent(value any) {
	v, ok := value.(int64)
	if !ok {
		l.warnInvalid("indent", value, "int")
		return
	}
	if err := errors.ValidateIndent(int(v)); err != nil {
		l.logger.Warnf("%s in '%s'.", errors.UserMessage(err), l.path)
		return
	}
	l.cfg.Indent = int(v)
}

func (l loader) setWidth(value any) {
	switch v := value.(type) {
	case int64:
		if err := errors.ValidateWidth(int(v)); err != nil {
			l.logger.Warnf("%s in '%s'.", errors.UserMessage(err), l.path)
			return
		}
		l.cfg.Width = int(v)
		return
	case string:
		if _, err := strconv.Atoi(v); err == nil {
			l.warnQuotes(v)
		}
		if width, err := ParseWidth(v); err == nil {
			l.cfg.Width = width
			return
		}
	}
	l.warnInvalid("width", value, `positive int or "auto"`)
}

func (l loader) warnQuotes(v string) {
	l.logger.Warnf("Quotes used around %q in '%s'. They will be ignored, but please remove to silence this warning.", v, l.path)
}

func (l loader) warnInvalid(key string, value any, expected string) {
	l.logger.Warnf("Invalid value %s found in field '%s' (expected %s) in '%s'.", tomlValue(value), key, expected, l.path)
}

// tomlValue spells v the way it was written in the file.
func tomlValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

// suggest returns the known key closest to key, or "" if none is close.
func suggest(key string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, known := range Keys {
		if d := levenshtein.ComputeDistance(key, known); d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best
}
