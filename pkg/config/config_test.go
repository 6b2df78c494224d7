package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func apply(t *testing.T, content string) (Config, string) {
	t.Helper()
	var buf bytes.Buffer
	cfg := Default()
	cfg.Apply(writeConfig(t, content), log.New(&buf))
	return cfg, buf.String()
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{"empty", "", Default()},
		{"disabled", "color = false", Config{Color: ColorNever, Style: DefaultStyle, Indent: 4}},
		{"enabled", "color = true\nstyle = \"vim\"", Config{Color: ColorAlways, Style: "vim", Indent: 4}},
		{"auto color", `color = "auto"`, Default()},
		{"section", "[dbg]\nindent = 2\nwidth = 100", Config{Style: DefaultStyle, Indent: 2, Width: 100}},
		{"auto width", `width = "auto"`, Default()},
		{"zero indent", "indent = 0", Config{Style: DefaultStyle}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := apply(t, tt.content)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
			if warnings != "" {
				t.Errorf("unexpected warnings: %s", warnings)
			}
		})
	}
}

func TestApplyWarnings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		warning string
	}{
		{
			name:    "unused field",
			content: "extra = 1",
			want:    Default(),
			warning: "Unused field 'extra'",
		},
		{
			name:    "suggestion",
			content: "indnet = 2",
			want:    Default(),
			warning: "Did you mean 'indent'?",
		},
		{
			name:    "quoted bool",
			content: `color = "false"`,
			want:    Config{Color: ColorNever, Style: DefaultStyle, Indent: 4},
			warning: `Quotes used around "false"`,
		},
		{
			name:    "quoted width",
			content: `width = "120"`,
			want:    Config{Style: DefaultStyle, Indent: 4, Width: 120},
			warning: `Quotes used around "120"`,
		},
		{
			name:    "invalid color",
			content: `color = "bad-color"`,
			want:    Default(),
			warning: `Invalid value "bad-color" found in field 'color'`,
		},
		{
			name:    "invalid indent",
			content: `indent = "----"`,
			want:    Default(),
			warning: `Invalid value "----" found in field 'indent' (expected int)`,
		},
		{
			name:    "negative indent",
			content: "indent = -1",
			want:    Default(),
			warning: "indent must not be negative",
		},
		{
			name:    "zero width",
			content: "width = 0",
			want:    Default(),
			warning: "width must be positive",
		},
		{
			name:    "unknown style",
			content: `style = "neon"`,
			want:    Default(),
			warning: `unknown style "neon"`,
		},
		{
			name:    "extra section",
			content: "[dbg]\nstyle = \"vim\"\n[extra]\ncolor = false",
			want:    Config{Color: ColorNever, Style: "vim", Indent: 4},
			warning: "Extra table [extra]",
		},
		{
			name:    "wrong section",
			content: "[debugging]\nindent = 2",
			want:    Config{Style: DefaultStyle, Indent: 2},
			warning: "Wrong table [debugging]",
		},
		{
			name:    "syntax error",
			content: "indent = = 2",
			want:    Default(),
			warning: "Unable to load config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := apply(t, tt.content)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
			if !strings.Contains(warnings, tt.warning) {
				t.Errorf("warnings = %q, want to contain %q", warnings, tt.warning)
			}
		})
	}
}

func TestApplyMissingFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Apply(filepath.Join(t.TempDir(), "missing.toml"), log.New(&buf))

	if cfg != Default() {
		t.Errorf("Apply() = %+v, want defaults", cfg)
	}
	if !strings.Contains(buf.String(), "Unable to load config") {
		t.Errorf("missing file should warn, got %q", buf.String())
	}
}

func TestLoadOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	defer xdg.Reload()

	userFile := filepath.Join(home, "dbg", FileName)
	os.MkdirAll(filepath.Dir(userFile), 0755)
	os.WriteFile(userFile, []byte("style = \"fruity\"\nindent = 2"), 0644)

	cwd := t.TempDir()
	os.WriteFile(filepath.Join(cwd, FileName), []byte(`style = "vim"`), 0644)
	t.Chdir(cwd)

	cfg := Load(log.New(&bytes.Buffer{}))
	if cfg.Style != "vim" {
		t.Errorf("Style = %q, want the local file to win", cfg.Style)
	}
	if cfg.Indent != 2 {
		t.Errorf("Indent = %d, want the user file value", cfg.Indent)
	}
}

func TestUserPathCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	defer xdg.Reload()

	path, err := UserPath()
	if err != nil {
		t.Fatalf("UserPath: %v", err)
	}
	if want := filepath.Join(home, "dbg", FileName); path != want {
		t.Errorf("UserPath() = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	if string(data) != defaultFile {
		t.Error("user file should hold the default configuration")
	}

	// The default file itself must load cleanly.
	var buf bytes.Buffer
	cfg := Default()
	cfg.Apply(path, log.New(&buf))
	if cfg != Default() || buf.Len() != 0 {
		t.Errorf("default file gives %+v, warnings %q", cfg, buf.String())
	}
}

func TestWriteDefaultKeepsExisting(t *testing.T) {
	path := writeConfig(t, "indent = 2")
	if err := WriteDefault(path); !os.IsExist(err) {
		t.Errorf("WriteDefault on an existing file = %v, want ErrExist", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"TRUE", ColorAlways},
		{"never", ColorNever},
		{"false", ColorNever},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseColor("sometimes"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("ParseColor(sometimes) error = %v", err)
	}
}

func TestParseWidth(t *testing.T) {
	if n, err := ParseWidth("auto"); err != nil || n != 0 {
		t.Errorf("ParseWidth(auto) = %d, %v", n, err)
	}
	if n, err := ParseWidth("120"); err != nil || n != 120 {
		t.Errorf("ParseWidth(120) = %d, %v", n, err)
	}
	for _, bad := range []string{"0", "-3", "wide", "12px"} {
		if _, err := ParseWidth(bad); !errors.Is(err, errors.ErrCodeInvalidWidth) {
			t.Errorf("ParseWidth(%q) error = %v, want INVALID_WIDTH", bad, err)
		}
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Color: ColorNever, Style: "vim", Indent: 2, Width: 100}
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	got := Default()
	got.Apply(writeConfig(t, buf.String()), log.New(&logs))
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v (file %q)", got, cfg, buf.String())
	}
}
