package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/x/ansi"

	"github.com/George-Ogden/dbg/pkg/observability"
)

var testdataDir, _ = filepath.Abs("testdata")

// newTestCLI isolates the config and cache directories and the working
// directory of one test.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())

	var logs bytes.Buffer
	return New(&logs, LogInfo), &logs
}

func execute(c *CLI, stdin string, args ...string) (string, error) {
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFmt(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "json breaks at width",
			args: []string{"fmt", filepath.Join(testdataDir, "nested.json"), "--width", "41"},
			want: `{
    "name": "dbg",
    "tags": ["debug", "print"],
    "limits": {"width": 80, "indent": 4},
}
`,
		},
		{
			name: "indent flag",
			args: []string{"fmt", filepath.Join(testdataDir, "nested.json"), "--width", "30", "--indent", "2"},
			want: `{
  "name": "dbg",
  "tags": ["debug", "print"],
  "limits": {
    "width": 80,
    "indent": 4,
  },
}
`,
		},
		{
			name: "unbounded",
			args: []string{"fmt", filepath.Join(testdataDir, "nested.json"), "--width", "none"},
			want: `{"name": "dbg", "tags": ["debug", "print"], "limits": {"width": 80, "indent": 4}}` + "\n",
		},
		{
			name: "yaml",
			args: []string{"fmt", filepath.Join(testdataDir, "list.yaml")},
			want: "[1, \"two\", [3, 4]]\n",
		},
		{
			name: "toml",
			args: []string{"fmt", filepath.Join(testdataDir, "server.toml")},
			want: "{\"title\": \"demo\", \"server\": {\"port\": 8080}}\n",
		},
		{
			name:  "stdin",
			args:  []string{"fmt", "-", "--format", "json"},
			stdin: `[1, 2]`,
			want:  "[1, 2]\n",
		},
		{
			name:  "stdin without argument",
			args:  []string{"fmt", "--format", "yaml"},
			stdin: "a: 1",
			want:  "{\"a\": 1}\n",
		},
		{
			name:  "prefix",
			args:  []string{"fmt", "--format", "json", "--prefix", "data = "},
			stdin: `"hello"`,
			want:  "data = \"hello\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			args := append(tt.args, "--color", "never")
			got, err := execute(c, tt.stdin, args...)
			if err != nil {
				t.Fatalf("fmt error = %v", err)
			}
			if got != tt.want {
				t.Errorf("fmt output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFmtColor(t *testing.T) {
	c, _ := newTestCLI(t)
	got, err := execute(c, `[1, "a"]`, "fmt", "--format", "json", "--color", "always", "--style", "dracula")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("fmt --color always output %q has no escape codes", got)
	}
}

func TestFmtErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"stdin needs format", []string{"fmt"}, "{}", "--format is required"},
		{"unknown extension", []string{"fmt", "notes.txt"}, "", "cannot infer format"},
		{"missing file", []string{"fmt", "missing.json"}, "", "missing.json"},
		{"bad document", []string{"fmt", filepath.Join(testdataDir, "broken.json")}, "", "broken.json"},
		{"bad width", []string{"fmt", "-f", "json", "--width", "wide"}, "1", "width"},
		{"bad indent", []string{"fmt", "-f", "json", "--indent", "100"}, "1", "indent"},
		{"bad color", []string{"fmt", "-f", "json", "--color", "sometimes"}, "1", "color"},
		{"bad style", []string{"fmt", "-f", "json", "--color", "always", "--style", "nope"}, "1", "style"},
		{"bad format", []string{"fmt", "-f", "xml"}, "<a/>", "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			_, err := execute(c, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("fmt expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("fmt error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestFmtUsesLocalConfig(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := os.WriteFile("dbg.toml", []byte("indent = 1\nwidth = 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := execute(c, `[100, 200, 300]`, "fmt", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	if want := "[\n 100,\n 200,\n 300,\n]\n"; got != want {
		t.Errorf("fmt output = %q, want %q", got, want)
	}
}

func TestFmtCache(t *testing.T) {
	c, _ := newTestCLI(t)
	path := filepath.Join(testdataDir, "list.yaml")

	first, err := execute(c, "", "fmt", path, "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	second, err := execute(c, "", "fmt", path, "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("cached output = %q, want %q", second, first)
	}

	if _, err := execute(c, "", "fmt", path, "--color", "never", "--no-cache"); err != nil {
		t.Fatal(err)
	}

	got, err := execute(c, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cleared 1 cached entries") {
		t.Errorf("cache clear output = %q", got)
	}

	got, err = execute(c, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cleared 0 cached entries") {
		t.Errorf("second cache clear output = %q", got)
	}
}

func TestCacheDir(t *testing.T) {
	c, _ := newTestCLI(t)
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), "dbg")

	if got := cacheDir(); got != want {
		t.Errorf("cacheDir() = %q, want %q", got, want)
	}

	got, err := execute(c, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if got != want+"\n" {
		t.Errorf("cache path output = %q, want %q", got, want+"\n")
	}

	got, err = execute(c, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cache is empty") {
		t.Errorf("cache clear on a missing cache = %q", got)
	}
}

func TestConfigCommands(t *testing.T) {
	c, _ := newTestCLI(t)

	got, err := execute(c, "", "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dbg", "dbg.toml")) {
		t.Errorf("config path output = %q, want the user file", got)
	}
	if !strings.Contains(got, "(missing)") {
		t.Errorf("config path output = %q, want the local file marked missing", got)
	}

	got, err = execute(c, "", "config", "init")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Created dbg.toml") {
		t.Errorf("config init output = %q", got)
	}
	if _, err := os.Stat("dbg.toml"); err != nil {
		t.Errorf("config init did not create dbg.toml: %v", err)
	}

	got, err = execute(c, "", "config", "init")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "already exists") {
		t.Errorf("second config init output = %q", got)
	}

	if err := os.WriteFile("dbg.toml", []byte("indent = 2\ncolor = false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = execute(c, "", "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"indent = 2", "color = false", `style = "monokai"`, `width = "auto"`} {
		if !strings.Contains(got, want) {
			t.Errorf("config show output = %q, want it to contain %q", got, want)
		}
	}
}

func TestConfigWarningsAreLogged(t *testing.T) {
	c, logs := newTestCLI(t)
	if err := os.WriteFile("dbg.toml", []byte("indnet = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(c, "", "config", "show"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "Did you mean 'indent'?") {
		t.Errorf("logs = %q, want a suggestion for the misspelled key", logs.String())
	}
}

func TestStyles(t *testing.T) {
	c, _ := newTestCLI(t)

	got, err := execute(c, "", "styles", "--color", "never")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) < 10 {
		t.Errorf("styles listed %d styles, want many", len(lines))
	}
	if !strings.Contains(got, "monokai (current)\n") {
		t.Errorf("styles output does not mark the current style: %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("styles --color never output has escape codes")
	}

	got, err = execute(c, "", "styles", "--color", "always")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.Strip(got), `"count": 42`) {
		t.Error("styles --color always output has no samples")
	}
}

func TestVersionCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	got, err := execute(c, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "version: ") {
		t.Errorf("version output = %q", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	got, err := execute(c, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "dbg") {
		t.Error("bash completion does not mention dbg")
	}
}

func TestFlagCompletion(t *testing.T) {
	c, _ := newTestCLI(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"__complete", "fmt", "--style", "mono"}, "monokai"},
		{[]string{"__complete", "fmt", "--format", ""}, "toml"},
		{[]string{"__complete", "styles", "--color", ""}, "never"},
	}
	for _, tt := range tests {
		got, err := execute(c, "", tt.args...)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("%v = %q, want it to contain %q", tt.args, got, tt.want)
		}
	}
}

func TestVerboseLogsProgress(t *testing.T) {
	c, logs := newTestCLI(t)
	t.Cleanup(observability.Reset)
	if _, err := execute(c, "", "fmt", filepath.Join(testdataDir, "list.yaml"), "--color", "never", "-v"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Formatted", "input=", "cached=false", "Cache miss kind=format", "nodes="} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs = %q, want it to contain %q", logs.String(), want)
		}
	}
}
