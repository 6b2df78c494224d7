package dbg

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/George-Ogden/dbg/pkg/config"
)

var plain = config.Config{Color: config.ColorNever, Style: "monokai", Indent: 4}

func capture(t *testing.T, cfg config.Config) (out, logs *bytes.Buffer) {
	t.Helper()
	out, logs = new(bytes.Buffer), new(bytes.Buffer)
	prev := Output()
	SetOutput(out)
	SetLogger(log.New(logs))
	SetConfig(cfg)
	t.Cleanup(func() {
		SetOutput(prev)
		SetLogger(nil)
	})
	return out, logs
}

// lines splits output and removes the [file:line:col] position of each line.
func lines(t *testing.T, out string) []string {
	t.Helper()
	position := regexp.MustCompile(`^\[dbg_test\.go:\d+:\d+\]`)
	var got []string
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if position.MatchString(line) {
			line = position.ReplaceAllString(line, "[pos]")
		}
		got = append(got, line)
	}
	return got
}

func TestDbg(t *testing.T) {
	out, _ := capture(t, plain)

	x := 5
	got := Dbg(x + 1)

	assert.Equal(t, 6, got)
	assert.Equal(t, []string{"[pos] x + 1 = 6"}, lines(t, out.String()))
}

func TestDbgKeepsType(t *testing.T) {
	capture(t, plain)

	names := Dbg([]string{"a", "b"})
	names = append(names, "c")
	assert.Len(t, names, 3)
}

func TestValues(t *testing.T) {
	out, _ := capture(t, plain)

	name, score := "ada", 8.5
	got := Values(name, score)

	assert.Equal(t, []any{"ada", 8.5}, got)
	assert.Equal(t, []string{
		`[pos] name = "ada"`,
		`[pos] score = 8.5`,
	}, lines(t, out.String()))
}

func TestValuesWithoutArguments(t *testing.T) {
	out, _ := capture(t, plain)

	got := Values()

	assert.Empty(t, got)
	assert.Equal(t, []string{"[pos]"}, lines(t, out.String()))
}

func TestValuesSpread(t *testing.T) {
	out, _ := capture(t, plain)

	xs := []any{1, "two"}
	Values(xs...)

	assert.Equal(t, []string{
		"[pos] xs -> 1",
		`[pos] xs -> "two"`,
	}, lines(t, out.String()))
}

func TestDbgBreaksWideValues(t *testing.T) {
	out, _ := capture(t, plain)

	long := make([]int, 30)
	Dbg(long)

	got := lines(t, out.String())
	require.Len(t, got, 32)
	assert.Equal(t, "[pos] long = [", got[0])
	assert.Equal(t, "    0,", got[1])
	assert.Equal(t, "]", got[31])
}

func TestDbgIndentFromConfig(t *testing.T) {
	cfg := plain
	cfg.Indent = 2
	cfg.Width = 20
	out, _ := capture(t, cfg)

	pair := []string{"first value", "second value"}
	Dbg(pair)

	assert.Equal(t, []string{
		"[pos] pair = [",
		`  "first value",`,
		`  "second value",`,
		"]",
	}, lines(t, out.String()))
}

func TestDbgColor(t *testing.T) {
	cfg := plain
	cfg.Color = config.ColorAlways
	out, _ := capture(t, cfg)

	x := []int{1, 2}
	Dbg(x)

	assert.Contains(t, out.String(), "\x1b[")
	assert.Equal(t, []string{"[pos] x = [1, 2]"}, lines(t, ansi.Strip(out.String())))
}

func TestDbgConcurrent(t *testing.T) {
	out, _ := capture(t, plain)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Values(i, "value")
		}()
	}
	wg.Wait()

	got := lines(t, out.String())
	require.Len(t, got, 40)
	for i := 0; i < len(got); i += 2 {
		assert.Regexp(t, `^\[pos\] i = \d+$`, got[i])
		assert.Equal(t, `[pos] "value" = "value"`, got[i+1])
	}
}

func TestPprint(t *testing.T) {
	capture(t, plain)

	tests := []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{
			name: "fits",
			v:    map[string]int{"b": 2, "a": 1},
			want: "{\"a\": 1, \"b\": 2}\n",
		},
		{
			name: "narrow",
			v:    []int{1, 2},
			opts: []Option{WithWidth(5), WithIndent(2)},
			want: "[\n  1,\n  2,\n]\n",
		},
		{
			name: "prefix",
			v:    "hi",
			opts: []Option{WithPrefix("greeting: ")},
			want: "greeting: \"hi\"\n",
		},
		{
			name: "unbounded",
			v:    make([]int, 40),
			opts: []Option{WithWidth(5), WithUnboundedWidth()},
			want: "[" + strings.Repeat("0, ", 39) + "0]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Pprint(&buf, tt.v, tt.opts...))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPprintInvalidOptions(t *testing.T) {
	capture(t, plain)

	var buf bytes.Buffer
	assert.Error(t, Pprint(&buf, 1, WithIndent(-1)))
	assert.Error(t, Pprint(&buf, 1, WithColor(true), WithStyle("no-such-style")))
	assert.Empty(t, buf.String())
}

func TestPformatColor(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		colored bool
		warns   bool
	}{
		{name: "default", colored: false},
		{name: "forced on", opts: []Option{WithColor(true)}, colored: true},
		{name: "style only", opts: []Option{WithStyle("monokai")}, colored: false},
		{name: "forced on with style", opts: []Option{WithColor(true), WithStyle("dracula")}, colored: true},
		{name: "forced on without style", opts: []Option{WithColor(true), WithStyle("")}, warns: true},
		{name: "forced off with style", opts: []Option{WithColor(false), WithStyle("monokai")}, warns: true},
		{name: "forced off", opts: []Option{WithColor(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, logs := capture(t, plain)

			got, err := Pformat([]string{"a"}, tt.opts...)
			require.NoError(t, err)

			assert.Equal(t, `["a"]`, ansi.Strip(got))
			assert.Equal(t, tt.colored, got != ansi.Strip(got))
			if tt.warns {
				assert.Contains(t, logs.String(), "The output will not be colored.")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestPformatWidthFromConfig(t *testing.T) {
	cfg := plain
	cfg.Width = 6
	capture(t, cfg)

	got, err := Pformat([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[\n    1,\n    2,\n    3,\n]", got)

	got, err = Pformat([]int{1, 2, 3}, WithWidth(80))
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", got)
}

// chatty prints to its writer while it is being formatted.
type chatty struct{ w *bytes.Buffer }

func (c chatty) String() string {
	Pprint(c.w, "inner")
	return "outer"
}

type noisy struct{}

func (noisy) String() string {
	Values("inner")
	return "outer"
}

func finishes(t *testing.T, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("printing from inside a String method on the same writer did not return")
	}
}

func TestPprintFromStringMethod(t *testing.T) {
	capture(t, plain)
	var buf bytes.Buffer

	finishes(t, func() { assert.NoError(t, Pprint(&buf, chatty{&buf})) })
	assert.Equal(t, "\"inner\"\nouter\n", buf.String())
}

func TestDbgFromStringMethod(t *testing.T) {
	out, _ := capture(t, plain)

	finishes(t, func() { Dbg(noisy{}) })
	assert.Equal(t, []string{`[pos] "inner" = "inner"`, "[pos] noisy{} = outer"}, lines(t, out.String()))
}
