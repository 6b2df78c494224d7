package callsite

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"
	"time"
)

const sample = `package sample

import "example.com/dbg"

func f(xs []int, total, count int) {
	dbg.Dbg(total / count) // trailing comment
	dbg.Values(total, count,
		xs[0])
	dbg.Values(xs...)
	dbg.Dbg[int](  count  )
	dbg.Values()
	other(dbg.Dbg(1), 2)
	dbg.Dbg(dbg.Dbg(3))
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLookup(t *testing.T) {
	path := writeSample(t)
	names := []string{"Dbg", "Values"}

	tests := []struct {
		name string
		line int
		n    int
		col  int
		want []Code
	}{
		{
			name: "single argument",
			line: 6,
			n:    1,
			col:  2,
			want: []Code{{"total / count", "="}},
		},
		{
			name: "call spanning lines",
			line: 7,
			n:    3,
			col:  2,
			want: []Code{{"total", "="}, {"count", "="}, {"xs[0]", "="}},
		},
		{
			name: "spread",
			line: 9,
			n:    2,
			col:  2,
			want: []Code{{"xs", "->"}, {"xs", "->"}},
		},
		{
			name: "instantiation",
			line: 10,
			n:    1,
			col:  2,
			want: []Code{{"count", "="}},
		},
		{
			name: "no arguments",
			line: 11,
			n:    0,
			col:  2,
			want: []Code{},
		},
		{
			name: "nested in another call",
			line: 12,
			n:    1,
			col:  8,
			want: []Code{{"1", "="}},
		},
		{
			name: "outermost call wins",
			line: 13,
			n:    1,
			col:  2,
			want: []Code{{"dbg.Dbg(3)", "="}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Lookup(path, tt.line, names...)
			if site.Col != tt.col {
				t.Errorf("Col = %d, want %d", site.Col, tt.col)
			}
			if got := site.Codes(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Codes(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	path := writeSample(t)
	unknown := []Code{{Unknown, "="}, {Unknown, "="}}

	tests := []struct {
		name string
		file string
		line int
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.go"), 1},
		{"no call on line", path, 1},
		{"argument count mismatch", path, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Lookup(tt.file, tt.line, "Dbg", "Values")
			if got := site.Codes(2); !reflect.DeepEqual(got, unknown) {
				t.Errorf("Codes(2) = %v, want %v", got, unknown)
			}
		})
	}
}

func TestLookupSeesEdits(t *testing.T) {
	path := writeSample(t)
	if got := Lookup(path, 6, "Dbg").Codes(1)[0].Text; got != "total / count" {
		t.Fatalf("first lookup = %q", got)
	}

	edited := regexp.MustCompile(`total / count`).ReplaceAllString(sample, "count * 2")
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if got := Lookup(path, 6, "Dbg").Codes(1)[0].Text; got != "count * 2" {
		t.Errorf("lookup after edit = %q, want %q", got, "count * 2")
	}
}

func TestLookupSeesEditsWithSameModTime(t *testing.T) {
	path := writeSample(t)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := Lookup(path, 6, "Dbg").Codes(1)[0].Text; got != "total / count" {
		t.Fatalf("first lookup = %q", got)
	}

	edited := regexp.MustCompile(`total / count`).ReplaceAllString(sample, "count * 2")
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		t.Fatal(err)
	}

	if got := Lookup(path, 6, "Dbg").Codes(1)[0].Text; got != "count * 2" {
		t.Errorf("lookup after same-mtime edit = %q, want %q", got, "count * 2")
	}
}

func TestPosition(t *testing.T) {
	cwd, _ := os.Getwd()
	tests := []struct {
		site Site
		want string
	}{
		{Site{}, "[<unknown>]"},
		{Site{File: filepath.Join(cwd, "main.go"), Line: 3, Col: 7}, "[main.go:3:7]"},
		{Site{File: filepath.Join(cwd, "pkg", "a.go"), Line: 12}, "[" + filepath.Join("pkg", "a.go") + ":12]"},
	}
	for _, tt := range tests {
		if got := tt.site.Position(); got != tt.want {
			t.Errorf("Position() = %q, want %q", got, tt.want)
		}
	}
}

// Dbg stands in for the real entry point so Caller has a call to find.
func Dbg(v any) Site { return Caller(1, "Dbg") }

func TestCaller(t *testing.T) {
	total, count := 6, 3
	site := Dbg(total / count)

	if ok, _ := regexp.MatchString(`^\[callsite_test\.go:\d+:\d+\]$`, site.Position()); !ok {
		t.Errorf("Position() = %q", site.Position())
	}
	want := []Code{{"total / count", "="}}
	if got := site.Codes(1); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes(1) = %v, want %v", got, want)
	}
}
