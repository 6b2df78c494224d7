package callsite

import (
	"bytes"
	"context"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/George-Ogden/dbg/pkg/cache"
)

var (
	calls cache.Cache = cache.NewMemoryCache(cache.DefaultMemorySize)
	keyer             = cache.NewDefaultKeyer()
)

// call is a call expression found on a source line.
type call struct {
	Name   string   `json:"name"`
	Col    int      `json:"col"`
	Args   []string `json:"args"`
	Spread bool     `json:"spread"`
}

// Lookup returns the site of the first call to one of the named functions
// that spans line in file. Names match plain calls (Dbg(x)), qualified
// calls (dbg.Dbg(x)) and instantiations (dbg.Dbg[int](x)).
func Lookup(file string, line int, names ...string) Site {
	site := Site{File: file, Line: line}
	for _, c := range callsOnLine(file, line) {
		if slices.Contains(names, c.Name) {
			site.Col = c.Col
			site.args = c.Args
			site.spread = c.Spread
			site.found = true
			break
		}
	}
	return site
}

// callsOnLine returns every call spanning line, outermost first. Results
// are cached until the file changes.
func callsOnLine(file string, line int) []call {
	info, err := os.Stat(file)
	if err != nil {
		return nil
	}
	ctx := context.Background()
	key := keyer.CallsiteKey(file, line, info.ModTime(), info.Size())
	if data, ok, _ := calls.Get(ctx, key); ok {
		var found []call
		if json.Unmarshal(data, &found) == nil {
			return found
		}
	}

	found := parseCalls(file, line)
	if data, err := json.Marshal(found); err == nil {
		_ = calls.Set(ctx, key, data, 0)
	}
	return found
}

// parseCalls parses file and collects the calls spanning line. Comments are
// not parsed, so they never appear in argument text.
func parseCalls(file string, line int) []call {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil
	}

	var found []call
	ast.Inspect(f, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		start, end := fset.Position(n.Pos()).Line, fset.Position(n.End()).Line
		if line < start || line > end {
			return false
		}
		expr, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		name := funcName(expr.Fun)
		if name == "" {
			return true
		}
		c := call{
			Name:   name,
			Col:    fset.Position(expr.Pos()).Column,
			Args:   make([]string, len(expr.Args)),
			Spread: expr.Ellipsis.IsValid(),
		}
		for i, arg := range expr.Args {
			c.Args[i] = printNode(fset, arg)
		}
		found = append(found, c)
		return true
	})
	return found
}

// funcName returns the name of the called function, or "" for calls
// through arbitrary expressions.
func funcName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return funcName(f.X)
	case *ast.IndexListExpr:
		return funcName(f.X)
	case *ast.ParenExpr:
		return funcName(f.X)
	}
	return ""
}

func printNode(fset *token.FileSet, node ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return Unknown
	}
	return buf.String()
}
