// Package pkg holds the libraries behind dbg, a debug printer for Go.
//
// # Overview
//
// dbg prints values with the code that produced them, laid out so nested
// values fit the terminal:
//
//	[main.go:14:2] cfg = Config(
//	    Name="api",
//	    Ports=[8080, 8443],
//	    Limits={"cpu": 2, "memory": 512},
//	)
//
// The directory is organized into four areas:
//
//  1. [pretty] - The layout engine: classification of values and rendering
//  2. [dbg] - The debug entry points built on pretty and [callsite]
//  3. [config], [highlight], [terminal] - Settings, colors and output probes
//  4. [io], [cache] - Data file decoding and output caching for the CLI
//
// # Architecture
//
// A call to dbg.Dbg flows through:
//
//	dbg.Dbg(x)
//	     ↓
//	[callsite] package (position and argument source)
//	     ↓
//	[config] + [terminal] packages (style, indent, width)
//	     ↓
//	[pretty] package (classify, measure, render)
//	     ↓
//	standard error
//
// The dbg command replaces the first step with [io], decoding a JSON, YAML
// or TOML document, and memoizes the result in [cache].
//
// # Quick Start
//
//	import "github.com/George-Ogden/dbg/pkg/dbg"
//
//	total := dbg.Dbg(price * qty)
//	dbg.Values(a, b, c)
//	dbg.Pprint(os.Stdout, value, dbg.WithWidth(60))
//
// For the layout alone, without call-site information:
//
//	text, err := pretty.Format(value, pretty.WithWidth(60), pretty.WithIndent(2))
//
// # Main Packages
//
//   - [pretty]: Format and its options; the node classifier and renderers
//   - [collections]: Counter, DefaultMap and ChainMap with dedicated layouts
//   - [callsite]: Source positions and argument text of a call
//   - [dbg]: Dbg, Values, Pprint and Pformat
//   - [config]: dbg.toml loading with warnings for unknown or bad keys
//   - [highlight]: chroma-backed coloring of Go fragments
//   - [terminal]: Width and color support of an output stream
//   - [io]: Order-preserving JSON, YAML and TOML decoding
//   - [cache]: Memory, file and null caches with key builders
//   - [errors]: Coded errors and option validation
//   - [observability]: Hooks for format and cache events
//   - [buildinfo]: Version information stamped at build time
//
// # Testing
//
// Packages are tested with the standard testing package; pretty and dbg use
// testify for comparing rendered blocks:
//
//	go test ./...
//
// [pretty]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/pretty
// [dbg]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/dbg
// [callsite]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/callsite
// [collections]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/collections
// [config]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/config
// [highlight]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/highlight
// [terminal]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/terminal
// [io]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/io
// [cache]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/cache
// [errors]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/errors
// [observability]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/George-Ogden/dbg/pkg/buildinfo
package pkg
