package pretty

import "strings"

// Length is the display width of a node rendered on one line. A node whose
// rendering always spans several lines has an unknown length.
type Length struct {
	n     int
	known bool
}

// Unknown is the length of an inherently multi-line node.
var Unknown = Length{}

// Known returns a measured length.
func Known(n int) Length {
	return Length{n: n, known: true}
}

// Int returns the width and whether it is known.
func (l Length) Int() (int, bool) {
	return l.n, l.known
}

// Plus adds two lengths. The sum is unknown if either side is.
func (l Length) Plus(o Length) Length {
	if !l.known || !o.known {
		return Unknown
	}
	return Known(l.n + o.n)
}

// Add adds a constant width.
func (l Length) Add(n int) Length {
	return l.Plus(Known(n))
}

// Colorizer highlights a fragment of Go-like source.
type Colorizer interface {
	Code(text string) string
}

// Context carries the layout budget through a render. It is a value type;
// every method returns a modified copy.
type Context struct {
	indent  int
	used    int
	total   int
	bounded bool
	colors  Colorizer
}

// NewContext returns a context with a width budget of total columns of
// which used are already taken.
func NewContext(indent, used, total int) Context {
	return Context{indent: indent, used: used, total: total, bounded: true}
}

// Unbounded returns a context without a width limit.
func Unbounded(indent int) Context {
	return Context{indent: indent}
}

// WithColors returns a copy that highlights through c. A nil c disables
// highlighting.
func (c Context) WithColors(colors Colorizer) Context {
	c.colors = colors
	return c
}

// Remaining returns the columns left on the current line. The second result
// is false when the width is unbounded.
func (c Context) Remaining() (int, bool) {
	if !c.bounded {
		return 0, false
	}
	return c.total - c.used, true
}

// Indent moves one nesting level deeper.
func (c Context) Indent() Context {
	if c.bounded {
		c.total -= c.indent
	}
	return c
}

// Flatten removes the width limit.
func (c Context) Flatten() Context {
	c.bounded = false
	return c
}

// UseExtra charges n more columns against the current line.
func (c Context) UseExtra(n int) Context {
	if c.bounded {
		c.used += n
	}
	return c
}

// UseOnly resets the columns used on the current line to n.
func (c Context) UseOnly(n int) Context {
	if c.bounded {
		c.used = n
	}
	return c
}

// fits reports whether a node of length l can be rendered flat.
func (c Context) fits(l Length) bool {
	n, ok := l.Int()
	if !ok {
		return false
	}
	remaining, bounded := c.Remaining()
	return !bounded || n <= remaining
}

func (c Context) indentString() string {
	return strings.Repeat(" ", c.indent)
}

// colorize highlights text when enabled and a colorizer is configured.
func (c Context) colorize(enabled bool, text string) string {
	if !enabled || c.colors == nil {
		return text
	}
	return c.colors.Code(text)
}
