package pretty

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/George-Ogden/dbg/pkg/errors"
	"github.com/George-Ogden/dbg/pkg/highlight"
	"github.com/George-Ogden/dbg/pkg/observability"
)

// Defaults used when no option overrides them.
const (
	DefaultWidth  = 80
	DefaultIndent = 4
)

// overflowMarker is printed at the end of a prefix whose value had to move
// to the next line.
const overflowMarker = "⏎"

// Option configures a Format call.
type Option func(*options)

type options struct {
	width     int
	unbounded bool
	indent    int
	style     string
	colors    Colorizer
	prefix    string
}

// WithWidth sets the line width in columns.
func WithWidth(n int) Option { return func(o *options) { o.width, o.unbounded = n, false } }

// WithUnboundedWidth removes the line width limit. Values still span
// several lines when a leaf does.
func WithUnboundedWidth() Option { return func(o *options) { o.unbounded = true } }

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) Option { return func(o *options) { o.indent = n } }

// WithStyle highlights the output with the named style. An empty name
// disables highlighting.
func WithStyle(name string) Option { return func(o *options) { o.style = name } }

// WithColorizer highlights the output through c, taking precedence over
// WithStyle.
func WithColorizer(c Colorizer) Option { return func(o *options) { o.colors = c } }

// WithPrefix prints s before the value. The prefix is never highlighted and
// its last line counts against the width of the value's first line.
func WithPrefix(s string) Option { return func(o *options) { o.prefix = s } }

// Format returns the pretty-printed text of v.
//
// Containers are printed on one line when they fit the width and one
// element per line otherwise. Values reachable from themselves are printed
// once, with the inner occurrence shown as an ellipsis.
func Format(v any, opts ...Option) (string, error) {
	return FormatContext(context.Background(), v, opts...)
}

// MustFormat is like Format but panics on an invalid option.
func MustFormat(v any, opts ...Option) string {
	s, err := Format(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FormatContext is Format with a context for the format hooks.
func FormatContext(ctx context.Context, v any, opts ...Option) (string, error) {
	o := options{width: DefaultWidth, indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	if err := errors.ValidateIndent(o.indent); err != nil {
		return "", err
	}
	if o.colors == nil && o.style != "" {
		h, err := highlight.For(o.style)
		if err != nil {
			return "", err
		}
		o.colors = h
	}

	hooks := observability.Format()
	width := o.width
	if o.unbounded {
		width = 0
	}
	hooks.OnFormatStart(ctx, width)
	start := time.Now()

	c := newClassifier()
	text := render(c, reflect.ValueOf(v), o)

	hooks.OnFormatComplete(ctx, c.nodes, time.Since(start), nil)
	return text, nil
}

// render lays out v after the prefix.
func render(c *classifier, v reflect.Value, o options) string {
	offset := DisplayWidth(lastLine(o.prefix))
	ctx := Unbounded(o.indent)
	if !o.unbounded {
		ctx = NewContext(o.indent, offset, o.width)
	}
	ctx = ctx.WithColors(o.colors)

	node := c.classify(v)
	text := node.Render(true, ctx)

	if _, isLeaf := node.(*leaf); o.prefix == "" || !isLeaf || text == "" {
		return o.prefix + text
	}
	remaining, bounded := ctx.Remaining()
	if bounded && widestLine(text) > remaining {
		text = "\n" + text
		if remaining >= 1 {
			text = overflowMarker + text
		}
	} else {
		text = indentTail(text, strings.Repeat(" ", offset))
	}
	return o.prefix + text
}
