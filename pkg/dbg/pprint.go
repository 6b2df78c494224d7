package dbg

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/George-Ogden/dbg/pkg/config"
	"github.com/George-Ogden/dbg/pkg/highlight"
	"github.com/George-Ogden/dbg/pkg/pretty"
	"github.com/George-Ogden/dbg/pkg/terminal"
)

// Option overrides a configured setting for one Pprint or Pformat call.
type Option func(*options)

type options struct {
	width     *int
	unbounded bool
	indent    *int
	style     *string
	color     *bool
	prefix    string
}

// WithWidth sets the line width instead of measuring the output.
func WithWidth(n int) Option {
	return func(o *options) { o.width, o.unbounded = &n, false }
}

// WithUnboundedWidth removes the line width limit.
func WithUnboundedWidth() Option {
	return func(o *options) { o.unbounded = true }
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = &n }
}

// WithStyle sets the highlight style. An empty name disables highlighting.
func WithStyle(name string) Option {
	return func(o *options) { o.style = &name }
}

// WithColor forces highlighting on or off regardless of the output.
func WithColor(on bool) Option {
	return func(o *options) { o.color = &on }
}

// WithPrefix prints s before the value. The prefix is never highlighted.
func WithPrefix(s string) Option {
	return func(o *options) { o.prefix = s }
}

// Pprint writes the pretty-printed value of v to w, followed by a newline.
// Settings not given as options come from the configuration; the width
// defaults to the width of the terminal behind w.
func Pprint(w io.Writer, v any, opts ...Option) error {
	p := newPrinter(w, Config(), currentLogger(), opts...)
	text, err := p.format(v, p.prefix)
	if err != nil {
		return err
	}

	mu := lockFor(w)
	mu.Lock()
	defer mu.Unlock()
	return p.writeLine(text)
}

// Pformat returns the pretty-printed value of v. It behaves like Pprint to
// an output that is not a terminal: the width defaults to 80 and colors are
// only used when forced with WithColor.
func Pformat(v any, opts ...Option) (string, error) {
	p := newPrinter(nil, Config(), currentLogger(), opts...)
	return p.format(v, p.prefix)
}

// printer holds the settings resolved for one output.
type printer struct {
	w         io.Writer
	logger    *log.Logger
	width     int
	unbounded bool
	indent    int
	style     string
	prefix    string
	colors    *highlight.Highlighter
}

func newPrinter(w io.Writer, cfg config.Config, l *log.Logger, opts ...Option) *printer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	warnColorConflict(l, o)

	p := &printer{
		w:         w,
		logger:    l,
		unbounded: o.unbounded,
		indent:    cfg.Indent,
		style:     cfg.Style,
		prefix:    o.prefix,
	}
	if o.indent != nil {
		p.indent = *o.indent
	}
	if o.style != nil {
		p.style = *o.style
	}

	color := cfg.Color
	if o.color != nil {
		color = config.ColorNever
		if *o.color {
			color = config.ColorAlways
		}
	}
	if !colorEnabled(color, w) {
		p.style = ""
	}
	if p.style != "" {
		if h, err := highlight.For(p.style); err == nil {
			p.colors = h
		}
	}

	switch {
	case o.width != nil:
		p.width = *o.width
	case cfg.Width > 0:
		p.width = cfg.Width
	case w != nil:
		p.width = terminal.Width(w)
	default:
		p.width = terminal.DefaultWidth
	}
	return p
}

func colorEnabled(c config.Color, w io.Writer) bool {
	switch c {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return w != nil && terminal.SupportsColor(w)
}

// warnColorConflict logs options that ask for color and no color at once.
func warnColorConflict(l *log.Logger, o options) {
	if o.color == nil || o.style == nil {
		return
	}
	if *o.color == (*o.style == "") {
		l.Warnf("`color` was set to %t, but `style` was set to %q. The output will not be colored.", *o.color, *o.style)
	}
}

func (p *printer) format(v any, prefix string) (string, error) {
	opts := []pretty.Option{
		pretty.WithIndent(p.indent),
		pretty.WithStyle(p.style),
		pretty.WithPrefix(prefix),
		pretty.WithWidth(p.width),
	}
	if p.unbounded {
		opts = append(opts, pretty.WithUnboundedWidth())
	}
	return pretty.Format(v, opts...)
}

func (p *printer) writeLine(text string) error {
	if _, err := fmt.Fprintln(p.w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// text colors plain text such as positions in the style's comment color.
func (p *printer) text(s string) string {
	if p.colors == nil {
		return s
	}
	return p.colors.Text(s)
}

// code highlights Go source.
func (p *printer) code(s string) string {
	if p.colors == nil {
		return s
	}
	return p.colors.Code(s)
}
