// Package highlight colors Go source fragments for terminal output.
//
// Highlighting is backed by chroma: fragments are lexed as Go and written
// with the 256-color terminal formatter. Styles are looked up by chroma
// style name and memoized, so repeated calls with the same style share one
// Highlighter.
//
// Bold, italic and underline attributes and token backgrounds are stripped
// from every style. Debug output is read inline with other log lines, and
// only foreground colors survive being mixed into them.
package highlight

import (
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	memoize "github.com/kofalt/go-memoize"

	"github.com/George-Ogden/dbg/pkg/errors"
)

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "monokai"

// Highlighter colors text in a single style. It is safe for concurrent use.
type Highlighter struct {
	name      string
	style     *chroma.Style
	lexer     chroma.Lexer
	formatter chroma.Formatter
}

var highlighters = memoize.NewMemoizer(0, time.Hour)

// Styles returns the names of all available styles, sorted.
func Styles() []string {
	return styles.Names()
}

// ValidateStyle returns an INVALID_STYLE error if name is not a known style.
// The error lists every valid style.
func ValidateStyle(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return errors.NewChoiceError(errors.ErrCodeInvalidStyle, "style", name, Styles())
	}
	return nil
}

// For returns the Highlighter for the named style.
func For(name string) (*Highlighter, error) {
	if err := ValidateStyle(name); err != nil {
		return nil, err
	}
	v, err, _ := highlighters.Memoize(name, func() (interface{}, error) {
		return newHighlighter(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Highlighter), nil
}

func newHighlighter(name string) (*Highlighter, error) {
	style, err := plain(styles.Get(name))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build style %q", name)
	}
	lexer := lexers.Get("go")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return &Highlighter{
		name:      name,
		style:     style,
		lexer:     chroma.Coalesce(lexer),
		formatter: formatter,
	}, nil
}

// plain copies style with font attributes and backgrounds removed.
func plain(style *chroma.Style) (*chroma.Style, error) {
	b := chroma.NewStyleBuilder(style.Name)
	for _, tt := range style.Types() {
		entry := style.Get(tt)
		entry.Bold = chroma.No
		entry.Italic = chroma.No
		entry.Underline = chroma.No
		entry.Background = 0
		entry.Border = 0
		b.AddEntry(tt, entry)
	}
	return b.Build()
}

// Name returns the style name.
func (h *Highlighter) Name() string {
	return h.name
}

// Code colors a Go expression or statement. Text that fails to lex is
// returned unchanged. No trailing newline is added.
func (h *Highlighter) Code(code string) string {
	it, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	tokens := it.Tokens()
	if !strings.HasSuffix(code, "\n") {
		tokens = trimNewline(tokens)
	}
	return h.format(tokens, code)
}

// Text colors arbitrary text in the style's comment color. It is used for
// call-site positions and placeholders that are not Go code.
func (h *Highlighter) Text(text string) string {
	return h.format([]chroma.Token{{Type: chroma.CommentSingle, Value: text}}, text)
}

func (h *Highlighter) format(tokens []chroma.Token, fallback string) string {
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, chroma.Literator(tokens...)); err != nil {
		return fallback
	}
	return b.String()
}

// trimNewline drops the newline the Go lexer appends to its input.
func trimNewline(tokens []chroma.Token) []chroma.Token {
	for len(tokens) > 0 {
		last := &tokens[len(tokens)-1]
		trimmed := strings.TrimSuffix(last.Value, "\n")
		if trimmed != "" {
			last.Value = trimmed
			return tokens
		}
		tokens = tokens[:len(tokens)-1]
		if trimmed != last.Value {
			return tokens
		}
	}
	return tokens
}
