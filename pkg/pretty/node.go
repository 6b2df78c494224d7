package pretty

import "strings"

// Node is one element of a formatted value tree. Nodes are built once by
// the classifier and never modified afterwards.
type Node interface {
	// Len returns the width of the node rendered on one line.
	Len() Length

	// Render returns the text of the node. When highlight is set the node
	// colors itself if it can, otherwise it asks its children to.
	Render(highlight bool, ctx Context) string

	// colorizable reports whether the node and everything below it is free
	// of pre-existing escape sequences.
	colorizable() bool
}

// =============================================================================
// Leaf
// =============================================================================

// leaf is a value rendered from its own text representation.
type leaf struct {
	text   string
	length Length
	plain  bool
}

func newLeaf(text string) *leaf {
	l := &leaf{text: text, plain: !hasEscapes(text)}
	if !strings.Contains(text, "\n") {
		l.length = Known(DisplayWidth(text))
	}
	return l
}

// ellipsis stands in for values that were not expanded.
func ellipsis() *leaf {
	return newLeaf("...")
}

func (l *leaf) Len() Length { return l.length }

func (l *leaf) Render(highlight bool, ctx Context) string {
	return ctx.colorize(highlight && l.plain, l.text)
}

func (l *leaf) colorizable() bool { return l.plain }

// multiline reports whether n is a leaf spanning several lines. Values of
// this kind need their continuation lines aligned by the caller.
func multiline(n Node) bool {
	l, ok := n.(*leaf)
	if !ok {
		return false
	}
	_, known := l.length.Int()
	return !known
}

// =============================================================================
// Bracket Pairs
// =============================================================================

type brackets struct {
	open, close string
}

var (
	square = brackets{"[", "]"}
	curly  = brackets{"{", "}"}
	round  = brackets{"(", ")"}
)

// labeled wraps b in a type label: Counter({ ... }).
func (b brackets) labeled(label string) brackets {
	if label == "" {
		return b
	}
	return brackets{open: label + "(" + b.open, close: b.close + ")"}
}

// named returns the brackets of a constructor-style call: Point( ... ).
func named(name string) brackets {
	return brackets{open: name + "(", close: ")"}
}

func (b brackets) width() int {
	return DisplayWidth(b.open) + DisplayWidth(b.close)
}
