package pretty

import "strings"

// sequence renders an ordered list of children between brackets, on one
// line when it fits and one child per line otherwise.
type sequence struct {
	children      []Node
	elided        bool
	brackets      brackets
	trailingComma bool
	length        Length
	plain         bool
}

// newSequence builds a sequence node. An elided sequence stands for a value
// already being expanded further up; it renders as open + "..." + close.
func newSequence(children []Node, elided bool, b brackets, trailingComma bool) *sequence {
	s := &sequence{
		children:      children,
		elided:        elided,
		brackets:      b,
		trailingComma: trailingComma,
		plain:         true,
	}
	if elided {
		s.children = nil
		s.length = Known(3 + b.width())
		return s
	}

	length := Known(b.width())
	for _, child := range children {
		length = length.Plus(child.Len())
		s.plain = s.plain && child.colorizable()
	}
	if n := len(children); n > 0 {
		length = length.Add(2 * (n - 1))
	}
	if trailingComma {
		length = length.Add(1)
	}
	s.length = length
	return s
}

// namedObject renders children as constructor arguments: Name(a, b).
func namedObject(name string, children []Node, elided bool) *sequence {
	return newSequence(children, elided, named(name), false)
}

func (s *sequence) Len() Length { return s.length }

func (s *sequence) colorizable() bool { return s.plain }

func (s *sequence) Render(highlight bool, ctx Context) string {
	if s.elided {
		return s.brackets.open + "..." + s.brackets.close
	}
	var text string
	if len(s.children) == 0 || ctx.fits(s.length) {
		text = s.flat(ctx)
	} else {
		text = s.nested(ctx)
	}
	return ctx.colorize(highlight && s.plain, text)
}

func (s *sequence) flat(ctx Context) string {
	ctx = ctx.Flatten()
	parts := make([]string, len(s.children))
	for i, child := range s.children {
		parts[i] = child.Render(!s.plain, ctx)
	}
	var b strings.Builder
	b.WriteString(s.brackets.open)
	b.WriteString(strings.Join(parts, ", "))
	if s.trailingComma {
		b.WriteString(",")
	}
	b.WriteString(s.brackets.close)
	return b.String()
}

func (s *sequence) nested(ctx Context) string {
	ctx = ctx.Indent()
	lines := make([]string, len(s.children))
	for i, child := range s.children {
		lines[i] = child.Render(!s.plain, ctx.UseOnly(1)) + ","
	}
	return s.brackets.open + "\n" +
		indentBlock(strings.Join(lines, "\n"), ctx.indentString()) +
		"\n" + s.brackets.close
}
