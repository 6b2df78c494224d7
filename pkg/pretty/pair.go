package pretty

import "strings"

// pair renders a mapping entry as "key: value".
type pair struct {
	key, value Node
	length     Length
}

func newPair(key, value Node) *pair {
	return &pair{
		key:    key,
		value:  value,
		length: key.Len().Plus(value.Len()).Add(2),
	}
}

func (p *pair) Len() Length { return p.length }

func (p *pair) colorizable() bool {
	return p.key.colorizable() && p.value.colorizable()
}

func (p *pair) Render(highlight bool, ctx Context) string {
	plain := p.colorizable()
	key := p.key.Render(!plain, ctx.UseOnly(1)) + ":"
	offset := DisplayWidth(lastLine(key)) + 1
	value := " " + p.value.Render(!plain, ctx.UseExtra(offset))
	if multiline(p.value) {
		value = indentTail(value, strings.Repeat(" ", offset))
	}
	return ctx.colorize(highlight && plain, key+value)
}

// attr renders a named field as "Name=value".
type attr struct {
	name   string
	value  Node
	length Length
}

func newAttr(name string, value Node) *attr {
	return &attr{
		name:   name,
		value:  value,
		length: value.Len().Add(1 + DisplayWidth(name)),
	}
}

func (a *attr) Len() Length { return a.length }

func (a *attr) colorizable() bool { return a.value.colorizable() }

func (a *attr) Render(highlight bool, ctx Context) string {
	return prefixed(a.name+"=", a.value, highlight, ctx)
}

// reference renders a pointer as "&" followed by its target.
type reference struct {
	target Node
	length Length
}

func newReference(target Node) *reference {
	return &reference{target: target, length: target.Len().Add(1)}
}

func (r *reference) Len() Length { return r.length }

func (r *reference) colorizable() bool { return r.target.colorizable() }

func (r *reference) Render(highlight bool, ctx Context) string {
	return prefixed("&", r.target, highlight, ctx)
}

// prefixed renders head immediately followed by value, charging head's
// width against the value's budget.
func prefixed(head string, value Node, highlight bool, ctx Context) string {
	plain := value.colorizable()
	width := DisplayWidth(head)
	text := value.Render(!plain, ctx.UseExtra(width))
	if multiline(value) {
		text = indentTail(text, strings.Repeat(" ", width))
	}
	return ctx.colorize(highlight && plain, head+text)
}
