package pretty

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal columns s occupies. Escape
// sequences are stripped first, control and format characters count as
// zero, and East Asian wide characters count as two.
func DisplayWidth(s string) int {
	width := 0
	for _, r := range ansi.Strip(s) {
		if unicode.Is(unicode.C, r) {
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

// hasEscapes reports whether s already contains terminal escape sequences.
func hasEscapes(s string) bool {
	return ansi.Strip(s) != s
}

// lastLine returns the text after the final newline in s.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// widestLine returns the display width of the widest line in s.
func widestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, DisplayWidth(line))
	}
	return widest
}

// indentTail prefixes every line of s except the first with pad.
func indentTail(s, pad string) string {
	if pad == "" || !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}

// indentBlock prefixes every line of s that is not blank with pad.
func indentBlock(s, pad string) string {
	if pad == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
