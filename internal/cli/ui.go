package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeading = lipgloss.Color("36")
	colorOK      = lipgloss.Color("35")
	colorWarn    = lipgloss.Color("220")
	colorValue   = lipgloss.Color("255")
	colorLabel   = lipgloss.Color("245")
	colorMuted   = lipgloss.Color("240")
)

// palette holds the status styles for one writer. Styles are rendered
// against the writer's own color profile, so piped output stays plain.
type palette struct {
	title, muted, value, warn, key lipgloss.Style
	iconOK, iconWarn, iconInfo     lipgloss.Style
}

func paletteFor(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:    r.NewStyle().Bold(true).Foreground(colorHeading),
		muted:    r.NewStyle().Foreground(colorMuted),
		value:    r.NewStyle().Foreground(colorValue),
		warn:     r.NewStyle().Foreground(colorWarn),
		key:      r.NewStyle().Foreground(colorLabel).Width(10),
		iconOK:   r.NewStyle().Foreground(colorOK),
		iconWarn: r.NewStyle().Foreground(colorWarn),
		iconInfo: r.NewStyle().Foreground(colorLabel),
	}
}

func printSuccess(w io.Writer, format string, args ...any) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.iconOK.Render("✓"), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.iconWarn.Render("!"), p.warn.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.iconInfo.Render("›"), fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+paletteFor(w).muted.Render(fmt.Sprintf(format, args...)))
}

// printTitle prints a heading, such as a style name above its sample.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, paletteFor(w).title.Render(title))
}

// printKeyValue prints value after a fixed-width label.
func printKeyValue(w io.Writer, key, value string) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.key.Render(key), p.value.Render(value))
}
