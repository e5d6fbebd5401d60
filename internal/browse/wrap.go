package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var columnPalette = []lipgloss.Color{
	"#F0F0F0",
	"#C89A3A",
	"#5FAFD7",
	"#87AF5F",
	"#D787AF",
	"#AF87FF",
}

type styledRune struct {
	s     string
	width int
}

// buildStyledRunes colours each plaintext character by the key position that
// decrypted it, so per-column mistakes stand out.
func buildStyledRunes(plaintext string, keyLen int, useColor bool) []styledRune {
	runes := []rune(plaintext)
	out := make([]styledRune, 0, len(runes))
	for i, r := range runes {
		s := string(r)
		if useColor && keyLen > 1 {
			color := columnPalette[(i%keyLen)%len(columnPalette)]
			s = lipgloss.NewStyle().Foreground(color).Render(s)
		}
		out = append(out, styledRune{s: s, width: runewidth.RuneWidth(r)})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks the runes into lines of at most width cells.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	lineWidth := 0
	for _, item := range runes {
		if lineWidth+item.width > width && lineWidth > 0 {
			out.WriteRune('\n')
			lineWidth = 0
		}
		out.WriteString(item.s)
		lineWidth += item.width
	}
	return out.String()
}
