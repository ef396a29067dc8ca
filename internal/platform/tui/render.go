package tui

import (
	"strings"

	"github.com/vovakirdan/snake-master/internal/core"
)

// span is a run of cells on one row that share a color role.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits screen row y into same-colored spans.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var text strings.Builder
	color := s.GetCell(0, y).Color

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			spans = append(spans, span{color: color, text: text.String()})
			text.Reset()
			color = cell.Color
		}
		text.WriteRune(cell.Rune)
	}
	if text.Len() > 0 {
		spans = append(spans, span{color: color, text: text.String()})
	}
	return spans
}

// RenderScreen styles the screen with the theme, one style per span so the
// output carries as few escape sequences as possible.
func RenderScreen(s *core.Screen, theme Theme) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var row strings.Builder
		for _, sp := range rowSpans(s, y) {
			row.WriteString(theme.Style(sp.color).Render(sp.text))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}
