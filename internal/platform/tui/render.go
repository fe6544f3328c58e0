package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dice-baseball/internal/scorebug"
)

// colorStyles maps scorebug colors to lipgloss styles.
var colorStyles = map[scorebug.Color]lipgloss.Style{
	scorebug.ColorDefault:     lipgloss.NewStyle(),
	scorebug.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	scorebug.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	scorebug.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	scorebug.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	scorebug.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	scorebug.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *scorebug.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[scorebug.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
