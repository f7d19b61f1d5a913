package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/rockpile/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the current message and fund file on the right. A dirty fund shows an
// unsaved marker.
func RenderStatusBar(width int, hints, message, file string, dirty bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	msgStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface)

	warnStyle := lipgloss.NewStyle().
		Foreground(t.Warning).
		Background(t.Surface).
		Bold(true)

	left := base.Render(" " + hints)

	right := ""
	if message != "" {
		right += msgStyle.Render(message) + base.Render("  ")
	}
	if dirty {
		right += warnStyle.Render("● unsaved") + base.Render("  ")
	}
	right += base.Render(file + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return left + base.Render(strings.Repeat(" ", padding)) + right
}
