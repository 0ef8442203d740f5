package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bigDigits maps clock characters to 5-row block art.
var bigDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders a HH:MM:SS string as block digits, centered
// within width.
func renderBigClock(timeStr string, width int) string {
	var rows [5]strings.Builder
	for _, char := range timeStr {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i].WriteString(art[i])
			rows[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	centerStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width)

	lines := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		lines = append(lines, centerStyle.Render(clockStyle.Render(rows[i].String())))
	}
	return strings.Join(lines, "\n")
}
