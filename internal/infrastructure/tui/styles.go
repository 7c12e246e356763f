package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true).
			Padding(0, 1)

	categoryTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// fadeStyle maps a history item opacity onto the terminal grayscale ramp
// (ANSI 232-255). Opacities follow the feed's fade formula and may exceed
// 1.0; the mapping saturates at full white without altering the underlying
// value.
func fadeStyle(opacity float64) lipgloss.Style {
	level := math.Round(opacity * 23)
	if level > 23 {
		level = 23
	}
	if level < 0 {
		level = 0
	}
	color := fmt.Sprintf("%d", 232+int(level))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Padding(0, 1)
}
