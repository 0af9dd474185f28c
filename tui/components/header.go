package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/slant/tui/styles"
)

// RenderHeader renders the optional top header bar: app name, host count,
// and the wall clock.
func RenderHeader(theme styles.Theme, hostCount, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("slant")

	hosts := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(fmt.Sprintf("%d hosts", hostCount))

	clock := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render(time.Now().Format("15:04:05"))

	content := fmt.Sprintf(" %s  |  %s  |  %s ", left, hosts, clock)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
