package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/slant/tui/styles"
)

// RenderStatusBar renders the footer: last poll time, host health, and
// key bindings.
func RenderStatusBar(theme styles.Theme, lastPoll time.Time, okCount, totalCount, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")

	lastStr := "never"
	if !lastPoll.IsZero() {
		lastStr = lastPoll.Format("15:04:05")
	}
	lastSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("last: %s", lastStr))

	healthColor := theme.Base0B
	if okCount < totalCount {
		healthColor = theme.Base0A
	}
	healthSeg := lipgloss.NewStyle().Foreground(healthColor).Background(bg).
		Render(fmt.Sprintf("%d/%d OK", okCount, totalCount))

	topContent := bgStyle.Render(" ") + lastSeg + sep + healthSeg
	if w := lipgloss.Width(topContent); w < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-w))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ") +
		keyStyle.Render("j/k") + descStyle.Render(":scroll") + spacer +
		keyStyle.Render("r") + descStyle.Render(":refresh") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	if w := lipgloss.Width(keys); w < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
