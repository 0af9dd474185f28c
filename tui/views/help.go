package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/slant/tui/styles"
)

// HelpView renders a modal overlay showing all keyboard shortcuts.
type HelpView struct {
	theme   styles.Theme
	sty     *styles.Styles
	width   int
	height  int
	visible bool
}

// NewHelpView creates a new HelpView with the given theme.
func NewHelpView(theme styles.Theme) HelpView {
	return HelpView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Toggle flips the help overlay visibility.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

// IsVisible returns whether the help overlay is currently shown.
func (v HelpView) IsVisible() bool {
	return v.visible
}

// SetSize updates the available dimensions for the overlay.
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the help overlay as a centered modal box.
func (v HelpView) View() string {
	modalWidth := 44
	if modalWidth > v.width-4 && v.width > 8 {
		modalWidth = v.width - 4
	}
	innerWidth := modalWidth - 6 // border + padding

	sectionStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0E).
		Bold(true)
	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base05)
	dimStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04)

	bindingLine := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s",
			keyStyle.Render(padRight(keys, 12)),
			descStyle.Render(desc),
		)
	}

	var lines []string
	lines = append(lines, sectionStyle.Render("Dashboard"))
	lines = append(lines, bindingLine("j / Down", "Scroll down"))
	lines = append(lines, bindingLine("k / Up", "Scroll up"))
	lines = append(lines, bindingLine("r", "Force refresh"))
	lines = append(lines, bindingLine("?", "Toggle this help"))
	lines = append(lines, bindingLine("q, Ctrl+C", "Quit"))
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render("[?] close"))

	content := strings.Join(lines, "\n")
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(v.theme.Base0D).
		Padding(1, 2).
		Width(innerWidth).
		Render(content)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
