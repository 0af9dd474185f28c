package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	// Layout
	AppContainer lipgloss.Style

	// Header / Footer
	Header     lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style

	// Box sections
	BoxTitle   lipgloss.Style
	ColumnHead lipgloss.Style
	Row        lipgloss.Style
	RowSel     lipgloss.Style
	RowDim     lipgloss.Style

	// Link / host status
	StatusUp   lipgloss.Style
	StatusDown lipgloss.Style
	StatusWarn lipgloss.Style

	// Gauge thresholds
	GaugeLow  lipgloss.Style // < 50%
	GaugeMid  lipgloss.Style // 50-80%
	GaugeHigh lipgloss.Style // > 80%

	Sparkline lipgloss.Style
	Errlog    lipgloss.Style
}

// NewStyles creates a Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		AppContainer: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base00),

		Header: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base01).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Base04).
			Background(theme.Base01).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		FooterDesc: lipgloss.NewStyle().
			Foreground(theme.Base04),

		BoxTitle: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),
		ColumnHead: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		Row: lipgloss.NewStyle().
			Foreground(theme.Base05),
		RowSel: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base02),
		RowDim: lipgloss.NewStyle().
			Foreground(theme.Base03),

		StatusUp: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		StatusDown: lipgloss.NewStyle().
			Foreground(theme.Base08),
		StatusWarn: lipgloss.NewStyle().
			Foreground(theme.Base0A),

		GaugeLow: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		GaugeMid: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		GaugeHigh: lipgloss.NewStyle().
			Foreground(theme.Base08),

		Sparkline: lipgloss.NewStyle().
			Foreground(theme.Base0C),
		Errlog: lipgloss.NewStyle().
			Foreground(theme.Base08),
	}
}
