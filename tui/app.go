// Package tui implements the terminal dashboard drawn from the monitor
// configuration's layout.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/engine"
	"github.com/tonhe/slant/tui/components"
	"github.com/tonhe/slant/tui/keys"
	"github.com/tonhe/slant/tui/styles"
	"github.com/tonhe/slant/tui/views"
)

// TickMsg triggers a periodic UI refresh to pick up new poll data.
type TickMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	theme     styles.Theme
	layout    *config.Layout
	config    *config.Config
	manager   *engine.Manager
	dashboard views.DashboardView
	help      views.HelpView
	width     int
	height    int
}

// NewAppModel creates the root model for a parsed configuration and a
// started engine manager.
func NewAppModel(cfg *config.Config, mgr *engine.Manager, themeName string) AppModel {
	theme := styles.DefaultTheme
	if t := styles.GetThemeByName(themeName); t != nil {
		theme = *t
	}
	layout := cfg.Layout
	if layout == nil {
		layout = config.DefaultLayout()
	}
	return AppModel{
		theme:     theme,
		layout:    layout,
		config:    cfg,
		manager:   mgr,
		dashboard: views.NewDashboardView(theme, layout),
		help:      views.NewHelpView(theme),
	}
}

// Init returns the initial command to start the tick loop.
func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// chromeHeight is how many lines the header and status bar occupy.
func (m AppModel) chromeHeight() int {
	h := 2 // status bar
	if m.layout.Header {
		h++
	}
	return h
}

// Update handles messages and dispatches to the dashboard.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.SetSize(msg.Width, msg.Height-m.chromeHeight())
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.dashboard.SetSnapshot(m.manager.Snapshot())
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Quit):
			m.manager.StopAll()
			return m, tea.Quit
		case key.Matches(msg, keys.DefaultKeyMap.Help):
			m.help.Toggle()
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Escape):
			if m.help.IsVisible() {
				m.help.Toggle()
			}
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Refresh):
			m.manager.RefreshAll()
			return m, nil
		}
		if m.help.IsVisible() {
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View composes the header (when the layout asks for one), the dashboard
// body, and the status bar.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.help.IsVisible() {
		return m.help.View()
	}

	snap := m.manager.Snapshot()
	m.dashboard.SetSnapshot(snap)

	okCount, totalCount := 0, 0
	for _, h := range snap.Hosts {
		totalCount++
		if h.PollError == nil && !h.LastSeen.IsZero() {
			okCount++
		}
	}

	var parts []string
	if m.layout.Header {
		parts = append(parts, components.RenderHeader(m.theme, len(snap.Hosts), m.width))
	}

	bodyHeight := m.height - m.chromeHeight()
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)
	parts = append(parts, bodyStyle.Render(m.dashboard.View()))

	parts = append(parts, components.RenderStatusBar(m.theme, snap.LastPoll, okCount, totalCount, m.width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
