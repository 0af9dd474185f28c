package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a Base16 color scheme.
type Theme struct {
	Name   string
	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection
	Base03 lipgloss.Color // Comments / dim
	Base04 lipgloss.Color // Light foreground
	Base05 lipgloss.Color // Foreground
	Base08 lipgloss.Color // Red
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Magenta
}

// Themes maps theme slugs to their color schemes.
var Themes = map[string]Theme{
	"solarized-dark": {
		Name:   "Solarized Dark",
		Base00: "#002b36", Base01: "#073642", Base02: "#586e75",
		Base03: "#657b83", Base04: "#839496", Base05: "#93a1a1",
		Base08: "#dc322f", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4",
	},
	"solarized-light": {
		Name:   "Solarized Light",
		Base00: "#fdf6e3", Base01: "#eee8d5", Base02: "#93a1a1",
		Base03: "#839496", Base04: "#657b83", Base05: "#586e75",
		Base08: "#dc322f", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4",
	},
	"dracula": {
		Name:   "Dracula",
		Base00: "#282a36", Base01: "#363447", Base02: "#44475a",
		Base03: "#6272a4", Base04: "#9ea8c7", Base05: "#f8f8f2",
		Base08: "#ff5555", Base0A: "#f1fa8c", Base0B: "#50fa7b",
		Base0C: "#8be9fd", Base0D: "#bd93f9", Base0E: "#ff79c6",
	},
	"gruvbox-dark": {
		Name:   "Gruvbox Dark",
		Base00: "#282828", Base01: "#3c3836", Base02: "#504945",
		Base03: "#665c54", Base04: "#bdae93", Base05: "#d5c4a1",
		Base08: "#fb4934", Base0A: "#fabd2f", Base0B: "#b8bb26",
		Base0C: "#8ec07c", Base0D: "#83a598", Base0E: "#d3869b",
	},
	"nord": {
		Name:   "Nord",
		Base00: "#2e3440", Base01: "#3b4252", Base02: "#434c5e",
		Base03: "#4c566a", Base04: "#d8dee9", Base05: "#e5e9f0",
		Base08: "#bf616a", Base0A: "#ebcb8b", Base0B: "#a3be8c",
		Base0C: "#88c0d0", Base0D: "#81a1c1", Base0E: "#b48ead",
	},
}

var (
	DefaultTheme Theme
	sortedSlugs  []string
)

func init() {
	sortedSlugs = make([]string, 0, len(Themes))
	for slug := range Themes {
		sortedSlugs = append(sortedSlugs, slug)
	}
	sort.Strings(sortedSlugs)
	DefaultTheme = Themes["solarized-dark"]
}

// GetThemeByName returns a theme by its slug, or nil if not found.
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// ListThemes returns sorted theme slugs.
func ListThemes() []string {
	return sortedSlugs
}
