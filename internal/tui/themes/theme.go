// Package themes defines the color schemes for the review interface.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusPending lipgloss.Style
	StatusSkip    lipgloss.Style
	StatusReplace lipgloss.Style
	StatusRename  lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
}

func build(primary, muted, border, success, warning, errColor, fg, selectedFg lipgloss.Color) Theme {
	return Theme{
		Primary: primary,
		Muted:   muted,
		Border:  border,
		Success: success,
		Warning: warning,
		Error:   errColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(selectedFg).
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		StatusPending: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		StatusSkip: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusReplace: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		StatusRename: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#6BBF59"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#F5A623"),
	lipgloss.Color("#EF4444"),
	lipgloss.Color("#FAFAFA"),
	lipgloss.Color("#1A1A1A"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#A6E3A1"),
	lipgloss.Color("#6C7086"),
	lipgloss.Color("#45475A"),
	lipgloss.Color("#94E2D5"),
	lipgloss.Color("#F9E2AF"),
	lipgloss.Color("#F38BA8"),
	lipgloss.Color("#CDD6F4"),
	lipgloss.Color("#1E1E2E"),
)

// ByName returns the theme registered under name, or Default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
