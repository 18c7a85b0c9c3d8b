// Package cli renders forage output on a plain terminal: styled messages,
// record tables, and the line-based duplicate review.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	mossColor  = lipgloss.Color("#6BBF59")
	tealColor  = lipgloss.Color("#4ECDC4")
	amberColor = lipgloss.Color("#F4B942")
	berryColor = lipgloss.Color("#D64550")
	skyColor   = lipgloss.Color("#95E1D3")
	barkColor  = lipgloss.Color("#6B5B4B")
	stoneColor = lipgloss.Color("#3A3A3A")
)

var (
	// SuccessStyle formats good news: writes that landed, edible plants.
	SuccessStyle = lipgloss.NewStyle().Foreground(tealColor)

	// WarningStyle formats things worth a second look.
	WarningStyle = lipgloss.NewStyle().Foreground(amberColor)

	// SubtleStyle formats secondary details.
	SubtleStyle = lipgloss.NewStyle().Foreground(barkColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// TableHeaderStyle underlines table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(stoneColor)

	// TableCellStyle pads table cells.
	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(mossColor).MarginBottom(1)
	errorStyle  = lipgloss.NewStyle().Foreground(berryColor)
	infoStyle   = lipgloss.NewStyle().Foreground(skyColor)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(mossColor)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(stoneColor).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	LeafIcon    = "🌿"
	BasketIcon  = "🧺"
	FolderIcon  = "🗄️"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return errorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return infoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle prefixes title with a leaf.
func FormatTitle(title string) string {
	return titleStyle.Render(LeafIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return promptStyle.Render(prompt + " → ")
}

// RenderBox draws content in a rounded box under a title line.
func RenderBox(title, content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.UnsetMargins().Render(title),
		content,
	))
}
