// ABOUTME: Lipgloss styles for the transport TUI
// ABOUTME: Colors and text styles shared by the view
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7571F9")
	colorMuted   = lipgloss.Color("#606060")
	colorPlaying = lipgloss.Color("#04B575")
	colorPaused  = lipgloss.Color("#FFA500")
	colorStopped = lipgloss.Color("#FF5555")
)

// Styles contains the styles used by the view.
type Styles struct {
	Title         lipgloss.Style
	TextMuted     lipgloss.Style
	TextHighlight lipgloss.Style

	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusStopped lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ProgressTime   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		TextMuted:     lipgloss.NewStyle().Foreground(colorMuted),
		TextHighlight: lipgloss.NewStyle().Foreground(colorPrimary),

		StatusPlaying: lipgloss.NewStyle().Foreground(colorPlaying),
		StatusPaused:  lipgloss.NewStyle().Foreground(colorPaused),
		StatusStopped: lipgloss.NewStyle().Foreground(colorStopped),

		ProgressFilled: lipgloss.NewStyle().Foreground(colorPrimary),
		ProgressEmpty:  lipgloss.NewStyle().Foreground(colorMuted),
		ProgressTime:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}
