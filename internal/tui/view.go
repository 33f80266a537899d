// ABOUTME: View rendering for the transport TUI
// ABOUTME: Draws clip info, progress bar, volume, and help footer
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minBarWidth = 10

// View renders the entire UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	title := m.styles.Title.Render(m.clipPath)
	state := m.stateLabel(m.player.State())

	pos := m.player.CurrentTime()
	length := m.player.MusicLength()

	loop := "loop off"
	if m.player.Loop() {
		loop = m.styles.TextHighlight.Render("loop on")
	}
	status := fmt.Sprintf("%s  ·  vol %3.0f%%  ·  %s",
		state, m.player.Volume()*100, loop)

	progress := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.styles.ProgressTime.Render(formatTime(pos)),
		" ",
		m.renderBar(pos, length),
		" ",
		m.styles.ProgressTime.Render(formatTime(length)),
	)

	footer := m.help.View(m.keyMap)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		title,
		status,
		"",
		progress,
		"",
		footer,
	) + "\n"
}

// renderBar draws a fixed-width progress bar.
func (m Model) renderBar(pos, length float64) string {
	width := m.width - 20
	if width < minBarWidth {
		width = minBarWidth
	}

	filled := 0
	if length > 0 {
		filled = int(pos / length * float64(width))
		if filled > width {
			filled = width
		}
	}

	return m.styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
