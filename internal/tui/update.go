// ABOUTME: Update loop for the transport TUI
// ABOUTME: Translates key presses into player transport calls
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MojaveHao/blophy-audio-go/pkg/player"
)

const seekStep = 5.0 // seconds

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		m.player.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.PlayPause):
		if m.player.IsPlaying() {
			m.player.Pause()
		} else {
			m.player.Play()
		}

	case key.Matches(msg, m.keyMap.Stop):
		m.player.Stop()

	case key.Matches(msg, m.keyMap.Restart):
		m.player.RestartTime()

	case key.Matches(msg, m.keyMap.SeekForward):
		m.player.OffsetTime(seekStep)

	case key.Matches(msg, m.keyMap.SeekBackward):
		m.player.OffsetTime(-seekStep)

	case key.Matches(msg, m.keyMap.VolumeUp):
		m.player.SetVolume(m.player.Volume() + 0.05)

	case key.Matches(msg, m.keyMap.VolumeDown):
		m.player.SetVolume(m.player.Volume() - 0.05)

	case key.Matches(msg, m.keyMap.ToggleLoop):
		m.player.SetLoop(!m.player.Loop())

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// stateLabel picks the style for a transport state.
func (m Model) stateLabel(s player.State) string {
	switch s {
	case player.StatePlaying:
		return m.styles.StatusPlaying.Render("▶ playing")
	case player.StatePaused:
		return m.styles.StatusPaused.Render("⏸ paused")
	case player.StateStopped:
		return m.styles.StatusStopped.Render("■ stopped")
	default:
		return m.styles.TextMuted.Render("· idle")
	}
}
