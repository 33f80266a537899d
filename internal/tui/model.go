// ABOUTME: Bubbletea model for the transport TUI
// ABOUTME: Holds the player handle and display state
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MojaveHao/blophy-audio-go/pkg/player"
)

// TickMsg drives the progress display while audio plays.
type TickMsg time.Time

// Model is the Bubbletea model wrapping a single player.
type Model struct {
	player   *player.Player
	clipPath string

	width    int
	keyMap   KeyMap
	help     help.Model
	showHelp bool
	quitting bool

	styles Styles
}

// New creates a model controlling the given player.
func New(p *player.Player, clipPath string) Model {
	return Model{
		player:   p,
		clipPath: clipPath,
		keyMap:   DefaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
	}
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
