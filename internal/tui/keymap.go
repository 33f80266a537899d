// ABOUTME: Key bindings for the transport TUI
// ABOUTME: Maps keys to playback, seek, volume, and loop controls
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the player TUI.
type KeyMap struct {
	PlayPause    key.Binding
	Stop         key.Binding
	Restart      key.Binding
	SeekForward  key.Binding
	SeekBackward key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	ToggleLoop   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "seek +5s"),
		),
		SeekBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "seek -5s"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		ToggleLoop: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle loop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Stop, k.SeekBackward, k.SeekForward, k.ToggleLoop, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Stop, k.Restart},
		{k.SeekBackward, k.SeekForward, k.ToggleLoop},
		{k.VolumeUp, k.VolumeDown, k.Help, k.Quit},
	}
}
