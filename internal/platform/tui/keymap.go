package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-flight/internal/core"
)

// KeyMap holds the key bindings for the game. It also implements help.KeyMap
// so the bindings can be shown in the footer.
type KeyMap struct {
	Flap    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys("up", " ", "space", "w"),
			key.WithHelp("↑/space", "flap"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Unbound keys map to core.ActionNone.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.Flap):
		return core.ActionFlap
	}
	return core.ActionNone
}

// MapKeyToFrame records the action for a key message in an input frame.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Flap, km.Confirm, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
