package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-flight/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameAccumulates(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
		t.Error("up is not a quit key")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame) {
		t.Error("enter is not a quit key")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame) {
		t.Error("esc should be reported as a quit key")
	}

	for _, a := range []core.Action{core.ActionFlap, core.ActionConfirm, core.ActionQuit} {
		if !frame.Has(a) {
			t.Errorf("frame should have %v", a)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, expected 3", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 1 {
		t.Errorf("FullHelp() has %d groups, expected 1", len(km.FullHelp()))
	}
}
