package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey('j'), core.ActionDown},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter places", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"space places", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPlace},
		{"history back", runeKey('['), core.ActionHistoryBack},
		{"history forward", runeKey(']'), core.ActionHistoryForward},
		{"resume", runeKey('c'), core.ActionResume},
		{"reset", runeKey('r'), core.ActionReset},
		{"bigger", runeKey('+'), core.ActionSizeUp},
		{"smaller", runeKey('-'), core.ActionSizeDown},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestGameKeyMapHelpListsEveryBinding(t *testing.T) {
	keys := DefaultGameKeyMap()
	count := 0
	for _, col := range keys.FullHelp() {
		count += len(col)
	}
	if count != 14 {
		t.Errorf("FullHelp() lists %d bindings, expected 14", count)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
}
