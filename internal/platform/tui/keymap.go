package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Place       key.Binding
	HistoryBack key.Binding
	HistoryFwd  key.Binding
	Resume      key.Binding
	Reset       key.Binding
	SizeUp      key.Binding
	SizeDown    key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the one-line footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.HistoryBack, k.HistoryFwd, k.Reset, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Place},
		{k.HistoryBack, k.HistoryFwd, k.Resume},
		{k.Reset, k.SizeUp, k.SizeDown},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		HistoryBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev move"),
		),
		HistoryFwd: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next move"),
		),
		Resume: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue here"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		SizeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger board"),
		),
		SizeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.HistoryBack):
		return core.ActionHistoryBack
	case key.Matches(msg, k.HistoryFwd):
		return core.ActionHistoryForward
	case key.Matches(msg, k.Resume):
		return core.ActionResume
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.SizeUp):
		return core.ActionSizeUp
	case key.Matches(msg, k.SizeDown):
		return core.ActionSizeDown
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// SetupKeyMap defines the key bindings of the mode and size selector.
type SetupKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the selector footer bindings.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns the selector bindings in one column.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSetupKeyMap returns the default selector bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
