package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

type setupStage int

const (
	stageMode setupStage = iota
	stageSize
)

// Selection holds the user's choices from the setup screens.
type Selection struct {
	Mode match.Mode
	Size int
}

// SetupModel lets users choose the player mode and then the board size.
type SetupModel struct {
	keys       SetupKeyMap
	help       help.Model
	stage      setupStage
	askMode    bool
	askSize    bool
	modes      []match.Mode
	modeCursor int
	sizes      []int
	table      table.Model
	selection  Selection
	width      int
	height     int
	done       bool
	quitting   bool
}

// NewSetupModel creates a selector. initial preselects the highlighted mode
// and size; stages whose ask flag is false are skipped.
func NewSetupModel(board config.BoardConfig, initial Selection, askMode, askSize bool, width, height int) SetupModel {
	m := SetupModel{
		keys:      DefaultSetupKeyMap(),
		help:      help.New(),
		askMode:   askMode,
		askSize:   askSize,
		modes:     match.Modes(),
		sizes:     board.Sizes(),
		selection: initial,
		width:     width,
		height:    height,
	}
	for i, mode := range m.modes {
		if mode == initial.Mode {
			m.modeCursor = i
		}
	}
	m.table = m.createTable()

	switch {
	case askMode:
		m.stage = stageMode
	case askSize:
		m.stage = stageSize
	default:
		m.done = true
	}
	return m
}

// createTable lists the selectable board sizes.
func (m *SetupModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 8},
		{Title: "Cells", Width: 7},
		{Title: "To win", Width: 12},
	}

	rows := make([]table.Row, len(m.sizes))
	cursor := 0
	for i, n := range m.sizes {
		rows[i] = table.Row{
			fmt.Sprintf("%dx%d", n, n),
			fmt.Sprintf("%d", n*n),
			fmt.Sprintf("%d in a row", n),
		}
		if n == m.selection.Size {
			cursor = i
		}
	}

	height := len(rows)
	if limit := m.height - 10; limit > 0 && height > limit {
		height = max(limit, 3)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return t
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.selection.Size = m.sizes[m.table.Cursor()]
		m.table = m.createTable()
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, nil
	}
	if m.stage == stageMode {
		return m.handleModeKey(msg)
	}
	return m.handleSizeKey(msg)
}

func (m SetupModel) handleModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.modeCursor > 0 {
			m.modeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.modeCursor < len(m.modes)-1 {
			m.modeCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Mode = m.modes[m.modeCursor]
		if m.askSize {
			m.stage = stageSize
		} else {
			m.done = true
		}
	}
	return m, nil
}

func (m SetupModel) handleSizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Select):
		m.selection.Size = m.sizes[m.table.Cursor()]
		m.done = true
	case key.Matches(msg, m.keys.Back):
		if m.askMode {
			m.stage = stageMode
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current selector stage.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T I C - T A C - T O E"), m.width))
	b.WriteString("\n\n")

	if m.stage == stageMode {
		b.WriteString(centerText("Who are you playing with?", m.width))
		b.WriteString("\n\n")
		for i, mode := range m.modes {
			line := "  " + mode.Label()
			if i == m.modeCursor {
				line = selectedStyle.Render("> " + mode.Label())
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(fmt.Sprintf("%s · select board size:", m.selection.Mode.Label()), m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	if !m.done {
		return nil
	}
	sel := m.selection
	return &sel
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
