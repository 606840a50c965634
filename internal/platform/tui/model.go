package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

// saveTimeout bounds a board-size preference write.
const saveTimeout = 2 * time.Second

// GameModel plays one tic-tac-toe match in the terminal.
type GameModel struct {
	ctrl       *match.Controller
	board      config.BoardConfig
	store      match.BoardSizeStore
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	cursor     tictactoe.Coord
	notice     string
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model around a running controller.
func NewGameModel(ctrl *match.Controller, board config.BoardConfig, store match.BoardSizeStore, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		ctrl:   ctrl,
		board:  board,
		store:  store,
		logger: logger,
		screen: core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH, false)),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
	}
	m.centerCursor()
	return m
}

// Init schedules the computer's first move if one is due.
func (m GameModel) Init() tea.Cmd {
	return m.scheduleOpponent()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, boardHeight(msg.Height, m.help.ShowAll))
		return m, nil

	case opponentMoveMsg:
		return m.handleOpponent(msg)
	}

	return m, nil
}

// handleAction applies one input action.
func (m GameModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	game := m.ctrl.Game()
	n := game.Size()
	m.notice = ""

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, boardHeight(m.config.ScreenH, m.help.ShowAll))
		return m, nil

	case core.ActionUp:
		m.cursor.Row = core.Clamp(m.cursor.Row-1, 0, n-1)
	case core.ActionDown:
		m.cursor.Row = core.Clamp(m.cursor.Row+1, 0, n-1)
	case core.ActionLeft:
		m.cursor.Col = core.Clamp(m.cursor.Col-1, 0, n-1)
	case core.ActionRight:
		m.cursor.Col = core.Clamp(m.cursor.Col+1, 0, n-1)

	case core.ActionPlace:
		return m.place()

	case core.ActionHistoryBack:
		return m.rewind(game.CurrentIndex() - 1)
	case core.ActionHistoryForward:
		return m.rewind(game.CurrentIndex() + 1)

	case core.ActionResume:
		if game.Rewound() {
			m.ctrl.Resume()
			m.logger.Debug("resumed from rewound board", "index", game.CurrentIndex())
		}
		return m, m.scheduleOpponent()

	case core.ActionReset:
		m.ctrl.Reset()
		m.centerCursor()
		m.logger.Debug("game reset", "size", n)
		return m, m.scheduleOpponent()

	case core.ActionSizeUp:
		return m.resize(n + 1)
	case core.ActionSizeDown:
		return m.resize(n - 1)
	}

	return m, nil
}

func (m GameModel) place() (tea.Model, tea.Cmd) {
	out, err := m.ctrl.Submit(m.cursor.Row, m.cursor.Col)
	switch {
	case errors.Is(err, match.ErrNotYourTurn):
		m.notice = "Wait for the computer"
		return m, nil
	case err != nil:
		m.logger.Warn("move rejected", "cell", m.cursor, "error", err)
		return m, nil
	case !out.Accepted:
		return m, nil
	}

	m.logger.Debug("move", "cell", m.cursor, "index", out.HistoryIndex, "outcome", out.Result.Outcome)
	return m, m.scheduleOpponent()
}

func (m GameModel) rewind(index int) (tea.Model, tea.Cmd) {
	if _, err := m.ctrl.Rewind(index); err != nil {
		// Stepping past either end of the history is expected.
		return m, nil
	}
	return m, m.scheduleOpponent()
}

func (m GameModel) resize(size int) (tea.Model, tea.Cmd) {
	size = m.board.ClampSize(size)
	if size == m.ctrl.Game().Size() {
		return m, nil
	}
	if _, err := m.ctrl.Resize(size); err != nil {
		m.logger.Warn("resize failed", "size", size, "error", err)
		return m, nil
	}
	m.centerCursor()
	m.saveSize(size)
	return m, m.scheduleOpponent()
}

func (m *GameModel) saveSize(size int) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := match.SaveSize(ctx, m.store, size); err != nil {
		m.logger.Warn("could not save board size", "size", size, "error", err)
		m.notice = "Board size not saved"
	}
}

func (m GameModel) handleOpponent(msg opponentMoveMsg) (tea.Model, tea.Cmd) {
	out, ok := m.ctrl.PlayOpponent(msg.token)
	if !ok {
		return m, nil
	}
	m.logger.Debug("computer move", "index", out.HistoryIndex, "outcome", out.Result.Outcome)
	return m, m.scheduleOpponent()
}

// scheduleOpponent returns a delayed command when the computer is due.
func (m GameModel) scheduleOpponent() tea.Cmd {
	tok, ok := m.ctrl.OpponentDue()
	if !ok {
		return nil
	}
	return opponentCmd(m.ctrl.Delay(), tok)
}

func (m *GameModel) centerCursor() {
	n := m.ctrl.Game().Size()
	m.cursor = tictactoe.C(n/2, n/2)
}

// statusNotice is the hint line under the header.
func (m GameModel) statusNotice() string {
	if m.notice != "" {
		return m.notice
	}
	game := m.ctrl.Game()
	switch {
	case game.Status() == tictactoe.Finished:
		return "Press r for a new game"
	case game.Rewound() && m.ctrl.ComputerToMove():
		return "Press c to let the computer continue from here"
	case game.Rewound():
		return fmt.Sprintf("Viewing move %d · placing here discards later moves", game.CurrentIndex())
	case m.ctrl.ComputerToMove():
		return "Computer is thinking..."
	}
	return ""
}

// View renders the board followed by the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	game := m.ctrl.Game()
	game.Render(m.screen, tictactoe.RenderOptions{
		Cursor:     m.cursor,
		ShowCursor: game.Status() == tictactoe.Playing && !m.ctrl.ComputerToMove(),
		Subtitle:   m.ctrl.Mode().Label(),
		Notice:     m.statusNotice(),
	})
	return RenderScreen(m.screen) + "\n" + centerText(hintStyle.Render(m.help.View(m.keys)), m.config.ScreenW)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// boardHeight leaves room for the help footer below the board.
func boardHeight(total int, fullHelp bool) int {
	footer := 1
	if fullHelp {
		footer = 6
	}
	return max(total-footer, 1)
}
