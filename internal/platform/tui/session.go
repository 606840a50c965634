package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

// Options configures a terminal session.
type Options struct {
	Board   config.BoardConfig
	Mode    match.Mode
	Size    int  // preselected size, usually the stored preference
	AskMode bool // show the mode selector
	AskSize bool // show the size selector
	Delay   time.Duration
	Store   match.BoardSizeStore
	Logger  *log.Logger
	Runtime core.RuntimeConfig
}

// SessionModel manages the session flow: setup -> game -> setup.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts      Options
	setup     SetupModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Size = opts.Board.ClampSize(opts.Size)

	return SessionModel{
		opts:  opts,
		setup: opts.newSetup(),
	}
}

func (o Options) newSetup() SetupModel {
	return NewSetupModel(o.Board, Selection{Mode: o.Mode, Size: o.Size}, o.AskMode, o.AskSize, o.Runtime.ScreenW, o.Runtime.ScreenH)
}

// Init initializes the session. When nothing needs asking the game starts
// right away.
func (m SessionModel) Init() tea.Cmd {
	if sel := m.setup.Selected(); sel != nil {
		return func() tea.Msg { return startGameMsg{selection: *sel} }
	}
	return m.setup.Init()
}

// startGameMsg starts a game once the selector is skipped.
type startGameMsg struct {
	selection Selection
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if start, ok := msg.(startGameMsg); ok {
		return m.startGame(start.selection)
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates while choosing mode and size.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.setup.Selected(); sel != nil {
		if m.opts.AskSize {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			if err := match.SaveSize(ctx, m.opts.Store, sel.Size); err != nil {
				m.opts.Logger.Warn("could not save board size", "size", sel.Size, "error", err)
			}
			cancel()
		}
		return m.startGame(*sel)
	}

	return m, cmd
}

func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	ctrl, err := match.NewController(sel.Size, match.Options{
		Mode:  sel.Mode,
		Delay: m.opts.Delay,
		Seed:  m.opts.Runtime.Seed,
	})
	if err != nil {
		m.opts.Logger.Error("cannot start game", "size", sel.Size, "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.opts.Mode, m.opts.Size = sel.Mode, sel.Size
	m.opts.Logger.Info("game started", "mode", sel.Mode, "size", sel.Size)

	gameModel := NewGameModel(ctrl, m.opts.Board, m.opts.Store, m.opts.Logger, m.opts.Runtime)
	m.gameModel = &gameModel
	m.inGame = true
	return m, m.gameModel.Init()
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Back to the selector, remembering the current board size
	if m.gameModel.BackToMenu() {
		m.opts.Size = m.gameModel.ctrl.Game().Size()
		m.opts.Mode = m.gameModel.ctrl.Mode()
		m.inGame = false
		m.gameModel = nil
		m.opts.AskMode, m.opts.AskSize = true, true
		m.setup = m.opts.newSetup()
		return m, m.setup.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.setup.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local Bubble Tea program for one session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
