package match

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// DefaultDelay is how long the computer waits before answering, so the
// human's move is on screen first.
const DefaultDelay = 500 * time.Millisecond

// ErrNotYourTurn is returned when a human tries to move for the computer.
var ErrNotYourTurn = errors.New("match: waiting for the computer")

// Token identifies the board a computer move was scheduled for. A token is
// stale once anything changes the board.
type Token struct {
	gen uint64
}

// Options configures a Controller.
type Options struct {
	Mode  Mode
	Delay time.Duration
	Seed  int64 // 0 seeds from the clock
}

// Controller owns one game and its computer opponent.
//
// Controller is not safe for concurrent use; callers serialise access the
// same way they serialise access to the game.
type Controller struct {
	game     *tictactoe.Game
	mode     Mode
	opponent *tictactoe.Opponent
	computer tictactoe.Cell
	delay    time.Duration

	gen     uint64
	resumed bool
}

// NewController starts a size×size game.
func NewController(size int, opts Options) (*Controller, error) {
	game, err := tictactoe.NewGame(size)
	if err != nil {
		return nil, err
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Controller{
		game:     game,
		mode:     opts.Mode,
		opponent: tictactoe.NewOpponent(opts.Seed),
		computer: tictactoe.O,
		delay:    opts.Delay,
	}, nil
}

// Game returns the underlying game for rendering and read access.
func (c *Controller) Game() *tictactoe.Game {
	return c.game
}

// Mode returns the player mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Delay returns the pause before a computer move.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// State is shorthand for Game().State().
func (c *Controller) State() tictactoe.State {
	return c.game.State()
}

// ComputerToMove reports whether the board is waiting on the computer,
// whether or not a move is currently due.
func (c *Controller) ComputerToMove() bool {
	return c.mode == HumanVsComputer &&
		c.game.Status() == tictactoe.Playing &&
		c.game.Turn() == c.computer
}

// Submit plays a human move at (row, col).
func (c *Controller) Submit(row, col int) (tictactoe.MoveOutcome, error) {
	if c.ComputerToMove() {
		return tictactoe.MoveOutcome{Result: c.game.Result(), HistoryIndex: c.game.CurrentIndex()}, ErrNotYourTurn
	}
	out, err := c.game.SubmitMove(row, col)
	if err == nil && out.Accepted {
		c.invalidate()
	}
	return out, err
}

// Rewind shows an older snapshot. A computer move scheduled before the
// rewind is cancelled, and none is due until Resume or a new move.
func (c *Controller) Rewind(index int) (tictactoe.State, error) {
	state, err := c.game.RewindTo(index)
	if err != nil {
		return tictactoe.State{}, err
	}
	c.invalidate()
	return state, nil
}

// Resume lets the computer play from a rewound snapshot.
func (c *Controller) Resume() {
	c.resumed = true
}

// Reset clears the board and cancels any pending computer move.
func (c *Controller) Reset() tictactoe.State {
	c.invalidate()
	return c.game.ResetGame()
}

// Resize starts over on a size×size board and cancels any pending computer
// move. Persisting the new size is up to the caller.
func (c *Controller) Resize(size int) (tictactoe.State, error) {
	state, err := c.game.Resize(size)
	if err != nil {
		return tictactoe.State{}, err
	}
	c.invalidate()
	return state, nil
}

// SetMode switches who plays O and starts a fresh game.
func (c *Controller) SetMode(m Mode) tictactoe.State {
	c.mode = m
	return c.Reset()
}

// OpponentDue returns a token for the computer's next move when one is due.
func (c *Controller) OpponentDue() (Token, bool) {
	if !c.ComputerToMove() {
		return Token{}, false
	}
	if c.game.Rewound() && !c.resumed {
		return Token{}, false
	}
	return Token{gen: c.gen}, true
}

// PlayOpponent makes the computer's move if tok is still current. Stale
// tokens are ignored and report false.
func (c *Controller) PlayOpponent(tok Token) (tictactoe.MoveOutcome, bool) {
	due, ok := c.OpponentDue()
	if !ok || due != tok {
		return tictactoe.MoveOutcome{}, false
	}

	pick, ok := c.opponent.ChooseMove(c.game.Grid(), c.game.EmptyCells(), c.computer.Other(), c.computer)
	if !ok {
		return tictactoe.MoveOutcome{}, false
	}
	out, err := c.game.SubmitMove(pick.Row, pick.Col)
	if err != nil || !out.Accepted {
		return out, false
	}
	c.invalidate()
	return out, true
}

func (c *Controller) invalidate() {
	c.gen++
	c.resumed = false
}
