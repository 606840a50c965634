package tictactoe

import "fmt"

// Status is the top-level game state.
type Status int

const (
	Playing Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	return "playing"
}

// MoveOutcome is returned by SubmitMove.
type MoveOutcome struct {
	Accepted     bool
	Result       Result
	HistoryIndex int
}

// Game is the engine facade used by presentation layers. It owns the live
// grid and empty set; History keeps independent copies.
//
// Game is not safe for concurrent use.
type Game struct {
	grid    *Grid
	empty   *EmptySet
	turn    Cell
	history *History
	result  Result
}

// NewGame creates an empty size×size game with X to move.
func NewGame(size int) (*Game, error) {
	if !SupportedSize(size) {
		return nil, fmt.Errorf("%w: %d (supported %d..%d)", ErrUnsupportedBoardSize, size, MinSize, MaxSize)
	}
	g := &Game{}
	g.start(size)
	return g, nil
}

func (g *Game) start(size int) {
	g.grid = NewGrid(size)
	g.empty = NewEmptySet(size)
	g.turn = X
	g.history = NewHistory(g.grid, g.empty)
	g.result = Result{Outcome: InProgress}
}

// SubmitMove plays the current player's marker at (row, col).
//
// Coordinates off the board are an error. An occupied cell, or any move on a
// finished board, is a silent no-op: Accepted is false and nothing changes.
func (g *Game) SubmitMove(row, col int) (MoveOutcome, error) {
	rejected := MoveOutcome{Result: g.result, HistoryIndex: g.history.Cursor()}

	if !g.grid.InBounds(row, col) {
		return rejected, g.grid.rangeError(row, col)
	}
	if g.result.Finished() {
		return rejected, nil
	}

	next, ok := ApplyMove(g.grid, g.empty, row, col, g.turn)
	if !ok {
		return rejected, nil
	}

	g.turn = next
	idx := g.history.RecordMove(g.grid, g.empty)
	g.result = Evaluate(g.grid, g.empty)

	return MoveOutcome{Accepted: true, Result: g.result, HistoryIndex: idx}, nil
}

// RewindTo shows snapshot index. The archived future stays available until
// the next accepted move truncates it.
func (g *Game) RewindTo(index int) (State, error) {
	snap, turn, err := g.history.Rewind(index)
	if err != nil {
		return State{}, err
	}
	g.grid = snap.Grid
	g.empty = snap.Empty
	g.turn = turn
	g.result = Evaluate(g.grid, g.empty)
	return g.State(), nil
}

// ResetGame clears the board and history, keeping the board size.
func (g *Game) ResetGame() State {
	g.start(g.grid.Size())
	return g.State()
}

// Resize starts over on a board of a different size.
func (g *Game) Resize(size int) (State, error) {
	if !SupportedSize(size) {
		return State{}, fmt.Errorf("%w: %d (supported %d..%d)", ErrUnsupportedBoardSize, size, MinSize, MaxSize)
	}
	g.start(size)
	return g.State(), nil
}

// Size returns N.
func (g *Game) Size() int {
	return g.grid.Size()
}

// Grid returns a copy of the live grid.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// EmptyCells returns a copy of the live empty set.
func (g *Game) EmptyCells() *EmptySet {
	return g.empty.Clone()
}

// Turn returns the marker that moves next.
func (g *Game) Turn() Cell {
	return g.turn
}

// Result returns the evaluation of the shown board.
func (g *Game) Result() Result {
	return g.result
}

// Status classifies the shown board as Playing or Finished.
func (g *Game) Status() Status {
	if g.result.Finished() {
		return Finished
	}
	return Playing
}

// HistoryIndices lists the recorded snapshot indices.
func (g *Game) HistoryIndices() []int {
	return g.history.Indices()
}

// CurrentIndex returns the index of the shown snapshot.
func (g *Game) CurrentIndex() int {
	return g.history.Cursor()
}

// Rewound reports whether an older snapshot is being shown.
func (g *Game) Rewound() bool {
	return g.history.Rewound()
}
