package tictactoe

import "fmt"

// Snapshot is an archived board: a grid and its empty set as they were
// right after a move. Snapshot 0 is the empty board.
type Snapshot struct {
	Grid  *Grid
	Empty *EmptySet
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{Grid: s.Grid.Clone(), Empty: s.Empty.Clone()}
}

// History is a linear list of snapshots with a cursor. Recording a move
// while the cursor is behind the latest snapshot discards everything after
// the cursor first.
type History struct {
	snaps  []Snapshot
	cursor int
}

// NewHistory starts a history whose snapshot 0 is the given board.
func NewHistory(g *Grid, empty *EmptySet) *History {
	h := &History{}
	h.RecordInitial(g, empty)
	return h
}

// RecordInitial drops every snapshot and stores the board as snapshot 0.
func (h *History) RecordInitial(g *Grid, empty *EmptySet) {
	h.snaps = []Snapshot{{Grid: g.Clone(), Empty: empty.Clone()}}
	h.cursor = 0
}

// Reset is RecordInitial for a freshly created or resized board.
func (h *History) Reset(g *Grid, empty *EmptySet) {
	h.RecordInitial(g, empty)
}

// RecordMove stores a copy of the board after a move and returns its index.
func (h *History) RecordMove(g *Grid, empty *EmptySet) int {
	h.snaps = append(h.snaps[:h.cursor+1], Snapshot{Grid: g.Clone(), Empty: empty.Clone()})
	h.cursor = len(h.snaps) - 1
	return h.cursor
}

// Rewind moves the cursor to index and returns copies of that snapshot plus
// the player to move there. Stored snapshots are never handed out.
func (h *History) Rewind(index int) (Snapshot, Cell, error) {
	snap, err := h.At(index)
	if err != nil {
		return Snapshot{}, Empty, err
	}
	h.cursor = index
	return snap, TurnAt(index), nil
}

// At returns a copy of snapshot index without moving the cursor.
func (h *History) At(index int) (Snapshot, error) {
	if index < 0 || index >= len(h.snaps) {
		return Snapshot{}, fmt.Errorf("%w: %d (have 0..%d)", ErrInvalidHistoryIndex, index, len(h.snaps)-1)
	}
	return h.snaps[index].clone(), nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snaps)
}

// Cursor returns the index of the snapshot currently shown.
func (h *History) Cursor() int {
	return h.cursor
}

// Rewound reports whether the cursor sits behind the latest snapshot.
func (h *History) Rewound() bool {
	return h.cursor < len(h.snaps)-1
}

// Indices lists the recorded snapshot indices in order.
func (h *History) Indices() []int {
	out := make([]int, len(h.snaps))
	for i := range out {
		out[i] = i
	}
	return out
}

// TurnAt returns the player to move after index moves. X always moves first.
func TurnAt(index int) Cell {
	if index%2 == 0 {
		return X
	}
	return O
}
