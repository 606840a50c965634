package tictactoe

import (
	"errors"
	"testing"
)

func playMoves(t *testing.T, g *Grid, empty *EmptySet, h *History, moves ...Coord) {
	t.Helper()
	turn := TurnAt(h.Cursor())
	for _, m := range moves {
		next, ok := ApplyMove(g, empty, m.Row, m.Col, turn)
		if !ok {
			t.Fatalf("move %v rejected", m)
		}
		turn = next
		h.RecordMove(g, empty)
	}
}

func TestHistoryRecordsOneSnapshotPerMove(t *testing.T) {
	g, empty := NewGrid(3), NewEmptySet(3)
	h := NewHistory(g, empty)

	if h.Len() != 1 || h.Cursor() != 0 {
		t.Fatalf("new history: Len=%d Cursor=%d", h.Len(), h.Cursor())
	}

	playMoves(t, g, empty, h, C(0, 0), C(1, 1), C(2, 2))

	if h.Len() != 4 {
		t.Errorf("Len() = %d, want 4", h.Len())
	}
	if h.Cursor() != 3 || h.Rewound() {
		t.Errorf("Cursor() = %d Rewound() = %v after recording", h.Cursor(), h.Rewound())
	}
	if got := h.Indices(); len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Errorf("Indices() = %v", got)
	}
}

func TestHistorySnapshotsDoNotAliasLiveGrid(t *testing.T) {
	g, empty := NewGrid(3), NewEmptySet(3)
	h := NewHistory(g, empty)
	playMoves(t, g, empty, h, C(0, 0))

	g.Set(2, 2, O)
	empty.Remove(C(2, 2))

	snap, err := h.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := snap.Grid.Get(2, 2); v != Empty {
		t.Error("snapshot changed when the live grid was mutated")
	}
	if snap.Empty.Len() != 8 {
		t.Errorf("snapshot empty set Len() = %d, want 8", snap.Empty.Len())
	}
}

func TestHistoryRewindReturnsCopies(t *testing.T) {
	g, empty := NewGrid(3), NewEmptySet(3)
	h := NewHistory(g, empty)
	playMoves(t, g, empty, h, C(0, 0), C(1, 1))

	snap, turn, err := h.Rewind(1)
	if err != nil {
		t.Fatal(err)
	}
	if turn != O {
		t.Errorf("turn at 1 = %v, want O", turn)
	}
	if !h.Rewound() {
		t.Error("history should report rewound")
	}

	snap.Grid.Set(2, 2, X)
	snap.Empty.Remove(C(2, 2))

	again, _ := h.At(1)
	if v, _ := again.Grid.Get(2, 2); v != Empty {
		t.Error("mutating a rewound copy changed the archive")
	}
	if h.Len() != 3 {
		t.Errorf("rewind should not drop snapshots, Len() = %d", h.Len())
	}
}

func TestHistoryTruncatesOnDivergence(t *testing.T) {
	g, empty := NewGrid(3), NewEmptySet(3)
	h := NewHistory(g, empty)
	playMoves(t, g, empty, h, C(0, 0), C(1, 1), C(0, 1), C(1, 0))

	const k = 1
	snap, _, err := h.Rewind(k)
	if err != nil {
		t.Fatal(err)
	}
	g, empty = snap.Grid, snap.Empty
	playMoves(t, g, empty, h, C(2, 2))

	if h.Len() != k+2 {
		t.Errorf("Len() = %d after diverging at %d, want %d", h.Len(), k, k+2)
	}
	if h.Rewound() {
		t.Error("recording a move should leave the cursor at the end")
	}
	last, _ := h.At(k + 1)
	if v, _ := last.Grid.Get(2, 2); v != O {
		t.Errorf("new snapshot should hold O at (2,2), got %v", v)
	}
	if v, _ := last.Grid.Get(0, 1); v != Empty {
		t.Error("abandoned branch leaked into the new snapshot")
	}
}

func TestHistoryRewindInvalidIndex(t *testing.T) {
	h := NewHistory(NewGrid(3), NewEmptySet(3))

	for _, idx := range []int{-1, 1, 42} {
		if _, _, err := h.Rewind(idx); !errors.Is(err, ErrInvalidHistoryIndex) {
			t.Errorf("Rewind(%d) error = %v, want ErrInvalidHistoryIndex", idx, err)
		}
	}
	if h.Cursor() != 0 {
		t.Error("failed rewind moved the cursor")
	}
}

func TestHistoryReset(t *testing.T) {
	g, empty := NewGrid(3), NewEmptySet(3)
	h := NewHistory(g, empty)
	playMoves(t, g, empty, h, C(0, 0), C(1, 1))

	h.Reset(NewGrid(4), NewEmptySet(4))
	if h.Len() != 1 || h.Cursor() != 0 {
		t.Fatalf("after Reset: Len=%d Cursor=%d", h.Len(), h.Cursor())
	}
	snap, _ := h.At(0)
	if snap.Grid.Size() != 4 || snap.Empty.Len() != 16 {
		t.Errorf("snapshot 0 after Reset: size %d, %d empty", snap.Grid.Size(), snap.Empty.Len())
	}
}

func TestTurnAt(t *testing.T) {
	for i, want := range []Cell{X, O, X, O, X} {
		if got := TurnAt(i); got != want {
			t.Errorf("TurnAt(%d) = %v, want %v", i, got, want)
		}
	}
}
