package tictactoe

import (
	"errors"
	"testing"
)

// gridFrom builds a board from rows of 'X', 'O' and '.' characters.
func gridFrom(t *testing.T, rows ...string) (*Grid, *EmptySet) {
	t.Helper()
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, ch := range row {
			switch ch {
			case 'X':
				g.Set(r, c, X)
			case 'O':
				g.Set(r, c, O)
			}
		}
	}
	return g, EmptySetOf(g)
}

// consistent reports whether the set lists exactly the empty cells of g.
func consistent(g *Grid, s *EmptySet) bool {
	want := EmptySetOf(g).Coords()
	got := s.Coords()
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

func TestNewGridIsEmpty(t *testing.T) {
	for n := MinSize; n <= MaxSize; n++ {
		g := NewGrid(n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v, err := g.Get(r, c)
				if err != nil {
					t.Fatalf("Get(%d, %d) on %dx%d: %v", r, c, n, n, err)
				}
				if v != Empty {
					t.Fatalf("cell (%d, %d) of new %dx%d grid = %v, want empty", r, c, n, n, v)
				}
			}
		}
	}
}

func TestGridGetOutOfRange(t *testing.T) {
	g := NewGrid(3)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past end", 3, 0},
		{"col past end", 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Get(tc.row, tc.col); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Get(%d, %d) error = %v, want ErrOutOfRange", tc.row, tc.col, err)
			}
			if err := g.Set(tc.row, tc.col, X); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Set(%d, %d) error = %v, want ErrOutOfRange", tc.row, tc.col, err)
			}
		})
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, X)

	clone := g.Clone()
	if !clone.equal(g) {
		t.Fatal("clone should equal the original")
	}

	clone.Set(0, 0, O)
	if v, _ := g.Get(0, 0); v != Empty {
		t.Error("mutating the clone changed the original")
	}
	if clone.equal(g) {
		t.Error("grids should differ after mutating the clone")
	}
}

func TestGridRows(t *testing.T) {
	g, _ := gridFrom(t,
		"X..",
		".O.",
		"..X",
	)
	rows := g.Rows()
	if rows[0][0] != X || rows[1][1] != O || rows[2][2] != X || rows[0][1] != Empty {
		t.Errorf("Rows() = %v", rows)
	}

	rows[0][0] = O
	if v, _ := g.Get(0, 0); v != X {
		t.Error("Rows() should return a copy")
	}
}

func TestEmptySetLifecycle(t *testing.T) {
	s := NewEmptySet(3)
	if s.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", s.Len())
	}

	if !s.Remove(C(1, 1)) {
		t.Fatal("Remove of a present coord should succeed")
	}
	if s.Remove(C(1, 1)) {
		t.Error("second Remove of the same coord should fail")
	}
	if s.Contains(C(1, 1)) {
		t.Error("removed coord still reported as empty")
	}
	if s.Contains(C(5, 5)) {
		t.Error("off-board coord reported as empty")
	}
	if s.Len() != 8 {
		t.Errorf("Len() = %d, want 8", s.Len())
	}

	coords := s.Coords()
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		if prev.Row > cur.Row || (prev.Row == cur.Row && prev.Col >= cur.Col) {
			t.Fatalf("Coords() not row-major: %v", coords)
		}
	}

	clone := s.Clone()
	clone.Remove(C(0, 0))
	if !s.Contains(C(0, 0)) {
		t.Error("mutating the clone changed the original set")
	}
}

func TestEmptySetOf(t *testing.T) {
	g, s := gridFrom(t,
		"XO.",
		"...",
		"..X",
	)
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
	if !consistent(g, s) {
		t.Error("derived set disagrees with grid")
	}
}

func TestCellOther(t *testing.T) {
	if X.Other() != O || O.Other() != X || Empty.Other() != Empty {
		t.Error("Other() should swap markers and keep Empty")
	}
}
