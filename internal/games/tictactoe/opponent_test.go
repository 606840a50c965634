package tictactoe

import "testing"

func TestOpponentChooseMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Coord
	}{
		{
			name: "empty 3x3 takes center",
			rows: []string{"...", "...", "..."},
			want: C(1, 1),
		},
		{
			name: "empty 4x4 takes lower-right center",
			rows: []string{"....", "....", "....", "...."},
			want: C(2, 2),
		},
		{
			name: "win beats an earlier block",
			rows: []string{"XX.", "OO.", "X.."},
			want: C(1, 2),
		},
		{
			name: "blocks the open row",
			rows: []string{"XX.", ".O.", "..."},
			want: C(0, 2),
		},
		{
			name: "blocks the diagonal",
			rows: []string{"X.O", ".X.", "..."},
			want: C(2, 2),
		},
		{
			name: "first free corner when center is taken",
			rows: []string{"...", ".X.", "..."},
			want: C(0, 0),
		},
		{
			name: "corners in fixed order",
			rows: []string{"O..", ".X.", "..X"},
			want: C(0, 2),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, empty := gridFrom(t, tc.rows...)
			got, ok := NewOpponent(1).ChooseMove(g, empty, X, O)
			if !ok {
				t.Fatal("ChooseMove() found no move")
			}
			if got != tc.want {
				t.Errorf("ChooseMove() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOpponentRandomFallback(t *testing.T) {
	rows := []string{
		"X..X",
		"....",
		"..O.",
		"O..X",
	}
	g, empty := gridFrom(t, rows...)

	first, ok := NewOpponent(42).ChooseMove(g, empty, X, O)
	if !ok {
		t.Fatal("ChooseMove() found no move")
	}
	if !empty.Contains(first) {
		t.Errorf("ChooseMove() = %v, not an empty cell", first)
	}

	again, _ := NewOpponent(42).ChooseMove(g, empty, X, O)
	if again != first {
		t.Errorf("same seed chose %v then %v", first, again)
	}
}

func TestOpponentLeavesBoardUntouched(t *testing.T) {
	g, empty := gridFrom(t,
		"XX.",
		"OO.",
		"X..",
	)
	before, beforeEmpty := g.Clone(), empty.Clone()

	NewOpponent(1).ChooseMove(g, empty, X, O)

	if !g.equal(before) {
		t.Error("ChooseMove() modified the grid")
	}
	if !consistent(g, empty) || empty.Len() != beforeEmpty.Len() {
		t.Error("ChooseMove() modified the empty set")
	}
}

func TestOpponentFullBoard(t *testing.T) {
	g, empty := gridFrom(t, "XOX", "XOO", "OXX")
	if _, ok := NewOpponent(1).ChooseMove(g, empty, X, O); ok {
		t.Error("ChooseMove() on a full board should report no move")
	}
}
