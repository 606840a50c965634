package tictactoe

// Outcome classifies an evaluated board.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result is what Evaluate reports for a board. Winner and Line are only set
// when Outcome is Won.
type Result struct {
	Outcome Outcome
	Winner  Cell
	Line    []Coord
}

// Finished reports whether the game can no longer continue.
func (r Result) Finished() bool {
	return r.Outcome != InProgress
}

// InLine reports whether c is part of the winning line.
func (r Result) InLine(c Coord) bool {
	for _, l := range r.Line {
		if l == c {
			return true
		}
	}
	return false
}

// Evaluate scans rows, then columns, then the main diagonal, then the
// anti-diagonal for a complete line and reports the first one found.
// Without a line, a board with no empty cells is a draw.
func Evaluate(g *Grid, empty *EmptySet) Result {
	n := g.size

	for r := 0; r < n; r++ {
		if res, ok := completeLine(g, C(r, 0), 0, 1); ok {
			return res
		}
	}
	for c := 0; c < n; c++ {
		if res, ok := completeLine(g, C(0, c), 1, 0); ok {
			return res
		}
	}
	if res, ok := completeLine(g, C(0, 0), 1, 1); ok {
		return res
	}
	if res, ok := completeLine(g, C(0, n-1), 1, -1); ok {
		return res
	}

	if empty.Len() == 0 {
		return Result{Outcome: Draw}
	}
	return Result{Outcome: InProgress}
}

// completeLine walks N cells from start in direction (dr, dc) and succeeds
// when the first cell is a marker and every other cell matches it.
func completeLine(g *Grid, start Coord, dr, dc int) (Result, bool) {
	first := g.at(start.Row, start.Col)
	if first == Empty {
		return Result{}, false
	}

	line := make([]Coord, 0, g.size)
	for i := 0; i < g.size; i++ {
		c := C(start.Row+i*dr, start.Col+i*dc)
		if g.at(c.Row, c.Col) != first {
			return Result{}, false
		}
		line = append(line, c)
	}
	return Result{Outcome: Won, Winner: first, Line: line}, true
}
