package tictactoe

import "fmt"

// State is a read-only view of a game for rendering and serialisation.
type State struct {
	Size       int        `json:"size"`
	Board      [][]string `json:"board"`
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	Outcome    string     `json:"outcome"`
	Winner     string     `json:"winner,omitempty"`
	Line       []Coord    `json:"line,omitempty"`
	History    []int      `json:"history"`
	Current    int        `json:"current"`
	Rewound    bool       `json:"rewound"`
	EmptyCells int        `json:"empty_cells"`
	Header     string     `json:"header"`
}

// State captures the game as it is shown right now.
func (g *Game) State() State {
	rows := g.grid.Rows()
	board := make([][]string, len(rows))
	for r, row := range rows {
		board[r] = make([]string, len(row))
		for c, cell := range row {
			board[r][c] = cell.String()
		}
	}

	line := make([]Coord, len(g.result.Line))
	copy(line, g.result.Line)

	return State{
		Size:       g.grid.Size(),
		Board:      board,
		Turn:       g.turn.String(),
		Status:     g.Status().String(),
		Outcome:    g.result.Outcome.String(),
		Winner:     g.result.Winner.String(),
		Line:       line,
		History:    g.history.Indices(),
		Current:    g.history.Cursor(),
		Rewound:    g.history.Rewound(),
		EmptyCells: g.empty.Len(),
		Header:     Header(g.result, g.turn),
	}
}

// Header is the one-line status shown above the board.
func Header(res Result, turn Cell) string {
	switch res.Outcome {
	case Won:
		return fmt.Sprintf("Winner: %s", res.Winner)
	case Draw:
		return "Draw!"
	default:
		return fmt.Sprintf("Next up: %s", turn)
	}
}
