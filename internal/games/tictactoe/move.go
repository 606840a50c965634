package tictactoe

// ApplyMove writes player's marker at (row, col), removes the cell from the
// empty set and returns the player to move next.
//
// An out-of-range or occupied target is rejected: nothing is mutated and the
// returned player is unchanged. ApplyMove never evaluates the board.
func ApplyMove(g *Grid, empty *EmptySet, row, col int, player Cell) (next Cell, accepted bool) {
	if !g.InBounds(row, col) || g.at(row, col) != Empty {
		return player, false
	}

	g.cells[g.index(row, col)] = player
	empty.Remove(C(row, col))
	return player.Other(), true
}
