package tictactoe

import (
	"math/rand"
	"time"
)

// Opponent picks moves for the computer player with a fixed priority:
// win, block, center, corner, random.
type Opponent struct {
	rng *rand.Rand
}

// NewOpponent creates an opponent whose random fallback uses the given
// seed. A zero seed is replaced by the current time.
func NewOpponent(seed int64) *Opponent {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Opponent{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove returns the cell the computer (self) should take. It returns
// false only when the board has no empty cell. The grid and set passed in
// are never modified; every probe runs on its own copy.
func (o *Opponent) ChooseMove(g *Grid, empty *EmptySet, opponent, self Cell) (Coord, bool) {
	candidates := empty.Coords()
	if len(candidates) == 0 {
		return Coord{}, false
	}

	for _, c := range candidates {
		if winsAt(g, empty, c, self) {
			return c, true
		}
	}
	for _, c := range candidates {
		if winsAt(g, empty, c, opponent) {
			return c, true
		}
	}

	n := g.Size()
	if center := C(n/2, n/2); empty.Contains(center) {
		return center, true
	}

	for _, corner := range []Coord{C(0, 0), C(0, n-1), C(n-1, 0), C(n-1, n-1)} {
		if empty.Contains(corner) {
			return corner, true
		}
	}

	return candidates[o.rng.Intn(len(candidates))], true
}

// winsAt reports whether placing marker at c would complete a line for it.
func winsAt(g *Grid, empty *EmptySet, c Coord, marker Cell) bool {
	probe := g.Clone()
	probeEmpty := empty.Clone()
	if _, ok := ApplyMove(probe, probeEmpty, c.Row, c.Col, marker); !ok {
		return false
	}
	res := Evaluate(probe, probeEmpty)
	return res.Outcome == Won && res.Winner == marker
}
