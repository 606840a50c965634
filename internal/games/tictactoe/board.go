// Package tictactoe implements an N×N tic-tac-toe engine: the board and its
// empty-cell index, win/draw evaluation, move application, linear move
// history with rewind, and a heuristic computer opponent.
//
// The package is pure game logic. Presentation layers drive it through Game
// and render it into a core.Screen.
package tictactoe

import (
	"fmt"
	"sort"
)

// Board size limits.
const (
	MinSize = 3
	MaxSize = 10
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the marker symbol, or an empty string for an empty cell.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing marker. Empty has no opponent.
func (c Cell) Other() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// SupportedSize reports whether a board of the given size can be created.
func SupportedSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// Grid is an N×N board stored row-major: index = row*N + col.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a grid filled with empty cells.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

func (g *Grid) coord(index int) Coord {
	return Coord{Row: index / g.size, Col: index % g.size}
}

// at reads a cell without bounds checking.
func (g *Grid) at(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Empty, g.rangeError(row, col)
	}
	return g.at(row, col), nil
}

// Set writes a cell value in place.
func (g *Grid) Set(row, col int, v Cell) error {
	if !g.InBounds(row, col) {
		return g.rangeError(row, col)
	}
	g.cells[g.index(row, col)] = v
	return nil
}

func (g *Grid) rangeError(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfRange, row, col, g.size, g.size)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// equal reports whether two grids have the same size and contents.
func (g *Grid) equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the board as a fresh row-major matrix.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for r := range rows {
		rows[r] = make([]Cell, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// EmptySet indexes the unoccupied cells of a grid. Flat indices are kept
// sorted so enumeration is row-major and deterministic.
type EmptySet struct {
	size int
	idx  []int
}

// NewEmptySet returns the set for an empty board: all N² cells.
func NewEmptySet(size int) *EmptySet {
	idx := make([]int, size*size)
	for i := range idx {
		idx[i] = i
	}
	return &EmptySet{size: size, idx: idx}
}

// EmptySetOf derives the set from a grid's current contents.
func EmptySetOf(g *Grid) *EmptySet {
	s := &EmptySet{size: g.size}
	for i, c := range g.cells {
		if c == Empty {
			s.idx = append(s.idx, i)
		}
	}
	return s
}

// Len returns the number of empty cells.
func (s *EmptySet) Len() int {
	return len(s.idx)
}

func (s *EmptySet) search(c Coord) (int, bool) {
	flat := c.Row*s.size + c.Col
	i := sort.SearchInts(s.idx, flat)
	return i, i < len(s.idx) && s.idx[i] == flat
}

// Contains reports whether c is empty.
func (s *EmptySet) Contains(c Coord) bool {
	if c.Row < 0 || c.Row >= s.size || c.Col < 0 || c.Col >= s.size {
		return false
	}
	_, ok := s.search(c)
	return ok
}

// Remove drops c from the set. It returns false if c was not present.
func (s *EmptySet) Remove(c Coord) bool {
	if !s.Contains(c) {
		return false
	}
	i, _ := s.search(c)
	s.idx = append(s.idx[:i], s.idx[i+1:]...)
	return true
}

// Coords lists the empty cells in row-major order.
func (s *EmptySet) Coords() []Coord {
	out := make([]Coord, len(s.idx))
	for i, flat := range s.idx {
		out[i] = Coord{Row: flat / s.size, Col: flat % s.size}
	}
	return out
}

// Clone returns an independent copy.
func (s *EmptySet) Clone() *EmptySet {
	idx := make([]int, len(s.idx))
	copy(idx, s.idx)
	return &EmptySet{size: s.size, idx: idx}
}
