package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

const (
	hudHeight    = 3  // title, header, notice
	sidebarGap   = 3  // columns between board and move list
	sidebarWidth = 18 // "> Go to move #100"
)

// RenderOptions carries presentation state the engine does not own.
type RenderOptions struct {
	Cursor     Coord
	ShowCursor bool
	Subtitle   string // e.g. the player mode
	Notice     string // one-line hint under the header
}

// Render draws the shown board, the status header and the move list.
// Boards that do not fit with row separators fall back to a compact frame.
func (g *Game) Render(dst *core.Screen, opts RenderOptions) {
	dst.Clear()

	n := g.grid.Size()
	framed := hudHeight+2*n+1 <= dst.Height()
	boardW, boardH := 4*n+1, 2*n+1
	if !framed {
		boardW, boardH = 3*n+2, n+2
	}

	if hudHeight+boardH > dst.Height() || boardW > dst.Width() {
		renderTooSmall(dst)
		return
	}

	totalW := boardW
	showSidebar := boardW+sidebarGap+sidebarWidth <= dst.Width()
	if showSidebar {
		totalW += sidebarGap + sidebarWidth
	}
	boardX := (dst.Width() - totalW) / 2
	boardY := hudHeight

	g.renderHUD(dst, opts)
	if framed {
		g.renderFramed(dst, boardX, boardY, opts)
	} else {
		g.renderCompact(dst, boardX, boardY, opts)
	}
	if showSidebar {
		g.renderHistory(dst, boardX+boardW+sidebarGap, boardY, boardH)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorHint)
}

func (g *Game) renderHUD(dst *core.Screen, opts RenderOptions) {
	n := g.grid.Size()
	title := fmt.Sprintf("Tic-Tac-Toe %dx%d", n, n)
	if opts.Subtitle != "" {
		title += "  ·  " + opts.Subtitle
	}
	dst.DrawTextCentered(0, title, core.ColorHighlight)

	header := Header(g.result, g.turn)
	if g.history.Len() > 1 {
		header = fmt.Sprintf("%s    Current move: %d", header, g.history.Cursor())
	}
	color := core.ColorDefault
	switch g.result.Outcome {
	case Won:
		color = core.ColorWinLine
	case Draw:
		color = core.ColorHighlight
	}
	dst.DrawTextCentered(1, header, color)

	if opts.Notice != "" {
		dst.DrawTextCentered(2, opts.Notice, core.ColorHint)
	}
}

// renderFramed draws every cell inside box-drawing separators.
func (g *Game) renderFramed(dst *core.Screen, x0, y0 int, opts RenderOptions) {
	n := g.grid.Size()
	lc := core.ColorGridLine

	for r := 0; r <= n; r++ {
		y := y0 + 2*r
		left, mid, right := '├', '┼', '┤'
		switch r {
		case 0:
			left, mid, right = '┌', '┬', '┐'
		case n:
			left, mid, right = '└', '┴', '┘'
		}
		for c := 0; c < n; c++ {
			x := x0 + 4*c
			if c == 0 {
				dst.SetColored(x, y, left, lc)
			} else {
				dst.SetColored(x, y, mid, lc)
			}
			dst.DrawHLine(x+1, y, 3, '─', lc)
		}
		dst.SetColored(x0+4*n, y, right, lc)
	}

	for r := 0; r < n; r++ {
		y := y0 + 2*r + 1
		for c := 0; c <= n; c++ {
			dst.SetColored(x0+4*c, y, '│', lc)
		}
		for c := 0; c < n; c++ {
			g.renderCell(dst, x0+4*c+1, y, C(r, c), ' ', opts)
		}
	}
}

// renderCompact draws the board with an outer frame only, one text row per
// board row.
func (g *Game) renderCompact(dst *core.Screen, x0, y0 int, opts RenderOptions) {
	n := g.grid.Size()
	dst.DrawBox(core.NewRect(x0, y0, 3*n+2, n+2), core.ColorGridLine)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.renderCell(dst, x0+1+3*c, y0+1+r, C(r, c), '·', opts)
		}
	}
}

// renderCell draws the three-column interior of one cell at (x, y).
func (g *Game) renderCell(dst *core.Screen, x, y int, at Coord, blank rune, opts RenderOptions) {
	cell := g.grid.at(at.Row, at.Col)

	glyph, color := blank, core.ColorHint
	switch cell {
	case X:
		glyph, color = 'X', core.ColorMarkerX
	case O:
		glyph, color = 'O', core.ColorMarkerO
	}
	if g.result.InLine(at) {
		color = core.ColorWinLine
	}

	left, right, edge := ' ', ' ', color
	if opts.ShowCursor && opts.Cursor == at {
		left, right, edge = '[', ']', core.ColorCursor
	}
	dst.SetColored(x, y, left, edge)
	dst.SetColored(x+2, y, right, edge)
	dst.SetColored(x+1, y, glyph, color)
}

// renderHistory lists "Go to move #K" entries, scrolled to keep the shown
// snapshot visible. Snapshot 0 is not listed.
func (g *Game) renderHistory(dst *core.Screen, x, y, height int) {
	dst.DrawText(x, y, "Game history:")
	if g.history.Len() <= 1 {
		dst.DrawTextColored(x, y+1, "(no moves yet)", core.ColorHint)
		return
	}

	rows := height - 1
	moves := g.history.Len() - 1
	cursor := g.history.Cursor()

	first := 1
	if moves > rows {
		first = core.Clamp(cursor-rows/2, 1, moves-rows+1)
	}
	for i := 0; i < rows && first+i <= moves; i++ {
		k := first + i
		prefix, color := "  ", core.ColorDefault
		if k == cursor {
			prefix, color = "> ", core.ColorHighlight
		}
		dst.DrawTextColored(x, y+1+i, fmt.Sprintf("%sGo to move #%d", prefix, k), color)
	}
}
