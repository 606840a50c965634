package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightMagenta
	ColorGray
)

// Roles used by the board renderer.
const (
	ColorMarkerX   = ColorBrightCyan
	ColorMarkerO   = ColorBrightMagenta
	ColorWinLine   = ColorBrightGreen
	ColorCursor    = ColorBrightYellow
	ColorGridLine  = ColorGray
	ColorHint      = ColorGray
	ColorHighlight = ColorYellow
	ColorWarning   = ColorRed
)
