package tictactoe

import "errors"

// Errors returned by engine operations.
var (
	ErrOutOfRange           = errors.New("tictactoe: coordinate out of range")
	ErrInvalidHistoryIndex  = errors.New("tictactoe: invalid history index")
	ErrUnsupportedBoardSize = errors.New("tictactoe: unsupported board size")
)
