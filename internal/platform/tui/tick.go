// Package tui provides the Bubble Tea front end for tic-tac-toe: the mode
// and size selector, the game screen and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

// opponentMoveMsg fires when the computer's display delay has elapsed.
type opponentMoveMsg struct {
	token match.Token
}

// opponentCmd waits delay and then delivers the token back to the model,
// which plays the move only if the token is still current.
func opponentCmd(delay time.Duration, tok match.Token) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return opponentMoveMsg{token: tok}
	})
}
