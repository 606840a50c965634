// Package match runs one tic-tac-toe game for a presentation layer: it
// knows who is playing, schedules the computer's reply and cancels that
// reply when the board it was computed for goes away.
package match

import (
	"errors"
	"fmt"
	"strings"
)

// Mode defines who plays O.
type Mode int

const (
	// HumanVsHuman is two people sharing one board.
	HumanVsHuman Mode = iota

	// HumanVsComputer is a person playing X against the heuristic opponent.
	HumanVsComputer
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("match: unknown mode")

// String returns the stable identifier used in config, flags and JSON.
func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "friend"
	case HumanVsComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Label returns a human-readable name for menus and headers.
func (m Mode) Label() string {
	switch m {
	case HumanVsHuman:
		return "Play with a friend"
	case HumanVsComputer:
		return "Play with the computer"
	default:
		return "Unknown"
	}
}

// ParseMode accepts "friend"/"human" and "computer"/"cpu", case-insensitively.
// The empty string selects HumanVsHuman.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "friend", "human", "pvp":
		return HumanVsHuman, nil
	case "computer", "cpu", "ai":
		return HumanVsComputer, nil
	default:
		return HumanVsHuman, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{HumanVsHuman, HumanVsComputer}
}
