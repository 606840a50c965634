package match

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

func newController(t *testing.T, size int, mode Mode) *Controller {
	t.Helper()
	c, err := NewController(size, Options{Mode: mode, Seed: 1})
	if err != nil {
		t.Fatalf("NewController(%d): %v", size, err)
	}
	return c
}

func mustSubmit(t *testing.T, c *Controller, row, col int) {
	t.Helper()
	out, err := c.Submit(row, col)
	if err != nil || !out.Accepted {
		t.Fatalf("Submit(%d, %d) = %+v, %v", row, col, out, err)
	}
}

func TestNewControllerRejectsSize(t *testing.T) {
	if _, err := NewController(2, Options{}); !errors.Is(err, tictactoe.ErrUnsupportedBoardSize) {
		t.Errorf("error = %v, expected ErrUnsupportedBoardSize", err)
	}
}

func TestFriendModeNeverSchedules(t *testing.T) {
	c := newController(t, 3, HumanVsHuman)
	mustSubmit(t, c, 0, 0)

	if _, ok := c.OpponentDue(); ok {
		t.Error("friend mode should not schedule computer moves")
	}
	mustSubmit(t, c, 1, 1)
	if c.Game().Turn() != tictactoe.X {
		t.Error("second human should have played O")
	}
}

func TestComputerRepliesToHuman(t *testing.T) {
	c := newController(t, 3, HumanVsComputer)

	if _, ok := c.OpponentDue(); ok {
		t.Fatal("nothing is due before X moves")
	}
	mustSubmit(t, c, 0, 0)

	tok, ok := c.OpponentDue()
	if !ok {
		t.Fatal("computer move should be due after X")
	}
	out, played := c.PlayOpponent(tok)
	if !played {
		t.Fatal("PlayOpponent() with a fresh token should play")
	}
	if out.HistoryIndex != 2 {
		t.Errorf("HistoryIndex = %d, expected 2", out.HistoryIndex)
	}
	if v, _ := c.Game().Grid().Get(1, 1); v != tictactoe.O {
		t.Errorf("computer should take the center, (1,1) = %v", v)
	}
	if c.Game().Turn() != tictactoe.X {
		t.Error("turn should return to the human")
	}
}

func TestHumanCannotMoveForComputer(t *testing.T) {
	c := newController(t, 3, HumanVsComputer)
	mustSubmit(t, c, 0, 0)

	if _, err := c.Submit(2, 2); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("error = %v, expected ErrNotYourTurn", err)
	}
	if c.Game().EmptyCells().Len() != 8 {
		t.Error("refused move changed the board")
	}
}

func TestStaleTokensAreIgnored(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(t *testing.T, c *Controller)
	}{
		{"reset", func(t *testing.T, c *Controller) { c.Reset() }},
		{"resize", func(t *testing.T, c *Controller) {
			if _, err := c.Resize(4); err != nil {
				t.Fatal(err)
			}
		}},
		{"rewind", func(t *testing.T, c *Controller) {
			if _, err := c.Rewind(0); err != nil {
				t.Fatal(err)
			}
		}},
		{"mode switch", func(t *testing.T, c *Controller) { c.SetMode(HumanVsComputer) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t, 3, HumanVsComputer)
			mustSubmit(t, c, 0, 0)
			tok, ok := c.OpponentDue()
			if !ok {
				t.Fatal("expected a due move")
			}

			tc.cancel(t, c)
			before := c.Game().EmptyCells().Len()

			if _, played := c.PlayOpponent(tok); played {
				t.Error("stale token played a move")
			}
			if c.Game().EmptyCells().Len() != before {
				t.Error("stale token changed the board")
			}
		})
	}
}

func TestTokenIsSingleUse(t *testing.T) {
	c := newController(t, 3, HumanVsComputer)
	mustSubmit(t, c, 0, 0)
	tok, _ := c.OpponentDue()

	if _, played := c.PlayOpponent(tok); !played {
		t.Fatal("first use should play")
	}
	mustSubmit(t, c, 2, 2)
	if _, played := c.PlayOpponent(tok); played {
		t.Error("reused token played a second move")
	}
}

func TestRewoundBoardWaitsForResume(t *testing.T) {
	c := newController(t, 3, HumanVsComputer)
	mustSubmit(t, c, 0, 0)
	tok, _ := c.OpponentDue()
	c.PlayOpponent(tok)
	mustSubmit(t, c, 2, 2)

	if _, err := c.Rewind(1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.OpponentDue(); ok {
		t.Fatal("computer should not move on a rewound board until resumed")
	}

	c.Resume()
	tok, ok := c.OpponentDue()
	if !ok {
		t.Fatal("computer should move after Resume")
	}
	if _, played := c.PlayOpponent(tok); !played {
		t.Fatal("resumed move not played")
	}
	if n := len(c.Game().HistoryIndices()); n != 3 {
		t.Errorf("history has %d entries, expected 3 after truncation", n)
	}
	if c.Game().Rewound() {
		t.Error("board should no longer be rewound")
	}
}

func TestRewindToLatestNeedsNoResume(t *testing.T) {
	c := newController(t, 3, HumanVsComputer)
	mustSubmit(t, c, 0, 0)

	if _, err := c.Rewind(0); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rewind(1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.OpponentDue(); !ok {
		t.Error("latest snapshot with O to move should be due")
	}
}

func TestNoComputerMoveAfterWin(t *testing.T) {
	c := newController(t, 3, HumanVsHuman)
	for _, m := range []tictactoe.Coord{tictactoe.C(0, 0), tictactoe.C(1, 0), tictactoe.C(0, 1), tictactoe.C(1, 1), tictactoe.C(0, 2)} {
		mustSubmit(t, c, m.Row, m.Col)
	}
	c.mode = HumanVsComputer
	if _, ok := c.OpponentDue(); ok {
		t.Error("finished game should not schedule")
	}
}

func TestControllerDelay(t *testing.T) {
	c, err := NewController(3, Options{Delay: -1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Delay() != 0 {
		t.Errorf("Delay() = %v, expected negative delays clamped to 0", c.Delay())
	}
}
