package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

func TestSetupPreselectsSize(t *testing.T) {
	m := NewSetupModel(config.Default().Board, Selection{Mode: match.HumanVsComputer, Size: 6}, true, true, 80, 24)

	if m.modeCursor != 1 {
		t.Errorf("modeCursor = %d, expected the computer entry", m.modeCursor)
	}
	if got := m.sizes[m.table.Cursor()]; got != 6 {
		t.Errorf("table cursor on %d, expected 6", got)
	}
}

func TestSetupSizeOnly(t *testing.T) {
	m := NewSetupModel(config.Default().Board, Selection{Mode: match.HumanVsHuman, Size: 3}, false, true, 80, 24)
	if m.stage != stageSize {
		t.Fatal("mode stage should be skipped")
	}
	if !strings.Contains(m.View(), "3x3") {
		t.Error("size table should list 3x3")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(SetupModel).Selected()
	if sel == nil || sel.Size != 4 {
		t.Fatalf("Selected() = %+v, expected size 4", sel)
	}
}

func TestSetupBackReturnsToMode(t *testing.T) {
	m := NewSetupModel(config.Default().Board, Selection{Size: 3}, true, true, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(SetupModel).stage != stageMode {
		t.Error("esc in the size table should return to the mode list")
	}
	if next.(SetupModel).Selected() != nil {
		t.Error("nothing should be selected yet")
	}
}

func TestSetupNothingToAsk(t *testing.T) {
	m := NewSetupModel(config.Default().Board, Selection{Size: 5}, false, false, 80, 24)
	if sel := m.Selected(); sel == nil || sel.Size != 5 {
		t.Errorf("Selected() = %+v, expected immediate selection", sel)
	}
}
