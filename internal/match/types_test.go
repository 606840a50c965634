package match

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", HumanVsHuman, false},
		{"friend", HumanVsHuman, false},
		{"Human", HumanVsHuman, false},
		{"computer", HumanVsComputer, false},
		{" CPU ", HumanVsComputer, false},
		{"robot", HumanVsHuman, true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if tc.err {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) error = %v, expected ErrUnknownMode", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseMode(%q) = %v, %v; expected %v", tc.in, got, err, tc.want)
		}
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
		if m.Label() == "Unknown" {
			t.Errorf("%v has no label", m)
		}
	}
}
