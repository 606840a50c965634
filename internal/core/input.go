package core

// Action represents a semantic game action, abstracted from physical key presses.
// Presentation layers translate their own input into actions so board
// navigation behaves the same in every front end.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // move the board cursor up
	ActionDown                  // move the board cursor down
	ActionLeft                  // move the board cursor left
	ActionRight                 // move the board cursor right
	ActionPlace                 // place a marker under the cursor
	ActionHistoryBack           // rewind one snapshot
	ActionHistoryForward        // step forward one snapshot
	ActionResume                // let the computer continue from a rewound point
	ActionReset                 // start over on the same board size
	ActionSizeUp                // grow the board by one
	ActionSizeDown              // shrink the board by one
	ActionBack                  // return to the setup menu
	ActionHelp                  // toggle full help
	ActionQuit                  // exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionHistoryBack:
		return "HistoryBack"
	case ActionHistoryForward:
		return "HistoryForward"
	case ActionResume:
		return "Resume"
	case ActionReset:
		return "Reset"
	case ActionSizeUp:
		return "SizeUp"
	case ActionSizeDown:
		return "SizeDown"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
