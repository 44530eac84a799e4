package core

// Action represents a semantic presenter action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionTogglePlay        // Space - start/pause the simulation
	ActionStep              // S, N - advance one generation while paused
	ActionRandomize         // R - fill at the configured density
	ActionNoise             // Shift+N - fill from a noise field
	ActionClear             // C - kill every cell
	ActionToggleWrap        // W - switch toroidal/bounded topology
	ActionToggleGrid        // G - show/hide grid dots
	ActionFaster            // + - more generations per second
	ActionSlower            // - - fewer generations per second
	ActionMoreSmoke         // ] - longer trails
	ActionLessSmoke         // [ - shorter trails
	ActionUp                // cursor up
	ActionDown              // cursor down
	ActionLeft              // cursor left
	ActionRight             // cursor right
	ActionToggleCell        // Enter, X - flip the cell under the cursor
	ActionEraseCell         // D - kill the cell under the cursor
	ActionNextPattern       // Tab - cycle selected pattern
	ActionStamp             // P - stamp selected pattern at cursor
	ActionGrow              // > - enlarge board, preserving cells
	ActionShrink            // < - shrink board, preserving cells
	ActionSave              // Ctrl+S - save board
	ActionBrowse            // Ctrl+O - open saved boards
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionTogglePlay:  "TogglePlay",
	ActionStep:        "Step",
	ActionRandomize:   "Randomize",
	ActionNoise:       "Noise",
	ActionClear:       "Clear",
	ActionToggleWrap:  "ToggleWrap",
	ActionToggleGrid:  "ToggleGrid",
	ActionFaster:      "Faster",
	ActionSlower:      "Slower",
	ActionMoreSmoke:   "MoreSmoke",
	ActionLessSmoke:   "LessSmoke",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionToggleCell:  "ToggleCell",
	ActionEraseCell:   "EraseCell",
	ActionNextPattern: "NextPattern",
	ActionStamp:       "Stamp",
	ActionGrow:        "Grow",
	ActionShrink:      "Shrink",
	ActionSave:        "Save",
	ActionBrowse:      "Browse",
	ActionHelp:        "Help",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}
