package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings of the simulator screen.
// It translates Bubble Tea key messages into presenter actions, which keeps
// bindings in one place and makes them testable.
type KeyMap struct {
	Play      key.Binding
	Step      key.Binding
	Randomize key.Binding
	Noise     key.Binding
	Clear     key.Binding
	Wrap      key.Binding
	Grid      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	MoreSmoke key.Binding
	LessSmoke key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Erase     key.Binding
	Pattern   key.Binding
	Stamp     key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Save      key.Binding
	Browse    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Step:      key.NewBinding(key.WithKeys("s", "n"), key.WithHelp("s/n", "step")),
		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Noise:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "noise fill")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Wrap:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap")),
		Grid:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		MoreSmoke: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more smoke")),
		LessSmoke: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "less smoke")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle:    key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter/x", "toggle cell")),
		Erase:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "erase cell")),
		Pattern:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pattern")),
		Stamp:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stamp")),
		Grow:      key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "grow")),
		Shrink:    key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "shrink")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Browse:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "boards")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Step, k.Randomize, k.Pattern, k.Stamp, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Step, k.Randomize, k.Noise, k.Clear},
		{k.Wrap, k.Grid, k.Faster, k.Slower, k.MoreSmoke, k.LessSmoke},
		{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Erase},
		{k.Pattern, k.Stamp, k.Grow, k.Shrink},
		{k.Save, k.Browse, k.Help, k.Quit},
	}
}

// Action translates a key message to a presenter action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Play, core.ActionTogglePlay},
		{k.Step, core.ActionStep},
		{k.Randomize, core.ActionRandomize},
		{k.Noise, core.ActionNoise},
		{k.Clear, core.ActionClear},
		{k.Wrap, core.ActionToggleWrap},
		{k.Grid, core.ActionToggleGrid},
		{k.Faster, core.ActionFaster},
		{k.Slower, core.ActionSlower},
		{k.MoreSmoke, core.ActionMoreSmoke},
		{k.LessSmoke, core.ActionLessSmoke},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Toggle, core.ActionToggleCell},
		{k.Erase, core.ActionEraseCell},
		{k.Pattern, core.ActionNextPattern},
		{k.Stamp, core.ActionStamp},
		{k.Grow, core.ActionGrow},
		{k.Shrink, core.ActionShrink},
		{k.Save, core.ActionSave},
		{k.Browse, core.ActionBrowse},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
