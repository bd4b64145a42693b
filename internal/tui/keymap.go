package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabsresp/internal/dom"
)

// KeyMap defines the keybindings for the application.
// Widget keys are turned into keydown events on the focused toggle.
type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Space      key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	ToggleMode key.Binding
	CopyHTML   key.Binding
	ToggleLog  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next toggle"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous toggle"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/close"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "open/close"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "switch tabs/accordion"),
		),
		CopyHTML: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy markup"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter, k.Space},
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageUp, k.PageDown, k.ToggleMode, k.CopyHTML},
		{k.ToggleLog, k.Help, k.Quit},
	}
}

// ShortHelp returns a minimal set of bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.ToggleMode, k.Help, k.Quit}
}

// keyCode maps a widget key to the key code its keydown event carries.
func (k KeyMap) keyCode(msg tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(msg, k.Enter):
		return dom.KeyEnter, true
	case key.Matches(msg, k.Space):
		return dom.KeySpace, true
	case key.Matches(msg, k.Left):
		return dom.KeyLeft, true
	case key.Matches(msg, k.Up):
		return dom.KeyUp, true
	case key.Matches(msg, k.Right):
		return dom.KeyRight, true
	case key.Matches(msg, k.Down):
		return dom.KeyDown, true
	}
	return 0, false
}
