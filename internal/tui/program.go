package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for m. Mouse reporting is always
// on so that toggles can be clicked.
func NewProgram(m *Model, altScreen bool) *tea.Program {
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tea.NewProgram(m, opts...)
}
