package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tabsresp/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type clearStatusMsg struct {
	seq int
}

// listenForLogEntries waits for the next log entry. It returns nil once the
// channel is closed, ending the listen loop.
func listenForLogEntries(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
