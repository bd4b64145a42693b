package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/internal/tui/components"
	"tabsresp/pkg/logging"
)

const (
	headerHeight = 1
	statusHeight = 1
	wheelStep    = 3
)

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		px := m.settings.PixelWidth(msg.Width)
		logging.Debug(subsystem, "window %dx%d, viewport %dpx", msg.Width, msg.Height, px)
		m.matcher.Evaluate(px)

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case NewLogEntryMsg:
		m.appendLog(msg.Entry)
		return m, listenForLogEntries(m.logChannel)

	case documentChangedMsg:
		m.setDocument(msg.doc)
		logging.Info(subsystem, "document reloaded with %d container(s)", len(m.widget.Containers()))
		cmd = tea.Batch(m.setStatus("document reloaded", components.MessageSuccess), m.watcher.next())

	case watchErrorMsg:
		logging.Error(subsystem, msg.err, "reloading document")
		cmd = tea.Batch(m.setStatus("reload failed: "+msg.err.Error(), components.MessageError), m.watcher.next())

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	m.layout()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = !m.showLog
	case key.Matches(msg, m.keys.Tab):
		dom.MoveFocus(m.widget.TabStops(), 1)
	case key.Matches(msg, m.keys.ShiftTab):
		dom.MoveFocus(m.widget.TabStops(), -1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.ToggleMode):
		next := tabsresp.ModeAccordion
		if m.widget.Mode() == tabsresp.ModeAccordion {
			next = tabsresp.ModeTabs
		}
		m.widget.ToggleMode(next)
		return m.setStatus("mode: "+string(m.widget.Mode()), components.MessageInfo), false
	case key.Matches(msg, m.keys.CopyHTML):
		return m.copyHTML(), false
	default:
		if code, ok := m.keys.keyCode(msg); ok {
			m.sendKeydown(code)
		}
	}
	return nil, false
}

// sendKeydown dispatches a keydown to the focused element, focusing the first
// tab stop when nothing has focus yet. Unhandled up/down keys scroll.
func (m *Model) sendKeydown(code int) {
	target := m.doc.ActiveElement()
	if target == nil {
		stops := m.widget.TabStops()
		if len(stops) == 0 {
			return
		}
		target = stops[0]
		target.Focus()
	}

	if !target.Dispatch(dom.NewKeydown(code)) {
		return
	}
	switch code {
	case dom.KeyUp:
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case dom.KeyDown:
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelStep)
		return
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelStep)
		return
	case tea.MouseButtonLeft:
	default:
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	line := msg.Y - headerHeight + m.viewport.YOffset
	for _, h := range m.hits {
		if h.contains(msg.X, line) {
			h.el.Focus()
			h.el.Dispatch(dom.NewClick())
			return
		}
	}
}

func (m *Model) copyHTML() tea.Cmd {
	markup, err := m.doc.HTML()
	if err == nil {
		err = m.copyToClipboard(markup)
	}
	if err != nil {
		logging.Error(subsystem, err, "copying markup")
		return m.setStatus("copy failed: "+err.Error(), components.MessageError)
	}
	logging.Info(subsystem, "copied %d bytes of markup", len(markup))
	return m.setStatus("markup copied to clipboard", components.MessageSuccess)
}

// layout sizes the body viewport and re-renders the document into it.
func (m *Model) layout() {
	width := m.Width
	if width <= 0 {
		return
	}

	bodyHeight := m.Height - headerHeight - statusHeight - lipgloss.Height(m.help.View(m.keys))
	if m.showLog {
		bodyHeight -= logPaneHeight
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = bodyHeight

	content, hits := renderDocument(m.widget, width)
	m.viewport.SetContent(content)
	m.hits = hits
}
