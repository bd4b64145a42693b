package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tabsresp/internal/breakpoint"
	"tabsresp/internal/config"
	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/internal/tui/components"
	"tabsresp/pkg/logging"
)

const (
	subsystem = "TUI"

	// MaxActivityLogLines bounds the in-memory activity log.
	MaxActivityLogLines = 200

	logPaneHeight      = 8
	statusMessageDelay = 3 * time.Second
)

// Model is the Bubble Tea model presenting one enhanced document.
type Model struct {
	Width  int
	Height int

	title    string
	doc      *dom.Document
	opts     tabsresp.Options
	widget   *tabsresp.Widget
	matcher  *breakpoint.Matcher
	settings config.GlobalSettings
	watcher  *FileWatcher

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	hits     []hitRegion

	showLog     bool
	activityLog []string
	logChannel  <-chan logging.LogEntry

	status     string
	statusType components.MessageType
	statusSeq  int

	copyToClipboard func(string) error
}

// NewModel enhances doc with the widget options in cfg and subscribes the
// widget to a breakpoint matcher driven by the terminal width.
func NewModel(title string, doc *dom.Document, cfg config.TabsrespConfig, logChannel <-chan logging.LogEntry) *Model {
	m := &Model{
		title:           title,
		opts:            cfg.Widget.Options(),
		settings:        cfg.GlobalSettings,
		keys:            DefaultKeyMap(),
		matcher:         breakpoint.NewMatcher(),
		help:            help.New(),
		viewport:        viewport.New(0, 0),
		logChannel:      logChannel,
		copyToClipboard: clipboard.WriteAll,
	}
	m.setDocument(doc)
	logging.Debug(subsystem, "model created for %q with %d container(s)", title, len(m.widget.Containers()))
	return m
}

// WithWatcher makes the model replace its document whenever fw reports a
// change.
func (m *Model) WithWatcher(fw *FileWatcher) *Model {
	m.watcher = fw
	return m
}

// Init starts draining the log channel and, if set, the file watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(listenForLogEntries(m.logChannel), m.watcher.next())
}

// setDocument enhances doc with a new widget. The previous widget stops
// following the breakpoint, and once a width is known the new one is
// brought up to date immediately.
func (m *Model) setDocument(doc *dom.Document) {
	if m.widget != nil {
		m.matcher.Unregister(m.widget.Options().ResponsiveQuery())
	}
	m.doc = doc
	m.widget = tabsresp.New(doc, m.opts, m.matcher)
	if px, known := m.matcher.Width(); known {
		m.matcher.Evaluate(px)
	}
}

// Widget exposes the widget driven by this model.
func (m *Model) Widget() *tabsresp.Widget { return m.widget }

// Document exposes the document shown by this model.
func (m *Model) Document() *dom.Document { return m.doc }

// setStatus shows message in the status bar and schedules it to be cleared.
// Later messages cancel the pending clear of earlier ones.
func (m *Model) setStatus(message string, msgType components.MessageType) tea.Cmd {
	m.statusSeq++
	m.status = message
	m.statusType = msgType
	seq := m.statusSeq
	return tea.Tick(statusMessageDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) appendLog(entry logging.LogEntry) {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, entry.Err)
	}
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > MaxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-MaxActivityLogLines:]
	}
}
