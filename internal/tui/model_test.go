package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabsresp/internal/config"
	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/pkg/logging"
)

const markup = `<html><body>
<div class="fr-tabsresp js-fr-tabsresp" id="widget">
<ul class="fr-tabsresp__tablist js-fr-tabsresp__tablist">
<li><a href="#tabsresp-panel-1" id="tab-1">One</a></li>
<li><a href="#tabsresp-panel-2" id="tab-2">Two</a></li>
<li><a href="#tabsresp-panel-3" id="tab-3">Three</a></li>
</ul>
<h2 class="js-fr-tabsresp__head" id="tabsresp-head-1">One</h2>
<section class="js-fr-tabsresp__panel" id="tabsresp-panel-1">Panel one</section>
<h2 class="js-fr-tabsresp__head" id="tabsresp-head-2">Two</h2>
<section class="js-fr-tabsresp__panel" id="tabsresp-panel-2">Panel two</section>
<h2 class="js-fr-tabsresp__head" id="tabsresp-head-3">Three</h2>
<section class="js-fr-tabsresp__panel" id="tabsresp-panel-3">Panel three</section>
</div>
</body></html>`

// With the default cell width, 120 columns are 960px (tabs) and 60 columns
// are 480px (accordion).
const (
	wide   = 120
	narrow = 60
)

func newTestModel(t *testing.T, src string) *Model {
	t.Helper()
	doc, err := dom.ParseString(src)
	require.NoError(t, err)
	return NewModel("test.html", doc, config.GetDefaultConfig(), nil)
}

func resize(m *Model, width int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func attr(t *testing.T, m *Model, id, name string) string {
	t.Helper()
	el := m.Document().GetElementByID(id)
	require.NotNil(t, el, id)
	v, _ := el.Attr(name)
	return v
}

func activeID(m *Model) string {
	if el := m.Document().ActiveElement(); el != nil {
		return el.ID()
	}
	return ""
}

func clickOn(t *testing.T, m *Model, id string) {
	t.Helper()
	for _, h := range m.hits {
		if h.el.ID() == id {
			m.Update(tea.MouseMsg{
				X:      h.x0,
				Y:      h.line + headerHeight - m.viewport.YOffset,
				Button: tea.MouseButtonLeft,
				Action: tea.MouseActionPress,
			})
			return
		}
	}
	t.Fatalf("no hit region for %q", id)
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := newTestModel(t, markup)
	assert.Contains(t, m.View(), "Initializing")
}

func TestWindowSizeDrivesBreakpoint(t *testing.T) {
	m := newTestModel(t, markup)

	resize(m, wide)
	assert.Equal(t, tabsresp.ModeTabs, m.Widget().Mode())

	resize(m, narrow)
	assert.Equal(t, tabsresp.ModeAccordion, m.Widget().Mode())
	assert.Equal(t, "tablist", attr(t, m, "widget", "role"))

	resize(m, wide)
	assert.Equal(t, tabsresp.ModeTabs, m.Widget().Mode())
}

func TestCellWidthScalesViewport(t *testing.T) {
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	cfg := config.GetDefaultConfig()
	cfg.GlobalSettings.CellWidth = 4
	m := NewModel("", doc, cfg, nil)

	resize(m, wide)
	assert.Equal(t, tabsresp.ModeAccordion, m.Widget().Mode(), "120 columns at 4px are 480px")
}

func TestViewTabs(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)

	view := m.View()
	for _, want := range []string{"test.html", "One", "Two", "Three", "Panel one", "mode: tabs", "960px / 767px"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Panel two")
	assert.NotContains(t, view, "▸")
}

func TestViewAccordion(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, narrow)

	view := m.View()
	assert.Contains(t, view, "▾ One")
	assert.Contains(t, view, "▸ Two")
	assert.Contains(t, view, "Panel one")
	assert.NotContains(t, view, "Panel three")
	assert.Contains(t, view, "mode: accordion")
}

func TestViewWithoutContainers(t *testing.T) {
	m := newTestModel(t, `<html><body><p>plain</p></body></html>`)
	resize(m, wide)
	assert.Contains(t, m.View(), "no container matches .js-fr-tabsresp")
}

func TestTabKeyFollowsTabOrder(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, narrow)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tabsresp-head-1", activeID(m))

	// A single roving tab stop: tab stays on the same header.
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tabsresp-head-1", activeID(m))

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "tabsresp-head-1", activeID(m))
}

func TestAccordionKeyboard(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, narrow)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "tabsresp-head-2", activeID(m))
	assert.Equal(t, "0", attr(t, m, "tabsresp-head-2", "tabindex"))
	assert.Equal(t, "false", attr(t, m, "tabsresp-head-2", "aria-expanded"), "arrows only move focus")

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "true", attr(t, m, "tabsresp-head-2", "aria-expanded"))
	assert.Contains(t, m.View(), "Panel two")

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Equal(t, "false", attr(t, m, "tabsresp-head-2", "aria-expanded"))
}

func TestTabsArrowKeysWithoutFocus(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)
	require.Empty(t, activeID(m))

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "tab-2", activeID(m))
	assert.Equal(t, "true", attr(t, m, "tab-2", "aria-selected"))
	assert.Equal(t, "false", attr(t, m, "tabsresp-panel-2", "aria-hidden"))

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "tab-3", activeID(m), "left wraps to the last tab")
}

func TestResizeCarriesFocusAcrossModes(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "tab-2", activeID(m))

	resize(m, narrow)
	assert.Equal(t, "tabsresp-head-2", activeID(m))
	resize(m, wide)
	assert.Equal(t, "tab-2", activeID(m))
	resize(m, narrow)
	require.Equal(t, "tabsresp-head-2", activeID(m))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	var open []string
	for _, id := range []string{"tabsresp-panel-1", "tabsresp-panel-2", "tabsresp-panel-3"} {
		if attr(t, m, id, "aria-hidden") == "false" {
			open = append(open, id)
		}
	}
	assert.Equal(t, []string{"tabsresp-panel-2"}, open)
	assert.Equal(t, "true", attr(t, m, "tabsresp-head-2", "aria-expanded"))
	assert.Contains(t, m.View(), "Panel two")

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "tabsresp-head-3", activeID(m), "arrows keep working after the switch")
}

func TestClickTab(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)

	clickOn(t, m, "tab-3")
	assert.Equal(t, "tab-3", activeID(m))
	assert.Equal(t, "true", attr(t, m, "tab-3", "aria-selected"))
	assert.Equal(t, "true", attr(t, m, "tabsresp-panel-1", "aria-hidden"))
	assert.Contains(t, m.View(), "Panel three")
}

func TestClickAccordionHeader(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, narrow)

	clickOn(t, m, "tabsresp-head-3")
	assert.Equal(t, "true", attr(t, m, "tabsresp-head-3", "aria-expanded"))
	assert.Equal(t, "tabsresp-head-3", activeID(m))
}

func TestClickOutsideTogglesIsIgnored(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)

	m.Update(tea.MouseMsg{X: wide - 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Empty(t, activeID(m))
	assert.Equal(t, "true", attr(t, m, "tab-1", "aria-selected"))
}

func TestToggleModeKey(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)

	cmd := press(m, runes("m"))
	assert.NotNil(t, cmd)
	assert.Equal(t, tabsresp.ModeAccordion, m.Widget().Mode())
	assert.Equal(t, "mode: accordion", m.status)

	press(m, runes("m"))
	assert.Equal(t, tabsresp.ModeTabs, m.Widget().Mode())
}

func TestCopyHTML(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	press(m, runes("y"))
	assert.Contains(t, copied, `role="tab"`)
	assert.Contains(t, copied, "fr-tabsresp--is-ready")
	assert.Equal(t, "markup copied to clipboard", m.status)

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	press(m, runes("y"))
	assert.Contains(t, m.status, "copy failed: no clipboard")
}

func TestStaleStatusClearIsIgnored(t *testing.T) {
	m := newTestModel(t, markup)
	m.setStatus("first", 0)
	m.setStatus("second", 0)

	m.Update(clearStatusMsg{seq: 1})
	assert.Equal(t, "second", m.status)

	m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, m.status)
}

func TestLogEntries(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	m := NewModel("", doc, config.GetDefaultConfig(), ch)

	entry := logging.LogEntry{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     logging.LevelWarn,
		Subsystem: "TabsResp",
		Message:   "hello",
		Err:       errors.New("boom"),
	}
	_, cmd := m.Update(NewLogEntryMsg{Entry: entry})
	require.NotNil(t, cmd, "listening continues")
	require.Len(t, m.activityLog, 1)
	assert.Equal(t, "12:00:00.000 [WARN] [TabsResp] hello -- Error: boom", m.activityLog[0])

	ch <- entry
	assert.Equal(t, NewLogEntryMsg{Entry: entry}, cmd())

	for i := 0; i < MaxActivityLogLines+10; i++ {
		m.appendLog(entry)
	}
	assert.Len(t, m.activityLog, MaxActivityLogLines)

	resize(m, wide)
	press(m, runes("L"))
	assert.Contains(t, m.View(), "hello")
}

func TestListenForLogEntries(t *testing.T) {
	assert.Nil(t, listenForLogEntries(nil))

	ch := make(chan logging.LogEntry)
	close(ch)
	cmd := listenForLogEntries(ch)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, markup)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, markup)
	resize(m, wide)
	short := m.View()

	press(m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}
