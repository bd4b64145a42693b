package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsresp/internal/tui/components"
	"tabsresp/internal/tui/design"
	"tabsresp/internal/tui/utils"
)

// View renders the UI according to the current model state.
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return design.DimStyle.Render("Initializing... (waiting for window size)")
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
	}
	if m.showLog {
		sections = append(sections, m.renderLog())
	}
	sections = append(sections, m.renderStatusBar(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	title := "tabsresp"
	if m.title != "" {
		title += "  " + m.title
	}
	return design.HeaderStyle.
		Width(m.Width).
		MaxWidth(m.Width).
		Render(utils.TruncateString(title, m.Width-design.HeaderStyle.GetHorizontalFrameSize()))
}

func (m *Model) renderStatusBar() string {
	left := "mode: " + string(m.widget.Mode())
	if active := m.doc.ActiveElement(); active != nil {
		left += "  focus: " + describe(active.Tag(), active.ID())
	}

	right := fmt.Sprintf("%dpx", m.settings.PixelWidth(m.Width))
	if bp := m.widget.Options().ResponsiveBreakpoint; bp > 0 {
		right += fmt.Sprintf(" / %dpx", bp)
	}

	return components.NewStatusBar(m.Width).
		WithLeftText(left).
		WithRightText(right).
		WithMessage(m.status, m.statusType).
		Render()
}

// renderLog shows the newest activity log lines that fit the pane.
func (m *Model) renderLog() string {
	style := design.PanelStyle
	inner := m.Width - style.GetHorizontalFrameSize()
	rows := logPaneHeight - style.GetVerticalFrameSize()

	lines := m.activityLog
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	rendered := make([]string, 0, rows)
	for _, line := range lines {
		rendered = append(rendered, logStyle(line).Render(utils.TruncateString(line, inner)))
	}
	for len(rendered) < rows {
		rendered = append(rendered, "")
	}

	return style.
		Width(m.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(rendered, "\n"))
}

func logStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}

func describe(tag, id string) string {
	if id == "" {
		return tag
	}
	return tag + "#" + id
}
