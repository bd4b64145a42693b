package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsresp/internal/tui/design"
	"tabsresp/internal/tui/utils"
)

// Panel renders the body of one open content panel.
type Panel struct {
	Title   string
	Content string
	Width   int
	Focused bool
	Indent  int
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithWidth sets the outer width, border included.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithIndent shifts the panel right, used below accordion headers.
func (p *Panel) WithIndent(indent int) *Panel {
	p.Indent = indent
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel. Height follows the wrapped content.
func (p *Panel) Render() string {
	width := p.Width - p.Indent
	if width < design.MinPanelWidth {
		width = design.MinPanelWidth
	}

	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, design.TitleStyle.Render(utils.TruncateString(p.Title, inner)))
	}
	if p.Content != "" {
		lines = append(lines, utils.WrapText(p.Content, inner))
	}

	out := style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
	if p.Indent > 0 {
		out = lipgloss.NewStyle().PaddingLeft(p.Indent).Render(out)
	}
	return out
}
