package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/internal/tui/components"
	"tabsresp/internal/tui/design"
	"tabsresp/internal/tui/utils"
)

const (
	tabStopGutter = "› "
	plainGutter   = "  "
	panelIndent   = 2
)

// hitRegion is the clickable span of a rendered toggle, in body coordinates.
type hitRegion struct {
	line   int
	x0, x1 int
	el     *dom.Element
}

func (h hitRegion) contains(x, line int) bool {
	return line == h.line && x >= h.x0 && x < h.x1
}

// canvas collects rendered lines together with their hit regions.
type canvas struct {
	width int
	lines []string
	hits  []hitRegion
}

func (c *canvas) add(block string) {
	c.lines = append(c.lines, strings.Split(block, "\n")...)
}

func (c *canvas) addToggleLine(line string, el *dom.Element) {
	c.hits = append(c.hits, hitRegion{line: len(c.lines), x0: 0, x1: lipgloss.Width(line), el: el})
	c.lines = append(c.lines, line)
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// renderDocument draws every container of w the way a browser would show it
// with the widget's stylesheet: accordion containers carry role="tablist",
// anything else is laid out as tabs.
func renderDocument(w *tabsresp.Widget, width int) (string, []hitRegion) {
	c := &canvas{width: width}
	containers := w.Containers()
	if len(containers) == 0 {
		c.add(design.DimStyle.Render(utils.TruncateString("no container matches "+w.Options().Selector, width)))
		return c.String(), nil
	}

	opts := w.Options()
	for i, container := range containers {
		if i > 0 {
			c.add("")
		}
		if attrIs(container, "role", "tablist") {
			renderAccordion(c, container, opts)
		} else {
			renderTabs(c, container, opts)
		}
	}
	return c.String(), c.hits
}

func renderAccordion(c *canvas, container *dom.Element, opts tabsresp.Options) {
	doc := container.Document()
	for _, header := range container.QuerySelectorAll(opts.HeaderSelector) {
		expanded := attrIs(header, "aria-expanded", "true")

		style := design.AccordionHeaderStyle
		marker := "▸ "
		if expanded {
			style = design.AccordionHeaderExpandedStyle
			marker = "▾ "
		}
		if header.Focused() {
			style = withFocus(style)
		}
		gutter := plainGutter
		if attrIs(header, "tabindex", "0") {
			gutter = tabStopGutter
		}

		label := utils.TruncateString(marker+header.Text(), c.width-lipgloss.Width(gutter))
		c.addToggleLine(gutter+style.Render(label), header)

		if !expanded {
			continue
		}
		controls, _ := header.Attr("aria-controls")
		panel := doc.GetElementByID(controls)
		if panel == nil || !attrIs(panel, "aria-hidden", "false") {
			continue
		}
		c.add(components.NewPanel("").
			WithContent(panel.Text()).
			WithWidth(c.width).
			WithIndent(panelIndent).
			Render())
	}
}

func renderTabs(c *canvas, container *dom.Element, opts tabsresp.Options) {
	var (
		bar strings.Builder
		x   int
	)
	flush := func() {
		if bar.Len() > 0 {
			c.lines = append(c.lines, bar.String())
			bar.Reset()
			x = 0
		}
	}

	for _, tab := range container.QuerySelectorAll(opts.TabSelector()) {
		style := design.TabStyle
		if attrIs(tab, "aria-selected", "true") {
			style = design.TabSelectedStyle
		}
		if tab.Focused() {
			style = withFocus(style)
		}
		rendered := style.Render(utils.TruncateString(tab.Text(), c.width-style.GetHorizontalFrameSize()))
		w := lipgloss.Width(rendered)

		if x > 0 && x+design.TabGap+w > c.width {
			flush()
		}
		if x > 0 {
			bar.WriteString(strings.Repeat(" ", design.TabGap))
			x += design.TabGap
		}
		c.hits = append(c.hits, hitRegion{line: len(c.lines), x0: x, x1: x + w, el: tab})
		bar.WriteString(rendered)
		x += w
	}
	flush()

	for _, panel := range container.QuerySelectorAll(opts.PanelSelector) {
		if !attrIs(panel, "aria-hidden", "false") {
			continue
		}
		c.add(components.NewPanel("").
			WithContent(panel.Text()).
			WithWidth(c.width).
			Render())
	}
}

func withFocus(s lipgloss.Style) lipgloss.Style {
	return s.Underline(true).Foreground(design.ColorPrimary)
}

func attrIs(el *dom.Element, name, value string) bool {
	v, ok := el.Attr(name)
	return ok && v == value
}
