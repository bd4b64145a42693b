package tabsresp

import (
	"errors"
	"fmt"

	"tabsresp/internal/dom"
)

// ErrPanelNotFound means a toggle's aria-controls does not name an element
// in the document. It points at broken markup and is not recovered.
var ErrPanelNotFound = errors.New("controlled panel not found")

func (in *instance) panelFor(t toggle) (*dom.Element, error) {
	id := t.controls()
	panel := in.w.doc.GetElementByID(id)
	if panel == nil {
		return nil, fmt.Errorf("%s %q controls %q: %w", t.kind, t.el.ID(), id, ErrPanelNotFound)
	}
	return panel, nil
}

// hideAll closes every panel in scope and takes every toggle in scope out of
// the tab order.
func (in *instance) hideAll(scope *dom.Element) {
	for _, panel := range in.panels(scope) {
		panel.SetAttribute("aria-hidden", "true")
	}
	for _, t := range in.toggles(scope) {
		t.el.SetAttribute("tabindex", "-1")
		t.el.SetAttribute("aria-selected", "false")
		if t.kind == kindHeader {
			t.el.SetAttribute("aria-expanded", "false")
		}
	}
}

func (in *instance) hide(t toggle) error {
	panel, err := in.panelFor(t)
	if err != nil {
		return err
	}
	panel.SetAttribute("aria-hidden", "true")
	t.el.SetAttribute("aria-selected", "false")
	if t.kind == kindHeader {
		t.el.SetAttribute("aria-expanded", "false")
	}
	return nil
}

func (in *instance) show(t toggle, giveFocus bool) error {
	panel, err := in.panelFor(t)
	if err != nil {
		return err
	}
	panel.SetAttribute("aria-hidden", "false")
	t.el.SetAttribute("aria-selected", "true")
	t.el.SetAttribute("tabindex", "0")

	if t.kind == kindHeader {
		t.el.SetAttribute("aria-expanded", "true")
		if in.w.mode == ModeAccordion {
			// Keep a single roving tab stop even when several panels are open.
			in.rove(in.siblingHeaders(t.el), t.el)
		}
	}

	// Accordion headers are focused by keyboard navigation only.
	if giveFocus && t.kind == kindTab {
		t.el.Focus()
	}
	return nil
}

// toggle activates t. An open accordion panel closes again; otherwise single
// select contexts close their other panels before t's panel opens.
func (in *instance) toggle(t toggle, giveFocus bool) error {
	if in.w.mode == ModeAccordion && t.selected() {
		return in.hide(t)
	}

	if in.w.mode == ModeTabs || !in.w.multiselectable {
		in.hideAll(in.scopeOf(t))
	}

	return in.show(t, giveFocus)
}

// scopeOf returns the element a single-select activation of t is confined
// to: the element holding t's tab list for tabs, the header's parent for
// accordion headers.
func (in *instance) scopeOf(t toggle) *dom.Element {
	var scope *dom.Element
	if in.w.mode == ModeTabs && t.kind == kindTab {
		if list := t.el.Closest(in.w.opts.TablistSelector); list != nil {
			scope = list.Parent()
		}
	} else {
		scope = t.el.Parent()
	}
	if scope == nil || !in.container.Contains(scope) {
		return in.container
	}
	return scope
}
