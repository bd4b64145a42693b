package tabsresp

import (
	"strconv"
	"strings"
)

// applyAccessibility sets the roles and properties of the current mode on
// the container and everything inside it. Applying twice is the same as
// applying once.
func (in *instance) applyAccessibility() {
	o := in.w.opts
	c := in.container

	if in.w.mode == ModeAccordion {
		c.SetAttribute("role", "tablist")
		c.SetAttribute("aria-multiselectable", strconv.FormatBool(in.w.multiselectable))
	}

	for _, panel := range in.panels(c) {
		panel.SetAttribute("role", "tabpanel")
		panel.SetAttribute("tabindex", "0")
		if in.w.mode == ModeAccordion {
			panel.SetAttribute("aria-labelledby", panelToHeaderID(o, panel.ID()))
		}
	}

	for _, list := range in.tabLists(c) {
		list.SetAttribute("role", "tablist")
	}

	for _, item := range in.tabListItems(c) {
		item.SetAttribute("role", "presentation")
	}

	for _, tab := range in.tabs(c) {
		tab.SetAttribute("role", "tab")
		tab.SetAttribute("aria-controls", strings.TrimPrefix(tab.Hash(), "#"))
	}

	// Headers are made focusable instead of wrapping their content in buttons.
	for _, header := range in.headers(c) {
		header.SetAttribute("role", "tab")
		header.SetAttribute("aria-controls", headerToPanelID(o, header.ID()))
		header.SetAttribute("tabindex", "0")
	}
}

// removeAccessibility strips every attribute the widget may have written,
// whichever mode wrote it.
func (in *instance) removeAccessibility() {
	c := in.container

	c.RemoveAttribute("role")
	c.RemoveAttribute("aria-multiselectable")

	for _, panel := range in.panels(c) {
		panel.RemoveAttribute("role")
		panel.RemoveAttribute("aria-labelledby")
		panel.RemoveAttribute("aria-hidden")
		panel.RemoveAttribute("tabindex")
	}

	for _, list := range in.tabLists(c) {
		list.RemoveAttribute("role")
	}

	for _, item := range in.tabListItems(c) {
		item.RemoveAttribute("role")
	}

	for _, t := range in.toggles(c) {
		t.el.RemoveAttribute("role")
		t.el.RemoveAttribute("aria-controls")
		t.el.RemoveAttribute("aria-selected")
		t.el.RemoveAttribute("aria-expanded")
		t.el.RemoveAttribute("tabindex")
	}
}
