package tabsresp

import (
	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

// handleKeydown maps enter/space and the arrow keys on a focused toggle to
// widget actions. Handled keys have their default action suppressed.
func (in *instance) handleKeydown(ev *dom.Event) {
	current, ok := in.toggleFor(ev.CurrentTarget)
	if !ok {
		return
	}

	var err error
	switch ev.KeyCode {
	case dom.KeyEnter, dom.KeySpace:
		err = in.toggle(current, true)
	case dom.KeyLeft, dom.KeyUp:
		err = in.step(current, -1)
	case dom.KeyRight, dom.KeyDown:
		err = in.step(current, 1)
	default:
		return
	}
	ev.PreventDefault()

	if err != nil {
		logging.Error(subsystem, err, "keydown %d on %s %q", ev.KeyCode, current.kind, current.el.ID())
	}
}

// step moves by delta among the toggles next to current. Accordions only move
// focus; tabs switch the visible panel.
func (in *instance) step(current toggle, delta int) error {
	switch in.w.mode {
	case ModeAccordion:
		headers := in.siblingHeaders(current.el)
		i := indexOf(headers, current.el)
		if i < 0 {
			return nil
		}
		next := (i + delta + len(headers)) % len(headers)
		in.rove(headers, headers[next])
		headers[next].Focus()
		return nil
	case ModeTabs:
		if current.kind != kindTab {
			return nil
		}
		target := in.adjacentTab(current.el, delta)
		if target == nil {
			return nil
		}
		return in.toggle(toggle{el: target, kind: kindTab}, true)
	}
	return nil
}

// adjacentTab walks to the previous or next list item of tab's item, wrapping
// around the list, and returns the tab inside it.
func (in *instance) adjacentTab(tab *dom.Element, delta int) *dom.Element {
	item := tab.Parent()
	if item == nil {
		return nil
	}
	list := item.Parent()

	var sibling *dom.Element
	if delta < 0 {
		sibling = item.PreviousElementSibling()
		if sibling == nil && list != nil {
			sibling = list.LastElementChild()
		}
	} else {
		sibling = item.NextElementSibling()
		if sibling == nil && list != nil {
			sibling = list.FirstElementChild()
		}
	}
	if sibling == nil {
		return nil
	}
	return sibling.QuerySelector(`[role="tab"]`)
}

// siblingHeaders returns the headers sharing header's parent.
func (in *instance) siblingHeaders(header *dom.Element) []*dom.Element {
	parent := header.Parent()
	if parent == nil {
		return []*dom.Element{header}
	}
	return in.headers(parent)
}

// rove makes active the only header in set that is reachable with tab.
func (in *instance) rove(set []*dom.Element, active *dom.Element) {
	for _, h := range set {
		h.SetAttribute("tabindex", "-1")
	}
	active.SetAttribute("tabindex", "0")
}

func indexOf(set []*dom.Element, el *dom.Element) int {
	for i, candidate := range set {
		if candidate == el {
			return i
		}
	}
	return -1
}
