package tabsresp

import (
	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

// Init applies the current mode to every container: attributes, listeners
// and the initial open panel. Init never moves focus.
func (w *Widget) Init() {
	if w == nil {
		return
	}
	for _, in := range w.instances {
		in.init()
	}
}

func (in *instance) init() {
	o := in.w.opts
	c := in.container

	in.applyAccessibility()
	in.bind()
	in.hideAll(c)

	switch in.w.mode {
	case ModeAccordion:
		first := c.QuerySelector(o.HeaderSelector)
		if first == nil {
			logging.Warn(subsystem, "container %q has no header matching %q", c.ID(), o.HeaderSelector)
			break
		}
		if o.FirstPanelsOpenByDefault {
			if err := in.toggle(toggle{el: first, kind: kindHeader}, true); err != nil {
				logging.Error(subsystem, err, "opening first panel")
			}
		} else {
			first.SetAttribute("tabindex", "0")
		}
	case ModeTabs:
		first := c.QuerySelector(o.TabSelector())
		if first == nil {
			logging.Warn(subsystem, "container %q has no tab matching %q", c.ID(), o.TabSelector())
			break
		}
		if err := in.toggle(toggle{el: first, kind: kindTab}, false); err != nil {
			logging.Error(subsystem, err, "activating first tab")
		}
	}

	c.AddClass(o.ReadyClass)
}

// Destroy returns every container to its pre-init state: attributes removed,
// listeners detached, ready class cleared.
func (w *Widget) Destroy() {
	if w == nil {
		return
	}
	for _, in := range w.instances {
		in.removeAccessibility()
		in.unbind()
		in.container.RemoveClass(w.opts.ReadyClass)
	}
}

// ToggleMode rebuilds every container in newMode. Requests for the current
// mode or for an unknown mode are ignored. A focused toggle hands focus to
// the toggle of newMode that controls the same panel.
func (w *Widget) ToggleMode(newMode Mode) {
	if w == nil || newMode == w.mode || !newMode.Valid() {
		return
	}

	focusedIn, panelID := w.focusedToggle()
	w.Destroy()

	w.mode = newMode
	if w.mode == ModeTabs {
		w.multiselectable = false
	}

	w.Init()
	if focusedIn != nil {
		focusedIn.refocus(panelID)
	}
	logging.Info(subsystem, "switched to %s mode", w.mode)
}

// focusedToggle returns the instance owning the focused toggle and the id of
// the panel that toggle controls.
func (w *Widget) focusedToggle() (*instance, string) {
	active := w.doc.ActiveElement()
	if active == nil {
		return nil, ""
	}
	for _, in := range w.instances {
		if t, ok := in.toggleFor(active); ok {
			return in, t.controls()
		}
	}
	return nil, ""
}

// refocus focuses the toggle of the current mode that controls panelID. With
// no such toggle nothing keeps focus.
func (in *instance) refocus(panelID string) {
	kind := kindTab
	if in.w.mode == ModeAccordion {
		kind = kindHeader
	}

	var target *dom.Element
	for _, t := range in.toggles(in.container) {
		if t.kind == kind && panelID != "" && t.controls() == panelID {
			target = t.el
			break
		}
	}
	if target == nil {
		in.w.doc.Blur()
		return
	}
	if kind == kindHeader {
		in.rove(in.siblingHeaders(target), target)
	}
	target.Focus()
}
