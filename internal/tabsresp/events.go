package tabsresp

import (
	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

// bind attaches the instance's click and keydown listeners to every toggle.
// The listeners are created once per instance, so unbind removes exactly what
// bind added and repeated binds do not stack.
func (in *instance) bind() {
	in.bound = make(map[*dom.Element]toggleKind)
	for _, t := range in.toggles(in.container) {
		t.el.AddEventListener(dom.EventClick, in.onClick)
		t.el.AddEventListener(dom.EventKeydown, in.onKeydown)
		in.bound[t.el] = t.kind
	}
}

func (in *instance) unbind() {
	for _, t := range in.toggles(in.container) {
		t.el.RemoveEventListener(dom.EventClick, in.onClick)
		t.el.RemoveEventListener(dom.EventKeydown, in.onKeydown)
	}
	in.bound = nil
}

func (in *instance) handleClick(ev *dom.Event) {
	current, ok := in.toggleFor(ev.CurrentTarget)
	if !ok {
		return
	}
	// Tabs are links; the fragment navigation is suppressed.
	ev.PreventDefault()
	if err := in.toggle(current, true); err != nil {
		logging.Error(subsystem, err, "click on %s %q", current.kind, current.el.ID())
	}
}
