package tabsresp

import (
	"tabsresp/internal/breakpoint"
	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

const subsystem = "TabsResp"

// Registrar is the breakpoint service a Widget subscribes to.
type Registrar interface {
	Register(q breakpoint.Query, h breakpoint.Handler)
}

// Widget manages every container matched by Options.Selector in one document.
// All methods must be called from the goroutine that dispatches the
// document's events.
type Widget struct {
	doc             *dom.Document
	opts            Options
	mode            Mode
	multiselectable bool
	instances       []*instance
}

// instance is one matched container together with the listeners bound to
// its toggles.
type instance struct {
	w         *Widget
	container *dom.Element
	onClick   *dom.Listener
	onKeydown *dom.Listener
	bound     map[*dom.Element]toggleKind
}

// New finds the containers in doc, initializes them in opts.Mode and, when a
// registrar is given and opts.ResponsiveBreakpoint is positive, switches
// modes as the viewport crosses the breakpoint. The set of containers is
// fixed at this point.
//
// A nil doc yields a nil *Widget; all of its methods are no-ops.
func New(doc *dom.Document, opts Options, responsive Registrar) *Widget {
	if doc == nil {
		return nil
	}
	opts = opts.withDefaults()

	w := &Widget{
		doc:             doc,
		opts:            opts,
		mode:            opts.Mode,
		multiselectable: opts.Multiselectable,
	}
	for _, c := range doc.QuerySelectorAll(opts.Selector) {
		in := &instance{w: w, container: c}
		in.onClick = dom.NewListener(in.handleClick)
		in.onKeydown = dom.NewListener(in.handleKeydown)
		w.instances = append(w.instances, in)
	}
	logging.Debug(subsystem, "found %d container(s) for %q", len(w.instances), opts.Selector)

	w.Init()
	w.registerResponsive(responsive)
	return w
}

// Mode returns the current presentation mode.
func (w *Widget) Mode() Mode {
	if w == nil {
		return ""
	}
	return w.mode
}

// Options returns the effective configuration.
func (w *Widget) Options() Options {
	if w == nil {
		return Options{}
	}
	return w.opts
}

// Containers returns the managed container elements in document order.
func (w *Widget) Containers() []*dom.Element {
	if w == nil {
		return nil
	}
	out := make([]*dom.Element, len(w.instances))
	for i, in := range w.instances {
		out[i] = in.container
	}
	return out
}

// TabStops returns the toggles that sequential keyboard focus reaches in the
// current mode: the tabindex="0" tab of each tab list, or the roving header
// of each accordion.
func (w *Widget) TabStops() []*dom.Element {
	if w == nil {
		return nil
	}
	sel := w.opts.TabSelector()
	if w.mode == ModeAccordion {
		sel = w.opts.HeaderSelector
	}

	var stops []*dom.Element
	for _, in := range w.instances {
		for _, el := range in.container.QuerySelectorAll(sel) {
			if v, ok := el.Attr("tabindex"); ok && v == "0" {
				stops = append(stops, el)
			}
		}
	}
	return stops
}
