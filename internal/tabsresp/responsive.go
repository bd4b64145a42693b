package tabsresp

import "tabsresp/internal/breakpoint"

// ResponsiveQuery is the viewport condition under which containers render
// as accordions.
func (o Options) ResponsiveQuery() breakpoint.Query {
	return breakpoint.MaxWidth(o.ResponsiveBreakpoint)
}

func (w *Widget) registerResponsive(r Registrar) {
	if r == nil || len(w.instances) == 0 || w.opts.ResponsiveBreakpoint <= 0 {
		return
	}
	r.Register(w.opts.ResponsiveQuery(), breakpoint.Handler{
		Match:      func() { w.ToggleMode(ModeAccordion) },
		Unmatch:    func() { w.ToggleMode(ModeTabs) },
		DeferSetup: true,
	})
}
