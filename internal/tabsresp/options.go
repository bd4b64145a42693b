package tabsresp

// Mode is the presentation style of every container managed by a Widget.
type Mode string

const (
	ModeTabs      Mode = "tabs"
	ModeAccordion Mode = "accordion"
)

// Valid reports whether m is one of the two presentation modes.
func (m Mode) Valid() bool {
	return m == ModeTabs || m == ModeAccordion
}

// Options configures a Widget. Start from DefaultOptions; empty selector and
// prefix fields fall back to their defaults.
type Options struct {
	Selector        string
	ReadyClass      string
	HeaderSelector  string
	HeaderIDPrefix  string
	PanelSelector   string
	PanelIDPrefix   string
	TablistSelector string

	// FirstPanelsOpenByDefault opens the first header's panel on init. Accordion only.
	FirstPanelsOpenByDefault bool
	// Multiselectable lets several accordion panels stay open at once. Accordion only.
	Multiselectable bool

	Mode Mode
	// ResponsiveBreakpoint is the widest viewport, in pixels, that still
	// renders as an accordion. Zero disables responsive switching.
	ResponsiveBreakpoint int
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Selector:                 ".js-fr-tabsresp",
		ReadyClass:               "fr-tabsresp--is-ready",
		HeaderSelector:           ".js-fr-tabsresp__head",
		HeaderIDPrefix:           "tabsresp-head",
		PanelSelector:            ".js-fr-tabsresp__panel",
		PanelIDPrefix:            "tabsresp-panel",
		TablistSelector:          ".js-fr-tabsresp__tablist",
		FirstPanelsOpenByDefault: true,
		Multiselectable:          true,
		Mode:                     ModeTabs,
		ResponsiveBreakpoint:     767,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&o.Selector, d.Selector)
	fill(&o.ReadyClass, d.ReadyClass)
	fill(&o.HeaderSelector, d.HeaderSelector)
	fill(&o.HeaderIDPrefix, d.HeaderIDPrefix)
	fill(&o.PanelSelector, d.PanelSelector)
	fill(&o.PanelIDPrefix, d.PanelIDPrefix)
	fill(&o.TablistSelector, d.TablistSelector)
	if !o.Mode.Valid() {
		o.Mode = d.Mode
	}
	if o.ResponsiveBreakpoint < 0 {
		o.ResponsiveBreakpoint = 0
	}
	return o
}

// TabSelector matches tab links inside a tab list.
func (o Options) TabSelector() string { return o.TablistSelector + " a" }

// TabListItemSelector matches list items inside a tab list.
func (o Options) TabListItemSelector() string { return o.TablistSelector + " li" }

// ToggleSelector matches every toggle control: tabs and accordion headers.
func (o Options) ToggleSelector() string { return o.TabSelector() + ", " + o.HeaderSelector }
