package config

import (
	"tabsresp/internal/tabsresp"
)

// TabsrespConfig is the top-level configuration structure for tabsresp.
type TabsrespConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Widget         WidgetConfig   `yaml:"widget"`
}

// GlobalSettings holds settings of the terminal program rather than the widget.
type GlobalSettings struct {
	LogLevel  string `yaml:"logLevel,omitempty"`  // debug, info, warn, error
	AltScreen *bool  `yaml:"altScreen,omitempty"` // run the TUI on the alternate screen
	// CellWidth is the pixel width assumed for one terminal column when the
	// viewport is compared against the responsive breakpoint.
	CellWidth int `yaml:"cellWidth,omitempty"`
	// Theme is "auto", "dark" or "light". Auto keeps the terminal's own
	// background detection.
	Theme string `yaml:"theme,omitempty"`
}

// WidgetConfig mirrors tabsresp.Options. Booleans and the breakpoint are
// pointers so that an explicit false or 0 in a later layer overrides an
// earlier true or non-zero value.
type WidgetConfig struct {
	Selector                 string `yaml:"selector,omitempty"`
	ReadyClass               string `yaml:"readyClass,omitempty"`
	HeaderSelector           string `yaml:"headerSelector,omitempty"`
	HeaderIDPrefix           string `yaml:"headerIdPrefix,omitempty"`
	PanelSelector            string `yaml:"panelSelector,omitempty"`
	PanelIDPrefix            string `yaml:"panelIdPrefix,omitempty"`
	TablistSelector          string `yaml:"tablistSelector,omitempty"`
	FirstPanelsOpenByDefault *bool  `yaml:"firstPanelsOpenByDefault,omitempty"`
	Multiselectable          *bool  `yaml:"multiselectable,omitempty"`
	Mode                     string `yaml:"mode,omitempty"`
	ResponsiveBreakpoint     *int   `yaml:"responsiveBreakpoint,omitempty"`
}

// Options converts the merged configuration into widget options. Unset
// fields take the widget defaults.
func (w WidgetConfig) Options() tabsresp.Options {
	o := tabsresp.DefaultOptions()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&o.Selector, w.Selector)
	set(&o.ReadyClass, w.ReadyClass)
	set(&o.HeaderSelector, w.HeaderSelector)
	set(&o.HeaderIDPrefix, w.HeaderIDPrefix)
	set(&o.PanelSelector, w.PanelSelector)
	set(&o.PanelIDPrefix, w.PanelIDPrefix)
	set(&o.TablistSelector, w.TablistSelector)
	if w.FirstPanelsOpenByDefault != nil {
		o.FirstPanelsOpenByDefault = *w.FirstPanelsOpenByDefault
	}
	if w.Multiselectable != nil {
		o.Multiselectable = *w.Multiselectable
	}
	if w.Mode != "" {
		o.Mode = tabsresp.Mode(w.Mode)
	}
	if w.ResponsiveBreakpoint != nil {
		o.ResponsiveBreakpoint = *w.ResponsiveBreakpoint
	}
	return o
}

// Theme names.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultCellWidth maps a 96 column terminal to 768px, just above the stock
// breakpoint.
const DefaultCellWidth = 8

// PixelWidth converts a terminal width in columns to viewport pixels.
func (g GlobalSettings) PixelWidth(columns int) int {
	cw := g.CellWidth
	if cw <= 0 {
		cw = DefaultCellWidth
	}
	return columns * cw
}

// DarkTheme reports whether the theme forces dark colours, and whether it
// forces anything at all.
func (g GlobalSettings) DarkTheme() (dark, forced bool) {
	switch g.Theme {
	case ThemeDark:
		return true, true
	case ThemeLight:
		return false, true
	}
	return false, false
}

// UseAltScreen reports whether the TUI should take over the alternate screen.
func (g GlobalSettings) UseAltScreen() bool {
	return g.AltScreen == nil || *g.AltScreen
}
