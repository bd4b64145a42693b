package config

import "tabsresp/internal/tabsresp"

// GetDefaultConfig returns the built-in configuration: the widget's stock
// options, info logging, the alternate screen and
// eight pixels per terminal column.
func GetDefaultConfig() TabsrespConfig {
	d := tabsresp.DefaultOptions()
	altScreen := true
	return TabsrespConfig{
		GlobalSettings: GlobalSettings{
			LogLevel:  "info",
			AltScreen: &altScreen,
			CellWidth: DefaultCellWidth,
			Theme:     ThemeAuto,
		},
		Widget: WidgetConfig{
			Selector:                 d.Selector,
			ReadyClass:               d.ReadyClass,
			HeaderSelector:           d.HeaderSelector,
			HeaderIDPrefix:           d.HeaderIDPrefix,
			PanelSelector:            d.PanelSelector,
			PanelIDPrefix:            d.PanelIDPrefix,
			TablistSelector:          d.TablistSelector,
			FirstPanelsOpenByDefault: boolPtr(d.FirstPanelsOpenByDefault),
			Multiselectable:          boolPtr(d.Multiselectable),
			Mode:                     string(d.Mode),
			ResponsiveBreakpoint:     intPtr(d.ResponsiveBreakpoint),
		},
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
