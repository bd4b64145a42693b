// Package config provides configuration management for tabsresp.
//
// Configuration is layered. Later layers override earlier ones field by
// field:
//
//  1. Default configuration (the widget's stock options)
//  2. User configuration (~/.config/tabsresp/config.yaml)
//  3. Project configuration (./.tabsresp/config.yaml)
//  4. A file named with --config
//
// Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info
//	  altScreen: true
//	  cellWidth: 8        # pixels per terminal column
//	  theme: auto         # auto, dark or light
//
//	widget:
//	  selector: ".js-fr-tabsresp"
//	  readyClass: "fr-tabsresp--is-ready"
//	  headerSelector: ".js-fr-tabsresp__head"
//	  headerIdPrefix: "tabsresp-head"
//	  panelSelector: ".js-fr-tabsresp__panel"
//	  panelIdPrefix: "tabsresp-panel"
//	  tablistSelector: ".js-fr-tabsresp__tablist"
//	  firstPanelsOpenByDefault: true   # accordion only
//	  multiselectable: true            # accordion only
//	  mode: tabs                       # or accordion
//	  responsiveBreakpoint: 767        # pixels; 0 disables switching
package config
