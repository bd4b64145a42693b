// Package tui provides the Terminal User Interface for tabsresp.
//
// The interface shows one HTML document after the tabs/accordion widget has
// enhanced it. Nothing is drawn from widget internals: every frame is derived
// from the document's ARIA state, so what is on screen is what a browser with
// the widget's stylesheet would show.
//
// # Input
//
// tab and shift+tab walk the sequential focus order (toggles with
// tabindex="0"). enter, space and the arrow keys become keydown events on the
// focused toggle and a left click becomes a click event, so the widget's own
// listeners do the work.
//
// # Responsiveness
//
// Every tea.WindowSizeMsg is converted to a pixel width (columns times the
// configured cell width) and fed to the breakpoint matcher the widget
// subscribed to.
package tui
