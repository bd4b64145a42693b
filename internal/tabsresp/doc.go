// Package tabsresp implements a responsive tabs/accordion widget over a DOM
// document.
//
// Each container matched by Options.Selector holds a tab list, a set of
// accordion headers and the panels both of them control. The widget presents
// every container either as tabs (exactly one panel open per tab list) or as
// an accordion (zero, one or, when multiselectable, several panels open) and
// keeps the ARIA roles and states of panels and toggles in step with what is
// open.
//
// # Lifecycle
//
// New discovers the containers once and initializes them. Destroy strips
// everything the widget wrote; Init re-applies it. ToggleMode tears every
// container down and rebuilds it in the other mode. When a breakpoint
// Registrar is supplied, crossing Options.ResponsiveBreakpoint switches to
// the accordion below the breakpoint and back to tabs above it.
//
// # Input
//
// Click and keydown listeners are bound to every toggle:
//
//	Enter/Space   open the toggle's panel (an open accordion panel closes)
//	Left/Up       accordion: focus previous header; tabs: open previous tab
//	Right/Down    accordion: focus next header; tabs: open next tab
//
// Accordion headers use a roving tabindex: exactly one header is a tab stop.
package tabsresp
