package tabsresp

import (
	"strings"

	"tabsresp/internal/dom"
)

type toggleKind int

const (
	kindTab toggleKind = iota
	kindHeader
)

func (k toggleKind) String() string {
	if k == kindHeader {
		return "header"
	}
	return "tab"
}

// toggle is a tab link or an accordion header. The kind is fixed when the
// element is discovered and never re-derived from its classes.
type toggle struct {
	el   *dom.Element
	kind toggleKind
}

func (t toggle) selected() bool {
	v, _ := t.el.Attr("aria-selected")
	return v == "true"
}

func (t toggle) controls() string {
	v, _ := t.el.Attr("aria-controls")
	return v
}

// discovery resolves the structural parts of a container.

func (in *instance) panels(scope *dom.Element) []*dom.Element {
	return scope.QuerySelectorAll(in.w.opts.PanelSelector)
}

func (in *instance) tabLists(scope *dom.Element) []*dom.Element {
	return scope.QuerySelectorAll(in.w.opts.TablistSelector)
}

func (in *instance) tabListItems(scope *dom.Element) []*dom.Element {
	return scope.QuerySelectorAll(in.w.opts.TabListItemSelector())
}

func (in *instance) tabs(scope *dom.Element) []*dom.Element {
	return scope.QuerySelectorAll(in.w.opts.TabSelector())
}

func (in *instance) headers(scope *dom.Element) []*dom.Element {
	return scope.QuerySelectorAll(in.w.opts.HeaderSelector)
}

// toggles returns the tabs and headers inside scope in document order, each
// tagged with the kind it was discovered as.
func (in *instance) toggles(scope *dom.Element) []toggle {
	isHeader := make(map[*dom.Element]bool)
	for _, h := range in.headers(scope) {
		isHeader[h] = true
	}
	all := scope.QuerySelectorAll(in.w.opts.ToggleSelector())
	out := make([]toggle, 0, len(all))
	for _, el := range all {
		kind := kindTab
		if isHeader[el] {
			kind = kindHeader
		}
		out = append(out, toggle{el: el, kind: kind})
	}
	return out
}

// toggleFor returns the toggle for an element bound by this instance. An
// element the instance never bound is classified against its container.
func (in *instance) toggleFor(el *dom.Element) (toggle, bool) {
	if kind, ok := in.bound[el]; ok {
		return toggle{el: el, kind: kind}, true
	}
	for _, t := range in.toggles(in.container) {
		if t.el == el {
			return t, true
		}
	}
	return toggle{}, false
}

func headerToPanelID(o Options, headerID string) string {
	return strings.Replace(headerID, o.HeaderIDPrefix, o.PanelIDPrefix, 1)
}

func panelToHeaderID(o Options, panelID string) string {
	return strings.Replace(panelID, o.PanelIDPrefix, o.HeaderIDPrefix, 1)
}
