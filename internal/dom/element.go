package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to one element node. Handles are unique per node, so
// two *Element values are equal exactly when they refer to the same element.
type Element struct {
	node      *html.Node
	doc       *Document
	listeners map[EventType][]*Listener
}

// Document returns the document owning the element.
func (e *Element) Document() *Document { return e.doc }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttribute adds the attribute or replaces its value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// Attributes returns a copy of the element's attributes as a map.
func (e *Element) Attributes() map[string]string {
	out := make(map[string]string, len(e.node.Attr))
	for _, a := range e.node.Attr {
		if a.Namespace == "" {
			out[a.Key] = a.Val
		}
	}
	return out
}

func (e *Element) classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether name is one of the element's classes.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list unless it is already there.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.SetAttribute("class", strings.Join(append(e.classes(), name), " "))
}

// RemoveClass drops name from the class list. The class attribute is removed
// once it becomes empty.
func (e *Element) RemoveClass(name string) {
	if !e.HasClass(name) {
		return
	}
	var kept []string
	for _, c := range e.classes() {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// Hash returns the fragment of the href attribute including the leading '#',
// or "" when there is none.
func (e *Element) Hash() string {
	href, ok := e.Attr("href")
	if !ok {
		return ""
	}
	i := strings.IndexByte(href, '#')
	if i < 0 || i == len(href)-1 {
		return ""
	}
	return href[i:]
}

// Text returns the concatenated, whitespace-collapsed text content.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	return e.doc.wrap(e.node.Parent)
}

// PreviousElementSibling returns the closest preceding sibling element.
func (e *Element) PreviousElementSibling() *Element {
	for n := e.node.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			return e.doc.wrap(n)
		}
	}
	return nil
}

// NextElementSibling returns the closest following sibling element.
func (e *Element) NextElementSibling() *Element {
	for n := e.node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return e.doc.wrap(n)
		}
	}
	return nil
}

// FirstElementChild returns the first child element.
func (e *Element) FirstElementChild() *Element {
	for n := e.node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return e.doc.wrap(n)
		}
	}
	return nil
}

// LastElementChild returns the last child element.
func (e *Element) LastElementChild() *Element {
	for n := e.node.LastChild; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			return e.doc.wrap(n)
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// Matches reports whether the element satisfies sel.
func (e *Element) Matches(sel string) bool {
	return e.doc.query.FindNodes(e.node).Is(sel)
}

// Closest returns the nearest ancestor-or-self matching sel.
func (e *Element) Closest(sel string) *Element {
	nodes := e.doc.query.FindNodes(e.node).Closest(sel).Nodes
	if len(nodes) == 0 {
		return nil
	}
	return e.doc.wrap(nodes[0])
}

// QuerySelectorAll returns the descendants matching sel in document order.
func (e *Element) QuerySelectorAll(sel string) []*Element {
	return e.doc.wrapAll(e.doc.query.FindNodes(e.node).Find(sel).Nodes)
}

// QuerySelector returns the first descendant matching sel, or nil.
func (e *Element) QuerySelector(sel string) *Element {
	nodes := e.doc.query.FindNodes(e.node).Find(sel).First().Nodes
	if len(nodes) == 0 {
		return nil
	}
	return e.doc.wrap(nodes[0])
}

// Focus makes e the document's active element. No event is dispatched, so
// moving focus from inside a handler never re-enters that handler.
func (e *Element) Focus() {
	e.doc.active = e
}

// Focused reports whether e is the active element.
func (e *Element) Focused() bool {
	return e.doc.active == e
}

// MoveFocus focuses the element delta steps from the focused one in order,
// wrapping at either end, and returns it. When no element of order has focus,
// a forward move lands on the first element and a backward move on the last.
func MoveFocus(order []*Element, delta int) *Element {
	if len(order) == 0 {
		return nil
	}
	i := -1
	for j, el := range order {
		if el.Focused() {
			i = j
			break
		}
	}

	switch {
	case i < 0 && delta < 0:
		i = len(order) - 1
	case i < 0:
		i = 0
	default:
		i = ((i+delta)%len(order) + len(order)) % len(order)
	}
	order[i].Focus()
	return order[i]
}
