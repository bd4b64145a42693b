package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned when an operation needs a parsed document and none is available.
var ErrNoDocument = errors.New("dom: no document")

// Document is a mutable HTML element tree with a single focus slot.
type Document struct {
	root     *html.Node
	query    *goquery.Document
	elements map[*html.Node]*Element
	active   *Element
}

// Parse reads HTML from r and builds a Document around it.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return NewDocument(root), nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an already parsed node tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		query:    goquery.NewDocumentFromNode(root),
		elements: make(map[*html.Node]*Element),
	}
}

// ValidSelector reports whether sel is a selector group the query engine accepts.
func ValidSelector(sel string) error {
	if _, err := cascadia.ParseGroup(sel); err != nil {
		return fmt.Errorf("invalid selector %q: %w", sel, err)
	}
	return nil
}

// wrap returns the unique Element for n, creating it on first use.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{node: n, doc: d}
	d.elements[n] = el
	return el
}

func (d *Document) wrapAll(nodes []*html.Node) []*Element {
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el := d.wrap(n); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// QuerySelectorAll returns every element in the document matching sel, in document order.
func (d *Document) QuerySelectorAll(sel string) []*Element {
	return d.wrapAll(d.query.Find(sel).Nodes)
}

// QuerySelector returns the first element matching sel, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	nodes := d.query.Find(sel).First().Nodes
	if len(nodes) == 0 {
		return nil
	}
	return d.wrap(nodes[0])
}

// GetElementByID returns the element whose id attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Namespace == "" && a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return d.wrap(found)
}

// ActiveElement returns the element that last received focus, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// Blur clears the focus slot.
func (d *Document) Blur() {
	d.active = nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML renders the document to a string.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
