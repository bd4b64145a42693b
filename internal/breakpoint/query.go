package breakpoint

import (
	"fmt"
	"strings"
)

// Query is a viewport width condition. Zero bounds are open.
type Query struct {
	MinWidth int
	MaxWidth int
}

// MaxWidth matches viewports no wider than n pixels.
func MaxWidth(n int) Query { return Query{MaxWidth: n} }

// MinWidth matches viewports at least n pixels wide.
func MinWidth(n int) Query { return Query{MinWidth: n} }

// Matches reports whether a viewport of the given width satisfies q.
func (q Query) Matches(width int) bool {
	if q.MinWidth > 0 && width < q.MinWidth {
		return false
	}
	if q.MaxWidth > 0 && width > q.MaxWidth {
		return false
	}
	return true
}

// String renders q in media-query form, e.g. "screen and (max-width:767px)".
func (q Query) String() string {
	parts := []string{"screen"}
	if q.MinWidth > 0 {
		parts = append(parts, fmt.Sprintf("(min-width:%dpx)", q.MinWidth))
	}
	if q.MaxWidth > 0 {
		parts = append(parts, fmt.Sprintf("(max-width:%dpx)", q.MaxWidth))
	}
	return strings.Join(parts, " and ")
}
