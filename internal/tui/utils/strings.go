package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the specified cell width, marking the
// cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// WrapText breaks s into lines no wider than width cells. Existing line
// breaks are kept.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Wrap(line, width)
	}
	return strings.Join(lines, "\n")
}
