package utils

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "", TruncateString("anything", 0))

	got := TruncateString("a rather long panel title", 10)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestWrapText(t *testing.T) {
	got := WrapText("one two three four five", 9)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 9, line)
	}
	assert.Equal(t, "a\nb", WrapText("a\nb", 10))
	assert.Equal(t, "unchanged", WrapText("unchanged", 0))
}
