package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkup(t *testing.T) {
	const markup = `<div role="tab">x</div>`

	tests := []struct {
		mode    string
		colored bool
	}{
		{highlightAuto, false}, // a buffer is not a terminal
		{highlightNever, false},
		{highlightAlways, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeMarkup(&buf, markup, tt.mode))
			if tt.colored {
				assert.Contains(t, buf.String(), "\x1b[")
			} else {
				assert.Equal(t, markup, buf.String())
			}
		})
	}
}

func TestValidHighlight(t *testing.T) {
	assert.NoError(t, validHighlight(highlightAuto))
	assert.Error(t, validHighlight("sometimes"))
}
