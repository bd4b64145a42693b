package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   LogLevel
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{"warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCLIModeWritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("TabsResp", "mode switched to %s", "accordion")
	Error("TabsResp", errors.New("boom"), "toggle failed")

	out := buf.String()
	assert.Contains(t, out, "mode switched to accordion")
	assert.Contains(t, out, "subsystem=TabsResp")
	assert.Contains(t, out, "error=boom")
}

func TestCLIModeRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("TabsResp", "hidden")
	Info("TabsResp", "hidden too")
	Warn("TabsResp", "visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestTUIModeSendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	require.NotNil(t, ch)
	defer CloseTUIChannel()

	Debug("TUI", "filtered")
	Warn("TUI", "resized to %d", 80)

	entry := <-ch
	assert.Equal(t, LevelWarn, entry.Level)
	assert.Equal(t, "TUI", entry.Subsystem)
	assert.Equal(t, "resized to 80", entry.Message)
	assert.Len(t, ch, 0)
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
