package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestTabStylesDiffer(t *testing.T) {
	if TabStyle.GetBold() == TabSelectedStyle.GetBold() {
		t.Error("selected tab should differ in weight from an idle tab")
	}
	if AccordionHeaderStyle.GetBold() == AccordionHeaderExpandedStyle.GetBold() {
		t.Error("expanded header should differ in weight from a collapsed one")
	}
}
