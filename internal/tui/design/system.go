package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	SpaceXS = 1
	SpaceSM = 2

	// Component dimensions
	MinPanelWidth = 20
	TabGap        = 1
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

// Base Styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles
var (
	// Panel Styles
	PanelStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Inherit(BorderStyle).
			Padding(0, SpaceSM)

	PanelFocusedStyle = PanelStyle.Copy().
				Inherit(BorderFocusStyle)

	// Tab Styles. A tab is a single line; the selected one is filled.
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceXS)

	TabSelectedStyle = TabStyle.Copy().
				Bold(true).
				Foreground(ColorText).
				Background(ColorHighlight)

	// Accordion header styles
	AccordionHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	AccordionHeaderExpandedStyle = AccordionHeaderStyle.Copy().
					Bold(true).
					Foreground(ColorText)

	// FocusRing is layered over a tab or header that holds focus.
	FocusRing = lipgloss.NewStyle().
			Underline(true).
			Foreground(ColorPrimary)

	// Header Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Background(ColorSuccess).
				Foreground(ColorSurface)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Background(ColorError).
				Foreground(ColorSurface)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Log Styles
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
