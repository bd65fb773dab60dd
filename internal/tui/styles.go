// Package tui provides the terminal dashboard for Cotton Tracker.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the dashboard.
var (
	ColorPrimary = lipgloss.Color("#00B894") // Teal
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the dashboard.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleTabActive is used for the selected tab.
	StyleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 1)

	// StyleTabInactive is used for unselected tabs.
	StyleTabInactive = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	// StyleName is used for worker names.
	StyleName = lipgloss.NewStyle().
			Bold(true)

	// StyleAmount is used for currency amounts.
	StyleAmount = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleMuted is used for secondary information.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleError is used for error lines.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleBox frames the active tab content.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
