// Package styles provides shared lipgloss styles for UI components.
//
// Centralizing the palette keeps hook reports, tables, and prompts
// visually consistent.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the UI
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for failures (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Warning is used for non-fatal hook failures (yellow)
	Warning lipgloss.TerminalColor = lipgloss.Color("214")

	// Muted is used for secondary text like captured output (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Accent is the highlight color for branch names (cyan)
	Accent lipgloss.TerminalColor = lipgloss.Color("62")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)
