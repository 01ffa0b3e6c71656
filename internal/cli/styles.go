// Package cli provides styled terminal output and context-aware input for
// the chat shell.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// ReplyStyle formats assistant reply text.
	ReplyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text such as metadata lines.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle formats the interactive chat prompt.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoColor)
)

// SentimentStyle picks a style for a sentiment label string.
func SentimentStyle(label string) lipgloss.Style {
	switch label {
	case "positive":
		return ReplyStyle
	case "negative":
		return ErrorStyle
	case "neutral":
		return InfoStyle
	default:
		return SubtleStyle
	}
}
