// Package cli provides terminal input and styled output for the number
// classifier.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7D56F4")
	// SuccessColor marks properties that hold.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates rejected requests.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats properties that hold.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats properties that do not hold.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Palette selects between styled and plain rendering. The zero value renders
// plain text.
type Palette struct {
	Color bool
}

func (p Palette) render(style lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return style.Render(text)
}

// Title formats a section title.
func (p Palette) Title(text string) string {
	return p.render(TitleStyle, text)
}

// Success formats text for a property that holds.
func (p Palette) Success(text string) string {
	return p.render(SuccessStyle, text)
}

// Warning formats a warning message.
func (p Palette) Warning(text string) string {
	return p.render(WarningStyle, text)
}

// Error formats an error message.
func (p Palette) Error(text string) string {
	return p.render(ErrorStyle, text)
}

// Info formats an informational message.
func (p Palette) Info(text string) string {
	return p.render(InfoStyle, text)
}

// Subtle formats less prominent text.
func (p Palette) Subtle(text string) string {
	return p.render(SubtleStyle, text)
}

// Header formats a table header cell.
func (p Palette) Header(text string) string {
	return p.render(TableHeaderStyle, text)
}

// Prompt formats a prompt message.
func (p Palette) Prompt(text string) string {
	return p.render(PromptStyle, text)
}
