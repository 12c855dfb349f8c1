// Package ui provides terminal building blocks shared by the CLI: color
// theme, TTY detection and progress reporting.
package ui

import "os"

// Brand colors (dark-background variants).
const (
	ColorPrimary   = "#02569B"
	ColorSecondary = "#13B9FD"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
)

// Colors is the palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls how UI components are rendered.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. Color is disabled when NO_COLOR is set.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
		NoColor: noColor,
	}
}
