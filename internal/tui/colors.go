package tui

// Color constants for the jornada TUI theme
const (
	// Base Colors
	ColorAppBackground = "" // Use terminal default background
	ColorBorder        = "#2E4057" // Slate blue

	// Text Colors
	ColorPrimaryText   = "#EAF0F6" // Primary text (titles, values)
	ColorSecondaryText = "#9AA8B8" // Secondary text - muted blue-grey
	ColorDisabledText  = "#5E6A78" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#14B8A6" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, running timer

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Working state
	ColorWarning = "#F59E0B" // Break state
)
