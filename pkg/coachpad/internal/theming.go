package internal

import "coachpad/pkg/coachpad/theme"

var currentTheme = theme.Default()

// SetTheme sets the active theme for the app. Called once during Init,
// before any rendering.
func SetTheme(t theme.Theme) {
	currentTheme = t
}

// GetTheme returns the currently active theme.
func GetTheme() theme.Theme {
	return currentTheme
}
