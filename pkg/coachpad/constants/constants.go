// Package constants defines shared constants and types used throughout the
// coachpad application: abstract input buttons, environment switches, and
// default timing values.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar and WindowHeightEnvVar override the window size in
// development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Button represents an abstract input button, mapped from physical hardware
// or a keyboard. The abstraction lets the same screens run on a handheld's
// pad and on a development laptop.
type Button int

const (
	ButtonUnassigned Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonConfirm // A on pads, Enter on keyboards
	ButtonBack    // B on pads, Escape on keyboards
	ButtonDrawer  // X on pads, Tab on keyboards; toggles the drawer
	ButtonAction  // Y on pads, context-specific secondary action
	ButtonStart
	ButtonMenu
)

func (b Button) String() string {
	switch b {
	case ButtonUnassigned:
		return "Unassigned"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonConfirm:
		return "Confirm"
	case ButtonBack:
		return "Back"
	case ButtonDrawer:
		return "Drawer"
	case ButtonAction:
		return "Action"
	case ButtonStart:
		return "Start"
	case ButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
)
