// Package layout picks the chrome arrangement for the current display width.
// The choice is a pure function of width: no hysteresis, no debouncing. It is
// recomputed per render and never stored, so a window resize simply yields a
// different answer on the next frame.
package layout

// Mode is one of the three mutually exclusive chrome arrangements.
type Mode int

const (
	// ModeBottomSheet shows navigation as a modal bottom-sheet drawer.
	// Used on the narrowest displays.
	ModeBottomSheet Mode = iota
	// ModeRail shows a fixed icon rail along the left edge.
	ModeRail
	// ModeSidebar shows an always-visible side panel with labels.
	ModeSidebar
)

// String returns the mode's tag.
func (m Mode) String() string {
	switch m {
	case ModeBottomSheet:
		return "bottom-sheet"
	case ModeRail:
		return "rail"
	case ModeSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// Default width breakpoints, in pixels. Displays narrower than RailMinWidth
// get the bottom sheet, anything from SidebarMinWidth up gets the persistent
// sidebar, and the band between gets the rail.
const (
	DefaultRailMinWidth    int32 = 600
	DefaultSidebarMinWidth int32 = 1024
)

// Breakpoints holds the two thresholds splitting the width range three ways.
type Breakpoints struct {
	RailMinWidth    int32
	SidebarMinWidth int32
}

// DefaultBreakpoints returns the stock thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		RailMinWidth:    DefaultRailMinWidth,
		SidebarMinWidth: DefaultSidebarMinWidth,
	}
}

// Valid reports whether the thresholds are ordered and positive.
func (b Breakpoints) Valid() bool {
	return b.RailMinWidth > 0 && b.SidebarMinWidth > b.RailMinWidth
}

// Select picks the mode for a display width. Deterministic: equal widths
// always yield equal modes.
func (b Breakpoints) Select(width int32) Mode {
	switch {
	case width >= b.SidebarMinWidth:
		return ModeSidebar
	case width >= b.RailMinWidth:
		return ModeRail
	default:
		return ModeBottomSheet
	}
}

// Select picks the mode for a display width using the default breakpoints.
func Select(width int32) Mode {
	return DefaultBreakpoints().Select(width)
}

// SidePanelWidth returns how many horizontal pixels the mode's chrome
// reserves at the left edge. The bottom sheet reserves none; it overlays.
func (m Mode) SidePanelWidth() int32 {
	switch m {
	case ModeRail:
		return 72
	case ModeSidebar:
		return 280
	default:
		return 0
	}
}
