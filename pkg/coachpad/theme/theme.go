// Package theme holds the design-token tables: colors, spacing, and type
// sizes, plus the per-role palettes used to tint chrome. Tokens are read-only
// records; screens pick from them and never write back.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/session"
)

// Theme defines the app-wide visual appearance. Role-specific accents come
// from PaletteFor, layered on top of these base tokens.
type Theme struct {
	BackgroundColor      sdl.Color // screen background
	SurfaceColor         sdl.Color // cards, drawer, rails
	TextColor            sdl.Color // default text
	HintColor            sdl.Color // secondary text, help lines
	HighlightColor       sdl.Color // focused item background
	HighlightedTextColor sdl.Color // text on focused items
	AccentColor          sdl.Color // buttons, pills; overridden per role
	FontPath             string    // primary UI font
	IconFontPath         string    // icon glyph font
	BackgroundImagePath  string    // optional background image
}

// Palette is the small per-role color record used to tint chrome.
type Palette struct {
	Primary   sdl.Color // role accent
	OnPrimary sdl.Color // text/icons on the accent
	Badge     sdl.Color // notification badges, status dots
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		BackgroundColor:      HexColor(0x101418),
		SurfaceColor:         HexColor(0x1C2228),
		TextColor:            HexColor(0xF2F4F7),
		HintColor:            HexColor(0x8A94A0),
		HighlightColor:       HexColor(0xF2F4F7),
		HighlightedTextColor: HexColor(0x101418),
		AccentColor:          HexColor(0x3B82C4),
		FontPath:             "/mnt/SDCARD/System/fonts/coachpad.ttf",
		IconFontPath:         "/mnt/SDCARD/System/fonts/coachpad-icons.ttf",
	}
}

// rolePalettes is the fixed role-to-palette table.
var rolePalettes = map[session.Role]Palette{
	session.RoleStudent: {
		Primary:   HexColor(0x3B82C4),
		OnPrimary: HexColor(0xFFFFFF),
		Badge:     HexColor(0xE8A13C),
	},
	session.RoleTeacher: {
		Primary:   HexColor(0x2E8B57),
		OnPrimary: HexColor(0xFFFFFF),
		Badge:     HexColor(0xD4574E),
	},
	session.RoleParent: {
		Primary:   HexColor(0x8A5CB8),
		OnPrimary: HexColor(0xFFFFFF),
		Badge:     HexColor(0xE8A13C),
	},
	session.RoleAdmin: {
		Primary:   HexColor(0xC4453B),
		OnPrimary: HexColor(0xFFFFFF),
		Badge:     HexColor(0x3B82C4),
	},
}

// paletteOverrides holds theme-file palette replacements. Written once at
// startup, read per render; never mutated after Init.
var paletteOverrides map[session.Role]Palette

// SetPalettes installs theme-file palette overrides for the process. Call
// once during initialization, before any rendering.
func SetPalettes(p map[session.Role]Palette) {
	paletteOverrides = p
}

// PaletteFor maps a role to its palette. Pure between configuration changes:
// same role, same record. Unknown roles (including the signed-out state) get
// a neutral palette built from the default theme's accent.
func PaletteFor(role session.Role) Palette {
	if p, ok := paletteOverrides[role]; ok {
		return p
	}
	if p, ok := rolePalettes[role]; ok {
		return p
	}
	return Palette{
		Primary:   Default().AccentColor,
		OnPrimary: HexColor(0xFFFFFF),
		Badge:     HexColor(0x8A94A0),
	}
}

// HexColor converts 0xRRGGBB into an opaque sdl.Color.
func HexColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" strings, as used in theme files.
func ParseHexColor(s string) (sdl.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return sdl.Color{}, fmt.Errorf("theme: color %q is not RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("theme: color %q is not RRGGBB: %w", s, err)
	}
	return HexColor(uint32(v)), nil
}
