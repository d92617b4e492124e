package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/session"
)

// fileFormat is the on-disk theme file shape. Colors are "#RRGGBB" strings;
// every field is optional and falls back to the default theme.
type fileFormat struct {
	Background      string `toml:"background"`
	Surface         string `toml:"surface"`
	Text            string `toml:"text"`
	Hint            string `toml:"hint"`
	Highlight       string `toml:"highlight"`
	HighlightedText string `toml:"highlighted_text"`
	Accent          string `toml:"accent"`
	FontPath        string `toml:"font_path"`
	IconFontPath    string `toml:"icon_font_path"`
	BackgroundImage string `toml:"background_image"`

	Roles map[string]fileRolePalette `toml:"roles"`

	Layout struct {
		RailMinWidth    int32 `toml:"rail_min_width"`
		SidebarMinWidth int32 `toml:"sidebar_min_width"`
	} `toml:"layout"`
}

type fileRolePalette struct {
	Primary   string `toml:"primary"`
	OnPrimary string `toml:"on_primary"`
	Badge     string `toml:"badge"`
}

// FileResult is what Load produces: the merged theme plus any layout
// breakpoint overrides the file carried (zero when unset).
type FileResult struct {
	Theme           Theme
	RailMinWidth    int32
	SidebarMinWidth int32
	RolePalettes    map[session.Role]Palette
}

// Load reads a TOML theme file and layers it over the default theme and
// palettes. Missing fields keep their defaults; malformed colors fail the
// whole load so a broken file is noticed rather than half-applied.
func Load(path string) (FileResult, error) {
	res := FileResult{
		Theme:        Default(),
		RolePalettes: make(map[session.Role]Palette, len(rolePalettes)),
	}
	for role, p := range rolePalettes {
		res.RolePalettes[role] = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("theme: read %s: %w", path, err)
	}

	var ff fileFormat
	if err := toml.Unmarshal(data, &ff); err != nil {
		return res, fmt.Errorf("theme: parse %s: %w", path, err)
	}

	colors := []struct {
		raw string
		dst *sdl.Color
	}{
		{ff.Background, &res.Theme.BackgroundColor},
		{ff.Surface, &res.Theme.SurfaceColor},
		{ff.Text, &res.Theme.TextColor},
		{ff.Hint, &res.Theme.HintColor},
		{ff.Highlight, &res.Theme.HighlightColor},
		{ff.HighlightedText, &res.Theme.HighlightedTextColor},
		{ff.Accent, &res.Theme.AccentColor},
	}
	for _, c := range colors {
		if c.raw == "" {
			continue
		}
		parsed, err := ParseHexColor(c.raw)
		if err != nil {
			return res, fmt.Errorf("theme: %s: %w", path, err)
		}
		*c.dst = parsed
	}

	if ff.FontPath != "" {
		res.Theme.FontPath = ff.FontPath
	}
	if ff.IconFontPath != "" {
		res.Theme.IconFontPath = ff.IconFontPath
	}
	if ff.BackgroundImage != "" {
		res.Theme.BackgroundImagePath = ff.BackgroundImage
	}

	for tag, rp := range ff.Roles {
		role, err := session.ParseRole(tag)
		if err != nil {
			return res, fmt.Errorf("theme: %s: %w", path, err)
		}

		p := res.RolePalettes[role]
		for _, c := range []struct {
			raw string
			dst *sdl.Color
		}{
			{rp.Primary, &p.Primary},
			{rp.OnPrimary, &p.OnPrimary},
			{rp.Badge, &p.Badge},
		} {
			if c.raw == "" {
				continue
			}
			parsed, err := ParseHexColor(c.raw)
			if err != nil {
				return res, fmt.Errorf("theme: %s: role %s: %w", path, tag, err)
			}
			*c.dst = parsed
		}
		res.RolePalettes[role] = p
	}

	res.RailMinWidth = ff.Layout.RailMinWidth
	res.SidebarMinWidth = ff.Layout.SidebarMinWidth
	return res, nil
}
