package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/session"
)

func TestHexColor(t *testing.T) {
	c := HexColor(0x2E8B57)
	assert.Equal(t, sdl.Color{R: 0x2E, G: 0x8B, B: 0x57, A: 255}, c)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    sdl.Color
		wantErr bool
	}{
		{in: "#2E8B57", want: sdl.Color{R: 0x2E, G: 0x8B, B: 0x57, A: 255}},
		{in: "2e8b57", want: sdl.Color{R: 0x2E, G: 0x8B, B: 0x57, A: 255}},
		{in: " #FFFFFF ", want: sdl.Color{R: 255, G: 255, B: 255, A: 255}},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPaletteForCoversEveryRole(t *testing.T) {
	seen := map[sdl.Color]bool{}
	for _, role := range session.Roles {
		p := PaletteFor(role)
		assert.NotZero(t, p.Primary.A, "role %s has no primary", role)
		seen[p.Primary] = true
	}
	// Each role gets a distinct accent.
	assert.Len(t, seen, len(session.Roles))

	// Deterministic.
	assert.Equal(t, PaletteFor(session.RoleTeacher), PaletteFor(session.RoleTeacher))

	// Signed-out falls back to the neutral accent.
	neutral := PaletteFor(session.Role(""))
	assert.Equal(t, Default().AccentColor, neutral.Primary)
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
background = "#000000"
accent = "#ABCDEF"
font_path = "/fonts/custom.ttf"

[layout]
rail_min_width = 500
sidebar_min_width = 900

[roles.teacher]
primary = "#112233"
`), 0o644))

	res, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, sdl.Color{A: 255}, res.Theme.BackgroundColor)
	assert.Equal(t, sdl.Color{R: 0xAB, G: 0xCD, B: 0xEF, A: 255}, res.Theme.AccentColor)
	assert.Equal(t, "/fonts/custom.ttf", res.Theme.FontPath)

	// Unset fields keep defaults.
	assert.Equal(t, Default().TextColor, res.Theme.TextColor)

	assert.Equal(t, int32(500), res.RailMinWidth)
	assert.Equal(t, int32(900), res.SidebarMinWidth)

	teacher := res.RolePalettes[session.RoleTeacher]
	assert.Equal(t, sdl.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, teacher.Primary)
	// Unoverridden palette fields keep their stock values.
	assert.Equal(t, PaletteFor(session.RoleTeacher).Badge, teacher.Badge)
	// Other roles untouched.
	assert.Equal(t, PaletteFor(session.RoleStudent), res.RolePalettes[session.RoleStudent])
}

func TestLoadThemeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`background = "notacolor"`), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	badRole := filepath.Join(dir, "badrole.toml")
	require.NoError(t, os.WriteFile(badRole, []byte("[roles.principal]\nprimary = \"#112233\"\n"), 0o644))
	_, err = Load(badRole)
	assert.Error(t, err)
}

func TestSetPalettesOverrides(t *testing.T) {
	t.Cleanup(func() { SetPalettes(nil) })

	custom := Palette{Primary: HexColor(0x123456)}
	SetPalettes(map[session.Role]Palette{session.RoleAdmin: custom})

	assert.Equal(t, custom, PaletteFor(session.RoleAdmin))
	// Roles without an override keep the stock table.
	assert.Equal(t, rolePalettes[session.RoleStudent], PaletteFor(session.RoleStudent))
}
