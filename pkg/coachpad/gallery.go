package coachpad

import (
	"os"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/session"
	"coachpad/pkg/coachpad/theme"
)

// GallerySettings configures the design gallery.
type GallerySettings struct {
	Title   string
	IconDir string // directory of SVG assets to preview; empty skips the strip
}

type galleryController struct {
	settings      GallerySettings
	icons         *internal.IconCache
	iconPaths     []string
	inputDelay    time.Duration
	lastInputTime time.Time
	cancelled     bool
	drawer        bool
	quit          bool
}

// Gallery shows the role palettes, base theme swatches, and any SVG assets
// found in the icon directory. Read-only; back dismisses it (ErrCancelled).
// Used by admins to eyeball a theme file before rolling it out to devices.
func Gallery(settings GallerySettings) (string, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	c := &galleryController{
		settings:      settings,
		icons:         internal.NewIconCache(renderer),
		iconPaths:     findSVGs(settings.IconDir),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	defer c.icons.Destroy()

	for {
		if !c.handleEvents() {
			break
		}
		c.render(renderer, window)
		sdl.Delay(16)
	}

	switch {
	case c.quit:
		return "", ErrQuit
	case c.drawer:
		return nav.ActionDrawer, nil
	}
	return "", ErrCancelled
}

func findSVGs(dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		internal.GetLogger().Warn("gallery icon dir unreadable", "dir", dir, "error", err)
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".svg" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}

func (c *galleryController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.quit = true
			return false

		default:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.ButtonBack, constants.ButtonConfirm:
				c.cancelled = true
				return false
			case constants.ButtonDrawer:
				c.drawer = true
				return false
			}
		}
	}
	return true
}

func (c *galleryController) render(renderer *sdl.Renderer, window *internal.Window) {
	t := internal.GetTheme()
	width := window.GetWidth()

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()

	font := internal.Fonts.BodyFont
	titleFont := internal.Fonts.TitleFont
	if titleFont == nil {
		titleFont = font
	}

	y := theme.SpacingLG
	internal.RenderText(renderer, titleFont, c.settings.Title, theme.SpacingMD, y, t.TextColor)
	y += int32(titleFont.Height()) + theme.SpacingLG

	// One swatch row per role palette.
	const swatchSize = int32(40)
	for _, role := range []session.Role{session.RoleStudent, session.RoleTeacher, session.RoleParent, session.RoleAdmin} {
		p := theme.PaletteFor(role)

		renderer.SetDrawColor(p.Primary.R, p.Primary.G, p.Primary.B, 255)
		renderer.FillRect(&sdl.Rect{X: theme.SpacingMD, Y: y, W: swatchSize, H: swatchSize})
		renderer.SetDrawColor(p.Badge.R, p.Badge.G, p.Badge.B, 255)
		renderer.FillRect(&sdl.Rect{X: theme.SpacingMD + swatchSize + theme.SpacingSM, Y: y, W: swatchSize, H: swatchSize})

		internal.RenderText(renderer, font, role.DisplayName(), theme.SpacingMD+2*(swatchSize+theme.SpacingSM), y+(swatchSize-int32(font.Height()))/2, t.TextColor)
		y += swatchSize + theme.SpacingSM
	}

	// SVG strip along the bottom, rasterized through the icon cache.
	if len(c.iconPaths) > 0 {
		y += theme.SpacingLG
		x := theme.SpacingMD
		for _, path := range c.iconPaths {
			if x+swatchSize > width-theme.SpacingMD {
				break
			}
			tex, err := c.icons.Get(path, swatchSize)
			if err != nil {
				continue
			}
			renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: swatchSize, H: swatchSize})
			x += swatchSize + theme.SpacingSM
		}
	}

	renderer.Present()
}
