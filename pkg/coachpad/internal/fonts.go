package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"coachpad/pkg/coachpad/theme"
)

// FontSet holds the loaded type scale. Sizes come from the theme tokens.
type FontSet struct {
	SmallFont *ttf.Font
	BodyFont  *ttf.Font
	TitleFont *ttf.Font
	HeroFont  *ttf.Font
	IconFont  *ttf.Font
}

// Fonts is the process-wide font set, populated by initFonts.
var Fonts FontSet

func initFonts(t theme.Theme) error {
	sizes := []struct {
		dst  **ttf.Font
		path string
		pt   int
	}{
		{&Fonts.SmallFont, t.FontPath, theme.FontSizeSmall},
		{&Fonts.BodyFont, t.FontPath, theme.FontSizeBody},
		{&Fonts.TitleFont, t.FontPath, theme.FontSizeTitle},
		{&Fonts.HeroFont, t.FontPath, theme.FontSizeHero},
		{&Fonts.IconFont, t.IconFontPath, theme.FontSizeTitle},
	}

	for _, s := range sizes {
		if s.path == "" {
			continue
		}
		f, err := ttf.OpenFont(s.path, s.pt)
		if err != nil {
			return fmt.Errorf("open font %s at %dpt: %w", s.path, s.pt, err)
		}
		*s.dst = f
	}

	if Fonts.BodyFont == nil {
		return fmt.Errorf("theme has no usable font path")
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.SmallFont, Fonts.BodyFont, Fonts.TitleFont, Fonts.HeroFont, Fonts.IconFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}
