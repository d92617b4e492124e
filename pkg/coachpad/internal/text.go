package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"coachpad/pkg/coachpad/constants"
)

// TextWidth measures text in the given font, returning 0 on failure.
func TextWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// RenderText draws a single line at (x, y) and returns its rendered size.
// Failures are swallowed; a missing glyph should not take the frame down.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
	return surface.W, surface.H
}

// WrapText splits text into lines that fit maxWidth. Explicit newlines are
// preserved; words longer than the width get a line of their own.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			if TextWidth(font, test) > maxWidth && current != "" {
				out = append(out, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}

	return out
}

func lineSpacing(font *ttf.Font) int32 {
	return int32(float64(font.Height()) * 0.2)
}

// MultilineTextHeight returns the height RenderMultilineText would use.
func MultilineTextHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	if text == "" {
		return 0
	}
	lines := int32(len(WrapText(font, text, maxWidth)))
	return lines*int32(font.Height()) + (lines-1)*lineSpacing(font)
}

// RenderMultilineText draws wrapped text. The anchor x is interpreted per
// the alignment: left edge, center, or right edge. Returns the drawn height.
func RenderMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, maxWidth, anchorX, y int32, color sdl.Color, align constants.TextAlign) int32 {
	startY := y

	for _, line := range WrapText(font, text, maxWidth) {
		w := TextWidth(font, line)

		x := anchorX
		switch align {
		case constants.TextAlignCenter:
			x = anchorX - w/2
		case constants.TextAlignRight:
			x = anchorX - w
		}

		RenderText(renderer, font, line, x, y, color)
		y += int32(font.Height()) + lineSpacing(font)
	}

	return y - startY
}
