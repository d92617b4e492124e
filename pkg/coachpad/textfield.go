package coachpad

import (
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/theme"
)

// TextFieldSettings configures a text entry prompt.
type TextFieldSettings struct {
	Title     string
	Initial   string
	Masked    bool // render the buffer as dots (passwords)
	MaxLength int  // 0 means unlimited
}

// keyDone and keySpace are the special keys on the bottom keyboard row.
const (
	keyShift = "abc"
	keySpace = "␣"
	keyDel   = "⌫"
	keyDone  = "✓"
)

var lowerRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl@",
	"zxcvbnm._-",
}

var upperRows = []string{
	"!#$%&*()+=",
	"QWERTYUIOP",
	"ASDFGHJKL:",
	"ZXCVBNM,?/",
}

type textFieldController struct {
	settings      TextFieldSettings
	palette       theme.Palette
	buffer        []rune
	row, col      int
	shifted       bool
	inputDelay    time.Duration
	lastInputTime time.Time
	done          bool
	cancelled     bool
	quit          bool

	directionalInput internal.DirectionalInput
}

// TextField displays an on-screen keyboard and blocks until the user accepts
// the entered text or backs out. The back button deletes the last character
// while the buffer is non-empty and cancels (ErrCancelled) once it is empty;
// the action button toggles the shifted layer.
func TextField(st nav.State, settings TextFieldSettings) (string, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	c := &textFieldController{
		settings:         settings,
		palette:          paletteFor(st),
		buffer:           []rune(settings.Initial),
		inputDelay:       constants.DefaultInputDelay,
		lastInputTime:    time.Now(),
		directionalInput: internal.NewDirectionalInput(),
	}

	for {
		if !c.handleEvents() {
			break
		}

		if dir := c.directionalInput.Update(); dir != internal.DirectionNone {
			c.moveCursor(dir)
		}

		c.render(renderer, window)
		sdl.Delay(16)
	}

	switch {
	case c.quit:
		return "", ErrQuit
	case c.cancelled:
		return "", ErrCancelled
	}
	return string(c.buffer), nil
}

func (c *textFieldController) rows() []string {
	base := lowerRows
	if c.shifted {
		base = upperRows
	}
	rows := make([]string, len(base), len(base)+1)
	copy(rows, base)
	return append(rows, keyShift+keySpace+keyDel+keyDone)
}

func (c *textFieldController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.quit = true
			return false

		default:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			if c.directionalInput.SetHeld(inputEvent.Button, inputEvent.Pressed) {
				if inputEvent.Pressed {
					c.moveCursor(c.directionalInput.HeldDirection())
				}
				continue
			}

			if !inputEvent.Pressed {
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.ButtonConfirm:
				if c.pressKey() {
					return false
				}
			case constants.ButtonBack:
				if len(c.buffer) > 0 {
					c.buffer = c.buffer[:len(c.buffer)-1]
				} else {
					c.cancelled = true
					return false
				}
			case constants.ButtonAction:
				c.shifted = !c.shifted
			case constants.ButtonStart:
				c.done = true
				return false
			}
		}
	}
	return true
}

func (c *textFieldController) moveCursor(dir internal.Direction) {
	rows := c.rows()

	switch dir {
	case internal.DirectionUp:
		c.row--
		if c.row < 0 {
			c.row = len(rows) - 1
		}
	case internal.DirectionDown:
		c.row++
		if c.row >= len(rows) {
			c.row = 0
		}
	case internal.DirectionLeft:
		c.col--
	case internal.DirectionRight:
		c.col++
	}

	rowLen := len([]rune(rows[c.row]))
	if c.col < 0 {
		c.col = rowLen - 1
	}
	if c.col >= rowLen {
		c.col = c.col % rowLen
	}
}

// pressKey applies the key under the cursor. Returns true when entry is done.
func (c *textFieldController) pressKey() bool {
	rows := c.rows()
	keys := []rune(rows[c.row])
	if c.col >= len(keys) {
		c.col = len(keys) - 1
	}
	key := string(keys[c.col])

	// The bottom row carries the special keys.
	if c.row == len(rows)-1 {
		bottom := []rune(rows[c.row])
		shiftEnd := len([]rune(keyShift))
		idx := c.col
		switch {
		case idx < shiftEnd:
			c.shifted = !c.shifted
			return false
		case string(bottom[idx]) == keySpace:
			key = " "
		case string(bottom[idx]) == keyDel:
			if len(c.buffer) > 0 {
				c.buffer = c.buffer[:len(c.buffer)-1]
			}
			return false
		case string(bottom[idx]) == keyDone:
			c.done = true
			return true
		}
	}

	if c.settings.MaxLength > 0 && len(c.buffer) >= c.settings.MaxLength {
		return false
	}
	c.buffer = append(c.buffer, []rune(key)...)
	return false
}

func (c *textFieldController) render(renderer *sdl.Renderer, window *internal.Window) {
	t := internal.GetTheme()
	width := window.GetWidth()
	height := window.GetHeight()

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()
	window.RenderBackground()

	font := internal.Fonts.BodyFont
	titleFont := internal.Fonts.TitleFont
	if titleFont == nil {
		titleFont = font
	}

	y := theme.SpacingLG
	internal.RenderText(renderer, titleFont, c.settings.Title, theme.SpacingMD, y, t.TextColor)
	y += int32(titleFont.Height()) + theme.SpacingMD

	// Entry line.
	display := string(c.buffer)
	if c.settings.Masked {
		display = strings.Repeat("•", len(c.buffer))
	}
	renderer.SetDrawColor(t.SurfaceColor.R, t.SurfaceColor.G, t.SurfaceColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: theme.SpacingMD, Y: y, W: width - 2*theme.SpacingMD, H: theme.DrawerItemHeight})
	internal.RenderText(renderer, font, display+"_", theme.SpacingMD+theme.SpacingSM, y+(theme.DrawerItemHeight-int32(font.Height()))/2, t.TextColor)

	// Keyboard grid, anchored to the bottom.
	rows := c.rows()
	keyH := theme.DrawerItemHeight
	gridH := int32(len(rows)) * keyH
	gridY := height - gridH - theme.SpacingMD

	for ri, row := range rows {
		keys := []rune(row)
		keyW := (width - 2*theme.SpacingMD) / int32(len(keys))
		for ki, key := range keys {
			x := theme.SpacingMD + int32(ki)*keyW
			keyY := gridY + int32(ri)*keyH

			textColor := t.TextColor
			if ri == c.row && ki == c.col {
				renderer.SetDrawColor(c.palette.Primary.R, c.palette.Primary.G, c.palette.Primary.B, 255)
				renderer.FillRect(&sdl.Rect{X: x, Y: keyY, W: keyW, H: keyH})
				textColor = c.palette.OnPrimary
			}

			label := string(key)
			labelW := internal.TextWidth(font, label)
			internal.RenderText(renderer, font, label, x+(keyW-labelW)/2, keyY+(keyH-int32(font.Height()))/2, textColor)
		}
	}

	renderer.Present()
}
