package coachpad

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/locale"
)

// ConfirmOption is one selectable answer in a confirmation prompt.
type ConfirmOption struct {
	Label string // text shown to the user
	Value any    // value returned when this option is chosen
}

// ConfirmSettings configures the confirmation prompt.
type ConfirmSettings struct {
	InitialSelection int  // index selected when the prompt opens
	DisableBack      bool // ignore the back button instead of cancelling
}

// ConfirmResult is the chosen option.
type ConfirmResult struct {
	Index int
	Value any
}

type confirmController struct {
	message       string
	options       []ConfirmOption
	selectedIndex int
	disableBack   bool
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
	quit          bool
}

// Confirm displays a message with horizontally selectable answers and blocks
// until the user chooses one. Returns ErrCancelled if the user backs out and
// ErrQuit if the window is closed. The cancel path leaves all app state
// untouched; callers run their effect only on a returned result.
func Confirm(message string, options []ConfirmOption, settings ConfirmSettings) (*ConfirmResult, error) {
	if len(options) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	c := &confirmController{
		message:       message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		disableBack:   settings.DisableBack,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for {
		if !c.handleEvents() {
			break
		}

		c.render(renderer, window)
		sdl.Delay(16)
	}

	switch {
	case c.quit:
		return nil, ErrQuit
	case c.cancelled:
		return nil, ErrCancelled
	}

	return &ConfirmResult{
		Index: c.selectedIndex,
		Value: c.options[c.selectedIndex].Value,
	}, nil
}

// Alert shows a message with a single dismiss option. Used for login
// failures and similar notices.
func Alert(message string) error {
	_, err := Confirm(message, []ConfirmOption{{Label: locale.T("AlertDismiss")}}, ConfirmSettings{DisableBack: true})
	if IsCancelled(err) {
		return nil
	}
	return err
}

func (c *confirmController) handleEvents() bool {
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
			case constants.ButtonLeft:
				c.selectPrevious()
			case constants.ButtonRight:
				c.selectNext()
			case constants.ButtonConfirm, constants.ButtonStart:
				c.confirmed = true
				return false
			case constants.ButtonBack:
				if !c.disableBack {
					c.cancelled = true
					return false
				}
			}
		}
	}
	return true
}

func (c *confirmController) selectPrevious() {
	c.selectedIndex--
	if c.selectedIndex < 0 {
		c.selectedIndex = len(c.options) - 1
	}
}

func (c *confirmController) selectNext() {
	c.selectedIndex++
	if c.selectedIndex >= len(c.options) {
		c.selectedIndex = 0
	}
}

func (c *confirmController) render(renderer *sdl.Renderer, window *internal.Window) {
	t := internal.GetTheme()

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()

	if window.DisplayBackground {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	messageFont := internal.Fonts.BodyFont
	optionFont := internal.Fonts.BodyFont

	maxMessageWidth := int32(float64(windowWidth) * 0.75)
	if maxMessageWidth > 800 {
		maxMessageWidth = 800
	}

	messageHeight := internal.MultilineTextHeight(messageFont, c.message, maxMessageWidth)
	spacing := int32(30)
	totalHeight := messageHeight + spacing + int32(optionFont.Height())

	centerX := windowWidth / 2
	startY := (windowHeight - totalHeight) / 2

	internal.RenderMultilineText(renderer, messageFont, c.message, maxMessageWidth, centerX, startY, t.TextColor, constants.TextAlignCenter)

	c.renderOptions(renderer, centerX, startY+messageHeight+spacing, optionFont, t.TextColor, t.HintColor)

	renderer.Present()
}

func (c *confirmController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font, selected, unselected sdl.Color) {
	// Render format: < Option1 | Option2 > with the selection highlighted.
	leftArrow := "<  "
	rightArrow := "  >"
	separator := "  |  "

	leftArrowWidth := internal.TextWidth(font, leftArrow)
	rightArrowWidth := internal.TextWidth(font, rightArrow)
	separatorWidth := internal.TextWidth(font, separator)

	var optionWidths []int32
	totalOptionsWidth := int32(0)
	for i, opt := range c.options {
		w := internal.TextWidth(font, opt.Label)
		optionWidths = append(optionWidths, w)
		totalOptionsWidth += w
		if i < len(c.options)-1 {
			totalOptionsWidth += separatorWidth
		}
	}

	x := centerX - (leftArrowWidth+totalOptionsWidth+rightArrowWidth)/2

	internal.RenderText(renderer, font, leftArrow, x, y, unselected)
	x += leftArrowWidth

	for i, opt := range c.options {
		color := unselected
		if i == c.selectedIndex {
			color = selected
		}
		internal.RenderText(renderer, font, opt.Label, x, y, color)
		x += optionWidths[i]

		if i < len(c.options)-1 {
			internal.RenderText(renderer, font, separator, x, y, unselected)
			x += separatorWidth
		}
	}

	internal.RenderText(renderer, font, rightArrow, x, y, unselected)
}
