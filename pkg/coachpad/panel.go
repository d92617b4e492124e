package coachpad

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/theme"
)

// PanelRow is one label/value line inside a panel section.
type PanelRow struct {
	Icon  string // optional icon-font glyph
	Label string
	Value string
}

// PanelSection groups rows under a heading.
type PanelSection struct {
	Title string
	Rows  []PanelRow
}

// PanelAction is a footer button. Confirming it ends the panel with its
// action tag in the result.
type PanelAction struct {
	Label  string
	Action string
}

// PanelSettings configures a detail panel.
type PanelSettings struct {
	Title    string
	Sections []PanelSection
	Actions  []PanelAction
	Mode     layout.Mode
}

// PanelResult carries the action tag of the confirmed footer button, or
// nav.ActionDrawer when the drawer button was pressed.
type PanelResult struct {
	Action string
}

type panelController struct {
	settings      PanelSettings
	palette       theme.Palette
	scrollOffset  int32
	maxScroll     int32
	selectedIndex int
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
	drawer        bool
	quit          bool

	directionalInput internal.DirectionalInput
}

// Panel renders a scrollable read-only detail view with a row of footer
// actions and blocks until the user confirms one, backs out (ErrCancelled),
// presses the drawer button (result with nav.ActionDrawer), or closes the
// window (ErrQuit).
//
// Dashboards, profile, and the role content screens are all thin wrappers
// around this one component; only their sections and actions differ.
func Panel(st nav.State, settings PanelSettings) (*PanelResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	c := &panelController{
		settings:         settings,
		palette:          paletteFor(st),
		inputDelay:       constants.DefaultInputDelay,
		lastInputTime:    time.Now(),
		directionalInput: internal.NewDirectionalInput(),
	}

	for {
		if !c.handleEvents() {
			break
		}

		if dir := c.directionalInput.Update(); dir != internal.DirectionNone {
			c.applyDirection(dir)
		}

		c.render(renderer, window)
		sdl.Delay(16)
	}

	switch {
	case c.quit:
		return nil, ErrQuit
	case c.cancelled:
		return nil, ErrCancelled
	case c.drawer:
		return &PanelResult{Action: nav.ActionDrawer}, nil
	}

	if len(c.settings.Actions) == 0 {
		return nil, ErrCancelled
	}
	return &PanelResult{Action: c.settings.Actions[c.selectedIndex].Action}, nil
}

func (c *panelController) handleEvents() bool {
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
					c.applyDirection(c.directionalInput.HeldDirection())
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
				if len(c.settings.Actions) > 0 {
					c.confirmed = true
					return false
				}
			case constants.ButtonBack:
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

func (c *panelController) applyDirection(dir internal.Direction) {
	const scrollStep = theme.DrawerItemHeight

	switch dir {
	case internal.DirectionUp:
		c.scrollOffset -= scrollStep
		if c.scrollOffset < 0 {
			c.scrollOffset = 0
		}
	case internal.DirectionDown:
		c.scrollOffset += scrollStep
		if c.scrollOffset > c.maxScroll {
			c.scrollOffset = c.maxScroll
		}
	case internal.DirectionLeft:
		if c.selectedIndex > 0 {
			c.selectedIndex--
		}
	case internal.DirectionRight:
		if c.selectedIndex < len(c.settings.Actions)-1 {
			c.selectedIndex++
		}
	}
}

func (c *panelController) render(renderer *sdl.Renderer, window *internal.Window) {
	t := internal.GetTheme()
	width := window.GetWidth()
	height := window.GetHeight()

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()
	window.RenderBackground()

	pad := internal.UniformPadding(theme.SpacingMD)
	contentX := pad.Left + c.settings.Mode.SidePanelWidth()
	contentW := width - contentX - pad.Right

	c.renderHeader(renderer, t, contentX, contentW)

	footerH := int32(0)
	if len(c.settings.Actions) > 0 {
		footerH = theme.DrawerItemHeight + pad.Bottom
	}

	contentTop := theme.HeaderHeight + pad.Top
	contentBottom := height - footerH - pad.Bottom
	renderer.SetClipRect(&sdl.Rect{X: contentX, Y: contentTop, W: contentW, H: contentBottom - contentTop})
	contentH := c.renderSections(renderer, t, contentX, contentTop-c.scrollOffset, contentW)
	renderer.SetClipRect(nil)

	c.maxScroll = contentH - (contentBottom - contentTop)
	if c.maxScroll < 0 {
		c.maxScroll = 0
	}

	if footerH > 0 {
		c.renderFooter(renderer, t, contentX, height-footerH, contentW)
	}

	renderer.Present()
}

func (c *panelController) renderHeader(renderer *sdl.Renderer, t theme.Theme, x, width int32) {
	renderer.SetDrawColor(c.palette.Primary.R, c.palette.Primary.G, c.palette.Primary.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: x + width + theme.SpacingMD, H: theme.HeaderHeight})

	font := internal.Fonts.TitleFont
	if font == nil {
		font = internal.Fonts.BodyFont
	}
	internal.RenderText(renderer, font, c.settings.Title, x, (theme.HeaderHeight-int32(font.Height()))/2, c.palette.OnPrimary)
}

func (c *panelController) renderSections(renderer *sdl.Renderer, t theme.Theme, x, y, width int32) int32 {
	font := internal.Fonts.BodyFont
	titleFont := internal.Fonts.TitleFont
	if titleFont == nil {
		titleFont = font
	}
	iconFont := internal.Fonts.IconFont

	startY := y
	for _, section := range c.settings.Sections {
		if section.Title != "" {
			internal.RenderText(renderer, titleFont, section.Title, x, y, c.palette.Primary)
			y += int32(titleFont.Height()) + theme.SpacingSM
		}

		for _, row := range section.Rows {
			rowX := x
			if iconFont != nil && row.Icon != "" {
				internal.RenderText(renderer, iconFont, row.Icon, rowX, y, t.HintColor)
				rowX += theme.SpacingXL
			}
			internal.RenderText(renderer, font, row.Label, rowX, y, t.HintColor)
			if row.Value != "" {
				valueW := internal.TextWidth(font, row.Value)
				internal.RenderText(renderer, font, row.Value, x+width-valueW, y, t.TextColor)
			}
			y += int32(font.Height()) + theme.SpacingSM
		}

		y += theme.SpacingMD
	}
	return y - startY
}

func (c *panelController) renderFooter(renderer *sdl.Renderer, t theme.Theme, x, y, width int32) {
	font := internal.Fonts.BodyFont

	buttonX := x
	for i, action := range c.settings.Actions {
		labelW := internal.TextWidth(font, action.Label)
		buttonW := labelW + 2*theme.SpacingMD

		if i == c.selectedIndex {
			renderer.SetDrawColor(c.palette.Primary.R, c.palette.Primary.G, c.palette.Primary.B, 255)
			renderer.FillRect(&sdl.Rect{X: buttonX, Y: y, W: buttonW, H: theme.DrawerItemHeight})
			internal.RenderText(renderer, font, action.Label, buttonX+theme.SpacingMD, y+(theme.DrawerItemHeight-int32(font.Height()))/2, c.palette.OnPrimary)
		} else {
			renderer.SetDrawColor(t.SurfaceColor.R, t.SurfaceColor.G, t.SurfaceColor.B, 255)
			renderer.FillRect(&sdl.Rect{X: buttonX, Y: y, W: buttonW, H: theme.DrawerItemHeight})
			internal.RenderText(renderer, font, action.Label, buttonX+theme.SpacingMD, y+(theme.DrawerItemHeight-int32(font.Height()))/2, t.TextColor)
		}

		buttonX += buttonW + theme.SpacingSM
	}
}
