package coachpad

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/locale"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/theme"
)

// DrawerItem is one entry in the navigation drawer.
type DrawerItem struct {
	Label  string // localized display text
	Icon   string // icon-font glyph from constants
	Action string // semantic action tag dispatched through the role table
}

// DrawerResult is the chosen drawer entry.
type DrawerResult struct {
	Index int
	Item  DrawerItem
}

// DrawerItemsFor builds the drawer entries for the current session. The same
// entries back all three layout modes; only their presentation differs.
func DrawerItemsFor(st nav.State) []DrawerItem {
	items := []DrawerItem{
		{Label: locale.T("DrawerDashboard"), Icon: constants.IconHome, Action: nav.ActionOpenDashboard},
		{Label: locale.T("DrawerNotifications"), Icon: constants.IconBell, Action: nav.ActionOpenNotifications},
		{Label: locale.T("DrawerProfile"), Icon: constants.IconAccount, Action: nav.ActionOpenProfile},
		{Label: locale.T("DrawerSettings"), Icon: constants.IconCog, Action: nav.ActionOpenSettings},
	}
	if st.Authenticated {
		items = append(items, DrawerItem{Label: locale.T("DrawerLogout"), Icon: constants.IconLogout, Action: nav.ActionLogout})
	}
	return items
}

type drawerController struct {
	items            []DrawerItem
	mode             layout.Mode
	selectedIndex    int
	palette          theme.Palette
	inputDelay       time.Duration
	lastInputTime    time.Time
	confirmed        bool
	cancelled        bool
	quit             bool
	directionalInput internal.DirectionalInput
}

// Drawer runs the navigation menu as a blocking modal and returns the chosen
// entry. In bottom-sheet mode it slides over the lower part of the screen;
// in rail and sidebar modes it expands the left panel. Returns ErrCancelled
// when dismissed.
//
// The caller owns the controller's drawer flag: open it before calling,
// close it (or navigate, which closes it) afterwards.
func Drawer(st nav.State, mode layout.Mode) (*DrawerResult, error) {
	items := DrawerItemsFor(st)
	if len(items) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	c := &drawerController{
		items:            items,
		mode:             mode,
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
			c.moveSelection(dir)
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

	return &DrawerResult{
		Index: c.selectedIndex,
		Item:  c.items[c.selectedIndex],
	}, nil
}

func paletteFor(st nav.State) theme.Palette {
	if st.User != nil {
		return theme.PaletteFor(st.User.Role)
	}
	return theme.PaletteFor("")
}

func (c *drawerController) handleEvents() bool {
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
					c.moveSelection(c.directionalInput.HeldDirection())
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
				c.confirmed = true
				return false
			case constants.ButtonBack, constants.ButtonDrawer:
				c.cancelled = true
				return false
			}
		}
	}
	return true
}

func (c *drawerController) moveSelection(dir internal.Direction) {
	switch dir {
	case internal.DirectionUp:
		c.selectedIndex--
		if c.selectedIndex < 0 {
			c.selectedIndex = len(c.items) - 1
		}
	case internal.DirectionDown:
		c.selectedIndex++
		if c.selectedIndex >= len(c.items) {
			c.selectedIndex = 0
		}
	}
}

func (c *drawerController) render(renderer *sdl.Renderer, window *internal.Window) {
	t := internal.GetTheme()

	switch c.mode {
	case layout.ModeBottomSheet:
		c.renderBottomSheet(renderer, window, t)
	default:
		c.renderSidePanel(renderer, window, t)
	}

	renderer.Present()
}

func (c *drawerController) renderBottomSheet(renderer *sdl.Renderer, window *internal.Window, t theme.Theme) {
	width := window.GetWidth()
	height := window.GetHeight()

	pad := internal.UniformPadding(theme.SpacingMD)
	sheetHeight := int32(len(c.items))*theme.DrawerItemHeight + pad.Vertical()
	maxHeight := height * theme.BottomSheetMaxPct / 100
	if sheetHeight > maxHeight {
		sheetHeight = maxHeight
	}
	sheetY := height - sheetHeight

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()
	window.RenderBackground()

	// Dim what lies behind the sheet.
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 160)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: height})

	renderer.SetDrawColor(t.SurfaceColor.R, t.SurfaceColor.G, t.SurfaceColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: sheetY, W: width, H: sheetHeight})

	c.renderItems(renderer, t, pad.Left, sheetY+pad.Top, width-pad.Horizontal(), true)
}

func (c *drawerController) renderSidePanel(renderer *sdl.Renderer, window *internal.Window, t theme.Theme) {
	height := window.GetHeight()
	panelWidth := layout.ModeSidebar.SidePanelWidth()

	renderer.SetDrawColor(t.BackgroundColor.R, t.BackgroundColor.G, t.BackgroundColor.B, 255)
	renderer.Clear()

	renderer.SetDrawColor(t.SurfaceColor.R, t.SurfaceColor.G, t.SurfaceColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: panelWidth, H: height})

	c.renderItems(renderer, t, theme.SpacingMD, theme.HeaderHeight+theme.SpacingMD, panelWidth-2*theme.SpacingMD, true)
}

func (c *drawerController) renderItems(renderer *sdl.Renderer, t theme.Theme, x, y, width int32, showLabels bool) {
	font := internal.Fonts.BodyFont
	iconFont := internal.Fonts.IconFont

	for i, item := range c.items {
		itemY := y + int32(i)*theme.DrawerItemHeight

		textColor := t.TextColor
		if i == c.selectedIndex {
			renderer.SetDrawColor(c.palette.Primary.R, c.palette.Primary.G, c.palette.Primary.B, 255)
			renderer.FillRect(&sdl.Rect{X: x, Y: itemY, W: width, H: theme.DrawerItemHeight})
			textColor = c.palette.OnPrimary
		}

		textX := x + theme.SpacingSM
		if iconFont != nil && item.Icon != "" {
			internal.RenderText(renderer, iconFont, item.Icon, textX, itemY+theme.SpacingSM, textColor)
			textX += theme.SpacingXL
		}
		if showLabels {
			internal.RenderText(renderer, font, item.Label, textX, itemY+(theme.DrawerItemHeight-int32(font.Height()))/2, textColor)
		}
	}
}
