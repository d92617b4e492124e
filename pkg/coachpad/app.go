package coachpad

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/locale"
	"coachpad/pkg/coachpad/nav"
)

// App drives the screen loop: pick the screen for the current route, run it,
// apply its outcome, repeat. Screens are blocking; one screen owns the SDL
// event queue at a time and the loop regains control when it returns.
type App struct {
	Controller *nav.Controller
	Registry   *nav.Registry

	interceptor *nav.BackInterceptor
	breakpoints layout.Breakpoints
	log         *slog.Logger
}

// NewApp wires a controller and registry into an app loop. Zero-value
// breakpoints fall back to the defaults.
func NewApp(ctrl *nav.Controller, registry *nav.Registry, bp layout.Breakpoints, log *slog.Logger) *App {
	if !bp.Valid() {
		bp = layout.DefaultBreakpoints()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &App{
		Controller:  ctrl,
		Registry:    registry,
		interceptor: nav.NewBackInterceptor(ctrl),
		breakpoints: bp,
		log:         log,
	}
}

// Mode selects the layout mode for the window's current logical width.
// Re-evaluated every loop iteration so a live resize re-renders in the new
// mode without restarting anything.
func (a *App) Mode() layout.Mode {
	return a.breakpoints.Select(internal.GetWindow().GetWidth())
}

// AttachBackSource subscribes the hardware back source. Events are delivered
// by synthesizing an escape key press on the SDL queue, so a hardware back
// key behaves exactly like the on-device back button: it reaches whichever
// screen loop is live and flows through the interceptor from there.
func (a *App) AttachBackSource(src nav.BackSource) error {
	return a.interceptor.Attach(src, pushBackEvent)
}

// NewBackButtonSource opens the hardware back key on the given evdev device
// as a nav.BackSource.
func NewBackButtonSource(devicePath string) nav.BackSource {
	return internal.NewBackButtonSource(internal.DefaultBackButtonConfig(devicePath))
}

func pushBackEvent() {
	keysym := sdl.Keysym{Sym: sdl.K_ESCAPE, Scancode: sdl.SCANCODE_ESCAPE}
	sdl.PushEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: keysym})
	sdl.PushEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: keysym})
}

// Run loops until a screen asks to quit or an unhandled back event reaches
// the welcome route. Screen errors other than cancel/quit abort the loop.
func (a *App) Run() error {
	defer a.interceptor.Detach()

	for {
		st := a.Controller.State()
		a.log.Debug("screen", "route", st.CurrentRoute.String())

		out, err := a.Registry.Screen(st.CurrentRoute)(st)
		switch {
		case IsQuit(err):
			return nil
		case IsCancelled(err):
			// A cancelled screen is a back press.
			out = nav.Outcome{Action: nav.ActionBack}
		case err != nil:
			return err
		}

		if a.apply(out) {
			return nil
		}
	}
}

// apply performs one outcome. Returns true when the app should exit.
func (a *App) apply(out nav.Outcome) bool {
	switch out.Action {
	case nav.ActionQuit:
		return true

	case nav.ActionBack:
		if !a.interceptor.Handle() {
			// Unhandled back falls through to the platform default: exit.
			return true
		}

	case nav.ActionDrawer:
		return a.runDrawer()

	case nav.ActionLogout:
		return a.confirmLogout()

	default:
		nav.Dispatch(a.Controller, out)
	}
	return false
}

// runDrawer opens the drawer modal and dispatches the chosen entry. A
// cancelled drawer restores the closed state and stays on the current route.
func (a *App) runDrawer() bool {
	a.Controller.OpenDrawer()

	res, err := Drawer(a.Controller.State(), a.Mode())
	if err != nil {
		a.Controller.CloseDrawer()
		return IsQuit(err)
	}

	if res.Item.Action == nav.ActionLogout {
		a.Controller.CloseDrawer()
		return a.confirmLogout()
	}

	// Dispatch navigates, which closes the drawer as a side effect.
	nav.Dispatch(a.Controller, nav.Outcome{Action: res.Item.Action})
	return false
}

// confirmLogout prompts before clearing the session. Cancelling leaves the
// session and route untouched.
func (a *App) confirmLogout() bool {
	res, err := Confirm(locale.T("LogoutConfirm"), []ConfirmOption{
		{Label: locale.T("LogoutCancel"), Value: false},
		{Label: locale.T("LogoutAccept"), Value: true},
	}, ConfirmSettings{})
	if err != nil {
		return IsQuit(err)
	}

	if accept, ok := res.Value.(bool); ok && accept {
		a.Controller.Logout()
	}
	return false
}
