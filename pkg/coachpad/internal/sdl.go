package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"coachpad/pkg/coachpad/constants"
)

var window *Window

// Init brings up SDL, the window, fonts, and input. Called once from the
// public Init.
func Init(title string, showBackground bool, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		GetLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetLogger().Error("TTF init failed", "error", err)
		os.Exit(1)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Fullscreen: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	if err := initFonts(GetTheme()); err != nil {
		GetLogger().Error("font init failed", "error", err)
		os.Exit(1)
	}
}

// GetWindow returns the app window wrapper.
func GetWindow() *Window {
	return window
}

// SDLCleanup releases every SDL resource. Must run before process exit.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
