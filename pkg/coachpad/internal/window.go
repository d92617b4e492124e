package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"coachpad/pkg/coachpad/constants"
)

// Window wraps the SDL window and renderer with app-level state.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)
	if err != nil {
		GetLogger().Error("failed to query display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, winOpts)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) *Window {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		width = devSizeOverride(constants.WindowWidthEnvVar, 1024)
		height = devSizeOverride(constants.WindowHeightEnvVar, 768)
	}

	GetLogger().Debug("initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetLogger().Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}

	win.loadBackground()

	return win
}

func devSizeOverride(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetLogger().Warn("invalid window size override; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground() {
	t := GetTheme()
	if t.BackgroundImagePath == "" {
		return
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	bgTexture, err := img.LoadTexture(window.Renderer, t.BackgroundImagePath)
	if err != nil {
		GetLogger().Warn("failed to load background image", "path", t.BackgroundImagePath, "error", err)
		return
	}
	window.Background = bgTexture
}

// GetWidth returns the window's logical width in pixels.
func (window *Window) GetWidth() int32 {
	w, _ := window.Renderer.GetLogicalSize()
	return w
}

// GetHeight returns the window's logical height in pixels.
func (window *Window) GetHeight() int32 {
	_, h := window.Renderer.GetLogicalSize()
	return h
}

// RenderBackground draws the theme background image, if one was loaded and
// backgrounds are enabled for this window.
func (window *Window) RenderBackground() {
	if window.DisplayBackground && window.Background != nil {
		window.Renderer.Copy(window.Background, nil, nil)
	}
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	if window.Renderer != nil {
		window.Renderer.Destroy()
	}
	if window.Window != nil {
		window.Window.Destroy()
	}
}
