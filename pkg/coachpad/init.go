// Package coachpad is the UI layer of the coaching platform's handheld app:
// SDL setup, the screen components (drawer chrome, dialogs, panels, text
// entry), and the app loop that drives the navigation core in pkg/coachpad/nav.
package coachpad

import (
	"log/slog"

	"coachpad/pkg/coachpad/internal"
	"coachpad/pkg/coachpad/locale"
	"coachpad/pkg/coachpad/theme"
)

// WindowOptions re-exports the SDL window flags for callers outside the
// package tree.
type WindowOptions = internal.WindowOptions

// Options configures app initialization.
type Options struct {
	WindowTitle    string        // Window title in windowed/dev mode
	ShowBackground bool          // Render the theme background image
	WindowOptions  WindowOptions // SDL window flags
	ThemePath      string        // Optional TOML theme file
	Language       string        // BCP 47 tag for UI strings ("en", "es", ...)
	LogPath        string        // Full path for the log file
	LogLevel       string        // "debug", "info", "warn", "error"
}

// Init brings up logging, localization, theming, and SDL.
// Must be called before any other coachpad function. It returns the layout
// breakpoint overrides from the theme file, zero when none were set.
func Init(options Options) (railMin, sidebarMin int32) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetRawLogLevel(options.LogLevel)
	log := internal.GetLogger()

	if err := locale.Init(options.Language); err != nil {
		log.Error("locale init failed, falling back to message IDs", "error", err)
	}

	t := theme.Default()
	if options.ThemePath != "" {
		res, err := theme.Load(options.ThemePath)
		if err != nil {
			log.Warn("theme file rejected, using defaults", "path", options.ThemePath, "error", err)
		} else {
			t = res.Theme
			theme.SetPalettes(res.RolePalettes)
			railMin, sidebarMin = res.RailMinWidth, res.SidebarMinWidth
		}
	}
	internal.SetTheme(t)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions)
	return railMin, sidebarMin
}

// Close releases all SDL resources and shuts down the app layer.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}
