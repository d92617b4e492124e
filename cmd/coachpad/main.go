package main

import (
	"fmt"
	"os"

	"coachpad/pkg/coachpad"
	"coachpad/pkg/coachpad/config"
	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/session"
)

// version is stamped by the build via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coachpad:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	railMin, sidebarMin := coachpad.Init(coachpad.Options{
		WindowTitle:    "CoachPad",
		ShowBackground: true,
		ThemePath:      cfg.ThemePath,
		Language:       cfg.Language,
		LogPath:        cfg.LogPath,
		LogLevel:       cfg.LogLevel,
	})
	defer coachpad.Close()

	log := coachpad.GetLogger()
	log.Info("starting", "version", version, "language", cfg.Language, "demo", cfg.Auth.Demo())

	bp := layout.DefaultBreakpoints()
	if railMin > 0 {
		bp.RailMinWidth = railMin
	}
	if sidebarMin > 0 {
		bp.SidebarMinWidth = sidebarMin
	}

	var auth session.Authenticator
	if cfg.Auth.Demo() {
		auth = &session.CannedAuthenticator{Delay: cfg.Auth.DemoDelay}
	} else {
		auth = session.NewHTTPAuthenticator(cfg.Auth.URL, cfg.Auth.Timeout)
	}

	ctrl := nav.NewController(nil, log)
	registry := nav.NewRegistry()
	app := coachpad.NewApp(ctrl, registry, bp, log)

	sc := &screens{app: app, auth: auth, timeout: cfg.Auth.Timeout, iconDir: cfg.IconDir}
	sc.register(registry)

	// The hardware back key is optional: desktops and dev builds have none.
	if err := app.AttachBackSource(coachpad.NewBackButtonSource(cfg.Back.DevicePath)); err != nil {
		log.Warn("hardware back key unavailable", "device", cfg.Back.DevicePath, "error", err)
	}

	return app.Run()
}
