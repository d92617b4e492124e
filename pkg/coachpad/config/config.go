// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains the application's runtime parameters.
type Config struct {
	LogPath   string `env:"LOG_PATH" envDefault:"logs/coachpad.log"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Language  string `env:"LANGUAGE" envDefault:"en"`
	ThemePath string `env:"THEME_PATH"`
	IconDir   string `env:"ICON_DIR"`

	Auth Auth `envPrefix:"AUTH_"`
	Back Back `envPrefix:"BACK_"`
}

// Auth configures the login collaborator. With no URL set the app runs in
// demo mode against the canned authenticator.
type Auth struct {
	URL       string        `env:"URL"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
	DemoDelay time.Duration `env:"DEMO_DELAY" envDefault:"800ms"`
}

// Demo reports whether the canned authenticator should be used.
func (a Auth) Demo() bool {
	return a.URL == ""
}

// Back configures the hardware back-button event source.
type Back struct {
	DevicePath string `env:"DEVICE_PATH" envDefault:"/dev/input/event1"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return &cfg, nil
}
