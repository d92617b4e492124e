package internal

import (
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"coachpad/pkg/coachpad/nav"
)

// BackButtonConfig describes the hardware back key to watch.
type BackButtonConfig struct {
	DevicePath string         // evdev device, e.g. /dev/input/event1
	Keys       []evdev.EvCode // key codes treated as "back"
	CoolDown   time.Duration  // minimum gap between delivered events
}

// DefaultBackButtonConfig watches the usual back/escape keys with a short
// cool-down so a bouncy switch does not double-fire.
func DefaultBackButtonConfig(devicePath string) BackButtonConfig {
	return BackButtonConfig{
		DevicePath: devicePath,
		Keys:       []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC},
		CoolDown:   150 * time.Millisecond,
	}
}

// BackButtonSource reads a hardware back key from an evdev device and
// implements nav.BackSource. Each Subscribe opens the device and starts a
// reader goroutine; Remove closes the device, which unblocks the reader.
type BackButtonSource struct {
	cfg BackButtonConfig
}

// NewBackButtonSource creates a source for the configured device.
func NewBackButtonSource(cfg BackButtonConfig) *BackButtonSource {
	return &BackButtonSource{cfg: cfg}
}

type backButtonSubscription struct {
	dev     *evdev.InputDevice
	stopped *atomic.Bool
	wg      sync.WaitGroup
}

// Subscribe opens the device and delivers one handler call per back key
// press until Remove.
func (s *BackButtonSource) Subscribe(handler func()) (nav.BackSubscription, error) {
	dev, err := evdev.Open(s.cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	sub := &backButtonSubscription{
		dev:     dev,
		stopped: atomic.NewBool(false),
	}

	keys := make(map[evdev.EvCode]bool, len(s.cfg.Keys))
	for _, k := range s.cfg.Keys {
		keys[k] = true
	}

	sub.wg.Add(1)
	go func() {
		defer sub.wg.Done()

		log := GetLogger()
		log.Debug("back-button watcher started", "device", s.cfg.DevicePath)

		var lastFired time.Time
		for {
			event, err := sub.dev.ReadOne()
			if err != nil {
				// Closed device or read failure; either way the watcher is done.
				if !sub.stopped.Load() {
					log.Warn("back-button device read failed", "error", err)
				}
				return
			}

			if event.Type != evdev.EV_KEY || event.Value != 1 || !keys[event.Code] {
				continue
			}
			if s.cfg.CoolDown > 0 && time.Since(lastFired) < s.cfg.CoolDown {
				continue
			}
			lastFired = time.Now()

			handler()
		}
	}()

	return sub, nil
}

// Remove stops the watcher and waits for the reader goroutine to exit.
// Idempotent.
func (s *backButtonSubscription) Remove() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.dev.Close()
	s.wg.Wait()
}
