//go:build linux

package internal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// BackKeyConfig describes which input device and key codes count as a back press.
type BackKeyConfig struct {
	DevicePath string
	Codes      []evdev.EvCode
	CoolDown   time.Duration // Ignore repeats arriving sooner than this
}

// DefaultBackKeyConfig watches KEY_BACK and KEY_ESC on the given device.
func DefaultBackKeyConfig(devicePath string) BackKeyConfig {
	return BackKeyConfig{
		DevicePath: devicePath,
		Codes:      []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC},
		CoolDown:   250 * time.Millisecond,
	}
}

func (c BackKeyConfig) matches(code evdev.EvCode) bool {
	for _, candidate := range c.Codes {
		if candidate == code {
			return true
		}
	}
	return false
}

// BackKeyHandler reads key events from the configured evdev device and calls
// onBack for every key-down of a back code. It returns when ctx is cancelled
// or the device fails. onBack is called from the reader goroutine; callers
// must marshal onto their UI loop.
func BackKeyHandler(ctx context.Context, wg *sync.WaitGroup, cfg BackKeyConfig, onBack func()) error {
	defer wg.Done()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return fmt.Errorf("open back key device %s: %w", cfg.DevicePath, err)
	}

	name, _ := dev.Name()
	GetInternalLogger().Debug("Watching back key device", "path", cfg.DevicePath, "name", name)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		dev.Close()
	}()

	var lastPress time.Time
	for {
		event, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read back key device %s: %w", cfg.DevicePath, err)
		}

		if event.Type != evdev.EV_KEY || event.Value != 1 || !cfg.matches(event.Code) {
			continue
		}

		if now := time.Now(); now.Sub(lastPress) >= cfg.CoolDown {
			lastPress = now
			onBack()
		}
	}
}
