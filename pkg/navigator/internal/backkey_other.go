//go:build !linux

package internal

import (
	"context"
	"errors"
	"sync"
	"time"
)

// BackKeyConfig describes which input device counts as a back key source.
type BackKeyConfig struct {
	DevicePath string
	CoolDown   time.Duration
}

// DefaultBackKeyConfig returns a config for the given device path.
func DefaultBackKeyConfig(devicePath string) BackKeyConfig {
	return BackKeyConfig{DevicePath: devicePath, CoolDown: 250 * time.Millisecond}
}

// BackKeyHandler is only available on Linux.
func BackKeyHandler(_ context.Context, wg *sync.WaitGroup, _ BackKeyConfig, _ func()) error {
	defer wg.Done()
	return errors.New("back key device input requires linux evdev")
}
