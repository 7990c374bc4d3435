//go:build windows

package sysinfo

import (
	"fmt"
	"syscall"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// GetSystemMetrics indices.
const (
	smCXScreen = 0
	smCYScreen = 1
)

// Displays reports the primary display via GetSystemMetrics. Secondary
// monitors are configured by hand in the config file; enumerating them would
// need EnumDisplayMonitors callbacks.
func Displays() ([]Display, error) {
	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("GetSystemMetrics returned zero screen size")
	}

	return []Display{{
		Name:    `\\.\DISPLAY1`,
		Width:   int(width),
		Height:  int(height),
		Scale:   1.0,
		Primary: true,
	}}, nil
}
