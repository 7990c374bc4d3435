// Package sysinfo enumerates the machine's displays. Each platform has its
// own implementation of Displays behind a build tag.
package sysinfo

import "fmt"

// Display describes one attached monitor.
type Display struct {
	// Name is the OS-assigned connector or device name, e.g. "eDP-1".
	Name string

	// Width and Height are the pixel resolution.
	Width  int
	Height int

	// X and Y position the display in the virtual screen space.
	X int
	Y int

	// Scale is the DPI scale factor; 1.0 when unknown.
	Scale float64

	// Primary marks the main display.
	Primary bool
}

// GetScreenDimensions returns the primary display's resolution in pixels.
func GetScreenDimensions() (int, int, error) {
	displays, err := Displays()
	if err != nil {
		return 0, 0, err
	}
	if len(displays) == 0 {
		return 0, 0, fmt.Errorf("no displays detected")
	}
	for _, d := range displays {
		if d.Primary {
			return d.Width, d.Height, nil
		}
	}
	return displays[0].Width, displays[0].Height, nil
}
