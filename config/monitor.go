package config

import (
	"fmt"
	"strings"

	"github.com/craole-cc/wallter/pkg/sysinfo"
)

// Resolution is a monitor's pixel resolution.
type Resolution struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Orientation describes the shape of a monitor.
type Orientation string

// Monitor orientations.
const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// OrientationOf derives the orientation from a resolution.
func OrientationOf(r Resolution) Orientation {
	switch {
	case r.Width > r.Height:
		return Landscape
	case r.Width < r.Height:
		return Portrait
	default:
		return Square
	}
}

// Monitor describes a physical monitor and its properties.
type Monitor struct {
	// ID is the enumeration index of the monitor.
	ID int `json:"id" toml:"id"`

	// Name is the connector or device name, e.g. "DP-1".
	Name string `json:"name" toml:"name"`

	Resolution  Resolution  `json:"resolution" toml:"resolution"`
	Orientation Orientation `json:"orientation" toml:"orientation"`

	// Scale is the DPI scale factor, 1.0 for 100%.
	Scale float64 `json:"scale" toml:"scale"`

	// X and Y position the monitor in the virtual screen space.
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`

	// Primary marks the main monitor.
	Primary bool `json:"primary" toml:"primary"`
}

// DirName returns the name used for the monitor's wallpaper subdirectory.
func (m Monitor) DirName() string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, m.Name)
	if name == "" {
		name = fmt.Sprintf("monitor-%d", m.ID)
	}
	return strings.ToLower(name)
}

func (m Monitor) String() string {
	primary := ""
	if m.Primary {
		primary = " (primary)"
	}
	return fmt.Sprintf("%s%s %s %s at %d,%d scale %.2f", m.Name, primary, m.Resolution, m.Orientation, m.X, m.Y, m.Scale)
}

// DetectMonitors enumerates the currently attached monitors.
func DetectMonitors() ([]Monitor, error) {
	displays, err := sysinfo.Displays()
	if err != nil {
		return nil, fmt.Errorf("detect monitors: %w", err)
	}

	monitors := make([]Monitor, len(displays))
	for i, d := range displays {
		res := Resolution{Width: d.Width, Height: d.Height}
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("Monitor %d", i)
		}
		monitors[i] = Monitor{
			ID:          i,
			Name:        name,
			Resolution:  res,
			Orientation: OrientationOf(res),
			Scale:       d.Scale,
			X:           d.X,
			Y:           d.Y,
			Primary:     d.Primary,
		}
	}
	return monitors, nil
}
