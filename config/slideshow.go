package config

import (
	"fmt"
	"time"
)

// IntervalUnit is the time unit of a slideshow interval.
type IntervalUnit string

// Supported interval units.
const (
	Seconds IntervalUnit = "seconds"
	Minutes IntervalUnit = "minutes"
	Hours   IntervalUnit = "hours"
	Days    IntervalUnit = "days"
)

// Interval is a slideshow change interval expressed in a human-friendly
// unit, e.g. "30 minutes".
type Interval struct {
	Value int          `json:"value" toml:"value"`
	Unit  IntervalUnit `json:"unit" toml:"unit"`
}

// Duration converts the interval to a time.Duration. Unknown units count as
// seconds.
func (i Interval) Duration() time.Duration {
	switch i.Unit {
	case Minutes:
		return time.Duration(i.Value) * time.Minute
	case Hours:
		return time.Duration(i.Value) * time.Hour
	case Days:
		return time.Duration(i.Value) * 24 * time.Hour
	default:
		return time.Duration(i.Value) * time.Second
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("%d %s", i.Value, i.Unit)
}

// Slideshow configures wallpaper rotation.
type Slideshow struct {
	Enabled bool `json:"enabled" toml:"enabled"`

	// Interval is how often the wallpaper changes.
	Interval Interval `json:"interval" toml:"interval"`

	// Shuffle randomizes the rotation order.
	Shuffle bool `json:"shuffle" toml:"shuffle"`

	// Sources are the directories rotated through. Empty means the
	// downloads and favorites directories.
	Sources []string `json:"sources" toml:"sources"`
}

// DefaultSlideshow returns a disabled slideshow changing every minute.
func DefaultSlideshow() Slideshow {
	return Slideshow{
		Enabled:  false,
		Interval: Interval{Value: 60, Unit: Seconds},
		Shuffle:  true,
	}
}
