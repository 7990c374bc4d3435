// Package theme switches the OS between light and dark color modes. Each
// platform gets its own Manager implementation behind a build tag; platforms
// without one fall back to a no-op manager.
package theme

import "fmt"

// Mode is the desired system color mode.
type Mode string

// Supported color modes. Auto leaves the system in control.
const (
	Light Mode = "light"
	Dark  Mode = "dark"
	Auto  Mode = "auto"
)

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark, Auto:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want light, dark or auto)", s)
	}
}

// MarshalText implements encoding.TextMarshaler so Mode round-trips through
// TOML and JSON config files.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Toggled returns the opposite explicit mode. Auto toggles to dark.
func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Manager applies and inspects the system color mode.
type Manager interface {
	// Current reports the mode the system is in right now.
	Current() (Mode, error)

	// Set switches the system to the given explicit mode. Setting Auto is
	// a no-op; the system keeps whatever it has.
	Set(mode Mode) error
}

// NewManager returns the Manager for the current platform.
func NewManager() Manager { return newManager() }

// NoopManager is the fallback for platforms without theme support.
type NoopManager struct{}

// Current always reports Auto.
func (NoopManager) Current() (Mode, error) { return Auto, nil }

// Set does nothing.
func (NoopManager) Set(Mode) error { return nil }
