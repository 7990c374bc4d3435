//go:build windows

package theme

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/craole-cc/wallter/pkg/nightlight"
	"github.com/craole-cc/wallter/util/log"
)

const (
	personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	appsThemeVal   = "AppsUseLightTheme"
	systemThemeVal = "SystemUsesLightTheme"
)

// windowsManager flips the per-user Personalize registry values and drives
// Night Light alongside: dark mode turns the blue light filter on, light
// mode turns it off.
type windowsManager struct {
	nl *nightlight.Service
}

func newManager() Manager {
	return &windowsManager{nl: nightlight.NewService(nil)}
}

// Current reads AppsUseLightTheme; 0 means dark.
func (m *windowsManager) Current() (Mode, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return Auto, fmt.Errorf("open registry key %q: %w", personalizeKey, err)
	}
	defer key.Close()

	val, _, err := key.GetIntegerValue(appsThemeVal)
	if err != nil {
		// Older Windows builds predate the value and default to light.
		if errors.Is(err, registry.ErrNotExist) {
			return Light, nil
		}
		return Auto, fmt.Errorf("read registry value %q: %w", appsThemeVal, err)
	}
	if val == 0 {
		return Dark, nil
	}
	return Light, nil
}

// Set writes both theme values so apps and the taskbar stay consistent, then
// syncs Night Light to the new mode.
func (m *windowsManager) Set(mode Mode) error {
	if mode == Auto {
		return nil
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open registry key %q for writing: %w", personalizeKey, err)
	}
	defer key.Close()

	var value uint32
	if mode == Light {
		value = 1
	}
	if err := key.SetDWordValue(appsThemeVal, value); err != nil {
		return fmt.Errorf("set registry value %q: %w", appsThemeVal, err)
	}
	if err := key.SetDWordValue(systemThemeVal, value); err != nil {
		return fmt.Errorf("set registry value %q: %w", systemThemeVal, err)
	}

	if err := m.syncNightlight(mode); err != nil {
		// A machine where Night Light was never initialized has no blob
		// to update; the theme switch itself still succeeded.
		if errors.Is(err, nightlight.ErrNotFound) {
			log.Debugf("nightlight state missing, skipping sync: %v", err)
			return nil
		}
		return fmt.Errorf("sync nightlight with %s mode: %w", mode, err)
	}
	return nil
}

func (m *windowsManager) syncNightlight(mode Mode) error {
	if mode == Dark {
		_, err := m.nl.Enable()
		return err
	}
	_, err := m.nl.Disable()
	return err
}
