//go:build linux

package theme

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// linuxManager shells out to the desktop environment's own tooling:
// gsettings on GNOME and friends, plasma-apply-colorscheme plus
// kwriteconfig5 on KDE.
type linuxManager struct{}

func newManager() Manager { return &linuxManager{} }

func desktopEnvironment() string {
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktop == "" {
		desktop = os.Getenv("DESKTOP_SESSION")
	}
	return strings.ToLower(desktop)
}

// Current queries gsettings where available; KDE has no single reliable
// query command, so kdeglobals is read directly.
func (m *linuxManager) Current() (Mode, error) {
	desktop := desktopEnvironment()
	switch {
	case strings.Contains(desktop, "kde"):
		out, err := exec.Command("kreadconfig5", "--file", "kdeglobals", "--group", "General", "--key", "ColorScheme").Output()
		if err != nil {
			return Auto, fmt.Errorf("kreadconfig5: %w", err)
		}
		if strings.Contains(strings.ToLower(string(out)), "dark") {
			return Dark, nil
		}
		return Light, nil
	default:
		out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
		if err != nil {
			return Auto, fmt.Errorf("gsettings get color-scheme: %w", err)
		}
		if strings.Contains(string(out), "prefer-dark") {
			return Dark, nil
		}
		return Light, nil
	}
}

// Set applies the mode through the desktop environment's tooling.
func (m *linuxManager) Set(mode Mode) error {
	if mode == Auto {
		return nil
	}

	desktop := desktopEnvironment()
	switch {
	case strings.Contains(desktop, "kde"):
		return m.setKDE(mode)
	case strings.Contains(desktop, "gnome"), strings.Contains(desktop, "unity"), strings.Contains(desktop, "cinnamon"):
		return m.setGNOME(mode)
	default:
		// Try gsettings anyway; most freedesktop environments honor it.
		return m.setGNOME(mode)
	}
}

func (m *linuxManager) setGNOME(mode Mode) error {
	scheme := "default"
	if mode == Dark {
		scheme = "prefer-dark"
	}
	cmd := exec.Command("gsettings", "set", "org.gnome.desktop.interface", "color-scheme", scheme)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("gsettings set color-scheme %s: %w (%s)", scheme, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (m *linuxManager) setKDE(mode Mode) error {
	scheme := "BreezeLight"
	if mode == Dark {
		scheme = "BreezeDark"
	}
	cmd := exec.Command("plasma-apply-colorscheme", scheme)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("plasma-apply-colorscheme %s: %w (%s)", scheme, err, strings.TrimSpace(string(out)))
	}

	// Persist the choice in kdeglobals as well; a failure here is not
	// fatal since the scheme is already applied.
	persist := exec.Command("kwriteconfig5", "--file", "kdeglobals", "--group", "General", "--key", "ColorScheme", scheme)
	_ = persist.Run()
	return nil
}
