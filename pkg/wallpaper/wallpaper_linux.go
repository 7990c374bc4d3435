//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// setWallpaper dispatches on the desktop environment.
func setWallpaper(imagePath string) error {
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktop == "" {
		desktop = os.Getenv("DESKTOP_SESSION")
	}

	switch d := strings.ToLower(desktop); {
	case strings.Contains(d, "gnome"), strings.Contains(d, "unity"), strings.Contains(d, "cinnamon"):
		return setGNOME(imagePath)
	case strings.Contains(d, "kde"):
		return setKDE(imagePath)
	default:
		// feh works on most bare window managers.
		if out, err := exec.Command("feh", "--bg-fill", imagePath).CombinedOutput(); err != nil {
			return fmt.Errorf("unsupported desktop environment %q (feh fallback failed: %v, %s)", desktop, err, strings.TrimSpace(string(out)))
		}
		return nil
	}
}

// setGNOME sets both the light and dark picture URIs so the wallpaper
// survives a color mode switch.
func setGNOME(imagePath string) error {
	uri := "file://" + imagePath
	for _, key := range []string{"picture-uri", "picture-uri-dark"} {
		cmd := exec.Command("gsettings", "set", "org.gnome.desktop.background", key, uri)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("gsettings set %s: %w (%s)", key, err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}

func setKDE(imagePath string) error {
	script := fmt.Sprintf(`
		var allDesktops = desktops();
		for (i = 0; i < allDesktops.length; i++) {
			d = allDesktops[i];
			d.wallpaperPlugin = "org.kde.image";
			d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
			d.writeConfig("Image", "file://%s");
		}`, imagePath)
	cmd := exec.Command("qdbus", "org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("qdbus evaluateScript: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}
