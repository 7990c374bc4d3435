//go:build !windows && !linux

package wallpaper

import "fmt"

func setWallpaper(string) error {
	return fmt.Errorf("setting the wallpaper is not supported on this platform")
}
