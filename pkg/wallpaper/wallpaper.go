// Package wallpaper sets the desktop background and rotates it on a
// schedule. Setting goes through a per-OS implementation behind build tags.
package wallpaper

// Set applies the image at path as the desktop wallpaper.
func Set(path string) error {
	return setWallpaper(path)
}
