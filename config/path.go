package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is the on-disk serialization format of the config file.
type Format string

// Supported config file formats.
const (
	FormatToml Format = "toml"
	FormatJSON Format = "json"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}
	return "toml"
}

// FormatFromExtension detects the config format from a file path. Unknown
// extensions fall back to TOML.
func FormatFromExtension(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatToml
}

// Path holds every directory and file location the application uses.
type Path struct {
	// HomeDir is the root for config and wallpapers,
	// e.g. ~/Pictures/Wallter.
	HomeDir string `json:"home_dir" toml:"home_dir"`

	// DownloadsDir collects every downloaded wallpaper.
	DownloadsDir string `json:"downloads_dir" toml:"downloads_dir"`

	// FavoritesDir holds user-curated wallpapers.
	FavoritesDir string `json:"favorites_dir" toml:"favorites_dir"`

	// WallpaperDir holds the current wallpaper for each monitor, one
	// subdirectory per monitor.
	WallpaperDir string `json:"wallpaper_dir" toml:"wallpaper_dir"`

	// ConfigName is the config file name without extension.
	ConfigName string `json:"config_name" toml:"config_name"`

	// ConfigFormat selects TOML or JSON.
	ConfigFormat Format `json:"config_format" toml:"config_format"`

	// ConfigFile is the assembled path to the config file.
	ConfigFile string `json:"config_file" toml:"config_file"`
}

// DefaultPath builds the standard path layout under the user's Pictures
// directory.
func DefaultPath() Path {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative tree; CreateAll will surface the
		// real problem if this is unusable.
		homeDir = "."
	}
	root := filepath.Join(homeDir, "Pictures", AppName)
	name := "config"
	format := FormatToml
	return Path{
		HomeDir:      root,
		DownloadsDir: filepath.Join(root, "downloads"),
		FavoritesDir: filepath.Join(root, "favorites"),
		WallpaperDir: filepath.Join(root, "wallpaper"),
		ConfigName:   name,
		ConfigFormat: format,
		ConfigFile:   filepath.Join(root, name+"."+format.Extension()),
	}
}

// CreateAll materializes the directory tree, including one wallpaper
// subdirectory per monitor.
func (p *Path) CreateAll(monitors []Monitor) error {
	dirs := []string{p.HomeDir, p.DownloadsDir, p.FavoritesDir, p.WallpaperDir}
	for _, m := range monitors {
		dirs = append(dirs, p.MonitorWallpaperDir(m))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// MonitorWallpaperDir returns the per-monitor wallpaper directory.
func (p *Path) MonitorWallpaperDir(m Monitor) string {
	return filepath.Join(p.WallpaperDir, m.DirName())
}
