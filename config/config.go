// Package config manages the wallter configuration tree: paths, monitors,
// color preferences, slideshow settings and saved wallhaven searches. The
// config file lives under the app home directory and is serialized as TOML
// or JSON depending on its extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/craole-cc/wallter/pkg/theme"
	"github.com/craole-cc/wallter/util/log"
)

// Config is the root configuration.
type Config struct {
	Path      Path      `json:"path" toml:"path"`
	Monitors  []Monitor `json:"monitors" toml:"monitors"`
	Color     Color     `json:"color" toml:"color"`
	Slideshow Slideshow `json:"slideshow" toml:"slideshow"`
	Search    Search    `json:"search" toml:"search"`
}

// Default returns a fully populated default configuration.
func Default() *Config {
	return &Config{
		Path:      DefaultPath(),
		Color:     DefaultColor(),
		Slideshow: DefaultSlideshow(),
	}
}

// Init prepares the configuration for use: detects monitors, creates the
// directory tree, loads the config file (writing defaults on first run) and
// applies an explicit color mode.
func Init() (*Config, error) {
	return initWithPath(DefaultPath(), theme.NewManager())
}

func initWithPath(path Path, mgr theme.Manager) (*Config, error) {
	monitors, err := DetectMonitors()
	if err != nil {
		// A headless session still gets a working config tree.
		log.Printf("monitor detection failed: %v", err)
		monitors = nil
	}

	if err := path.CreateAll(monitors); err != nil {
		return nil, err
	}

	cfg, err := Load(path.ConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not load config, falling back to defaults: %v", err)
		}
		cfg = Default()
		cfg.Path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	// Explicit light/dark is applied system-wide; auto leaves the system
	// in control.
	if cfg.Color.Mode == theme.Light || cfg.Color.Mode == theme.Dark {
		if err := mgr.Set(cfg.Color.Mode); err != nil {
			log.Printf("could not apply %s color mode: %v", cfg.Color.Mode, err)
		}
	}

	cfg.Monitors = monitors
	cfg.Path = path
	return cfg, nil
}

// Load reads and decodes the config file at the given path. The format is
// chosen by file extension.
func Load(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	switch FormatFromExtension(file) {
	case FormatJSON:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", file, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", file, err)
		}
	}
	return cfg, nil
}

// Save writes the config to its configured file in the configured format.
func (c *Config) Save() error {
	var (
		data []byte
		err  error
	)
	switch c.Path.ConfigFormat {
	case FormatJSON:
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(c.Path.ConfigFile, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", c.Path.ConfigFile, err)
	}
	return nil
}

// APIKey returns the wallhaven API key, with the environment variable
// taking precedence over the config file.
func (c *Config) APIKey() string {
	if key := os.Getenv("WALLHAVEN_API_KEY"); key != "" {
		return key
	}
	return c.Search.APIKey
}

// SlideshowSources returns the slideshow source directories, defaulting to
// the downloads and favorites directories.
func (c *Config) SlideshowSources() []string {
	if len(c.Slideshow.Sources) > 0 {
		return c.Slideshow.Sources
	}
	return []string{c.Path.DownloadsDir, c.Path.FavoritesDir}
}
