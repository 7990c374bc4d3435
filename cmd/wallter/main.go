package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/config"
)

func main() {
	// Pick up WALLHAVEN_API_KEY and friends from a local .env if present.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wallter",
		Short:        "A wallpaper management utility",
		Long:         "wallter searches wallhaven.cc for wallpapers, downloads them per monitor,\nand manages the OS light/dark color mode including Windows Night Light.",
		Version:      version(),
		SilenceUsage: true,
	}

	root.AddCommand(newConfigCommand())
	root.AddCommand(newSearchCommand())
	root.AddCommand(newSetCommand())
	root.AddCommand(newModeCommand())
	root.AddCommand(newNightlightCommand())
	root.AddCommand(newSlideshowCommand())

	return root
}

func version() string {
	if config.AppVersion == "" {
		return "dev"
	}
	return config.AppVersion
}
