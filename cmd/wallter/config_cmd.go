package main

import (
	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration",
	}
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Init()
			if err != nil {
				return err
			}
			printConfig(cmd, cfg)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the directory tree and a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Init()
			if err != nil {
				return err
			}
			cmd.Printf("Config ready at %s\n", cfg.Path.ConfigFile)
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println("Configuration:")
	cmd.Println("  Paths:")
	cmd.Printf("    Home:      %s\n", cfg.Path.HomeDir)
	cmd.Printf("    Downloads: %s\n", cfg.Path.DownloadsDir)
	cmd.Printf("    Favorites: %s\n", cfg.Path.FavoritesDir)
	cmd.Printf("    Wallpaper: %s\n", cfg.Path.WallpaperDir)
	cmd.Printf("    File:      %s (%s)\n", cfg.Path.ConfigFile, cfg.Path.ConfigFormat)

	if len(cfg.Monitors) == 0 {
		cmd.Println("  Monitors: none detected")
	} else {
		cmd.Println("  Monitors:")
		for _, m := range cfg.Monitors {
			cmd.Printf("    %s\n", m)
			cmd.Printf("      Wallpapers: %s\n", cfg.Path.MonitorWallpaperDir(m))
		}
	}

	cmd.Println("  Colors:")
	cmd.Printf("    Mode:   %s\n", cfg.Color.Mode)
	if len(cfg.Color.Colors) == 0 {
		cmd.Println("    Colors: none specified")
	} else {
		cmd.Printf("    Colors: %v\n", cfg.Color.Colors)
	}

	cmd.Printf("  Slideshow: enabled=%v interval=%s shuffle=%v\n",
		cfg.Slideshow.Enabled, cfg.Slideshow.Interval, cfg.Slideshow.Shuffle)

	if len(cfg.Search.Sources) == 0 {
		cmd.Println("  Search: no sources configured")
	} else {
		cmd.Println("  Search:")
		for _, src := range cfg.Search.Sources {
			state := "inactive"
			if src.Active {
				state = "active"
			}
			desc := src.Description
			if desc == "" {
				desc = src.Params.Query
			}
			cmd.Printf("    %s (%s)\n", desc, state)
		}
	}
}
