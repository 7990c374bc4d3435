package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/pkg/theme"
	"github.com/craole-cc/wallter/pkg/wallpaper"
)

func newModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [light|dark|auto|toggle]",
		Short: "Show or set the system color mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := theme.NewManager()

			if len(args) == 0 {
				current, err := mgr.Current()
				if err != nil {
					return err
				}
				cmd.Printf("Color mode: %s\n", current)
				return nil
			}

			var target theme.Mode
			if args[0] == "toggle" {
				current, err := mgr.Current()
				if err != nil {
					return err
				}
				target = current.Toggled()
			} else {
				mode, err := theme.ParseMode(args[0])
				if err != nil {
					return err
				}
				target = mode
			}

			if err := mgr.Set(target); err != nil {
				return err
			}
			cmd.Printf("Color mode set to %s\n", target)
			return nil
		},
	}
}

func setWallpaperFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("wallpaper image: %w", err)
	}
	return wallpaper.Set(abs)
}
