package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/config"
	"github.com/craole-cc/wallter/pkg/wallpaper"
)

func newSlideshowCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "slideshow",
		Short: "Rotate the wallpaper through downloaded and favorite images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Init()
			if err != nil {
				return err
			}

			every := cfg.Slideshow.Interval.Duration()
			if interval > 0 {
				every = interval
			}
			// A hand-edited config may omit the interval entirely.
			if every <= 0 {
				every = config.DefaultSlideshow().Interval.Duration()
			}

			rotator := wallpaper.NewRotator(cfg.SlideshowSources(), every, cfg.Slideshow.Shuffle)
			cmd.Printf("Rotating wallpapers every %s (Ctrl-C to stop)\n", every)
			return rotator.Run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "override the configured change interval, e.g. 30m")
	return cmd
}
