package main

import (
	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/config"
	"github.com/craole-cc/wallter/pkg/sysinfo"
	"github.com/craole-cc/wallter/pkg/wallhaven"
)

func newSearchCommand() *cobra.Command {
	var (
		page     int
		limit    int
		download bool
		atleast  string
		sorting  string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search wallhaven for wallpapers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Init()
			if err != nil {
				return err
			}

			params := wallhaven.SearchParams{
				Sorting: wallhaven.Sorting(sorting),
				AtLeast: atleast,
			}
			if len(args) > 0 {
				params.Query = args[0]
			}
			// Default the minimum resolution to the primary screen so
			// results actually fit the desktop.
			if params.AtLeast == "" {
				if w, h, err := sysinfo.GetScreenDimensions(); err == nil {
					params.AtLeast = config.Resolution{Width: w, Height: h}.String()
				}
			}

			client := wallhaven.NewClient(cfg.APIKey(), nil)
			result, err := client.Search(cmd.Context(), params, page)
			if err != nil {
				return err
			}

			wps := result.Data
			if limit > 0 && len(wps) > limit {
				wps = wps[:limit]
			}
			for _, wp := range wps {
				cmd.Printf("%s  %-11s %-8s %s\n", wp.ID, wp.Resolution, wp.Category, wp.ShortURL)
			}
			cmd.Printf("page %d/%d, %d results total\n", result.Meta.CurrentPage, result.Meta.LastPage, result.Meta.Total)

			if !download {
				return nil
			}
			paths, err := client.DownloadAll(cmd.Context(), wps, cfg.Path.DownloadsDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				cmd.Printf("downloaded %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many results (0 = all)")
	cmd.Flags().BoolVar(&download, "download", false, "download the listed wallpapers")
	cmd.Flags().StringVar(&atleast, "atleast", "", "minimum resolution, e.g. 1920x1080 (defaults to the primary screen)")
	cmd.Flags().StringVar(&sorting, "sorting", string(wallhaven.SortRandom), "sorting: date_added, relevance, random, views, favorites, toplist")
	return cmd
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <image>",
		Short: "Set the desktop wallpaper to the given image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setWallpaperFile(args[0])
		},
	}
}
