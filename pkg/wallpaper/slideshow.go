package wallpaper

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/craole-cc/wallter/util/log"
)

// imageExtensions lists the file types the rotator will pick up.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// Rotator cycles the wallpaper through the images found in its source
// directories.
type Rotator struct {
	sources  []string
	interval time.Duration
	shuffle  bool

	setFunc func(string) error // swapped out in tests
}

// NewRotator creates a Rotator over the given directories.
func NewRotator(sources []string, interval time.Duration, shuffle bool) *Rotator {
	return &Rotator{
		sources:  sources,
		interval: interval,
		shuffle:  shuffle,
		setFunc:  Set,
	}
}

// Images returns the candidate image files across all source directories,
// sorted by path. Missing directories are skipped.
func (r *Rotator) Images() ([]string, error) {
	var images []string
	for _, dir := range r.sources {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read source dir %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				images = append(images, filepath.Join(dir, entry.Name()))
			}
		}
	}
	sort.Strings(images)
	return images, nil
}

// Run rotates the wallpaper until the context is canceled. The first image
// is applied immediately.
func (r *Rotator) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("invalid rotation interval %s", r.interval)
	}

	images, err := r.Images()
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("no images found in %s", strings.Join(r.sources, ", "))
	}
	if r.shuffle {
		rand.Shuffle(len(images), func(i, j int) {
			images[i], images[j] = images[j], images[i]
		})
	}

	idx := 0
	apply := func() {
		if err := r.setFunc(images[idx]); err != nil {
			log.Printf("failed to set wallpaper %s: %v", images[idx], err)
		} else {
			log.Debugf("wallpaper set to %s", images[idx])
		}
		idx = (idx + 1) % len(images)
	}
	apply()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			apply()
		}
	}
}
