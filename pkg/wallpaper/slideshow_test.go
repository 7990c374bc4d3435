package wallpaper

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImages(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
	}
}

func TestRotatorImages(t *testing.T) {
	root := t.TempDir()
	downloads := filepath.Join(root, "downloads")
	favorites := filepath.Join(root, "favorites")
	writeImages(t, downloads, "b.jpg", "a.png", "notes.txt")
	writeImages(t, favorites, "c.webp")
	require.NoError(t, os.MkdirAll(filepath.Join(downloads, "subdir.jpg"), 0755))

	r := NewRotator([]string{downloads, favorites, filepath.Join(root, "missing")}, time.Minute, false)

	images, err := r.Images()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(downloads, "a.png"),
		filepath.Join(downloads, "b.jpg"),
		filepath.Join(favorites, "c.webp"),
	}, images)
}

func TestRotatorRun(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "a.jpg", "b.jpg")

	var (
		mu      sync.Mutex
		applied []string
	)
	done := make(chan struct{})
	r := NewRotator([]string{dir}, 10*time.Millisecond, false)
	r.setFunc = func(path string) error {
		mu.Lock()
		defer mu.Unlock()
		applied = append(applied, filepath.Base(path))
		if len(applied) == 3 {
			close(done)
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rotator never cycled")
	}
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	// The first image is applied immediately, then the list wraps around.
	assert.Equal(t, []string{"a.jpg", "b.jpg", "a.jpg"}, applied[:3])
}

func TestRotatorRunRejectsNonPositiveInterval(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "a.jpg")

	for _, interval := range []time.Duration{0, -time.Second} {
		r := NewRotator([]string{dir}, interval, false)
		err := r.Run(context.Background())
		assert.ErrorContains(t, err, "interval")
	}
}

func TestRotatorRunNoImages(t *testing.T) {
	r := NewRotator([]string{t.TempDir()}, time.Minute, false)
	err := r.Run(context.Background())
	assert.ErrorContains(t, err, "no images")
}
