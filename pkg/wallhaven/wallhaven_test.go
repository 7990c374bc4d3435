package wallhaven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamsEncoding(t *testing.T) {
	params := SearchParams{
		Query:      "nature",
		Categories: &Categories{General: true, People: true},
		Purity:     &Purity{SFW: true},
		Sorting:    SortToplist,
		Order:      OrderDesc,
		TopRange:   TopMonth,
		AtLeast:    "1920x1080",
	}

	vals, err := query.Values(params)
	require.NoError(t, err)
	assert.Equal(t, "nature", vals.Get("q"))
	assert.Equal(t, "101", vals.Get("categories"))
	assert.Equal(t, "100", vals.Get("purity"))
	assert.Equal(t, "toplist", vals.Get("sorting"))
	assert.Equal(t, "desc", vals.Get("order"))
	assert.Equal(t, "1M", vals.Get("topRange"))
	assert.Equal(t, "1920x1080", vals.Get("atleast"))
}

func TestSearchParamsZeroValueOmitsEverything(t *testing.T) {
	vals, err := query.Values(SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, vals.Encode())
}

func TestSearch(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "abc123", "short_url": "https://whvn.cc/abc123", "path": "https://w.wallhaven.cc/full/ab/wallhaven-abc123.jpg", "resolution": "2560x1440", "category": "general"},
				{"id": "def456", "short_url": "https://whvn.cc/def456", "path": "https://w.wallhaven.cc/full/de/wallhaven-def456.png", "resolution": "1920x1080", "category": "anime"}
			],
			"meta": {"current_page": 2, "last_page": 10, "per_page": 24, "total": 240}
		}`))
	}))
	defer ts.Close()

	client := NewClient("secret", ts.Client())
	client.SetBaseURL(ts.URL)

	result, err := client.Search(context.Background(), SearchParams{Query: "mountains"}, 2)
	require.NoError(t, err)

	assert.Equal(t, "mountains", gotQuery.Get("q"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "secret", gotQuery.Get("apikey"))

	require.Len(t, result.Data, 2)
	assert.Equal(t, "abc123", result.Data[0].ID)
	assert.Equal(t, "2560x1440", result.Data[0].Resolution)
	assert.Equal(t, 2, result.Meta.CurrentPage)
	assert.Equal(t, 10, result.Meta.LastPage)
	assert.Equal(t, 240, result.Meta.Total)
}

func TestSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient("", ts.Client())
	client.SetBaseURL(ts.URL)

	_, err := client.Search(context.Background(), SearchParams{}, 1)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestDownload(t *testing.T) {
	const imageBody = "not really a jpeg"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(imageBody))
	}))
	defer ts.Close()

	client := NewClient("", ts.Client())
	dir := t.TempDir()

	wp := Wallpaper{ID: "abc123", Path: ts.URL + "/full/ab/wallhaven-abc123.jpg"}
	dest, err := client.Download(context.Background(), wp, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wallhaven-abc123.jpg"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, imageBody, string(data))
}

func TestDownloadAll(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img:" + filepath.Base(r.URL.Path)))
	}))
	defer ts.Close()

	client := NewClient("", ts.Client())
	dir := t.TempDir()

	wps := []Wallpaper{
		{ID: "a", Path: ts.URL + "/a.jpg"},
		{ID: "b", Path: ts.URL + "/b.jpg"},
		{ID: "c", Path: ts.URL + "/c.jpg"},
	}
	paths, err := client.DownloadAll(context.Background(), wps, dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	// Results keep input order regardless of download interleaving.
	assert.Equal(t, filepath.Join(dir, "a.jpg"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.jpg"), paths[1])
	assert.Equal(t, filepath.Join(dir, "c.jpg"), paths[2])

	for i, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "img:"+filepath.Base(wps[i].Path), string(data))
	}
}

func TestDownloadSharedBasename(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img:" + r.URL.Path))
	}))
	defer ts.Close()

	client := NewClient("", ts.Client())
	dir := t.TempDir()

	wps := []Wallpaper{
		{ID: "k8xvlo", Path: ts.URL + "/one/wallpaper.jpg"},
		{ID: "j5mdq9", Path: ts.URL + "/two/wallpaper.jpg"},
	}
	paths, err := client.DownloadAll(context.Background(), wps, dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// Same basename, different wallpapers: both files must survive.
	assert.Equal(t, filepath.Join(dir, "k8xvlo-wallpaper.jpg"), paths[0])
	assert.Equal(t, filepath.Join(dir, "j5mdq9-wallpaper.jpg"), paths[1])

	for i, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "img:"+wps[i].Path[len(ts.URL):], string(data))
	}
}

func TestBits(t *testing.T) {
	assert.Equal(t, "111", bits(true, true, true))
	assert.Equal(t, "100", bits(true, false, false))
	assert.Equal(t, "000", bits(false, false, false))
}
