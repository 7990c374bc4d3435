// Package wallhaven is a client for the wallhaven.cc wallpaper API. It
// covers search and image download; uploads and user settings are out of
// scope.
package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/craole-cc/wallter/util/log"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://wallhaven.cc/api/v1"

// requestsPerMinute matches the documented wallhaven API limit of 45
// requests per minute. The client throttles itself below it.
const requestsPerMinute = 45

// defaultDownloadConcurrency bounds parallel image downloads in DownloadAll.
const defaultDownloadConcurrency = 4

// Client talks to the wallhaven API. The zero value is not usable; create
// one with NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client. The API key may be empty; it is only required
// for NSFW results and per-user collections. A nil httpClient falls back to
// a client with a sane timeout.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 1),
	}
}

// SetBaseURL points the client at a different endpoint. Used in tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// Search fetches one page of search results for the given parameters.
func (c *Client) Search(ctx context.Context, params SearchParams, page int) (*SearchResult, error) {
	vals, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode search params: %w", err)
	}
	if page > 1 {
		vals.Set("page", strconv.Itoa(page))
	}
	if c.apiKey != "" {
		vals.Set("apikey", c.apiKey)
	}

	u := c.baseURL + "/search?" + vals.Encode()
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var result SearchResult
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	log.Debugf("wallhaven search returned %d of %d results (page %d/%d)",
		len(result.Data), result.Meta.Total, result.Meta.CurrentPage, result.Meta.LastPage)
	return &result, nil
}

// Download fetches the full-size image for wp into dir and returns the path
// of the written file. The file name is taken from the image URL, falling
// back to the wallpaper ID.
func (c *Client) Download(ctx context.Context, wp Wallpaper, dir string) (string, error) {
	body, err := c.get(ctx, wp.Path)
	if err != nil {
		return "", err
	}
	defer body.Close()

	name := filepath.Base(wp.Path)
	if parsed, err := url.Parse(wp.Path); err == nil && parsed.Path != "" {
		name = filepath.Base(parsed.Path)
	}
	switch {
	case name == "." || name == "/":
		name = wp.ID
	case wp.ID != "" && !strings.Contains(name, wp.ID):
		// Distinct wallpapers can share a basename; keep them from
		// clobbering each other.
		name = wp.ID + "-" + name
	}

	dest := filepath.Join(dir, name)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("download %s: %w", wp.Path, err)
	}
	return dest, nil
}

// DownloadAll downloads every wallpaper into dir with bounded concurrency
// and returns the written file paths in the same order as wps. It stops on
// the first failure.
func (c *Client) DownloadAll(ctx context.Context, wps []Wallpaper, dir string) ([]string, error) {
	paths := make([]string, len(wps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultDownloadConcurrency)

	for i, wp := range wps {
		i, wp := i, wp
		g.Go(func() error {
			p, err := c.Download(ctx, wp, dir)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// get performs a rate-limited GET and returns the response body for 2xx
// responses.
func (c *Client) get(ctx context.Context, u string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", u, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", u, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}
	return resp.Body, nil
}
