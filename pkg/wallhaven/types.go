package wallhaven

import (
	"fmt"
	"net/url"
)

// Sorting selects the order wallhaven returns search results in.
type Sorting string

// Supported sorting methods.
const (
	SortDateAdded Sorting = "date_added"
	SortRelevance Sorting = "relevance"
	SortRandom    Sorting = "random"
	SortViews     Sorting = "views"
	SortFavorites Sorting = "favorites"
	SortToplist   Sorting = "toplist"
)

// Order is the sorting direction.
type Order string

// Supported sorting orders.
const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

// TopRange is the time window used when sorting by toplist.
type TopRange string

// Supported toplist ranges.
const (
	TopDay         TopRange = "1d"
	TopThreeDays   TopRange = "3d"
	TopWeek        TopRange = "1w"
	TopMonth       TopRange = "1M"
	TopThreeMonths TopRange = "3M"
	TopSixMonths   TopRange = "6M"
	TopYear        TopRange = "1y"
)

// Categories is the wallhaven category filter triple. It encodes to the
// API's three-digit bitstring form, e.g. "101" for general+people.
type Categories struct {
	General bool `json:"general" toml:"general"`
	Anime   bool `json:"anime" toml:"anime"`
	People  bool `json:"people" toml:"people"`
}

// EncodeValues implements query.Encoder for go-querystring.
func (c Categories) EncodeValues(key string, v *url.Values) error {
	v.Set(key, bits(c.General, c.Anime, c.People))
	return nil
}

// Purity is the wallhaven purity filter triple, encoded like Categories.
// NSFW results require an API key.
type Purity struct {
	SFW     bool `json:"sfw" toml:"sfw"`
	Sketchy bool `json:"sketchy" toml:"sketchy"`
	NSFW    bool `json:"nsfw" toml:"nsfw"`
}

// EncodeValues implements query.Encoder for go-querystring.
func (p Purity) EncodeValues(key string, v *url.Values) error {
	v.Set(key, bits(p.SFW, p.Sketchy, p.NSFW))
	return nil
}

func bits(flags ...bool) string {
	s := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

// SearchParams are the query parameters for the wallhaven search endpoint.
// The zero value searches with the API defaults. Struct tags drive both the
// query-string encoding (go-querystring) and config file serialization.
type SearchParams struct {
	Query       string      `json:"query,omitempty" toml:"query,omitempty" url:"q,omitempty"`
	Categories  *Categories `json:"categories,omitempty" toml:"categories,omitempty" url:"categories,omitempty"`
	Purity      *Purity     `json:"purity,omitempty" toml:"purity,omitempty" url:"purity,omitempty"`
	Sorting     Sorting     `json:"sorting,omitempty" toml:"sorting,omitempty" url:"sorting,omitempty"`
	Order       Order       `json:"order,omitempty" toml:"order,omitempty" url:"order,omitempty"`
	TopRange    TopRange    `json:"top_range,omitempty" toml:"top_range,omitempty" url:"topRange,omitempty"`
	AtLeast     string      `json:"atleast,omitempty" toml:"atleast,omitempty" url:"atleast,omitempty"`
	Resolutions string      `json:"resolutions,omitempty" toml:"resolutions,omitempty" url:"resolutions,omitempty"`
	Ratios      string      `json:"ratios,omitempty" toml:"ratios,omitempty" url:"ratios,omitempty"`
	Colors      string      `json:"colors,omitempty" toml:"colors,omitempty" url:"colors,omitempty"`
	Seed        string      `json:"-" toml:"-" url:"seed,omitempty"`
}

// Wallpaper is a single search result as returned by the API.
type Wallpaper struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	ShortURL   string   `json:"short_url"`
	Path       string   `json:"path"`
	Resolution string   `json:"resolution"`
	DimensionX int      `json:"dimension_x"`
	DimensionY int      `json:"dimension_y"`
	Ratio      string   `json:"ratio"`
	FileSize   int64    `json:"file_size"`
	FileType   string   `json:"file_type"`
	Colors     []string `json:"colors"`
	Purity     string   `json:"purity"`
	Category   string   `json:"category"`
}

// Meta carries the pagination block of a search response.
type Meta struct {
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	Seed        string `json:"seed"`
}

// SearchResult is a decoded page of search results.
type SearchResult struct {
	Data []Wallpaper `json:"data"`
	Meta Meta        `json:"meta"`
}

// StatusError reports a non-2xx HTTP response from the API.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wallhaven returned HTTP %d for %s", e.Code, e.URL)
}
