package config

import (
	"github.com/google/uuid"

	"github.com/craole-cc/wallter/pkg/wallhaven"
)

// Source is one saved wallhaven search.
type Source struct {
	// ID is a stable identifier assigned when the source is created.
	ID string `json:"id" toml:"id"`

	// Description is the user's label for the search.
	Description string `json:"description" toml:"description"`

	// Active sources are included in batch downloads.
	Active bool `json:"active" toml:"active"`

	// Params are the wallhaven search parameters.
	Params wallhaven.SearchParams `json:"params" toml:"params"`
}

// NewSource creates an active Source with a fresh ID.
func NewSource(description string, params wallhaven.SearchParams) Source {
	return Source{
		ID:          uuid.NewString(),
		Description: description,
		Active:      true,
		Params:      params,
	}
}

// Search holds the saved wallhaven searches and the API key.
type Search struct {
	// APIKey is the wallhaven API key. Left empty it restricts results
	// to SFW content. The WALLHAVEN_API_KEY environment variable takes
	// precedence.
	APIKey string `json:"api_key" toml:"api_key"`

	// Sources are the saved searches.
	Sources []Source `json:"sources" toml:"sources"`
}

// ActiveSources returns the sources included in batch operations.
func (s *Search) ActiveSources() []Source {
	var active []Source
	for _, src := range s.Sources {
		if src.Active {
			active = append(active, src)
		}
	}
	return active
}
