package config

import (
	"math/rand"

	"github.com/craole-cc/wallter/pkg/theme"
)

// defaultRandomColorCount is how many colors a fresh config seeds for
// wallpaper filtering.
const defaultRandomColorCount = 5

// AllowedColors is the set of color tags wallhaven accepts for filtering.
var AllowedColors = []string{
	"#660000", "#990000", "#cc0000", "#cc3333", "#ea4c88", "#993399", "#663399",
	"#333399", "#0066cc", "#0099cc", "#66cccc", "#77cc33", "#669900", "#336600",
	"#666600", "#999900", "#cccc33", "#ffff00", "#ffcc33", "#ff9900", "#ff6600",
	"#cc6633", "#996633", "#663300", "#000000", "#999999", "#cccccc", "#ffffff",
	"#424153",
}

// Color holds the user's color preferences: the system color mode and a
// list of color tags used to filter wallpapers.
type Color struct {
	// Mode is the desired system color mode. Light and Dark are applied
	// system-wide at startup; Auto leaves the system alone.
	Mode theme.Mode `json:"mode" toml:"mode"`

	// Colors are hex color tags, validated against AllowedColors.
	Colors []string `json:"colors" toml:"colors"`
}

// DefaultColor returns an Auto mode config seeded with random color tags.
func DefaultColor() Color {
	return Color{
		Mode:   theme.Auto,
		Colors: RandomColors(defaultRandomColorCount),
	}
}

// ValidColors filters the list down to entries present in AllowedColors.
func ValidColors(colors []string) []string {
	allowed := make(map[string]bool, len(AllowedColors))
	for _, c := range AllowedColors {
		allowed[c] = true
	}
	var out []string
	for _, c := range colors {
		if allowed[c] {
			out = append(out, c)
		}
	}
	return out
}

// RandomColors picks count unique colors from AllowedColors in random
// order. Asking for more than exist returns all of them shuffled.
func RandomColors(count int) []string {
	if count <= 0 {
		return nil
	}
	shuffled := append([]string(nil), AllowedColors...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
