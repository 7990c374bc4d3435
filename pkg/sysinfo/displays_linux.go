//go:build linux

package sysinfo

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// connectedRegex matches xrandr output lines like
// "eDP-1 connected primary 1920x1080+0+0 (normal left ...) 344mm x 194mm".
var connectedRegex = regexp.MustCompile(`^(\S+) connected( primary)? (\d+)x(\d+)\+(-?\d+)\+(-?\d+)`)

// Displays enumerates monitors with xrandr.
func Displays() ([]Display, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("run xrandr: %w", err)
	}
	displays := parseXrandr(string(out))
	if len(displays) == 0 {
		return nil, fmt.Errorf("no connected displays in xrandr output")
	}
	return displays, nil
}

func parseXrandr(out string) []Display {
	var displays []Display
	for _, line := range strings.Split(out, "\n") {
		m := connectedRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		width, _ := strconv.Atoi(m[3])
		height, _ := strconv.Atoi(m[4])
		x, _ := strconv.Atoi(m[5])
		y, _ := strconv.Atoi(m[6])
		displays = append(displays, Display{
			Name:    m[1],
			Width:   width,
			Height:  height,
			X:       x,
			Y:       y,
			Scale:   1.0,
			Primary: m[2] != "",
		})
	}
	return displays
}
