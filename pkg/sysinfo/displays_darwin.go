//go:build darwin

package sysinfo

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

var resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

type profilerOutput struct {
	Displays []struct {
		NDRVs []struct {
			Name       string `json:"_name"`
			Resolution string `json:"_spdisplays_pixels"`
			Main       string `json:"spdisplays_main"`
		} `json:"spdisplays_ndrvs"`
	} `json:"SPDisplaysDataType"`
}

// Displays enumerates monitors with system_profiler.
func Displays() ([]Display, error) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return nil, fmt.Errorf("run system_profiler: %w", err)
	}

	var profiler profilerOutput
	if err := json.Unmarshal(out, &profiler); err != nil {
		return nil, fmt.Errorf("decode system_profiler JSON: %w", err)
	}

	var displays []Display
	for _, gpu := range profiler.Displays {
		for _, d := range gpu.NDRVs {
			width, height, err := parseResolution(d.Resolution)
			if err != nil {
				continue
			}
			displays = append(displays, Display{
				Name:    d.Name,
				Width:   width,
				Height:  height,
				Scale:   1.0,
				Primary: d.Main == "spdisplays_yes",
			})
		}
	}
	if len(displays) == 0 {
		return nil, fmt.Errorf("no displays found in system_profiler output")
	}
	return displays, nil
}

func parseResolution(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("no resolution in %q", s)
	}
	width, _ := strconv.Atoi(matches[1])
	height, _ := strconv.Atoi(matches[2])
	return width, height, nil
}
