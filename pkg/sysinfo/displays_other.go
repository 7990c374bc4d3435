//go:build !windows && !linux && !darwin

package sysinfo

import "fmt"

// Displays is unsupported on this platform.
func Displays() ([]Display, error) {
	return nil, fmt.Errorf("display enumeration is not supported on this platform")
}
