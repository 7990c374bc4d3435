//go:build !windows && !linux

package theme

func newManager() Manager { return NoopManager{} }
