//go:build !windows

package nightlight

// DefaultStore returns the no-op store; Night Light only exists on Windows.
func DefaultStore() Store { return NoOpStore{} }
