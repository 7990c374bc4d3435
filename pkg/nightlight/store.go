package nightlight

import "fmt"

// Store abstracts the persisted byte blob holding the Night Light state. The
// codec itself never touches the registry directly; it only needs something
// that can hand it the current blob and accept a replacement.
//
// The codec provides no locking. A read-modify-write cycle assumes at most
// one writer at a time; callers racing other processes on the same blob need
// external mutual exclusion.
type Store interface {
	// Read returns the current blob. A store without a blob returns an
	// error wrapping ErrNotFound.
	Read() ([]byte, error)

	// Write replaces the blob. A store that cannot be written returns an
	// error wrapping ErrAccessDenied.
	Write(data []byte) error
}

// MemoryStore is an in-memory Store used in tests and on platforms without a
// real Night Light backend.
type MemoryStore struct {
	data []byte
}

// NewMemoryStore returns a MemoryStore seeded with the given blob. A nil
// blob means the store starts out empty, like a machine where Night Light
// was never initialized.
func NewMemoryStore(data []byte) *MemoryStore {
	var cp []byte
	if data != nil {
		cp = append([]byte(nil), data...)
	}
	return &MemoryStore{data: cp}
}

// Read returns a copy of the stored blob.
func (m *MemoryStore) Read() ([]byte, error) {
	if m.data == nil {
		return nil, fmt.Errorf("memory store is empty: %w", ErrNotFound)
	}
	return append([]byte(nil), m.data...), nil
}

// Write replaces the stored blob.
func (m *MemoryStore) Write(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

// NoOpStore is a Store for platforms without Night Light. Reads report the
// blob as missing and writes are discarded.
type NoOpStore struct{}

// Read always reports the blob as missing.
func (NoOpStore) Read() ([]byte, error) {
	return nil, fmt.Errorf("nightlight is not supported on this platform: %w", ErrNotFound)
}

// Write silently discards the blob.
func (NoOpStore) Write([]byte) error { return nil }
