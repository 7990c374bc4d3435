//go:build windows

package nightlight

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	stateRegistryKey = `Software\Microsoft\Windows\CurrentVersion\CloudStore\Store\DefaultAccount\Current\default$windows.data.bluelightreduction.bluelightreductionstate\windows.data.bluelightreduction.bluelightreductionstate`
	stateRegistryVal = "Data"
)

// RegistryStore persists the Night Light blob in its native location, the
// per-user CloudStore registry key.
type RegistryStore struct{}

// Read returns the raw blob from the registry. A missing key or value wraps
// ErrNotFound; Windows creates the key only after Night Light has been
// toggled once in Settings.
func (RegistryStore) Read() ([]byte, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, stateRegistryKey, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open registry key %q: %w", stateRegistryKey, mapRegistryErr(err, ErrNotFound))
	}
	defer key.Close()

	data, _, err := key.GetBinaryValue(stateRegistryVal)
	if err != nil {
		return nil, fmt.Errorf("read registry value %q: %w", stateRegistryVal, mapRegistryErr(err, ErrNotFound))
	}
	return data, nil
}

// Write replaces the blob in the registry.
func (RegistryStore) Write(data []byte) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, stateRegistryKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open registry key %q for writing: %w", stateRegistryKey, mapRegistryErr(err, ErrAccessDenied))
	}
	defer key.Close()

	if err := key.SetBinaryValue(stateRegistryVal, data); err != nil {
		return fmt.Errorf("write registry value %q: %w", stateRegistryVal, mapRegistryErr(err, ErrAccessDenied))
	}
	return nil
}

// mapRegistryErr folds a raw registry error into one of the store sentinels
// while keeping the original error text.
func mapRegistryErr(err, fallback error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return fmt.Errorf("%v: %w", err, fallback)
}

// DefaultStore returns the registry-backed store.
func DefaultStore() Store { return RegistryStore{} }
