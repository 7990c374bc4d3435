package nightlight

import (
	"errors"
	"fmt"
)

// ErrBadFormat is the sentinel wrapped by every structural decoding error.
// Callers can use errors.Is(err, ErrBadFormat) to separate a malformed blob
// from a store failure.
var ErrBadFormat = errors.New("malformed nightlight state blob")

// Store error sentinels. Implementations of Store wrap these so callers can
// tell a missing blob (Night Light never initialized) from an access problem.
var (
	// ErrNotFound indicates the state blob does not exist in the store.
	// On Windows this usually means Night Light has never been toggled,
	// so the registry key was never created.
	ErrNotFound = errors.New("nightlight state not found")

	// ErrAccessDenied indicates the store refused the read or write.
	ErrAccessDenied = errors.New("nightlight state access denied")
)

// MagicError reports a magic byte sequence that did not match at its
// expected offset.
type MagicError struct {
	Section  string
	Offset   int
	Expected []byte
	Actual   []byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("bad %s at offset %d: expected % X, got % X", e.Section, e.Offset, e.Expected, e.Actual)
}

func (e *MagicError) Unwrap() error { return ErrBadFormat }

// SizeError reports a size byte that disagrees with the actual number of
// bytes left in the blob.
type SizeError struct {
	SizeByte int // value of the size byte as read
	Expected int // trailing length implied by the size byte
	Actual   int // trailing length actually present
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("inconsistent struct size: size byte %#02x implies %d trailing bytes, got %d", e.SizeByte, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error { return ErrBadFormat }

// TruncatedError reports a blob that ended before a required section.
type TruncatedError struct {
	Section string
	Offset  int
	Need    int
	Have    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated blob: %s at offset %d needs %d bytes, only %d left", e.Section, e.Offset, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrBadFormat }
