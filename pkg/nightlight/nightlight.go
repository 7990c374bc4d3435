// Package nightlight reads and writes the binary state blob backing the
// Windows Night Light (blue light reduction) feature.
//
// The blob lives in the registry under the CloudStore key and uses an opaque,
// reverse-engineered layout:
//
//   - structHeader
//   - timestampHeader
//   - timestampPrefix
//   - the last-modified Unix timestamp in seconds, encoded into
//     timestampSize bytes (see encodeTimestamp)
//   - timestampSuffix
//   - a single size byte covering the rest of the struct up to (but not
//     including) the footer, counting itself
//   - structHeader again
//   - enabledMarker, present only when Night Light is forced on
//   - a run of unknown bytes that change over time, preserved verbatim
//   - structFooter
//
// Only the timestamp and the enabled marker are understood; everything else
// is carried through untouched so a read-modify-write cycle never corrupts
// fields this package does not know about.
package nightlight

import (
	"bytes"
	"time"
)

// Magic byte sequences marking the sections of the state blob.
var (
	structHeader    = []byte{0x43, 0x42, 0x01, 0x00}
	timestampHeader = []byte{0x0A, 0x02, 0x01, 0x00}
	timestampPrefix = []byte{0x2A, 0x06}
	timestampSuffix = []byte{0x2A, 0x2B, 0x0E}
	structFooter    = []byte{0x00, 0x00, 0x00, 0x00}

	// enabledMarker is present in the inner struct only while Night Light
	// is forced on regardless of the configured schedule.
	enabledMarker = []byte{0x10, 0x00}
)

// timestampSize is the fixed width of the encoded timestamp in bytes.
const timestampSize = 5

// timeNow is swapped out in tests.
var timeNow = time.Now

// State is the decoded Night Light state.
type State struct {
	// Timestamp is the last-modified Unix timestamp in seconds. Windows
	// refreshes it whenever the enabled flag flips, and so does this
	// package.
	Timestamp uint64

	// Enabled reports whether Night Light is forced on. When true the
	// filter is active regardless of any schedule settings.
	Enabled bool

	// remaining holds the undeciphered bytes between the enabled marker
	// and the footer. Never interpreted, only round-tripped.
	remaining []byte
}

// Deserialize decodes a raw state blob as read from the registry.
func Deserialize(data []byte) (*State, error) {
	pos, err := expect(data, 0, structHeader, "struct header")
	if err != nil {
		return nil, err
	}
	if pos, err = expect(data, pos, timestampHeader, "timestamp header"); err != nil {
		return nil, err
	}
	if pos, err = expect(data, pos, timestampPrefix, "timestamp prefix"); err != nil {
		return nil, err
	}

	if len(data) < pos+timestampSize {
		return nil, &TruncatedError{Section: "timestamp", Offset: pos, Need: timestampSize, Have: len(data) - pos}
	}
	timestamp := decodeTimestamp(data[pos : pos+timestampSize])
	pos += timestampSize

	if pos, err = expect(data, pos, timestampSuffix, "timestamp suffix"); err != nil {
		return nil, err
	}

	if pos >= len(data) {
		return nil, &TruncatedError{Section: "size byte", Offset: pos, Need: 1, Have: 0}
	}
	sizeByte := int(data[pos])
	pos++

	// The size byte counts itself, so the content after it runs for
	// sizeByte-1 bytes, followed only by the footer.
	wantTrailing := (sizeByte - 1) + len(structFooter)
	if len(data)-pos != wantTrailing {
		return nil, &SizeError{SizeByte: sizeByte, Expected: wantTrailing, Actual: len(data) - pos}
	}

	if pos, err = expect(data, pos, structHeader, "inner struct header"); err != nil {
		return nil, err
	}

	enabled := false
	if len(data) >= pos+len(enabledMarker) && bytes.Equal(data[pos:pos+len(enabledMarker)], enabledMarker) {
		enabled = true
		pos += len(enabledMarker)
	}

	end := len(data) - len(structFooter)
	if end < pos {
		return nil, &TruncatedError{Section: "remaining data", Offset: pos, Need: len(structFooter), Have: len(data) - pos}
	}
	remaining := append([]byte(nil), data[pos:end]...)

	if _, err = expect(data, end, structFooter, "struct footer"); err != nil {
		return nil, err
	}

	return &State{Timestamp: timestamp, Enabled: enabled, remaining: remaining}, nil
}

// Serialize encodes the state back into the registry blob layout. It is the
// exact inverse of Deserialize: for any blob that decodes successfully,
// re-encoding the result reproduces the original bytes.
func (s *State) Serialize() []byte {
	inner := make([]byte, 0, len(structHeader)+len(enabledMarker)+len(s.remaining))
	inner = append(inner, structHeader...)
	if s.Enabled {
		inner = append(inner, enabledMarker...)
	}
	inner = append(inner, s.remaining...)

	out := make([]byte, 0, len(structHeader)+len(timestampHeader)+len(timestampPrefix)+
		timestampSize+len(timestampSuffix)+1+len(inner)+len(structFooter))
	out = append(out, structHeader...)
	out = append(out, timestampHeader...)
	out = append(out, timestampPrefix...)
	ts := encodeTimestamp(s.Timestamp)
	out = append(out, ts[:]...)
	out = append(out, timestampSuffix...)
	out = append(out, byte(len(inner)+1)) // size byte counts itself
	out = append(out, inner...)
	out = append(out, structFooter...)
	return out
}

// Enable forces Night Light on and refreshes the timestamp. It returns true
// if the state changed, false if Night Light was already enabled.
func (s *State) Enable() bool {
	if s.Enabled {
		return false
	}
	s.Enabled = true
	s.touch()
	return true
}

// Disable turns Night Light off and refreshes the timestamp. It returns true
// if the state changed, false if Night Light was already disabled.
func (s *State) Disable() bool {
	if !s.Enabled {
		return false
	}
	s.Enabled = false
	s.touch()
	return true
}

func (s *State) touch() {
	s.Timestamp = uint64(timeNow().Unix())
}

// expect verifies that data carries the magic sequence at pos and returns the
// cursor advanced past it.
func expect(data []byte, pos int, magic []byte, section string) (int, error) {
	end := pos + len(magic)
	if end > len(data) {
		end = len(data)
	}
	actual := data[pos:end]
	if !bytes.Equal(actual, magic) {
		return 0, &MagicError{
			Section:  section,
			Offset:   pos,
			Expected: append([]byte(nil), magic...),
			Actual:   append([]byte(nil), actual...),
		}
	}
	return pos + len(magic), nil
}

// encodeTimestamp packs a Unix timestamp into the format's fixed five-byte
// encoding. Each of the first four bytes carries seven timestamp bits in its
// low bits with the top bit always forced on; the fifth byte carries the
// remaining high bits with the top bit clear. The forced high bits are a
// quirk of the format, not LEB128 continuation flags.
func encodeTimestamp(ts uint64) [timestampSize]byte {
	var out [timestampSize]byte
	for i := 0; i < timestampSize-1; i++ {
		out[i] = byte(ts&0x7F) | 0x80
		ts >>= 7
	}
	out[timestampSize-1] = byte(ts)
	return out
}

// decodeTimestamp reverses encodeTimestamp: the top bit of the first four
// bytes is stripped, the final byte is used as-is.
func decodeTimestamp(b []byte) uint64 {
	var ts uint64
	for i := 0; i < timestampSize-1; i++ {
		ts |= uint64(b[i]&0x7F) << (7 * i)
	}
	ts |= uint64(b[timestampSize-1]) << (7 * (timestampSize - 1))
	return ts
}
