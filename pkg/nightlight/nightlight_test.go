package nightlight

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Blobs captured from a real registry, one with Night Light off and one with
// it on. Both carry timestamp 1742670473 and the same trailing bytes.
var (
	bytesDisabled = []byte{
		0x43, 0x42, 0x01, 0x00, 0x0A, 0x02, 0x01, 0x00, 0x2A, 0x06, 0x89, 0x95,
		0xFC, 0xBE, 0x06, 0x2A, 0x2B, 0x0E, 0x13, 0x43, 0x42, 0x01, 0x00,
		0xD0, 0x0A, 0x02, 0xC6, 0x14, 0xA9, 0xF6, 0xE2, 0xD3, 0xEF, 0xEA, 0xE6,
		0xED, 0x01, 0x00, 0x00, 0x00, 0x00,
	}
	bytesEnabled = []byte{
		0x43, 0x42, 0x01, 0x00, 0x0A, 0x02, 0x01, 0x00, 0x2A, 0x06, 0x89, 0x95,
		0xFC, 0xBE, 0x06, 0x2A, 0x2B, 0x0E, 0x15, 0x43, 0x42, 0x01, 0x00,
		0x10, 0x00, 0xD0, 0x0A, 0x02, 0xC6, 0x14, 0xA9, 0xF6, 0xE2, 0xD3, 0xEF,
		0xEA, 0xE6, 0xED, 0x01, 0x00, 0x00, 0x00, 0x00,
	}

	fixtureTimestamp = uint64(1742670473)
	fixtureRemaining = []byte{
		0xD0, 0x0A, 0x02, 0xC6, 0x14, 0xA9, 0xF6, 0xE2, 0xD3, 0xEF, 0xEA, 0xE6,
		0xED, 0x01,
	}
)

func TestDeserialize(t *testing.T) {
	disabled, err := Deserialize(bytesDisabled)
	require.NoError(t, err)
	assert.Equal(t, fixtureTimestamp, disabled.Timestamp)
	assert.False(t, disabled.Enabled)
	assert.Equal(t, fixtureRemaining, disabled.remaining)

	enabled, err := Deserialize(bytesEnabled)
	require.NoError(t, err)
	assert.Equal(t, fixtureTimestamp, enabled.Timestamp)
	assert.True(t, enabled.Enabled)
	assert.Equal(t, fixtureRemaining, enabled.remaining)
}

func TestSerialize(t *testing.T) {
	disabled := &State{
		Timestamp: fixtureTimestamp,
		Enabled:   false,
		remaining: fixtureRemaining,
	}
	assert.Equal(t, bytesDisabled, disabled.Serialize())

	enabled := &State{
		Timestamp: fixtureTimestamp,
		Enabled:   true,
		remaining: fixtureRemaining,
	}
	assert.Equal(t, bytesEnabled, enabled.Serialize())
}

func TestRoundTrip(t *testing.T) {
	// Byte stability: decoding and re-encoding a captured blob must
	// reproduce it exactly, including the bytes we don't interpret.
	for _, blob := range [][]byte{bytesDisabled, bytesEnabled} {
		state, err := Deserialize(blob)
		require.NoError(t, err)
		assert.Equal(t, blob, state.Serialize())

		again, err := Deserialize(state.Serialize())
		require.NoError(t, err)
		assert.Equal(t, state, again)
	}
}

func TestTimestampCodec(t *testing.T) {
	timestamps := []uint64{
		0,
		1,
		127,
		128,
		fixtureTimestamp,
		1<<28 - 1,
		1 << 28,
		1<<32 - 1,
	}
	for _, ts := range timestamps {
		encoded := encodeTimestamp(ts)
		assert.Equal(t, ts, decodeTimestamp(encoded[:]), "timestamp %d", ts)
	}

	// The first four bytes must have the top bit forced on, the last one
	// must not.
	encoded := encodeTimestamp(fixtureTimestamp)
	for i := 0; i < timestampSize-1; i++ {
		assert.NotZero(t, encoded[i]&0x80, "byte %d must have the top bit set", i)
	}
	assert.Zero(t, encoded[timestampSize-1]&0x80)
	assert.Equal(t, []byte{0x89, 0x95, 0xFC, 0xBE, 0x06}, encoded[:])
}

func TestEnableDisable(t *testing.T) {
	base := time.Unix(int64(fixtureTimestamp), 0)
	now := base.Add(42 * time.Second)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	state, err := Deserialize(bytesDisabled)
	require.NoError(t, err)

	// Enabling bumps the timestamp to the current time.
	assert.True(t, state.Enable())
	assert.True(t, state.Enabled)
	assert.Equal(t, uint64(now.Unix()), state.Timestamp)

	// Enabling again is a no-op and leaves the timestamp alone.
	now = base.Add(5 * time.Minute)
	assert.False(t, state.Enable())
	assert.Equal(t, uint64(base.Add(42*time.Second).Unix()), state.Timestamp)

	assert.True(t, state.Disable())
	assert.False(t, state.Enabled)
	assert.Equal(t, uint64(now.Unix()), state.Timestamp)
	assert.False(t, state.Disable())
}

func TestDeserializeErrors(t *testing.T) {
	asMagic := func(err error) bool {
		var e *MagicError
		return errors.As(err, &e)
	}
	asSize := func(err error) bool {
		var e *SizeError
		return errors.As(err, &e)
	}
	asTruncated := func(err error) bool {
		var e *TruncatedError
		return errors.As(err, &e)
	}

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		match  func(error) bool
	}{
		{
			name: "wrong struct header",
			mutate: func(b []byte) []byte {
				b[0] = 0xFF
				return b
			},
			match: asMagic,
		},
		{
			name: "wrong timestamp suffix",
			mutate: func(b []byte) []byte {
				b[15] = 0x00
				return b
			},
			match: asMagic,
		},
		{
			name: "size byte disagrees with length",
			mutate: func(b []byte) []byte {
				b[18]++
				return b
			},
			match: asSize,
		},
		{
			name: "wrong footer",
			mutate: func(b []byte) []byte {
				b[len(b)-1] = 0x01
				return b
			},
			match: asMagic,
		},
		{
			name: "truncated before timestamp",
			mutate: func(b []byte) []byte {
				return b[:12]
			},
			match: asTruncated,
		},
		{
			name: "truncated before size byte",
			mutate: func(b []byte) []byte {
				return b[:18]
			},
			match: asTruncated,
		},
		{
			name: "empty input",
			mutate: func(b []byte) []byte {
				return nil
			},
			match: asMagic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := tt.mutate(append([]byte(nil), bytesDisabled...))
			state, err := Deserialize(blob)
			require.Error(t, err)
			assert.Nil(t, state)
			assert.ErrorIs(t, err, ErrBadFormat)
			assert.True(t, tt.match(err), "unexpected error type: %v", err)
		})
	}
}

func TestMagicErrorReportsBytes(t *testing.T) {
	blob := append([]byte(nil), bytesDisabled...)
	blob[0] = 0xFF

	_, err := Deserialize(blob)
	var magicErr *MagicError
	require.ErrorAs(t, err, &magicErr)
	assert.Equal(t, "struct header", magicErr.Section)
	assert.Equal(t, 0, magicErr.Offset)
	assert.Equal(t, []byte{0x43, 0x42, 0x01, 0x00}, magicErr.Expected)
	assert.Equal(t, []byte{0xFF, 0x42, 0x01, 0x00}, magicErr.Actual)
}

func TestSizeErrorReportsLengths(t *testing.T) {
	blob := append([]byte(nil), bytesDisabled...)
	blob[18] = 0x20 // implies more trailing bytes than exist

	_, err := Deserialize(blob)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 0x20, sizeErr.SizeByte)
	assert.Equal(t, 0x20-1+4, sizeErr.Expected)
	assert.Equal(t, 22, sizeErr.Actual)
}
