package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craole-cc/wallter/pkg/nightlight"
)

func TestDescribeNightlightErr(t *testing.T) {
	base := fmt.Errorf("read registry value: %w", nightlight.ErrNotFound)
	err := describeNightlightErr(base)
	require.Error(t, err)
	assert.ErrorIs(t, err, nightlight.ErrNotFound, "the hint must wrap the cause, not replace it")
	assert.Contains(t, err.Error(), "Windows Settings")
	assert.Contains(t, err.Error(), base.Error())

	other := errors.New("registry access denied")
	assert.Equal(t, other, describeNightlightErr(other))
}
