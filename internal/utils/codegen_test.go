package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaffCodeFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := NewStaffCode()
		require.NoError(t, err)
		assert.Len(t, code, 10)
		// The leading digit is never zero, so the numeric value is at
		// least one billion.
		n, err := strconv.ParseInt(code, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1_000_000_000))
		assert.LessOrEqual(t, n, int64(9_999_999_999))
	}
}

func TestNewEmployeeNumberFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		number, err := NewEmployeeNumber()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(number, "DFCU"))
		digits := strings.TrimPrefix(number, "DFCU")
		assert.Len(t, digits, 3)
		n, err := strconv.Atoi(digits)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 999)
	}
}

func TestNewStaffCodeSpread(t *testing.T) {
	// Not a statistical test; just catches a generator stuck on one value.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := NewStaffCode()
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90)
}
