package gac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"AC_CLASSIC":    AC_CLASSIC,
		"AC_COMPLEMENT": AC_COMPLEMENT,
		"AC_PARTIAL":    AC_PARTIAL,
		"AC_TUNED":      AC_TUNED,
	}
	for s, want := range cases {
		got, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := ParseMode("AC_BOGUS")
	assert.Error(t, err)
}

func TestIsqrt(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 8: 2, 9: 3, 15: 3, 16: 4, 99: 9, 100: 10}
	for n, want := range cases {
		assert.Equal(t, want, isqrt(n), "isqrt(%d)", n)
	}
}

func TestClassicForBFS(t *testing.T) {
	assert.True(t, classicForBFS(AC_CLASSIC, 1, 100))
	assert.False(t, classicForBFS(AC_COMPLEMENT, 100, 1))
	assert.True(t, classicForBFS(AC_PARTIAL, 2, 10))
	assert.False(t, classicForBFS(AC_PARTIAL, 10, 2))
}

func TestClassicForDFSTuned(t *testing.T) {
	// domSize 3 < sqrt(100)=10 -> classic
	assert.True(t, classicForDFS(AC_TUNED, 3, 100))
	// domSize 20 >= sqrt(100)=10 -> complement
	assert.False(t, classicForDFS(AC_TUNED, 20, 100))
}

func TestClassicForPrune(t *testing.T) {
	assert.True(t, classicForPrune(AC_PARTIAL, 2, 50))
	assert.False(t, classicForPrune(AC_PARTIAL, 50, 2))
	assert.True(t, classicForPrune(AC_CLASSIC, 50, 2))
	assert.False(t, classicForPrune(AC_COMPLEMENT, 2, 50))
}
