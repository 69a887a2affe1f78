package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPotClamp(t *testing.T) {
	pot := NewPot(0.5)
	require.Equal(t, 0.0, pot.Set(-2))
	require.Equal(t, 1.0, pot.Set(3))
	require.Equal(t, 0.25, pot.Set(0.25))
}

func TestPotReading(t *testing.T) {
	testCases := []struct {
		position float64
		reading  byte
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.1, 26},
	}
	for _, tc := range testCases {
		pot := NewPot(tc.position)
		require.Equalf(t, tc.reading, pot.Reading(), "position %v", tc.position)
	}
}

func TestDecode(t *testing.T) {
	require.Equal(t, "abcdef", Decode(0).String())
	require.Equal(t, "bc", Decode(1).String())
	require.Equal(t, "abdeg", Decode(2).String())
	require.Equal(t, "abcdefg", Decode(8).String())
	require.Equal(t, "abcdfg", Decode(9).String())
}

func TestDecodeBlanking(t *testing.T) {
	for code := byte(10); code <= 0x0f; code++ {
		require.Zerof(t, Decode(code), "code %d", code)
	}
	// only the low 4 bits are significant
	require.Equal(t, Decode(8), Decode(0xf8))
}
