package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitOfRanges(t *testing.T) {
	testCases := []struct {
		lo, hi byte
		digit  Digit
	}{
		{0, 27, 0},
		{28, 55, 1},
		{56, 83, 2},
		{84, 111, 3},
		{112, 139, 4},
		{140, 167, 5},
		{168, 195, 6},
		{196, 223, 7},
		{224, 255, 8},
	}
	covered := 0
	for _, tc := range testCases {
		for v := int(tc.lo); v <= int(tc.hi); v++ {
			require.Equalf(t, tc.digit, DigitOf(byte(v)), "sample %d", v)
			covered++
		}
	}
	// every byte value belongs to exactly one bucket
	require.Equal(t, 256, covered)
}

func TestDigitOfBoundary(t *testing.T) {
	require.Equal(t, Digit(0), DigitOf(27))
	require.Equal(t, Digit(1), DigitOf(28))
	require.Equal(t, Digit(7), DigitOf(223))
	require.Equal(t, Digit(8), DigitOf(224))
	require.Equal(t, Digit(8), DigitOf(255))
}

func TestPattern(t *testing.T) {
	require.Equal(t, byte(0x00), Digit(0).Pattern())
	require.Equal(t, LineA, Digit(1).Pattern())
	require.Equal(t, LineB, Digit(2).Pattern())
	require.Equal(t, LineA|LineB, Digit(3).Pattern())
	require.Equal(t, LineC, Digit(4).Pattern())
	require.Equal(t, LineA|LineC, Digit(5).Pattern())
	require.Equal(t, LineB|LineC, Digit(6).Pattern())
	require.Equal(t, LineA|LineB|LineC, Digit(7).Pattern())
	require.Equal(t, LineD, Digit(8).Pattern())
}

func TestPatternMasked(t *testing.T) {
	for d := 0; d < 256; d++ {
		require.Zero(t, Digit(d).Pattern()&^LineMask)
	}
}

func TestBuckets(t *testing.T) {
	require.Equal(t, 9, Buckets())
}
