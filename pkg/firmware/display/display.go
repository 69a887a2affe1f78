// Package display maps raw 8-bit samples to the 4-bit code driving an
// external BCD-to-7-segment decoder.
package display

// Output line assignments on the driving pin group.
const (
	// LineA is the least significant bit of the digit code.
	LineA byte = 0x01
	LineB byte = 0x02
	LineC byte = 0x04
	// LineD is the most significant bit of the digit code.
	LineD byte = 0x08

	// LineMask covers all four decoder input lines.
	LineMask = LineA | LineB | LineC | LineD
)

// Digit is a decimal digit shown on the display.
type Digit byte

// bucket maps sample values below limit (and at or above the previous
// limit) to a digit.
type bucket struct {
	limit uint16
	digit Digit
}

// Nine contiguous buckets over the byte range. Eight buckets are 28 wide;
// the last one absorbs the remainder of 256/9 and spans 224..255. The
// uneven width is the calibrated behavior of the deployed hardware and
// must not be evened out.
var buckets = [...]bucket{
	{28, 0},
	{56, 1},
	{84, 2},
	{112, 3},
	{140, 4},
	{168, 5},
	{196, 6},
	{224, 7},
	{256, 8},
}

// DigitOf maps a raw sample to its digit.
func DigitOf(sample byte) Digit {
	v := uint16(sample)
	for _, b := range buckets {
		if v < b.limit {
			return b.digit
		}
	}
	// unreachable: the last limit exceeds any byte value
	return buckets[len(buckets)-1].digit
}

// Pattern returns the 4-bit line code of the digit, LineA carrying the
// least significant bit.
func (d Digit) Pattern() byte {
	return byte(d) & LineMask
}

// Buckets reports the number of digit buckets.
func Buckets() int {
	return len(buckets)
}
