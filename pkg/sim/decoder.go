package sim

// Segments is the set of lit segments of a seven-segment display,
// one bit per segment a..g.
type Segments byte

// Segment bits
const (
	SegA Segments = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// segmentCodes follows the standard BCD decoder truth table.
var segmentCodes = [10]Segments{
	SegA | SegB | SegC | SegD | SegE | SegF,
	SegB | SegC,
	SegA | SegB | SegD | SegE | SegG,
	SegA | SegB | SegC | SegD | SegG,
	SegB | SegC | SegF | SegG,
	SegA | SegC | SegD | SegF | SegG,
	SegA | SegC | SegD | SegE | SegF | SegG,
	SegA | SegB | SegC,
	SegA | SegB | SegC | SegD | SegE | SegF | SegG,
	SegA | SegB | SegC | SegD | SegF | SegG,
}

// Decode maps a 4-bit input code to lit segments. Codes above 9 blank
// the display, matching CD4511-family decoders. Only the low 4 bits of
// the code are significant.
func Decode(code byte) Segments {
	code &= 0x0f
	if int(code) >= len(segmentCodes) {
		return 0
	}
	return segmentCodes[code]
}

// String lists the lit segments as letters a..g.
func (s Segments) String() string {
	names := []byte("abcdefg")
	lit := make([]byte, 0, len(names))
	for i, name := range names {
		if s&(1<<uint(i)) != 0 {
			lit = append(lit, name)
		}
	}
	return string(lit)
}
