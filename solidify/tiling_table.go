package solidify

// neighborMask is an 8-bit set of the directions a tile has a same-name
// neighbor in, used to look up its autotiling animation frame.
//
// Bit layout (high to low): RIGHT, UP, LEFT, DOWN, UPRIGHT, UPLEFT,
// DOWNLEFT, DOWNRIGHT.
type neighborMask uint8

const (
	maskRight neighborMask = 1 << 7
	maskUp    neighborMask = 1 << 6
	maskLeft  neighborMask = 1 << 5
	maskDown  neighborMask = 1 << 4
	maskUpRight   neighborMask = 1 << 3
	maskUpLeft    neighborMask = 1 << 2
	maskDownLeft  neighborMask = 1 << 1
	maskDownRight neighborMask = 1 << 0

	maskCardinal = maskRight | maskUp | maskLeft | maskDown
)

// frameTable maps every valid neighborMask (one where each diagonal bit
// is only set alongside both of its adjacent cardinals) to its animation
// frame. Masks not present here are invalid inputs to intoFrame and never
// occur once normalize has run.
var frameTable = map[neighborMask]uint8{
	0b0000_0000: 0,
	0b1000_0000: 1,
	0b0100_0000: 2,
	0b1100_0000: 3,
	0b0010_0000: 4,
	0b1010_0000: 5,
	0b0110_0000: 6,
	0b1110_0000: 7,
	0b0001_0000: 8,
	0b1001_0000: 9,
	0b0101_0000: 10,
	0b1101_0000: 11,
	0b0011_0000: 12,
	0b1011_0000: 13,
	0b0111_0000: 14,
	0b1111_0000: 15,
	0b1100_1000: 16,
	0b1110_1000: 17,
	0b1101_1000: 18,
	0b1111_1000: 19,
	0b0110_0100: 20,
	0b1110_0100: 21,
	0b0111_0100: 22,
	0b1111_0100: 23,
	0b1110_1100: 24,
	0b1111_1100: 25,
	0b0011_0010: 26,
	0b1011_0010: 27,
	0b0111_0010: 28,
	0b1111_0010: 29,
	0b1111_1010: 30,
	0b0111_0110: 31,
	0b1111_0110: 32,
	0b1111_1110: 33,
	0b1001_0001: 34,
	0b1101_0001: 35,
	0b1011_0001: 36,
	0b1111_0001: 37,
	0b1101_1001: 38,
	0b1111_1001: 39,
	0b1111_0101: 40,
	0b1111_1101: 41,
	0b1011_0011: 42,
	0b1111_0011: 43,
	0b1111_1011: 44,
	0b1111_0111: 45,
	0b1111_1111: 46,
}

// normalize clears any diagonal bit whose adjacent cardinal pair isn't
// both set, so the result is always a valid frameTable key.
func (m neighborMask) normalize() neighborMask {
	if m&(maskRight|maskUp) != (maskRight | maskUp) {
		m &^= maskUpRight
	}
	if m&(maskRight|maskDown) != (maskRight | maskDown) {
		m &^= maskDownRight
	}
	if m&(maskLeft|maskDown) != (maskLeft | maskDown) {
		m &^= maskDownLeft
	}
	if m&(maskLeft|maskUp) != (maskLeft | maskUp) {
		m &^= maskUpLeft
	}
	return m
}

// intoFrames normalizes m and returns its (primary, fallback) animation
// frame pair: primary is the frame for the full normalized mask, fallback
// is the frame for its cardinal-only subset, which is always present in
// frameTable.
func (m neighborMask) intoFrames() (primary, fallback uint8) {
	m = m.normalize()
	primary, ok := frameTable[m]
	if !ok {
		panic("solidify: normalized neighbor mask has no frame table entry")
	}
	fallback, ok = frameTable[m&maskCardinal]
	if !ok {
		panic("solidify: cardinal-only neighbor mask has no frame table entry")
	}
	return primary, fallback
}
