package ranges

// Bytes builds an 8-bit range. step defaults to 1.
func Bytes(start, endInclusive int8, step ...int8) (*Range[int8], error) {
	return newRange(KindByte, start, endInclusive, step)
}

// Shorts builds a 16-bit range. step defaults to 1.
func Shorts(start, endInclusive int16, step ...int16) (*Range[int16], error) {
	return newRange(KindShort, start, endInclusive, step)
}

// Ints builds a 32-bit range. step defaults to 1.
func Ints(start, endInclusive int32, step ...int32) (*Range[int32], error) {
	return newRange(KindInt, start, endInclusive, step)
}

// Longs builds a 64-bit range. step defaults to 1.
func Longs(start, endInclusive int64, step ...int64) (*Range[int64], error) {
	return newRange(KindLong, start, endInclusive, step)
}

// Chars builds a character range over code points. start and end must lie
// in 0..unicode.MaxRune. step defaults to 1.
func Chars(start, endInclusive rune, step ...rune) (*Range[rune], error) {
	return newRange(KindChar, start, endInclusive, step)
}

// Of builds an integer range whose kind follows the width of T. Use Chars
// for character ranges, since rune and int32 are the same type.
func Of[T Element](start, endInclusive T, step ...T) (*Range[T], error) {
	return newRange(kindOf[T](), start, endInclusive, step)
}
