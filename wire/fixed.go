package wire

// Fixed32Len is the encoded length of a fixed32 value: always 4 bytes.
func Fixed32Len() int {
	return 4
}

// Fixed64Len is the encoded length of a fixed64 value: always 8 bytes.
func Fixed64Len() int {
	return 8
}

// PackedFixedLen returns the inner length of a packed repeated fixed32
// or fixed64 field: count elements times their fixed width. Pass 4 or 8
// for width.
func PackedFixedLen(count, width int) int {
	return count * width
}
