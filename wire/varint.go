package wire

// EncodeZigZag32 maps a signed 32-bit integer onto an unsigned varint so
// that small-magnitude negative values stay small on the wire: 0, -1, 1,
// -2, 2, ... become 0, 1, 2, 3, 4, ...
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// EncodeZigZag64 is EncodeZigZag32's 64-bit counterpart.
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// DecodeZigZag32 reverses EncodeZigZag32. It exists for tests and for
// callers round-tripping through an external decoder.
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 reverses EncodeZigZag64.
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// VarintLen returns the number of bytes EmitVarintRaw would write for v,
// without writing them. The packed Emitter methods use it, through
// PackedVarintLen and PackedSignedVarintLen, to pre-compute a packed
// field's length before emitting EmitLen.
func VarintLen(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// PackedVarintLen returns the inner length of a packed repeated field
// containing values: the sum of the elements' varint lengths, excluding
// both the length prefix and the field's tag (EmitLen writes the length
// prefix; the caller's EmitTag writes the tag).
func PackedVarintLen(values []uint64) int {
	inner := 0
	for _, v := range values {
		inner += VarintLen(v)
	}
	return inner
}

// PackedSignedVarintLen is PackedVarintLen for zigzag-encoded values,
// taking the pre-zigzag signed values directly.
func PackedSignedVarintLen(values []int64) int {
	inner := 0
	for _, v := range values {
		inner += VarintLen(EncodeZigZag64(v))
	}
	return inner
}
