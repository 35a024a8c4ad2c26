// Package wire implements the low-level Protocol Buffers wire format:
// tags, varints, zigzag signed integers, fixed-width little-endian
// integers, and length-delimited records. It knows nothing about .proto
// schemas, message descriptors, or decoding — it only emits bytes.
package wire

// WireType identifies how a field's value is laid out on the wire.
type WireType int32

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float
)

// IsValid reports whether w is one of the four wire types protobuf
// defines. WireType 3 and 4 (the deprecated proto2 group start/end
// markers) are deliberately not valid here.
func (w WireType) IsValid() bool {
	switch w {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	default:
		return false
	}
}

// FieldNumber identifies a field within a message. Valid field numbers
// are in [1, 2^29-1]; the reserved range [19000, 19999] is inside that
// range and is rejected only when Config.RejectReservedFieldNumbers is set.
type FieldNumber int32

const (
	minFieldNumber  FieldNumber = 1
	maxFieldNumber  FieldNumber = 1<<29 - 1
	reservedFieldLo FieldNumber = 19000
	reservedFieldHi FieldNumber = 19999
)

// IsValid reports whether f falls inside protobuf's fundamental field
// number range [1, 2^29-1]. The reserved band [19000, 19999] is
// accepted here; rejecting it is an opt-in policy choice, see
// Config.RejectReservedFieldNumbers.
func (f FieldNumber) IsValid() bool {
	return f >= minFieldNumber && f <= maxFieldNumber
}

// IsReserved reports whether f falls inside [19000, 19999], the band
// the protobuf team reserves for internal use.
func (f FieldNumber) IsReserved() bool {
	return f >= reservedFieldLo && f <= reservedFieldHi
}

// Tag is the single varint that precedes every field on the wire: the
// field number shifted left three bits, ORed with the wire type.
type Tag uint64

// MakeTag combines a field number and wire type into the tag value that
// EmitTag writes as a varint.
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag splits a tag back into its field number and wire type. This
// exists for tests and for callers round-tripping through an external
// decoder; the emitter itself never needs to parse a tag it wrote.
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// ScalarCategory names one of the scalar encodings a Builder method
// emits. It exists purely for documentation and test tables; Emitter
// and Builder methods are named per category rather than dispatching on
// this type at runtime.
type ScalarCategory int

const (
	CategoryVarint ScalarCategory = iota
	CategorySignedVarint
	CategoryFixed32
	CategoryFixed64
	CategoryLengthDelimited
)

// WireType returns the wire type a value of this category is encoded
// with. Packed repeated fields of any category always use WireBytes.
func (c ScalarCategory) WireType() WireType {
	switch c {
	case CategoryVarint, CategorySignedVarint:
		return WireVarint
	case CategoryFixed32:
		return WireFixed32
	case CategoryFixed64:
		return WireFixed64
	case CategoryLengthDelimited:
		return WireBytes
	default:
		return WireVarint
	}
}
