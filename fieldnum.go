package protowire

import "github.com/protowire/protowire/wire"

// Integer is satisfied by any of Go's built-in integer types, including
// named types defined over them (enum-like constants, for instance).
// FieldNumberOf uses it to accept a caller's own field-number type
// without requiring a manual cast at every call site.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FieldNumberOf converts any integer-like value to a wire.FieldNumber.
// Go methods cannot declare their own type parameters, so this lives as
// a free function rather than a Builder method: Builder.EmitInt32(
// FieldNumberOf(myFieldConst), v) reads naturally at the call site
// regardless of what integer type myFieldConst was declared with.
func FieldNumberOf[F Integer](f F) wire.FieldNumber {
	return wire.FieldNumber(f)
}
