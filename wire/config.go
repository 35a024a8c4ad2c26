package wire

// Config holds the one behavioral knob this package exposes. The zero
// value is the permissive baseline: EmitTag accepts any field number in
// protobuf's valid range, including the reserved [19000, 19999] band
// that the protobuf team set aside for internal use and some generators
// warn about but do not reject.
type Config struct {
	// RejectReservedFieldNumbers, when true, makes EmitTag return
	// ErrFieldNumberOutOfRange for field numbers in [19000, 19999]
	// instead of only rejecting numbers outside [1, 2^29-1].
	RejectReservedFieldNumbers bool
}

// DefaultConfig is the permissive baseline Emitter and Builder use when
// constructed without an explicit Config.
var DefaultConfig = Config{}
