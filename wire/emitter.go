package wire

import "encoding/binary"

// Emitter writes protobuf wire-format primitives to a ByteSink. It holds
// no state of its own beyond the sink; every method call appends bytes
// and returns immediately, so an Emitter is safe to reuse across many
// fields and cheap to construct per message.
type Emitter struct {
	sink ByteSink
	cfg  Config
}

// NewEmitter wraps sink in an Emitter using DefaultConfig. sink must not
// be nil.
func NewEmitter(sink ByteSink) *Emitter {
	return &Emitter{sink: sink, cfg: DefaultConfig}
}

// NewEmitterWithConfig wraps sink in an Emitter governed by cfg.
func NewEmitterWithConfig(sink ByteSink, cfg Config) *Emitter {
	return &Emitter{sink: sink, cfg: cfg}
}

// EmitTag writes the tag for fieldNumber/wireType as a varint. It is the
// first thing written for every field except the elements of a packed
// repeated field, which share one tag for the whole run.
func (e *Emitter) EmitTag(fieldNumber FieldNumber, wireType WireType) error {
	if !fieldNumber.IsValid() {
		return ErrFieldNumberOutOfRange
	}
	if e.cfg.RejectReservedFieldNumbers && fieldNumber.IsReserved() {
		return ErrFieldNumberOutOfRange
	}
	if !wireType.IsValid() {
		return ErrInvalidWireType
	}
	return e.EmitVarintRaw(uint64(MakeTag(fieldNumber, wireType)))
}

// EmitVarintRaw writes v as an unsigned base-128 varint, least
// significant group first, continuation bit set on every byte but the
// last. This is the one primitive every other varint-shaped emission
// builds on.
func (e *Emitter) EmitVarintRaw(v uint64) error {
	for v >= 0x80 {
		if err := e.sink.WriteByte(byte(v) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return e.sink.WriteByte(byte(v))
}

// EmitVarint writes v as a varint, reinterpreting it as unsigned the way
// protobuf's int32/int64/uint32/uint64/bool/enum fields do: a negative
// int64 widens to the full 10-byte varint rather than zigzagging.
func (e *Emitter) EmitVarint(v uint64) error {
	return e.EmitVarintRaw(v)
}

// EmitSignedVarint zigzag-encodes v and writes it as a varint. This is
// what sint32/sint64 fields use, trading width for small negative values
// against the raw-varint encoding EmitVarint gives int32/int64 fields.
func (e *Emitter) EmitSignedVarint(v int64) error {
	return e.EmitVarintRaw(EncodeZigZag64(v))
}

// EmitI32 writes v as 4 little-endian bytes: fixed32, sfixed32, and
// float fields (after the caller converts bits with math.Float32bits).
func (e *Emitter) EmitI32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return writeBulk(e.sink, buf[:])
}

// EmitI64 writes v as 8 little-endian bytes: fixed64, sfixed64, and
// double fields.
func (e *Emitter) EmitI64(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return writeBulk(e.sink, buf[:])
}

// EmitLen writes n as a varint length prefix, the first half of every
// length-delimited record (strings, bytes, submessages, packed repeated
// fields). The caller writes the n bytes of payload immediately after.
func (e *Emitter) EmitLen(n int) error {
	return e.EmitVarintRaw(uint64(n))
}

// EmitBytes writes data as a complete length-delimited record: its
// varint length followed by the raw bytes.
func (e *Emitter) EmitBytes(data []byte) error {
	if err := e.EmitLen(len(data)); err != nil {
		return err
	}
	return writeBulk(e.sink, data)
}

// EmitString is EmitBytes for a string argument.
func (e *Emitter) EmitString(s string) error {
	return e.EmitBytes([]byte(s))
}

// EmitVarintPacked writes a packed repeated varint field's body: the
// length prefix for the concatenated element encodings followed by each
// element's bare EmitVarintRaw encoding, with no per-element tag. The
// caller has already written the field's single EmitTag(field,
// WireBytes) before calling this.
func (e *Emitter) EmitVarintPacked(values []uint64) error {
	if err := e.EmitLen(PackedVarintLen(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.EmitVarintRaw(v); err != nil {
			return err
		}
	}
	return nil
}

// EmitSignedVarintPacked is EmitVarintPacked for sint32/sint64 elements:
// each element is zigzag-encoded before being written.
func (e *Emitter) EmitSignedVarintPacked(values []int64) error {
	if err := e.EmitLen(PackedSignedVarintLen(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.EmitVarintRaw(EncodeZigZag64(v)); err != nil {
			return err
		}
	}
	return nil
}

// EmitI32Packed writes a packed repeated fixed32/sfixed32/float field's
// body.
func (e *Emitter) EmitI32Packed(values []uint32) error {
	if err := e.EmitLen(PackedFixedLen(len(values), 4)); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.EmitI32(v); err != nil {
			return err
		}
	}
	return nil
}

// EmitI64Packed writes a packed repeated fixed64/sfixed64/double field's
// body.
func (e *Emitter) EmitI64Packed(values []uint64) error {
	if err := e.EmitLen(PackedFixedLen(len(values), 8)); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.EmitI64(v); err != nil {
			return err
		}
	}
	return nil
}
