package protowire

import (
	"fmt"
	"math"

	"github.com/protowire/protowire/wire"
)

// Builder assembles one protobuf message by emitting its fields in any
// order the caller chooses, with no schema backing the call: every
// method takes the field number and wire category explicitly. It is a
// thin, per-field-typed layer over wire.Emitter, the way generated
// protoc-gen-go code is a thin layer over the proto runtime's encoder.
type Builder struct {
	e *wire.Emitter
}

// NewBuilder returns a Builder that writes to sink using the permissive
// default wire.Config.
func NewBuilder(sink wire.ByteSink) *Builder {
	return &Builder{e: wire.NewEmitter(sink)}
}

// NewBuilderWithConfig returns a Builder governed by cfg.
func NewBuilderWithConfig(sink wire.ByteSink, cfg wire.Config) *Builder {
	return &Builder{e: wire.NewEmitterWithConfig(sink, cfg)}
}

func fieldErr(field wire.FieldNumber, err error) error {
	if err == nil {
		return nil
	}
	return &wire.FieldError{FieldPath: []string{fmt.Sprintf("field_%d", field)}, Err: err}
}

// ---- shared per-category helpers ----

func (b *Builder) emitVarintField(field wire.FieldNumber, v uint64) error {
	if err := b.e.EmitTag(field, wire.WireVarint); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitVarint(v); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitSignedVarintField(field wire.FieldNumber, v int64) error {
	if err := b.e.EmitTag(field, wire.WireVarint); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitSignedVarint(v); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitI32Field(field wire.FieldNumber, v uint32) error {
	if err := b.e.EmitTag(field, wire.WireFixed32); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitI32(v); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitI64Field(field wire.FieldNumber, v uint64) error {
	if err := b.e.EmitTag(field, wire.WireFixed64); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitI64(v); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitBytesField(field wire.FieldNumber, v []byte) error {
	if err := b.e.EmitTag(field, wire.WireBytes); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitBytes(v); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitVarintRepeated(field wire.FieldNumber, vs []uint64) error {
	for _, v := range vs {
		if err := b.emitVarintField(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitSignedVarintRepeated(field wire.FieldNumber, vs []int64) error {
	for _, v := range vs {
		if err := b.emitSignedVarintField(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitI32Repeated(field wire.FieldNumber, vs []uint32) error {
	for _, v := range vs {
		if err := b.emitI32Field(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitI64Repeated(field wire.FieldNumber, vs []uint64) error {
	for _, v := range vs {
		if err := b.emitI64Field(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitBytesRepeated(field wire.FieldNumber, vs [][]byte) error {
	for _, v := range vs {
		if err := b.emitBytesField(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitVarintPacked(field wire.FieldNumber, vs []uint64) error {
	if err := b.e.EmitTag(field, wire.WireBytes); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitVarintPacked(vs); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitSignedVarintPacked(field wire.FieldNumber, vs []int64) error {
	if err := b.e.EmitTag(field, wire.WireBytes); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitSignedVarintPacked(vs); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitI32Packed(field wire.FieldNumber, vs []uint32) error {
	if err := b.e.EmitTag(field, wire.WireBytes); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitI32Packed(vs); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

func (b *Builder) emitI64Packed(field wire.FieldNumber, vs []uint64) error {
	if err := b.e.EmitTag(field, wire.WireBytes); err != nil {
		return fieldErr(field, err)
	}
	if err := b.e.EmitI64Packed(vs); err != nil {
		return fieldErr(field, err)
	}
	return nil
}

// ---- bool ----

// EmitBool emits a singular bool field.
func (b *Builder) EmitBool(field wire.FieldNumber, v bool) error {
	x := uint64(0)
	if v {
		x = 1
	}
	return b.emitVarintField(field, x)
}

// EmitBoolRepeated emits a repeated bool field as one tag+value pair per element.
func (b *Builder) EmitBoolRepeated(field wire.FieldNumber, vs []bool) error {
	for _, v := range vs {
		if err := b.EmitBool(field, v); err != nil {
			return err
		}
	}
	return nil
}

// EmitBoolPacked emits a packed repeated bool field as a single tag
// followed by one length-delimited run of bare varints.
func (b *Builder) EmitBoolPacked(field wire.FieldNumber, vs []bool) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		if v {
			xs[i] = 1
		}
	}
	return b.emitVarintPacked(field, xs)
}

// ---- int32 / int64 / uint32 / uint64 ----

func (b *Builder) EmitInt32(field wire.FieldNumber, v int32) error {
	return b.emitVarintField(field, uint64(v))
}

func (b *Builder) EmitInt32Repeated(field wire.FieldNumber, vs []int32) error {
	for _, v := range vs {
		if err := b.EmitInt32(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitInt32Packed(field wire.FieldNumber, vs []int32) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = uint64(v)
	}
	return b.emitVarintPacked(field, xs)
}

func (b *Builder) EmitInt64(field wire.FieldNumber, v int64) error {
	return b.emitVarintField(field, uint64(v))
}

func (b *Builder) EmitInt64Repeated(field wire.FieldNumber, vs []int64) error {
	for _, v := range vs {
		if err := b.EmitInt64(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitInt64Packed(field wire.FieldNumber, vs []int64) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = uint64(v)
	}
	return b.emitVarintPacked(field, xs)
}

func (b *Builder) EmitUint32(field wire.FieldNumber, v uint32) error {
	return b.emitVarintField(field, uint64(v))
}

func (b *Builder) EmitUint32Repeated(field wire.FieldNumber, vs []uint32) error {
	for _, v := range vs {
		if err := b.EmitUint32(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitUint32Packed(field wire.FieldNumber, vs []uint32) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = uint64(v)
	}
	return b.emitVarintPacked(field, xs)
}

func (b *Builder) EmitUint64(field wire.FieldNumber, v uint64) error {
	return b.emitVarintField(field, v)
}

func (b *Builder) EmitUint64Repeated(field wire.FieldNumber, vs []uint64) error {
	return b.emitVarintRepeated(field, vs)
}

func (b *Builder) EmitUint64Packed(field wire.FieldNumber, vs []uint64) error {
	return b.emitVarintPacked(field, vs)
}

// ---- sint32 / sint64 ----

func (b *Builder) EmitSint32(field wire.FieldNumber, v int32) error {
	return b.emitSignedVarintField(field, int64(v))
}

func (b *Builder) EmitSint32Repeated(field wire.FieldNumber, vs []int32) error {
	for _, v := range vs {
		if err := b.EmitSint32(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitSint32Packed(field wire.FieldNumber, vs []int32) error {
	xs := make([]int64, len(vs))
	for i, v := range vs {
		xs[i] = int64(v)
	}
	return b.emitSignedVarintPacked(field, xs)
}

func (b *Builder) EmitSint64(field wire.FieldNumber, v int64) error {
	return b.emitSignedVarintField(field, v)
}

func (b *Builder) EmitSint64Repeated(field wire.FieldNumber, vs []int64) error {
	return b.emitSignedVarintRepeated(field, vs)
}

func (b *Builder) EmitSint64Packed(field wire.FieldNumber, vs []int64) error {
	return b.emitSignedVarintPacked(field, vs)
}

// ---- fixed32 / fixed64 / sfixed32 / sfixed64 / float / double ----

func (b *Builder) EmitFixed32(field wire.FieldNumber, v uint32) error {
	return b.emitI32Field(field, v)
}

func (b *Builder) EmitFixed32Repeated(field wire.FieldNumber, vs []uint32) error {
	return b.emitI32Repeated(field, vs)
}

func (b *Builder) EmitFixed32Packed(field wire.FieldNumber, vs []uint32) error {
	return b.emitI32Packed(field, vs)
}

func (b *Builder) EmitFixed64(field wire.FieldNumber, v uint64) error {
	return b.emitI64Field(field, v)
}

func (b *Builder) EmitFixed64Repeated(field wire.FieldNumber, vs []uint64) error {
	return b.emitI64Repeated(field, vs)
}

func (b *Builder) EmitFixed64Packed(field wire.FieldNumber, vs []uint64) error {
	return b.emitI64Packed(field, vs)
}

func (b *Builder) EmitSfixed32(field wire.FieldNumber, v int32) error {
	return b.emitI32Field(field, uint32(v))
}

func (b *Builder) EmitSfixed32Repeated(field wire.FieldNumber, vs []int32) error {
	for _, v := range vs {
		if err := b.EmitSfixed32(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitSfixed32Packed(field wire.FieldNumber, vs []int32) error {
	xs := make([]uint32, len(vs))
	for i, v := range vs {
		xs[i] = uint32(v)
	}
	return b.emitI32Packed(field, xs)
}

func (b *Builder) EmitSfixed64(field wire.FieldNumber, v int64) error {
	return b.emitI64Field(field, uint64(v))
}

func (b *Builder) EmitSfixed64Repeated(field wire.FieldNumber, vs []int64) error {
	for _, v := range vs {
		if err := b.EmitSfixed64(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitSfixed64Packed(field wire.FieldNumber, vs []int64) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = uint64(v)
	}
	return b.emitI64Packed(field, xs)
}

func (b *Builder) EmitFloat(field wire.FieldNumber, v float32) error {
	return b.emitI32Field(field, math.Float32bits(v))
}

func (b *Builder) EmitFloatRepeated(field wire.FieldNumber, vs []float32) error {
	for _, v := range vs {
		if err := b.EmitFloat(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitFloatPacked(field wire.FieldNumber, vs []float32) error {
	xs := make([]uint32, len(vs))
	for i, v := range vs {
		xs[i] = math.Float32bits(v)
	}
	return b.emitI32Packed(field, xs)
}

func (b *Builder) EmitDouble(field wire.FieldNumber, v float64) error {
	return b.emitI64Field(field, math.Float64bits(v))
}

func (b *Builder) EmitDoubleRepeated(field wire.FieldNumber, vs []float64) error {
	for _, v := range vs {
		if err := b.EmitDouble(field, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) EmitDoublePacked(field wire.FieldNumber, vs []float64) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = math.Float64bits(v)
	}
	return b.emitI64Packed(field, xs)
}

// ---- enum ----

// EmitEnum emits a singular enum field. Protobuf enums are always
// wire-encoded as a plain varint, the same as int32.
func (b *Builder) EmitEnum(field wire.FieldNumber, v int32) error {
	return b.emitVarintField(field, uint64(v))
}

func (b *Builder) EmitEnumRepeated(field wire.FieldNumber, vs []int32) error {
	for _, v := range vs {
		if err := b.EmitEnum(field, v); err != nil {
			return err
		}
	}
	return nil
}

// EmitEnumPacked emits a packed repeated enum field. Each element of vs
// is read fresh out of the slice and varint-encoded in turn; there is no
// intermediate "current value" variable left dangling between
// iterations for a maintenance change to accidentally reuse.
func (b *Builder) EmitEnumPacked(field wire.FieldNumber, vs []int32) error {
	xs := make([]uint64, len(vs))
	for i, v := range vs {
		xs[i] = uint64(v)
	}
	return b.emitVarintPacked(field, xs)
}

// ---- string / bytes / submessage ----

// EmitString emits a singular string field.
func (b *Builder) EmitString(field wire.FieldNumber, v string) error {
	return b.emitBytesField(field, []byte(v))
}

// EmitStringRepeated emits a repeated string field as one tag+record pair per element.
func (b *Builder) EmitStringRepeated(field wire.FieldNumber, vs []string) error {
	for _, v := range vs {
		if err := b.EmitString(field, v); err != nil {
			return err
		}
	}
	return nil
}

// EmitBytes emits a singular bytes field.
func (b *Builder) EmitBytes(field wire.FieldNumber, v []byte) error {
	return b.emitBytesField(field, v)
}

// EmitBytesRepeated emits a repeated bytes field as one tag+record pair per element.
func (b *Builder) EmitBytesRepeated(field wire.FieldNumber, vs [][]byte) error {
	return b.emitBytesRepeated(field, vs)
}

// EmitSubmessage emits a nested message the caller has already built
// into bytes, most commonly with its own Builder over a separate
// wire.Buffer. There is no streaming sub-builder that writes directly
// into the parent's sink and patches its own length prefix afterward;
// the caller materializes the submessage first.
func (b *Builder) EmitSubmessage(field wire.FieldNumber, bytes []byte) error {
	return b.emitBytesField(field, bytes)
}

// EmitSubmessageRepeated emits a repeated submessage field, one
// already-materialized message per element.
func (b *Builder) EmitSubmessageRepeated(field wire.FieldNumber, messages [][]byte) error {
	return b.emitBytesRepeated(field, messages)
}
