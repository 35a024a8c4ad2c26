// Package protowire provides Builder, a schema-agnostic API for
// emitting Protocol Buffers wire format without a .proto file, a message
// registry, or code generation. Callers name each field by number and
// wire category as they go; Builder handles tags, varint and zigzag
// encoding, fixed-width little-endian layout, and length-delimited
// framing for strings, bytes, packed repeated fields, and submessages.
//
// Builder writes through wire.Emitter, which in turn writes through any
// wire.ByteSink. wire.NewBuffer gives most callers a ready-made sink
// backed by a growable byte slice:
//
//	buf := wire.NewBuffer()
//	b := protowire.NewBuilder(buf)
//	b.EmitString(1, "hello")
//	b.EmitInt32(2, -7)
//	data := buf.Bytes()
package protowire
