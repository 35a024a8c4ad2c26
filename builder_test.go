package protowire

import (
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/protowire/protowire/wire"
)

func build(t *testing.T, fn func(b *Builder) error) []byte {
	t.Helper()
	buf := wire.NewBuffer()
	b := NewBuilder(buf)
	if err := fn(b); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return buf.Bytes()
}

func TestBuilderScalarScenarios(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder) error
		want []byte
	}{
		{
			name: "bool",
			fn:   func(b *Builder) error { return b.EmitBool(1, true) },
			want: []byte{0x08, 0x01},
		},
		{
			name: "int32 negative",
			fn:   func(b *Builder) error { return b.EmitInt32(1, -1) },
			want: []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		},
		{
			name: "sint32 negative",
			fn:   func(b *Builder) error { return b.EmitSint32(1, -1) },
			want: []byte{0x08, 0x01},
		},
		{
			name: "uint64",
			fn:   func(b *Builder) error { return b.EmitUint64(2, 300) },
			want: []byte{0x10, 0xac, 0x02},
		},
		{
			name: "fixed32",
			fn:   func(b *Builder) error { return b.EmitFixed32(3, 1) },
			want: []byte{0x1d, 0x01, 0x00, 0x00, 0x00},
		},
		{
			name: "fixed64",
			fn:   func(b *Builder) error { return b.EmitFixed64(3, 1) },
			want: []byte{0x19, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "string",
			fn:   func(b *Builder) error { return b.EmitString(4, "go") },
			want: []byte{0x22, 0x02, 'g', 'o'},
		},
		{
			name: "bytes empty",
			fn:   func(b *Builder) error { return b.EmitBytes(4, nil) },
			want: []byte{0x22, 0x00},
		},
		{
			name: "bool packed",
			fn:   func(b *Builder) error { return b.EmitBoolPacked(1, []bool{true, false, true}) },
			want: []byte{0x0a, 0x03, 0x01, 0x00, 0x01},
		},
		{
			name: "string field 1",
			fn:   func(b *Builder) error { return b.EmitString(1, "test") },
			want: []byte{0x0a, 0x04, 't', 'e', 's', 't'},
		},
		{
			name: "fixed32 65537",
			fn:   func(b *Builder) error { return b.EmitFixed32(1, 65537) },
			want: []byte{0x0d, 0x01, 0x00, 0x01, 0x00},
		},
		{
			name: "int32 packed",
			fn:   func(b *Builder) error { return b.EmitInt32Packed(1, []int32{0, -1, 65537}) },
			want: []byte{0x0a, 0x0e, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01, 0x81, 0x80, 0x04},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := build(t, tt.fn)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestBuilderRepeatedIsOneTagPerElement(t *testing.T) {
	got := build(t, func(b *Builder) error { return b.EmitInt32Repeated(5, []int32{1, 2, 3}) })
	want := build(t, func(b *Builder) error {
		for _, v := range []int32{1, 2, 3} {
			if err := b.EmitInt32(5, v); err != nil {
				return err
			}
		}
		return nil
	})
	if !bytes.Equal(got, want) {
		t.Errorf("EmitInt32Repeated produced % x, want % x", got, want)
	}
}

func TestBuilderPackedUsesSingleTag(t *testing.T) {
	got := build(t, func(b *Builder) error { return b.EmitInt32Packed(6, []int32{1, 2, 3}) })

	num, typ, n := protowire.ConsumeTag(got)
	if n <= 0 || num != 6 || typ != protowire.BytesType {
		t.Fatalf("expected a single bytes-typed tag, got num=%d typ=%d n=%d", num, typ, n)
	}
	body, n2 := protowire.ConsumeBytes(got[n:])
	if n2 <= 0 {
		t.Fatalf("could not decode packed body")
	}
	if n+n2 != len(got) {
		t.Fatalf("packed field should be exactly one tag + one length-delimited record, leftover bytes in % x", got)
	}

	var decoded []int64
	for len(body) > 0 {
		v, c := protowire.ConsumeVarint(body)
		if c <= 0 {
			t.Fatalf("failed to decode packed element")
		}
		decoded = append(decoded, int64(v))
		body = body[c:]
	}
	if len(decoded) != 3 || decoded[0] != 1 || decoded[1] != 2 || decoded[2] != 3 {
		t.Errorf("decoded packed elements = %v, want [1 2 3]", decoded)
	}
}

// Regression test for the resolved packed-enum defect: a non-constant,
// strictly increasing slice so that reading a stale outer value instead
// of the current loop element would corrupt the output rather than
// coincidentally passing.
func TestBuilderEmitEnumPackedEncodesEachElement(t *testing.T) {
	values := []int32{0, 1, 2, 3, 4, 100, 1000}
	got := build(t, func(b *Builder) error { return b.EmitEnumPacked(7, values) })

	_, _, n := protowire.ConsumeTag(got)
	body, n2 := protowire.ConsumeBytes(got[n:])
	if n2 <= 0 {
		t.Fatalf("could not decode packed body")
	}

	var decoded []int32
	for len(body) > 0 {
		v, c := protowire.ConsumeVarint(body)
		if c <= 0 {
			t.Fatalf("failed to decode packed enum element")
		}
		decoded = append(decoded, int32(v))
		body = body[c:]
	}
	if len(decoded) != len(values) {
		t.Fatalf("decoded %d elements, want %d", len(decoded), len(values))
	}
	for i, want := range values {
		if decoded[i] != want {
			t.Errorf("element %d = %d, want %d", i, decoded[i], want)
		}
	}
}

func TestBuilderSubmessage(t *testing.T) {
	inner := build(t, func(b *Builder) error {
		if err := b.EmitInt32(1, 42); err != nil {
			return err
		}
		return b.EmitString(2, "nested")
	})

	outer := build(t, func(b *Builder) error { return b.EmitSubmessage(9, inner) })

	num, typ, n := protowire.ConsumeTag(outer)
	if n <= 0 || num != 9 || typ != protowire.BytesType {
		t.Fatalf("unexpected submessage tag decode")
	}
	body, n2 := protowire.ConsumeBytes(outer[n:])
	if n2 <= 0 || !bytes.Equal(body, inner) {
		t.Fatalf("submessage body does not match the bytes that were materialized for it")
	}
}

func TestFieldNumberOfAcceptsNamedIntegerTypes(t *testing.T) {
	type myFieldID int16
	const nameField myFieldID = 4

	got := build(t, func(b *Builder) error { return b.EmitString(FieldNumberOf(nameField), "ok") })
	want := build(t, func(b *Builder) error { return b.EmitString(4, "ok") })
	if !bytes.Equal(got, want) {
		t.Errorf("FieldNumberOf(myFieldID(4)) produced % x, want % x", got, want)
	}
}

func TestBuilderRejectsInvalidFieldNumber(t *testing.T) {
	buf := wire.NewBuffer()
	b := NewBuilder(buf)
	err := b.EmitInt32(0, 1)
	if err == nil {
		t.Fatal("expected an error for field number 0")
	}
	var fe *wire.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *wire.FieldError, got %T", err)
	}
}
