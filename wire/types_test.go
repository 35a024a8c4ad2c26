package wire

import "testing"

func TestMakeTagParseTag(t *testing.T) {
	tests := []struct {
		field FieldNumber
		wire  WireType
	}{
		{1, WireVarint},
		{2, WireFixed64},
		{3, WireBytes},
		{4, WireFixed32},
		{536870911, WireBytes}, // 2^29 - 1
	}

	for _, tt := range tests {
		tag := MakeTag(tt.field, tt.wire)
		gotField, gotWire := ParseTag(tag)
		if gotField != tt.field || gotWire != tt.wire {
			t.Errorf("MakeTag(%d,%d) round-trip got (%d,%d)", tt.field, tt.wire, gotField, gotWire)
		}
	}
}

func TestFieldNumberIsValid(t *testing.T) {
	tests := []struct {
		f    FieldNumber
		want bool
	}{
		{0, false},
		{1, true},
		{19000, true}, // reserved, but still in fundamental range
		{19999, true},
		{536870911, true},
		{536870912, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.f.IsValid(); got != tt.want {
			t.Errorf("FieldNumber(%d).IsValid() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestFieldNumberIsReserved(t *testing.T) {
	tests := []struct {
		f    FieldNumber
		want bool
	}{
		{18999, false},
		{19000, true},
		{19500, true},
		{19999, true},
		{20000, false},
	}
	for _, tt := range tests {
		if got := tt.f.IsReserved(); got != tt.want {
			t.Errorf("FieldNumber(%d).IsReserved() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestWireTypeIsValid(t *testing.T) {
	for _, w := range []WireType{WireVarint, WireFixed64, WireBytes, WireFixed32} {
		if !w.IsValid() {
			t.Errorf("WireType(%d).IsValid() = false, want true", w)
		}
	}
	for _, w := range []WireType{2 + 1, 4, 6, -1} {
		if w.IsValid() {
			t.Errorf("WireType(%d).IsValid() = true, want false", w)
		}
	}
}

func TestScalarCategoryWireType(t *testing.T) {
	tests := []struct {
		c    ScalarCategory
		want WireType
	}{
		{CategoryVarint, WireVarint},
		{CategorySignedVarint, WireVarint},
		{CategoryFixed32, WireFixed32},
		{CategoryFixed64, WireFixed64},
		{CategoryLengthDelimited, WireBytes},
	}
	for _, tt := range tests {
		if got := tt.c.WireType(); got != tt.want {
			t.Errorf("category %d WireType() = %d, want %d", tt.c, got, tt.want)
		}
	}
}
