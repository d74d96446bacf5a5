package binread

import (
	"encoding/binary"
	"testing"
)

func TestEndian_String(t *testing.T) {
	tests := []struct {
		e    Endian
		want string
	}{
		{Native, "native"},
		{Little, "little"},
		{Big, "big"},
		{Endian(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Endian(%d).String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

func TestEndian_ByteOrder(t *testing.T) {
	if got := Little.ByteOrder(); got != binary.ByteOrder(binary.LittleEndian) {
		t.Errorf("Little.ByteOrder() = %v, want LittleEndian", got)
	}
	if got := Big.ByteOrder(); got != binary.ByteOrder(binary.BigEndian) {
		t.Errorf("Big.ByteOrder() = %v, want BigEndian", got)
	}

	// Native resolves to a concrete host order at the moment of use.
	data := []byte{0x01, 0x02}
	got := Native.ByteOrder().Uint16(data)
	want := binary.NativeEndian.Uint16(data)
	if got != want {
		t.Errorf("Native.ByteOrder().Uint16 = %#x, want host order %#x", got, want)
	}
}

func TestOptions_ZeroValue(t *testing.T) {
	var o Options
	if o.Endian() != Native {
		t.Errorf("zero Options endian = %v, want Native", o.Endian())
	}
}

func TestOptions_WithEndian(t *testing.T) {
	o := NewOptions(Big)
	o2 := o.WithEndian(Little)

	if o.Endian() != Big {
		t.Errorf("receiver mutated: endian = %v, want Big", o.Endian())
	}
	if o2.Endian() != Little {
		t.Errorf("copy endian = %v, want Little", o2.Endian())
	}
	if o == o2 {
		t.Error("WithEndian should return a distinct snapshot")
	}
}
