package binread

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	binerrors "github.com/Holzhaus/binrw/errors"
)

// u8Slow decodes bytes one at a time without the raw-byte marker, forcing
// Slice onto the generic per-element path.
type u8Slow struct{}

func (u8Slow) Decode(s Stream, opts *Options, args NoArgs) (uint8, error) {
	return U8().Decode(s, opts, args)
}

func (u8Slow) Finalize(Stream, *Options, *uint8, NoArgs) error { return nil }

// slowByte returns u8Slow as a Decoder value.
func slowByte() Decoder[uint8, NoArgs] { return u8Slow{} }

// traceU8 decodes a byte and records its decode and finalize calls.
type traceU8 struct {
	log *[]string
}

func (d traceU8) Decode(s Stream, opts *Options, args NoArgs) (uint8, error) {
	v, err := U8().Decode(s, opts, args)
	if err != nil {
		return 0, err
	}
	*d.log = append(*d.log, fmt.Sprintf("decode:%d", v))
	return v, nil
}

func (d traceU8) Finalize(_ Stream, _ *Options, v *uint8, _ NoArgs) error {
	*d.log = append(*d.log, fmt.Sprintf("finalize:%d", *v))
	return nil
}

// traceByte returns traceU8 as a Decoder value.
func traceByte(log *[]string) Decoder[uint8, NoArgs] { return traceU8{log: log} }

func TestSlice_Counts(t *testing.T) {
	for _, count := range []int{0, 1, 2, 7, 64} {
		t.Run(fmt.Sprintf("count %d", count), func(t *testing.T) {
			data := make([]byte, count)
			for i := range data {
				data[i] = byte(i)
			}
			r := bytes.NewReader(data)
			got, err := ReadWith(r, Slice(slowByte()), Little, SliceArgs[NoArgs]{Count: count})
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(got) != count {
				t.Fatalf("len = %d, want %d", len(got), count)
			}
			for i, v := range got {
				if v != byte(i) {
					t.Errorf("got[%d] = %d, want %d (stream order)", i, v, i)
				}
			}
		})
	}
}

func TestSlice_U16LittleEndianScenario(t *testing.T) {
	r := bytes.NewReader([]byte{0x04, 0x00, 0x05, 0x00, 0x06, 0x00})
	got, err := ReadWith(r, Slice(U16()), Little, SliceArgs[NoArgs]{Count: 3})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []uint16{4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSlice_FastPathMatchesSlowPath(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff}

	fast, err := ReadWith(bytes.NewReader(data), Slice(U8()), Little, SliceArgs[NoArgs]{Count: len(data)})
	if err != nil {
		t.Fatalf("fast path failed: %v", err)
	}
	slow, err := ReadWith(bytes.NewReader(data), Slice(slowByte()), Little, SliceArgs[NoArgs]{Count: len(data)})
	if err != nil {
		t.Fatalf("slow path failed: %v", err)
	}

	if !bytes.Equal(fast, slow) {
		t.Errorf("fast path %v != slow path %v", fast, slow)
	}
	if !bytes.Equal(fast, data) {
		t.Errorf("fast path %v != stream bytes %v", fast, data)
	}
}

func TestSlice_FastPathShortRead(t *testing.T) {
	r := bytes.NewReader([]byte{0x01, 0x02})
	_, err := ReadWith(r, Slice(U8()), Little, SliceArgs[NoArgs]{Count: 5})
	if err == nil {
		t.Fatal("expected short-read error")
	}
	if !stderrors.Is(err, &binerrors.Error{Phase: binerrors.PhaseDecode, Kind: binerrors.KindShortRead}) {
		t.Errorf("error = %v, want short_read kind", err)
	}
}

func TestSlice_ElementFailureAborts(t *testing.T) {
	// Five bytes: two full uint16 elements, then a short read.
	r := bytes.NewReader([]byte{0x01, 0x00, 0x02, 0x00, 0x03})
	_, err := ReadWith(r, Slice(U16()), Little, SliceArgs[NoArgs]{Count: 3})
	if err == nil {
		t.Fatal("expected short-read error")
	}
	if !stderrors.Is(err, &binerrors.Error{Phase: binerrors.PhaseDecode, Kind: binerrors.KindShortRead}) {
		t.Errorf("error = %v, want short_read kind", err)
	}
}

func TestSlice_NegativeCount(t *testing.T) {
	r := bytes.NewReader([]byte{0x01})
	_, err := ReadWith(r, Slice(U8()), Little, SliceArgs[NoArgs]{Count: -1})
	if err == nil {
		t.Fatal("expected error for negative count")
	}
	if !stderrors.Is(err, &binerrors.Error{Phase: binerrors.PhaseDecode, Kind: binerrors.KindShortRead}) {
		t.Errorf("error = %v, want short_read kind", err)
	}
	if pos, _ := r.Seek(0, 1); pos != 0 {
		t.Errorf("stream position = %d, want 0 (nothing consumed)", pos)
	}
}

func TestSlice_FinalizePerElementInOrder(t *testing.T) {
	var log []string
	r := bytes.NewReader([]byte{1, 2, 3})
	_, err := ReadWith(r, Slice(traceByte(&log)), Little, SliceArgs[NoArgs]{Count: 3})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []string{"decode:1", "decode:2", "decode:3", "finalize:1", "finalize:2", "finalize:3"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestSliceArgs_CloneIsDeep(t *testing.T) {
	args := SliceArgs[SliceArgs[NoArgs]]{
		Count: 2,
		Inner: SliceArgs[NoArgs]{Count: 4},
	}
	c := args.Clone()
	if c.Count != 2 || c.Inner.Count != 4 {
		t.Errorf("clone = %+v, want copy of %+v", c, args)
	}
	c.Inner.Count = 9
	if args.Inner.Count != 4 {
		t.Error("mutating the clone changed the original")
	}
}

func TestSlice_InnerArgsReachElements(t *testing.T) {
	// Nested slices: outer count 2, each element a slice of 2 bytes taken
	// from the shared inner arguments.
	r := bytes.NewReader([]byte{0xaa, 0xbb, 0xcc, 0xdd})
	got, err := ReadWith(r, Slice(Slice(U8())), Little, SliceArgs[SliceArgs[NoArgs]]{
		Count: 2,
		Inner: SliceArgs[NoArgs]{Count: 2},
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 2 || !bytes.Equal(got[0], []byte{0xaa, 0xbb}) || !bytes.Equal(got[1], []byte{0xcc, 0xdd}) {
		t.Errorf("got %v, want [[aa bb] [cc dd]]", got)
	}
}
