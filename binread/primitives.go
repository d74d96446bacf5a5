package binread

import (
	"encoding/binary"
	"math"
)

// fixed decodes a fixed-width value: read exactly size bytes at the current
// position, interpret them per the resolved byte order. A short read restores
// the stream position before failing.
type fixed[T any] struct {
	get  func(binary.ByteOrder, []byte) T
	name string
	size int
}

func (d fixed[T]) Decode(s Stream, opts *Options, _ NoArgs) (T, error) {
	var buf [8]byte
	b := buf[:d.size]
	if err := readRestoring(s, b, d.name); err != nil {
		var zero T
		return zero, err
	}
	return d.get(opts.ByteOrder(), b), nil
}

func (d fixed[T]) Finalize(Stream, *Options, *T, NoArgs) error { return nil }

// byteDecoder is the raw byte type. It is a distinct type so Slice can
// recognize it and take the bulk-read fast path.
type byteDecoder struct{}

func (byteDecoder) rawByte() {}

func (byteDecoder) Decode(s Stream, _ *Options, _ NoArgs) (uint8, error) {
	var buf [1]byte
	if err := readRestoring(s, buf[:], "uint8"); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (byteDecoder) Finalize(Stream, *Options, *uint8, NoArgs) error { return nil }

// U8 returns the decoder for a single raw byte.
func U8() Decoder[uint8, NoArgs] { return byteDecoder{} }

// U16 returns the decoder for an unsigned 16-bit integer.
func U16() Decoder[uint16, NoArgs] {
	return fixed[uint16]{name: "uint16", size: 2, get: func(bo binary.ByteOrder, b []byte) uint16 {
		return bo.Uint16(b)
	}}
}

// U32 returns the decoder for an unsigned 32-bit integer.
func U32() Decoder[uint32, NoArgs] {
	return fixed[uint32]{name: "uint32", size: 4, get: func(bo binary.ByteOrder, b []byte) uint32 {
		return bo.Uint32(b)
	}}
}

// U64 returns the decoder for an unsigned 64-bit integer.
func U64() Decoder[uint64, NoArgs] {
	return fixed[uint64]{name: "uint64", size: 8, get: func(bo binary.ByteOrder, b []byte) uint64 {
		return bo.Uint64(b)
	}}
}

// I8 returns the decoder for a signed 8-bit integer.
func I8() Decoder[int8, NoArgs] {
	return fixed[int8]{name: "int8", size: 1, get: func(_ binary.ByteOrder, b []byte) int8 {
		return int8(b[0])
	}}
}

// I16 returns the decoder for a signed 16-bit integer.
func I16() Decoder[int16, NoArgs] {
	return fixed[int16]{name: "int16", size: 2, get: func(bo binary.ByteOrder, b []byte) int16 {
		return int16(bo.Uint16(b))
	}}
}

// I32 returns the decoder for a signed 32-bit integer.
func I32() Decoder[int32, NoArgs] {
	return fixed[int32]{name: "int32", size: 4, get: func(bo binary.ByteOrder, b []byte) int32 {
		return int32(bo.Uint32(b))
	}}
}

// I64 returns the decoder for a signed 64-bit integer.
func I64() Decoder[int64, NoArgs] {
	return fixed[int64]{name: "int64", size: 8, get: func(bo binary.ByteOrder, b []byte) int64 {
		return int64(bo.Uint64(b))
	}}
}

// F32 returns the decoder for an IEEE 754 single-precision float.
func F32() Decoder[float32, NoArgs] {
	return fixed[float32]{name: "float32", size: 4, get: func(bo binary.ByteOrder, b []byte) float32 {
		return math.Float32frombits(bo.Uint32(b))
	}}
}

// F64 returns the decoder for an IEEE 754 double-precision float.
func F64() Decoder[float64, NoArgs] {
	return fixed[float64]{name: "float64", size: 8, get: func(bo binary.ByteOrder, b []byte) float64 {
		return math.Float64frombits(bo.Uint64(b))
	}}
}

// Char returns the decoder for a character: a single byte widened directly to
// a rune. This is a deliberate single-byte approximation with no multi-byte
// text decoding; callers depending on it get exactly one byte per character.
func Char() Decoder[rune, NoArgs] {
	return fixed[rune]{name: "char", size: 1, get: func(_ binary.ByteOrder, b []byte) rune {
		return rune(b[0])
	}}
}
