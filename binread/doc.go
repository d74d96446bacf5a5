// Package binread implements the read side of the binrw engine: decoding
// structured values from a seekable byte stream under a configurable byte
// order, with per-type construction arguments threaded through arbitrarily
// nested composite types.
//
// # Decode Contract
//
// Every decodable type satisfies one of two equivalent shapes:
//
//	Decodable[A]   - implemented by hand-written or generated types with
//	                 pointer receivers: Decode then Finalize
//	Decoder[T, A]  - a decoder value for types that cannot carry methods
//	                 (builtins, parameterized composites)
//
// Decoding is a two-phase traversal. The primary phase reads bytes in
// declaration order and builds the full value tree. The finalize phase then
// revisits the tree in the same order, letting each value perform
// stream-position-dependent follow-up work, such as seeking to an offset read
// during the primary phase and decoding the data found there. The argument
// value is cloned between the two phases and once per collection element.
//
// # Built-in Decoders
//
//	U8..U64, I8..I64   fixed-width integers
//	F32, F64           IEEE 754 floats
//	Char               a single byte widened to a rune
//	Slice              counted homogeneous sequence, raw-byte fast path
//	Array              fixed-length all-or-nothing sequence
//	Group, Group2..4   positional heterogeneous sequences
//	Maybe, Ptr         optional and boxed values
//	Marker, Unit       zero-byte values
//
// # Entry Points
//
// One-shot helpers resolve Options and arguments and run both phases:
//
//	var hdr Header
//	err := binread.ReadLE(r, &hdr)
//
//	vals, err := binread.ReadWith(r, binread.Slice(binread.U16()),
//	    binread.Little, binread.SliceArgs[binread.NoArgs]{Count: 3})
//
// # Failure Model
//
// Fixed-width primitives restore the stream position before reporting a short
// read. Composite decoders do not; after a composite failure the position is
// unspecified and the stream must be repositioned before reuse. There are no
// partial results: a decode either yields a complete value or an error.
package binread
