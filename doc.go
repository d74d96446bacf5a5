// Package binrw provides a generic, composable engine for reading structured
// values out of seekable binary streams.
//
// The engine is a protocol, not a format: it defines the capability a
// decodable type must satisfy, how cross-cutting options (byte order) and
// per-type construction arguments flow through arbitrarily nested composite
// types, and a two-phase construction model for values whose contents depend
// on data read later in the stream (offset tables, length-delimited blobs,
// self-referential structures).
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	binrw/          Root package with the Stream capability interface
//	├── binread/    The read engine: options, the decode contract, built-in
//	│               decoders, the typed-argument builder, and one-shot
//	│               convenience entry points
//	└── errors/     Structured error types for decode failures
//
// # Quick Start
//
// Decode a little-endian value from a byte slice:
//
//	r := bytes.NewReader(data)
//	var hdr Header
//	if err := binread.ReadLE(r, &hdr); err != nil {
//	    return err
//	}
//
// Decode a counted sequence with an explicit argument value:
//
//	vals, err := binread.ReadWith(r, binread.Slice(binread.U16()),
//	    binread.Little, binread.SliceArgs[binread.NoArgs]{Count: 3})
//
// # Stream Ownership
//
// The engine borrows the stream for the duration of one decode call and never
// closes it. A stream is used by one decode call at a time; the engine does no
// locking of its own. Decoded values are fully owned by the caller on return.
//
// # Failure Model
//
// Fixed-width primitive decoders restore the stream position before reporting
// a short read. Composite decoders do not: after a failed composite decode the
// stream position is unspecified and the caller must reposition the stream
// explicitly before reusing it.
package binrw
