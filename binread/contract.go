package binread

// Args constrains the argument value a decodable type receives beyond the raw
// bytes: an element count, arguments for nested child values, shared context.
// Argument values must be cheaply duplicable because the engine clones them
// once per collection element and once between the two decode phases.
type Args[A any] interface {
	// Clone returns a copy of the argument value with no information loss.
	Clone() A
}

// DefaultArgs constrains argument types that can produce a default value,
// enabling the zero-argument convenience entry points. Default must be
// callable on the zero value of the type.
type DefaultArgs[A any] interface {
	Args[A]
	Default() A
}

// NoArgs is the unit argument type for decoders that need nothing beyond the
// stream and options.
type NoArgs struct{}

// Clone returns the unit argument value.
func (NoArgs) Clone() NoArgs { return NoArgs{} }

// Default returns the unit argument value.
func (NoArgs) Default() NoArgs { return NoArgs{} }

// Decodable is the capability a type implements to be readable from a
// stream. Implementations use pointer receivers; the engine decodes in place.
//
// Decode reads exactly the bytes the value needs from the current stream
// position forward, honoring the byte order in opts for multi-byte values and
// using args for type-specific construction parameters. On success the stream
// is positioned immediately after the consumed bytes. On failure the stream
// position is unspecified and the caller must reposition before reuse.
//
// Finalize runs once the entire value tree of the surrounding decode call has
// completed its primary phase. It performs stream-position-dependent
// follow-up work, such as resolving offsets read during Decode. Composite
// implementations recurse into their children in decode order. Types with no
// second-phase work embed NopFinalize.
type Decodable[A Args[A]] interface {
	Decode(s Stream, opts *Options, args A) error
	Finalize(s Stream, opts *Options, args A) error
}

// Decoder is the value form of the decode capability, used for types that
// cannot carry methods: builtins, slices, tuples. Decode returns the
// constructed value; Finalize receives it back by pointer for the second
// phase.
type Decoder[T any, A Args[A]] interface {
	Decode(s Stream, opts *Options, args A) (T, error)
	Finalize(s Stream, opts *Options, v *T, args A) error
}

// NopFinalize provides a no-op second phase for Decodable implementations.
type NopFinalize[A Args[A]] struct{}

func (NopFinalize[A]) Finalize(Stream, *Options, A) error { return nil }

// Of adapts a Decodable implementation into a Decoder so hand-written or
// generated types compose under Slice, Array, Maybe, and the other built-in
// decoders:
//
//	entries, err := binread.ReadWith(r,
//	    binread.Slice(binread.Of[Entry, binread.NoArgs]()),
//	    binread.Little, binread.SliceArgs[binread.NoArgs]{Count: n})
func Of[T any, A Args[A], PT interface {
	*T
	Decodable[A]
}]() Decoder[T, A] {
	return adapted[T, A, PT]{}
}

type adapted[T any, A Args[A], PT interface {
	*T
	Decodable[A]
}] struct{}

func (adapted[T, A, PT]) Decode(s Stream, opts *Options, args A) (T, error) {
	var v T
	if err := PT(&v).Decode(s, opts, args); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (adapted[T, A, PT]) Finalize(s Stream, opts *Options, v *T, args A) error {
	return PT(v).Finalize(s, opts, args)
}
