package binread

// Optional holds a possibly-absent value. The engine itself always produces a
// present value: absence is decided by higher-level conditional logic layered
// on top, not by this decoder.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Maybe returns a decoder producing an Optional wrapper around elem. The
// argument shape is the wrapped type's own. Decode always yields a present
// value; Finalize delegates to the wrapped value only when present.
func Maybe[T any, A Args[A]](elem Decoder[T, A]) Decoder[Optional[T], A] {
	return maybeDecoder[T, A]{elem: elem}
}

type maybeDecoder[T any, A Args[A]] struct {
	elem Decoder[T, A]
}

func (d maybeDecoder[T, A]) Decode(s Stream, opts *Options, args A) (Optional[T], error) {
	v, err := d.elem.Decode(s, opts, args)
	if err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{Value: v, Present: true}, nil
}

func (d maybeDecoder[T, A]) Finalize(s Stream, opts *Options, v *Optional[T], args A) error {
	if !v.Present {
		return nil
	}
	return d.elem.Finalize(s, opts, &v.Value, args)
}

// Ptr returns a decoder that constructs the wrapped value and takes sole
// ownership of it behind a pointer. The argument shape is the wrapped
// type's own.
func Ptr[T any, A Args[A]](elem Decoder[T, A]) Decoder[*T, A] {
	return ptrDecoder[T, A]{elem: elem}
}

type ptrDecoder[T any, A Args[A]] struct {
	elem Decoder[T, A]
}

func (d ptrDecoder[T, A]) Decode(s Stream, opts *Options, args A) (*T, error) {
	v, err := d.elem.Decode(s, opts, args)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (d ptrDecoder[T, A]) Finalize(s Stream, opts *Options, v **T, args A) error {
	if *v == nil {
		return nil
	}
	return d.elem.Finalize(s, opts, *v, args)
}

// Phantom carries compile-time-only type information with no runtime
// footprint and no bytes in the stream.
type Phantom[T any] struct{}

// Marker returns the zero-byte decoder for Phantom[T].
func Marker[T any]() Decoder[Phantom[T], NoArgs] {
	return markerDecoder[T]{}
}

type markerDecoder[T any] struct{}

func (markerDecoder[T]) Decode(Stream, *Options, NoArgs) (Phantom[T], error) {
	return Phantom[T]{}, nil
}

func (markerDecoder[T]) Finalize(Stream, *Options, *Phantom[T], NoArgs) error { return nil }

// Unit returns the decoder for the empty value: zero bytes consumed.
func Unit() Decoder[struct{}, NoArgs] {
	return unitDecoder{}
}

type unitDecoder struct{}

func (unitDecoder) Decode(Stream, *Options, NoArgs) (struct{}, error) {
	return struct{}{}, nil
}

func (unitDecoder) Finalize(Stream, *Options, *struct{}, NoArgs) error { return nil }
