package binread

// One-shot entry points. Each resolves an Options snapshot and runs both
// decode phases: the primary pass with a clone of the arguments, then the
// finalize pass over the completed value with the arguments themselves.

// Read decodes v from the stream with native byte order and unit arguments.
func Read(s Stream, v Decodable[NoArgs]) error {
	return ReadWithOptions(s, v, NewOptions(Native), NoArgs{})
}

// ReadLE decodes v from the stream with little-endian byte order and unit
// arguments.
func ReadLE(s Stream, v Decodable[NoArgs]) error {
	return ReadWithOptions(s, v, NewOptions(Little), NoArgs{})
}

// ReadBE decodes v from the stream with big-endian byte order and unit
// arguments.
func ReadBE(s Stream, v Decodable[NoArgs]) error {
	return ReadWithOptions(s, v, NewOptions(Big), NoArgs{})
}

// ReadNE decodes v from the stream with native byte order and unit arguments.
func ReadNE(s Stream, v Decodable[NoArgs]) error {
	return ReadWithOptions(s, v, NewOptions(Native), NoArgs{})
}

// ReadArgs decodes v from the stream with native byte order and the given
// arguments.
func ReadArgs[A Args[A]](s Stream, v Decodable[A], args A) error {
	return ReadWithOptions(s, v, NewOptions(Native), args)
}

// ReadLEArgs decodes v from the stream with little-endian byte order and the
// given arguments.
func ReadLEArgs[A Args[A]](s Stream, v Decodable[A], args A) error {
	return ReadWithOptions(s, v, NewOptions(Little), args)
}

// ReadBEArgs decodes v from the stream with big-endian byte order and the
// given arguments.
func ReadBEArgs[A Args[A]](s Stream, v Decodable[A], args A) error {
	return ReadWithOptions(s, v, NewOptions(Big), args)
}

// ReadNEArgs decodes v from the stream with native byte order and the given
// arguments.
func ReadNEArgs[A Args[A]](s Stream, v Decodable[A], args A) error {
	return ReadWithOptions(s, v, NewOptions(Native), args)
}

// ReadDefault decodes v from the stream with the given byte order, using the
// argument type's default value. The argument type must be explicitly
// instantiated when it cannot be inferred:
//
//	err := binread.ReadDefault[EntryArgs](r, binread.Little, &entry)
func ReadDefault[A DefaultArgs[A]](s Stream, e Endian, v Decodable[A]) error {
	var args A
	return ReadWithOptions(s, v, NewOptions(e), args.Default())
}

// ReadWithOptions decodes v from the stream with an explicit Options
// snapshot and arguments, running both phases.
func ReadWithOptions[A Args[A]](s Stream, v Decodable[A], opts *Options, args A) error {
	debugf("decode %T endian=%s", v, opts.Endian())
	if err := v.Decode(s, opts, args.Clone()); err != nil {
		return err
	}
	return v.Finalize(s, opts, args)
}

// DecodeWith runs both phases of a decoder value with an explicit Options
// snapshot and arguments, returning the constructed value.
func DecodeWith[T any, A Args[A]](s Stream, d Decoder[T, A], opts *Options, args A) (T, error) {
	debugf("decode %T endian=%s", d, opts.Endian())
	v, err := d.Decode(s, opts, args.Clone())
	if err != nil {
		var zero T
		return zero, err
	}
	if err := d.Finalize(s, opts, &v, args); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadWith runs both phases of a decoder value with the given byte order.
func ReadWith[T any, A Args[A]](s Stream, d Decoder[T, A], e Endian, args A) (T, error) {
	return DecodeWith(s, d, NewOptions(e), args)
}
