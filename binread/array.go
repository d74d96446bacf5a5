package binread

// Array returns a decoder for a fixed-length sequence of n elem values. The
// length is part of the decoder itself, so the argument shape is exactly the
// element's own argument type; every slot receives a clone of it.
//
// Construction is all-or-nothing: the first element failure aborts the whole
// array and no partially initialized array is exposed.
func Array[T any, A Args[A]](n int, elem Decoder[T, A]) Decoder[[]T, A] {
	return arrayDecoder[T, A]{elem: elem, n: n}
}

type arrayDecoder[T any, A Args[A]] struct {
	elem Decoder[T, A]
	n    int
}

func (d arrayDecoder[T, A]) Decode(s Stream, opts *Options, args A) ([]T, error) {
	out := make([]T, d.n)
	for i := 0; i < d.n; i++ {
		v, err := d.elem.Decode(s, opts, args.Clone())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (d arrayDecoder[T, A]) Finalize(s Stream, opts *Options, v *[]T, args A) error {
	for i := range *v {
		if err := d.elem.Finalize(s, opts, &(*v)[i], args.Clone()); err != nil {
			return err
		}
	}
	return nil
}
