package binread

import (
	"io"

	"github.com/Holzhaus/binrw/errors"
)

// SliceArgs carries the construction parameters for a counted homogeneous
// sequence: how many elements to read and the arguments each element decode
// receives. Inner is cloned once per element.
type SliceArgs[A Args[A]] struct {
	// Count is the number of elements to read. Must be non-negative.
	Count int `args:"count"`

	// Inner is the argument value passed to every element decode.
	Inner A `args:"inner,optional"`
}

// Clone duplicates the argument value, deep-cloning the element arguments.
func (a SliceArgs[A]) Clone() SliceArgs[A] {
	a.Inner = a.Inner.Clone()
	return a
}

// rawByter is the capability query for the raw-byte fast path. Checked once
// per Slice decode, not per element.
type rawByter interface {
	rawByte()
}

// Slice returns a decoder for a counted sequence of elem values.
//
// When elem is the raw byte decoder the whole sequence is read in one bulk
// operation; the result is byte-for-byte identical to the per-element path.
// The first element failure aborts the decode with no partial sequence.
func Slice[T any, A Args[A]](elem Decoder[T, A]) Decoder[[]T, SliceArgs[A]] {
	return sliceDecoder[T, A]{elem: elem}
}

type sliceDecoder[T any, A Args[A]] struct {
	elem Decoder[T, A]
}

func (d sliceDecoder[T, A]) Decode(s Stream, opts *Options, args SliceArgs[A]) ([]T, error) {
	if args.Count < 0 {
		pos, _ := streamPos(s)
		return nil, errors.ShortRead(errors.PhaseDecode, "slice", pos, args.Count, 0)
	}

	if _, ok := any(d.elem).(rawByter); ok {
		buf := make([]byte, args.Count)
		n, err := io.ReadFull(s, buf)
		if err != nil {
			pos, _ := streamPos(s)
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, errors.ShortRead(errors.PhaseDecode, "slice", pos, args.Count, n)
			}
			return nil, errors.IO(errors.PhaseDecode, pos, err)
		}
		if out, ok := any(buf).([]T); ok {
			return out, nil
		}
		// The marker guarantees T is uint8; unreachable in practice.
	}

	out := make([]T, 0, args.Count)
	for i := 0; i < args.Count; i++ {
		v, err := d.elem.Decode(s, opts, args.Inner.Clone())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d sliceDecoder[T, A]) Finalize(s Stream, opts *Options, v *[]T, args SliceArgs[A]) error {
	for i := range *v {
		if err := d.elem.Finalize(s, opts, &(*v)[i], args.Inner.Clone()); err != nil {
			return err
		}
	}
	return nil
}
