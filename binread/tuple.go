package binread

// Tuples decode position by position in declared order, aborting on the first
// failure; finalize revisits the positions in the same order. Every position
// takes the unit argument.
//
// Typed tuples cover the common arities. Group composes any number of erased
// positions, so there is no arity ceiling.

// Tuple2 is a pair of independently typed values.
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// Tuple3 is a triple of independently typed values.
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// Tuple4 is a quadruple of independently typed values.
type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// Group2 returns a decoder for a two-position tuple.
func Group2[T0, T1 any](d0 Decoder[T0, NoArgs], d1 Decoder[T1, NoArgs]) Decoder[Tuple2[T0, T1], NoArgs] {
	return group2[T0, T1]{d0: d0, d1: d1}
}

type group2[T0, T1 any] struct {
	d0 Decoder[T0, NoArgs]
	d1 Decoder[T1, NoArgs]
}

func (g group2[T0, T1]) Decode(s Stream, opts *Options, _ NoArgs) (Tuple2[T0, T1], error) {
	var out Tuple2[T0, T1]
	var err error
	if out.V0, err = g.d0.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple2[T0, T1]{}, err
	}
	if out.V1, err = g.d1.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple2[T0, T1]{}, err
	}
	return out, nil
}

func (g group2[T0, T1]) Finalize(s Stream, opts *Options, v *Tuple2[T0, T1], _ NoArgs) error {
	if err := g.d0.Finalize(s, opts, &v.V0, NoArgs{}); err != nil {
		return err
	}
	return g.d1.Finalize(s, opts, &v.V1, NoArgs{})
}

// Group3 returns a decoder for a three-position tuple.
func Group3[T0, T1, T2 any](d0 Decoder[T0, NoArgs], d1 Decoder[T1, NoArgs], d2 Decoder[T2, NoArgs]) Decoder[Tuple3[T0, T1, T2], NoArgs] {
	return group3[T0, T1, T2]{d0: d0, d1: d1, d2: d2}
}

type group3[T0, T1, T2 any] struct {
	d0 Decoder[T0, NoArgs]
	d1 Decoder[T1, NoArgs]
	d2 Decoder[T2, NoArgs]
}

func (g group3[T0, T1, T2]) Decode(s Stream, opts *Options, _ NoArgs) (Tuple3[T0, T1, T2], error) {
	var out Tuple3[T0, T1, T2]
	var err error
	if out.V0, err = g.d0.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	if out.V1, err = g.d1.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	if out.V2, err = g.d2.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	return out, nil
}

func (g group3[T0, T1, T2]) Finalize(s Stream, opts *Options, v *Tuple3[T0, T1, T2], _ NoArgs) error {
	if err := g.d0.Finalize(s, opts, &v.V0, NoArgs{}); err != nil {
		return err
	}
	if err := g.d1.Finalize(s, opts, &v.V1, NoArgs{}); err != nil {
		return err
	}
	return g.d2.Finalize(s, opts, &v.V2, NoArgs{})
}

// Group4 returns a decoder for a four-position tuple.
func Group4[T0, T1, T2, T3 any](d0 Decoder[T0, NoArgs], d1 Decoder[T1, NoArgs], d2 Decoder[T2, NoArgs], d3 Decoder[T3, NoArgs]) Decoder[Tuple4[T0, T1, T2, T3], NoArgs] {
	return group4[T0, T1, T2, T3]{d0: d0, d1: d1, d2: d2, d3: d3}
}

type group4[T0, T1, T2, T3 any] struct {
	d0 Decoder[T0, NoArgs]
	d1 Decoder[T1, NoArgs]
	d2 Decoder[T2, NoArgs]
	d3 Decoder[T3, NoArgs]
}

func (g group4[T0, T1, T2, T3]) Decode(s Stream, opts *Options, _ NoArgs) (Tuple4[T0, T1, T2, T3], error) {
	var out Tuple4[T0, T1, T2, T3]
	var err error
	if out.V0, err = g.d0.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V1, err = g.d1.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V2, err = g.d2.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V3, err = g.d3.Decode(s, opts, NoArgs{}); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	return out, nil
}

func (g group4[T0, T1, T2, T3]) Finalize(s Stream, opts *Options, v *Tuple4[T0, T1, T2, T3], _ NoArgs) error {
	if err := g.d0.Finalize(s, opts, &v.V0, NoArgs{}); err != nil {
		return err
	}
	if err := g.d1.Finalize(s, opts, &v.V1, NoArgs{}); err != nil {
		return err
	}
	if err := g.d2.Finalize(s, opts, &v.V2, NoArgs{}); err != nil {
		return err
	}
	return g.d3.Finalize(s, opts, &v.V3, NoArgs{})
}

// Dyn erases a decoder's value type so it can join a Group.
func Dyn[T any](d Decoder[T, NoArgs]) Decoder[any, NoArgs] {
	return dynDecoder[T]{d: d}
}

type dynDecoder[T any] struct {
	d Decoder[T, NoArgs]
}

func (w dynDecoder[T]) Decode(s Stream, opts *Options, args NoArgs) (any, error) {
	v, err := w.d.Decode(s, opts, args)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (w dynDecoder[T]) Finalize(s Stream, opts *Options, v *any, args NoArgs) error {
	t := (*v).(T)
	if err := w.d.Finalize(s, opts, &t, args); err != nil {
		return err
	}
	*v = t
	return nil
}

// Group returns a decoder for an arbitrary-arity positional sequence of
// erased decoders. The result holds one value per position, in order.
func Group(parts ...Decoder[any, NoArgs]) Decoder[[]any, NoArgs] {
	return groupDecoder{parts: parts}
}

type groupDecoder struct {
	parts []Decoder[any, NoArgs]
}

func (g groupDecoder) Decode(s Stream, opts *Options, _ NoArgs) ([]any, error) {
	out := make([]any, 0, len(g.parts))
	for _, p := range g.parts {
		v, err := p.Decode(s, opts, NoArgs{})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g groupDecoder) Finalize(s Stream, opts *Options, v *[]any, _ NoArgs) error {
	for i, p := range g.parts {
		if err := p.Finalize(s, opts, &(*v)[i], NoArgs{}); err != nil {
			return err
		}
	}
	return nil
}
