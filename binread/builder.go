package binread

import (
	"reflect"
	"strings"

	"github.com/Holzhaus/binrw/errors"
)

// Builder assembles a struct-shaped argument value field by field, decoupling
// argument construction from the aggregate's field order. Fields are
// addressed by the name in their `args` struct tag (or the lowercased Go name
// when untagged) and carry a per-field policy: required by default, or
// try-optional when the tag includes "optional".
//
//	args, err := binread.NewBuilder[binread.SliceArgs[binread.NoArgs]]().
//	    Set("count", 3).
//	    Build()
//
// Build fails if a required field was never set, and fills unset try-optional
// fields from the field type's Default method, failing when no such method
// exists. The zero value is never used as an implicit default.
type Builder[A any] struct {
	set map[string]any
}

// NewBuilder returns an empty builder for the argument type A, which must be
// a struct type.
func NewBuilder[A any]() *Builder[A] {
	return &Builder[A]{set: make(map[string]any)}
}

// Set records a value for the named field. Validation is deferred to Build,
// so calls chain freely in any order.
func (b *Builder[A]) Set(name string, value any) *Builder[A] {
	b.set[name] = value
	return b
}

// Build validates the accumulated fields and returns the populated argument
// value.
func (b *Builder[A]) Build() (A, error) {
	var zero A
	out := zero
	rv := reflect.ValueOf(&out).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		return zero, errors.TypeMismatch(errors.PhaseBuild, nil, rt.String(), "struct")
	}

	seen := make(map[string]bool, len(b.set))
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, optional := fieldSpec(f)

		if v, ok := b.set[name]; ok {
			seen[name] = true
			if v == nil {
				return zero, errors.TypeMismatch(errors.PhaseBuild, []string{name}, "nil", f.Type.String())
			}
			val := reflect.ValueOf(v)
			if !val.Type().AssignableTo(f.Type) {
				return zero, errors.TypeMismatch(errors.PhaseBuild, []string{name}, val.Type().String(), f.Type.String())
			}
			rv.Field(i).Set(val)
			continue
		}

		if !optional {
			return zero, errors.FieldMissing(nil, name)
		}
		def, ok := defaultFor(f.Type)
		if !ok {
			return zero, errors.NoDefault(nil, name, f.Type.String())
		}
		rv.Field(i).Set(def)
	}

	for name := range b.set {
		if !seen[name] {
			return zero, errors.FieldUnknown(nil, name)
		}
	}
	return out, nil
}

// fieldSpec reads the builder name and policy from a struct field's tag.
func fieldSpec(f reflect.StructField) (name string, optional bool) {
	tag := f.Tag.Get("args")
	if tag != "" {
		parts := strings.Split(tag, ",")
		name = parts[0]
		for _, p := range parts[1:] {
			if p == "optional" {
				optional = true
			}
		}
	}
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	return name, optional
}

// defaultFor derives a default value for a field type from its Default
// method, when the method has the shape func (T) Default() T.
func defaultFor(t reflect.Type) (reflect.Value, bool) {
	m, ok := t.MethodByName("Default")
	if !ok {
		return reflect.Value{}, false
	}
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != t {
		return reflect.Value{}, false
	}
	return reflect.Zero(t).Method(m.Index).Call(nil)[0], true
}
