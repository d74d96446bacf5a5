package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // primary decode pass
	PhaseFinalize Phase = "finalize" // post-decode follow-up pass
	PhaseBuild    Phase = "build"    // argument builder finalization
)

// Kind categorizes the error.
//
// The engine itself only ever raises KindShortRead and KindIO. The remaining
// kinds exist for decoders layered on top of the engine (generated or
// hand-written) so that every failure in a decode tree shares one error type.
type Kind string

const (
	KindShortRead           Kind = "short_read"
	KindIO                  Kind = "io"
	KindTypeMismatch        Kind = "type_mismatch"
	KindFieldMissing        Kind = "field_missing"
	KindFieldUnknown        Kind = "field_unknown"
	KindNoDefault           Kind = "no_default"
	KindInvalidDiscriminant Kind = "invalid_discriminant"
	KindAssertion           Kind = "assertion"
	KindCustom              Kind = "custom"
)

// Error is the structured error type used throughout the engine
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
	Offset int64 // stream offset at the point of failure; -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the name of the Go type being decoded
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Offset sets the stream offset at the point of failure
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ShortRead creates a not-enough-bytes error. need is the byte count the
// decoder required, got is how many were available before the stream ended.
func ShortRead(phase Phase, typeName string, offset int64, need, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortRead,
		Type:   typeName,
		Offset: offset,
		Detail: fmt.Sprintf("not enough bytes: need %d, got %d", need, got),
	}
}

// IO creates an error wrapping a stream read or seek failure
func IO(phase Phase, offset int64, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Offset: offset,
		Cause:  cause,
	}
}

// FieldMissing creates a missing required field error
func FieldMissing(path []string, fieldName string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindFieldMissing,
		Path:   path,
		Offset: -1,
		Detail: fmt.Sprintf("required field %q not set", fieldName),
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(path []string, fieldName string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindFieldUnknown,
		Path:   path,
		Offset: -1,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// NoDefault creates an error for an unset try-optional field whose type has
// no derivable default value
func NoDefault(path []string, fieldName, typeName string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindNoDefault,
		Path:   path,
		Type:   typeName,
		Offset: -1,
		Detail: fmt.Sprintf("field %q unset and %s has no default", fieldName, typeName),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Offset: -1,
		Detail: fmt.Sprintf("got %s, want %s", got, want),
	}
}

// InvalidDiscriminant creates an invalid discriminant error for decoders that
// dispatch on a tag value read from the stream
func InvalidDiscriminant(path []string, offset int64, disc uint64, typeName string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDiscriminant,
		Path:   path,
		Type:   typeName,
		Offset: offset,
		Detail: fmt.Sprintf("no variant matches discriminant %d", disc),
		Value:  disc,
	}
}

// Assertion creates an assertion failure error for value-level checks
// performed by decoders layered on the engine
func Assertion(path []string, offset int64, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindAssertion,
		Path:   path,
		Offset: offset,
		Detail: detail,
	}
}

// Custom creates a custom error carrying a caller-supplied payload
func Custom(phase Phase, offset int64, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCustom,
		Offset: offset,
		Value:  value,
		Detail: fmt.Sprintf("%v", value),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
