package binread

import "encoding/binary"

// Endian selects the byte order used to interpret multi-byte values.
type Endian uint8

const (
	// Native is the byte order of the host. It is resolved to a concrete
	// order exactly once, immediately before raw bytes are interpreted,
	// and never stored resolved.
	Native Endian = iota
	// Little is least-significant byte first.
	Little
	// Big is most-significant byte first.
	Big
)

var endianNames = [...]string{
	Native: "native",
	Little: "little",
	Big:    "big",
}

func (e Endian) String() string {
	if int(e) < len(endianNames) {
		return endianNames[e]
	}
	return "unknown"
}

// ByteOrder resolves the endian to a concrete byte order. Native resolves to
// the host's order at the moment of the call.
func (e Endian) ByteOrder() binary.ByteOrder {
	switch e {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// Options carries cross-cutting decode configuration. An Options value is an
// immutable snapshot: it is created once per top-level decode call and
// threaded unchanged through the entire recursive decode. A decoder that
// needs a different byte order for a sub-value derives a new Options with
// WithEndian for that sub-call.
//
// The zero value is valid and selects native byte order.
type Options struct {
	endian Endian
}

// NewOptions returns an Options snapshot with the given byte order.
func NewOptions(e Endian) *Options {
	return &Options{endian: e}
}

// Endian reports the configured byte order.
func (o *Options) Endian() Endian {
	return o.endian
}

// ByteOrder resolves the configured byte order against the host.
func (o *Options) ByteOrder() binary.ByteOrder {
	return o.endian.ByteOrder()
}

// WithEndian returns a copy of the options with the byte order replaced. The
// receiver is not modified.
func (o *Options) WithEndian(e Endian) *Options {
	c := *o
	c.endian = e
	return &c
}
