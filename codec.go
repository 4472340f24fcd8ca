// Package tlswire implements the byte layout of TLS records, handshake
// messages, alerts and extensions: a length-prefixed, tag-discriminated
// big-endian binary codec. It encodes and decodes the wire format only;
// key schedule, record encryption and the handshake state machine are a
// caller's concern.
package tlswire

// The codec is split into three independent capabilities so that
// container types can require only the subset they need.

type (
	// Lengther reports the exact number of bytes a value occupies on
	// the wire. It must agree with MarshalTo and UnmarshalFrom.
	Lengther interface {
		WireLen() int
	}

	// Marshaler appends a value's wire encoding to a buffer and
	// returns the number of bytes written.
	Marshaler interface {
		MarshalTo(b *Buffer) (int, error)
	}

	// Unmarshaler reads a value's wire encoding from a cursor,
	// consuming exactly the bytes its layout dictates.
	Unmarshaler interface {
		UnmarshalFrom(r *Reader) error
	}

	// Value is the full codec contract. Every wire type in this
	// package implements it on its pointer form, which lets composite
	// structures hand out their fields for generic aggregation.
	Value interface {
		Lengther
		Marshaler
		Unmarshaler
	}
)

// valuePtr constrains a type parameter to the pointer form of its
// element type, so containers can decode into elements in place.
type valuePtr[T any] interface {
	*T
	Value
}
