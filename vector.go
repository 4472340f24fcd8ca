package tlswire

import "github.com/pkg/errors"

// PrefixWidth fixes, at the type level, how many bytes a vector's
// length prefix occupies on the wire. TLS defines 1, 2 and 3 byte
// prefixes; any other width is a broken type definition and is
// rejected with ErrPrefixWidth before touching the wire.
type PrefixWidth interface {
	PrefixBytes() int
}

type (
	Prefix8  struct{}
	Prefix16 struct{}
	Prefix24 struct{}
)

func (Prefix8) PrefixBytes() int  { return 1 }
func (Prefix16) PrefixBytes() int { return 2 }
func (Prefix24) PrefixBytes() int { return 3 }

// Vector is a length-prefixed sequence of a codec-capable element
// type. Length is the byte size of the encoded payload, not the
// element count. It is owned by the caller and written out as-is;
// SetData and Append keep it in step with Data for the common case.
//
// TLS additionally declares a floor for many vectors (cipher_suites
// must hold at least one suite, and so on). The codec never enforces
// it; callers that rely on a floor check it with CheckMin.
type Vector[T any, PT valuePtr[T], P PrefixWidth] struct {
	Length uint32
	Data   []T
}

// SetData replaces the payload and recomputes Length from the
// elements' encoded sizes.
func (v *Vector[T, PT, P]) SetData(data []T) {
	v.Data = data
	v.Length = uint32(valuesLen[T, PT](data))
}

// Append adds one element, growing Length by its encoded size.
func (v *Vector[T, PT, P]) Append(elem T) {
	v.Length += uint32(PT(&elem).WireLen())
	v.Data = append(v.Data, elem)
}

// CheckMin reports whether the recorded byte length reaches min.
func (v *Vector[T, PT, P]) CheckMin(min int) error {
	if int(v.Length) < min {
		return errors.Errorf("vector length %d below minimum %d", v.Length, min)
	}
	return nil
}

func (v *Vector[T, PT, P]) prefixBytes() (int, error) {
	var p P
	w := p.PrefixBytes()
	if w < 1 || w > 3 {
		return 0, errors.Wrapf(ErrPrefixWidth, "%d bytes", w)
	}
	return w, nil
}

func (v *Vector[T, PT, P]) WireLen() int {
	var p P
	return p.PrefixBytes() + valuesLen[T, PT](v.Data)
}

func (v *Vector[T, PT, P]) MarshalTo(b *Buffer) (int, error) {
	w, err := v.prefixBytes()
	if err != nil {
		return 0, err
	}
	if max := uint32(1)<<(8*w) - 1; v.Length > max {
		return 0, errors.Wrapf(ErrPrefixOverflow, "%d > %d", v.Length, max)
	}
	switch w {
	case 1:
		b.writeByte(byte(v.Length))
	case 2:
		b.writeUint16(uint16(v.Length))
	case 3:
		b.writeUint24(v.Length)
	}

	n, err := marshalValues[T, PT](b, v.Data)
	return w + n, err
}

// UnmarshalFrom reads the length prefix, bounds a sub-cursor to that
// many bytes, and decodes elements until the sub-cursor is exhausted.
// Decoding by consumed bytes rather than a precomputed count keeps
// variable-width elements (nested vectors, structs of vectors)
// correct.
func (v *Vector[T, PT, P]) UnmarshalFrom(r *Reader) error {
	w, err := v.prefixBytes()
	if err != nil {
		return err
	}
	switch w {
	case 1:
		c, err := r.readByte()
		if err != nil {
			return err
		}
		v.Length = uint32(c)
	case 2:
		x, err := r.readUint16()
		if err != nil {
			return err
		}
		v.Length = uint32(x)
	case 3:
		x, err := r.readUint24()
		if err != nil {
			return err
		}
		v.Length = x
	}

	sub, err := r.sub(int(v.Length))
	if err != nil {
		return err
	}

	v.Data = v.Data[:0]
	for sub.Remaining() > 0 {
		before := sub.Remaining()
		var elem T
		if err := PT(&elem).UnmarshalFrom(sub); err != nil {
			return err
		}
		if sub.Remaining() == before {
			// a zero-width element would loop forever
			return errors.Errorf("vector element consumed no bytes")
		}
		v.Data = append(v.Data, elem)
	}
	return nil
}
