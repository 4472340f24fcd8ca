package tlswire

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// enumBacking is the set of underlying integer widths observed for TLS
// enumerations: one or two bytes.
type enumBacking interface{ ~uint8 | ~uint16 }

type enumVariant[E enumBacking] struct {
	name  string
	value E
}

// enumTable is the single source of truth for a tagged enumeration:
// an ordered (name, discriminant) list sharing one underlying width.
// Decode validation, defaults, string parsing and rendering are all
// derived from it. Variants appear in declaration order; the first one
// is the enumeration's default.
type enumTable[E enumBacking] struct {
	name     string
	variants []enumVariant[E]
}

// width is the encoded size in bytes, taken from the backing integer.
func (t *enumTable[E]) width() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}

func (t *enumTable[E]) def() E {
	return t.variants[0].value
}

func (t *enumTable[E]) marshal(b *Buffer, v E) (int, error) {
	switch w := t.width(); w {
	case 1:
		b.writeByte(byte(v))
		return w, nil
	default:
		b.writeUint16(uint16(v))
		return w, nil
	}
}

// unmarshal reads one discriminant and maps it through the table. This
// is the only place wire input is validated against a closed set; an
// unregistered value fails with UnknownDiscriminantError.
func (t *enumTable[E]) unmarshal(r *Reader, v *E) error {
	var raw uint16
	switch t.width() {
	case 1:
		c, err := r.readByte()
		if err != nil {
			return err
		}
		raw = uint16(c)
	default:
		x, err := r.readUint16()
		if err != nil {
			return err
		}
		raw = x
	}

	for _, va := range t.variants {
		if va.value == E(raw) {
			*v = va.value
			return nil
		}
	}
	return errors.WithStack(&UnknownDiscriminantError{Enum: t.name, Value: raw})
}

// format renders "name(discriminant)", or "unknown(discriminant)" for
// values outside the table.
func (t *enumTable[E]) format(v E) string {
	for _, va := range t.variants {
		if va.value == v {
			return fmt.Sprintf("%s(%d)", va.name, uint16(v))
		}
	}
	return fmt.Sprintf("unknown(%d)", uint16(v))
}

func (t *enumTable[E]) fromString(s string) (E, error) {
	for _, va := range t.variants {
		if va.name == s {
			return va.value, nil
		}
	}
	var zero E
	return zero, errors.Errorf("no %s variant named %q", t.name, s)
}
