package tlswire

import "github.com/pkg/errors"

// Composite aggregation. A struct-shaped wire type exposes its fields
// as an ordered descriptor list and delegates length, encode and
// decode to the three functions below. Field order in the list is wire
// order; no per-structure codec logic exists anywhere in the catalog.
//
// On failure the buffer or instance may be partially populated and
// must be discarded by the caller; there is no rollback.

// field pairs one wire-order field with its name, kept only for error
// context.
type field struct {
	name string
	v    Value
}

func fieldsLen(fs []field) int {
	n := 0
	for _, f := range fs {
		n += f.v.WireLen()
	}
	return n
}

func marshalFields(b *Buffer, fs []field) (int, error) {
	n := 0
	for _, f := range fs {
		w, err := f.v.MarshalTo(b)
		if err != nil {
			return n, errors.Wrap(err, f.name)
		}
		n += w
	}
	return n, nil
}

func unmarshalFields(r *Reader, fs []field) error {
	for _, f := range fs {
		if err := f.v.UnmarshalFrom(r); err != nil {
			return errors.Wrap(err, f.name)
		}
	}
	return nil
}
