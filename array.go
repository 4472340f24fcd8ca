package tlswire

// Fixed-size sequences. The element count is part of the type, never
// stored on the wire: N elements encode as N back-to-back encodings.

// opaqueValue adapts a fixed byte run (protocol versions, session IDs,
// random pools) to the codec contract. Decode fills the run in place
// and fails with ErrTruncated if the cursor cannot cover it.
type opaqueValue struct {
	p []byte
}

func opaque(p []byte) opaqueValue { return opaqueValue{p} }

func (o opaqueValue) WireLen() int { return len(o.p) }

func (o opaqueValue) MarshalTo(b *Buffer) (int, error) {
	b.writeBytes(o.p)
	return len(o.p), nil
}

func (o opaqueValue) UnmarshalFrom(r *Reader) error {
	q, err := r.readN(len(o.p))
	if err != nil {
		return err
	}
	copy(o.p, q)
	return nil
}

// valuesLen, marshalValues and unmarshalValues handle homogeneous runs
// of any codec-capable element type. Fixed arrays use them over the
// full array; vectors use them over their decoded payload.

func valuesLen[T any, PT valuePtr[T]](elems []T) int {
	n := 0
	for i := range elems {
		n += PT(&elems[i]).WireLen()
	}
	return n
}

func marshalValues[T any, PT valuePtr[T]](b *Buffer, elems []T) (int, error) {
	n := 0
	for i := range elems {
		w, err := PT(&elems[i]).MarshalTo(b)
		if err != nil {
			return n, err
		}
		n += w
	}
	return n, nil
}

func unmarshalValues[T any, PT valuePtr[T]](r *Reader, elems []T) error {
	for i := range elems {
		if err := PT(&elems[i]).UnmarshalFrom(r); err != nil {
			return err
		}
	}
	return nil
}
