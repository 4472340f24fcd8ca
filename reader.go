package tlswire

import "github.com/pkg/errors"

// Reader is a forward-only cursor over a byte sequence. Every read
// either consumes exactly the requested bytes or fails with
// ErrTruncated without advancing.
//
// Like Buffer, a Reader assumes a single caller for the duration of a
// decode; it performs no internal locking.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a cursor positioned at the start of p. The reader
// aliases p and never copies it.
func NewReader(p []byte) *Reader {
	return &Reader{buf: p}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// readN consumes exactly n bytes and returns them as a subslice of the
// underlying storage.
func (r *Reader) readN(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errors.WithStack(ErrTruncated)
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p, nil
}

func (r *Reader) readByte() (byte, error) {
	p, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (r *Reader) readUint16() (uint16, error) {
	p, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return uint16(p[0])<<8 | uint16(p[1]), nil
}

func (r *Reader) readUint24() (uint32, error) {
	p, err := r.readN(3)
	if err != nil {
		return 0, err
	}
	return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2]), nil
}

func (r *Reader) readUint32() (uint32, error) {
	p, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3]), nil
}

// sub consumes n bytes and returns a fresh cursor bounded to them.
// Container decodes use it to stop elements from reading past their
// enclosing length prefix.
func (r *Reader) sub(n int) (*Reader, error) {
	p, err := r.readN(n)
	if err != nil {
		return nil, err
	}
	return NewReader(p), nil
}
