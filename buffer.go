package tlswire

// Buffer is an append-only big-endian byte sink. The zero value is
// ready to use. Growth failure surfaces as a runtime allocation panic,
// the Go equivalent of "cannot allocate"; it is not modeled as an
// error value.
//
// A Buffer must not be shared between concurrent marshal calls; the
// codec performs no internal locking.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer with room for n bytes preallocated.
func NewBuffer(n int) *Buffer {
	return &Buffer{buf: make([]byte, 0, n)}
}

// Bytes returns the accumulated encoding. The slice aliases the
// buffer's storage and is valid until the next write.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Reset truncates the buffer for reuse, keeping its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) writeByte(v byte) {
	b.buf = append(b.buf, v)
}

func (b *Buffer) writeUint16(v uint16) {
	b.buf = append(b.buf, byte(v>>8), byte(v))
}

func (b *Buffer) writeUint24(v uint32) {
	b.buf = append(b.buf, byte(v>>16), byte(v>>8), byte(v))
}

func (b *Buffer) writeUint32(v uint32) {
	b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (b *Buffer) writeBytes(p []byte) {
	b.buf = append(b.buf, p...)
}
