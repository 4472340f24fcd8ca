package tlswire

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// xmitBuf pools marshal buffers for the write path.
var xmitBuf = sync.Pool{
	New: func() interface{} {
		return NewBuffer(RecordHeaderLen + 512)
	},
}

// RecordStream frames records over a reliable byte stream, typically a
// net.Conn. It performs no internal locking: at most one goroutine may
// read and one may write at a time.
type RecordStream struct {
	rw     io.ReadWriter
	maxLen int
	hdr    [RecordHeaderLen]byte
}

func NewRecordStream(rw io.ReadWriter) *RecordStream {
	return &RecordStream{rw: rw, maxLen: RecordMaxLen}
}

// WriteRecord marshals v, usually a Record, and writes it in one call.
func (s *RecordStream) WriteRecord(v Value) error {
	b := xmitBuf.Get().(*Buffer)
	defer func() {
		b.Reset()
		xmitBuf.Put(b)
	}()

	if _, err := v.MarshalTo(b); err != nil {
		return err
	}

	n, err := s.rw.Write(b.Bytes())
	atomic.AddUint64(&DefaultStats.BytesOut, uint64(n))
	if err != nil {
		return errors.Wrap(err, "write record")
	}
	atomic.AddUint64(&DefaultStats.RecordsOut, 1)
	return nil
}

// ReadRecord reads one record off the stream: the 5-byte header, then
// exactly the body it announces. The returned cursor covers the body
// only, so message decodes cannot run into the next record.
func (s *RecordStream) ReadRecord() (RecordHeader, *Reader, error) {
	var hdr RecordHeader

	if _, err := io.ReadFull(s.rw, s.hdr[:]); err != nil {
		atomic.AddUint64(&DefaultStats.ReadErrs, 1)
		return hdr, nil, errors.Wrap(err, "read record header")
	}
	atomic.AddUint64(&DefaultStats.BytesIn, RecordHeaderLen)

	if err := hdr.UnmarshalFrom(NewReader(s.hdr[:])); err != nil {
		atomic.AddUint64(&DefaultStats.HeaderErrs, 1)
		return hdr, nil, err
	}
	if int(hdr.Length) > s.maxLen {
		atomic.AddUint64(&DefaultStats.Oversized, 1)
		return hdr, nil, errors.WithStack(ErrRecordTooLarge)
	}

	body := make([]byte, int(hdr.Length))
	n, err := io.ReadFull(s.rw, body)
	atomic.AddUint64(&DefaultStats.BytesIn, uint64(n))
	if err != nil {
		atomic.AddUint64(&DefaultStats.ReadErrs, 1)
		return hdr, nil, errors.Wrap(err, "read record body")
	}

	atomic.AddUint64(&DefaultStats.RecordsIn, 1)
	return hdr, NewReader(body), nil
}
