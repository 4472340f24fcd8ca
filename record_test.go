package tlswire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordHeaderEncoding(t *testing.T) {
	h := RecordHeader{
		ContentType: ContentHandshake,
		Version:     TLS10,
		Length:      2,
	}

	assert.Equal(t, RecordHeaderLen, h.WireLen())

	b := NewBuffer(8)
	n, err := h.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, RecordHeaderLen, n)
	assert.Equal(t, []byte{22, 3, 1, 0, 2}, b.Bytes())
}

func TestAlertRecordDecode(t *testing.T) {
	var rec AlertRecord
	r := NewReader([]byte{21, 3, 3, 0, 2, 2, 40})

	assert.NoError(t, rec.UnmarshalFrom(r))
	assert.Equal(t, ContentAlert, rec.Header.ContentType)
	assert.Equal(t, TLS12, rec.Header.Version)
	assert.Equal(t, U16(2), rec.Header.Length)
	assert.Equal(t, AlertFatal, rec.Body.Level)
	assert.Equal(t, AlertHandshakeFailure, rec.Body.Description)
	assert.Equal(t, 0, r.Remaining())
}

func TestRecordSetLength(t *testing.T) {
	rec := NewRecord[Alert](ContentAlert, TLS12, Alert{
		Level:       AlertWarning,
		Description: AlertCloseNotify,
	})
	assert.Equal(t, U16(2), rec.Header.Length)

	b := NewBuffer(8)
	n, err := rec.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, rec.WireLen(), n)
	assert.Equal(t, []byte{21, 3, 3, 0, 2, 1, 0}, b.Bytes())
}

func TestAlertRecordRoundTrip(t *testing.T) {
	rec := NewRecord[Alert](ContentAlert, TLS12, Alert{
		Level:       AlertFatal,
		Description: AlertUnexpectedMessage,
	})

	b := NewBuffer(8)
	if _, err := rec.MarshalTo(b); err != nil {
		t.Fatal(err)
	}

	var got AlertRecord
	if err := got.UnmarshalFrom(NewReader(b.Bytes())); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, rec, got)
}

func TestProtocolVersionRoundTrip(t *testing.T) {
	b := NewBuffer(2)
	if _, err := TLS12.MarshalTo(b); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte{3, 3}, b.Bytes())

	var got ProtocolVersion
	assert.NoError(t, got.UnmarshalFrom(NewReader(b.Bytes())))
	assert.Equal(t, TLS12, got)
}
