package tlswire

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// pairMsg is the minimal two-field composite: wire order is a then b.
type pairMsg struct {
	A U16
	B U8
}

func (m *pairMsg) fields() []field {
	return []field{
		{"a", &m.A},
		{"b", &m.B},
	}
}

func (m *pairMsg) WireLen() int                     { return fieldsLen(m.fields()) }
func (m *pairMsg) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, m.fields()) }
func (m *pairMsg) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, m.fields()) }

// nestedMsg embeds a composite inside a composite.
type nestedMsg struct {
	Tag   U8
	Inner pairMsg
}

func (m *nestedMsg) fields() []field {
	return []field{
		{"tag", &m.Tag},
		{"inner", &m.Inner},
	}
}

func (m *nestedMsg) WireLen() int                     { return fieldsLen(m.fields()) }
func (m *nestedMsg) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, m.fields()) }
func (m *nestedMsg) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, m.fields()) }

func TestStructFieldOrder(t *testing.T) {
	m := pairMsg{A: 0x00FF, B: 0x20}

	b := NewBuffer(3)
	n, err := m.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x00, 0xFF, 0x20}, b.Bytes())
	assert.Equal(t, 3, m.WireLen())
}

func TestStructRoundTrip(t *testing.T) {
	m := nestedMsg{Tag: 7, Inner: pairMsg{A: 0x1234, B: 0x56}}

	b := NewBuffer(4)
	n, err := m.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, m.WireLen(), n)

	var got nestedMsg
	r := NewReader(b.Bytes())
	assert.NoError(t, got.UnmarshalFrom(r))
	assert.Equal(t, m, got)
	assert.Equal(t, 0, r.Remaining())
}

func TestStructDecodeErrorNamesField(t *testing.T) {
	// enough bytes for a but not for b
	var m pairMsg
	err := m.UnmarshalFrom(NewReader([]byte{0x00, 0xFF}))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if !strings.Contains(err.Error(), "b") {
		t.Fatalf("error does not name the failing field: %v", err)
	}

	// a decoded before the failure; the instance is partial and the
	// caller must discard it
	assert.Equal(t, U16(0x00FF), m.A)
}

func TestStructLengthAgreement(t *testing.T) {
	m := nestedMsg{Tag: 1, Inner: pairMsg{A: 42, B: 43}}

	b := NewBuffer(8)
	written, err := m.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, m.WireLen(), written)
	assert.Equal(t, m.WireLen(), b.Len())

	r := NewReader(b.Bytes())
	var got nestedMsg
	assert.NoError(t, got.UnmarshalFrom(r))
	assert.Equal(t, m.WireLen(), len(b.Bytes())-r.Remaining())
}
