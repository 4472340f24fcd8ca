package tlswire

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestEnumRejectsUnknownDiscriminant(t *testing.T) {
	// 23 sits in a gap of the AlertDescription registry
	var desc AlertDescription
	err := desc.UnmarshalFrom(NewReader([]byte{23}))

	var unknown *UnknownDiscriminantError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDiscriminantError, got %v", err)
	}
	assert.Equal(t, "AlertDescription", unknown.Enum)
	assert.Equal(t, uint16(23), unknown.Value)
}

func TestEnumRejectsUnknownHandshakeType(t *testing.T) {
	var ht HandshakeType
	err := ht.UnmarshalFrom(NewReader([]byte{42}))

	var unknown *UnknownDiscriminantError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDiscriminantError, got %v", err)
	}
	assert.Equal(t, "HandshakeType", unknown.Enum)
	assert.Equal(t, uint16(42), unknown.Value)
}

func TestEnumRejectsUnknownContentType(t *testing.T) {
	var ct ContentType
	err := ct.UnmarshalFrom(NewReader([]byte{42}))

	var unknown *UnknownDiscriminantError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDiscriminantError, got %v", err)
	}
	assert.Equal(t, uint16(42), unknown.Value)
}

func TestEnumAcceptsRegisteredValues(t *testing.T) {
	var ct ContentType
	assert.NoError(t, ct.UnmarshalFrom(NewReader([]byte{22})))
	assert.Equal(t, ContentHandshake, ct)

	var desc AlertDescription
	assert.NoError(t, desc.UnmarshalFrom(NewReader([]byte{40})))
	assert.Equal(t, AlertHandshakeFailure, desc)
}

func TestEnumDefaultIsFirstDeclared(t *testing.T) {
	assert.Equal(t, ContentChangeCipherSpec, DefaultContentType())
	assert.Equal(t, HandshakeHelloRequest, DefaultHandshakeType())
	assert.Equal(t, AlertWarning, DefaultAlertLevel())
	assert.Equal(t, AlertCloseNotify, DefaultAlertDescription())
	assert.Equal(t, ExtServerName, DefaultExtensionType())
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "handshake(22)", ContentHandshake.String())
	assert.Equal(t, "close_notify(0)", AlertCloseNotify.String())
	assert.Equal(t, "signature_algorithms(13)", ExtSignatureAlgorithms.String())
	assert.Equal(t, "unknown(99)", ContentType(99).String())
}

func TestEnumFromString(t *testing.T) {
	ct, err := ContentTypeFromString("alert")
	assert.NoError(t, err)
	assert.Equal(t, ContentAlert, ct)

	_, err = ContentTypeFromString("nonsense")
	assert.Error(t, err)

	desc, err := AlertDescriptionFromString("handshake_failure")
	assert.NoError(t, err)
	assert.Equal(t, AlertHandshakeFailure, desc)
}

func TestEnum16BitWidth(t *testing.T) {
	// ExtensionType is uint16-backed and must encode as two bytes
	assert.Equal(t, 2, ExtSignatureAlgorithms.WireLen())

	b := NewBuffer(2)
	n, err := ExtSignatureAlgorithms.MarshalTo(b)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x00, 0x0D}, b.Bytes())

	var typ ExtensionType
	assert.NoError(t, typ.UnmarshalFrom(NewReader([]byte{0x00, 0x05})))
	assert.Equal(t, ExtStatusRequest, typ)

	var unknown *UnknownDiscriminantError
	err = typ.UnmarshalFrom(NewReader([]byte{0x12, 0x34}))
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDiscriminantError, got %v", err)
	}
	assert.Equal(t, uint16(0x1234), unknown.Value)
}

func TestEnumTruncated(t *testing.T) {
	var typ ExtensionType
	err := typ.UnmarshalFrom(NewReader([]byte{0x00}))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
