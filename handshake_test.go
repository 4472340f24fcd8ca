package tlswire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientHelloHandshake(t *testing.T) {
	h := NewClientHelloHandshake(TLS_DHE_RSA_WITH_AES_256_CBC_SHA)

	assert.Equal(t, HandshakeClientHello, h.MsgType)
	assert.Equal(t, U24(72), h.Length)
	assert.Equal(t, 1+3+72, h.WireLen())
}

func TestClientHelloRecordEncoding(t *testing.T) {
	type helloHandshake = Handshake[ClientHello, *ClientHello]

	h := NewClientHelloHandshake(TLS_DHE_RSA_WITH_AES_256_CBC_SHA)
	rec := NewRecord[helloHandshake](ContentHandshake, TLS10, h)

	b := NewBuffer(128)
	n, err := rec.MarshalTo(b)
	require.NoError(t, err)
	require.Equal(t, rec.WireLen(), n)

	wire := b.Bytes()
	// record header: handshake, {3,1}, 76 body bytes
	assert.Equal(t, []byte{22, 3, 1, 0, 76}, wire[:5])
	// handshake header: client_hello, u24 length 72
	assert.Equal(t, []byte{1, 0, 0, 72}, wire[5:9])
	// hello starts with the offered version
	assert.Equal(t, []byte{3, 3}, wire[9:11])
	assert.Len(t, wire, 81)
}

func TestHandshakeSetLengthTracksBody(t *testing.T) {
	h := NewClientHelloHandshake(TLS_RSA_WITH_AES_128_CBC_SHA)

	ext, err := NewServerNameExtension("example.net")
	require.NoError(t, err)
	h.Body.AddExtension(ext)
	h.SetLength()

	assert.Equal(t, U24(h.Body.WireLen()), h.Length)
}

func TestHandshakeRoundTrip(t *testing.T) {
	h := NewClientHelloHandshake(
		TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	)

	b := NewBuffer(128)
	if _, err := h.MarshalTo(b); err != nil {
		t.Fatal(err)
	}

	var got Handshake[ClientHello, *ClientHello]
	r := NewReader(b.Bytes())
	require.NoError(t, got.UnmarshalFrom(r))

	assert.Equal(t, HandshakeClientHello, got.MsgType)
	assert.Equal(t, h.Length, got.Length)
	assert.Equal(t, h.Body.CipherSuites.Data, got.Body.CipherSuites.Data)
	assert.Equal(t, 0, r.Remaining())
}
