package tlswire

// Handshake envelope, RFC 5246 appendix A.4.

type HandshakeType uint8

const (
	HandshakeHelloRequest       HandshakeType = 0
	HandshakeClientHello        HandshakeType = 1
	HandshakeServerHello        HandshakeType = 2
	HandshakeCertificate        HandshakeType = 11
	HandshakeServerKeyExchange  HandshakeType = 12
	HandshakeCertificateRequest HandshakeType = 13
	HandshakeServerHelloDone    HandshakeType = 14
	HandshakeCertificateVerify  HandshakeType = 15
	HandshakeClientKeyExchange  HandshakeType = 16
	HandshakeFinished           HandshakeType = 20
	HandshakeCertificateURL     HandshakeType = 21
	HandshakeCertificateStatus  HandshakeType = 22
)

var handshakeTypes = enumTable[HandshakeType]{
	name: "HandshakeType",
	variants: []enumVariant[HandshakeType]{
		{"hello_request", HandshakeHelloRequest},
		{"client_hello", HandshakeClientHello},
		{"server_hello", HandshakeServerHello},
		{"certificate", HandshakeCertificate},
		{"server_key_exchange", HandshakeServerKeyExchange},
		{"certificate_request", HandshakeCertificateRequest},
		{"server_hello_done", HandshakeServerHelloDone},
		{"certificate_verify", HandshakeCertificateVerify},
		{"client_key_exchange", HandshakeClientKeyExchange},
		{"finished", HandshakeFinished},
		{"certificate_url", HandshakeCertificateURL},
		{"certificate_status", HandshakeCertificateStatus},
	},
}

func (HandshakeType) WireLen() int                       { return handshakeTypes.width() }
func (v HandshakeType) MarshalTo(b *Buffer) (int, error) { return handshakeTypes.marshal(b, v) }
func (v *HandshakeType) UnmarshalFrom(r *Reader) error   { return handshakeTypes.unmarshal(r, v) }
func (v HandshakeType) String() string                   { return handshakeTypes.format(v) }

func DefaultHandshakeType() HandshakeType { return handshakeTypes.def() }

func HandshakeTypeFromString(s string) (HandshakeType, error) {
	return handshakeTypes.fromString(s)
}

// Handshake wraps one handshake message body. Length is a 24-bit byte
// count of the body.
type Handshake[T any, PT valuePtr[T]] struct {
	MsgType HandshakeType
	Length  U24
	Body    T
}

// SetLength refreshes Length from the current body.
func (h *Handshake[T, PT]) SetLength() {
	h.Length = U24(PT(&h.Body).WireLen())
}

func (h *Handshake[T, PT]) fields() []field {
	return []field{
		{"msg_type", &h.MsgType},
		{"length", &h.Length},
		{"body", PT(&h.Body)},
	}
}

func (h *Handshake[T, PT]) WireLen() int                     { return fieldsLen(h.fields()) }
func (h *Handshake[T, PT]) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, h.fields()) }
func (h *Handshake[T, PT]) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, h.fields()) }

// NewClientHelloHandshake wraps a fresh ClientHello offering the given
// suites.
func NewClientHelloHandshake(suites ...CipherSuite) Handshake[ClientHello, *ClientHello] {
	h := Handshake[ClientHello, *ClientHello]{
		MsgType: HandshakeClientHello,
		Body:    *NewClientHello(suites...),
	}
	h.SetLength()
	return h
}
