package tlswire

import "time"

// ClientHello, RFC 5246 appendix A.4.1.

// Random is the 32-byte client/server random: a 4-byte unix timestamp
// and 28 bytes from the entropy source.
type Random struct {
	GMTUnixTime U32
	Bytes       [28]byte
}

// NewRandom returns a fresh random for the current time.
func NewRandom() Random {
	rnd := Random{GMTUnixTime: U32(time.Now().Unix())}
	fillRand(rnd.Bytes[:])
	return rnd
}

// FixedRandom returns the all-0xFF random used in tests and captured
// traces.
func FixedRandom() Random {
	rnd := Random{}
	for i := range rnd.Bytes {
		rnd.Bytes[i] = 0xFF
	}
	return rnd
}

func (rnd *Random) fields() []field {
	return []field{
		{"gmt_unix_time", &rnd.GMTUnixTime},
		{"random_bytes", opaque(rnd.Bytes[:])},
	}
}

func (rnd *Random) WireLen() int                     { return fieldsLen(rnd.fields()) }
func (rnd *Random) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, rnd.fields()) }
func (rnd *Random) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, rnd.fields()) }

// SessionID is a fixed 32-byte field in this catalog; the variable
// form TLS allows is not carried by the messages modeled here.
type SessionID [32]byte

// ExtensionList is the extension block of a hello message.
type ExtensionList = Vector[Extension, *Extension, Prefix16]

type ClientHello struct {
	ClientVersion      ProtocolVersion
	Random             Random
	SessionID          SessionID
	CipherSuites       Vector[CipherSuite, *CipherSuite, Prefix16]
	CompressionMethods Vector[U8, *U8, Prefix8]
	Extensions         Optional[ExtensionList, *ExtensionList]
}

// NewClientHello offers the given suites with a fresh random and
// session id, null compression only, and no extensions.
func NewClientHello(suites ...CipherSuite) *ClientHello {
	ch := &ClientHello{
		ClientVersion: TLS12,
		Random:        NewRandom(),
	}
	fillRand(ch.SessionID[:])
	ch.CipherSuites.SetData(suites)
	ch.CompressionMethods.SetData([]U8{0})
	return ch
}

// AddExtension appends ext, materializing the extension block on first
// use and keeping its byte length current.
func (ch *ClientHello) AddExtension(ext Extension) {
	ch.Extensions.Init().Append(ext)
}

func (ch *ClientHello) fields() []field {
	return []field{
		{"client_version", &ch.ClientVersion},
		{"random", &ch.Random},
		{"session_id", opaque(ch.SessionID[:])},
		{"cipher_suites", &ch.CipherSuites},
		{"compression_methods", &ch.CompressionMethods},
		{"extensions", &ch.Extensions},
	}
}

func (ch *ClientHello) WireLen() int                     { return fieldsLen(ch.fields()) }
func (ch *ClientHello) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, ch.fields()) }
func (ch *ClientHello) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, ch.fields()) }
