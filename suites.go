package tlswire

// CipherSuite is the two-byte suite selector. Suites pass through the
// codec untouched; nothing here negotiates or implements them.
type CipherSuite [2]byte

func (CipherSuite) WireLen() int { return 2 }

func (v CipherSuite) MarshalTo(b *Buffer) (int, error) {
	return opaque(v[:]).MarshalTo(b)
}

func (v *CipherSuite) UnmarshalFrom(r *Reader) error {
	return opaque(v[:]).UnmarshalFrom(r)
}

// Suite values a probe commonly offers. Naming follows the IANA
// registry so crypto/tls users feel at home.
var (
	TLS_RSA_WITH_3DES_EDE_CBC_SHA                 = CipherSuite{0x00, 0x0a}
	TLS_RSA_WITH_AES_128_CBC_SHA                  = CipherSuite{0x00, 0x2f}
	TLS_RSA_WITH_AES_256_CBC_SHA                  = CipherSuite{0x00, 0x35}
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA              = CipherSuite{0x00, 0x39}
	TLS_RSA_WITH_AES_128_GCM_SHA256               = CipherSuite{0x00, 0x9c}
	TLS_RSA_WITH_AES_256_GCM_SHA384               = CipherSuite{0x00, 0x9d}
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA          = CipherSuite{0xc0, 0x09}
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA          = CipherSuite{0xc0, 0x0a}
	TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA           = CipherSuite{0xc0, 0x12}
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA            = CipherSuite{0xc0, 0x13}
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA            = CipherSuite{0xc0, 0x14}
	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256       = CipherSuite{0xc0, 0x2b}
	TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384       = CipherSuite{0xc0, 0x2c}
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256         = CipherSuite{0xc0, 0x2f}
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384         = CipherSuite{0xc0, 0x30}
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256   = CipherSuite{0xcc, 0xa8}
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256 = CipherSuite{0xcc, 0xa9}
)

// cipherSuiteNames backs CipherSuiteByName for config files and CLI
// flags.
var cipherSuiteNames = map[string]CipherSuite{
	"TLS_RSA_WITH_3DES_EDE_CBC_SHA":                 TLS_RSA_WITH_3DES_EDE_CBC_SHA,
	"TLS_RSA_WITH_AES_128_CBC_SHA":                  TLS_RSA_WITH_AES_128_CBC_SHA,
	"TLS_RSA_WITH_AES_256_CBC_SHA":                  TLS_RSA_WITH_AES_256_CBC_SHA,
	"TLS_DHE_RSA_WITH_AES_256_CBC_SHA":              TLS_DHE_RSA_WITH_AES_256_CBC_SHA,
	"TLS_RSA_WITH_AES_128_GCM_SHA256":               TLS_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_RSA_WITH_AES_256_GCM_SHA384":               TLS_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA":          TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA,
	"TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA":          TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA,
	"TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA":           TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA,
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA":            TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA,
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA":            TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA,
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256":       TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384":       TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256":         TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384":         TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256":   TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256": TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
}

// CipherSuiteByName resolves an IANA suite name.
func CipherSuiteByName(name string) (CipherSuite, bool) {
	cs, ok := cipherSuiteNames[name]
	return cs, ok
}
