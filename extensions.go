package tlswire

// Hello extensions, RFC 5246 §7.4.1.4 and RFC 6066.

// ExtensionType is 16-bit backed, unlike the other enumerations here.
type ExtensionType uint16

const (
	ExtServerName           ExtensionType = 0
	ExtMaxFragmentLength    ExtensionType = 1
	ExtClientCertificateURL ExtensionType = 2
	ExtTrustedCAKeys        ExtensionType = 3
	ExtTruncatedHMAC        ExtensionType = 4
	ExtStatusRequest        ExtensionType = 5
	ExtSignatureAlgorithms  ExtensionType = 13
)

var extensionTypes = enumTable[ExtensionType]{
	name: "ExtensionType",
	variants: []enumVariant[ExtensionType]{
		{"server_name", ExtServerName},
		{"max_fragment_length", ExtMaxFragmentLength},
		{"client_certificate_url", ExtClientCertificateURL},
		{"trusted_ca_keys", ExtTrustedCAKeys},
		{"truncated_hmac", ExtTruncatedHMAC},
		{"status_request", ExtStatusRequest},
		{"signature_algorithms", ExtSignatureAlgorithms},
	},
}

func (ExtensionType) WireLen() int                       { return extensionTypes.width() }
func (v ExtensionType) MarshalTo(b *Buffer) (int, error) { return extensionTypes.marshal(b, v) }
func (v *ExtensionType) UnmarshalFrom(r *Reader) error   { return extensionTypes.unmarshal(r, v) }
func (v ExtensionType) String() string                   { return extensionTypes.format(v) }

func DefaultExtensionType() ExtensionType { return extensionTypes.def() }

func ExtensionTypeFromString(s string) (ExtensionType, error) {
	return extensionTypes.fromString(s)
}

// Extension carries one extension's payload opaquely; the payload's
// own structure is the concern of whoever registered the type.
type Extension struct {
	Type ExtensionType
	Data Vector[U8, *U8, Prefix16]
}

func (e *Extension) fields() []field {
	return []field{
		{"extension_type", &e.Type},
		{"extension_data", &e.Data},
	}
}

func (e *Extension) WireLen() int                     { return fieldsLen(e.fields()) }
func (e *Extension) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, e.fields()) }
func (e *Extension) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, e.fields()) }

// NewExtension encodes body as the payload of an extension of the
// given type.
func NewExtension(typ ExtensionType, body Marshaler) (Extension, error) {
	b := NewBuffer(64)
	if _, err := body.MarshalTo(b); err != nil {
		return Extension{}, err
	}
	raw := b.Bytes()
	data := make([]U8, len(raw))
	for i, c := range raw {
		data[i] = U8(c)
	}
	ext := Extension{Type: typ}
	ext.Data.SetData(data)
	return ext, nil
}

// Server name indication, RFC 6066 §3.

type ServerName struct {
	NameType U8 // 0 = host_name
	HostName Vector[U8, *U8, Prefix16]
}

func (sn *ServerName) fields() []field {
	return []field{
		{"name_type", &sn.NameType},
		{"host_name", &sn.HostName},
	}
}

func (sn *ServerName) WireLen() int                     { return fieldsLen(sn.fields()) }
func (sn *ServerName) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, sn.fields()) }
func (sn *ServerName) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, sn.fields()) }

type ServerNameList struct {
	Names Vector[ServerName, *ServerName, Prefix16]
}

func (l *ServerNameList) fields() []field {
	return []field{{"server_name_list", &l.Names}}
}

func (l *ServerNameList) WireLen() int                     { return fieldsLen(l.fields()) }
func (l *ServerNameList) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, l.fields()) }
func (l *ServerNameList) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, l.fields()) }

// NewServerNameList wraps one DNS host name.
func NewServerNameList(host string) *ServerNameList {
	name := make([]U8, len(host))
	for i := 0; i < len(host); i++ {
		name[i] = U8(host[i])
	}
	sn := ServerName{NameType: 0}
	sn.HostName.SetData(name)

	l := &ServerNameList{}
	l.Names.SetData([]ServerName{sn})
	return l
}

// NewServerNameExtension builds the SNI extension for host.
func NewServerNameExtension(host string) (Extension, error) {
	return NewExtension(ExtServerName, NewServerNameList(host))
}
