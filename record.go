package tlswire

// Record layer, RFC 5246 appendix A.1.

// ContentType discriminates what a record carries.
type ContentType uint8

const (
	ContentChangeCipherSpec ContentType = 20
	ContentAlert            ContentType = 21
	ContentHandshake        ContentType = 22
	ContentApplicationData  ContentType = 23
)

var contentTypes = enumTable[ContentType]{
	name: "ContentType",
	variants: []enumVariant[ContentType]{
		{"change_cipher_spec", ContentChangeCipherSpec},
		{"alert", ContentAlert},
		{"handshake", ContentHandshake},
		{"application_data", ContentApplicationData},
	},
}

func (ContentType) WireLen() int                      { return contentTypes.width() }
func (v ContentType) MarshalTo(b *Buffer) (int, error) { return contentTypes.marshal(b, v) }
func (v *ContentType) UnmarshalFrom(r *Reader) error   { return contentTypes.unmarshal(r, v) }
func (v ContentType) String() string                   { return contentTypes.format(v) }

func DefaultContentType() ContentType { return contentTypes.def() }

func ContentTypeFromString(s string) (ContentType, error) { return contentTypes.fromString(s) }

// ProtocolVersion is the two-byte {major, minor} version pair.
type ProtocolVersion [2]byte

var (
	TLS10 = ProtocolVersion{3, 1}
	TLS11 = ProtocolVersion{3, 2}
	TLS12 = ProtocolVersion{3, 3}
)

func (ProtocolVersion) WireLen() int { return 2 }

func (v ProtocolVersion) MarshalTo(b *Buffer) (int, error) {
	return opaque(v[:]).MarshalTo(b)
}

func (v *ProtocolVersion) UnmarshalFrom(r *Reader) error {
	return opaque(v[:]).UnmarshalFrom(r)
}

// RecordHeader is the 5-byte header in front of every record. Length
// counts the body bytes that follow the header.
type RecordHeader struct {
	ContentType ContentType
	Version     ProtocolVersion
	Length      U16
}

func (h *RecordHeader) fields() []field {
	return []field{
		{"content_type", &h.ContentType},
		{"version", &h.Version},
		{"length", &h.Length},
	}
}

func (h *RecordHeader) WireLen() int                      { return fieldsLen(h.fields()) }
func (h *RecordHeader) MarshalTo(b *Buffer) (int, error)  { return marshalFields(b, h.fields()) }
func (h *RecordHeader) UnmarshalFrom(r *Reader) error     { return unmarshalFields(r, h.fields()) }

// RecordHeaderLen is the encoded size of a RecordHeader.
const RecordHeaderLen = 5

// RecordMaxLen caps the body of one record (RFC 5246 §6.2.1).
const RecordMaxLen = 1 << 14

// Record is the unit exchanged between peers: a header and a body of
// any wire type.
type Record[T any, PT valuePtr[T]] struct {
	Header RecordHeader
	Body   T
}

// NewRecord builds a record around body with its header length filled
// in.
func NewRecord[T any, PT valuePtr[T]](ct ContentType, ver ProtocolVersion, body T) Record[T, PT] {
	rec := Record[T, PT]{
		Header: RecordHeader{ContentType: ct, Version: ver},
		Body:   body,
	}
	rec.SetLength()
	return rec
}

// SetLength refreshes the header length from the current body. Call it
// after mutating the body and before marshaling.
func (rec *Record[T, PT]) SetLength() {
	rec.Header.Length = U16(PT(&rec.Body).WireLen())
}

func (rec *Record[T, PT]) fields() []field {
	return []field{
		{"header", &rec.Header},
		{"body", PT(&rec.Body)},
	}
}

func (rec *Record[T, PT]) WireLen() int                     { return fieldsLen(rec.fields()) }
func (rec *Record[T, PT]) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, rec.fields()) }
func (rec *Record[T, PT]) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, rec.fields()) }
