package tlswire

// Alert messages, RFC 5246 §7.2.

type AlertLevel uint8

const (
	AlertWarning AlertLevel = 1
	AlertFatal   AlertLevel = 2
)

var alertLevels = enumTable[AlertLevel]{
	name: "AlertLevel",
	variants: []enumVariant[AlertLevel]{
		{"warning", AlertWarning},
		{"fatal", AlertFatal},
	},
}

func (AlertLevel) WireLen() int                       { return alertLevels.width() }
func (v AlertLevel) MarshalTo(b *Buffer) (int, error) { return alertLevels.marshal(b, v) }
func (v *AlertLevel) UnmarshalFrom(r *Reader) error   { return alertLevels.unmarshal(r, v) }
func (v AlertLevel) String() string                   { return alertLevels.format(v) }

func DefaultAlertLevel() AlertLevel { return alertLevels.def() }

func AlertLevelFromString(s string) (AlertLevel, error) { return alertLevels.fromString(s) }

type AlertDescription uint8

const (
	AlertCloseNotify            AlertDescription = 0
	AlertUnexpectedMessage      AlertDescription = 10
	AlertBadRecordMAC           AlertDescription = 20
	AlertDecryptionFailed       AlertDescription = 21
	AlertRecordOverflow         AlertDescription = 22
	AlertDecompressionFailure   AlertDescription = 30
	AlertHandshakeFailure       AlertDescription = 40
	AlertNoCertificate          AlertDescription = 41
	AlertBadCertificate         AlertDescription = 42
	AlertUnsupportedCertificate AlertDescription = 43
	AlertCertificateRevoked     AlertDescription = 44
	AlertCertificateExpired     AlertDescription = 45
	AlertCertificateUnknown     AlertDescription = 46
	AlertIllegalParameter       AlertDescription = 47
	AlertUnknownCA              AlertDescription = 48
	AlertAccessDenied           AlertDescription = 49
	AlertDecodeError            AlertDescription = 50
	AlertDecryptError           AlertDescription = 51
	AlertExportRestriction      AlertDescription = 60
	AlertProtocolVersion        AlertDescription = 70
	AlertInsufficientSecurity   AlertDescription = 71
	AlertInternalError          AlertDescription = 80
	AlertUserCanceled           AlertDescription = 90
	AlertNoRenegotiation        AlertDescription = 100
	AlertUnsupportedExtension   AlertDescription = 110
)

var alertDescriptions = enumTable[AlertDescription]{
	name: "AlertDescription",
	variants: []enumVariant[AlertDescription]{
		{"close_notify", AlertCloseNotify},
		{"unexpected_message", AlertUnexpectedMessage},
		{"bad_record_mac", AlertBadRecordMAC},
		{"decryption_failed_RESERVED", AlertDecryptionFailed},
		{"record_overflow", AlertRecordOverflow},
		{"decompression_failure", AlertDecompressionFailure},
		{"handshake_failure", AlertHandshakeFailure},
		{"no_certificate_RESERVED", AlertNoCertificate},
		{"bad_certificate", AlertBadCertificate},
		{"unsupported_certificate", AlertUnsupportedCertificate},
		{"certificate_revoked", AlertCertificateRevoked},
		{"certificate_expired", AlertCertificateExpired},
		{"certificate_unknown", AlertCertificateUnknown},
		{"illegal_parameter", AlertIllegalParameter},
		{"unknown_ca", AlertUnknownCA},
		{"access_denied", AlertAccessDenied},
		{"decode_error", AlertDecodeError},
		{"decrypt_error", AlertDecryptError},
		{"export_restriction_RESERVED", AlertExportRestriction},
		{"protocol_version", AlertProtocolVersion},
		{"insufficient_security", AlertInsufficientSecurity},
		{"internal_error", AlertInternalError},
		{"user_canceled", AlertUserCanceled},
		{"no_renegotiation", AlertNoRenegotiation},
		{"unsupported_extension", AlertUnsupportedExtension},
	},
}

func (AlertDescription) WireLen() int                       { return alertDescriptions.width() }
func (v AlertDescription) MarshalTo(b *Buffer) (int, error) { return alertDescriptions.marshal(b, v) }
func (v *AlertDescription) UnmarshalFrom(r *Reader) error   { return alertDescriptions.unmarshal(r, v) }
func (v AlertDescription) String() string                   { return alertDescriptions.format(v) }

func DefaultAlertDescription() AlertDescription { return alertDescriptions.def() }

func AlertDescriptionFromString(s string) (AlertDescription, error) {
	return alertDescriptions.fromString(s)
}

type Alert struct {
	Level       AlertLevel
	Description AlertDescription
}

func (a *Alert) fields() []field {
	return []field{
		{"level", &a.Level},
		{"description", &a.Description},
	}
}

func (a *Alert) WireLen() int                     { return fieldsLen(a.fields()) }
func (a *Alert) MarshalTo(b *Buffer) (int, error) { return marshalFields(b, a.fields()) }
func (a *Alert) UnmarshalFrom(r *Reader) error    { return unmarshalFields(r, a.fields()) }

// AlertRecord is an alert in its record envelope.
type AlertRecord = Record[Alert, *Alert]
