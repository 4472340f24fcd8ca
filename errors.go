package tlswire

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTruncated is returned when a cursor runs out of bytes before
	// the required count was available. Callers may treat it as
	// recoverable, typically by waiting for more bytes or dropping the
	// message.
	ErrTruncated = errors.New("truncated input")

	// ErrPrefixWidth is returned when a vector is configured with a
	// length prefix outside 1..3 bytes. This cannot arise from wire
	// input, only from a bad type definition.
	ErrPrefixWidth = errors.New("invalid length prefix width")

	// ErrPrefixOverflow is returned when a vector's byte length does
	// not fit its length prefix.
	ErrPrefixOverflow = errors.New("length overflows prefix")

	// ErrRecordTooLarge is returned by the transport when a record
	// header announces a body beyond the protocol ceiling.
	ErrRecordTooLarge = errors.New("record exceeds maximum length")
)

// UnknownDiscriminantError reports a tagged enumeration decoded from an
// integer with no matching variant. It is always surfaced, never
// silently defaulted; masking it would hide protocol violations.
type UnknownDiscriminantError struct {
	Enum  string
	Value uint16
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unknown %s discriminant %d", e.Enum, e.Value)
}
