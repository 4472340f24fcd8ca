package tlswire

// Optional wraps zero-or-one instance of a wire type. Absence costs
// zero bytes; the wire carries no presence flag, so whether bytes
// belong to an optional field is decided entirely by the surrounding
// protocol framing (for ClientHello extensions: "present iff bytes
// remain in the handshake body").
//
// Decode is deliberately asymmetric: when the destination is absent it
// is a no-op, whatever the cursor still holds. An optional can only be
// populated from the wire if the caller first initialized it to a
// present inner value. Callers that want "decode the rest as
// extensions" must check Remaining themselves and Init before
// decoding.
type Optional[T any, PT valuePtr[T]] struct {
	present bool
	value   T
}

// Some returns a present optional holding v.
func Some[T any, PT valuePtr[T]](v T) Optional[T, PT] {
	return Optional[T, PT]{present: true, value: v}
}

// Present reports whether a value is held.
func (o *Optional[T, PT]) Present() bool { return o.present }

// Get returns the inner value, or nil when absent.
func (o *Optional[T, PT]) Get() *T {
	if !o.present {
		return nil
	}
	return &o.value
}

// Init marks the optional present and returns the inner value,
// zero-valued if it was absent.
func (o *Optional[T, PT]) Init() *T {
	o.present = true
	return &o.value
}

// Set replaces the inner value and marks the optional present.
func (o *Optional[T, PT]) Set(v T) {
	o.present = true
	o.value = v
}

// Clear drops the inner value.
func (o *Optional[T, PT]) Clear() {
	var zero T
	o.present = false
	o.value = zero
}

func (o *Optional[T, PT]) WireLen() int {
	if !o.present {
		return 0
	}
	return PT(&o.value).WireLen()
}

func (o *Optional[T, PT]) MarshalTo(b *Buffer) (int, error) {
	if !o.present {
		return 0, nil
	}
	return PT(&o.value).MarshalTo(b)
}

func (o *Optional[T, PT]) UnmarshalFrom(r *Reader) error {
	if !o.present {
		return nil
	}
	return PT(&o.value).UnmarshalFrom(r)
}
