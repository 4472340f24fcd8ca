package tlswire

// Fixed-width unsigned scalars, encoded big-endian with no padding.
// U24 covers the 3-byte integers TLS uses for handshake lengths; its
// top byte must stay zero.
type (
	U8  uint8
	U16 uint16
	U24 uint32
	U32 uint32
)

func (U8) WireLen() int { return 1 }

func (v U8) MarshalTo(b *Buffer) (int, error) {
	b.writeByte(byte(v))
	return 1, nil
}

func (v *U8) UnmarshalFrom(r *Reader) error {
	x, err := r.readByte()
	if err != nil {
		return err
	}
	*v = U8(x)
	return nil
}

func (U16) WireLen() int { return 2 }

func (v U16) MarshalTo(b *Buffer) (int, error) {
	b.writeUint16(uint16(v))
	return 2, nil
}

func (v *U16) UnmarshalFrom(r *Reader) error {
	x, err := r.readUint16()
	if err != nil {
		return err
	}
	*v = U16(x)
	return nil
}

func (U24) WireLen() int { return 3 }

func (v U24) MarshalTo(b *Buffer) (int, error) {
	b.writeUint24(uint32(v))
	return 3, nil
}

func (v *U24) UnmarshalFrom(r *Reader) error {
	x, err := r.readUint24()
	if err != nil {
		return err
	}
	*v = U24(x)
	return nil
}

func (U32) WireLen() int { return 4 }

func (v U32) MarshalTo(b *Buffer) (int, error) {
	b.writeUint32(uint32(v))
	return 4, nil
}

func (v *U32) UnmarshalFrom(r *Reader) error {
	x, err := r.readUint32()
	if err != nil {
		return err
	}
	*v = U32(x)
	return nil
}
