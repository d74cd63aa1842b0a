package wire

import "io"

// Variable-length integers store 7 payload bits per byte, least
// significant group first, with the high bit set on every byte but the
// last. Signed values are zig-zag encoded first so small negatives stay
// short.

const (
	MaxVarint32Len = 5
	MaxVarint64Len = 10
)

func AppendUvarint32(b []byte, v uint32) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func AppendUvarint64(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func AppendVarint32(b []byte, v int32) []byte {
	return AppendUvarint32(b, uint32(v<<1)^uint32(v>>31))
}

func AppendVarint64(b []byte, v int64) []byte {
	return AppendUvarint64(b, uint64(v<<1)^uint64(v>>63))
}

// ReadUvarint32 reads at most MaxVarint32Len bytes. Bits beyond 32 in the
// last byte are dropped.
func ReadUvarint32(r io.ByteReader) (uint32, error) {
	var v uint32
	for i := range MaxVarint32Len {
		b, err := r.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		v |= uint32(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarIntTooLong
}

// ReadUvarint64 reads at most MaxVarint64Len bytes.
func ReadUvarint64(r io.ByteReader) (uint64, error) {
	var v uint64
	for i := range MaxVarint64Len {
		b, err := r.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarIntTooLong
}

func ReadVarint32(r io.ByteReader) (int32, error) {
	u, err := ReadUvarint32(r)
	if err != nil {
		return 0, err
	}
	return int32(u>>1) ^ -int32(u&1), nil
}

func ReadVarint64(r io.ByteReader) (int64, error) {
	u, err := ReadUvarint64(r)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}
