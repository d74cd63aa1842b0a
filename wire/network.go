package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type networkProfile struct{}

func (networkProfile) Format() Format { return NetworkFormat }

func (networkProfile) ReadInt8(r Source) (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (networkProfile) ReadInt16(r Source) (int16, error) {
	var buf [2]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func (networkProfile) ReadInt32(r Source) (int32, error) {
	return ReadVarint32(r)
}

func (networkProfile) ReadInt64(r Source) (int64, error) {
	return ReadVarint64(r)
}

func (networkProfile) ReadFloat32(r Source) (float32, error) {
	var buf [4]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

func (networkProfile) ReadFloat64(r Source) (float64, error) {
	var buf [8]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// ReadLength reads an unsigned count. Counts above math.MaxInt32 come back
// negative.
func (networkProfile) ReadLength(r Source) (int32, error) {
	u, err := ReadUvarint32(r)
	return int32(u), err
}

func (networkProfile) ReadString(r Source) (string, error) {
	u, err := ReadUvarint32(r)
	if err != nil {
		return "", err
	}
	if u > math.MaxInt32 {
		return "", fmt.Errorf("%w: string length %d", ErrNegativeLength, int32(u))
	}
	d, err := readFull(r, int(u))
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(d), nil
}

func (networkProfile) AppendInt8(b []byte, v int8) []byte {
	return append(b, byte(v))
}

func (networkProfile) AppendInt16(b []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(b, uint16(v))
}

func (networkProfile) AppendInt32(b []byte, v int32) []byte {
	return AppendVarint32(b, v)
}

func (networkProfile) AppendInt64(b []byte, v int64) []byte {
	return AppendVarint64(b, v)
}

func (networkProfile) AppendFloat32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

func (networkProfile) AppendFloat64(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

func (networkProfile) AppendLength(b []byte, n int32) []byte {
	return AppendUvarint32(b, uint32(n))
}

func (networkProfile) AppendString(b []byte, s string) ([]byte, error) {
	if len(s) > math.MaxInt32 {
		return b, fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	b = AppendUvarint32(b, uint32(len(s)))
	return append(b, s...), nil
}
