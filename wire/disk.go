package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxDiskString is the longest string, in encoded bytes, the disk profile
// can represent.
const MaxDiskString = math.MaxUint16

type diskProfile struct{}

func (diskProfile) Format() Format { return DiskFormat }

func readFixed(r Source, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

func (diskProfile) ReadInt8(r Source) (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (diskProfile) ReadInt16(r Source) (int16, error) {
	var buf [2]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (diskProfile) ReadInt32(r Source) (int32, error) {
	var buf [4]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (diskProfile) ReadInt64(r Source) (int64, error) {
	var buf [8]byte
	if err := readFixed(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (p diskProfile) ReadFloat32(r Source) (float32, error) {
	v, err := p.ReadInt32(r)
	return math.Float32frombits(uint32(v)), err
}

func (p diskProfile) ReadFloat64(r Source) (float64, error) {
	v, err := p.ReadInt64(r)
	return math.Float64frombits(uint64(v)), err
}

func (p diskProfile) ReadLength(r Source) (int32, error) {
	return p.ReadInt32(r)
}

func (diskProfile) ReadString(r Source) (string, error) {
	var buf [2]byte
	if err := readFixed(r, buf[:]); err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(buf[:]))
	d, err := readFull(r, n)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(d), nil
}

func (diskProfile) AppendInt8(b []byte, v int8) []byte {
	return append(b, byte(v))
}

func (diskProfile) AppendInt16(b []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(b, uint16(v))
}

func (diskProfile) AppendInt32(b []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(v))
}

func (diskProfile) AppendInt64(b []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(v))
}

func (diskProfile) AppendFloat32(b []byte, v float32) []byte {
	return binary.BigEndian.AppendUint32(b, math.Float32bits(v))
}

func (diskProfile) AppendFloat64(b []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(b, math.Float64bits(v))
}

func (p diskProfile) AppendLength(b []byte, n int32) []byte {
	return p.AppendInt32(b, n)
}

// AppendString fails with ErrStringTooLong when s needs more than
// MaxDiskString bytes.
func (diskProfile) AppendString(b []byte, s string) ([]byte, error) {
	if len(s) > MaxDiskString {
		return b, fmt.Errorf("%w: %d bytes exceeds %d", ErrStringTooLong, len(s), MaxDiskString)
	}
	b = binary.BigEndian.AppendUint16(b, uint16(len(s)))
	return append(b, s...), nil
}
