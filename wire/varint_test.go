package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestVarint32(t *testing.T) {
	tests := []struct {
		v   int32
		enc []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{-2, []byte{0x03}},
		{300, []byte{0xd8, 0x04}},
		{math.MaxInt32, []byte{0xfe, 0xff, 0xff, 0xff, 0x0f}},
		{math.MinInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tt := range tests {
		got := AppendVarint32(nil, tt.v)
		if !bytes.Equal(got, tt.enc) {
			t.Errorf("AppendVarint32(%d) = % x, want % x", tt.v, got, tt.enc)
		}
		v, err := ReadVarint32(bytes.NewReader(got))
		if err != nil || v != tt.v {
			t.Errorf("ReadVarint32(% x) = %d, %v", got, v, err)
		}
	}
}

func TestVarint64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 300, -300, math.MaxInt64, math.MinInt64, 1 << 40} {
		enc := AppendVarint64(nil, v)
		if len(enc) > MaxVarint64Len {
			t.Fatalf("%d encoded in %d bytes", v, len(enc))
		}
		got, err := ReadVarint64(bytes.NewReader(enc))
		if err != nil || got != v {
			t.Errorf("round trip %d: got %d, %v", v, got, err)
		}
	}
}

func TestUvarint(t *testing.T) {
	if got := AppendUvarint32(nil, 130); !bytes.Equal(got, []byte{0x82, 0x01}) {
		t.Errorf("130 = % x", got)
	}
	if got := AppendUvarint64(nil, 1); !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("1 = % x", got)
	}
	u, err := ReadUvarint64(bytes.NewReader(AppendUvarint64(nil, math.MaxUint64)))
	if err != nil || u != math.MaxUint64 {
		t.Errorf("max uint64: %d, %v", u, err)
	}
}

func TestVarintErrors(t *testing.T) {
	_, err := ReadUvarint32(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}))
	if !errors.Is(err, ErrVarIntTooLong) || !errors.Is(err, ErrFormat) {
		t.Errorf("six byte varint32: %v", err)
	}
	_, err = ReadUvarint64(bytes.NewReader(bytes.Repeat([]byte{0xff}, 11)))
	if !errors.Is(err, ErrVarIntTooLong) {
		t.Errorf("eleven byte varint64: %v", err)
	}
	if _, err := ReadUvarint32(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("empty: %v", err)
	}
	if _, err := ReadUvarint32(bytes.NewReader([]byte{0x80})); err != io.ErrUnexpectedEOF {
		t.Errorf("truncated: %v", err)
	}
}
