package decode

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

func TestDecodeDiskCompound(t *testing.T) {
	in := []byte{0x08, 0x00, 0x01, 'a', 0x00, 0x03, 'x', 'y', 'z', 0x00}
	got, err := Decode(bytes.NewReader(in), tag.CompoundKind)
	if err != nil {
		t.Fatal(err)
	}
	want := tag.NewCompound().SetString("a", "xyz")
	if !tag.Equal(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeLenientEOF(t *testing.T) {
	// no trailing End byte
	in := []byte{0x01, 0x00, 0x01, 'b', 0x7f}
	got, err := Decode(bytes.NewReader(in), tag.CompoundKind)
	if err != nil {
		t.Fatalf("clean end between entries: %v", err)
	}
	if v, ok := got.(*tag.Compound).GetByte("b"); !ok || v != 127 {
		t.Fatalf("got %v", got)
	}
	// the last compound element of a list may end at EOF
	in = []byte{0x0a, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x01, 'a', 0x01}
	list, err := Decode(bytes.NewReader(in), tag.ListKind)
	if err != nil {
		t.Fatalf("list element ended by EOF: %v", err)
	}
	if l := list.(*tag.List); l.Len() != 1 || l.ElemKind() != tag.CompoundKind {
		t.Fatalf("got %v", list)
	}
	empty, err := Decode(bytes.NewReader(nil), tag.CompoundKind)
	if err != nil || empty.(*tag.Compound).Len() != 0 {
		t.Fatalf("empty input: %v, %v", empty, err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := map[string]struct {
		kind tag.Kind
		in   []byte
	}{
		"after key":         {tag.CompoundKind, []byte{0x08, 0x00, 0x01, 'a'}},
		"inside key":        {tag.CompoundKind, []byte{0x08, 0x00, 0x02, 'a'}},
		"inside value":      {tag.CompoundKind, []byte{0x03, 0x00, 0x01, 'a', 0x00, 0x00}},
		"missing int":       {tag.IntKind, nil},
		"list count":        {tag.ListKind, []byte{0x01, 0x00}},
		"list elements":     {tag.ListKind, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x05}},
		"nested compound":   {tag.ListKind, []byte{0x0a, 0x00, 0x00, 0x00, 0x01, 0x01}},
		"compound elements": {tag.ListKind, []byte{0x0a, 0x7f, 0xff, 0xff, 0xff}},
		"after last entry":  {tag.ListKind, []byte{0x0a, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x01, 'a', 0x01}},
		"nested lists":      {tag.ListKind, []byte{0x09, 0x00, 0x00, 0x00, 0x02, 0x0a, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x01, 'a', 0x01}},
		"byte array":        {tag.ByteArrayKind, []byte{0x00, 0x00, 0x00, 0x03, 0x01}},
		"long array":        {tag.LongArrayKind, []byte{0x00, 0x00, 0x00, 0x01, 0x01}},
		"string payload":    {tag.StringKind, []byte{0x00, 0x04, 'a'}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.in), tt.kind)
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("got %v, want io.ErrUnexpectedEOF", err)
			}
		})
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil), tag.Kind(13))
	if !errors.Is(err, wire.ErrUnknownKind) || !errors.Is(err, wire.ErrFormat) {
		t.Fatalf("root kind 13: %v", err)
	}
	in := []byte{0x63, 0x00, 0x01, 'a', 0x00}
	_, err = Decode(bytes.NewReader(in), tag.CompoundKind)
	if !errors.Is(err, wire.ErrUnknownKind) {
		t.Fatalf("entry kind 99: %v", err)
	}
	in = []byte{0x20, 0x00, 0x00, 0x00, 0x00}
	_, err = Decode(bytes.NewReader(in), tag.ListKind)
	if !errors.Is(err, wire.ErrUnknownKind) {
		t.Fatalf("list element kind 32: %v", err)
	}
}

func TestDecodeLists(t *testing.T) {
	got, err := Decode(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x00}), tag.ListKind)
	if err != nil {
		t.Fatal(err)
	}
	if l := got.(*tag.List); l.ElemKind() != tag.EndKind || l.Len() != 0 {
		t.Fatalf("empty End list: %s %d", l.ElemKind(), l.Len())
	}
	got, err = Decode(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x00}), tag.ListKind)
	if err != nil {
		t.Fatal(err)
	}
	if l := got.(*tag.List); l.ElemKind() != tag.ByteKind || l.Len() != 0 {
		t.Fatalf("empty Byte list: %s %d", l.ElemKind(), l.Len())
	}
	got, err = Decode(bytes.NewReader([]byte{0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0xff, 0xff}), tag.ListKind)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := tag.NewListOf(tag.ShortKind, tag.Short(1), tag.Short(-1))
	if !tag.Equal(got, want) {
		t.Fatalf("short list: %v", got)
	}

	_, err = Decode(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x01}), tag.ListKind)
	if !errors.Is(err, wire.ErrFormat) {
		t.Fatalf("End list with elements: %v", err)
	}
	_, err = Decode(bytes.NewReader([]byte{0x01, 0xff, 0xff, 0xff, 0xff}), tag.ListKind)
	if !errors.Is(err, wire.ErrNegativeLength) {
		t.Fatalf("negative list count: %v", err)
	}
	_, err = Decode(bytes.NewReader([]byte{0x80, 0x00, 0x00, 0x00}), tag.IntArrayKind)
	if !errors.Is(err, wire.ErrNegativeLength) {
		t.Fatalf("negative array count: %v", err)
	}
}

func TestDecodeNetworkArrays(t *testing.T) {
	// count 2, then zig-zag 300 and -1
	in := []byte{0x02, 0xd8, 0x04, 0x01}
	got, err := Decode(bytes.NewReader(in), tag.IntArrayKind, DecodeNetwork())
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(got, tag.NewIntArray(300, -1)) {
		t.Fatalf("got %v", got)
	}
	got, err = Decode(bytes.NewReader([]byte{0x03, 0x01, 0x02, 0xff}), tag.ByteArrayKind, DecodeFormat(wire.NetworkFormat))
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(got, tag.NewByteArray(1, 2, 0xff)) {
		t.Fatalf("got %v", got)
	}
	// Short is little-endian, Float too
	got, err = Decode(bytes.NewReader([]byte{0x34, 0x12}), tag.ShortKind, DecodeNetwork())
	if err != nil || got != tag.Short(0x1234) {
		t.Fatalf("short: %v, %v", got, err)
	}
	got, err = Decode(bytes.NewReader([]byte{0x00, 0x00, 0x80, 0x3f}), tag.FloatKind, DecodeNetwork())
	if err != nil || got != tag.Float(1) {
		t.Fatalf("float: %v, %v", got, err)
	}
}

func nested(depth int) []byte {
	// depth compounds, each holding the next under key "c"
	var b []byte
	for range depth - 1 {
		b = append(b, 0x0a, 0x00, 0x01, 'c')
	}
	for range depth {
		b = append(b, 0x00)
	}
	return b
}

func TestDecodeMaxDepth(t *testing.T) {
	if _, err := Decode(bytes.NewReader(nested(4)), tag.CompoundKind, MaxDepth(4)); err != nil {
		t.Fatalf("depth 4 at limit 4: %v", err)
	}
	_, err := Decode(bytes.NewReader(nested(5)), tag.CompoundKind, MaxDepth(4))
	if !errors.Is(err, ErrMaxDepth) || !errors.Is(err, wire.ErrFormat) {
		t.Fatalf("depth 5 at limit 4: %v", err)
	}
	if _, err := Decode(bytes.NewReader(nested(DefaultMaxDepth+1)), tag.CompoundKind); !errors.Is(err, ErrMaxDepth) {
		t.Fatalf("default limit: %v", err)
	}
	if _, err := Decode(bytes.NewReader(nested(DefaultMaxDepth+1)), tag.CompoundKind, MaxDepth(0)); err != nil {
		t.Fatalf("disabled limit: %v", err)
	}
}

type closeCounter struct {
	io.Reader
	n int
}

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestDecoderClose(t *testing.T) {
	cc := &closeCounter{Reader: bytes.NewReader([]byte{0x01, 0x02})}
	d := NewDecoder(cc)
	if v, err := d.Read(tag.ByteKind); err != nil || v != tag.Byte(1) {
		t.Fatalf("read before close: %v, %v", v, err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if cc.n != 1 {
		t.Fatalf("underlying Close called %d times", cc.n)
	}
	_, err := d.Read(tag.ByteKind)
	if !errors.Is(err, wire.ErrClosed) || errors.Is(err, wire.ErrFormat) {
		t.Fatalf("read after close: %v", err)
	}
	if _, _, err := d.ReadNamed(); !errors.Is(err, wire.ErrClosed) {
		t.Fatalf("ReadNamed after close: %v", err)
	}
}

type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestReadNamed(t *testing.T) {
	in := []byte{
		0x0a, 0x00, 0x04, 'r', 'o', 'o', 't',
		0x03, 0x00, 0x01, 'n', 0x00, 0x00, 0x00, 0x2a,
		0x00,
		0xee, // next message
	}
	under := bytes.NewReader(in)
	d := NewDecoder(plainReader{under})
	name, got, err := d.ReadNamed()
	if err != nil {
		t.Fatal(err)
	}
	if name != "root" || !tag.Equal(got, tag.NewCompound().SetInt("n", 42)) {
		t.Fatalf("got %q %v", name, got)
	}
	if under.Len() != 1 {
		t.Fatalf("decoder read past the root: %d bytes left", under.Len())
	}

	name, got, err = NewDecoder(bytes.NewReader([]byte{0x00})).ReadNamed()
	if err != nil || name != "" || got != (tag.End{}) {
		t.Fatalf("End root: %q %v %v", name, got, err)
	}
	if _, _, err := NewDecoder(bytes.NewReader([]byte{0x0d})).ReadNamed(); !errors.Is(err, wire.ErrUnknownKind) {
		t.Fatalf("kind 13 root: %v", err)
	}
}

func TestDecodeArraysDisk(t *testing.T) {
	in := []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	got, err := Decode(bytes.NewReader(in), tag.LongArrayKind)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(got, tag.NewLongArray(1, -1)) {
		t.Fatalf("got %v", got)
	}
	got, err = Decode(bytes.NewReader([]byte{0, 0, 0, 0}), tag.ByteArrayKind)
	if err != nil || got.(*tag.ByteArray).Len() != 0 {
		t.Fatalf("empty byte array: %v, %v", got, err)
	}
}
