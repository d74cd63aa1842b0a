package nbt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shiruka/nbt/decode"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

func TestMarshalUnmarshal(t *testing.T) {
	c := tag.NewCompound().SetString("a", "xyz")
	b, err := Marshal(c, wire.DiskFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x08, 0x00, 0x01, 'a', 0x00, 0x03, 'x', 'y', 'z', 0x00}) {
		t.Fatalf("got % x", b)
	}
	for _, f := range wire.AllFormats() {
		b, err := Marshal(c, f)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Unmarshal(b, tag.CompoundKind, f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !tag.Equal(got, c) {
			t.Fatalf("%s: got %v", f, got)
		}
	}
}

func TestUnmarshalTrailing(t *testing.T) {
	_, err := Unmarshal([]byte{0x05, 0x06}, tag.ByteKind, wire.DiskFormat)
	if !errors.Is(err, wire.ErrFormat) {
		t.Fatalf("trailing bytes: %v", err)
	}
	_, err = Unmarshal([]byte{0x0a, 0x00, 0x01, 'a', 0x00}, tag.CompoundKind, wire.DiskFormat, decode.MaxDepth(1))
	if !errors.Is(err, decode.ErrMaxDepth) {
		t.Fatalf("options not applied: %v", err)
	}
}

func TestNamed(t *testing.T) {
	l, _ := tag.NewListOf(tag.LongKind, tag.Long(1), tag.Long(-1))
	root := tag.NewCompound().SetList("l", l)
	for _, f := range wire.AllFormats() {
		var buf bytes.Buffer
		if err := WriteNamed(&buf, "Level", root, f); err != nil {
			t.Fatal(err)
		}
		buf.WriteByte(0x99)
		name, got, err := ReadNamed(&buf, f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if name != "Level" || !tag.Equal(got, root) {
			t.Fatalf("%s: got %q %v", f, name, got)
		}
		if buf.Len() != 1 {
			t.Fatalf("%s: %d bytes left, want 1", f, buf.Len())
		}
	}
}
