// Package nbt reads and writes named binary tag data.
//
// The tag model lives in package tag; decode and encode hold the binary
// codec and wire the two profiles. This package collects the helpers a
// host usually wants: whole-buffer Marshal and Unmarshal, the named-root
// framing used by standard files, and structural matching.
//
//	b, err := nbt.Marshal(c, wire.DiskFormat)
//	t, err := nbt.Unmarshal(b, tag.CompoundKind, wire.DiskFormat)
package nbt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shiruka/nbt/decode"
	"github.com/shiruka/nbt/encode"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

// Marshal returns the payload encoding of t.
func Marshal(t tag.Tag, f wire.Format) ([]byte, error) {
	return encode.Append(nil, t, encode.EncodeFormat(f))
}

// Unmarshal decodes data as one payload of the given kind. Bytes left over
// after the payload are an error.
func Unmarshal(data []byte, kind tag.Kind, f wire.Format, opts ...decode.DecodeOption) (tag.Tag, error) {
	r := bytes.NewReader(data)
	opts = append([]decode.DecodeOption{decode.DecodeFormat(f)}, opts...)
	t, err := decode.Decode(r, kind, opts...)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %s", wire.ErrFormat, r.Len(), kind)
	}
	return t, nil
}

// ReadNamed reads a root kind byte, root name and payload from r. No bytes
// beyond the payload are consumed.
func ReadNamed(r io.Reader, f wire.Format, opts ...decode.DecodeOption) (string, tag.Tag, error) {
	opts = append([]decode.DecodeOption{decode.DecodeFormat(f)}, opts...)
	return decode.NewDecoder(r, opts...).ReadNamed()
}

// WriteNamed writes the kind byte of t, name and the payload of t to w.
func WriteNamed(w io.Writer, name string, t tag.Tag, f wire.Format) error {
	return encode.NewEncoder(w, encode.EncodeFormat(f)).WriteNamed(name, t)
}
