// Package encode writes tag trees in the binary NBT format.
//
// # Usage
//
//	// payload only, disk profile
//	err := encode.Encode(c, w)
//
//	// with the kind byte and root name standard files carry
//	e := encode.NewEncoder(w, encode.EncodeNetwork())
//	err := e.WriteNamed("", c)
//
//	// append to a buffer
//	b, err := encode.Append(nil, c, encode.EncodeFormat(wire.NetworkFormat))
//
// Compound entries are written in sorted key order so equal trees always
// produce identical bytes.
//
// # Related Packages
//
//   - github.com/shiruka/nbt/tag - the tag model
//   - github.com/shiruka/nbt/decode - the reverse direction
//   - github.com/shiruka/nbt/wire - profiles
package encode
