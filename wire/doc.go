// Package wire supplies the primitive byte-level encodings used by the
// decode and encode packages.
//
// Two profiles exist. [Disk] is the big-endian, fixed-width layout used
// for saved files: integers at their natural width and strings prefixed
// with an unsigned 16-bit length. [Network] is the little-endian layout
// used on the wire by some clients: 32 and 64-bit integers are zig-zag
// variable-length integers, counts and string lengths are unsigned
// variable-length integers, and strings have no 16-bit cap.
//
// Reads take a [Source], which any io.Reader can be adapted to with
// [NewSource]. Writes append to a byte slice.
package wire
