// Package snbt renders tag trees in the stringified NBT text form and
// parses that form back.
//
//	{name:"steve",level:3,pos:[L;1L,64L,-7L],flags:[B;1b,0b],hp:19.5f}
//
// Numeric leaves carry a kind suffix: b (Byte), s (Short), none (Int),
// L (Long), f (Float), d (Double). Arrays open with a kind marker, [B;
// [I; or [L;. Keys that are not bare words are quoted.
//
// Parse also accepts true and false (as Byte 1 and 0), single quoted
// strings, bare word strings, and decimals without a suffix (as Double).
//
// The text form is not lossless. An empty list renders as [] whatever
// kind it is bound to, and parses back unbound. Strings holding invalid
// UTF-8 are written with U+FFFD in place of each bad byte.
//
// Colors can be applied when encoding with [EncodeColors]; see
// [NewColors].
package snbt
