// Package tag provides the value model for named binary tag (NBT) data.
//
// # Overview
//
// An NBT document is a tree of tags. Every tag has a [Kind], one of 13
// stable ids shared with the wire format:
//
//   - End (0): terminator, never stored in a container
//   - Byte, Short, Int, Long, Float, Double (1-6): numeric leaves
//   - ByteArray (7), IntArray (11), LongArray (12): fixed numeric arrays
//   - String (8): UTF-8 text
//   - List (9): ordered sequence of tags sharing one kind
//   - Compound (10): string keyed map of tags
//
// Leaves are plain Go values:
//
//	b := tag.Byte(5)
//	s := tag.String("hello")
//
// Arrays are immutable and copy on the way in and on the way out:
//
//	a := tag.NewIntArray(1, 2, 3)
//	v, err := a.At(1) // 2
//
// # Containers
//
// [Compound] and [List] are the only mutable tags. Both satisfy
// [Container], whose typed getters (GetByte, GetString, GetCompound, ...)
// report absence instead of failing when a key is missing or holds a tag
// of a different kind:
//
//	c := tag.NewCompound().SetString("name", "steve").SetInt("level", 3)
//	lvl, ok := c.GetInt("level")   // 3, true
//	_, ok = c.GetString("level")   // false
//
// A List starts unbound (element kind End). The first successful Add binds
// the element kind for good; the binding survives removal of every element.
//
// # Narrowing
//
// [As] and [Is] narrow a Tag to a concrete type. As fails with
// [ErrTypeMismatch] when the dynamic kind differs. [AsNumeric] and
// [AsArray] narrow to the shared numeric and array capabilities.
//
// # Equality
//
// Use [Equal] rather than == since arrays and containers are pointers.
// [Hash] is consistent with Equal.
//
// # Thread Safety
//
// Tags are not safe for concurrent mutation. A tree has a single owner; use
// [Clone] to hand a copy to another goroutine.
package tag
