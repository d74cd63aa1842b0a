package tag

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"
	"math"
	"slices"
)

// Equal reports whether a and b hold the same kind and value. Tags of
// different kinds are never equal, even when their magnitudes are. Floats
// compare by bit pattern so NaN equals itself and -0 differs from +0.
// Compounds compare as maps; lists compare element kind and elements in
// order.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case *ByteArray:
		return bytes.Equal(av.v, b.(*ByteArray).v)
	case *IntArray:
		return slices.Equal(av.v, b.(*IntArray).v)
	case *LongArray:
		return slices.Equal(av.v, b.(*LongArray).v)
	case *Compound:
		bv := b.(*Compound)
		if av == bv {
			return true
		}
		if len(av.m) != len(bv.m) {
			return false
		}
		for k, v := range av.m {
			w, ok := bv.m[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case *List:
		bv := b.(*List)
		if av == bv {
			return true
		}
		if av.kind != bv.kind {
			return false
		}
		return slices.EqualFunc(av.elems, bv.elems, Equal)
	default:
		return a == b
	}
}

var seed = maphash.MakeSeed()

// Hash returns a hash of t consistent with Equal within one process.
// It panics if t is nil.
func Hash(t Tag) uint64 {
	if t == nil {
		panic("tag: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, t)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, t Tag) {
	var b [8]byte
	h.WriteByte(byte(t.Kind()))
	switch v := t.(type) {
	case End:
	case Byte:
		h.WriteByte(byte(v))
	case Short:
		binary.LittleEndian.PutUint16(b[:], uint16(v))
		h.Write(b[:2])
	case Int:
		binary.LittleEndian.PutUint32(b[:], uint32(v))
		h.Write(b[:4])
	case Long:
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		h.Write(b[:])
	case Float:
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(v)))
		h.Write(b[:4])
	case Double:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(float64(v)))
		h.Write(b[:])
	case String:
		h.WriteString(string(v))
	case *ByteArray:
		h.Write(v.v)
	case *IntArray:
		for _, x := range v.v {
			binary.LittleEndian.PutUint32(b[:], uint32(x))
			h.Write(b[:4])
		}
	case *LongArray:
		for _, x := range v.v {
			binary.LittleEndian.PutUint64(b[:], uint64(x))
			h.Write(b[:])
		}
	case *List:
		h.WriteByte(byte(v.kind))
		for _, e := range v.elems {
			binary.LittleEndian.PutUint64(b[:], Hash(e))
			h.Write(b[:])
		}
	case *Compound:
		// entries combine by addition so map order does not matter
		var sum uint64
		for k, e := range v.m {
			var eh maphash.Hash
			eh.SetSeed(seed)
			eh.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], Hash(e))
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
}

// Clone returns a deep copy of t. Immutable tags are returned as is.
func Clone(t Tag) Tag {
	switch v := t.(type) {
	case *Compound:
		c := &Compound{m: make(map[string]Tag, len(v.m))}
		for k, e := range v.m {
			c.m[k] = Clone(e)
		}
		return c
	case *List:
		l := &List{kind: v.kind, elems: make([]Tag, len(v.elems))}
		for i, e := range v.elems {
			l.elems[i] = Clone(e)
		}
		return l
	default:
		return t
	}
}
