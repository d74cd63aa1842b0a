package tag

import "maps"

// Container is the keyed access contract shared by Compound (string keys)
// and List (int indexes).
type Container[K comparable] interface {
	Tag
	Contains(t Tag) bool
	ContainsKey(key K) bool
	Get(key K) (Tag, bool)
	Set(key K, t Tag) error
	Remove(key K) error
	Len() int
	IsEmpty() bool
}

var (
	_ Container[string] = (*Compound)(nil)
	_ Container[int]    = (*List)(nil)
)

// The typed getters below back the GetX methods of both containers. A
// missing key or a tag of another kind yields false, never an error.

func lookup[T Tag, K comparable](c Container[K], key K) (T, bool) {
	var zero T
	t, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := t.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func getByte[K comparable](c Container[K], key K) (int8, bool) {
	v, ok := lookup[Byte](c, key)
	return int8(v), ok
}

func getShort[K comparable](c Container[K], key K) (int16, bool) {
	v, ok := lookup[Short](c, key)
	return int16(v), ok
}

func getInt[K comparable](c Container[K], key K) (int32, bool) {
	v, ok := lookup[Int](c, key)
	return int32(v), ok
}

func getLong[K comparable](c Container[K], key K) (int64, bool) {
	v, ok := lookup[Long](c, key)
	return int64(v), ok
}

func getFloat[K comparable](c Container[K], key K) (float32, bool) {
	v, ok := lookup[Float](c, key)
	return float32(v), ok
}

func getDouble[K comparable](c Container[K], key K) (float64, bool) {
	v, ok := lookup[Double](c, key)
	return float64(v), ok
}

func getString[K comparable](c Container[K], key K) (string, bool) {
	v, ok := lookup[String](c, key)
	return string(v), ok
}

func getByteArray[K comparable](c Container[K], key K) ([]byte, bool) {
	v, ok := lookup[*ByteArray](c, key)
	if !ok {
		return nil, false
	}
	return v.Values(), true
}

func getIntArray[K comparable](c Container[K], key K) ([]int32, bool) {
	v, ok := lookup[*IntArray](c, key)
	if !ok {
		return nil, false
	}
	return v.Values(), true
}

func getLongArray[K comparable](c Container[K], key K) ([]int64, bool) {
	v, ok := lookup[*LongArray](c, key)
	if !ok {
		return nil, false
	}
	return v.Values(), true
}

func getCompound[K comparable](c Container[K], key K) (*Compound, bool) {
	return lookup[*Compound](c, key)
}

func getList[K comparable](c Container[K], key K) (*List, bool) {
	return lookup[*List](c, key)
}

func getListOf[K comparable](c Container[K], key K, kind Kind) (*List, bool) {
	l, ok := lookup[*List](c, key)
	if !ok || l.ElemKind() != kind {
		return nil, false
	}
	return l, true
}

func getMap[K comparable](c Container[K], key K) (map[string]Tag, bool) {
	v, ok := lookup[*Compound](c, key)
	if !ok {
		return nil, false
	}
	m := maps.Clone(v.m)
	if m == nil {
		m = map[string]Tag{}
	}
	return m, true
}
