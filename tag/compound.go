package tag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Compound is a mutable map from string keys to tags. The zero value is an
// empty compound ready for use. Iteration order is unspecified.
type Compound struct {
	m map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{m: map[string]Tag{}}
}

// CompoundOf builds a compound holding the entries of m.
func CompoundOf(m map[string]Tag) (*Compound, error) {
	c := &Compound{m: make(map[string]Tag, len(m))}
	for k, v := range m {
		if err := c.Set(k, v); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
	}
	return c, nil
}

func (*Compound) Kind() Kind { return CompoundKind }
func (*Compound) sealed()    {}

func (c *Compound) Len() int      { return len(c.m) }
func (c *Compound) IsEmpty() bool { return len(c.m) == 0 }

func (c *Compound) ContainsKey(key string) bool {
	_, ok := c.m[key]
	return ok
}

// Contains reports whether some value in c is Equal to t.
func (c *Compound) Contains(t Tag) bool {
	for _, v := range c.m {
		if Equal(v, t) {
			return true
		}
	}
	return false
}

func (c *Compound) Get(key string) (Tag, bool) {
	t, ok := c.m[key]
	return t, ok
}

// Set stores t under key, replacing any previous value. End tags cannot be
// stored since End terminates a compound on the wire.
func (c *Compound) Set(key string, t Tag) error {
	if t == nil {
		return fmt.Errorf("%w: nil tag for key %q", ErrInvalidArgument, key)
	}
	if t.Kind() == EndKind {
		return fmt.Errorf("%w: cannot store %s in %s", ErrTypeMismatch, EndKind, CompoundKind)
	}
	c.put(key, t)
	return nil
}

// Remove deletes key. Removing a missing key is a no-op.
func (c *Compound) Remove(key string) error {
	delete(c.m, key)
	return nil
}

func (c *Compound) put(key string, t Tag) *Compound {
	if c.m == nil {
		c.m = map[string]Tag{}
	}
	c.m[key] = t
	return c
}

// All iterates over the current entries without copying them.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return maps.All(c.m)
}

// Keys returns the keys in sorted order.
func (c *Compound) Keys() []string {
	return slices.Sorted(maps.Keys(c.m))
}

// HasKeyOfType reports whether key holds a tag of the given kind.
// NumericKind matches any numeric kind.
func (c *Compound) HasKeyOfType(key string, kind Kind) bool {
	t, ok := c.m[key]
	if !ok {
		return false
	}
	k := t.Kind()
	return k == kind || kind == NumericKind && k.IsNumeric()
}

func (c *Compound) GetByte(key string) (int8, bool)       { return getByte(Container[string](c), key) }
func (c *Compound) GetShort(key string) (int16, bool)     { return getShort(Container[string](c), key) }
func (c *Compound) GetInt(key string) (int32, bool)       { return getInt(Container[string](c), key) }
func (c *Compound) GetLong(key string) (int64, bool)      { return getLong(Container[string](c), key) }
func (c *Compound) GetFloat(key string) (float32, bool)   { return getFloat(Container[string](c), key) }
func (c *Compound) GetDouble(key string) (float64, bool)  { return getDouble(Container[string](c), key) }
func (c *Compound) GetString(key string) (string, bool)   { return getString(Container[string](c), key) }
func (c *Compound) GetByteArray(key string) ([]byte, bool) {
	return getByteArray(Container[string](c), key)
}
func (c *Compound) GetIntArray(key string) ([]int32, bool) {
	return getIntArray(Container[string](c), key)
}
func (c *Compound) GetLongArray(key string) ([]int64, bool) {
	return getLongArray(Container[string](c), key)
}
func (c *Compound) GetCompound(key string) (*Compound, bool) {
	return getCompound(Container[string](c), key)
}
func (c *Compound) GetList(key string) (*List, bool) {
	return getList(Container[string](c), key)
}

// GetListOf returns the list under key only if it is bound to kind.
func (c *Compound) GetListOf(key string, kind Kind) (*List, bool) {
	return getListOf(Container[string](c), key, kind)
}

// GetMap returns a copy of the entries of the compound under key.
func (c *Compound) GetMap(key string) (map[string]Tag, bool) {
	return getMap(Container[string](c), key)
}

func (c *Compound) SetByte(key string, v int8) *Compound      { return c.put(key, Byte(v)) }
func (c *Compound) SetShort(key string, v int16) *Compound    { return c.put(key, Short(v)) }
func (c *Compound) SetInt(key string, v int32) *Compound      { return c.put(key, Int(v)) }
func (c *Compound) SetLong(key string, v int64) *Compound     { return c.put(key, Long(v)) }
func (c *Compound) SetFloat(key string, v float32) *Compound  { return c.put(key, Float(v)) }
func (c *Compound) SetDouble(key string, v float64) *Compound { return c.put(key, Double(v)) }
func (c *Compound) SetString(key string, v string) *Compound  { return c.put(key, String(v)) }

func (c *Compound) SetByteArray(key string, v ...byte) *Compound {
	return c.put(key, NewByteArray(v...))
}

func (c *Compound) SetIntArray(key string, v ...int32) *Compound {
	return c.put(key, NewIntArray(v...))
}

func (c *Compound) SetLongArray(key string, v ...int64) *Compound {
	return c.put(key, NewLongArray(v...))
}

// SetCompound stores v under key; a nil v stores an empty compound.
func (c *Compound) SetCompound(key string, v *Compound) *Compound {
	if v == nil {
		v = NewCompound()
	}
	return c.put(key, v)
}

// SetList stores v under key; a nil v stores an empty unbound list.
func (c *Compound) SetList(key string, v *List) *Compound {
	if v == nil {
		v = NewList()
	}
	return c.put(key, v)
}
