package tag

import "slices"

// Array is implemented by the three fixed-length numeric array tags.
type Array interface {
	Tag
	Len() int
	// Elem returns element i as a numeric leaf of the element kind.
	Elem(i int) (Numeric, error)
	// ElemKind returns the kind of the tags Elem returns.
	ElemKind() Kind
}

// ByteArray is an immutable sequence of bytes.
type ByteArray struct {
	v []byte
}

// IntArray is an immutable sequence of int32.
type IntArray struct {
	v []int32
}

// LongArray is an immutable sequence of int64.
type LongArray struct {
	v []int64
}

// NewByteArray copies v.
func NewByteArray(v ...byte) *ByteArray {
	return &ByteArray{v: slices.Clone(v)}
}

// NewIntArray copies v.
func NewIntArray(v ...int32) *IntArray {
	return &IntArray{v: slices.Clone(v)}
}

// NewLongArray copies v.
func NewLongArray(v ...int64) *LongArray {
	return &LongArray{v: slices.Clone(v)}
}

func (*ByteArray) Kind() Kind { return ByteArrayKind }
func (*IntArray) Kind() Kind  { return IntArrayKind }
func (*LongArray) Kind() Kind { return LongArrayKind }

func (*ByteArray) sealed() {}
func (*IntArray) sealed()  {}
func (*LongArray) sealed() {}

func (*ByteArray) ElemKind() Kind { return ByteKind }
func (*IntArray) ElemKind() Kind  { return IntKind }
func (*LongArray) ElemKind() Kind { return LongKind }

func (a *ByteArray) Len() int { return len(a.v) }
func (a *IntArray) Len() int  { return len(a.v) }
func (a *LongArray) Len() int { return len(a.v) }

// Values returns a copy of the contents.
func (a *ByteArray) Values() []byte { return slices.Clone(a.v) }

// Values returns a copy of the contents.
func (a *IntArray) Values() []int32 { return slices.Clone(a.v) }

// Values returns a copy of the contents.
func (a *LongArray) Values() []int64 { return slices.Clone(a.v) }

func (a *ByteArray) At(i int) (byte, error) {
	if err := CheckIndex(i, len(a.v)); err != nil {
		return 0, err
	}
	return a.v[i], nil
}

func (a *IntArray) At(i int) (int32, error) {
	if err := CheckIndex(i, len(a.v)); err != nil {
		return 0, err
	}
	return a.v[i], nil
}

func (a *LongArray) At(i int) (int64, error) {
	if err := CheckIndex(i, len(a.v)); err != nil {
		return 0, err
	}
	return a.v[i], nil
}

func (a *ByteArray) Elem(i int) (Numeric, error) {
	b, err := a.At(i)
	if err != nil {
		return nil, err
	}
	return Byte(int8(b)), nil
}

func (a *IntArray) Elem(i int) (Numeric, error) {
	v, err := a.At(i)
	if err != nil {
		return nil, err
	}
	return Int(v), nil
}

func (a *LongArray) Elem(i int) (Numeric, error) {
	v, err := a.At(i)
	if err != nil {
		return nil, err
	}
	return Long(v), nil
}
