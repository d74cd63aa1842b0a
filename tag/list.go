package tag

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// List is a mutable ordered sequence of tags of a single kind.
//
// A new list is unbound: its element kind is End. The first tag added or
// set binds the element kind, and the binding is kept even after every
// element is removed. The zero value is an empty unbound list.
type List struct {
	kind  Kind
	elems []Tag
}

func NewList() *List {
	return &List{}
}

// NewListOf builds a list bound to kind holding elems. With kind End the
// list must be empty.
func NewListOf(kind Kind, elems ...Tag) (*List, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s is not a list element kind", ErrInvalidArgument, kind)
	}
	if kind == EndKind && len(elems) > 0 {
		return nil, fmt.Errorf("%w: list of %s must be empty", ErrTypeMismatch, EndKind)
	}
	for i, t := range elems {
		if t == nil {
			return nil, fmt.Errorf("%w: nil tag at %d", ErrInvalidArgument, i)
		}
		if t.Kind() != kind {
			return nil, fmt.Errorf("%w: element %d is %s in list of %s", ErrTypeMismatch, i, t.Kind(), kind)
		}
	}
	return &List{kind: kind, elems: slices.Clone(elems)}, nil
}

func (*List) Kind() Kind { return ListKind }
func (*List) sealed()    {}

// ElemKind returns the bound element kind, or End if the list was never
// bound.
func (l *List) ElemKind() Kind { return l.kind }

func (l *List) Len() int      { return len(l.elems) }
func (l *List) IsEmpty() bool { return len(l.elems) == 0 }

func (l *List) check(t Tag) error {
	if t == nil {
		return fmt.Errorf("%w: nil tag", ErrInvalidArgument)
	}
	k := t.Kind()
	if k == EndKind {
		return fmt.Errorf("%w: cannot add %s to %s", ErrTypeMismatch, EndKind, ListKind)
	}
	if l.kind != EndKind && k != l.kind {
		return fmt.Errorf("%w: cannot add %s to list of %s", ErrTypeMismatch, k, l.kind)
	}
	return nil
}

func (l *List) bind(k Kind) {
	if l.kind == EndKind {
		l.kind = k
	}
}

// Add appends t, binding the list on first use.
func (l *List) Add(t Tag) error {
	if err := l.check(t); err != nil {
		return err
	}
	l.elems = append(l.elems, t)
	l.bind(t.Kind())
	return nil
}

// Set replaces the element at i. Like Add it binds an unbound list.
func (l *List) Set(i int, t Tag) error {
	if err := CheckIndex(i, len(l.elems)); err != nil {
		return err
	}
	if err := l.check(t); err != nil {
		return err
	}
	l.elems[i] = t
	l.bind(t.Kind())
	return nil
}

// Remove deletes the element at i. The element kind stays bound.
func (l *List) Remove(i int) error {
	if err := CheckIndex(i, len(l.elems)); err != nil {
		return err
	}
	l.elems = slices.Delete(l.elems, i, i+1)
	return nil
}

func (l *List) Get(i int) (Tag, bool) {
	if i < 0 || i >= len(l.elems) {
		return nil, false
	}
	return l.elems[i], true
}

func (l *List) Contains(t Tag) bool {
	return slices.ContainsFunc(l.elems, func(e Tag) bool {
		return Equal(e, t)
	})
}

// ContainsKey is not supported on lists and panics with an error wrapping
// errors.ErrUnsupported. Compare the index against Len instead.
func (l *List) ContainsKey(int) bool {
	panic(fmt.Errorf("tag: List.ContainsKey: %w", errors.ErrUnsupported))
}

// All iterates over the elements present when All is called.
func (l *List) All() iter.Seq2[int, Tag] {
	return slices.All(l.elems)
}

// Values returns a copy of the elements.
func (l *List) Values() []Tag {
	return slices.Clone(l.elems)
}

func (l *List) GetByte(i int) (int8, bool)         { return getByte(Container[int](l), i) }
func (l *List) GetShort(i int) (int16, bool)       { return getShort(Container[int](l), i) }
func (l *List) GetInt(i int) (int32, bool)         { return getInt(Container[int](l), i) }
func (l *List) GetLong(i int) (int64, bool)        { return getLong(Container[int](l), i) }
func (l *List) GetFloat(i int) (float32, bool)     { return getFloat(Container[int](l), i) }
func (l *List) GetDouble(i int) (float64, bool)    { return getDouble(Container[int](l), i) }
func (l *List) GetString(i int) (string, bool)     { return getString(Container[int](l), i) }
func (l *List) GetByteArray(i int) ([]byte, bool)  { return getByteArray(Container[int](l), i) }
func (l *List) GetIntArray(i int) ([]int32, bool)  { return getIntArray(Container[int](l), i) }
func (l *List) GetLongArray(i int) ([]int64, bool) { return getLongArray(Container[int](l), i) }
func (l *List) GetCompound(i int) (*Compound, bool) {
	return getCompound(Container[int](l), i)
}
func (l *List) GetList(i int) (*List, bool) {
	return getList(Container[int](l), i)
}
func (l *List) GetListOf(i int, kind Kind) (*List, bool) {
	return getListOf(Container[int](l), i, kind)
}
func (l *List) GetMap(i int) (map[string]Tag, bool) {
	return getMap(Container[int](l), i)
}
