package tag

import "fmt"

// Tag is a single NBT value. The set of implementations is closed: the
// numeric leaves, String, End, the three arrays, *Compound and *List.
type Tag interface {
	Kind() Kind
	sealed()
}

// End terminates a compound on the wire. It carries no payload and cannot
// be stored in a Compound or List.
type End struct{}

// String is an immutable UTF-8 text tag.
type String string

func (End) Kind() Kind    { return EndKind }
func (String) Kind() Kind { return StringKind }

func (End) sealed()    {}
func (String) sealed() {}

// As narrows t to T, failing with ErrTypeMismatch when the dynamic type
// differs.
//
//	c, err := tag.As[*tag.Compound](t)
func As[T Tag](t Tag) (T, error) {
	v, ok := t.(T)
	if !ok {
		var zero T
		return zero, mismatch(t, fmt.Sprintf("%T", zero))
	}
	return v, nil
}

// Is reports whether t holds a T.
func Is[T Tag](t Tag) bool {
	_, ok := t.(T)
	return ok
}

// AsNumeric narrows t to the numeric capability.
func AsNumeric(t Tag) (Numeric, error) {
	n, ok := t.(Numeric)
	if !ok {
		return nil, mismatch(t, "numeric")
	}
	return n, nil
}

func IsNumeric(t Tag) bool {
	_, ok := t.(Numeric)
	return ok
}

// AsArray narrows t to the array capability.
func AsArray(t Tag) (Array, error) {
	a, ok := t.(Array)
	if !ok {
		return nil, mismatch(t, "an array")
	}
	return a, nil
}

func IsArray(t Tag) bool {
	_, ok := t.(Array)
	return ok
}
