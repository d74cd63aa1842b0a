package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the payload shape of a tag. The numeric values are the
// ids used on the wire.
type Kind byte

const (
	EndKind Kind = iota
	ByteKind
	ShortKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	ByteArrayKind
	StringKind
	ListKind
	CompoundKind
	IntArrayKind
	LongArrayKind
)

// NumericKind matches any of the six numeric kinds in
// Compound.HasKeyOfType. No tag ever has this kind.
const NumericKind Kind = 99

var kindNames = map[Kind]string{
	EndKind:       "End",
	ByteKind:      "Byte",
	ShortKind:     "Short",
	IntKind:       "Int",
	LongKind:      "Long",
	FloatKind:     "Float",
	DoubleKind:    "Double",
	ByteArrayKind: "ByteArray",
	StringKind:    "String",
	ListKind:      "List",
	CompoundKind:  "Compound",
	IntArrayKind:  "IntArray",
	LongArrayKind: "LongArray",
	NumericKind:   "Numeric",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind " + strconv.Itoa(int(k)) + ">"
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d is not a kind", ErrInvalidArgument, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// ParseKind accepts a kind name (case insensitive) or its decimal id.
func ParseKind(v string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, v) {
			return k, nil
		}
	}
	id, err := strconv.ParseUint(v, 10, 8)
	if err == nil {
		k := Kind(id)
		if k.Valid() || k == NumericKind {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized kind %q", ErrInvalidArgument, v)
}

// Kinds returns the 13 storable kinds in id order.
func Kinds() []Kind {
	return []Kind{
		EndKind,
		ByteKind,
		ShortKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		ByteArrayKind,
		StringKind,
		ListKind,
		CompoundKind,
		IntArrayKind,
		LongArrayKind,
	}
}

// Valid reports whether k is one of the 13 wire kinds.
func (k Kind) Valid() bool {
	return k <= LongArrayKind
}

func (k Kind) IsNumeric() bool {
	return k >= ByteKind && k <= DoubleKind
}

func (k Kind) IsArray() bool {
	switch k {
	case ByteArrayKind, IntArrayKind, LongArrayKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsContainer() bool {
	return k == ListKind || k == CompoundKind
}
