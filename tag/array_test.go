package tag

import (
	"errors"
	"strings"
	"testing"
)

func TestArrayBounds(t *testing.T) {
	arrays := []Array{
		NewByteArray(1, 2, 3),
		NewIntArray(1, 2, 3),
		NewLongArray(1, 2, 3),
	}
	for _, a := range arrays {
		t.Run(a.Kind().String(), func(t *testing.T) {
			_, err := a.Elem(-1)
			if !errors.Is(err, ErrIndexOutOfRange) || !errors.Is(err, ErrNegativeIndex) {
				t.Fatalf("Elem(-1): got %v", err)
			}
			if !strings.Contains(err.Error(), "must not be negative") {
				t.Errorf("message %q", err)
			}
			_, err = a.Elem(a.Len())
			if !errors.Is(err, ErrIndexOutOfRange) || !errors.Is(err, ErrIndexTooLarge) {
				t.Fatalf("Elem(size): got %v", err)
			}
			if !strings.Contains(err.Error(), "must be less than size") {
				t.Errorf("message %q", err)
			}
			e, err := a.Elem(2)
			if err != nil {
				t.Fatal(err)
			}
			if e.Kind() != a.ElemKind() || e.Int64() != 3 {
				t.Fatalf("Elem(2) = %v", e)
			}
		})
	}
}

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		index, size int
		err         error
	}{
		{0, 1, nil},
		{-1, 1, ErrNegativeIndex},
		{-1, -1, ErrNegativeIndex},
		{1, 1, ErrIndexTooLarge},
		{0, -2, ErrInvalidArgument},
	}
	for _, tt := range tests {
		err := CheckIndex(tt.index, tt.size)
		if tt.err == nil {
			if err != nil {
				t.Errorf("CheckIndex(%d, %d) = %v", tt.index, tt.size, err)
			}
			continue
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("CheckIndex(%d, %d) = %v, want %v", tt.index, tt.size, err, tt.err)
		}
	}
	var ie *IndexError
	if !errors.As(CheckIndex(4, 2), &ie) || ie.Index != 4 || ie.Size != 2 {
		t.Errorf("IndexError fields: %+v", ie)
	}
}

func TestArrayDefensiveCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	a := NewByteArray(src...)
	src[0] = 9
	if v, _ := a.At(0); v != 1 {
		t.Fatal("constructor did not copy")
	}
	out := a.Values()
	out[1] = 9
	if v, _ := a.At(1); v != 2 {
		t.Fatal("Values returned the live buffer")
	}

	ints := []int32{1, 2}
	ia := NewIntArray(ints...)
	ints[0] = 7
	iv := ia.Values()
	iv[1] = 7
	if !cmpInts(ia.Values(), []int32{1, 2}) {
		t.Fatal("IntArray aliases caller memory")
	}

	longs := []int64{1, 2}
	la := NewLongArray(longs...)
	longs[0] = 7
	if v, _ := la.At(0); v != 1 {
		t.Fatal("LongArray constructor did not copy")
	}
}

func cmpInts(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArrayEquality(t *testing.T) {
	a := NewLongArray(1, 2, 3)
	b := NewLongArray([]int64{1, 2, 3}...)
	if a == b {
		t.Fatal("expected distinct allocations")
	}
	if !Equal(a, b) {
		t.Fatal("arrays with equal contents should be equal")
	}
	if Hash(a) != Hash(b) {
		t.Fatal("equal arrays should hash equal")
	}
	if Equal(NewIntArray(1, 2, 3), a) {
		t.Fatal("int and long arrays must differ")
	}
	if Equal(NewByteArray(1), NewByteArray(1, 0)) {
		t.Fatal("length must matter")
	}
}

func TestByteArrayElemSigned(t *testing.T) {
	e, err := NewByteArray(0xff).Elem(0)
	if err != nil {
		t.Fatal(err)
	}
	if e != Byte(-1) {
		t.Fatalf("Elem(0) = %v, want Byte(-1)", e)
	}
}
