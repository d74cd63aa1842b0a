package tag

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPathNotFound    = errors.New("path not found")

	ErrNegativeIndex = fmt.Errorf("%w: must not be negative", ErrIndexOutOfRange)
	ErrIndexTooLarge = fmt.Errorf("%w: must be less than size", ErrIndexOutOfRange)
)

// IndexError reports an index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("index out of bounds: %d must not be negative", e.Index)
	}
	return fmt.Sprintf("index out of bounds: %d must be less than size (%d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	if e.Index < 0 {
		return ErrNegativeIndex
	}
	return ErrIndexTooLarge
}

// CheckIndex returns nil when 0 <= index < size. A negative index is
// reported before a negative size.
func CheckIndex(index, size int) error {
	if index >= 0 && index < size {
		return nil
	}
	if index < 0 {
		return &IndexError{Index: index, Size: size}
	}
	if size < 0 {
		return fmt.Errorf("%w: negative size: %d", ErrInvalidArgument, size)
	}
	return &IndexError{Index: index, Size: size}
}

func mismatch(got Tag, want string) error {
	return fmt.Errorf("%w: %s is not %s", ErrTypeMismatch, kindOf(got), want)
}

func kindOf(t Tag) string {
	if t == nil {
		return "<nil>"
	}
	return t.Kind().String()
}
