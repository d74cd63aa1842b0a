package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks malformed input. Every data error from decoding
	// wraps it.
	ErrFormat         = errors.New("nbt format error")
	ErrUnknownKind    = fmt.Errorf("%w: unknown type", ErrFormat)
	ErrNegativeLength = fmt.Errorf("%w: negative length", ErrFormat)
	ErrVarIntTooLong  = fmt.Errorf("%w: variable-length integer too long", ErrFormat)

	ErrStringTooLong = errors.New("string too long")
	ErrBadFormat     = errors.New("bad format")

	// ErrClosed is returned by any read or write after Close.
	ErrClosed = errors.New("use of closed nbt stream")
)
