package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/shiruka/nbt/debug"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

// Encoder writes tags to a byte stream. Each Write issues a single call
// to the underlying writer. It is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	closer io.Closer
	opts   *encodeOpts
	buf    []byte
	closed bool
}

// NewEncoder returns an encoder writing to w. If w implements io.Closer,
// Close closes it.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w, opts: newOpts(opts)}
	if c, ok := w.(io.Closer); ok {
		e.closer = c
	}
	return e
}

// Write encodes the payload of t. The kind is not written; readers must
// know it out of band.
func (e *Encoder) Write(t tag.Tag) error {
	if e.closed {
		return wire.ErrClosed
	}
	b, err := appendTag(e.buf[:0], e.opts.profile, t)
	if err != nil {
		e.logDebug("write failed", "error", err)
		return fmt.Errorf("encode: %w", err)
	}
	return e.flush(b, t)
}

// WriteNamed writes the kind byte of t, name, then the payload of t. An
// End tag is written as a lone kind byte.
func (e *Encoder) WriteNamed(name string, t tag.Tag) error {
	if e.closed {
		return wire.ErrClosed
	}
	if t == nil {
		return fmt.Errorf("encode: %w: nil tag", tag.ErrInvalidArgument)
	}
	p := e.opts.profile
	b := p.AppendInt8(e.buf[:0], int8(t.Kind()))
	if t.Kind() != tag.EndKind {
		var err error
		b, err = p.AppendString(b, name)
		if err != nil {
			return fmt.Errorf("encode root name: %w", err)
		}
		b, err = appendTag(b, p, t)
		if err != nil {
			e.logDebug("write failed", "error", err)
			return fmt.Errorf("encode: %w", err)
		}
	}
	return e.flush(b, t)
}

func (e *Encoder) flush(b []byte, t tag.Tag) error {
	e.buf = b
	if _, err := e.w.Write(b); err != nil {
		return err
	}
	e.logDebug("write", "kind", t.Kind(), "bytes", len(b))
	return nil
}

// Close marks the encoder closed and closes the underlying writer if it
// is an io.Closer. Only the first call has any effect.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.buf = nil
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}

func (e *Encoder) logDebug(msg string, args ...any) {
	if !debug.Encode() {
		return
	}
	args = append(args, "profile", e.opts.profile.Format())
	e.opts.logger.Debug(msg, args...)
}

// Encode writes the payload of t to w.
func Encode(t tag.Tag, w io.Writer, opts ...EncodeOption) error {
	return NewEncoder(w, opts...).Write(t)
}

// Append appends the payload of t to b.
func Append(b []byte, t tag.Tag, opts ...EncodeOption) ([]byte, error) {
	return appendTag(b, newOpts(opts).profile, t)
}

func appendLength(b []byte, p wire.Profile, n int) ([]byte, error) {
	if n > math.MaxInt32 {
		return b, fmt.Errorf("%w: %d elements", tag.ErrInvalidArgument, n)
	}
	return p.AppendLength(b, int32(n)), nil
}

func appendTag(b []byte, p wire.Profile, t tag.Tag) ([]byte, error) {
	var err error
	switch v := t.(type) {
	case nil:
		return b, fmt.Errorf("%w: nil tag", tag.ErrInvalidArgument)
	case tag.End:
		return b, nil
	case tag.Byte:
		return p.AppendInt8(b, int8(v)), nil
	case tag.Short:
		return p.AppendInt16(b, int16(v)), nil
	case tag.Int:
		return p.AppendInt32(b, int32(v)), nil
	case tag.Long:
		return p.AppendInt64(b, int64(v)), nil
	case tag.Float:
		return p.AppendFloat32(b, float32(v)), nil
	case tag.Double:
		return p.AppendFloat64(b, float64(v)), nil
	case tag.String:
		return p.AppendString(b, string(v))
	case *tag.ByteArray:
		vals := v.Values()
		if b, err = appendLength(b, p, len(vals)); err != nil {
			return b, err
		}
		for _, x := range vals {
			b = p.AppendInt8(b, int8(x))
		}
		return b, nil
	case *tag.IntArray:
		vals := v.Values()
		if b, err = appendLength(b, p, len(vals)); err != nil {
			return b, err
		}
		for _, x := range vals {
			b = p.AppendInt32(b, x)
		}
		return b, nil
	case *tag.LongArray:
		vals := v.Values()
		if b, err = appendLength(b, p, len(vals)); err != nil {
			return b, err
		}
		for _, x := range vals {
			b = p.AppendInt64(b, x)
		}
		return b, nil
	case *tag.List:
		b = p.AppendInt8(b, int8(v.ElemKind()))
		if b, err = appendLength(b, p, v.Len()); err != nil {
			return b, err
		}
		for i, e := range v.All() {
			if b, err = appendTag(b, p, e); err != nil {
				return b, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return b, nil
	case *tag.Compound:
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			b = p.AppendInt8(b, int8(e.Kind()))
			if b, err = p.AppendString(b, k); err != nil {
				return b, fmt.Errorf("key %s: %w", tag.PathField(k), err)
			}
			if b, err = appendTag(b, p, e); err != nil {
				return b, fmt.Errorf("%s: %w", tag.PathField(k), err)
			}
		}
		return p.AppendInt8(b, int8(tag.EndKind)), nil
	default:
		return b, fmt.Errorf("%w: %T", tag.ErrTypeMismatch, t)
	}
}
