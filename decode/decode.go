// Package decode reads tag trees from the binary NBT format.
//
// The root kind is never inferred: callers supply it, either out of band
// or via ReadNamed, which reads the kind byte and root name that standard
// files carry.
//
//	d := decode.NewDecoder(r, decode.DecodeNetwork())
//	defer d.Close()
//	t, err := d.Read(tag.CompoundKind)
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/shiruka/nbt/debug"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

// ErrMaxDepth is returned when containers nest deeper than the configured
// maximum.
var ErrMaxDepth = fmt.Errorf("%w: maximum nesting depth exceeded", wire.ErrFormat)

// preallocation cap for counts read from the stream
const maxPrealloc = 1 << 12

// Decoder reads tags from a byte stream. It is not safe for concurrent
// use.
type Decoder struct {
	src    wire.Source
	closer io.Closer
	opts   *decodeOpts
	depth  int
	eof    bool
	closed bool
}

// NewDecoder returns a decoder reading from r. If r implements io.Closer,
// Close closes it.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	d := &Decoder{
		src:  wire.NewSource(r),
		opts: newOpts(opts),
	}
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}
	return d
}

// Profile returns the wire profile in use.
func (d *Decoder) Profile() wire.Profile {
	return d.opts.profile
}

// Read decodes one payload of the given kind.
func (d *Decoder) Read(kind tag.Kind) (tag.Tag, error) {
	if d.closed {
		return nil, wire.ErrClosed
	}
	d.depth = 0
	d.eof = false
	t, err := d.read(kind)
	if err != nil {
		d.logDebug("read failed", "kind", kind, "error", err)
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	d.logDebug("read", "kind", kind)
	return t, nil
}

// ReadNamed reads a kind byte, a root name and the payload, the framing
// used by standard files. An End kind byte yields tag.End{} and no name.
func (d *Decoder) ReadNamed() (string, tag.Tag, error) {
	if d.closed {
		return "", nil, wire.ErrClosed
	}
	id, err := d.opts.profile.ReadInt8(d.src)
	if err != nil {
		return "", nil, fmt.Errorf("decode root kind: %w", err)
	}
	kind := tag.Kind(uint8(id))
	if kind == tag.EndKind {
		return "", tag.End{}, nil
	}
	if !kind.Valid() {
		return "", nil, fmt.Errorf("decode root: %w %d", wire.ErrUnknownKind, id)
	}
	name, err := d.opts.profile.ReadString(d.src)
	if err != nil {
		return "", nil, fmt.Errorf("decode root name: %w", unexpected(err))
	}
	t, err := d.Read(kind)
	if err != nil {
		return "", nil, err
	}
	return name, t, nil
}

// Close marks the decoder closed and closes the underlying reader if it
// is an io.Closer. Only the first call has any effect.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

func (d *Decoder) logDebug(msg string, args ...any) {
	if !debug.Decode() {
		return
	}
	args = append(args, "profile", d.opts.profile.Format())
	d.opts.logger.Debug(msg, args...)
}

// unexpected turns a clean EOF in the middle of a payload into
// io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (d *Decoder) read(kind tag.Kind) (tag.Tag, error) {
	p := d.opts.profile
	switch kind {
	case tag.EndKind:
		return tag.End{}, nil
	case tag.ByteKind:
		v, err := p.ReadInt8(d.src)
		return tag.Byte(v), unexpected(err)
	case tag.ShortKind:
		v, err := p.ReadInt16(d.src)
		return tag.Short(v), unexpected(err)
	case tag.IntKind:
		v, err := p.ReadInt32(d.src)
		return tag.Int(v), unexpected(err)
	case tag.LongKind:
		v, err := p.ReadInt64(d.src)
		return tag.Long(v), unexpected(err)
	case tag.FloatKind:
		v, err := p.ReadFloat32(d.src)
		return tag.Float(v), unexpected(err)
	case tag.DoubleKind:
		v, err := p.ReadFloat64(d.src)
		return tag.Double(v), unexpected(err)
	case tag.ByteArrayKind:
		return d.readByteArray()
	case tag.StringKind:
		v, err := p.ReadString(d.src)
		return tag.String(v), unexpected(err)
	case tag.ListKind:
		return d.readList()
	case tag.CompoundKind:
		return d.readCompound(false)
	case tag.IntArrayKind:
		return d.readIntArray()
	case tag.LongArrayKind:
		return d.readLongArray()
	default:
		return nil, fmt.Errorf("%w %d", wire.ErrUnknownKind, kind)
	}
}

func (d *Decoder) push() error {
	d.depth++
	if d.opts.maxDepth > 0 && d.depth > d.opts.maxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepth, d.opts.maxDepth)
	}
	return nil
}

func (d *Decoder) pop() {
	d.depth--
}

// readCompound reads entries up to an End id. A clean EOF between entries
// also closes the compound, except before the first id of a list element.
func (d *Decoder) readCompound(elem bool) (tag.Tag, error) {
	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()
	p := d.opts.profile
	c := tag.NewCompound()
	for first := true; ; first = false {
		id, err := p.ReadInt8(d.src)
		if err == io.EOF {
			if elem && first {
				return nil, io.ErrUnexpectedEOF
			}
			d.eof = true
			d.logDebug("implicit end of compound", "entries", c.Len())
			return c, nil
		}
		if err != nil {
			return nil, err
		}
		kind := tag.Kind(uint8(id))
		if kind == tag.EndKind {
			return c, nil
		}
		name, err := p.ReadString(d.src)
		if err != nil {
			return nil, unexpected(err)
		}
		v, err := d.read(kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag.PathField(name), err)
		}
		if err := c.Set(name, v); err != nil {
			return nil, err
		}
	}
}

func (d *Decoder) readCount() (int, error) {
	n, err := d.opts.profile.ReadLength(d.src)
	if err != nil {
		return 0, unexpected(err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", wire.ErrNegativeLength, n)
	}
	return int(n), nil
}

func (d *Decoder) readList() (tag.Tag, error) {
	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()
	id, err := d.opts.profile.ReadInt8(d.src)
	if err != nil {
		return nil, unexpected(err)
	}
	kind := tag.Kind(uint8(id))
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("list element %w %d", wire.ErrUnknownKind, id)
	}
	if kind == tag.EndKind && n > 0 {
		return nil, fmt.Errorf("%w: list of End with %d elements", wire.ErrFormat, n)
	}
	elems := make([]tag.Tag, 0, min(n, maxPrealloc))
	for i := range n {
		// elements still owed after the source ran dry
		if d.eof {
			return nil, fmt.Errorf("[%d]: %w", i, io.ErrUnexpectedEOF)
		}
		var v tag.Tag
		if kind == tag.CompoundKind {
			v, err = d.readCompound(true)
		} else {
			v, err = d.read(kind)
		}
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		elems = append(elems, v)
	}
	l, err := tag.NewListOf(kind, elems...)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (d *Decoder) readByteArray() (tag.Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	p := d.opts.profile
	buf := make([]byte, 0, min(n, maxPrealloc))
	for range n {
		v, err := p.ReadInt8(d.src)
		if err != nil {
			return nil, unexpected(err)
		}
		buf = append(buf, byte(v))
	}
	return tag.NewByteArray(buf...), nil
}

func (d *Decoder) readIntArray() (tag.Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	p := d.opts.profile
	buf := make([]int32, 0, min(n, maxPrealloc))
	for range n {
		v, err := p.ReadInt32(d.src)
		if err != nil {
			return nil, unexpected(err)
		}
		buf = append(buf, v)
	}
	return tag.NewIntArray(buf...), nil
}

func (d *Decoder) readLongArray() (tag.Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	p := d.opts.profile
	buf := make([]int64, 0, min(n, maxPrealloc))
	for range n {
		v, err := p.ReadInt64(d.src)
		if err != nil {
			return nil, unexpected(err)
		}
		buf = append(buf, v)
	}
	return tag.NewLongArray(buf...), nil
}

// Decode reads one payload of the given kind from r.
func Decode(r io.Reader, kind tag.Kind, opts ...DecodeOption) (tag.Tag, error) {
	return NewDecoder(r, opts...).Read(kind)
}
