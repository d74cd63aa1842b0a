package snbt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shiruka/nbt/tag"
)

// Encode writes the SNBT form of t to w.
func Encode(t tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var buf bytes.Buffer
	if err := encode(&buf, t, es); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// MustString returns the single line SNBT form of t. It panics if t holds
// a nil tag.
func MustString(t tag.Tag) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func (es *EncState) color(k tag.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) newline(buf *bytes.Buffer) {
	if es.indent == "" {
		return
	}
	buf.WriteByte('\n')
	for range es.depth {
		buf.WriteString(es.indent)
	}
}

func encode(buf *bytes.Buffer, t tag.Tag, es *EncState) error {
	switch v := t.(type) {
	case nil:
		return fmt.Errorf("%w: nil tag", tag.ErrInvalidArgument)
	case tag.End:
		buf.WriteString(es.color(tag.EndKind, ValueColor, "END"))
	case tag.Byte:
		writeNumber(buf, es, v.Kind(), strconv.FormatInt(int64(v), 10), "b")
	case tag.Short:
		writeNumber(buf, es, v.Kind(), strconv.FormatInt(int64(v), 10), "s")
	case tag.Int:
		writeNumber(buf, es, v.Kind(), strconv.FormatInt(int64(v), 10), "")
	case tag.Long:
		writeNumber(buf, es, v.Kind(), strconv.FormatInt(int64(v), 10), "L")
	case tag.Float:
		writeNumber(buf, es, v.Kind(), formatFloat(float64(v), 32), "f")
	case tag.Double:
		writeNumber(buf, es, v.Kind(), formatFloat(float64(v), 64), "d")
	case tag.String:
		buf.WriteString(es.color(tag.StringKind, ValueColor, Quote(string(v))))
	case *tag.ByteArray:
		vals := v.Values()
		writeArray(buf, es, v.Kind(), "B", len(vals), func(i int) string {
			return strconv.Itoa(int(int8(vals[i]))) + "b"
		})
	case *tag.IntArray:
		vals := v.Values()
		writeArray(buf, es, v.Kind(), "I", len(vals), func(i int) string {
			return strconv.FormatInt(int64(vals[i]), 10)
		})
	case *tag.LongArray:
		vals := v.Values()
		writeArray(buf, es, v.Kind(), "L", len(vals), func(i int) string {
			return strconv.FormatInt(vals[i], 10) + "L"
		})
	case *tag.List:
		return encodeList(buf, v, es)
	case *tag.Compound:
		return encodeCompound(buf, v, es)
	}
	return nil
}

func writeNumber(buf *bytes.Buffer, es *EncState, k tag.Kind, num, suffix string) {
	buf.WriteString(es.color(k, ValueColor, num))
	if suffix != "" {
		buf.WriteString(es.color(k, SuffixColor, suffix))
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func writeArray(buf *bytes.Buffer, es *EncState, k tag.Kind, marker string, n int, elem func(int) string) {
	buf.WriteString(es.color(k, SepColor, "["+marker+";"))
	for i := range n {
		if i > 0 {
			buf.WriteString(es.color(k, SepColor, ","))
		}
		buf.WriteString(es.color(k, ValueColor, elem(i)))
	}
	buf.WriteString(es.color(k, SepColor, "]"))
}

func encodeList(buf *bytes.Buffer, l *tag.List, es *EncState) error {
	buf.WriteString(es.color(tag.ListKind, SepColor, "["))
	multi := es.indent != "" && l.ElemKind().IsContainer() && l.Len() > 0
	if multi {
		es.depth++
	}
	for i, e := range l.All() {
		if i > 0 {
			buf.WriteString(es.color(tag.ListKind, SepColor, ","))
		}
		if multi {
			es.newline(buf)
		}
		if err := encode(buf, e, es); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	if multi {
		es.depth--
		es.newline(buf)
	}
	buf.WriteString(es.color(tag.ListKind, SepColor, "]"))
	return nil
}

func encodeCompound(buf *bytes.Buffer, c *tag.Compound, es *EncState) error {
	buf.WriteString(es.color(tag.CompoundKind, SepColor, "{"))
	keys := c.Keys()
	if len(keys) == 0 {
		buf.WriteString(es.color(tag.CompoundKind, SepColor, "}"))
		return nil
	}
	es.depth++
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(es.color(tag.CompoundKind, SepColor, ","))
		}
		es.newline(buf)
		buf.WriteString(es.color(tag.CompoundKind, FieldColor, Key(k)))
		sep := ":"
		if es.indent != "" {
			sep = ": "
		}
		buf.WriteString(es.color(tag.CompoundKind, SepColor, sep))
		v, _ := c.Get(k)
		if err := encode(buf, v, es); err != nil {
			return fmt.Errorf("%s: %w", tag.PathField(k), err)
		}
	}
	es.depth--
	es.newline(buf)
	buf.WriteString(es.color(tag.CompoundKind, SepColor, "}"))
	return nil
}

func isBare(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// Key returns k as written in a compound: bare when every byte is a
// letter, digit or one of _-.+, quoted otherwise.
func Key(k string) string {
	if k == "" {
		return Quote(k)
	}
	for i := 0; i < len(k); i++ {
		if !isBare(k[i]) {
			return Quote(k)
		}
	}
	return k
}

// Quote double quotes s, escaping backslash, double quote and the
// control characters \n, \r and \t.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
