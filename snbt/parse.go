package snbt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shiruka/nbt/tag"
)

var ErrSyntax = errors.New("snbt syntax error")

// maximum container nesting accepted by Parse
const maxDepth = 512

type parser struct {
	d     []byte
	pos   int
	depth int
}

// Parse parses one SNBT value. Surrounding whitespace is allowed; any
// other trailing input is an error.
func Parse(d []byte) (tag.Tag, error) {
	p := &parser{d: d}
	t, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.d) {
		return nil, p.errorf("unexpected %q after value", p.d[p.pos])
	}
	return t, nil
}

// ParseString is Parse for a string.
func ParseString(s string) (tag.Tag, error) {
	return Parse([]byte(s))
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s: %w", ErrSyntax, p.pos, fmt.Sprintf(format, args...), err)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.d) {
		return 0, false
	}
	return p.d[p.pos], true
}

func (p *parser) expect(c byte) error {
	got, ok := p.peek()
	if !ok {
		return p.errorf("expected %q, got end of input", c)
	}
	if got != c {
		return p.errorf("expected %q, got %q", c, got)
	}
	p.pos++
	return nil
}

func (p *parser) push() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf("nesting deeper than %d", maxDepth)
	}
	return nil
}

func (p *parser) value() (tag.Tag, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch c {
	case '{':
		return p.compound()
	case '[':
		return p.list()
	case '"', '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return tag.String(s), nil
	}
	word := p.word()
	if word == "" {
		return nil, p.errorf("unexpected %q", c)
	}
	return classify(word), nil
}

func (p *parser) word() string {
	start := p.pos
	for p.pos < len(p.d) && isBare(p.d[p.pos]) {
		p.pos++
	}
	return string(p.d[start:p.pos])
}

func (p *parser) quoted() (string, error) {
	q := p.d[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.d) {
		c := p.d[p.pos]
		switch {
		case c == q:
			p.pos++
			return b.String(), nil
		case c == '\\':
			p.pos++
			if p.pos >= len(p.d) {
				return "", p.errorf("unterminated escape")
			}
			switch e := p.d[p.pos]; e {
			case '\\', '"', '\'':
				b.WriteByte(e)
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if p.pos+4 >= len(p.d) {
					return "", p.errorf("short \\u escape")
				}
				r, err := strconv.ParseUint(string(p.d[p.pos+1:p.pos+5]), 16, 16)
				if err != nil {
					return "", p.errorf("bad \\u escape")
				}
				b.WriteRune(rune(r))
				p.pos += 4
			default:
				return "", p.errorf("unknown escape \\%c", e)
			}
			p.pos++
		default:
			_, size := utf8.DecodeRune(p.d[p.pos:])
			b.Write(p.d[p.pos : p.pos+size])
			p.pos += size
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) compound() (tag.Tag, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++
	c := tag.NewCompound()
	if n, ok := p.peek(); ok && n == '}' {
		p.pos++
		return c, nil
	}
	for {
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := c.Set(key, v); err != nil {
			return nil, p.wrapf(err, "key %s", Key(key))
		}
		n, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated compound")
		}
		p.pos++
		switch n {
		case ',':
		case '}':
			return c, nil
		default:
			p.pos--
			return nil, p.errorf("expected ',' or '}', got %q", n)
		}
	}
}

func (p *parser) key() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("expected key, got end of input")
	}
	if c == '"' || c == '\'' {
		return p.quoted()
	}
	k := p.word()
	if k == "" {
		return "", p.errorf("expected key, got %q", c)
	}
	return k, nil
}

func (p *parser) list() (tag.Tag, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++
	if p.pos+1 < len(p.d) && p.d[p.pos+1] == ';' {
		switch p.d[p.pos] {
		case 'B', 'I', 'L':
			marker := p.d[p.pos]
			p.pos += 2
			return p.array(marker)
		}
	}
	l := tag.NewList()
	if n, ok := p.peek(); ok && n == ']' {
		p.pos++
		return l, nil
	}
	for {
		start := p.pos
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := l.Add(v); err != nil {
			p.pos = start
			return nil, p.wrapf(err, "list element %d", l.Len())
		}
		n, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated list")
		}
		p.pos++
		switch n {
		case ',':
		case ']':
			return l, nil
		default:
			p.pos--
			return nil, p.errorf("expected ',' or ']', got %q", n)
		}
	}
}

func (p *parser) array(marker byte) (tag.Tag, error) {
	var vals []int64
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	switch marker {
	case 'B':
		lo, hi = math.MinInt8, math.MaxUint8
	case 'I':
		lo, hi = math.MinInt32, math.MaxInt32
	}
	if n, ok := p.peek(); ok && n == ']' {
		p.pos++
	} else {
		for {
			start := p.pos
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			if !v.Kind().IsNumeric() || v.Kind() == tag.FloatKind || v.Kind() == tag.DoubleKind {
				p.pos = start
				return nil, p.errorf("[%c; array element is %s", marker, v.Kind())
			}
			x := v.(tag.Numeric).Int64()
			if x < lo || x > hi {
				p.pos = start
				return nil, p.errorf("%d out of range for [%c; array", x, marker)
			}
			vals = append(vals, x)
			n, ok := p.peek()
			if !ok {
				return nil, p.errorf("unterminated array")
			}
			p.pos++
			if n == ']' {
				break
			}
			if n != ',' {
				p.pos--
				return nil, p.errorf("expected ',' or ']', got %q", n)
			}
		}
	}
	switch marker {
	case 'B':
		b := make([]byte, len(vals))
		for i, x := range vals {
			b[i] = byte(x)
		}
		return tag.NewByteArray(b...), nil
	case 'I':
		b := make([]int32, len(vals))
		for i, x := range vals {
			b[i] = int32(x)
		}
		return tag.NewIntArray(b...), nil
	default:
		return tag.NewLongArray(vals...), nil
	}
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c == '+' || c == '-' {
		if len(s) == 1 {
			return false
		}
		c = s[1]
	}
	return c >= '0' && c <= '9' || c == '.'
}

// classify turns a bare word into a numeric leaf when it parses as one,
// and into a String otherwise.
func classify(w string) tag.Tag {
	switch w {
	case "true":
		return tag.Byte(1)
	case "false":
		return tag.Byte(0)
	}
	body, suffix := w[:len(w)-1], w[len(w)-1]
	switch suffix {
	case 'f', 'F', 'd', 'D':
		switch body {
		case "NaN", "Inf", "+Inf", "-Inf":
			f, _ := strconv.ParseFloat(body, 64)
			if suffix == 'f' || suffix == 'F' {
				return tag.Float(float32(f))
			}
			return tag.Double(f)
		}
	}
	if !looksNumeric(w) {
		return tag.String(w)
	}
	switch suffix {
	case 'b', 'B':
		if v, err := strconv.ParseInt(body, 10, 8); err == nil {
			return tag.Byte(v)
		}
	case 's', 'S':
		if v, err := strconv.ParseInt(body, 10, 16); err == nil {
			return tag.Short(v)
		}
	case 'l', 'L':
		if v, err := strconv.ParseInt(body, 10, 64); err == nil {
			return tag.Long(v)
		}
	case 'f', 'F':
		if v, err := strconv.ParseFloat(body, 32); err == nil {
			return tag.Float(float32(v))
		}
	case 'd', 'D':
		if v, err := strconv.ParseFloat(body, 64); err == nil {
			return tag.Double(v)
		}
	default:
		if v, err := strconv.ParseInt(w, 10, 32); err == nil {
			return tag.Int(v)
		}
		if strings.ContainsAny(w, ".eE") {
			if v, err := strconv.ParseFloat(w, 64); err == nil {
				return tag.Double(v)
			}
		}
	}
	return tag.String(w)
}
