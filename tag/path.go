package tag

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed tag path such as $.Level.Sections[0].Y. Fields select
// compound entries, indexes select list or array elements, and [*] selects
// every element (only meaningful for ListPath).
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// PathField quotes a compound key for use in a path when needed.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrInvalidArgument, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: path %q: %w", ErrInvalidArgument, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the tag at path below root. The returned tag is shared
// with root, not copied.
func GetPath(root Tag, path string) (Tag, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := root
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return nil, fmt.Errorf("%w: [*] in get path %q", ErrInvalidArgument, path)
		case x.Index != nil:
			res, err = index(res, *x.Index)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		case x.Field != nil:
			c, ok := res.(*Compound)
			if !ok {
				return nil, fmt.Errorf("%w: field %q on %s", ErrTypeMismatch, *x.Field, kindOf(res))
			}
			v, ok := c.Get(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			res = v
		}
	}
	return res, nil
}

func index(t Tag, i int) (Tag, error) {
	switch v := t.(type) {
	case *List:
		if err := CheckIndex(i, v.Len()); err != nil {
			return nil, err
		}
		return v.elems[i], nil
	case Array:
		return v.Elem(i)
	default:
		return nil, fmt.Errorf("%w: index on %s", ErrTypeMismatch, kindOf(t))
	}
}

// ListPath appends to dst every tag matching path below root. Missing
// fields and out of range indexes match nothing.
func ListPath(dst []Tag, root Tag, path string) ([]Tag, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return listPath(dst, root, p), nil
}

func listPath(dst []Tag, t Tag, p *Path) []Tag {
	if p == nil || p.Field == nil && p.Index == nil && !p.IndexAll {
		return append(dst, t)
	}
	switch {
	case p.Field != nil:
		c, ok := t.(*Compound)
		if !ok {
			return dst
		}
		v, ok := c.Get(*p.Field)
		if !ok {
			return dst
		}
		return listPath(dst, v, p.Next)
	case p.Index != nil:
		v, err := index(t, *p.Index)
		if err != nil {
			return dst
		}
		return listPath(dst, v, p.Next)
	default:
		switch v := t.(type) {
		case *List:
			for _, e := range v.elems {
				dst = listPath(dst, e, p.Next)
			}
		case Array:
			for i := range v.Len() {
				e, _ := v.Elem(i)
				dst = listPath(dst, e, p.Next)
			}
		}
		return dst
	}
}
