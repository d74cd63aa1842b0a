package libdiff

import (
	"slices"

	"github.com/shiruka/nbt/debug"
	"github.com/shiruka/nbt/tag"
)

// Diff returns the changes turning from into to, in path order. Equal
// trees give no changes. Tags of different kinds, and lists bound to
// different element kinds, are replaced whole.
func Diff(from, to tag.Tag) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to tag.Tag) []Change {
	if tag.Equal(from, to) {
		return dst
	}
	if debug.Diff() {
		debug.Logf("diff at %s: %s -> %s\n", path, kindName(from), kindName(to))
	}
	switch {
	case from == nil:
		return append(dst, Change{Path: path, Op: Insert, To: to})
	case to == nil:
		return append(dst, Change{Path: path, Op: Delete, From: from})
	case from.Kind() != to.Kind():
		return append(dst, replace(path, from, to))
	}
	switch f := from.(type) {
	case *tag.Compound:
		return diffCompound(dst, path, f, to.(*tag.Compound))
	case *tag.List:
		t := to.(*tag.List)
		if f.ElemKind() != t.ElemKind() && !f.IsEmpty() && !t.IsEmpty() {
			return append(dst, replace(path, from, to))
		}
		n := len(dst)
		dst = diffSeq(dst, path, f.Values(), t.Values())
		if len(dst) == n {
			// same elements, different binding
			dst = append(dst, replace(path, from, to))
		}
		return dst
	case tag.Array:
		return diffSeq(dst, path, elems(f), elems(to.(tag.Array)))
	default:
		return append(dst, replace(path, from, to))
	}
}

func diffCompound(dst []Change, path string, from, to *tag.Compound) []Change {
	keys := append(from.Keys(), to.Keys()...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	for _, k := range keys {
		fv, _ := from.Get(k)
		tv, _ := to.Get(k)
		dst = diff(dst, path+"."+tag.PathField(k), fv, tv)
	}
	return dst
}

func replace(path string, from, to tag.Tag) Change {
	return Change{Path: path, Op: Replace, From: from, To: to}
}

func elems(a tag.Array) []tag.Tag {
	res := make([]tag.Tag, a.Len())
	for i := range res {
		res[i], _ = a.Elem(i)
	}
	return res
}

func kindName(t tag.Tag) string {
	if t == nil {
		return "none"
	}
	return t.Kind().String()
}
