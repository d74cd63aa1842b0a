package libdiff

import (
	"fmt"

	"github.com/shiruka/nbt/snbt"
	"github.com/shiruka/nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffSeq aligns two element sequences.
//
//  1. each element is mapped to a rune standing for its summary:
//     the kind for containers, the kind and value for leaves
//  2. the rune sequences are diffed
//  3. aligned containers are diffed recursively
//  4. a delete directly followed by an insert becomes a replace
func diffSeq(dst []Change, path string, from, to []tag.Tag) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pending []int
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				pending = append(pending, len(dst))
				dst = append(dst, Change{Path: elemPath(path, fi), Op: Delete, From: from[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			pending = nil
			for range d.Text {
				dst = diff(dst, elemPath(path, ti), from[fi], to[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				if len(pending) != 0 {
					c := &dst[pending[0]]
					pending = pending[1:]
					c.Op = Replace
					c.Path = elemPath(path, ti)
					c.To = to[ti]
				} else {
					dst = append(dst, Change{Path: elemPath(path, ti), Op: Insert, To: to[ti]})
				}
				ti++
			}
		}
	}
	return dst
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func mapValues(m map[string]rune, ts []tag.Tag) []rune {
	rs := make([]rune, len(ts))
	for i, t := range ts {
		sum := summaryStr(t)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xd800 {
				// skip surrogates, which do not survive the string
				// conversion inside the differ
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(t tag.Tag) string {
	k := t.Kind()
	if k.IsContainer() || k.IsArray() {
		return k.String()
	}
	return k.String() + "-" + snbt.MustString(t)
}
