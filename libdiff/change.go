package libdiff

import (
	"fmt"

	"github.com/shiruka/nbt/snbt"
	"github.com/shiruka/nbt/tag"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one difference between two trees. From is nil for an Insert
// and To is nil for a Delete.
//
// Paths of list and array elements index into the from side for a Delete
// and into the to side otherwise.
type Change struct {
	Path string
	Op   Op
	From tag.Tag
	To   tag.Tag
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, snbt.MustString(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, snbt.MustString(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, snbt.MustString(c.From), snbt.MustString(c.To))
	}
}

// Reverse returns the changes undoing cs: inserts become deletes and
// vice versa, replacements swap their values. Paths are kept.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		c.From, c.To = c.To, c.From
		res[i] = c
	}
	return res
}
