package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shiruka/nbt/tag"
)

var tagEqual = cmp.Comparer(func(a, b tag.Tag) bool { return tag.Equal(a, b) })

func ints(vs ...int32) *tag.List {
	elems := make([]tag.Tag, len(vs))
	for i, v := range vs {
		elems[i] = tag.Int(v)
	}
	l, _ := tag.NewListOf(tag.IntKind, elems...)
	return l
}

func item(id string, n int8) *tag.Compound {
	return tag.NewCompound().SetString("id", id).SetByte("n", n)
}

func TestDiff(t *testing.T) {
	items := func(n int8) *tag.List {
		l, _ := tag.NewListOf(tag.CompoundKind, item("a", 1), item("b", n))
		return l
	}
	tests := []struct {
		name     string
		from, to tag.Tag
		want     []Change
	}{
		{
			name: "equal",
			from: tag.NewCompound().SetInt("a", 1),
			to:   tag.NewCompound().SetInt("a", 1),
		},
		{
			name: "compound",
			from: tag.NewCompound().
				SetInt("a", 1).
				SetString("b", "x").
				SetCompound("c", tag.NewCompound().SetByte("d", 1)),
			to: tag.NewCompound().
				SetInt("a", 2).
				SetCompound("c", tag.NewCompound().SetByte("d", 2)).
				SetLong("e", 1),
			want: []Change{
				{Path: "$.a", Op: Replace, From: tag.Int(1), To: tag.Int(2)},
				{Path: "$.b", Op: Delete, From: tag.String("x")},
				{Path: "$.c.d", Op: Replace, From: tag.Byte(1), To: tag.Byte(2)},
				{Path: "$.e", Op: Insert, To: tag.Long(1)},
			},
		},
		{
			name: "list insert",
			from: ints(1, 2, 3),
			to:   ints(1, 9, 2, 3),
			want: []Change{{Path: "$[1]", Op: Insert, To: tag.Int(9)}},
		},
		{
			name: "list replace",
			from: ints(1, 2, 3),
			to:   ints(1, 5, 3),
			want: []Change{{Path: "$[1]", Op: Replace, From: tag.Int(2), To: tag.Int(5)}},
		},
		{
			name: "nested list element",
			from: items(1),
			to:   items(2),
			want: []Change{{Path: "$[1].n", Op: Replace, From: tag.Byte(1), To: tag.Byte(2)}},
		},
		{
			name: "array delete",
			from: tag.NewIntArray(1, 2, 3),
			to:   tag.NewIntArray(1, 2),
			want: []Change{{Path: "$[2]", Op: Delete, From: tag.Int(3)}},
		},
		{
			name: "kind change",
			from: tag.Int(1),
			to:   tag.Long(1),
			want: []Change{{Path: "$", Op: Replace, From: tag.Int(1), To: tag.Long(1)}},
		},
		{
			name: "quoted key",
			from: tag.NewCompound(),
			to:   tag.NewCompound().SetInt("a.b", 1),
			want: []Change{{Path: "$.'a.b'", Op: Insert, To: tag.Int(1)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.from, tt.to)
			if d := cmp.Diff(tt.want, got, tagEqual); d != "" {
				t.Errorf("Diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestDiffListBinding(t *testing.T) {
	bound, _ := tag.NewListOf(tag.ByteKind)
	got := Diff(tag.NewList(), bound)
	if len(got) != 1 || got[0].Op != Replace || got[0].Path != "$" {
		t.Fatalf("got %v", got)
	}
	shorts, _ := tag.NewListOf(tag.ShortKind, tag.Short(1))
	bytes, _ := tag.NewListOf(tag.ByteKind, tag.Byte(1))
	got = Diff(shorts, bytes)
	if len(got) != 1 || got[0].Op != Replace {
		t.Fatalf("got %v", got)
	}
}

func TestDiffManyDistinct(t *testing.T) {
	n := 0xd800 + 16
	from := make([]tag.Tag, n)
	for i := range from {
		from[i] = tag.Int(int32(i))
	}
	to := append([]tag.Tag{tag.Int(-1)}, from...)
	fl, _ := tag.NewListOf(tag.IntKind, from...)
	tl, _ := tag.NewListOf(tag.IntKind, to...)
	got := Diff(fl, tl)
	want := []Change{{Path: "$[0]", Op: Insert, To: tag.Int(-1)}}
	if d := cmp.Diff(want, got, tagEqual); d != "" {
		t.Errorf("Diff (-want +got):\n%s", d)
	}
}

func TestReverse(t *testing.T) {
	cs := []Change{
		{Path: "$.a", Op: Insert, To: tag.Int(1)},
		{Path: "$.b", Op: Delete, From: tag.Int(2)},
		{Path: "$.c", Op: Replace, From: tag.Int(3), To: tag.Int(4)},
	}
	want := []Change{
		{Path: "$.a", Op: Delete, From: tag.Int(1)},
		{Path: "$.b", Op: Insert, To: tag.Int(2)},
		{Path: "$.c", Op: Replace, From: tag.Int(4), To: tag.Int(3)},
	}
	if d := cmp.Diff(want, Reverse(cs), tagEqual); d != "" {
		t.Errorf("Reverse (-want +got):\n%s", d)
	}
	if cs[0].Op != Insert {
		t.Error("Reverse modified its input")
	}
}

func TestChangeString(t *testing.T) {
	tests := map[string]Change{
		"+ $.e: 1b":     {Path: "$.e", Op: Insert, To: tag.Byte(1)},
		"- $.b: \"x\"":  {Path: "$.b", Op: Delete, From: tag.String("x")},
		"~ $.a: 1 -> 2": {Path: "$.a", Op: Replace, From: tag.Int(1), To: tag.Int(2)},
	}
	for want, c := range tests {
		if got := c.String(); got != want {
			t.Errorf("got %q want %q", got, want)
		}
	}
	if Op(7).String() != "Op(7)" {
		t.Error("unknown op name")
	}
}
