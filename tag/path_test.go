package tag

import (
	"errors"
	"strings"
	"testing"
)

func pathDoc() *Compound {
	nums, _ := NewListOf(IntKind, Int(0), Int(1), Int(2))
	items, _ := NewListOf(CompoundKind,
		NewCompound().SetString("id", "stone").SetByte("count", 3),
		NewCompound().SetString("id", "dirt").SetByte("count", 9),
	)
	return NewCompound().
		SetList("f", nums).
		SetList("f[3]", nums).
		SetList("$f['3]", nums).
		SetList("items", items).
		SetIntArray("arr", 10, 20).
		SetCompound("c", NewCompound().SetCompound("d", NewCompound().SetInt("a", 3)))
}

type pathTest struct {
	Path  string
	Res   Tag
	Count int
	NoGet bool
}

var pathTests = []pathTest{
	{Path: "$.f[2]", Res: Int(2), Count: 1},
	{Path: "$.'f[3]'[1]", Res: Int(1), Count: 1},
	{Path: "$.'$f[\\'3]'[0]", Res: Int(0), Count: 1},
	{Path: "$.items[1].id", Res: String("dirt"), Count: 1},
	{Path: "$.arr[1]", Res: Int(20), Count: 1},
	{Path: "$.c.d.a", Res: Int(3), Count: 1},
	{Path: "$.items[*].count", Count: 2, NoGet: true},
	{Path: "$.arr[*]", Count: 2, NoGet: true},
	{Path: "$.missing[*]", Count: 0, NoGet: true},
	{Path: "$.f[9]", Count: 0, NoGet: true},
}

func TestPathGet(t *testing.T) {
	doc := pathDoc()
	for _, pt := range pathTests {
		if pt.NoGet {
			continue
		}
		got, err := GetPath(doc, pt.Path)
		if err != nil {
			t.Errorf("%s: %v", pt.Path, err)
			continue
		}
		if !Equal(got, pt.Res) {
			t.Errorf("%s: got %v want %v", pt.Path, got, pt.Res)
		}
	}
}

func TestPathList(t *testing.T) {
	doc := pathDoc()
	for _, pt := range pathTests {
		lst, err := ListPath(nil, doc, pt.Path)
		if err != nil {
			t.Errorf("%s: %v", pt.Path, err)
			continue
		}
		if len(lst) != pt.Count {
			t.Errorf("%s: listed %d, want %d", pt.Path, len(lst), pt.Count)
			continue
		}
		if !pt.NoGet && !Equal(lst[0], pt.Res) {
			t.Errorf("%s: list gave %v, get gives %v", pt.Path, lst[0], pt.Res)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, in := range []string{"$", "$.a.b", "$.a[3].b", "$[*].x", "$.'a.b'[0]"} {
		p, err := ParsePath(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if p.String() != in {
			t.Errorf("parsed %q printed as %q", in, p.String())
		}
	}
}

func TestPathErrors(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		err  error
	}{
		{"a.b", ErrInvalidArgument},
		{"$.f[", ErrInvalidArgument},
		{"$.nope", ErrPathNotFound},
		{"$.f.x", ErrTypeMismatch},
		{"$.c[0]", ErrTypeMismatch},
		{"$.f[3]", ErrIndexTooLarge},
		{"$.f[*]", ErrInvalidArgument},
	}
	for _, tt := range tests {
		_, err := GetPath(doc, tt.path)
		if !errors.Is(err, tt.err) {
			t.Errorf("GetPath(%q) = %v, want %v", tt.path, err, tt.err)
		}
	}
	_, err := GetPath(doc, "$.items[5].id")
	if err == nil || !strings.HasPrefix(err.Error(), "$.items[5].id: ") {
		t.Errorf("index error should name the full path: %v", err)
	}
}
