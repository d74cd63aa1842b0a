package eval

import (
	"errors"
	"testing"

	"github.com/shiruka/nbt/tag"
)

func doc() *tag.Compound {
	items, _ := tag.NewListOf(tag.CompoundKind,
		tag.NewCompound().SetString("id", "stone").SetByte("count", 3),
		tag.NewCompound().SetString("id", "dirt").SetByte("count", 9),
	)
	return tag.NewCompound().
		SetCompound("Level", tag.NewCompound().SetString("Name", "world").SetLong("Time", 1200)).
		SetList("items", items).
		SetByte("count", 3)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{`Level.Name == "world"`, true},
		{`count > 2`, true},
		{`count > 3`, false},
		{`len(items) == 2`, true},
		{`getpath("$.items[1].id") == "dirt"`, true},
		{`kindof("$.Level.Time") == "Long"`, true},
		{`kindof("$.count") == "Int"`, false},
		{`len(listpath("$.items[*].id")) == 2`, true},
		{`"stone" in listpath("$.items[*].id")`, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Match(tt.expr, doc())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestEvalNonCompoundRoot(t *testing.T) {
	got, err := Eval(`root`, tag.String("x"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("got %v", got)
	}
	k, err := Eval(`kindof("$")`, tag.Short(1))
	if err != nil {
		t.Fatal(err)
	}
	if k != "Short" {
		t.Errorf("got %v", k)
	}
}

func TestMatchErrors(t *testing.T) {
	if _, err := Match(`Level.Name`, doc()); !errors.Is(err, ErrNotBool) {
		t.Errorf("non bool result: %v", err)
	}
	if _, err := Match(`getpath("$.nope") == 1`, doc()); err == nil {
		t.Errorf("bad path: %v", err)
	}
	if err := Check(`count >`); err == nil {
		t.Error("syntax error not reported")
	}
	if err := Check(`getpath("$.a") != nil`); err != nil {
		t.Errorf("Check: %v", err)
	}
}
