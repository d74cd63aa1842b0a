package debug

import (
	"bytes"
	"testing"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("NBT_TEST_TOGGLE", "1")
	if !boolEnv("NBT_TEST_TOGGLE") {
		t.Error("1 should enable")
	}
	t.Setenv("NBT_TEST_TOGGLE", "nope")
	if boolEnv("NBT_TEST_TOGGLE") {
		t.Error("unparsable should disable")
	}
	if boolEnv("NBT_TEST_UNSET_TOGGLE") {
		t.Error("unset should disable")
	}
}

func TestLogAny(t *testing.T) {
	var buf bytes.Buffer
	logAny(&buf, map[string]int{"a": 1})
	if buf.String() != "{\"a\":1}\n" {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	logAny(&buf, func() {})
	if buf.Len() == 0 {
		t.Error("unmarshalable value should still be logged")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	logf(&buf, "v=%s n=%d\n", []any{1, "x"}, 3)
	want := "v=[\n   |  1,\n   |  \"x\"\n   |] n=3\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
