package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Diff   bool
	Eval   bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NBT_DEBUG_DECODE")
	d.Encode = boolEnv("NBT_DEBUG_ENCODE")
	d.Diff = boolEnv("NBT_DEBUG_DIFF")
	d.Eval = boolEnv("NBT_DEBUG_EVAL")
	d.Match = boolEnv("NBT_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}

// LogAny writes v to stderr as a JSON line, or with %v if v does not
// marshal.
func LogAny(v any) {
	logAny(os.Stderr, v)
}

func logAny(w io.Writer, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%v\n", v)
		return
	}
	w.Write(append(d, '\n'))
}
