package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Logf formats to stderr. Maps and slices among args are rendered as
// indented JSON.
func Logf(msg string, args ...any) {
	logf(os.Stderr, msg, args...)
}

func logf(w io.Writer, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(w, msg, args...)
}
