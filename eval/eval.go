// Package eval evaluates expr-lang expressions against tag trees.
//
// The root tag is converted with convert.ToAny. When it is a compound its
// entries are the top level variables; any other root is bound to the
// variable root. Paths are resolved against the original tag tree by the
// functions getpath, listpath and kindof, so kinds that ToAny blurs stay
// observable:
//
//	Level.Name == "world" && kindof("$.Level.Time") == "Long"
package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/shiruka/nbt/convert"
	"github.com/shiruka/nbt/debug"
	"github.com/shiruka/nbt/tag"
)

var ErrNotBool = errors.New("expression does not give a bool")

type Env map[string]any

// NewEnv returns the variables an expression sees for root.
func NewEnv(root tag.Tag) Env {
	v := convert.ToAny(root)
	if m, ok := v.(map[string]any); ok {
		return Env(m)
	}
	return Env{"root": v}
}

// Check compiles expression without running it.
func Check(expression string) error {
	_, err := expr.Compile(expression, exprOpts(nil)...)
	return err
}

// Eval runs expression with root as environment.
func Eval(expression string, root tag.Tag) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", expression, kindName(root))
	}
	prg, err := expr.Compile(expression, exprOpts(root)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(NewEnv(root)))
	if err == nil && debug.Eval() {
		debug.LogAny(res)
	}
	return res, err
}

// Match runs expression with root as environment and requires a bool.
func Match(expression string, root tag.Tag) (bool, error) {
	res, err := Eval(expression, root)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, expression, res)
	}
	return b, nil
}

func kindName(t tag.Tag) string {
	if t == nil {
		return "nil"
	}
	return t.Kind().String()
}
