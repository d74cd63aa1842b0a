package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/eval"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires 1 argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	if err := eval.Check(src); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.eachFile(cc, args[1:], func(_ int, f *tagFile) error {
		if cfg.Filter {
			m, err := eval.Match(src, f.Tag)
			if err != nil || !m {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, f.Path)
			return err
		}
		res, err := eval.Eval(src, f.Tag)
		if err != nil {
			return err
		}
		if s, ok := res.(string); ok {
			_, err = fmt.Fprintln(cc.Out, s)
			return err
		}
		d, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(append(d, '\n'))
		return err
	})
}
