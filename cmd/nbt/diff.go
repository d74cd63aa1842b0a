package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readTagFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readTagFile(cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a.Tag, b.Tag)
	if a.Name != b.Name {
		fmt.Fprintf(cc.Out, "# root name %q -> %q\n", a.Name, b.Name)
	}
	if len(changes) == 0 {
		if a.Name != b.Name {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, c); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
