package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt"
	"github.com/shiruka/nbt/snbt"
	"github.com/shiruka/nbt/tag"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg, args[0])
	if err != nil {
		return err
	}
	opts := []nbt.MatchOpt{nbt.MatchGlob(cfg.Glob), nbt.MatchNumeric(cfg.Numeric)}
	sOpts := cfg.MainConfig.snbtOpts(cc.Out, false)
	return cfg.MainConfig.eachFile(cc, args[1:], func(_ int, f *tagFile) error {
		m, err := nbt.Match(f.Tag, pattern, opts...)
		if err != nil || !m {
			return err
		}
		if cfg.Names {
			_, err := fmt.Fprintln(cc.Out, f.Path)
			return err
		}
		t := f.Tag
		if cfg.Trim {
			t, err = nbt.Trim(pattern, t, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
		}
		return writeSNBT(cc.Out, t, sOpts)
	})
}

func getPattern(cfg *MatchConfig, arg string) (tag.Tag, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader = strings.NewReader(arg)
	if cfg.File {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading pattern: %w", err)
	}
	res, err := snbt.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding pattern: %w", err)
	}
	return res, nil
}
