package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/snbt"
	"github.com/shiruka/nbt/tag"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachFile(cc, args, func(i int, f *tagFile) error {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if f.Name != "" {
			fmt.Fprintf(cc.Out, "%s: ", snbt.Key(f.Name))
		}
		return writeSNBT(cc.Out, f.Tag, cfg.snbtOpts(cc.Out, !cfg.Compact))
	})
}

func writeSNBT(w io.Writer, t tag.Tag, opts []snbt.EncodeOption) error {
	if err := snbt.Encode(t, w, opts...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
