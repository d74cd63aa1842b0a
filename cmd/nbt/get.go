package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/tag"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tag path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := tag.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.snbtOpts(cc.Out, false)
	return cfg.eachFile(cc, args[1:], func(_ int, f *tagFile) error {
		if strings.Contains(path, "[*]") {
			res, err := tag.ListPath(nil, f.Tag, path)
			if err != nil {
				return err
			}
			for _, t := range res {
				if err := writeSNBT(cc.Out, t, opts); err != nil {
					return err
				}
			}
			return nil
		}
		t, err := tag.GetPath(f.Tag, path)
		if err != nil {
			return err
		}
		return writeSNBT(cc.Out, t, opts)
	})
}
