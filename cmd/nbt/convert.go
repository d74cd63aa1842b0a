package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/convert"
	"github.com/shiruka/nbt/encode"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.format == "" {
		return fmt.Errorf("%w: convert requires -O", cli.ErrUsage)
	}
	return cfg.eachFile(cc, args, func(_ int, f *tagFile) error {
		var (
			d   []byte
			err error
		)
		switch cfg.format {
		case "json":
			indent := ""
			if cfg.Indent {
				indent = cfg.settings.Indent
			}
			d, err = convert.ToJSON(f.Tag, indent)
			d = append(d, '\n')
		case "yaml":
			d, err = convert.ToYAML(f.Tag)
		case "cbor":
			d, err = convert.ToCBOR(f.Tag)
		case "snbt":
			return writeSNBT(cc.Out, f.Tag, nil)
		default:
			out := *cfg.settings
			if err := out.Profile.UnmarshalText([]byte(cfg.format)); err != nil {
				return err
			}
			e := encode.NewEncoder(cc.Out, out.EncodeOptions()...)
			if out.Named {
				return e.WriteNamed(f.Name, f.Tag)
			}
			return e.Write(f.Tag)
		}
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
