package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt/config"
	"github.com/shiruka/nbt/decode"
	"github.com/shiruka/nbt/snbt"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

type MainConfig struct {
	Profile string `cli:"name=p aliases=profile desc='wire profile disk (java) or network (bedrock)'"`
	Named   bool   `cli:"name=named desc='root is framed by a kind byte and a name'"`
	Kind    string `cli:"name=kind desc='root kind of unnamed input (default compound)'"`
	Depth   int    `cli:"name=depth desc='maximum container nesting (0 for no limit)'"`
	Color   bool   `cli:"name=color desc='render with color'"`
	Config  string `cli:"name=config desc='config file (default $NBT_CONFIG or ./nbt.toml)'"`

	Out      string
	CloseOut func() error

	// settings holds the config file values with flags applied.
	settings *config.Config

	Main *cli.Command
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// resolve loads the config file and lays the command line over it.
func (cfg *MainConfig) resolve() error {
	c, err := config.Load(cfg.Config)
	if err != nil {
		return err
	}
	if cfg.isSet("p") {
		f, err := wire.ParseFormat(cfg.Profile)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		c.Profile = f
	}
	if cfg.isSet("named") {
		c.Named = cfg.Named
	}
	if cfg.isSet("kind") {
		k, err := tag.ParseKind(cfg.Kind)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if k == tag.EndKind || k == tag.NumericKind {
			return fmt.Errorf("%w: kind %s cannot be a root", cli.ErrUsage, k)
		}
		c.Kind = k
		if !cfg.isSet("named") {
			c.Named = false
		}
	}
	if cfg.isSet("depth") {
		c.MaxDepth = cfg.Depth
	}
	if cfg.isSet("color") {
		c.Color = &cfg.Color
	}
	cfg.settings = c
	return nil
}

func (cfg *MainConfig) decOpts() []decode.DecodeOption {
	return cfg.settings.DecodeOptions()
}

// snbtOpts colors output when asked to, or when w is a terminal and color
// was not configured either way.
func (cfg *MainConfig) snbtOpts(w io.Writer, indent bool) []snbt.EncodeOption {
	var res []snbt.EncodeOption
	if indent {
		res = append(res, snbt.EncodeIndent(cfg.settings.Indent))
	}
	if c := cfg.settings.Color; c != nil {
		if *c {
			res = append(res, snbt.EncodeColors(snbt.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, snbt.EncodeColors(snbt.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='render each file on one line'"`
	Dump    *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Indent bool `cli:"name=i desc='indent json output'"`

	format  string
	Convert *cli.Command
}

var exportFormats = map[string]string{
	"json": "json",
	"j":    "json",
	"yaml": "yaml",
	"y":    "yaml",
	"cbor": "cbor",
	"snbt": "snbt",
	"s":    "snbt",
}

func (cfg *ConvertConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		if f, ok := exportFormats[v]; ok {
			cfg.format = f
			return f, nil
		}
		f, err := wire.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, v)
		}
		cfg.format = f.String()
		return cfg.format, nil
	})
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim    bool `cli:"name=trim desc='trim the results to the pattern'"`
	String  bool `cli:"name=s desc='consider pattern a string argument'"`
	File    bool `cli:"name=f desc='consider pattern a file path'"`
	Glob    bool `cli:"name=glob desc='match string patterns as globs'"`
	Numeric bool `cli:"name=numeric desc='compare numbers across kinds'"`
	Names   bool `cli:"name=l desc='print matching file names only'"`
}

type EvalConfig struct {
	*MainConfig
	Filter bool `cli:"name=filter desc='print files for which the expression is true'"`

	Eval *cli.Command
}
