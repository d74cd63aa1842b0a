// Package config loads nbt.toml tool defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/shiruka/nbt/decode"
	"github.com/shiruka/nbt/encode"
	"github.com/shiruka/nbt/tag"
	"github.com/shiruka/nbt/wire"
)

const (
	// EnvVar names a config file to use when none is given explicitly.
	EnvVar   = "NBT_CONFIG"
	FileName = "nbt.toml"
)

type Config struct {
	Profile  wire.Format `toml:"profile"`
	MaxDepth int         `toml:"max-depth"`
	// Color is nil when unset, in which case color follows the terminal.
	Color  *bool    `toml:"color"`
	Indent string   `toml:"indent"`
	Named  bool     `toml:"named"`
	Kind   tag.Kind `toml:"kind"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		Profile:  wire.DiskFormat,
		MaxDepth: decode.DefaultMaxDepth,
		Indent:   "  ",
		Named:    true,
		Kind:     tag.CompoundKind,
	}
}

// Parse reads a config on top of the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) != 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if c.MaxDepth < 0 {
		return nil, fmt.Errorf("max-depth %d: must not be negative", c.MaxDepth)
	}
	if c.Kind == tag.EndKind || c.Kind == tag.NumericKind {
		return nil, fmt.Errorf("kind %s cannot be a root", c.Kind)
	}
	return c, nil
}

// Load reads the config at path. An empty path falls back to $NBT_CONFIG,
// then to ./nbt.toml, then to the defaults when neither exists.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvVar)
		explicit = path != ""
	}
	if !explicit {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

func (c *Config) DecodeOptions() []decode.DecodeOption {
	return []decode.DecodeOption{
		decode.DecodeFormat(c.Profile),
		decode.MaxDepth(c.MaxDepth),
	}
}

func (c *Config) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeFormat(c.Profile)}
}
