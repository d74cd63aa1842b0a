package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/shiruka/nbt"
	"github.com/shiruka/nbt/tag"
)

// tagFile is one decoded input. Name is the root name of named input.
type tagFile struct {
	Path string
	Name string
	Tag  tag.Tag
}

func (cfg *MainConfig) readTagFile(cc *cli.Context, path string) (*tagFile, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	res := &tagFile{Path: path}
	s := cfg.settings
	if s.Named {
		res.Name, res.Tag, err = nbt.ReadNamed(bytes.NewReader(d), s.Profile, cfg.decOpts()...)
	} else {
		res.Tag, err = nbt.Unmarshal(d, s.Kind, s.Profile, cfg.decOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return res, nil
}

// eachFile calls fn on every file in args, or on standard input when args
// is empty.
func (cfg *MainConfig) eachFile(cc *cli.Context, args []string, fn func(i int, f *tagFile) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		f, err := cfg.readTagFile(cc, arg)
		if err != nil {
			return err
		}
		if err := fn(i, f); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
