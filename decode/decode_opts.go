package decode

import (
	"log/slog"

	"github.com/shiruka/nbt/wire"
)

// DefaultMaxDepth bounds container nesting unless MaxDepth overrides it.
const DefaultMaxDepth = 512

type decodeOpts struct {
	profile  wire.Profile
	maxDepth int
	logger   *slog.Logger
}

type DecodeOption func(*decodeOpts)

func DecodeFormat(f wire.Format) DecodeOption {
	return DecodeProfile(f.Profile())
}
func DecodeNetwork() DecodeOption {
	return DecodeProfile(wire.Network)
}
func DecodeProfile(p wire.Profile) DecodeOption {
	return func(o *decodeOpts) { o.profile = p }
}

// MaxDepth sets the deepest container nesting accepted. Zero or less
// disables the check.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// DecodeLogger sets the logger for debug records. If nil, slog.Default()
// is used.
func DecodeLogger(l *slog.Logger) DecodeOption {
	return func(o *decodeOpts) { o.logger = l }
}

func newOpts(opts []DecodeOption) *decodeOpts {
	o := &decodeOpts{profile: wire.Disk, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	if o.profile == nil {
		o.profile = wire.Disk
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
