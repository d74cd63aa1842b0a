package encode

import (
	"log/slog"

	"github.com/shiruka/nbt/wire"
)

type encodeOpts struct {
	profile wire.Profile
	logger  *slog.Logger
}

type EncodeOption func(*encodeOpts)

func EncodeFormat(f wire.Format) EncodeOption {
	return EncodeProfile(f.Profile())
}
func EncodeNetwork() EncodeOption {
	return EncodeProfile(wire.Network)
}
func EncodeProfile(p wire.Profile) EncodeOption {
	return func(o *encodeOpts) { o.profile = p }
}

// EncodeLogger sets the logger for debug records. If nil, slog.Default()
// is used.
func EncodeLogger(l *slog.Logger) EncodeOption {
	return func(o *encodeOpts) { o.logger = l }
}

func newOpts(opts []EncodeOption) *encodeOpts {
	o := &encodeOpts{}
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
