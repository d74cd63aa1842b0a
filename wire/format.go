package wire

import "fmt"

type Format int

const (
	DiskFormat Format = iota
	NetworkFormat
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"d":       DiskFormat,
		"disk":    DiskFormat,
		"java":    DiskFormat,
		"n":       NetworkFormat,
		"net":     NetworkFormat,
		"network": NetworkFormat,
		"bedrock": NetworkFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case DiskFormat:
		return []byte("disk"), nil
	case NetworkFormat:
		return []byte("network"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Profile returns the primitive codec for f. Unknown formats get Disk.
func (f Format) Profile() Profile {
	if f == NetworkFormat {
		return Network
	}
	return Disk
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{DiskFormat, NetworkFormat}
}
