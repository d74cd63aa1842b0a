// Package convert exports tag trees to plain Go values and to JSON, YAML
// and CBOR.
//
// The export is lossy: numeric kinds map to Go integer and float types of
// the same width, but text formats do not keep them apart, and an empty
// list loses its element kind.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/shiruka/nbt/tag"
)

// ToAny converts t to plain Go values: compounds become map[string]any,
// lists []any, arrays []int8, []int32 or []int64, and leaves the Go type
// of matching width. End converts to nil.
func ToAny(t tag.Tag) any {
	switch v := t.(type) {
	case nil, tag.End:
		return nil
	case tag.Byte:
		return int8(v)
	case tag.Short:
		return int16(v)
	case tag.Int:
		return int32(v)
	case tag.Long:
		return int64(v)
	case tag.Float:
		return float32(v)
	case tag.Double:
		return float64(v)
	case tag.String:
		return string(v)
	case *tag.ByteArray:
		b := v.Values()
		res := make([]int8, len(b))
		for i, x := range b {
			res[i] = int8(x)
		}
		return res
	case *tag.IntArray:
		return v.Values()
	case *tag.LongArray:
		return v.Values()
	case *tag.List:
		res := make([]any, 0, v.Len())
		for _, e := range v.All() {
			res = append(res, ToAny(e))
		}
		return res
	case *tag.Compound:
		res := make(map[string]any, v.Len())
		for k, e := range v.All() {
			res[k] = ToAny(e)
		}
		return res
	default:
		panic(fmt.Sprintf("convert: unexpected tag %T", t))
	}
}

// ToJSON fails on NaN and infinite floats, which JSON cannot represent.
func ToJSON(t tag.Tag, indent string) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if indent == "" {
		d, err = json.Marshal(ToAny(t))
	} else {
		d, err = json.MarshalIndent(ToAny(t), "", indent)
	}
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	return d, nil
}

func ToYAML(t tag.Tag) ([]byte, error) {
	d, err := yaml.Marshal(ToAny(t))
	if err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	return d, nil
}

// encMode uses Core Deterministic Encoding so equal trees give equal
// bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("convert: CBOR encoder initialization failed: " + err.Error())
	}
}

func ToCBOR(t tag.Tag) ([]byte, error) {
	d, err := encMode.Marshal(ToAny(t))
	if err != nil {
		return nil, fmt.Errorf("convert to cbor: %w", err)
	}
	return d, nil
}
