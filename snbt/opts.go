package snbt

import "github.com/shiruka/nbt/tag"

type EncodeOption func(*EncState)

// EncodeIndent puts each compound entry and each container element on
// its own line, indented by s per level. The default is a single line.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

type EncState struct {
	indent string
	depth  int
	Color  func(tag.Kind, ColorAttr, string) string
}
