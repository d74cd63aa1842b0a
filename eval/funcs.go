package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/shiruka/nbt/convert"
	"github.com/shiruka/nbt/tag"
)

func exprOpts(root tag.Tag) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := tag.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return convert.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			tags, err := tag.ListPath(nil, root, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(tags))
			for i, t := range tags {
				res[i] = convert.ToAny(t)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("kindof", func(params ...any) (any, error) {
			res, err := tag.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return kindName(res), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
