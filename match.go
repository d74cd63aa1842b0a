package nbt

import (
	"fmt"
	"path/filepath"

	"github.com/shiruka/nbt/debug"
	"github.com/shiruka/nbt/tag"
)

type MatchConfig struct {
	Glob    bool
	Numeric bool
}

type MatchOpt func(*MatchConfig)

// MatchGlob treats String patterns as filepath.Match globs.
func MatchGlob(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Glob = v }
}

// MatchNumeric compares numeric leaves by value across kinds, so Int(1)
// matches Byte(1).
func MatchNumeric(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Numeric = v }
}

// Match reports whether doc is matched by pattern. A nil or End pattern
// matches anything. A compound pattern matches a compound holding every
// pattern key with a matching value; other keys are ignored. A list
// pattern matches a list of the same length element by element. Other
// tags match by tag.Equal.
func Match(doc, pattern tag.Tag, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return match(doc, pattern, cfg, "$")
}

func match(doc, pattern tag.Tag, cfg *MatchConfig, path string) (bool, error) {
	if pattern == nil || pattern.Kind() == tag.EndKind {
		return true, nil
	}
	if debug.Match() {
		debug.Logf("match %s at %s\n", pattern.Kind(), path)
	}
	if doc == nil {
		return false, nil
	}
	if cfg.Numeric && doc.Kind().IsNumeric() && pattern.Kind().IsNumeric() {
		dn, _ := tag.AsNumeric(doc)
		pn, _ := tag.AsNumeric(pattern)
		return dn.Float64() == pn.Float64(), nil
	}
	if doc.Kind() != pattern.Kind() {
		return false, nil
	}
	switch p := pattern.(type) {
	case *tag.Compound:
		return matchCompound(doc.(*tag.Compound), p, cfg, path)
	case *tag.List:
		return matchList(doc.(*tag.List), p, cfg, path)
	case tag.String:
		if !cfg.Glob {
			return doc == pattern, nil
		}
		m, err := filepath.Match(string(p), string(doc.(tag.String)))
		if err != nil {
			return false, fmt.Errorf("glob at %s: %w", path, err)
		}
		return m, nil
	default:
		return tag.Equal(doc, pattern), nil
	}
}

func matchCompound(doc, pattern *tag.Compound, cfg *MatchConfig, path string) (bool, error) {
	for k, pv := range pattern.All() {
		dv, ok := doc.Get(k)
		if !ok {
			return false, nil
		}
		sub, err := match(dv, pv, cfg, path+"."+tag.PathField(k))
		if err != nil {
			return false, err
		}
		if !sub {
			return false, nil
		}
	}
	return true, nil
}

func matchList(doc, pattern *tag.List, cfg *MatchConfig, path string) (bool, error) {
	if doc.Len() != pattern.Len() {
		return false, nil
	}
	for i, pv := range pattern.All() {
		dv, _ := doc.Get(i)
		sub, err := match(dv, pv, cfg, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return false, err
		}
		if !sub {
			return false, nil
		}
	}
	return true, nil
}

// Trim returns a copy of doc restricted to the keys present in pattern.
// List elements are kept when some pattern element matches them under
// opts. Tags that are neither compounds nor lists are cloned unchanged.
func Trim(pattern, doc tag.Tag, opts ...MatchOpt) (tag.Tag, error) {
	switch p := pattern.(type) {
	case *tag.Compound:
		dc, ok := doc.(*tag.Compound)
		if !ok {
			return tag.Clone(doc), nil
		}
		res := tag.NewCompound()
		for k, dv := range dc.All() {
			pv, ok := p.Get(k)
			if !ok {
				continue
			}
			sub, err := Trim(pv, dv, opts...)
			if err != nil {
				return nil, err
			}
			if err := res.Set(k, sub); err != nil {
				return nil, fmt.Errorf("trim %s: %w", tag.PathField(k), err)
			}
		}
		return res, nil
	case *tag.List:
		dl, ok := doc.(*tag.List)
		if !ok {
			return tag.Clone(doc), nil
		}
		res, err := tag.NewListOf(dl.ElemKind())
		if err != nil {
			return nil, err
		}
		used := make([]bool, dl.Len())
		for _, pe := range p.All() {
			for i, de := range dl.All() {
				if used[i] {
					continue
				}
				m, err := Match(de, pe, opts...)
				if err != nil {
					return nil, err
				}
				if !m {
					continue
				}
				sub, err := Trim(pe, de, opts...)
				if err != nil {
					return nil, err
				}
				if err := res.Add(sub); err != nil {
					return nil, fmt.Errorf("trim [%d]: %w", i, err)
				}
				used[i] = true
				break
			}
		}
		return res, nil
	default:
		return tag.Clone(doc), nil
	}
}
