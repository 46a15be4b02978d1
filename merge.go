package dyn

import (
	"github.com/signadot/go-dyn/val"
)

// Merge combines src into dst and returns the result. Struct pairs
// merge per key: dst's entries keep their order, shared keys merge
// recursively, keys only in src append in src order. Null never
// overrides. Everything else, Lists included, resolves to src.
// Neither input is modified; unmerged subtrees are aliases.
func Merge(dst, src *val.Value) *val.Value {
	if dst.Kind() == val.NullKind {
		return src
	}
	if src.Kind() == val.NullKind {
		return dst
	}
	if dst.Kind() != val.StructKind || src.Kind() != val.StructKind {
		return src
	}
	res := val.NewStruct()
	c, _ := val.AsContainer(res)
	for _, e := range dst.Entries() {
		c.Set(e.Key, e.Value)
	}
	for _, e := range src.Entries() {
		if prev := c.Get(e.Key); prev != nil {
			c.Set(e.Key, Merge(prev, e.Value))
			continue
		}
		c.Set(e.Key, e.Value)
	}
	return res
}
