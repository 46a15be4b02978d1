package goval

import (
	"github.com/signadot/go-dyn/val"
)

// ToList rebuilds v as a List, recursing into nested enumerable
// values up to depth levels. A value reached with depth exhausted is
// returned as-is, the same reference, not a copy. Scalars and
// non-enumerable hosts pass through unchanged. Leaf values in the
// result are aliases of the source's.
func ToList(v *val.Value, depth int) *val.Value {
	return convert(v, val.ListKind, depth)
}

// ToStruct is ToList with Struct as the target kind. List integer
// keys fold to decimal field names on the way in.
func ToStruct(v *val.Value, depth int) *val.Value {
	return convert(v, val.StructKind, depth)
}

func convert(v *val.Value, kind val.Kind, depth int) *val.Value {
	if depth <= 0 || !enumerable(v) {
		return v
	}
	out := val.FromEntries(kind)
	c, _ := val.AsContainer(out)
	for it := val.Iterate(v); it.Valid(); it.Next() {
		child := it.Current()
		if enumerable(child) {
			child = convert(child, kind, depth-1)
		}
		c.Set(it.Key(), child)
	}
	return out
}

// enumerable reports whether v has entries to rebuild from: a native
// container, or an Opaque with its own cursor or reflectable fields.
func enumerable(v *val.Value) bool {
	switch v.Kind() {
	case val.ListKind, val.StructKind:
		return true
	case val.OpaqueKind:
		return v.Can(val.CapIterate) || len(val.OpaqueFields(v)) > 0
	}
	return false
}
