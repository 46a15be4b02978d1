package dyn

import (
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// PathValue is one flattened entry: the path from the root and the
// leaf value found there.
type PathValue struct {
	Path  keypath.Path
	Value *val.Value
}

// Flatten decomposes v into its leaves, depth first in iteration
// order. Container entries recurse with the entry key prepended to
// each child path; everything else emits one (path, value) pair. An
// empty container emits itself, so it survives a round-trip through
// Unflatten. Leaf values are aliases into v.
func Flatten(v *val.Value) []PathValue {
	var res []PathValue
	return appendLeaves(res, nil, v)
}

func appendLeaves(res []PathValue, prefix keypath.Path, v *val.Value) []PathValue {
	if val.IsContainer(v) && val.Length(v) > 0 {
		for it := val.Iterate(v); it.Valid(); it.Next() {
			res = appendLeaves(res, prefix.Append(it.Key()), it.Current())
		}
		return res
	}
	return append(res, PathValue{Path: prefix, Value: v})
}

// Unflatten rebuilds a container of the given kind from flattened
// entries, setting each one in input order. Intermediate containers
// are created with the same kind, so a tree that mixed kinds comes
// back with this one throughout. Later entries overwrite earlier
// ones; an entry with an empty path names the root and replaces the
// result wholesale.
func Unflatten(entries []PathValue, kind val.Kind) *val.Value {
	res := val.FromEntries(kind)
	for _, e := range entries {
		if e.Path.IsEmpty() {
			if res = e.Value; res == nil {
				res = val.Null()
			}
			continue
		}
		val.Set(res, e.Path, e.Value, kind)
	}
	return res
}
