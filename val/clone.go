package val

// Clone copies v down to the given depth. Depth 0 returns v itself;
// each level below deep-copies container entries. Scalars and handles
// come back as-is at any depth, so a clone shares leaves with its
// source. A host with the clone capability produces the copy itself
// and is rewrapped with a fresh identity.
func Clone(v *Value, depth int) *Value {
	if depth <= 0 {
		return v
	}
	switch v.Kind() {
	case ListKind, StructKind:
		res := &Value{kind: v.kind}
		if len(v.entries) > 0 {
			res.entries = make([]Entry, len(v.entries))
			for i, e := range v.entries {
				res.entries[i] = Entry{Key: e.Key, Value: Clone(e.Value, depth-1)}
			}
		}
		return res
	case OpaqueKind:
		if v.Can(CapClone) {
			return NewOpaque(v.host.(Cloner).DynClone())
		}
		return v
	}
	return v
}

// DeepClone copies v without a depth bound. The input must be
// acyclic.
func DeepClone(v *Value) *Value { return Clone(v, 1<<30) }
