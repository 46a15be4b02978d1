package val

import "github.com/signadot/go-dyn/val/keypath"

// Container is uniform keyed access to a value's entries. Lists and
// Structs expose their entry slices directly; Opaque values route to
// whichever access hooks their host implements, with missing hooks
// degrading to no-ops.
type Container interface {
	// Get returns the value stored at k, or nil when absent.
	Get(k keypath.Key) *Value
	// Set stores v at k and reports whether the host accepted the
	// write.
	Set(k keypath.Key, v *Value) bool
	// Unset removes k. It reports whether k is absent afterwards.
	Unset(k keypath.Key) bool
	// Has reports whether k is present.
	Has(k keypath.Key) bool
	// Keys lists the present keys in entry order.
	Keys() []keypath.Key
}

// IsContainer reports whether v supports keyed navigation: a List, a
// Struct, or an Opaque whose host implements at least one access
// hook.
func IsContainer(v *Value) bool {
	switch v.Kind() {
	case ListKind, StructKind:
		return true
	case OpaqueKind:
		return v.caps&CapContainer != 0
	}
	return false
}

// AsContainer returns the container view of v. The view reads and
// writes v itself, it does not copy.
func AsContainer(v *Value) (Container, bool) {
	switch v.Kind() {
	case ListKind, StructKind:
		return entriesContainer{v}, true
	case OpaqueKind:
		if v.caps&CapContainer != 0 {
			return hooksContainer{v}, true
		}
	}
	return nil, false
}

// normKey folds a key to the form the container stores under: Structs
// key by string, so integer keys become their decimal names.
func normKey(kind Kind, k keypath.Key) keypath.Key {
	if kind == StructKind && k.IsInt() {
		return keypath.StringKey(k.Name())
	}
	return k
}

type entriesContainer struct{ v *Value }

func (c entriesContainer) find(k keypath.Key) int {
	k = normKey(c.v.kind, k)
	for i := range c.v.entries {
		if c.v.entries[i].Key == k {
			return i
		}
	}
	return -1
}

func (c entriesContainer) Get(k keypath.Key) *Value {
	if i := c.find(k); i >= 0 {
		return c.v.entries[i].Value
	}
	return nil
}

func (c entriesContainer) Set(k keypath.Key, v *Value) bool {
	v = orNull(v)
	if i := c.find(k); i >= 0 {
		c.v.entries[i].Value = v
		return true
	}
	c.v.entries = append(c.v.entries, Entry{Key: normKey(c.v.kind, k), Value: v})
	return true
}

func (c entriesContainer) Unset(k keypath.Key) bool {
	if i := c.find(k); i >= 0 {
		c.v.entries = append(c.v.entries[:i], c.v.entries[i+1:]...)
	}
	return true
}

func (c entriesContainer) Has(k keypath.Key) bool { return c.find(k) >= 0 }

func (c entriesContainer) Keys() []keypath.Key {
	keys := make([]keypath.Key, len(c.v.entries))
	for i := range c.v.entries {
		keys[i] = c.v.entries[i].Key
	}
	return keys
}

type hooksContainer struct{ v *Value }

func (c hooksContainer) Get(k keypath.Key) *Value {
	g, ok := c.v.host.(Getter)
	if !ok {
		return nil
	}
	return g.DynGet(k.Name())
}

func (c hooksContainer) Set(k keypath.Key, v *Value) bool {
	s, ok := c.v.host.(Setter)
	if !ok {
		return false
	}
	return s.DynSet(k.Name(), orNull(v))
}

func (c hooksContainer) Unset(k keypath.Key) bool {
	u, ok := c.v.host.(Unsetter)
	if !ok {
		return false
	}
	return u.DynUnset(k.Name())
}

func (c hooksContainer) Has(k keypath.Key) bool {
	h, ok := c.v.host.(Haser)
	if !ok {
		return false
	}
	return h.DynHas(k.Name())
}

// Keys of a hook-driven host are its reflected enumerable fields; the
// hooks themselves serve access, not enumeration.
func (c hooksContainer) Keys() []keypath.Key {
	fields := OpaqueFields(c.v)
	keys := make([]keypath.Key, len(fields))
	for i := range fields {
		keys[i] = fields[i].Key
	}
	return keys
}
