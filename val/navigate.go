package val

import "github.com/signadot/go-dyn/val/keypath"

// Get returns the value at path under root, or null when any step is
// missing or not navigable. The result aliases the stored value, so
// container mutations through it are visible in root. An empty path
// returns root itself.
func Get(root *Value, path keypath.Path) *Value {
	cur := root
	for _, k := range path {
		c, ok := AsContainer(cur)
		if !ok {
			return Null()
		}
		cur = c.Get(k)
		if cur == nil {
			return Null()
		}
	}
	return orNull(cur)
}

// Exists reports whether path resolves to a present key under root. A
// key present with a null value exists. An empty path names no key
// and reports false.
func Exists(root *Value, path keypath.Path) bool {
	if path.IsEmpty() {
		return false
	}
	prefix, last := path.RSplit()
	c, ok := AsContainer(resolve(root, prefix))
	if !ok {
		return false
	}
	return c.Has(last)
}

// Set stores v at path under root, overwriting any non-container
// intermediate step with a fresh empty container of containerKind
// (List unless StructKind is given). It reports whether a subsequent
// Get of path observes the stored value. Hosts along the way may
// decline writes, in which case Set reports false and the structure
// is left as the hosts chose to leave it.
func Set(root *Value, path keypath.Path, v *Value, containerKind Kind) bool {
	if path.IsEmpty() {
		return false
	}
	v = orNull(v)
	prefix, last := path.RSplit()
	cur := root
	for _, k := range prefix {
		c, ok := AsContainer(cur)
		if !ok {
			return false
		}
		child := c.Get(k)
		if !IsContainer(child) {
			c.Set(k, emptyContainer(containerKind))
			child = c.Get(k)
			if child == nil {
				return false
			}
		}
		cur = child
	}
	c, ok := AsContainer(cur)
	if !ok {
		return false
	}
	c.Set(last, v)
	return Same(c.Get(last), v)
}

// Unset removes the entry at path under root. It reports whether the
// path is absent afterwards, so unsetting under a parent that does
// not resolve reports true. An empty path reports true.
func Unset(root *Value, path keypath.Path) bool {
	if path.IsEmpty() {
		return true
	}
	prefix, last := path.RSplit()
	c, ok := AsContainer(resolve(root, prefix))
	if !ok {
		return true
	}
	c.Unset(last)
	return !c.Has(last)
}

// Keys lists the keys of v in entry order, or nil when v is not a
// container.
func Keys(v *Value) []keypath.Key {
	c, ok := AsContainer(v)
	if !ok {
		return nil
	}
	return c.Keys()
}

// resolve walks path without creating anything, returning nil when a
// step is missing or not navigable.
func resolve(root *Value, path keypath.Path) *Value {
	cur := root
	for _, k := range path {
		c, ok := AsContainer(cur)
		if !ok {
			return nil
		}
		cur = c.Get(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// emptyContainer returns a fresh empty container of the given kind,
// defaulting to List for non-container kinds.
func emptyContainer(kind Kind) *Value {
	if kind == StructKind {
		return NewStruct()
	}
	return NewList()
}

// GetPath is Get with a textual path.
func GetPath(root *Value, path string) (*Value, error) {
	p, err := keypath.Parse(path)
	if err != nil {
		return nil, err
	}
	return Get(root, p), nil
}

// SetPath is Set with a textual path.
func SetPath(root *Value, path string, v *Value, containerKind Kind) (bool, error) {
	p, err := keypath.Parse(path)
	if err != nil {
		return false, err
	}
	return Set(root, p, v, containerKind), nil
}

// UnsetPath is Unset with a textual path.
func UnsetPath(root *Value, path string) (bool, error) {
	p, err := keypath.Parse(path)
	if err != nil {
		return false, err
	}
	return Unset(root, p), nil
}

// ExistsPath is Exists with a textual path.
func ExistsPath(root *Value, path string) (bool, error) {
	p, err := keypath.Parse(path)
	if err != nil {
		return false, err
	}
	return Exists(root, p), nil
}
