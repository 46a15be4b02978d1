package keypath

import "strconv"

// Key is a single step in a Path: either a non-negative integer index
// or a string field name. Keys are comparable with ==.
type Key struct {
	name  string
	index int
	isInt bool
}

// IntKey returns a Key holding an integer index.
func IntKey(i int) Key { return Key{index: i, isInt: true} }

// StringKey returns a Key holding a string field name.
func StringKey(name string) Key { return Key{name: name} }

// IsInt reports whether k holds an integer index.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer index, or 0 if k holds a string.
func (k Key) Int() int {
	if !k.isInt {
		return 0
	}
	return k.index
}

// Name returns the key as a string: the field name itself, or the
// decimal form of the index.
func (k Key) Name() string {
	if k.isInt {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// String renders the key as a path segment: "[3]" for indices, the
// quoted-if-needed name for fields.
func (k Key) String() string {
	if k.isInt {
		return "[" + strconv.Itoa(k.index) + "]"
	}
	if NeedsQuote(k.name) {
		return Quote(k.name)
	}
	return k.name
}
