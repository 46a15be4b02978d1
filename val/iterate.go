package val

import (
	"unicode/utf8"

	"github.com/signadot/go-dyn/val/keypath"
)

// Iterate returns an iterator over v: entries for containers,
// characters for strings, enumerable fields for a plain Opaque.
// A host implementing Iterator is returned as-is, wherever it
// currently points. Iterators built here start at the beginning;
// Rewind restarts them. Everything else iterates as empty.
func Iterate(v *Value) Iterator {
	switch v.Kind() {
	case StringKind:
		return &stringIter{s: v.strVal}
	case ListKind, StructKind:
		return &entryIter{entries: v.entries}
	case OpaqueKind:
		if it, ok := v.host.(Iterator); ok {
			return it
		}
		return &entryIter{entries: OpaqueFields(v)}
	}
	return &entryIter{}
}

// entryIter iterates the entry slice captured at creation.
type entryIter struct {
	entries []Entry
	pos     int
}

func (it *entryIter) Rewind()     { it.pos = 0 }
func (it *entryIter) Valid() bool { return it.pos < len(it.entries) }
func (it *entryIter) Next()       { it.pos++ }

func (it *entryIter) Current() *Value {
	if !it.Valid() {
		return nil
	}
	return it.entries[it.pos].Value
}

func (it *entryIter) Key() keypath.Key {
	if !it.Valid() {
		return keypath.Key{}
	}
	return it.entries[it.pos].Key
}

// stringIter iterates characters, keyed by character index.
type stringIter struct {
	s   string
	off int
	idx int
}

func (it *stringIter) Rewind()     { it.off, it.idx = 0, 0 }
func (it *stringIter) Valid() bool { return it.off < len(it.s) }

func (it *stringIter) Next() {
	if !it.Valid() {
		return
	}
	_, size := utf8.DecodeRuneInString(it.s[it.off:])
	it.off += size
	it.idx++
}

func (it *stringIter) Current() *Value {
	if !it.Valid() {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(it.s[it.off:])
	return FromString(string(r))
}

func (it *stringIter) Key() keypath.Key { return keypath.IntKey(it.idx) }
