package dyn

import (
	"github.com/signadot/go-dyn/debug"
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// Match reports whether doc matches the pattern. A Null pattern
// matches anything. A Struct pattern matches a Struct doc carrying
// every pattern key with a matching value, extra doc keys allowed. A
// List pattern matches a List doc of the same length, pairwise in
// order. Scalars match on representation, handle kinds on identity.
// Any other kind combination does not match.
func Match(doc, pattern *val.Value) bool {
	if debug.Match() {
		debug.Logf("match %s against %s\n", pattern.Kind(), doc.Kind())
	}
	if pattern.Kind() == val.NullKind {
		return true
	}
	if doc.Kind() != pattern.Kind() {
		return false
	}
	switch pattern.Kind() {
	case val.StructKind:
		return matchStruct(doc, pattern)
	case val.ListKind:
		return matchList(doc, pattern)
	case val.BoolKind:
		return doc.Bool() == pattern.Bool()
	case val.IntKind:
		return doc.Int() == pattern.Int()
	case val.FloatKind:
		return doc.Float() == pattern.Float()
	case val.StringKind:
		return doc.Str() == pattern.Str()
	}
	return val.Same(doc, pattern)
}

func matchStruct(doc, pattern *val.Value) bool {
	pMap := make(map[keypath.Key]*val.Value, len(pattern.Entries()))
	for _, e := range pattern.Entries() {
		pMap[e.Key] = e.Value
	}
	count := 0
	for _, e := range doc.Entries() {
		p := pMap[e.Key]
		if p == nil {
			continue
		}
		if !Match(e.Value, p) {
			return false
		}
		count++
	}
	return count == len(pMap)
}

func matchList(doc, pattern *val.Value) bool {
	ds, ps := doc.Entries(), pattern.Entries()
	if len(ds) != len(ps) {
		return false
	}
	for i := range ds {
		if !Match(ds[i].Value, ps[i].Value) {
			return false
		}
	}
	return true
}

// Trim filters doc down to the shape the pattern names. Struct docs
// keep only the pattern's keys, trimmed recursively. For a List
// pattern, each pattern element claims the first unused matching doc
// element. Anything else passes through as-is.
func Trim(pattern, doc *val.Value) *val.Value {
	switch {
	case pattern.Kind() == val.StructKind && doc.Kind() == val.StructKind:
		pMap := make(map[keypath.Key]*val.Value, len(pattern.Entries()))
		for _, e := range pattern.Entries() {
			pMap[e.Key] = e.Value
		}
		res := val.NewStruct()
		c, _ := val.AsContainer(res)
		for _, e := range doc.Entries() {
			p, ok := pMap[e.Key]
			if !ok {
				continue
			}
			c.Set(e.Key, Trim(p, e.Value))
		}
		return res
	case pattern.Kind() == val.ListKind && doc.Kind() == val.ListKind:
		res := val.NewList()
		c, _ := val.AsContainer(res)
		used := make([]bool, len(doc.Entries()))
		n := 0
		for _, pe := range pattern.Entries() {
			for i, de := range doc.Entries() {
				if used[i] {
					continue
				}
				if Match(de.Value, pe.Value) {
					c.Set(keypath.IntKey(n), Trim(pe.Value, de.Value))
					used[i] = true
					n++
					break
				}
			}
		}
		return res
	}
	return doc
}
