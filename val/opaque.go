package val

import (
	"reflect"
	"sort"

	"github.com/signadot/go-dyn/val/keypath"
)

// Capability records which optional interfaces an Opaque host
// implements. Detection happens once, in NewOpaque.
type Capability uint16

const (
	CapGet Capability = 1 << iota
	CapSet
	CapUnset
	CapHas
	CapDump
	CapEqual
	CapLen
	CapIterate
	CapClone
)

// CapContainer masks the four access hooks. A host exposing any one
// of them takes part in navigation; its missing hooks degrade to
// no-ops.
const CapContainer = CapGet | CapSet | CapUnset | CapHas

// Getter exposes keyed read access on a host value.
type Getter interface {
	DynGet(name string) *Value
}

// Setter exposes keyed write access on a host value. It reports
// whether the write was accepted.
type Setter interface {
	DynSet(name string, v *Value) bool
}

// Unsetter exposes keyed removal on a host value. It reports whether
// the key is absent afterwards.
type Unsetter interface {
	DynUnset(name string) bool
}

// Haser exposes a key presence test on a host value.
type Haser interface {
	DynHas(name string) bool
}

// Dumper renders the host's own textual form in place of the default
// object#<id>(<type>) leaf. The host lays itself out with the given
// indent unit, starting at the given depth.
type Dumper interface {
	DynDump(indent string, depth int) string
}

// Equaler lets a host decide equality against any other value.
type Equaler interface {
	DynEquals(other *Value) bool
}

// Counter reports the host's own element count.
type Counter interface {
	DynLen() int
}

// Cloner produces a copy of the host. The copy is wrapped in a fresh
// Opaque with its own identity and re-detected capabilities.
type Cloner interface {
	DynClone() any
}

// Iterator is external iteration in rewind/valid/current/key/next
// style. Hosts may implement it to control their own traversal;
// Iterate returns such hosts unmodified, without restarting them.
type Iterator interface {
	Rewind()
	Valid() bool
	Current() *Value
	Key() keypath.Key
	Next()
}

func capabilitiesOf(host any) Capability {
	var caps Capability
	if _, ok := host.(Getter); ok {
		caps |= CapGet
	}
	if _, ok := host.(Setter); ok {
		caps |= CapSet
	}
	if _, ok := host.(Unsetter); ok {
		caps |= CapUnset
	}
	if _, ok := host.(Haser); ok {
		caps |= CapHas
	}
	if _, ok := host.(Dumper); ok {
		caps |= CapDump
	}
	if _, ok := host.(Equaler); ok {
		caps |= CapEqual
	}
	if _, ok := host.(Counter); ok {
		caps |= CapLen
	}
	if _, ok := host.(Iterator); ok {
		caps |= CapIterate
	}
	if _, ok := host.(Cloner); ok {
		caps |= CapClone
	}
	return caps
}

// OpaqueFields enumerates an Opaque host's entries by reflection:
// exported struct fields in declaration order with embedded structs
// promoted, string-keyed map entries in sorted key order, or slice
// elements by index. Pointers are followed first. Scalar values are
// converted; anything structured stays behind a nested Opaque. Other
// kinds yield nil.
func OpaqueFields(v *Value) []Entry {
	if v.Kind() != OpaqueKind || v.host == nil {
		return nil
	}
	rv := reflect.ValueOf(v.host)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structFields(rv)
	case reflect.Map:
		return mapFields(rv)
	case reflect.Slice, reflect.Array:
		res := make([]Entry, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			res = append(res, Entry{Key: keypath.IntKey(i), Value: fieldValue(rv.Index(i))})
		}
		return res
	}
	return nil
}

func structFields(rv reflect.Value) []Entry {
	rt := rv.Type()
	direct := make(map[string]bool)
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.IsExported() && !f.Anonymous {
			direct[f.Name] = true
		}
	}
	var res []Entry
	seen := make(map[string]bool)
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous {
			fv := rv.Field(i)
			for fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			}
			if fv.Kind() != reflect.Struct {
				continue
			}
			// promoted fields, shadowed by direct ones
			for _, e := range structFields(fv) {
				name := e.Key.Name()
				if direct[name] || seen[name] {
					continue
				}
				seen[name] = true
				res = append(res, e)
			}
			continue
		}
		seen[f.Name] = true
		res = append(res, Entry{Key: keypath.StringKey(f.Name), Value: fieldValue(rv.Field(i))})
	}
	return res
}

func mapFields(rv reflect.Value) []Entry {
	if rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)
	res := make([]Entry, 0, len(keys))
	for _, k := range keys {
		res = append(res, Entry{Key: keypath.StringKey(k), Value: fieldValue(rv.MapIndex(reflect.ValueOf(k)))})
	}
	return res
}

// fieldValue converts one reflected value shallowly.
func fieldValue(rv reflect.Value) *Value {
	if !rv.IsValid() {
		return Null()
	}
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return fieldValue(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		if isBasic(rv.Elem().Kind()) {
			return fieldValue(rv.Elem())
		}
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FromInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	case reflect.String:
		return FromString(rv.String())
	case reflect.Func:
		if rv.IsNil() {
			return Null()
		}
		return NewCallable(rv.Interface())
	}
	if !rv.CanInterface() {
		return Null()
	}
	return NewOpaque(rv.Interface())
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}
