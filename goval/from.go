package goval

import (
	"encoding"
	"reflect"
	"sort"
	"strconv"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// FromGo converts a Go value to a Value. The conversion is total:
// shapes the model cannot express, and reference cycles, come back as
// Opaque references to the Go value rather than errors.
//
// nil, bool, integer, float and string map to the matching scalar
// kinds. Slices and maps become Lists, map entries sorted by key.
// Structs become Structs over their exported fields in declaration
// order, embedded fields promoted. Funcs become Callables. A value
// implementing encoding.TextMarshaler becomes its text. A *Value
// passes through unchanged.
func FromGo(v any) *val.Value {
	if v == nil {
		return val.Null()
	}
	if vv, ok := v.(*val.Value); ok {
		return vv
	}
	visited := make(map[uintptr]bool)
	return fromValue(reflect.ValueOf(v), visited)
}

func fromValue(rv reflect.Value, visited map[uintptr]bool) *val.Value {
	if !rv.IsValid() {
		return val.Null()
	}
	if v := fromMarshaler(rv); v != nil {
		return v
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return val.Null()
		}
		ptr := rv.Pointer()
		if visited[ptr] {
			return val.NewOpaque(rv.Interface())
		}
		visited[ptr] = true
		defer delete(visited, ptr)
		return fromValue(rv.Elem(), visited)
	case reflect.Interface:
		if rv.IsNil() {
			return val.Null()
		}
		return fromValue(rv.Elem(), visited)
	case reflect.Bool:
		return val.FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.FromInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return val.FromFloat(rv.Float())
	case reflect.String:
		return val.FromString(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return val.Null()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return val.FromString(string(rv.Bytes()))
		}
		ptr := rv.Pointer()
		if visited[ptr] {
			return val.NewOpaque(rv.Interface())
		}
		visited[ptr] = true
		defer delete(visited, ptr)
		return fromSeq(rv, visited)
	case reflect.Array:
		return fromSeq(rv, visited)
	case reflect.Map:
		if rv.IsNil() {
			return val.Null()
		}
		ptr := rv.Pointer()
		if visited[ptr] {
			return val.NewOpaque(rv.Interface())
		}
		visited[ptr] = true
		defer delete(visited, ptr)
		return fromGoMap(rv, visited)
	case reflect.Struct:
		return fromStruct(rv, visited)
	case reflect.Func:
		if rv.IsNil() {
			return val.Null()
		}
		return val.NewCallable(rv.Interface())
	}
	return val.NewOpaque(rv.Interface())
}

// fromMarshaler returns the text form of a TextMarshaler, checking the
// value and, when addressable, its pointer. Nil pointers and marshal
// errors fall through to the reflection walk.
func fromMarshaler(rv reflect.Value) *val.Value {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	tm, ok := rv.Interface().(encoding.TextMarshaler)
	if !ok && rv.CanAddr() {
		tm, ok = rv.Addr().Interface().(encoding.TextMarshaler)
	}
	if !ok {
		return nil
	}
	text, err := tm.MarshalText()
	if err != nil {
		return nil
	}
	return val.FromString(string(text))
}

func fromSeq(rv reflect.Value, visited map[uintptr]bool) *val.Value {
	out := val.NewList()
	c, _ := val.AsContainer(out)
	for i := 0; i < rv.Len(); i++ {
		c.Set(keypath.IntKey(i), fromValue(rv.Index(i), visited))
	}
	return out
}

// fromGoMap builds a List from a Go map. String keys sort
// lexically, integer keys numerically; other key types cannot be
// expressed and yield an Opaque reference.
func fromGoMap(rv reflect.Value, visited map[uintptr]bool) *val.Value {
	switch rv.Type().Key().Kind() {
	case reflect.String:
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		out := val.NewList()
		c, _ := val.AsContainer(out)
		for _, k := range keys {
			c.Set(keypath.StringKey(k), fromValue(rv.MapIndex(reflect.ValueOf(k)), visited))
		}
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		keys := make([]int64, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().Int())
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		out := val.NewList()
		c, _ := val.AsContainer(out)
		keyType := rv.Type().Key()
		for _, k := range keys {
			kv := reflect.ValueOf(k).Convert(keyType)
			c.Set(intMapKey(k), fromValue(rv.MapIndex(kv), visited))
		}
		return out
	}
	return val.NewOpaque(rv.Interface())
}

// intMapKey folds negative map keys to string names, since list keys
// are non-negative ints or strings.
func intMapKey(k int64) keypath.Key {
	if k < 0 {
		return keypath.StringKey(strconv.FormatInt(k, 10))
	}
	return keypath.IntKey(int(k))
}

// fromStruct walks exported fields in declaration order, promoting
// embedded structs one level with direct fields shadowing promoted
// ones.
func fromStruct(rv reflect.Value, visited map[uintptr]bool) *val.Value {
	out := val.NewStruct()
	c, _ := val.AsContainer(out)
	rt := rv.Type()
	direct := make(map[string]bool)
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.IsExported() && !f.Anonymous {
			direct[f.Name] = true
		}
	}
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
			nested := fromStruct(fv, visited)
			for _, e := range nested.Entries() {
				name := e.Key.Name()
				if direct[name] || seen[name] {
					continue
				}
				seen[name] = true
				c.Set(e.Key, e.Value)
			}
			continue
		}
		seen[f.Name] = true
		c.Set(keypath.StringKey(f.Name), fromValue(rv.Field(i), visited))
	}
	return out
}
