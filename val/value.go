// Package val implements a dynamically typed value model: scalars,
// insertion-ordered containers and handles to host Go values, with
// total navigation operations over them.
//
// The two container kinds differ only in how they key their entries.
// A List keys entries by integer index or string, a Struct folds every
// key to a string field name. Both preserve insertion order; deleting
// and re-adding a key moves it to the end.
//
// Operations on values never panic on the wrong kind and never return
// errors for missing structure: reads of absent paths yield null,
// writes report whether they took effect.
package val

import (
	"reflect"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/signadot/go-dyn/val/keypath"
)

// Value is one dynamically typed value. The zero Value and the nil
// *Value are both null.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	entries []Entry

	res  *Resource
	call *Callable

	host any
	id   int64
	caps Capability
}

// Entry is one key/value pair of a List or Struct. Entries keep
// insertion order.
type Entry struct {
	Key   keypath.Key
	Value *Value
}

// Resource identifies an open handle, such as a file or a connection,
// by kind and identity.
type Resource struct {
	id      int64
	resKind string
	handle  any
}

// ID returns the resource's identity, assigned at construction.
func (r *Resource) ID() int64 { return r.id }

// Kind names what the handle is, such as "file" or "conn".
func (r *Resource) Kind() string { return r.resKind }

// Handle returns the wrapped Go handle.
func (r *Resource) Handle() any { return r.handle }

// Callable wraps a Go function value together with its resolved
// source location.
type Callable struct {
	id   int64
	fn   any
	file string
	line int
}

// ID returns the callable's identity, assigned at construction.
func (c *Callable) ID() int64 { return c.id }

// Fn returns the wrapped function value.
func (c *Callable) Fn() any { return c.fn }

// Location returns the function's declared source position, or
// ("", 0) when it could not be resolved.
func (c *Callable) Location() (string, int) { return c.file, c.line }

var idSeq atomic.Int64

func nextID() int64 { return idSeq.Add(1) }

// Null returns a fresh null value.
func Null() *Value { return &Value{kind: NullKind} }

// FromBool returns a bool value.
func FromBool(b bool) *Value { return &Value{kind: BoolKind, boolVal: b} }

// FromInt returns an int value.
func FromInt(i int64) *Value { return &Value{kind: IntKind, intVal: i} }

// FromFloat returns a float value.
func FromFloat(f float64) *Value { return &Value{kind: FloatKind, floatVal: f} }

// FromString returns a string value.
func FromString(s string) *Value { return &Value{kind: StringKind, strVal: s} }

// NewList returns an empty List.
func NewList() *Value { return &Value{kind: ListKind} }

// NewStruct returns an empty Struct.
func NewStruct() *Value { return &Value{kind: StructKind} }

// FromSlice returns a List holding vs keyed 0..len(vs)-1.
func FromSlice(vs []*Value) *Value {
	res := NewList()
	if len(vs) == 0 {
		return res
	}
	res.entries = make([]Entry, len(vs))
	for i, v := range vs {
		res.entries[i] = Entry{Key: keypath.IntKey(i), Value: orNull(v)}
	}
	return res
}

// FromMap returns a Struct holding m's entries in sorted key order.
func FromMap(m map[string]*Value) *Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := NewStruct()
	for _, k := range keys {
		res.entries = append(res.entries, Entry{Key: keypath.StringKey(k), Value: orNull(m[k])})
	}
	return res
}

// FromEntries returns a container of the given kind built from
// entries in order. Keys are normalized per the container kind, and a
// later duplicate key overwrites the earlier one in place.
func FromEntries(kind Kind, entries ...Entry) *Value {
	res := emptyContainer(kind)
	c, _ := AsContainer(res)
	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}
	return res
}

// NewResource returns a Resource value wrapping an open handle of the
// given kind, with a fresh identity.
func NewResource(kind string, handle any) *Value {
	return &Value{kind: ResourceKind, res: &Resource{id: nextID(), resKind: kind, handle: handle}}
}

// NewCallable returns a Callable value wrapping fn, with a fresh
// identity. When fn is a Go func, its source location is resolved for
// display.
func NewCallable(fn any) *Value {
	c := &Callable{id: nextID(), fn: fn}
	if fn != nil {
		rv := reflect.ValueOf(fn)
		if rv.Kind() == reflect.Func && !rv.IsNil() {
			if f := runtime.FuncForPC(rv.Pointer()); f != nil {
				c.file, c.line = f.FileLine(rv.Pointer())
			}
		}
	}
	return &Value{kind: CallableKind, call: c}
}

// NewOpaque returns an Opaque value wrapping host, with a fresh
// identity. The host's capabilities are detected here, once, by
// interface assertion.
func NewOpaque(host any) *Value {
	return &Value{kind: OpaqueKind, host: host, id: nextID(), caps: capabilitiesOf(host)}
}

// Kind returns the value's kind. A nil *Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return NullKind
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.Kind() == NullKind }

// Bool returns the bool payload, or false for other kinds.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	return v.boolVal
}

// Int returns the int payload, or 0 for other kinds.
func (v *Value) Int() int64 {
	if v == nil {
		return 0
	}
	return v.intVal
}

// Float returns the float payload, or 0 for other kinds.
func (v *Value) Float() float64 {
	if v == nil {
		return 0
	}
	return v.floatVal
}

// Str returns the string payload, or "" for other kinds.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}
	return v.strVal
}

// Entries returns the container's live entry slice. Mutating the
// returned entries mutates the container. Non-containers return nil.
func (v *Value) Entries() []Entry {
	if v == nil {
		return nil
	}
	return v.entries
}

// Len returns the entry count of a List or Struct, and 0 for every
// other kind. See Length for the capability-aware count.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// Host returns the wrapped Go value of an Opaque, or nil.
func (v *Value) Host() any {
	if v == nil {
		return nil
	}
	return v.host
}

// Resource returns the Resource payload, or nil for other kinds.
func (v *Value) Resource() *Resource {
	if v == nil {
		return nil
	}
	return v.res
}

// Callable returns the Callable payload, or nil for other kinds.
func (v *Value) Callable() *Callable {
	if v == nil {
		return nil
	}
	return v.call
}

// ID returns the identity of an Opaque, Resource or Callable value,
// assigned once at construction, and 0 for other kinds.
func (v *Value) ID() int64 {
	switch v.Kind() {
	case OpaqueKind:
		return v.id
	case ResourceKind:
		return v.res.id
	case CallableKind:
		return v.call.id
	}
	return 0
}

// Can reports whether an Opaque value's host was detected to expose
// all of the given capabilities.
func (v *Value) Can(c Capability) bool {
	if v == nil {
		return false
	}
	return v.caps&c == c
}

func orNull(v *Value) *Value {
	if v == nil {
		return Null()
	}
	return v
}
