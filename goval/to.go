package goval

import (
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// ToGo converts a Value to a plain Go value. Scalars map to nil,
// bool, int64, float64 and string. A List whose keys count 0..n-1
// becomes []any; any other List, and every Struct, becomes
// map[string]any with integer keys folded to decimal names. Map
// results lose entry order. Handle kinds unwrap to what they carry:
// the resource handle, the callable's func, the Opaque host.
func ToGo(v *val.Value) any {
	switch v.Kind() {
	case val.NullKind:
		return nil
	case val.BoolKind:
		return v.Bool()
	case val.IntKind:
		return v.Int()
	case val.FloatKind:
		return v.Float()
	case val.StringKind:
		return v.Str()
	case val.ListKind:
		if es := v.Entries(); isRun(es) {
			out := make([]any, len(es))
			for i, e := range es {
				out[i] = ToGo(e.Value)
			}
			return out
		}
		return toGoMap(v)
	case val.StructKind:
		return toGoMap(v)
	case val.ResourceKind:
		return v.Resource().Handle()
	case val.CallableKind:
		return v.Callable().Fn()
	case val.OpaqueKind:
		return v.Host()
	}
	return nil
}

// isRun reports whether keys count 0, 1, 2, ... from the front.
func isRun(es []val.Entry) bool {
	for i, e := range es {
		if e.Key != keypath.IntKey(i) {
			return false
		}
	}
	return true
}

func toGoMap(v *val.Value) map[string]any {
	es := v.Entries()
	out := make(map[string]any, len(es))
	for _, e := range es {
		out[e.Key.Name()] = ToGo(e.Value)
	}
	return out
}
