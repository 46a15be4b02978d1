package val

import "reflect"

// Same reports identity or exact representation equality: the same
// *Value, equal scalars of the same kind, or handles with the same
// identity or the same host. Containers are Same only when they are
// the one value.
func Same(a, b *Value) bool {
	if a == b {
		return true
	}
	ka := a.Kind()
	if ka != b.Kind() {
		return false
	}
	switch ka {
	case NullKind:
		return true
	case BoolKind:
		return a.boolVal == b.boolVal
	case IntKind:
		return a.intVal == b.intVal
	case FloatKind:
		return a.floatVal == b.floatVal
	case StringKind:
		return a.strVal == b.strVal
	case ResourceKind:
		return a.res.id == b.res.id
	case CallableKind:
		return a.call.id == b.call.id || sameHost(a.call.fn, b.call.fn)
	case OpaqueKind:
		return a.id == b.id || sameHost(a.host, b.host)
	}
	return false
}

// sameHost reports whether two host values are the same Go value,
// comparing reference kinds by pointer so uncomparable types are
// safe to pass.
func sameHost(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	rx, ry := reflect.ValueOf(x), reflect.ValueOf(y)
	if rx.Type() != ry.Type() {
		return false
	}
	switch rx.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rx.Pointer() == ry.Pointer()
	case reflect.Slice:
		return rx.Len() == ry.Len() && (rx.Len() == 0 || rx.Pointer() == ry.Pointer())
	}
	if rx.Comparable() {
		return x == y
	}
	return false
}

// Equal reports deep structural equality. Containers are equal when
// they hold equal values under the same keys, regardless of entry
// order and of the List/Struct distinction. A host with the equality
// capability decides for itself. Values of different scalar kinds are
// never equal; a key absent on one side reads as null on the other.
func Equal(a, b *Value) bool { return equal(a, b, false) }

// StrictEqual is Equal with the container kinds required to match, so
// a List never equals a Struct.
func StrictEqual(a, b *Value) bool { return equal(a, b, true) }

func equal(a, b *Value, strict bool) bool {
	if Same(a, b) {
		return true
	}
	if a.Kind() == OpaqueKind && a.Can(CapEqual) {
		return a.host.(Equaler).DynEquals(b)
	}
	if b.Kind() == OpaqueKind && b.Can(CapEqual) {
		return b.host.(Equaler).DynEquals(a)
	}
	if !IsContainer(a) || !IsContainer(b) {
		return false
	}
	if strict && a.Kind() != b.Kind() {
		return false
	}
	if Length(a) != Length(b) {
		return false
	}
	ca, _ := AsContainer(a)
	cb, _ := AsContainer(b)
	for _, k := range ca.Keys() {
		av := orNull(ca.Get(k))
		bv := orNull(cb.Get(k))
		if !equal(av, bv, strict) {
			return false
		}
	}
	return true
}
