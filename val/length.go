package val

import "unicode/utf8"

// Length is the capability-aware element count of v. Strings count
// characters, containers count entries, a counting host is asked via
// DynLen, an iterating host is walked from a rewind, a plain Opaque
// counts its enumerable fields. Scalars and handles have length 0.
func Length(v *Value) int {
	switch v.Kind() {
	case StringKind:
		return utf8.RuneCountInString(v.strVal)
	case ListKind, StructKind:
		return len(v.entries)
	case OpaqueKind:
		if c, ok := v.host.(Counter); ok {
			return c.DynLen()
		}
		if it, ok := v.host.(Iterator); ok {
			n := 0
			for it.Rewind(); it.Valid(); it.Next() {
				n++
			}
			return n
		}
		return len(OpaqueFields(v))
	}
	return 0
}

// Truth is the value's truthiness: null and zero scalars are false,
// containers are true when non-empty, handles are always true.
func Truth(v *Value) bool {
	switch v.Kind() {
	case NullKind:
		return false
	case BoolKind:
		return v.boolVal
	case IntKind:
		return v.intVal != 0
	case FloatKind:
		return v.floatVal != 0
	case StringKind:
		return v.strVal != ""
	case ListKind, StructKind:
		return len(v.entries) > 0
	}
	return true
}
