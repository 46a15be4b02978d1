package val

import (
	"strings"

	"github.com/signadot/go-dyn/val/keypath"
)

// Compare orders any two values deterministically: first by kind rank
// (the Kind declaration order), then within a kind by payload.
// Containers compare entry by entry, then by entry count. Handles
// compare by identity. The result is negative, zero or positive.
func Compare(a, b *Value) int {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return int(ka) - int(kb)
	}
	switch ka {
	case NullKind:
		return 0
	case BoolKind:
		return compareBool(a.boolVal, b.boolVal)
	case IntKind:
		return compareInt64(a.intVal, b.intVal)
	case FloatKind:
		switch {
		case a.floatVal < b.floatVal:
			return -1
		case a.floatVal > b.floatVal:
			return 1
		}
		return 0
	case StringKind:
		return strings.Compare(a.strVal, b.strVal)
	case ResourceKind:
		return compareInt64(a.res.id, b.res.id)
	case CallableKind:
		return compareInt64(a.call.id, b.call.id)
	case ListKind, StructKind:
		return compareEntries(a, b)
	case OpaqueKind:
		return compareInt64(a.id, b.id)
	}
	return 0
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case x:
		return 1
	}
	return -1
}

func compareInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// compareEntries orders containers by pairwise keys and values in
// entry order, shorter first on a tie.
func compareEntries(a, b *Value) int {
	n := min(len(a.entries), len(b.entries))
	for i := 0; i < n; i++ {
		ea, eb := a.entries[i], b.entries[i]
		if c := compareKey(ea.Key, eb.Key); c != 0 {
			return c
		}
		if c := Compare(ea.Value, eb.Value); c != 0 {
			return c
		}
	}
	return len(a.entries) - len(b.entries)
}

// compareKey orders integer keys before string keys, then within each
// form naturally.
func compareKey(x, y keypath.Key) int {
	if x.IsInt() != y.IsInt() {
		if x.IsInt() {
			return -1
		}
		return 1
	}
	if x.IsInt() {
		return x.Int() - y.Int()
	}
	return strings.Compare(x.Name(), y.Name())
}
