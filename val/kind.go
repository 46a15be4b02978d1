package val

import "fmt"

// Kind discriminates the payload a Value carries. The declaration
// order is also the rank used by Compare to order values of different
// kinds.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ResourceKind
	CallableKind
	ListKind
	StructKind
	OpaqueKind
)

// Kinds returns all kinds in rank order.
func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		ResourceKind,
		CallableKind,
		ListKind,
		StructKind,
		OpaqueKind,
	}
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ResourceKind:
		return "resource"
	case CallableKind:
		return "callable"
	case ListKind:
		return "list"
	case StructKind:
		return "struct"
	case OpaqueKind:
		return "opaque"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	name := string(d)
	for _, kind := range Kinds() {
		if kind.String() == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", name)
}

// IsLeaf reports whether the kind never holds entries of its own.
// Opaque counts as a leaf kind; whether a particular Opaque value can
// be navigated depends on its host's capabilities, not on its kind.
func (k Kind) IsLeaf() bool {
	return k != ListKind && k != StructKind
}
