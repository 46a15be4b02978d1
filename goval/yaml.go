package goval

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// MarshalYAML renders v as YAML, keeping entry order. The container
// mapping matches MarshalJSON. Handle kinds are not representable and
// return an error.
func MarshalYAML(v *val.Value) ([]byte, error) {
	tree, err := toOrdered(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

// UnmarshalYAML parses YAML into a Value, keeping mapping member
// order. A mapping with any integer key becomes a List, otherwise a
// Struct. Sequences become Lists.
func UnmarshalYAML(data []byte) (*val.Value, error) {
	return unmarshalOrdered(data)
}

// toOrdered builds the ordered-map tree the YAML encoder keeps in
// document order.
func toOrdered(v *val.Value) (any, error) {
	switch v.Kind() {
	case val.NullKind:
		return nil, nil
	case val.BoolKind:
		return v.Bool(), nil
	case val.IntKind:
		return v.Int(), nil
	case val.FloatKind:
		return v.Float(), nil
	case val.StringKind:
		return v.Str(), nil
	case val.ListKind:
		if es := v.Entries(); isRun(es) {
			out := make([]any, len(es))
			for i, e := range es {
				child, err := toOrdered(e.Value)
				if err != nil {
					return nil, err
				}
				out[i] = child
			}
			return out, nil
		}
		return toOrderedMap(v)
	case val.StructKind:
		return toOrderedMap(v)
	}
	return nil, fmt.Errorf("cannot marshal %s to YAML", v.Kind())
}

func toOrderedMap(v *val.Value) (yaml.MapSlice, error) {
	es := v.Entries()
	out := make(yaml.MapSlice, 0, len(es))
	for _, e := range es {
		child, err := toOrdered(e.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, yaml.MapItem{Key: e.Key.Name(), Value: child})
	}
	return out, nil
}

func unmarshalOrdered(data []byte) (*val.Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return fromOrdered(raw), nil
}

func fromOrdered(raw any) *val.Value {
	switch x := raw.(type) {
	case yaml.MapSlice:
		kind := val.StructKind
		for _, item := range x {
			if _, ok := itemKey(item.Key); ok {
				kind = val.ListKind
				break
			}
		}
		out := val.FromEntries(kind)
		c, _ := val.AsContainer(out)
		for _, item := range x {
			if n, ok := itemKey(item.Key); ok {
				c.Set(intMapKey(n), fromOrdered(item.Value))
				continue
			}
			c.Set(keypath.StringKey(fmt.Sprintf("%v", item.Key)), fromOrdered(item.Value))
		}
		return out
	case []any:
		out := val.NewList()
		c, _ := val.AsContainer(out)
		for i, e := range x {
			c.Set(keypath.IntKey(i), fromOrdered(e))
		}
		return out
	}
	return FromGo(raw)
}

// itemKey extracts a decoded integer mapping key.
func itemKey(k any) (int64, bool) {
	switch n := k.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	}
	return 0, false
}
