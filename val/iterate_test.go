package val

import (
	"testing"

	"github.com/signadot/go-dyn/val/keypath"
)

func drain(it Iterator) (keys []keypath.Key, vals []*Value) {
	for ; it.Valid(); it.Next() {
		keys = append(keys, it.Key())
		vals = append(vals, it.Current())
	}
	return keys, vals
}

func TestIterate_Entries(t *testing.T) {
	v := FromEntries(ListKind,
		Entry{Key: keypath.IntKey(0), Value: FromString("a")},
		Entry{Key: keypath.StringKey("k"), Value: FromInt(2)},
	)
	keys, vals := drain(Iterate(v))
	if len(keys) != 2 || keys[0] != keypath.IntKey(0) || keys[1] != keypath.StringKey("k") {
		t.Fatalf("keys = %v", keys)
	}
	if vals[0].Str() != "a" || vals[1].Int() != 2 {
		t.Errorf("values = %v, %v", vals[0], vals[1])
	}

	// Rewind restarts
	it := Iterate(v)
	it.Next()
	it.Rewind()
	if it.Key() != keypath.IntKey(0) {
		t.Errorf("after Rewind: key = %v, want [0]", it.Key())
	}
}

func TestIterate_String(t *testing.T) {
	keys, vals := drain(Iterate(FromString("héllo")))
	if len(keys) != 5 {
		t.Fatalf("character count = %d, want 5", len(keys))
	}
	for i, k := range keys {
		if k != keypath.IntKey(i) {
			t.Errorf("key %d = %v, want [%d]", i, k, i)
		}
	}
	if vals[1].Str() != "é" {
		t.Errorf("character 1 = %q, want é", vals[1].Str())
	}
}

func TestIterate_PlainOpaqueFields(t *testing.T) {
	type point struct{ X, Y int }
	keys, vals := drain(Iterate(NewOpaque(point{X: 1, Y: 2})))
	if len(keys) != 2 || keys[0].Name() != "X" || keys[1].Name() != "Y" {
		t.Fatalf("keys = %v, want X Y", keys)
	}
	if vals[0].Int() != 1 || vals[1].Int() != 2 {
		t.Errorf("values = %v, %v", vals[0].Int(), vals[1].Int())
	}
}

func TestIterate_HostIteratorNotRestarted(t *testing.T) {
	cd := &countdown{n: 3}
	it := Iterate(NewOpaque(cd))
	if it != Iterator(cd) {
		t.Fatal("host iterator was wrapped, want returned as-is")
	}
	// a fresh countdown points past its end until its own Rewind
	if it.Valid() {
		t.Error("Valid() = true before Rewind")
	}
	it.Rewind()
	keys, vals := drain(it)
	if len(vals) != 3 || vals[0].Int() != 3 || vals[2].Int() != 1 {
		t.Fatalf("values = %v", vals)
	}
	if keys[0] != keypath.IntKey(0) {
		t.Errorf("first key = %v, want [0]", keys[0])
	}
}

func TestIterate_NonIterable(t *testing.T) {
	for _, v := range []*Value{Null(), FromInt(1), FromBool(true)} {
		if it := Iterate(v); it.Valid() {
			t.Errorf("Iterate(%v) yields values", v.Kind())
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want int
	}{
		{"null", Null(), 0},
		{"int", FromInt(5), 0},
		{"string chars", FromString("héllo"), 5},
		{"empty string", FromString(""), 0},
		{"list", list(FromInt(1), FromInt(2)), 2},
		{"struct", strct("a", FromInt(1)), 1},
		{"counting host", NewOpaque(sized(11)), 11},
		{"iterating host", NewOpaque(&countdown{n: 4}), 4},
		{"plain opaque", NewOpaque(struct{ A, B int }{}), 2},
		{"resource", NewResource("file", nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.v); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want bool
	}{
		{"null", Null(), false},
		{"false", FromBool(false), false},
		{"true", FromBool(true), true},
		{"zero int", FromInt(0), false},
		{"int", FromInt(-1), true},
		{"zero float", FromFloat(0), false},
		{"float", FromFloat(0.1), true},
		{"empty string", FromString(""), false},
		{"string", FromString("0"), true},
		{"empty list", NewList(), false},
		{"list", list(Null()), true},
		{"empty struct", NewStruct(), false},
		{"opaque", NewOpaque(struct{}{}), true},
		{"resource", NewResource("conn", nil), true},
		{"callable", NewCallable(sampleFn), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truth(tt.v); got != tt.want {
				t.Errorf("Truth() = %v, want %v", got, tt.want)
			}
		})
	}
}
