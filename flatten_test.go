package dyn

import (
	"testing"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

func TestFlatten(t *testing.T) {
	doc := mustVal(t, `{"a":{"b":1,"c":[2,3]},"d":null}`)
	got := Flatten(doc)
	want := []struct {
		path  string
		value *val.Value
	}{
		{"a.b", val.FromInt(1)},
		{"a.c[0]", val.FromInt(2)},
		{"a.c[1]", val.FromInt(3)},
		{"d", val.Null()},
	}
	if len(got) != len(want) {
		t.Fatalf("Flatten() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Path.String() != w.path {
			t.Errorf("entry %d path = %s, want %s", i, got[i].Path, w.path)
		}
		if !val.StrictEqual(got[i].Value, w.value) {
			t.Errorf("entry %d value = %v, want %v", i, got[i].Value, w.value)
		}
	}
}

func TestFlatten_LeavesAlias(t *testing.T) {
	doc := mustVal(t, `{"a":{"b":1}}`)
	got := Flatten(doc)
	if got[0].Value != val.Get(doc, keypath.MustParse("a.b")) {
		t.Error("flattened leaves should alias the source")
	}
}

func TestFlatten_EmptyContainer(t *testing.T) {
	doc := mustVal(t, `{"a":[],"b":1}`)
	got := Flatten(doc)
	if len(got) != 2 {
		t.Fatalf("Flatten() returned %d entries, want 2", len(got))
	}
	if got[0].Path.String() != "a" || got[0].Value.Kind() != val.ListKind {
		t.Errorf("entry 0 = (%s, %v), want the empty list at a", got[0].Path, got[0].Value.Kind())
	}
}

func TestFlatten_Scalar(t *testing.T) {
	got := Flatten(val.FromInt(7))
	if len(got) != 1 || !got[0].Path.IsEmpty() {
		t.Fatalf("Flatten(scalar) = %v, want one entry at the empty path", got)
	}
}

func TestUnflatten(t *testing.T) {
	entries := []PathValue{
		{Path: keypath.MustParse("a.b"), Value: val.FromInt(1)},
		{Path: keypath.MustParse("a.c"), Value: val.FromInt(2)},
		{Path: keypath.MustParse("d"), Value: val.Null()},
	}
	got := Unflatten(entries, val.StructKind)
	want := mustVal(t, `{"a":{"b":1,"c":2},"d":null}`)
	if !val.StrictEqual(got, want) {
		t.Errorf("Unflatten() = %v, want %v", got, want)
	}
}

func TestUnflatten_LaterOverwrites(t *testing.T) {
	entries := []PathValue{
		{Path: keypath.MustParse("a.b"), Value: val.FromInt(1)},
		{Path: keypath.MustParse("a"), Value: val.FromInt(9)},
	}
	got := Unflatten(entries, val.StructKind)
	if !val.StrictEqual(got, mustVal(t, `{"a":9}`)) {
		t.Errorf("Unflatten() = %v, want {\"a\": 9}", got)
	}
}

func TestFlatten_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"flat", `{"a":1,"b":"x"}`},
		{"nested", `{"a":{"b":{"c":1}},"d":true}`},
		{"with empty containers", `{"a":{},"b":{"c":{}}}`},
		{"scalar root", `5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustVal(t, tt.doc)
			back := Unflatten(Flatten(doc), val.StructKind)
			if !val.StrictEqual(back, doc) {
				t.Errorf("round trip = %v, want %v", back, doc)
			}
		})
	}

	// List intermediates fold to the unflatten kind; the entries
	// survive leniently.
	doc := mustVal(t, `{"a":[1,2]}`)
	back := Unflatten(Flatten(doc), val.StructKind)
	if !val.Equal(back, doc) {
		t.Errorf("mixed-kind round trip = %v, want lenient equal to %v", back, doc)
	}
	if val.StrictEqual(back, doc) {
		t.Error("mixed-kind round trip should fold the list to a struct")
	}
}
