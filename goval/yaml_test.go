package goval

import (
	"testing"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

func TestUnmarshalYAML(t *testing.T) {
	got, err := UnmarshalYAML([]byte("b: 1\na: two\n"))
	if err != nil {
		t.Fatalf("UnmarshalYAML() error = %v", err)
	}
	want := entries(val.StructKind, "b", val.FromInt(1), "a", val.FromString("two"))
	if !val.StrictEqual(got, want) {
		t.Errorf("UnmarshalYAML() = %v, want %v", got, want)
	}
	if !keypath.Path(keysOf(got)).Equal(keysOf(want)) {
		t.Errorf("UnmarshalYAML() keys = %v, want %v", keysOf(got), keysOf(want))
	}
}

func TestUnmarshalYAML_IntKeys(t *testing.T) {
	got, err := UnmarshalYAML([]byte("0: x\n2: y\n"))
	if err != nil {
		t.Fatalf("UnmarshalYAML() error = %v", err)
	}
	want := entries(val.ListKind, 0, val.FromString("x"), 2, val.FromString("y"))
	if !val.StrictEqual(got, want) {
		t.Errorf("UnmarshalYAML() = %v, want %v", got, want)
	}
}

func TestUnmarshalYAML_Sequence(t *testing.T) {
	got, err := UnmarshalYAML([]byte("- 1\n- name: n\n"))
	if err != nil {
		t.Fatalf("UnmarshalYAML() error = %v", err)
	}
	if got.Kind() != val.ListKind {
		t.Fatalf("UnmarshalYAML() kind = %v, want list", got.Kind())
	}
	name := val.Get(got, keypath.MustParse("[1].name"))
	if !val.StrictEqual(name, val.FromString("n")) {
		t.Errorf("[1].name = %v, want \"n\"", name)
	}
}

func TestMarshalYAML(t *testing.T) {
	v := entries(val.StructKind, "b", val.FromInt(1), "a", val.FromString("x"))
	got, err := MarshalYAML(v)
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if string(got) != "b: 1\na: x\n" {
		t.Errorf("MarshalYAML() = %q", got)
	}
}

func TestMarshalYAML_NotRepresentable(t *testing.T) {
	if _, err := MarshalYAML(val.NewOpaque(struct{}{})); err == nil {
		t.Error("MarshalYAML() error = nil, want not-representable error")
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	v := entries(val.StructKind,
		"name", val.FromString("ada"),
		"langs", list(val.FromString("go"), val.FromString("ml")),
		"meta", entries(val.StructKind, "active", val.FromBool(true), "score", val.FromFloat(9.5)),
	)
	d, err := MarshalYAML(v)
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatalf("UnmarshalYAML() error = %v", err)
	}
	if !val.StrictEqual(back, v) {
		t.Errorf("round trip = %v, want %v", back, v)
	}
	if !keypath.Path(keysOf(back)).Equal(keysOf(v)) {
		t.Errorf("round trip keys = %v, want %v", keysOf(back), keysOf(v))
	}
}
