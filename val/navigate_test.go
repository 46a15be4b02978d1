package val

import (
	"testing"

	"github.com/signadot/go-dyn/val/keypath"
)

func kp(s string) keypath.Path { return keypath.MustParse(s) }

func TestSetGet(t *testing.T) {
	tests := []struct {
		name string
		root func() *Value
		path string
		kind Kind
	}{
		{"list root", NewList, "a.b[0]", ListKind},
		{"struct root", NewStruct, "a.b.c", StructKind},
		{"struct root list children", NewStruct, "a.b", ListKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.root()
			want := FromInt(2)
			if !Set(root, kp(tt.path), want, tt.kind) {
				t.Fatalf("Set(%s) = false", tt.path)
			}
			if got := Get(root, kp(tt.path)); !Same(got, want) {
				t.Errorf("Get(%s) = %v kind, want the stored value", tt.path, got.Kind())
			}
			if !Exists(root, kp(tt.path)) {
				t.Errorf("Exists(%s) = false after Set", tt.path)
			}
		})
	}
}

func TestSet_CreatesContainers(t *testing.T) {
	root := NewStruct()
	if !Set(root, kp("a.b"), FromInt(2), ListKind) {
		t.Fatal("Set(a.b) = false")
	}
	a := Get(root, kp("a"))
	if a.Kind() != ListKind {
		t.Errorf("created intermediate kind = %v, want list", a.Kind())
	}
	// the last key lands in the created List under its string form
	if got := Get(root, kp("a.b")).Int(); got != 2 {
		t.Errorf("Get(a.b) = %d, want 2", got)
	}

	root = NewStruct()
	Set(root, kp("x.y"), FromInt(1), StructKind)
	if got := Get(root, kp("x")).Kind(); got != StructKind {
		t.Errorf("created intermediate kind = %v, want struct", got)
	}
}

func TestSet_OverwritesScalarStep(t *testing.T) {
	root := NewStruct()
	Set(root, kp("a"), FromString("leaf"), ListKind)
	if !Set(root, kp("a.b"), FromInt(1), ListKind) {
		t.Fatal("Set(a.b) over scalar a = false")
	}
	if got := Get(root, kp("a")).Kind(); got != ListKind {
		t.Errorf("a kind = %v, want list after overwrite", got)
	}
	if got := Get(root, kp("a.b")).Int(); got != 1 {
		t.Errorf("Get(a.b) = %d, want 1", got)
	}
}

func TestSet_KeepsContainerStepKind(t *testing.T) {
	root := NewStruct()
	Set(root, kp("a.b"), FromInt(1), StructKind)
	// a is already a container; asking for List intermediates must not
	// replace it
	Set(root, kp("a.c"), FromInt(2), ListKind)
	if got := Get(root, kp("a")).Kind(); got != StructKind {
		t.Errorf("a kind = %v, want struct preserved", got)
	}
	if Get(root, kp("a.b")).Int() != 1 || Get(root, kp("a.c")).Int() != 2 {
		t.Error("sibling writes clobbered each other")
	}
}

func TestSet_Failures(t *testing.T) {
	if Set(FromInt(1), kp("a"), FromInt(2), ListKind) {
		t.Error("Set on scalar root = true")
	}
	if Set(NewList(), nil, FromInt(2), ListKind) {
		t.Error("Set with empty path = true")
	}
	if Set(NewOpaque(struct{}{}), kp("a"), FromInt(2), ListKind) {
		t.Error("Set on plain opaque = true")
	}
}

func TestGet_Absent(t *testing.T) {
	root := NewStruct()
	Set(root, kp("a"), FromInt(1), StructKind)

	tests := []string{"b", "a.b", "a.b.c", "[0]"}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			got := Get(root, kp(path))
			if !got.IsNull() {
				t.Errorf("Get(%s) kind = %v, want null", path, got.Kind())
			}
			if Exists(root, kp(path)) {
				t.Errorf("Exists(%s) = true", path)
			}
		})
	}

	if got := Get(root, nil); got != root {
		t.Error("Get with empty path did not return root")
	}
	if Exists(root, nil) {
		t.Error("Exists with empty path = true")
	}
}

func TestGet_Aliases(t *testing.T) {
	root := NewStruct()
	Set(root, kp("a.b"), FromInt(1), StructKind)
	a := Get(root, kp("a"))
	Set(a, kp("c"), FromInt(3), StructKind)
	if got := Get(root, kp("a.c")).Int(); got != 3 {
		t.Errorf("mutation through alias not visible: Get(a.c) = %d, want 3", got)
	}
}

func TestNullValueExists(t *testing.T) {
	root := NewList()
	Set(root, kp("k"), Null(), ListKind)
	if !Exists(root, kp("k")) {
		t.Error("Exists(k) = false for a present null")
	}
	if got := Get(root, kp("k")); !got.IsNull() {
		t.Errorf("Get(k) kind = %v, want null", got.Kind())
	}
}

func TestUnset(t *testing.T) {
	root := NewStruct()
	Set(root, kp("a.b"), FromInt(1), StructKind)

	if !Unset(root, kp("a.b")) {
		t.Error("Unset(a.b) = false")
	}
	if Exists(root, kp("a.b")) {
		t.Error("Exists(a.b) = true after Unset")
	}
	if !Exists(root, kp("a")) {
		t.Error("Unset removed the parent too")
	}

	// unsetting what is not there is already done
	if !Unset(root, kp("a.b")) {
		t.Error("Unset(a.b) again = false")
	}
	if !Unset(root, kp("no.such.path")) {
		t.Error("Unset(no.such.path) = false")
	}
	if !Unset(FromInt(1), kp("a")) {
		t.Error("Unset on scalar root = false")
	}
	if !Unset(root, nil) {
		t.Error("Unset with empty path = false")
	}
}

func TestUnset_MovesReAddToEnd(t *testing.T) {
	root := NewList()
	Set(root, kp("a"), FromInt(1), ListKind)
	Set(root, kp("b"), FromInt(2), ListKind)
	Unset(root, kp("a"))
	Set(root, kp("a"), FromInt(3), ListKind)

	keys := Keys(root)
	if len(keys) != 2 || keys[0].Name() != "b" || keys[1].Name() != "a" {
		t.Errorf("Keys() = %v, want [b a]", keys)
	}
}

func TestStructKeyFolding(t *testing.T) {
	root := NewStruct()
	if !Set(root, keypath.Path{keypath.IntKey(3)}, FromInt(1), StructKind) {
		t.Fatal("Set([3]) on struct = false")
	}
	if !Exists(root, kp(`"3"`)) {
		t.Error(`Exists("3") = false, want int key folded to field name`)
	}
	if got := Get(root, keypath.Path{keypath.IntKey(3)}).Int(); got != 1 {
		t.Errorf("Get([3]) = %d, want 1 via folding", got)
	}

	// Lists keep integer and string keys distinct
	l := NewList()
	Set(l, keypath.Path{keypath.IntKey(3)}, FromInt(1), ListKind)
	if Exists(l, kp(`"3"`)) {
		t.Error(`list Exists("3") = true, want [3] distinct from "3"`)
	}
}

func TestNavigate_Hooks(t *testing.T) {
	b := &bag{}
	root := NewStruct()
	Set(root, kp("obj"), NewOpaque(b), StructKind)

	if !Set(root, kp("obj.x"), FromInt(7), StructKind) {
		t.Fatal("Set(obj.x) through hooks = false")
	}
	if got := Get(root, kp("obj.x")).Int(); got != 7 {
		t.Errorf("Get(obj.x) = %d, want 7", got)
	}
	if !Exists(root, kp("obj.x")) {
		t.Error("Exists(obj.x) = false")
	}
	if !Unset(root, kp("obj.x")) {
		t.Error("Unset(obj.x) = false")
	}
	if Exists(root, kp("obj.x")) {
		t.Error("Exists(obj.x) = true after Unset")
	}
}

func TestNavigate_FrozenHost(t *testing.T) {
	root := NewOpaque(frozen{x: FromInt(9)})

	if got := Get(root, kp("x")).Int(); got != 9 {
		t.Errorf("Get(x) = %d, want 9", got)
	}
	if Set(root, kp("x"), FromInt(1), ListKind) {
		t.Error("Set on frozen host = true")
	}
	if got := Get(root, kp("x")).Int(); got != 9 {
		t.Errorf("declined Set changed the value: %d", got)
	}
	// the host still reports x present, so the unset did not take
	if Unset(root, kp("x")) {
		t.Error("Unset on frozen host = true")
	}
}

func TestPathStringVariants(t *testing.T) {
	root := NewStruct()
	if _, err := SetPath(root, "a.b", FromInt(1), StructKind); err != nil {
		t.Fatalf("SetPath() error = %v", err)
	}
	got, err := GetPath(root, "a.b")
	if err != nil || got.Int() != 1 {
		t.Errorf("GetPath(a.b) = %v, %v", got, err)
	}
	if ok, err := ExistsPath(root, "a.b"); err != nil || !ok {
		t.Errorf("ExistsPath(a.b) = %v, %v", ok, err)
	}
	if ok, err := UnsetPath(root, "a.b"); err != nil || !ok {
		t.Errorf("UnsetPath(a.b) = %v, %v", ok, err)
	}

	if _, err := GetPath(root, "a..b"); err == nil {
		t.Error("GetPath(a..b) error = nil, want parse error")
	}
	if _, err := SetPath(root, "[x]", nil, ListKind); err == nil {
		t.Error("SetPath([x]) error = nil, want parse error")
	}
}
