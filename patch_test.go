package dyn

import (
	"testing"

	"github.com/signadot/go-dyn/val"
)

func TestApplyPatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "add",
			doc:   `{"a":1}`,
			patch: `[{"op":"add","path":"/b","value":2}]`,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "replace",
			doc:   `{"a":1}`,
			patch: `[{"op":"replace","path":"/a","value":{"x":true}}]`,
			want:  `{"a":{"x":true}}`,
		},
		{
			name:  "remove",
			doc:   `{"a":1,"b":2}`,
			patch: `[{"op":"remove","path":"/b"}]`,
			want:  `{"a":1}`,
		},
		{
			name:  "array insert",
			doc:   `{"xs":[1,3]}`,
			patch: `[{"op":"add","path":"/xs/1","value":2}]`,
			want:  `{"xs":[1,2,3]}`,
		},
		{
			name:  "move",
			doc:   `{"a":1,"b":{}}`,
			patch: `[{"op":"move","from":"/a","path":"/b/a"}]`,
			want:  `{"b":{"a":1}}`,
		},
		{
			name:  "test passes",
			doc:   `{"a":1}`,
			patch: `[{"op":"test","path":"/a","value":1}]`,
			want:  `{"a":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPatch(mustVal(t, tt.doc), []byte(tt.patch))
			if err != nil {
				t.Fatalf("ApplyPatch() error: %v", err)
			}
			// The patch round-trip may reorder keys, so compare
			// without order.
			if want := mustVal(t, tt.want); !val.StrictEqual(got, want) {
				t.Errorf("ApplyPatch() = %v, want %v", got, want)
			}
		})
	}
}

func TestApplyPatch_InputUntouched(t *testing.T) {
	doc := mustVal(t, `{"a":1}`)
	if _, err := ApplyPatch(doc, []byte(`[{"op":"add","path":"/b","value":2}]`)); err != nil {
		t.Fatalf("ApplyPatch() error: %v", err)
	}
	if !val.StrictEqual(doc, mustVal(t, `{"a":1}`)) {
		t.Errorf("input modified: %v", doc)
	}
}

func TestApplyPatch_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   *val.Value
		patch string
	}{
		{
			name:  "bad patch",
			doc:   val.FromInt(1),
			patch: `{"op":"add"}`,
		},
		{
			name:  "remove absent",
			doc:   mustVal(t, `{"a":1}`),
			patch: `[{"op":"remove","path":"/b"}]`,
		},
		{
			name:  "test fails",
			doc:   mustVal(t, `{"a":1}`),
			patch: `[{"op":"test","path":"/a","value":2}]`,
		},
		{
			name:  "unrepresentable doc",
			doc:   val.NewOpaque(make(chan int)),
			patch: `[{"op":"add","path":"/a","value":1}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ApplyPatch(tt.doc, []byte(tt.patch)); err == nil {
				t.Error("ApplyPatch() succeeded, want error")
			}
		})
	}
}

func TestMergePatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "set and delete",
			doc:   `{"a":1,"b":2}`,
			patch: `{"b":null,"c":3}`,
			want:  `{"a":1,"c":3}`,
		},
		{
			name:  "nested merge",
			doc:   `{"o":{"x":1}}`,
			patch: `{"o":{"y":2}}`,
			want:  `{"o":{"x":1,"y":2}}`,
		},
		{
			name:  "arrays replaced",
			doc:   `{"xs":[1,2]}`,
			patch: `{"xs":[9]}`,
			want:  `{"xs":[9]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergePatch(mustVal(t, tt.doc), []byte(tt.patch))
			if err != nil {
				t.Fatalf("MergePatch() error: %v", err)
			}
			if want := mustVal(t, tt.want); !val.StrictEqual(got, want) {
				t.Errorf("MergePatch() = %v, want %v", got, want)
			}
		})
	}
}

func TestMergePatch_BadPatch(t *testing.T) {
	if _, err := MergePatch(mustVal(t, `{}`), []byte(`{`)); err == nil {
		t.Error("MergePatch() succeeded, want error")
	}
}
