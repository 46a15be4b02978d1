// Package dyn provides operations over dynamically shaped values:
// structural matching, diffing, patching, merging, flattening and
// querying.
//
// # Usage
//
//	doc, _ := goval.UnmarshalJSON(data)
//
//	// Structural pattern match, Null as wildcard
//	ok := dyn.Match(doc, pattern)
//
//	// Path/leaf decomposition and back
//	entries := dyn.Flatten(doc)
//	rebuilt := dyn.Unflatten(entries, val.StructKind)
//
//	// Structural diff and RFC 6902 patching
//	deltas := dyn.Diff(before, after)
//	patched, err := dyn.ApplyPatch(doc, patchJSON)
//
//	// Filter flattened entries with an expression
//	hits, err := dyn.Select(doc, `kind == "int" && value > 3`)
//
// The value model itself lives in val, rendering in dump, Go and
// JSON/YAML interop in goval.
//
// # Related Packages
//
//   - github.com/signadot/go-dyn/val - value model and navigation
//   - github.com/signadot/go-dyn/dump - debug rendering
//   - github.com/signadot/go-dyn/goval - Go bridge
package dyn
