// Package goval bridges Values and native Go values.
//
// # Usage
//
//	// Build a Value from any Go value
//	v := goval.FromGo(map[string]any{"name": "ada", "age": 36})
//
//	// And back to plain Go
//	m := goval.ToGo(v).(map[string]any)
//
//	// Ordered JSON / YAML round-trips
//	d, err := goval.MarshalJSON(v)
//	v2, err := goval.UnmarshalJSON(d)
//
//	// Depth-limited container conversion
//	lst := goval.ToList(v, 2)
//
// FromGo and ToGo are total. JSON and YAML marshaling keep entry
// order, which encoding/json cannot do for maps, and fail only on
// values those formats cannot carry.
//
// # Related Packages
//
//   - github.com/signadot/go-dyn/val - the value model
//   - github.com/signadot/go-dyn/dump - debug rendering
package goval
