package dyn

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/go-dyn/debug"
	"github.com/signadot/go-dyn/goval"
	"github.com/signadot/go-dyn/val"
)

// ApplyPatch applies an RFC 6902 JSON patch to v and returns the
// patched value. The document round-trips through the goval JSON
// bridge, so v must be JSON-representable; container kinds come back
// as the bridge maps them. v itself is not modified.
func ApplyPatch(v *val.Value, patch []byte) (*val.Value, error) {
	if debug.Patch() {
		debug.Logf("json-patch on %v\n", v)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := goval.MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return goval.UnmarshalJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to v, with the same
// JSON round-trip as ApplyPatch.
func MergePatch(v *val.Value, patch []byte) (*val.Value, error) {
	if debug.Patch() {
		debug.Logf("merge-patch on %v\n", v)
	}
	d, err := goval.MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return goval.UnmarshalJSON(out)
}
