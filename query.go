package dyn

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/go-dyn/debug"
	"github.com/signadot/go-dyn/goval"
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// Select filters v's flattened entries with an expression, compiled
// once and run per entry. The expression sees path (the textual
// path), key (the last key, int or string), value (the leaf as a
// plain Go value) and kind (the kind name), plus get(path) and
// exists(path) over the whole of v. Entries whose result is truthy
// are kept, in flatten order.
func Select(v *val.Value, expression string) ([]PathValue, error) {
	if debug.Query() {
		debug.Logf("select %q on %v\n", expression, v)
	}
	prg, err := expr.Compile(expression, exprOpts(v)...)
	if err != nil {
		return nil, fmt.Errorf("compile expression: %w", err)
	}
	var res []PathValue
	for _, pv := range Flatten(v) {
		env := map[string]any{
			"path":  pv.Path.String(),
			"key":   lastKey(pv.Path),
			"value": goval.ToGo(pv.Value),
			"kind":  pv.Value.Kind().String(),
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("run expression: %w", err)
		}
		if val.Truth(goval.FromGo(out)) {
			res = append(res, pv)
		}
	}
	return res, nil
}

func exprOpts(root *val.Value) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			p, err := keypath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return goval.ToGo(val.Get(root, p)), nil
		},
			new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			p, err := keypath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return val.Exists(root, p), nil
		},
			new(func(string) bool)),
	}
}

func lastKey(p keypath.Path) any {
	if p.IsEmpty() {
		return nil
	}
	_, last := p.RSplit()
	if last.IsInt() {
		return last.Int()
	}
	return last.Name()
}
