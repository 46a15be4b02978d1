package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/go-dyn/dump"
	"github.com/signadot/go-dyn/val"
)

// Logf writes to stderr. Value args render through dump in compact
// form, plain Go aggregates through indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *val.Value:
			args[i] = dump.String(x, dump.Compact())
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
