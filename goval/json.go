package goval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/go-dyn/val"
)

// MarshalJSON renders v as JSON, keeping entry order. A List whose
// keys count 0..n-1 becomes an array; any other List, and every
// Struct, becomes an object with integer keys folded to decimal
// names. Handle kinds and non-finite floats are not representable
// and return an error.
func MarshalJSON(v *val.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *val.Value) error {
	switch v.Kind() {
	case val.NullKind:
		buf.WriteString("null")
	case val.BoolKind:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case val.IntKind:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case val.FloatKind:
		d, err := json.Marshal(v.Float())
		if err != nil {
			return err
		}
		buf.Write(d)
	case val.StringKind:
		d, err := json.Marshal(v.Str())
		if err != nil {
			return err
		}
		buf.Write(d)
	case val.ListKind:
		if es := v.Entries(); isRun(es) {
			buf.WriteByte('[')
			for i, e := range es {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSON(buf, e.Value); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
			return nil
		}
		return writeJSONObject(buf, v)
	case val.StructKind:
		return writeJSONObject(buf, v)
	default:
		return fmt.Errorf("cannot marshal %s to JSON", v.Kind())
	}
	return nil
}

func writeJSONObject(buf *bytes.Buffer, v *val.Value) error {
	buf.WriteByte('{')
	for i, e := range v.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(e.Key.Name())
		if err != nil {
			return err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if err := writeJSON(buf, e.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON parses JSON into a Value, keeping object member
// order. Objects become Structs, arrays become Lists. JSON is parsed
// through the YAML decoder, of which it is a subset.
func UnmarshalJSON(data []byte) (*val.Value, error) {
	return unmarshalOrdered(data)
}
