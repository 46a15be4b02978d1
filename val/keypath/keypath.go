// Package keypath defines keys and paths for addressing entries in
// nested values, with a textual form like "plan.steps[2].name".
package keypath

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrParse is wrapped by all errors returned from Parse.
var ErrParse = errors.New("invalid path")

// Path is a sequence of keys addressing a nested entry, outermost
// first. The zero value addresses the root.
type Path []Key

// Parse parses the textual form of a path.
//
// Fields are separated by '.', indices are bracketed: "a.b[0].c".
// Field names that are empty, start with a digit or contain
// punctuation must be quoted with single or double quotes, as in
// `a."b.c"[2]`. Parse("") returns an empty path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var p Path
	rest := s
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w %q: missing ']'", ErrParse, s)
			}
			n, err := strconv.Atoi(rest[1:end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w %q: bad index %q", ErrParse, s, rest[1:end])
			}
			p = append(p, IntKey(n))
			rest = rest[end+1:]
			continue
		}
		if len(p) > 0 {
			if rest[0] != '.' {
				return nil, fmt.Errorf("%w %q: expected '.' or '[' before %q", ErrParse, s, rest)
			}
			rest = rest[1:]
			if rest == "" {
				return nil, fmt.Errorf("%w %q: trailing '.'", ErrParse, s)
			}
		} else if rest[0] == '.' {
			return nil, fmt.Errorf("%w %q: leading '.'", ErrParse, s)
		}
		name, n, err := parseField(rest)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrParse, s, err)
		}
		p = append(p, StringKey(name))
		rest = rest[n:]
	}
	return p, nil
}

// parseField parses a bare or quoted field name at the start of s,
// returning the name and the number of bytes consumed.
func parseField(s string) (string, int, error) {
	if s[0] == '"' || s[0] == '\'' {
		return unquotePrefix(s)
	}
	end := strings.IndexAny(s, ".[")
	if end == 0 {
		return "", 0, fmt.Errorf("empty field name")
	}
	if end < 0 {
		end = len(s)
	}
	return s[:end], end, nil
}

// MustParse is Parse for known-good paths. It panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse %q: %v", s, err))
	}
	return p
}

// String renders the path in its textual form. Parse(p.String())
// yields p back for any path.
func (p Path) String() string {
	var b strings.Builder
	for i, k := range p {
		if !k.isInt && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k.String())
	}
	return b.String()
}

// IsEmpty reports whether the path has no keys.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// Split returns the first key and the remaining path. It panics on an
// empty path.
func (p Path) Split() (Key, Path) { return p[0], p[1:] }

// RSplit returns the path without its last key, and the last key. It
// panics on an empty path.
func (p Path) RSplit() (Path, Key) { return p[:len(p)-1], p[len(p)-1] }

// Append returns a new path with keys added at the end. The receiver
// is not modified and no backing storage is shared.
func (p Path) Append(keys ...Key) Path {
	res := make(Path, 0, len(p)+len(keys))
	res = append(res, p...)
	return append(res, keys...)
}

// Equal reports whether two paths hold the same keys in the same
// order.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }
