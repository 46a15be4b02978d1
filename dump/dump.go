package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// DefaultIndent is the indent unit used when no option overrides it.
const DefaultIndent = "  "

// State carries one dump's layout and color settings.
type State struct {
	w      io.Writer
	indent string
	depth  int
	color  func(val.Kind, ColorAttr, string) string
}

// Option adjusts a State before dumping starts.
type Option func(*State)

// Indent sets the per-level indent unit. The empty unit switches to
// the single-line compact form.
func Indent(unit string) Option {
	return func(s *State) { s.indent = unit }
}

// Compact is Indent("").
func Compact() Option { return Indent("") }

// Depth sets the nesting level the dump starts at, shifting the whole
// block right by that many indent units.
func Depth(n int) Option {
	return func(s *State) { s.depth = n }
}

// WithColors renders every literal class through the palette.
func WithColors(c *Colors) Option {
	return func(s *State) { s.color = c.Color }
}

// Dump writes v's textual form to w.
//
// Containers render between brackets, one entry per line in pretty
// mode, separated by ", " in compact mode. Keys print as "<key> => ".
// Entries whose integer keys count 0, 1, 2, ... from the front elide
// the key, and the first break in that run switches keys on for every
// entry after it. Structs carry a "(struct) " marker before their
// bracket. In pretty mode the dump ends in a line feed.
//
// A host with the dump capability renders itself via DynDump in place
// of its identity tag.
func Dump(v *val.Value, w io.Writer, opts ...Option) error {
	s := &State{w: w, indent: DefaultIndent}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.pad(s.depth); err != nil {
		return err
	}
	if err := s.value(v, s.depth); err != nil {
		return err
	}
	return s.lf()
}

// String renders v to a string. It panics on a writer error, which a
// strings.Builder never produces.
func String(v *val.Value, opts ...Option) string {
	var b strings.Builder
	if err := Dump(v, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}

func (s *State) value(v *val.Value, depth int) error {
	if v.Kind() == val.OpaqueKind && v.Can(val.CapDump) {
		return s.write(v.Host().(val.Dumper).DynDump(s.indent, depth))
	}
	switch v.Kind() {
	case val.ListKind, val.StructKind:
		return s.container(v, depth)
	}
	return s.leaf(v)
}

func (s *State) container(v *val.Value, depth int) error {
	kind := v.Kind()
	if kind == val.StructKind {
		if err := s.colored(kind, MarkerColor, "(struct) "); err != nil {
			return err
		}
	}
	entries := v.Entries()
	if len(entries) == 0 {
		return s.colored(kind, SepColor, "[]")
	}
	if err := s.colored(kind, SepColor, "["); err != nil {
		return err
	}
	next, elide := 0, true
	for i, e := range entries {
		if i > 0 {
			if err := s.colored(kind, SepColor, ","); err != nil {
				return err
			}
			if s.indent == "" {
				if err := s.write(" "); err != nil {
					return err
				}
			}
		}
		if s.indent != "" {
			if err := s.write("\n"); err != nil {
				return err
			}
			if err := s.pad(depth + 1); err != nil {
				return err
			}
		}
		if elide && e.Key == keypath.IntKey(next) {
			next++
		} else {
			elide = false
			if err := s.key(kind, e.Key); err != nil {
				return err
			}
		}
		if err := s.value(e.Value, depth+1); err != nil {
			return err
		}
	}
	if s.indent != "" {
		if err := s.write("\n"); err != nil {
			return err
		}
		if err := s.pad(depth); err != nil {
			return err
		}
	}
	return s.colored(kind, SepColor, "]")
}

func (s *State) key(kind val.Kind, k keypath.Key) error {
	var text string
	if k.IsInt() {
		text = strconv.Itoa(k.Int())
	} else {
		text = keypath.Quote(k.Name())
	}
	if err := s.colored(kind, KeyColor, text); err != nil {
		return err
	}
	return s.colored(kind, SepColor, " => ")
}

func (s *State) leaf(v *val.Value) error {
	kind := v.Kind()
	switch kind {
	case val.NullKind:
		return s.colored(kind, ValueColor, "null")
	case val.BoolKind:
		text := "false"
		if v.Bool() {
			text = "true"
		}
		return s.colored(kind, ValueColor, text)
	case val.IntKind:
		return s.colored(kind, ValueColor, strconv.FormatInt(v.Int(), 10))
	case val.FloatKind:
		return s.colored(kind, ValueColor, formatFloat(v.Float()))
	case val.StringKind:
		return s.colored(kind, ValueColor, keypath.Quote(v.Str()))
	case val.ResourceKind:
		r := v.Resource()
		return s.colored(kind, MarkerColor, fmt.Sprintf("resource#%d(%s)", r.ID(), r.Kind()))
	case val.CallableKind:
		c := v.Callable()
		text := fmt.Sprintf("callable#%d", c.ID())
		if file, line := c.Location(); file != "" {
			text = fmt.Sprintf("%s (%s:%d)", text, file, line)
		}
		return s.colored(kind, MarkerColor, text)
	case val.OpaqueKind:
		return s.colored(kind, MarkerColor, fmt.Sprintf("object#%d(%T)", v.ID(), v.Host()))
	}
	return nil
}

// formatFloat keeps a decimal point or exponent in the output so a
// float literal never reads like an int.
func formatFloat(f float64) string {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eEIN") {
		text += ".0"
	}
	return text
}

func (s *State) write(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

func (s *State) colored(k val.Kind, a ColorAttr, text string) error {
	if s.color != nil {
		text = s.color(k, a, text)
	}
	return s.write(text)
}

func (s *State) pad(depth int) error {
	if s.indent == "" || depth <= 0 {
		return nil
	}
	return s.write(strings.Repeat(s.indent, depth))
}

func (s *State) lf() error {
	if s.indent == "" {
		return nil
	}
	return s.write("\n")
}
