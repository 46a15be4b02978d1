package dyn

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-dyn/debug"
	"github.com/signadot/go-dyn/val"
	"github.com/signadot/go-dyn/val/keypath"
)

// Delta is one structural difference. Old is nil for an insertion,
// New is nil for a deletion, both are set for a replacement. Values
// are aliases into the diffed inputs.
type Delta struct {
	Path keypath.Path
	Old  *val.Value
	New  *val.Value
}

// Diff computes the order-aware structural difference from a to b.
// Struct pairs align entries by key, List pairs align by value
// shape, both through a longest-common-subsequence over the entry
// sequences. Aligned pairs recurse; everything else becomes a Delta.
// A key present in both Structs at different positions reports as a
// deletion plus an insertion. Equal inputs produce no deltas.
func Diff(a, b *val.Value) []Delta {
	if debug.Diff() {
		debug.Logf("diff %v against %v\n", a, b)
	}
	return diffInto(nil, nil, a, b)
}

func diffInto(res []Delta, prefix keypath.Path, a, b *val.Value) []Delta {
	if val.StrictEqual(a, b) {
		return res
	}
	switch {
	case a.Kind() == val.StructKind && b.Kind() == val.StructKind:
		return diffStruct(res, prefix, a, b)
	case a.Kind() == val.ListKind && b.Kind() == val.ListKind:
		return diffList(res, prefix, a, b)
	}
	return append(res, Delta{Path: prefix, Old: a, New: b})
}

// diffStruct aligns the two key sequences and recurses where a key
// survives.
func diffStruct(res []Delta, prefix keypath.Path, a, b *val.Value) []Delta {
	toRune := map[keypath.Key]rune{}
	fromRune := map[rune]keypath.Key{}
	ar := keyRunes(toRune, fromRune, a)
	br := keyRunes(toRune, fromRune, b)
	diffs := diffpatch.New().DiffMainRunes(ar, br, false)
	aes, bes := a.Entries(), b.Entries()
	ai, bi := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				res = append(res, Delta{Path: prefix.Append(fromRune[r]), Old: aes[ai].Value})
				ai++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				res = diffInto(res, prefix.Append(fromRune[r]), aes[ai].Value, bes[bi].Value)
				ai++
				bi++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				res = append(res, Delta{Path: prefix.Append(fromRune[r]), New: bes[bi].Value})
				bi++
			}
		}
	}
	return res
}

func keyRunes(m map[keypath.Key]rune, im map[rune]keypath.Key, v *val.Value) []rune {
	es := v.Entries()
	rs := make([]rune, len(es))
	for i, e := range es {
		r, ok := m[e.Key]
		if !ok {
			r = rune(len(m))
			m[e.Key] = r
			im[r] = e.Key
		}
		rs[i] = r
	}
	return rs
}

// diffList aligns the two element sequences by value shape. Elements
// pairing as equal shapes recurse, which catches containers whose
// insides changed. A deletion immediately followed by an insertion
// folds into one replacement.
func diffList(res []Delta, prefix keypath.Path, a, b *val.Value) []Delta {
	m := map[string]rune{}
	ar := valueRunes(m, a)
	br := valueRunes(m, b)
	diffs := diffpatch.New().DiffMainRunes(ar, br, false)
	aes, bes := a.Entries(), b.Entries()
	ai, bi := 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				res = append(res, Delta{Path: prefix.Append(keypath.IntKey(ai)), Old: aes[ai].Value})
				lastDel = len(res) - 1
				ai++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range d.Text {
				res = diffInto(res, prefix.Append(keypath.IntKey(bi)), aes[ai].Value, bes[bi].Value)
				ai++
				bi++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				if lastDel >= 0 {
					res[lastDel].New = bes[bi].Value
					lastDel = -1
				} else {
					res = append(res, Delta{Path: prefix.Append(keypath.IntKey(bi)), New: bes[bi].Value})
				}
				bi++
			}
		}
	}
	return res
}

func valueRunes(m map[string]rune, v *val.Value) []rune {
	es := v.Entries()
	rs := make([]rune, len(es))
	for i, e := range es {
		sum := summary(e.Value)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summary names a value's shape for list alignment. Containers and
// nulls pair by kind alone, so changed insides still align and
// recurse. Multi-line strings pair by kind for the same reason.
func summary(v *val.Value) string {
	switch v.Kind() {
	case val.ListKind, val.StructKind, val.NullKind:
		return v.Kind().String()
	case val.BoolKind:
		return "bool-" + strconv.FormatBool(v.Bool())
	case val.IntKind:
		return "int-" + strconv.FormatInt(v.Int(), 10)
	case val.FloatKind:
		return "float-" + strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case val.StringKind:
		if strings.Contains(v.Str(), "\n") {
			return "string/m"
		}
		return "string-" + v.Str()
	}
	return v.Kind().String() + "-" + strconv.FormatInt(v.ID(), 10)
}
