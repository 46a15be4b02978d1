package keypath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether a field name must be quoted to appear in
// the textual form of a path. Bare names are non-empty, do not start
// with a digit, and contain only letters, digits, '_' and '-'.
func NeedsQuote(name string) bool {
	if name == "" {
		return true
	}
	if name[0] >= '0' && name[0] <= '9' {
		return true
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r):
		default:
			return true
		}
	}
	return false
}

// Quote surrounds name with double quotes, backslash-escaping quotes,
// backslashes and control characters.
func Quote(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	b.WriteByte('"')
	for _, r := range name {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquotePrefix decodes a quoted field at the start of s, whose first
// byte must be '"' or '\''. It returns the decoded name and the number
// of bytes consumed, including both quote characters.
func unquotePrefix(s string) (string, int, error) {
	quote := s[0]
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case quote:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("truncated escape")
			}
			esc := s[i+1]
			switch esc {
			case '"', '\'', '\\', '/':
				b.WriteByte(esc)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if i+6 > len(s) {
					return "", 0, fmt.Errorf("truncated \\u escape")
				}
				n, err := strconv.ParseUint(s[i+2:i+6], 16, 32)
				if err != nil {
					return "", 0, fmt.Errorf("bad \\u escape %q", s[i:i+6])
				}
				b.WriteRune(rune(n))
				i += 6
				continue
			default:
				return "", 0, fmt.Errorf("bad escape \\%c", esc)
			}
			i += 2
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return "", 0, fmt.Errorf("unterminated %c-quoted field", quote)
}
