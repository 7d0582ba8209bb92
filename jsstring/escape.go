// Package jsstring holds the lexical helpers shared by the generator and the
// marshaller: string escaping, identifier validation and regular expression quoting.
package jsstring

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// Escape returns s escaped for use inside a single or double quoted JavaScript
// string literal. A carriage return is written as "\n" and "\r\n" collapses to a
// single "\n", so Unescape(Escape(s)) == s holds for every s without '\r'.
// A slash following '<' is escaped so that "</script>" cannot end an inline script.
func Escape(s string) string {
	if !needsEscape(s) {
		return s
	}

	str := &strings.Builder{}
	str.Grow(len(s) + len(s)/4 + 4)

	var prev rune
	for _, r := range s {
		switch r {
		case '\'', '"', '\\':
			str.WriteByte('\\')
			str.WriteRune(r)
		case '/':
			if prev == '<' {
				str.WriteByte('\\')
			}
			str.WriteByte('/')
		case '\n':
			if prev != '\r' {
				str.WriteString(`\n`)
			}
		case '\r':
			str.WriteString(`\n`)
		case '\t':
			str.WriteString(`\t`)
		case '\b':
			str.WriteString(`\b`)
		case '\f':
			str.WriteString(`\f`)
		case '\v':
			str.WriteString(`\v`)
		case '\u2028':
			str.WriteString(`\u2028`)
		case '\u2029':
			str.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				str.WriteString(`\x`)
				str.WriteByte(hexDigits[r>>4])
				str.WriteByte(hexDigits[r&0xf])
			} else {
				str.WriteRune(r)
			}
		}
		prev = r
	}
	return str.String()
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b < 0x20, b == 0x7f, b == '\'', b == '"', b == '\\':
			return true
		case b == '/' && i > 0 && s[i-1] == '<':
			return true
		case b == 0xe2 && i+2 < len(s) && s[i+1] == 0x80 && (s[i+2] == 0xa8 || s[i+2] == 0xa9):
			return true
		}
	}
	return false
}

// Quote returns s escaped and wrapped in single quotes.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}

// Unescape decodes the escape sequences of a JavaScript string literal body.
// Unknown escapes yield the escaped character itself, a backslash followed by a
// line terminator is a line continuation and produces nothing.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	str := &strings.Builder{}
	str.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '\\' || i+1 == len(rs) {
			str.WriteRune(r)
			continue
		}
		i++
		switch c := rs[i]; c {
		case 'n':
			str.WriteByte('\n')
		case 't':
			str.WriteByte('\t')
		case 'r':
			str.WriteByte('\r')
		case 'b':
			str.WriteByte('\b')
		case 'f':
			str.WriteByte('\f')
		case 'v':
			str.WriteByte('\v')
		case '0':
			if i+1 < len(rs) && rs[i+1] >= '0' && rs[i+1] <= '9' {
				str.WriteRune(c)
			} else {
				str.WriteByte(0)
			}
		case 'x':
			if v, ok := hexValue(rs[i+1:], 2); ok {
				str.WriteRune(v)
				i += 2
			} else {
				str.WriteRune(c)
			}
		case 'u':
			if v, ok := hexValue(rs[i+1:], 4); ok {
				str.WriteRune(v)
				i += 4
			} else {
				str.WriteRune(c)
			}
		case '\r':
			if i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
		default:
			str.WriteRune(c)
		}
	}
	return str.String()
}

// UnescapeHex decodes only the \xNN sequences of s and leaves everything else,
// including other escape sequences, untouched.
func UnescapeHex(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}

	str := &strings.Builder{}
	str.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\\' && i+1 < len(rs) {
			if rs[i+1] == 'x' {
				if v, ok := hexValue(rs[i+2:], 2); ok {
					str.WriteRune(v)
					i += 3
					continue
				}
			}
			// keep the pair so "\\x41" stays an escaped backslash
			str.WriteRune(rs[i])
			str.WriteRune(rs[i+1])
			i++
			continue
		}
		str.WriteRune(rs[i])
	}
	return str.String()
}

func hexValue(rs []rune, n int) (rune, bool) {
	if len(rs) < n {
		return 0, false
	}
	var v rune
	for _, r := range rs[:n] {
		d, ok := hexDigit(r)
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func hexDigit(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	}
	return 0, false
}
