package jsstring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII runes fall through to the Unicode tables below.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

var (
	unicodeStart    = rangetable.Merge(unicode.L, unicode.Nl)
	unicodeContinue = rangetable.Merge(unicode.L, unicode.Nl, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc)
)

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// IsIdentifierStart reports whether r may start an identifier.
func IsIdentifierStart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return asciiStart[r]
	}
	return unicode.Is(unicodeStart, r)
}

// IsIdentifierPart reports whether r may appear after the first character of an
// identifier.
func IsIdentifierPart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return asciiContinue[r]
	}
	return unicode.Is(unicodeContinue, r)
}

// IsIdentifier reports whether s can be written as a bare JavaScript name: it is
// non-empty, starts with a letter, '_' or '$' and continues with letters, digits,
// '_' or '$'. Reserved words are not rejected here.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

const regexMeta = `\^$*+?.()|{}[]`

// EscapeRegex escapes every regular expression metacharacter of s with a
// backslash so the result matches s literally.
func EscapeRegex(s string) string {
	if !strings.ContainsAny(s, regexMeta) {
		return s
	}
	str := &strings.Builder{}
	str.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(regexMeta, r) {
			str.WriteByte('\\')
		}
		str.WriteRune(r)
	}
	return str.String()
}

// RegexBody makes pattern safe to place between the slashes of a regular
// expression literal. Unescaped slashes outside a character class are
// escaped and raw line terminators become escape sequences; everything else
// is kept so the pattern matches the same input.
func RegexBody(pattern string) string {
	if !strings.ContainsAny(pattern, "/\n\r\u2028\u2029") {
		return pattern
	}
	str := &strings.Builder{}
	str.Grow(len(pattern) + 4)
	escaped, class := false, false
	for _, r := range pattern {
		if lt, ok := lineTerminatorEscape(r); ok {
			if !escaped {
				str.WriteByte('\\')
			}
			str.WriteString(lt)
			escaped = false
			continue
		}
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '[':
			class = true
		case r == ']':
			class = false
		case r == '/' && !class:
			str.WriteByte('\\')
		}
		str.WriteRune(r)
	}
	return str.String()
}

func lineTerminatorEscape(r rune) (string, bool) {
	switch r {
	case '\n':
		return "n", true
	case '\r':
		return "r", true
	case '\u2028':
		return "u2028", true
	case '\u2029':
		return "u2029", true
	}
	return "", false
}
