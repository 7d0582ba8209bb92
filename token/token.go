package token

import (
	"strconv"
)

// Token is the set of operators and keywords the generator can emit.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Compound returns the compound assignment operator for a binary operator,
// e.g. Plus -> AddAssign. It returns Assign for tokens without one.
func (t Token) Compound() Token {
	if c, ok := compound[t]; ok {
		return c
	}
	return Assign
}

// IsKeyword reports whether literal is a reserved word that cannot be used as a
// variable or function name.
func IsKeyword(literal string) bool {
	_, exists := keywordTable[literal]
	return exists
}
