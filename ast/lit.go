package ast

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/t14raptor/go-jscode/token"
)

type (
	BooleanLiteral struct {
		Value bool
	}

	NullLiteral struct{}

	// IntLiteral is an integral number literal.
	IntLiteral struct {
		Value int64
	}

	// DoubleLiteral is a binary floating point literal. BitSize (32 or 64) only
	// controls how many digits are needed to print Value.
	// Note: NaN and infinities are never stored here, use an identifier instead.
	DoubleLiteral struct {
		Value   float64
		BitSize int
	}

	// DecimalLiteral is an arbitrary precision decimal literal.
	DecimalLiteral struct {
		Value decimal.Decimal
	}

	// StringLiteral holds the unescaped string value; escaping happens when printing.
	StringLiteral struct {
		Value string
	}

	RegExpLiteral struct {
		Pattern    string
		Global     bool
		IgnoreCase bool
		Multiline  bool
	}
)

// Bool returns the boolean literal for v.
func Bool(v bool) *BooleanLiteral {
	return &BooleanLiteral{Value: v}
}

// True returns the literal true.
func True() *BooleanLiteral { return Bool(true) }

// False returns the literal false.
func False() *BooleanLiteral { return Bool(false) }

// Null returns the literal null.
func Null() *NullLiteral { return &NullLiteral{} }

// Int returns an integer literal for any Go integer type.
func Int[T constraints.Integer](v T) *IntLiteral {
	return &IntLiteral{Value: int64(v)}
}

// Float returns a literal for a 32 bit float. NaN and infinities become the
// global references NaN and Infinity.
func Float(v float32) Expr {
	return double(float64(v), 32)
}

// Double returns a literal for a 64 bit float. NaN and infinities become the
// global references NaN and Infinity.
func Double(v float64) Expr {
	return double(v, 64)
}

func double(v float64, bitSize int) Expr {
	switch {
	case math.IsNaN(v):
		return &Identifier{Name: "NaN"}
	case math.IsInf(v, 1):
		return &Identifier{Name: "Infinity"}
	case math.IsInf(v, -1):
		return &UnaryExpression{Operator: token.Minus, Operand: &Identifier{Name: "Infinity"}}
	}
	return &DoubleLiteral{Value: v, BitSize: bitSize}
}

// Decimal returns an arbitrary precision decimal literal.
func Decimal(v decimal.Decimal) *DecimalLiteral {
	return &DecimalLiteral{Value: v}
}

// Char returns a one character string literal.
func Char(r rune) *StringLiteral {
	return &StringLiteral{Value: string(r)}
}

// String returns a string literal.
func String(s string) *StringLiteral {
	return &StringLiteral{Value: s}
}

// Regex returns a regular expression literal without flags.
func Regex(pattern string) *RegExpLiteral {
	return &RegExpLiteral{Pattern: pattern}
}

// Gim sets all three flags at once.
func (r *RegExpLiteral) Gim(global, ignoreCase, multiline bool) *RegExpLiteral {
	r.Global, r.IgnoreCase, r.Multiline = global, ignoreCase, multiline
	return r
}

// Flags returns the flag suffix in canonical order, e.g. "gim".
func (r *RegExpLiteral) Flags() string {
	var sb strings.Builder
	if r.Global {
		sb.WriteByte('g')
	}
	if r.IgnoreCase {
		sb.WriteByte('i')
	}
	if r.Multiline {
		sb.WriteByte('m')
	}
	return sb.String()
}

// Literal returns the source text of the number.
func (n *IntLiteral) Literal() string {
	return strconv.FormatInt(n.Value, 10)
}

// Literal returns the source text of the number.
func (n *DecimalLiteral) Literal() string {
	return n.Value.String()
}

var matchLeading0Exponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

// Literal returns the source text of the number. Integral values keep a
// trailing ".0" so they stay recognisable as floating point values.
func (n *DoubleLiteral) Literal() string {
	bitSize := n.BitSize
	if bitSize != 32 {
		bitSize = 64
	}
	if n.Value != 0 {
		exponent := math.Log10(math.Abs(n.Value))
		if exponent >= 21 || exponent < -6 {
			return matchLeading0Exponent.ReplaceAllString(strconv.FormatFloat(n.Value, 'g', -1, bitSize), "$1$2")
		}
	}
	s := strconv.FormatFloat(n.Value, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// IsNumber reports whether e is a numeric literal.
func IsNumber(e Expr) bool {
	switch e.(type) {
	case *IntLiteral, *DoubleLiteral, *DecimalLiteral:
		return true
	}
	return false
}

// Sign returns -1, 0 or +1 for a numeric literal and 0 for anything else.
func Sign(e Expr) int {
	switch n := e.(type) {
	case *IntLiteral:
		switch {
		case n.Value < 0:
			return -1
		case n.Value > 0:
			return 1
		}
	case *DoubleLiteral:
		switch {
		case n.Value < 0:
			return -1
		case n.Value > 0:
			return 1
		}
	case *DecimalLiteral:
		return n.Value.Sign()
	}
	return 0
}

// IsZero reports whether e is a numeric literal with the value zero.
func IsZero(e Expr) bool {
	return IsNumber(e) && Sign(e) == 0
}

// IsOne reports whether e is a numeric literal with the value one.
func IsOne(e Expr) bool {
	switch n := e.(type) {
	case *IntLiteral:
		return n.Value == 1
	case *DoubleLiteral:
		return n.Value == 1
	case *DecimalLiteral:
		return n.Value.Equal(decimal.NewFromInt(1))
	}
	return false
}

// Negate returns the negated numeric literal. The second result is false if e
// is not a numeric literal or cannot be negated without losing precision.
func Negate(e Expr) (Expr, bool) {
	switch n := e.(type) {
	case *IntLiteral:
		if n.Value == math.MinInt64 {
			return &DoubleLiteral{Value: -float64(n.Value), BitSize: 64}, true
		}
		return &IntLiteral{Value: -n.Value}, true
	case *DoubleLiteral:
		return &DoubleLiteral{Value: -n.Value, BitSize: n.BitSize}, true
	case *DecimalLiteral:
		return &DecimalLiteral{Value: n.Value.Neg()}, true
	}
	return nil, false
}
