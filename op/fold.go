package op

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/token"
)

// arithmetic folds + - * / % over two numeric literals. Integers stay
// integers except for division and overflow, decimals stay decimals and
// anything involving a double is computed as a double. Division and modulo
// by zero are left to the runtime.
func arithmetic(t token.Token, a, b ast.Expr) (ast.Expr, bool) {
	if !ast.IsNumber(a) || !ast.IsNumber(b) {
		return nil, false
	}
	if (t == token.Slash || t == token.Remainder) && ast.IsZero(b) {
		return nil, false
	}

	li, lInt := a.(*ast.IntLiteral)
	ri, rInt := b.(*ast.IntLiteral)
	if lInt && rInt && t != token.Slash {
		if r, ok := intArithmetic(t, li.Value, ri.Value); ok {
			return ast.Int(r), true
		}
	}

	_, lDouble := a.(*ast.DoubleLiteral)
	_, rDouble := b.(*ast.DoubleLiteral)
	if !lDouble && !rDouble && !(lInt && rInt) {
		return ast.Decimal(decimalArithmetic(t, toDecimal(a), toDecimal(b))), true
	}

	var r float64
	l, rr := toFloat(a), toFloat(b)
	switch t {
	case token.Plus:
		r = l + rr
	case token.Minus:
		r = l - rr
	case token.Multiply:
		r = l * rr
	case token.Slash:
		r = l / rr
	case token.Remainder:
		r = math.Mod(l, rr)
	default:
		return nil, false
	}
	if bitSize(a) == 32 && bitSize(b) == 32 {
		return ast.Float(float32(r)), true
	}
	return ast.Double(r), true
}

func intArithmetic(t token.Token, a, b int64) (int64, bool) {
	switch t {
	case token.Plus:
		r := a + b
		if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
			return 0, false
		}
		return r, true
	case token.Minus:
		r := a - b
		if (a >= 0 && b < 0 && r < 0) || (a < 0 && b > 0 && r >= 0) {
			return 0, false
		}
		return r, true
	case token.Multiply:
		if a == 0 || b == 0 {
			return 0, true
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, false
		}
		return r, true
	case token.Remainder:
		return a % b, true
	}
	return 0, false
}

func decimalArithmetic(t token.Token, a, b decimal.Decimal) decimal.Decimal {
	switch t {
	case token.Plus:
		return a.Add(b)
	case token.Minus:
		return a.Sub(b)
	case token.Multiply:
		return a.Mul(b)
	case token.Slash:
		return a.Div(b)
	}
	return a.Mod(b)
}

// foldBitwise folds shifts and bitwise operators over numeric literals using
// 32 bit integer semantics.
func foldBitwise(t token.Token, a, b ast.Expr) (ast.Expr, bool) {
	if !ast.IsNumber(a) || !ast.IsNumber(b) {
		return nil, false
	}
	l, r := toFloat(a), toFloat(b)
	switch t {
	case token.And:
		return ast.Int(toInt32(l) & toInt32(r)), true
	case token.Or:
		return ast.Int(toInt32(l) | toInt32(r)), true
	case token.ExclusiveOr:
		return ast.Int(toInt32(l) ^ toInt32(r)), true
	// Masking of 0x1f restricts the shift to a maximum of 31 places.
	case token.ShiftLeft:
		return ast.Int(toInt32(l) << (toUint32(r) & 0x1f)), true
	case token.ShiftRight:
		return ast.Int(toInt32(l) >> (toUint32(r) & 0x1f)), true
	case token.UnsignedShiftRight:
		return ast.Int(toUint32(l) >> (toUint32(r) & 0x1f)), true
	}
	return nil, false
}

func toFloat(x ast.Expr) float64 {
	switch n := x.(type) {
	case *ast.IntLiteral:
		return float64(n.Value)
	case *ast.DoubleLiteral:
		return n.Value
	case *ast.DecimalLiteral:
		return n.Value.InexactFloat64()
	}
	return math.NaN()
}

func toDecimal(x ast.Expr) decimal.Decimal {
	switch n := x.(type) {
	case *ast.IntLiteral:
		return decimal.NewFromInt(n.Value)
	case *ast.DecimalLiteral:
		return n.Value
	}
	return decimal.NewFromFloat(toFloat(x))
}

func bitSize(x ast.Expr) int {
	if d, ok := x.(*ast.DoubleLiteral); ok && d.BitSize == 32 {
		return 32
	}
	return 64
}

// ECMA 262: 9.5. The value is reduced modulo 2^32 before narrowing so large
// magnitudes wrap instead of saturating.
func toInt32(f float64) int32 {
	return int32(toUint32(f))
}

// ECMA 262: 9.6.
func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}
