// Package op builds operator expressions. Operands that are literals are
// folded into a single literal where the result is known at construction
// time; everything else becomes an operator node that the generator wraps in
// parentheses.
package op

import (
	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/token"
)

func unary(t token.Token, x ast.Expr) ast.Expr {
	return &ast.UnaryExpression{Operator: t, Operand: x}
}

func binary(t token.Token, a, b ast.Expr) ast.Expr {
	return &ast.BinaryExpression{Operator: t, Left: a, Right: b}
}

// Minus returns -x. Numeric literals are negated in place.
func Minus(x ast.Expr) ast.Expr {
	if n, ok := ast.Negate(x); ok {
		return n
	}
	return unary(token.Minus, x)
}

// Not returns !x. Boolean literals are inverted in place.
func Not(x ast.Expr) ast.Expr {
	if b, ok := x.(*ast.BooleanLiteral); ok {
		return ast.Bool(!b.Value)
	}
	return unary(token.Not, x)
}

// Complement returns ~x. It is never folded.
func Complement(x ast.Expr) ast.Expr {
	return unary(token.BitwiseNot, x)
}

// Typeof returns typeof x. It is never folded.
func Typeof(x ast.Expr) ast.Expr {
	return unary(token.Typeof, x)
}

func update(t token.Token, x ast.Expr, postfix bool) ast.Expr {
	delta := ast.Int(1)
	if t == token.Decrement {
		delta.Value = -1
	}
	if r, ok := arithmetic(token.Plus, x, delta); ok {
		return r
	}
	return &ast.UpdateExpression{Operator: t, Operand: x, Postfix: postfix}
}

// IncrPostfix returns x++, or the literal plus one.
func IncrPostfix(x ast.Expr) ast.Expr { return update(token.Increment, x, true) }

// IncrPrefix returns ++x, or the literal plus one.
func IncrPrefix(x ast.Expr) ast.Expr { return update(token.Increment, x, false) }

// DecrPostfix returns x--, or the literal minus one.
func DecrPostfix(x ast.Expr) ast.Expr { return update(token.Decrement, x, true) }

// DecrPrefix returns --x, or the literal minus one.
func DecrPrefix(x ast.Expr) ast.Expr { return update(token.Decrement, x, false) }

func fold(t token.Token, a, b ast.Expr) ast.Expr {
	if r, ok := arithmetic(t, a, b); ok {
		return r
	}
	return binary(t, a, b)
}

// Plus returns a+b. Two numbers are added and two strings concatenated.
func Plus(a, b ast.Expr) ast.Expr {
	if l, ok := a.(*ast.StringLiteral); ok {
		if r, ok := b.(*ast.StringLiteral); ok {
			return ast.String(l.Value + r.Value)
		}
	}
	return fold(token.Plus, a, b)
}

func Sub(a, b ast.Expr) ast.Expr { return fold(token.Minus, a, b) }
func Mul(a, b ast.Expr) ast.Expr { return fold(token.Multiply, a, b) }

// Div returns a/b. Dividing two integers yields a floating point literal.
func Div(a, b ast.Expr) ast.Expr { return fold(token.Slash, a, b) }
func Mod(a, b ast.Expr) ast.Expr { return fold(token.Remainder, a, b) }

func bitwise(t token.Token, a, b ast.Expr) ast.Expr {
	if r, ok := foldBitwise(t, a, b); ok {
		return r
	}
	return binary(t, a, b)
}

func Shl(a, b ast.Expr) ast.Expr { return bitwise(token.ShiftLeft, a, b) }
func Shr(a, b ast.Expr) ast.Expr { return bitwise(token.ShiftRight, a, b) }

// Shrz returns a>>>b.
func Shrz(a, b ast.Expr) ast.Expr { return bitwise(token.UnsignedShiftRight, a, b) }
func Band(a, b ast.Expr) ast.Expr { return bitwise(token.And, a, b) }
func Bor(a, b ast.Expr) ast.Expr  { return bitwise(token.Or, a, b) }
func Xor(a, b ast.Expr) ast.Expr  { return bitwise(token.ExclusiveOr, a, b) }

func boolValue(x ast.Expr) (bool, bool) {
	if b, ok := x.(*ast.BooleanLiteral); ok {
		return b.Value, true
	}
	return false, false
}

// Cand returns a&&b, simplified when either side is a boolean literal.
func Cand(a, b ast.Expr) ast.Expr {
	if v, ok := boolValue(b); ok {
		if v {
			return a
		}
		return ast.False()
	}
	if v, ok := boolValue(a); ok {
		if v {
			return b
		}
		return ast.False()
	}
	return binary(token.LogicalAnd, a, b)
}

// Cor returns a||b, simplified when either side is a boolean literal.
func Cor(a, b ast.Expr) ast.Expr {
	if v, ok := boolValue(b); ok {
		if v {
			return ast.True()
		}
		return a
	}
	if v, ok := boolValue(a); ok {
		if v {
			return ast.True()
		}
		return b
	}
	return binary(token.LogicalOr, a, b)
}

func Lt(a, b ast.Expr) ast.Expr  { return binary(token.Less, a, b) }
func Lte(a, b ast.Expr) ast.Expr { return binary(token.LessOrEqual, a, b) }
func Gt(a, b ast.Expr) ast.Expr  { return binary(token.Greater, a, b) }
func Gte(a, b ast.Expr) ast.Expr { return binary(token.GreaterOrEqual, a, b) }

// Eq returns a==b.
func Eq(a, b ast.Expr) ast.Expr { return binary(token.Equal, a, b) }

// Eeq returns a===b.
func Eeq(a, b ast.Expr) ast.Expr { return binary(token.StrictEqual, a, b) }

// Ne returns a!=b.
func Ne(a, b ast.Expr) ast.Expr { return binary(token.NotEqual, a, b) }

// Ene returns a!==b.
func Ene(a, b ast.Expr) ast.Expr { return binary(token.StrictNotEqual, a, b) }

func InstanceOf(a, b ast.Expr) ast.Expr { return binary(token.InstanceOf, a, b) }

// In returns a in b.
func In(a, b ast.Expr) ast.Expr { return binary(token.In, a, b) }

// Cond returns test?a:b.
func Cond(test, a, b ast.Expr) ast.Expr {
	return &ast.ConditionalExpression{Test: test, Consequent: a, Alternate: b}
}

// InParens wraps x in explicit parentheses.
func InParens(x ast.Expr) ast.Expr {
	return &ast.ParenExpression{Expr: x}
}

// HasOperator reports whether x still carries an operator after folding.
func HasOperator(x ast.Expr) bool {
	switch x.(type) {
	case *ast.UnaryExpression, *ast.UpdateExpression, *ast.BinaryExpression,
		*ast.ConditionalExpression, *ast.AssignExpression:
		return true
	}
	return false
}

// IsTypeof returns typeof x===typeName.
func IsTypeof(x ast.Expr, typeName string) ast.Expr {
	return Eeq(Typeof(x), ast.String(typeName))
}

// IsNotTypeof returns typeof x!==typeName.
func IsNotTypeof(x ast.Expr, typeName string) ast.Expr {
	return Ene(Typeof(x), ast.String(typeName))
}

// IsUndefined tests x against undefined. Indexed access is compared directly,
// everything else goes through typeof so undeclared names do not throw.
func IsUndefined(x ast.Expr) ast.Expr {
	if _, ok := x.(*ast.IndexExpression); ok {
		return Eeq(x, ast.Undefined())
	}
	return IsTypeof(x, "undefined")
}

// IsNotUndefined is the negation of IsUndefined.
func IsNotUndefined(x ast.Expr) ast.Expr {
	if _, ok := x.(*ast.IndexExpression); ok {
		return Ene(x, ast.Undefined())
	}
	return IsNotTypeof(x, "undefined")
}
