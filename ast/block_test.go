package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-jscode/token"
)

func TestBlockCursor(t *testing.T) {
	b := NewBlock()
	assert.Equal(t, 0, b.Pos())
	assert.True(t, b.IsEmpty())

	a := b.Var("a", nil)
	assert.Equal(t, 1, b.Pos())
	x := b.Var("x", Int(5))
	assert.Equal(t, 2, b.Pos())

	prev := b.SetPos(1)
	assert.Equal(t, 2, prev)
	b.Assign(a, x)
	assert.Equal(t, 2, b.Pos())
	require.Equal(t, 3, b.Len())
	assert.IsType(t, &ExpressionStatement{}, b.Statements()[1])
	assert.IsType(t, &VariableDeclaration{}, b.Statements()[2])

	assert.Equal(t, 2, b.PosEnd())
	assert.Equal(t, 3, b.Pos())

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Pos())
}

func TestBlockSetPosOutOfRange(t *testing.T) {
	b := NewBlock()
	b.Var("a", nil)
	assert.Panics(t, func() { b.SetPos(2) })
	assert.Panics(t, func() { b.SetPos(-1) })
	assert.NotPanics(t, func() { b.SetPos(1) })
}

func TestBlockNoOpElision(t *testing.T) {
	zeros := []Expr{Int(0), Int(int64(0)), Float(0), Double(0), Decimal(decimalZero)}
	ones := []Expr{Int(1), Int(int64(1)), Float(1), Double(1), Decimal(decimalOne)}

	b := NewBlock()
	a := Ref("a")
	for _, z := range zeros {
		b.AssignPlus(a, z)
		b.AssignMinus(a, z)
	}
	for _, o := range ones {
		b.AssignMultiply(a, o)
		b.AssignDivide(a, o)
	}
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Pos())

	b.AssignPlus(a, String(""))
	assert.Equal(t, 1, b.Len())
}

func TestBlockCompoundAssignments(t *testing.T) {
	tests := []struct {
		name  string
		add   func(b *Block, a Target)
		op    token.Token
		right Expr
	}{
		{"plus", func(b *Block, a Target) { b.AssignPlus(a, Int(2)) }, token.AddAssign, Int(2)},
		{"plus negative flips", func(b *Block, a Target) { b.AssignPlus(a, Int(-33)) }, token.SubtractAssign, Int(33)},
		{"plus negative double flips", func(b *Block, a Target) { b.AssignPlus(a, Double(-4)) }, token.SubtractAssign, Double(4)},
		{"minus", func(b *Block, a Target) { b.AssignMinus(a, Int(2)) }, token.SubtractAssign, Int(2)},
		{"minus negative kept", func(b *Block, a Target) { b.AssignMinus(a, Double(-4)) }, token.SubtractAssign, Double(-4)},
		{"multiply", func(b *Block, a Target) { b.AssignMultiply(a, Int(3)) }, token.MultiplyAssign, Int(3)},
		{"divide", func(b *Block, a Target) { b.AssignDivide(a, Int(3)) }, token.QuotientAssign, Int(3)},
		{"modulo", func(b *Block, a Target) { b.AssignModulo(a, Int(1)) }, token.RemainderAssign, Int(1)},
		{"plain", func(b *Block, a Target) { b.Assign(a, Int(0)) }, token.Assign, Int(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlock()
			tt.add(b, Ref("a"))
			require.Equal(t, 1, b.Len())
			got := b.Statements()[0].(*ExpressionStatement).Expr.(*AssignExpression)
			assert.Equal(t, tt.op, got.Operator)
			assert.Equal(t, tt.right, got.Right)
		})
	}
}

func TestBlockVarRejectsInvalidNames(t *testing.T) {
	b := NewBlock()
	for _, name := range []string{"", "0abc", "a.b", "var", "a b"} {
		assert.Panics(t, func() { b.Var(name, nil) }, name)
	}
	assert.NotPanics(t, func() { b.Var("$_ok1", nil) })
}

func TestControlStatements(t *testing.T) {
	b := NewBlock()
	i := Ref("i")

	cond := b.If(i)
	cond.Then().Break()
	assert.Same(t, cond.Else(), cond.Else())
	assert.Panics(t, func() { cond.ElseIf(i) })

	chain := b.If(i)
	next := chain.ElseIf(Bool(false))
	next.Then().Return(nil)
	assert.Panics(t, func() { chain.Else() })

	loop := b.For()
	v := loop.SimpleLoop("j", 5, 0)
	assert.Equal(t, "j", v.Name)
	assert.Equal(t, token.Greater, loop.Test.(*BinaryExpression).Operator)
	assert.Equal(t, token.Decrement, loop.Update.(*UpdateExpression).Operator)

	try := b.Try()
	assert.Nil(t, try.Handler)
	try.Catch("ex").Throw(Ref("ex"))
	assert.Equal(t, "ex", try.Param)
	assert.Same(t, try.Finally(), try.Finally())

	sw := b.Switch(i)
	sw.Case(Int(1)).Break()
	assert.Same(t, sw.Default(), sw.Default())
	assert.Len(t, sw.Cases, 2)

	assert.Equal(t, 5, b.Len())
}
