package ast

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-jscode/token"
)

// Block is an ordered list of statements with an insertion cursor. Every
// method adding a statement inserts it at the cursor and advances the cursor,
// so 0 <= Pos() <= Len() always holds.
//
// The zero value is an empty block ready to use.
type Block struct {
	stmts []Stmt
	pos   int
}

func NewBlock() *Block {
	return &Block{}
}

func insert[T Stmt](b *Block, s T) T {
	b.stmts = slices.Insert(b.stmts, b.pos, Stmt(s))
	b.pos++
	return s
}

// Statements returns the statements in order. The slice must not be modified.
func (b *Block) Statements() []Stmt {
	return b.stmts
}

func (b *Block) Len() int {
	return len(b.stmts)
}

func (b *Block) IsEmpty() bool {
	return len(b.stmts) == 0
}

// Pos returns the cursor.
func (b *Block) Pos() int {
	return b.pos
}

// SetPos moves the cursor to n and returns the previous position. It panics
// if n is out of range.
func (b *Block) SetPos(n int) int {
	if n < 0 || n > len(b.stmts) {
		panic(fmt.Sprintf("ast: block position %d out of range [0:%d]", n, len(b.stmts)))
	}
	old := b.pos
	b.pos = n
	return old
}

// PosEnd moves the cursor behind the last statement and returns the previous
// position.
func (b *Block) PosEnd() int {
	return b.SetPos(len(b.stmts))
}

// Clear removes all statements and resets the cursor.
func (b *Block) Clear() {
	b.stmts = nil
	b.pos = 0
}

// Add inserts an arbitrary statement.
func (b *Block) Add(s Stmt) Stmt {
	return insert(b, s)
}

// Var declares a variable, init may be nil. It returns a reference to the
// new variable.
func (b *Block) Var(name string, init Expr) *Identifier {
	insert(b, &VariableDeclaration{Name: checkName(name), Init: init})
	return &Identifier{Name: name}
}

// assign adds t=v, or the compound form of op when op is a binary operator.
func (b *Block) assign(op token.Token, t Target, v Expr) {
	insert(b, &ExpressionStatement{Expr: &AssignExpression{Operator: op.Compound(), Left: t, Right: v}})
}

// Assign adds t=v.
func (b *Block) Assign(t Target, v Expr) {
	b.assign(token.Assign, t, v)
}

// AssignPlus adds t+=v. Adding a zero literal is a no-op and a negative
// literal turns into t-=|v|.
func (b *Block) AssignPlus(t Target, v Expr) {
	if Sign(v) < 0 {
		if neg, ok := Negate(v); ok {
			b.assign(token.Minus, t, neg)
			return
		}
	}
	b.unlessIdentity(token.Plus, t, v, IsZero)
}

// AssignMinus adds t-=v. Subtracting a zero literal is a no-op; a negative
// literal is kept as is.
func (b *Block) AssignMinus(t Target, v Expr) {
	b.unlessIdentity(token.Minus, t, v, IsZero)
}

// AssignMultiply adds t*=v unless v is the literal one.
func (b *Block) AssignMultiply(t Target, v Expr) {
	b.unlessIdentity(token.Multiply, t, v, IsOne)
}

// AssignDivide adds t/=v unless v is the literal one.
func (b *Block) AssignDivide(t Target, v Expr) {
	b.unlessIdentity(token.Slash, t, v, IsOne)
}

func (b *Block) AssignModulo(t Target, v Expr) {
	b.assign(token.Remainder, t, v)
}

func (b *Block) unlessIdentity(op token.Token, t Target, v Expr, identity func(Expr) bool) {
	if identity(v) {
		return
	}
	b.assign(op, t, v)
}

func (b *Block) update(op token.Token, t Target, postfix bool) {
	insert(b, &ExpressionStatement{Expr: &UpdateExpression{Operator: op, Operand: t, Postfix: postfix}})
}

// IncrPostfix adds t++.
func (b *Block) IncrPostfix(t Target) { b.update(token.Increment, t, true) }

// IncrPrefix adds ++t.
func (b *Block) IncrPrefix(t Target) { b.update(token.Increment, t, false) }

// DecrPostfix adds t--.
func (b *Block) DecrPostfix(t Target) { b.update(token.Decrement, t, true) }

// DecrPrefix adds --t.
func (b *Block) DecrPrefix(t Target) { b.update(token.Decrement, t, false) }

// Invoke adds a call statement. Further arguments can be added to the
// returned call.
func (b *Block) Invoke(callee Expr, args ...Expr) *CallExpression {
	c := Invoke(callee, args...)
	insert(b, &ExpressionStatement{Expr: c})
	return c
}

// InvokeMethod adds the statement obj.name(args...).
func (b *Block) InvokeMethod(obj Expr, name string, args ...Expr) *CallExpression {
	return b.Invoke(Member(obj, name), args...)
}

// Expr adds an arbitrary expression statement.
func (b *Block) Expr(e Expr) *ExpressionStatement {
	return insert(b, &ExpressionStatement{Expr: e})
}

func (b *Block) If(test Expr) *IfStatement {
	return insert(b, &IfStatement{Test: test, Consequent: NewBlock()})
}

func (b *Block) For() *ForStatement {
	return insert(b, &ForStatement{Body: NewBlock()})
}

// ForIn adds for(var name in obj).
func (b *Block) ForIn(name string, obj Expr) *ForInStatement {
	return insert(b, &ForInStatement{Name: checkName(name), Object: obj, Body: NewBlock()})
}

func (b *Block) While(test Expr) *WhileStatement {
	return insert(b, &WhileStatement{Test: test, Body: NewBlock()})
}

func (b *Block) Do(test Expr) *DoWhileStatement {
	return insert(b, &DoWhileStatement{Test: test, Body: NewBlock()})
}

func (b *Block) Try() *TryStatement {
	return insert(b, &TryStatement{Body: NewBlock()})
}

func (b *Block) Switch(discriminant Expr) *SwitchStatement {
	return insert(b, &SwitchStatement{Discriminant: discriminant})
}

// Return adds a return statement, arg may be nil.
func (b *Block) Return(arg Expr) {
	insert(b, &ReturnStatement{Argument: arg})
}

func (b *Block) Break() {
	insert(b, &BreakStatement{})
}

// BreakTo adds break with a label.
func (b *Block) BreakTo(l *Label) {
	insert(b, &BreakStatement{Label: l.Name})
}

func (b *Block) Continue() {
	insert(b, &ContinueStatement{})
}

// ContinueTo adds continue with a label.
func (b *Block) ContinueTo(l *Label) {
	insert(b, &ContinueStatement{Label: l.Name})
}

func (b *Block) Throw(arg Expr) {
	insert(b, &ThrowStatement{Argument: arg})
}

func (b *Block) Delete(target Expr) {
	insert(b, &DeleteStatement{Target: target})
}

func (b *Block) Debugger() {
	insert(b, &DebuggerStatement{})
}

func (b *Block) Comment(text string) *Comment {
	return insert(b, &Comment{Text: text})
}

func (b *Block) Label(name string) *Label {
	return insert(b, &Label{Name: checkName(name)})
}

// NestedBlock adds an anonymous nested block.
func (b *Block) NestedBlock() *Block {
	return insert(b, NewBlock())
}

// Function declares a named function.
func (b *Block) Function(name string) *FunctionLiteral {
	f := &FunctionLiteral{Name: checkName(name), Body: NewBlock()}
	insert(b, &FunctionDeclaration{Function: f})
	return f
}

// Class declares a class lowered to a constructor function and its prototype.
func (b *Block) Class(name string) *ClassDeclaration {
	return insert(b, NewClass(name))
}

// Raw adds unchecked code.
func (b *Block) Raw(code string) *RawStatement {
	return insert(b, &RawStatement{Code: code})
}
