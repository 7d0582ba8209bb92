package ast

import "github.com/t14raptor/go-jscode/token"

type (
	ExpressionStatement struct {
		Expr Expr
	}

	// IfStatement owns one block per branch. Alternate is nil, a *Block or an
	// *IfStatement for else-if chains.
	IfStatement struct {
		Test       Expr
		Consequent *Block
		Alternate  Stmt
	}

	ForStatement struct {
		Init   *VariableDeclaration
		Test   Expr
		Update Expr
		Body   *Block
	}

	// ForInStatement is for(var Name in Object).
	ForInStatement struct {
		Name   string
		Object Expr
		Body   *Block
	}

	WhileStatement struct {
		Test Expr
		Body *Block
	}

	DoWhileStatement struct {
		Test Expr
		Body *Block
	}

	// TryStatement has an optional catch clause (Handler != nil) and an
	// optional finally clause (Finalizer != nil).
	TryStatement struct {
		Body      *Block
		Param     string
		Handler   *Block
		Finalizer *Block
	}

	SwitchStatement struct {
		Discriminant Expr
		Cases        []*CaseClause
	}

	// CaseClause is a single case of a switch. A nil Test is the default case.
	CaseClause struct {
		Test Expr
		Body *Block
	}

	ReturnStatement struct {
		Argument Expr
	}

	BreakStatement struct {
		Label string
	}

	ContinueStatement struct {
		Label string
	}

	ThrowStatement struct {
		Argument Expr
	}

	DeleteStatement struct {
		Target Expr
	}

	DebuggerStatement struct{}

	// Comment is dropped when generating minimum size code.
	Comment struct {
		Text string
	}

	// Label marks the statement that follows it.
	Label struct {
		Name string
	}

	// RawStatement is emitted verbatim.
	RawStatement struct {
		Code string
	}
)

// Then returns the block executed when Test holds.
func (s *IfStatement) Then() *Block {
	if s.Consequent == nil {
		s.Consequent = NewBlock()
	}
	return s.Consequent
}

// Else returns the else block, creating it on first use. It panics if the
// statement already continues with an else-if.
func (s *IfStatement) Else() *Block {
	switch alt := s.Alternate.(type) {
	case nil:
		b := NewBlock()
		s.Alternate = b
		return b
	case *Block:
		return alt
	}
	panic("ast: if statement already has an else-if branch")
}

// ElseIf chains a new conditional onto the else branch.
func (s *IfStatement) ElseIf(test Expr) *IfStatement {
	if s.Alternate != nil {
		panic("ast: if statement already has an else branch")
	}
	next := &IfStatement{Test: test, Consequent: NewBlock()}
	s.Alternate = next
	return next
}

// InitVar declares the loop variable and returns a reference to it.
func (s *ForStatement) InitVar(name string, init Expr) *Identifier {
	s.Init = &VariableDeclaration{Name: checkName(name), Init: init}
	return &Identifier{Name: name}
}

func (s *ForStatement) SetTest(test Expr) *ForStatement {
	s.Test = test
	return s
}

func (s *ForStatement) SetUpdate(update Expr) *ForStatement {
	s.Update = update
	return s
}

// SimpleLoop sets up a loop over name running from from up to (excluding) to,
// or down when to is smaller than from.
func (s *ForStatement) SimpleLoop(name string, from, to int64) *Identifier {
	i := s.InitVar(name, Int(from))
	if from <= to {
		s.Test = &BinaryExpression{Operator: token.Less, Left: i, Right: Int(to)}
		s.Update = &UpdateExpression{Operator: token.Increment, Operand: i, Postfix: true}
	} else {
		s.Test = &BinaryExpression{Operator: token.Greater, Left: i, Right: Int(to)}
		s.Update = &UpdateExpression{Operator: token.Decrement, Operand: i, Postfix: true}
	}
	return i
}

// Catch adds the catch clause binding param and returns its block.
func (s *TryStatement) Catch(param string) *Block {
	s.Param = checkName(param)
	if s.Handler == nil {
		s.Handler = NewBlock()
	}
	return s.Handler
}

// Finally returns the finally block, creating it on first use.
func (s *TryStatement) Finally() *Block {
	if s.Finalizer == nil {
		s.Finalizer = NewBlock()
	}
	return s.Finalizer
}

// Case appends a case clause and returns its body.
func (s *SwitchStatement) Case(test Expr) *Block {
	c := &CaseClause{Test: test, Body: NewBlock()}
	s.Cases = append(s.Cases, c)
	return c.Body
}

// Default returns the body of the default clause, creating it on first use.
func (s *SwitchStatement) Default() *Block {
	for _, c := range s.Cases {
		if c.Test == nil {
			return c.Body
		}
	}
	c := &CaseClause{Body: NewBlock()}
	s.Cases = append(s.Cases, c)
	return c.Body
}
