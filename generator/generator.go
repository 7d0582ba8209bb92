// Package generator renders a tree built with package ast as JavaScript
// source.
package generator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/jsstring"
	"github.com/t14raptor/go-jscode/op"
	"github.com/t14raptor/go-jscode/token"
)

// Settings controls whitespace. MinimumCodeSize wins over IndentAndAlign.
type Settings struct {
	// IndentAndAlign puts every statement on its own line, indented by
	// nesting depth.
	IndentAndAlign bool
	// MinimumCodeSize drops comments and all optional whitespace, and
	// collapses empty loop and branch bodies to a bare semicolon.
	MinimumCodeSize bool

	Indent  string
	NewLine string
}

func DefaultSettings() Settings {
	return Settings{
		IndentAndAlign: true,
		Indent:         "  ",
		NewLine:        "\n",
	}
}

// Generate renders node. It never fails; invalid trees are a programming
// error and panic.
func Generate(node ast.Node, settings Settings) string {
	if settings.Indent == "" {
		settings.Indent = "  "
	}
	if settings.NewLine == "" {
		settings.NewLine = "\n"
	}
	p := &printer{settings: settings}
	s := &state{
		p:      p,
		node:   node,
		parent: &state{p: p},
	}
	gen(s)
	return p.out.String()
}

func gen(s *state) {
	w := s.p.write
	switch n := s.node.(type) {
	case nil:
	case *ast.BooleanLiteral:
		if n.Value {
			w("true")
		} else {
			w("false")
		}
	case *ast.NullLiteral:
		w("null")
	case *ast.IntLiteral:
		w(n.Literal())
	case *ast.DoubleLiteral:
		w(n.Literal())
	case *ast.DecimalLiteral:
		w(n.Literal())
	case *ast.StringLiteral:
		w(jsstring.Quote(n.Value))
	case *ast.RegExpLiteral:
		pattern := n.Pattern
		if pattern == "" {
			pattern = "(?:)"
		}
		w("/" + jsstring.RegexBody(pattern) + "/" + n.Flags())
	case *ast.Identifier:
		w(n.Name)
	case *ast.ThisExpression:
		w("this")
	case *ast.RawExpression:
		w(n.Code)
	case *ast.MemberExpression:
		s.object(n.Object)
		w(".")
		w(n.Property)
	case *ast.IndexExpression:
		s.object(n.Object)
		w("[")
		gen(s.wrap(n.Index))
		w("]")
	case *ast.ArrayLiteral:
		w("[")
		for i, e := range n.Elements {
			if i > 0 {
				w(",")
			}
			gen(s.wrap(e))
		}
		w("]")
	case *ast.ObjectLiteral:
		w("{")
		for i, p := range n.Properties() {
			if i > 0 {
				w(",")
			}
			gen(s.wrap(n.KeyLiteral(p.Key)))
			w(":")
			gen(s.wrap(p.Value))
		}
		w("}")
	case *ast.CallExpression:
		switch n.Callee.(type) {
		case *ast.FunctionLiteral:
			w("(")
			gen(s.wrap(n.Callee))
			w(")")
		default:
			s.object(n.Callee)
		}
		s.args(n.Args)
	case *ast.NewExpression:
		w("new ")
		switch n.Callee.(type) {
		case *ast.CallExpression, *ast.FunctionLiteral:
			w("(")
			gen(s.wrap(n.Callee))
			w(")")
		default:
			s.object(n.Callee)
		}
		s.args(n.Args)
	case *ast.FunctionLiteral:
		w("function")
		if n.Name != "" {
			w(" " + n.Name)
		}
		w("(")
		for i, p := range n.Params {
			if i > 0 {
				w(",")
			}
			w(p.Name)
		}
		w(")")
		gen(s.wrap(n.Body))
	case *ast.UnaryExpression:
		switch n.Operator {
		case token.Minus:
			w("-")
		case token.Not, token.BitwiseNot:
			if !s.bare() {
				w("(")
				defer w(")")
			}
			w(n.Operator.String())
		default:
			w(n.Operator.String() + " ")
		}
		gen(s.wrap(n.Operand))
	case *ast.UpdateExpression:
		if n.Postfix {
			gen(s.wrap(n.Operand))
			w(n.Operator.String())
		} else {
			w(n.Operator.String())
			gen(s.wrap(n.Operand))
		}
	case *ast.BinaryExpression:
		// a+b+c is flattened, the other side keeps its parentheses
		flat := false
		if pn, ok := s.parent.node.(*ast.BinaryExpression); ok && pn.Left == n && pn.Operator == n.Operator {
			flat = true
		}
		if !flat && !s.bare() {
			w("(")
			defer w(")")
		}
		gen(s.wrap(n.Left))
		switch n.Operator {
		case token.In, token.InstanceOf:
			w(" " + n.Operator.String() + " ")
		default:
			w(n.Operator.String())
		}
		gen(s.wrap(n.Right))
	case *ast.ConditionalExpression:
		if !s.bare() {
			w("(")
			defer w(")")
		}
		gen(s.wrap(n.Test))
		w("?")
		gen(s.wrap(n.Consequent))
		w(":")
		gen(s.wrap(n.Alternate))
	case *ast.AssignExpression:
		switch s.parent.node.(type) {
		case *ast.ExpressionStatement, *ast.ForStatement:
		default:
			w("(")
			defer w(")")
		}
		gen(s.wrap(n.Left))
		w(n.Operator.String())
		gen(s.wrap(n.Right))
	case *ast.ParenExpression:
		w("(")
		gen(s.wrap(n.Expr))
		w(")")

	case *ast.Package:
		for _, st := range n.Statements() {
			if s.skip(st) {
				continue
			}
			gen(s.wrap(st))
			s.line()
		}
	case *ast.Block:
		if n == nil || n.IsEmpty() {
			w("{}")
			return
		}
		w("{")
		s.statements(n.Statements())
		w("}")
	case *ast.VariableDeclaration:
		s.declare(n)
		w(";")
	case *ast.ExpressionStatement:
		if startsWithBrace(n.Expr) {
			w("(")
			gen(s.wrap(n.Expr))
			w(")")
		} else {
			gen(s.wrap(n.Expr))
		}
		w(";")
	case *ast.IfStatement:
		w("if(")
		gen(s.wrap(n.Test))
		w(")")
		s.body(n.Consequent)
		switch alt := n.Alternate.(type) {
		case *ast.Block:
			w("else")
			s.body(alt)
		case *ast.IfStatement:
			w("else")
			gen(s.wrap(alt))
		}
	case *ast.ForStatement:
		w("for(")
		if n.Init != nil {
			s.declare(n.Init)
		}
		w(";")
		gen(s.wrap(n.Test))
		w(";")
		gen(s.wrap(n.Update))
		w(")")
		s.body(n.Body)
	case *ast.ForInStatement:
		w("for(var " + n.Name + " in ")
		gen(s.wrap(n.Object))
		w(")")
		s.body(n.Body)
	case *ast.WhileStatement:
		w("while(")
		gen(s.wrap(n.Test))
		w(")")
		s.body(n.Body)
	case *ast.DoWhileStatement:
		w("do")
		s.body(n.Body)
		w("while(")
		gen(s.wrap(n.Test))
		w(");")
	case *ast.TryStatement:
		w("try")
		gen(s.wrap(n.Body))
		if n.Handler != nil {
			w("catch(" + n.Param + ")")
			gen(s.wrap(n.Handler))
		}
		if n.Finalizer != nil || n.Handler == nil {
			w("finally")
			gen(s.wrap(n.Finalizer))
		}
	case *ast.SwitchStatement:
		w("switch(")
		gen(s.wrap(n.Discriminant))
		w("){")
		s.indent++
		for _, c := range n.Cases {
			s.lineAndPad()
			if c.Test != nil {
				w("case ")
				gen(s.wrap(c.Test))
				w(":")
			} else {
				w("default:")
			}
			s.indent++
			for _, st := range c.Body.Statements() {
				if s.skip(st) {
					continue
				}
				s.lineAndPad()
				gen(s.wrap(st))
			}
			s.indent--
		}
		s.indent--
		s.lineAndPad()
		w("}")
	case *ast.ReturnStatement:
		w("return")
		if n.Argument != nil {
			w(" ")
			gen(s.wrap(n.Argument))
		}
		w(";")
	case *ast.BreakStatement:
		w("break")
		if n.Label != "" {
			w(" " + n.Label)
		}
		w(";")
	case *ast.ContinueStatement:
		w("continue")
		if n.Label != "" {
			w(" " + n.Label)
		}
		w(";")
	case *ast.ThrowStatement:
		w("throw ")
		gen(s.wrap(n.Argument))
		w(";")
	case *ast.DeleteStatement:
		w("delete ")
		gen(s.wrap(n.Target))
		w(";")
	case *ast.DebuggerStatement:
		w("debugger;")
	case *ast.Comment:
		if s.p.settings.MinimumCodeSize {
			return
		}
		if s.p.aligned() {
			for i, l := range strings.Split(n.Text, "\n") {
				if i > 0 {
					s.lineAndPad()
				}
				w("// " + l)
			}
		} else {
			w("/* " + strings.ReplaceAll(n.Text, "*/", "* /") + " */")
		}
	case *ast.Label:
		w(n.Name + ":")
		if !s.followed() {
			w(";")
		}
	case *ast.RawStatement:
		w(n.Code)
	case *ast.FunctionDeclaration:
		s.doc(n.Function.Doc())
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		for i, st := range n.Lower() {
			if i > 0 {
				s.lineAndPad()
			}
			gen(s.wrap(st))
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// statements writes list one level deeper than s and leaves the cursor on a
// fresh line at the level of s.
func (s *state) statements(list []ast.Stmt) {
	s.indent++
	for _, st := range list {
		if s.skip(st) {
			continue
		}
		s.lineAndPad()
		gen(s.wrap(st))
	}
	s.indent--
	s.lineAndPad()
}

// body writes a loop or branch body. Empty bodies collapse to ';' in minimum
// size mode.
func (s *state) body(b *ast.Block) {
	if (b == nil || b.IsEmpty()) && s.p.settings.MinimumCodeSize {
		s.p.write(";")
		return
	}
	gen(s.wrap(b))
}

// followed reports whether a statement other than a comment comes after s in
// the list that holds it. A label needs one to be valid.
func (s *state) followed() bool {
	var lists [][]ast.Stmt
	switch pn := s.parent.node.(type) {
	case *ast.Package:
		lists = append(lists, pn.Statements())
	case *ast.Block:
		lists = append(lists, pn.Statements())
	case *ast.SwitchStatement:
		for _, c := range pn.Cases {
			lists = append(lists, c.Body.Statements())
		}
	}
	for _, list := range lists {
		for i, st := range list {
			if ast.Node(st) != s.node {
				continue
			}
			for _, next := range list[i+1:] {
				if _, comment := next.(*ast.Comment); !comment {
					return true
				}
			}
			return false
		}
	}
	return true
}

func (s *state) skip(st ast.Stmt) bool {
	_, comment := st.(*ast.Comment)
	return comment && s.p.settings.MinimumCodeSize
}

func (s *state) declare(d *ast.VariableDeclaration) {
	s.p.write("var " + d.Name)
	if d.Init != nil {
		s.p.write("=")
		gen(s.wrap(d.Init))
	}
}

func (s *state) args(args []ast.Expr) {
	s.p.write("(")
	for i, a := range args {
		if i > 0 {
			s.p.write(",")
		}
		gen(s.wrap(a))
	}
	s.p.write(")")
}

// object writes the left side of a member access or call, adding parentheses
// where the expression would otherwise bind differently.
func (s *state) object(e ast.Expr) {
	if needsParens(e) {
		s.p.write("(")
		gen(s.wrap(e))
		s.p.write(")")
		return
	}
	gen(s.wrap(e))
}

func needsParens(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.IntLiteral, *ast.DecimalLiteral, *ast.FunctionLiteral:
		return true
	case *ast.DoubleLiteral:
		return n.Value < 0
	case *ast.UnaryExpression:
		return n.Operator != token.Not && n.Operator != token.BitwiseNot
	case *ast.BinaryExpression, *ast.ConditionalExpression, *ast.AssignExpression:
		return false
	}
	return op.HasOperator(e)
}

// bare reports whether s is the condition of a statement that already
// supplies the parentheses.
func (s *state) bare() bool {
	switch pn := s.parent.node.(type) {
	case *ast.IfStatement:
		return pn.Test == s.node
	case *ast.WhileStatement:
		return pn.Test == s.node
	case *ast.DoWhileStatement:
		return pn.Test == s.node
	case *ast.SwitchStatement:
		return pn.Discriminant == s.node
	}
	return false
}

func startsWithBrace(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			return true
		case *ast.MemberExpression:
			e = n.Object
		case *ast.IndexExpression:
			e = n.Object
		case *ast.CallExpression:
			if _, ok := n.Callee.(*ast.FunctionLiteral); ok {
				return false
			}
			e = n.Callee
		case *ast.AssignExpression:
			e = n.Left
		default:
			return false
		}
	}
}

func (s *state) doc(d *ast.DocComment) {
	if d.IsEmpty() || s.p.settings.MinimumCodeSize {
		return
	}
	lines := append([]string(nil), d.Lines...)
	for _, p := range d.Params {
		lines = append(lines, strings.TrimSpace("@param "+p.Name+" "+p.Description))
	}
	if !s.p.aligned() {
		s.p.write("/** " + strings.ReplaceAll(strings.Join(lines, " "), "*/", "* /") + " */")
		return
	}
	s.p.write("/**")
	for _, l := range lines {
		s.lineAndPad()
		s.p.write(" * " + strings.ReplaceAll(l, "*/", "* /"))
	}
	s.lineAndPad()
	s.p.write(" */")
	s.lineAndPad()
}
