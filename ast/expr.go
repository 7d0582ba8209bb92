package ast

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-jscode/jsstring"
	"github.com/t14raptor/go-jscode/token"
)

type (
	// Identifier is a reference to a variable, function or global.
	Identifier struct {
		Name string
	}

	ThisExpression struct{}

	// MemberExpression is a property access with a bare identifier: obj.name
	MemberExpression struct {
		Object   Expr
		Property string
	}

	// IndexExpression is a computed property access: obj[index]
	IndexExpression struct {
		Object Expr
		Index  Expr
	}

	// RawExpression is emitted verbatim. Nothing checks that Code is valid.
	RawExpression struct {
		Code string
	}

	ArrayLiteral struct {
		Elements []Expr
	}

	// Property is a single key/value pair of an ObjectLiteral.
	Property struct {
		Key   string
		Value Expr
	}

	// ObjectLiteral is an ordered associative array. Adding an existing key
	// replaces the value but keeps the original position.
	ObjectLiteral struct {
		ForceQuoting bool

		props []Property
		index map[string]int
	}

	CallExpression struct {
		Callee Expr
		Args   []Expr
	}

	NewExpression struct {
		Callee Expr
		Args   []Expr
	}

	// FunctionLiteral is a function expression. An empty Name makes it anonymous.
	FunctionLiteral struct {
		Name   string
		Params []*Identifier
		Body   *Block

		doc *DocComment
	}

	UnaryExpression struct {
		Operator token.Token
		Operand  Expr
	}

	UpdateExpression struct {
		Operator token.Token
		Operand  Expr
		Postfix  bool
	}

	BinaryExpression struct {
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	// AssignExpression is a plain (=) or compound (+=, -=, ...) assignment.
	AssignExpression struct {
		Operator token.Token
		Left     Target
		Right    Expr
	}

	// ParenExpression forces parentheses around Expr.
	ParenExpression struct {
		Expr Expr
	}
)

// Ref returns a reference to name. It panics if name is not a valid
// identifier.
func Ref(name string) *Identifier {
	if !jsstring.IsIdentifier(name) {
		panic(fmt.Sprintf("ast: %q is not a valid identifier", name))
	}
	return &Identifier{Name: name}
}

// Undefined returns a reference to the global undefined.
func Undefined() *Identifier {
	return &Identifier{Name: "undefined"}
}

// This returns the this keyword.
func This() *ThisExpression {
	return &ThisExpression{}
}

// Member returns the property path obj.names[0].names[1]... Names that are not
// valid identifiers are accessed with a quoted index instead.
func Member(obj Expr, names ...string) Target {
	var t Target
	for _, name := range names {
		if jsstring.IsIdentifier(name) {
			t = &MemberExpression{Object: obj, Property: name}
		} else {
			t = &IndexExpression{Object: obj, Index: String(name)}
		}
		obj = t
	}
	if t == nil {
		panic("ast: member access without property names")
	}
	return t
}

// RefThis returns this.names[0].names[1]...
func RefThis(names ...string) Target {
	return Member(This(), names...)
}

// Index returns obj[index].
func Index(obj, index Expr) *IndexExpression {
	return &IndexExpression{Object: obj, Index: index}
}

// Direct returns an unchecked code fragment.
func Direct(code string) *RawExpression {
	return &RawExpression{Code: code}
}

// Array returns an array literal containing elems.
func Array(elems ...Expr) *ArrayLiteral {
	return &ArrayLiteral{Elements: elems}
}

// Add appends e.
func (a *ArrayLiteral) Add(e Expr) *ArrayLiteral {
	a.Elements = append(a.Elements, e)
	return a
}

func (a *ArrayLiteral) Len() int {
	return len(a.Elements)
}

// Object returns an empty object literal.
func Object() *ObjectLiteral {
	return &ObjectLiteral{}
}

// Add sets key to value.
func (o *ObjectLiteral) Add(key string, value Expr) *ObjectLiteral {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.props[i].Value = value
		return o
	}
	o.index[key] = len(o.props)
	o.props = append(o.props, Property{Key: key, Value: value})
	return o
}

// Get returns the value stored for key.
func (o *ObjectLiteral) Get(key string) (Expr, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.props[i].Value, true
}

// Remove deletes key and reports whether it was present.
func (o *ObjectLiteral) Remove(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.props = slices.Delete(o.props, i, i+1)
	delete(o.index, key)
	for j := i; j < len(o.props); j++ {
		o.index[o.props[j].Key] = j
	}
	return true
}

func (o *ObjectLiteral) Len() int {
	return len(o.props)
}

// Properties returns the pairs in insertion order. The slice must not be
// modified.
func (o *ObjectLiteral) Properties() []Property {
	return o.props
}

// SetForceQuoting makes every key render as a string literal.
func (o *ObjectLiteral) SetForceQuoting(v bool) *ObjectLiteral {
	o.ForceQuoting = v
	return o
}

// KeyLiteral returns the expression a property key is rendered as: a bare
// identifier when possible, a number for canonical array indices and a quoted
// string otherwise.
func (o *ObjectLiteral) KeyLiteral(key string) Expr {
	if o.ForceQuoting {
		return String(key)
	}
	if jsstring.IsIdentifier(key) && !token.IsKeyword(key) {
		return &Identifier{Name: key}
	}
	if n, err := strconv.ParseUint(key, 10, 53); err == nil && strconv.FormatUint(n, 10) == key {
		return Int(n)
	}
	return String(key)
}

// Invoke returns callee(args...).
func Invoke(callee Expr, args ...Expr) *CallExpression {
	return &CallExpression{Callee: callee, Args: args}
}

// InvokeMethod returns obj.name(args...).
func InvokeMethod(obj Expr, name string, args ...Expr) *CallExpression {
	return Invoke(Member(obj, name), args...)
}

// Arg appends an argument.
func (c *CallExpression) Arg(e Expr) *CallExpression {
	c.Args = append(c.Args, e)
	return c
}

// New returns new callee(args...).
func New(callee Expr, args ...Expr) *NewExpression {
	return &NewExpression{Callee: callee, Args: args}
}

// Arg appends an argument.
func (n *NewExpression) Arg(e Expr) *NewExpression {
	n.Args = append(n.Args, e)
	return n
}

// Function returns an anonymous function with the given parameters.
func Function(params ...string) *FunctionLiteral {
	f := &FunctionLiteral{Body: NewBlock()}
	for _, p := range params {
		f.Param(p)
	}
	return f
}

// Param adds a parameter and returns a reference to it.
func (f *FunctionLiteral) Param(name string) *Identifier {
	id := Ref(name)
	f.Params = append(f.Params, id)
	return id
}

// Ref returns a reference to a named function. It panics for anonymous ones.
func (f *FunctionLiteral) Ref() *Identifier {
	return Ref(f.Name)
}

// Invoke calls the function by name, or calls the literal itself when it is
// anonymous.
func (f *FunctionLiteral) Invoke(args ...Expr) *CallExpression {
	if f.Name != "" {
		return Invoke(f.Ref(), args...)
	}
	return Invoke(f, args...)
}

// JSDoc returns the documentation comment, creating it on first use.
func (f *FunctionLiteral) JSDoc() *DocComment {
	if f.doc == nil {
		f.doc = &DocComment{}
	}
	return f.doc
}

// Doc returns the documentation comment or nil.
func (f *FunctionLiteral) Doc() *DocComment {
	return f.doc
}

// Assign returns left=right as an expression.
func Assign(left Target, right Expr) *AssignExpression {
	return &AssignExpression{Operator: token.Assign, Left: left, Right: right}
}
