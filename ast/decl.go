package ast

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/go-jscode/jsstring"
	"github.com/t14raptor/go-jscode/token"
)

type (
	// VariableDeclaration is var Name or var Name=Init.
	VariableDeclaration struct {
		Name string
		Init Expr
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	// ClassDeclaration is a constructor function plus its prototype. It is
	// generated by way of Lower.
	ClassDeclaration struct {
		Name  string
		Super Expr

		constructor *FunctionLiteral
		fields      *ObjectLiteral
		methods     []*FunctionLiteral
		doc         *DocComment
	}

	// DocComment is a JSDoc block. It is dropped when generating minimum size
	// code.
	DocComment struct {
		Lines  []string
		Params []DocParam
	}

	DocParam struct {
		Name        string
		Description string
	}

	// Package is the top level compilation unit. Unlike a Block it is
	// generated without surrounding braces.
	Package struct {
		Block
	}
)

func NewPackage() *Package {
	return &Package{}
}

// checkName panics if name cannot be used as a variable name.
func checkName(name string) string {
	if !jsstring.IsIdentifier(name) || token.IsKeyword(name) {
		panic(fmt.Sprintf("ast: %q is not a legal variable name", name))
	}
	return name
}

// Add appends a line of free text.
func (d *DocComment) Add(line string) *DocComment {
	d.Lines = append(d.Lines, line)
	return d
}

// AddParam documents a parameter.
func (d *DocComment) AddParam(param *Identifier, description string) *DocComment {
	d.Params = append(d.Params, DocParam{Name: param.Name, Description: description})
	return d
}

func (d *DocComment) IsEmpty() bool {
	return d == nil || len(d.Lines) == 0 && len(d.Params) == 0
}

// NewClass returns an empty class. Names should start with an upper-case
// letter; other names are accepted with a warning.
func NewClass(name string) *ClassDeclaration {
	checkName(name)
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		logger.Warn("class names should start with an upper-case character", "name", name)
	}
	return &ClassDeclaration{
		Name:        name,
		constructor: &FunctionLiteral{Name: name, Body: NewBlock()},
		fields:      Object(),
	}
}

// Extends sets the super class.
func (c *ClassDeclaration) Extends(super Expr) *ClassDeclaration {
	c.Super = super
	return c
}

// Constructor returns the constructor function.
func (c *ClassDeclaration) Constructor() *FunctionLiteral {
	return c.constructor
}

// Field adds a prototype field. A nil init is generated as null. It panics if
// the field already exists.
func (c *ClassDeclaration) Field(name string, init Expr) Target {
	if _, ok := c.fields.Get(name); ok {
		panic(fmt.Sprintf("ast: class %s already has a field %q", c.Name, name))
	}
	if init == nil {
		init = Null()
	}
	c.fields.Add(name, init)
	return RefThis(name)
}

// Method adds a prototype method.
func (c *ClassDeclaration) Method(name string) *FunctionLiteral {
	m := &FunctionLiteral{Name: checkName(name), Body: NewBlock()}
	c.methods = append(c.methods, m)
	return m
}

// Prototype returns Name.prototype.
func (c *ClassDeclaration) Prototype() Target {
	return Member(&Identifier{Name: c.Name}, "prototype")
}

// JSDoc returns the documentation comment of the class, creating it on first
// use.
func (c *ClassDeclaration) JSDoc() *DocComment {
	if c.doc == nil {
		c.doc = &DocComment{}
	}
	return c.doc
}

// Lower returns the statements a class is generated as:
//
//	function Name(...){...}
//	Name.prototype={field:init,...,method:function(...){...}};
//
// With a super class the prototype object is merged onto
// Object.create(Super.prototype).
func (c *ClassDeclaration) Lower() []Stmt {
	ctor := *c.constructor
	if !c.doc.IsEmpty() {
		ctor.doc = c.doc
	}

	proto := Object()
	for _, p := range c.fields.Properties() {
		proto.Add(p.Key, p.Value)
	}
	for _, m := range c.methods {
		anon := *m
		anon.Name = ""
		proto.Add(m.Name, &anon)
	}

	var value Expr = proto
	if c.Super != nil {
		global := &Identifier{Name: "Object"}
		value = InvokeMethod(global, "assign",
			InvokeMethod(global, "create", Member(c.Super, "prototype")),
			proto)
	}
	return []Stmt{
		&FunctionDeclaration{Function: &ctor},
		&ExpressionStatement{Expr: Assign(c.Prototype(), value)},
	}
}
