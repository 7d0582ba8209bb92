package generator

import (
	"strings"

	"github.com/t14raptor/go-jscode/ast"
)

// printer owns the output. It remembers the last byte written so that tokens
// which would merge into one are separated by a single space.
type printer struct {
	out      strings.Builder
	settings Settings
	last     byte
}

func (p *printer) write(str string) {
	if str == "" {
		return
	}
	if p.last != 0 && merges(p.last, str[0]) {
		p.out.WriteByte(' ')
	}
	p.out.WriteString(str)
	p.last = str[len(str)-1]
}

func (p *printer) aligned() bool {
	return p.settings.IndentAndAlign && !p.settings.MinimumCodeSize
}

func merges(prev, next byte) bool {
	if identByte(prev) && identByte(next) {
		return true
	}
	switch prev {
	case '+', '-':
		return next == prev
	case '/':
		return next == '/' || next == '*'
	}
	return false
}

func identByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '$' || c >= 0x80
}

type state struct {
	p      *printer
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		p:      s.p,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	if s.p.aligned() {
		s.p.write(s.p.settings.NewLine)
	}
}

func (s *state) lineAndPad() {
	if s.p.aligned() {
		s.p.write(s.p.settings.NewLine)
		s.p.write(strings.Repeat(s.p.settings.Indent, s.indent))
	}
}
