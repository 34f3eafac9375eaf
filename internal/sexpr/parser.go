// This file is part of ray - https://github.com/ray-lang/ray
//
// Copyright 2026 The Ray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sexpr

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/ray-lang/ray/ast"
)

type parser struct {
	s    scanner.Scanner
	errs ParseError
	tok  rune
}

func isSymRune(ch rune, i int) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		return true
	case i > 0 && ch >= '0' && ch <= '9':
		return true
	case strings.ContainsRune("+-*/%<>=!?", ch):
		return true
	}
	return false
}

func newParser(name, src string) *parser {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanChars
	p.s.IsIdentRune = isSymRune
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.error(msg) }
	p.advance()
	return p
}

func (p *parser) error(msg string) {
	if len(p.errs) >= maxErrors {
		return
	}
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{p.s.Position, msg})
}

func (p *parser) advance() { p.tok = p.s.Scan() }

func (p *parser) pos() ast.Span {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return ast.Span{StartLine: pos.Line, StartCol: pos.Column, EndLine: pos.Line, EndCol: pos.Column}
}

// Parse reads every top-level form in src and returns them in order. name
// is used only to tag error positions.
func Parse(name, src string) ([]ast.Node, error) {
	p := newParser(name, src)
	var forms []ast.Node
	for p.tok != scanner.EOF {
		n, ok := p.form()
		if !ok {
			break
		}
		forms = append(forms, n)
		if len(p.errs) >= maxErrors {
			break
		}
	}
	if len(p.errs) > 0 {
		return forms, p.errs
	}
	return forms, nil
}

// ParseOne reads a single top-level form, for REPL-style one-expression
// input.
func ParseOne(name, src string) (ast.Node, error) {
	forms, err := Parse(name, src)
	if err != nil {
		return ast.Node{}, err
	}
	if len(forms) == 0 {
		return ast.Node{}, ParseError{{Pos: scanner.Position{Filename: name}, Msg: "empty input"}}
	}
	return forms[0], nil
}

func (p *parser) form() (ast.Node, bool) {
	switch p.tok {
	case scanner.EOF:
		return ast.Node{}, false
	case '(':
		return p.list()
	case scanner.Int:
		return p.intLit()
	case scanner.Float:
		return p.floatLit()
	case scanner.Char:
		return p.charLit()
	case scanner.Ident:
		return p.symbolOrBool()
	case '`':
		return p.quotedSymbol()
	default:
		p.error("unexpected token " + scanner.TokenString(p.tok))
		p.advance()
		return ast.Node{}, false
	}
}

func (p *parser) list() (ast.Node, bool) {
	start := p.pos()
	p.advance() // consume '('
	var items []ast.Node
	for p.tok != ')' && p.tok != scanner.EOF {
		n, ok := p.form()
		if !ok {
			return ast.Node{}, false
		}
		items = append(items, n)
	}
	end := p.pos()
	if p.tok != ')' {
		p.error("unterminated list")
		return ast.Node{}, false
	}
	p.advance() // consume ')'
	sp := ast.Span{StartLine: start.StartLine, StartCol: start.StartCol, EndLine: end.EndLine, EndCol: end.EndCol}
	return ast.ListOf(sp, items...), true
}

func (p *parser) intLit() (ast.Node, bool) {
	sp := p.pos()
	text := p.s.TokenText()
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.error("bad integer literal " + text)
		p.advance()
		return ast.Node{}, false
	}
	p.advance()
	return ast.Int(n, sp), true
}

func (p *parser) floatLit() (ast.Node, bool) {
	sp := p.pos()
	text := p.s.TokenText()
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.error("bad float literal " + text)
		p.advance()
		return ast.Node{}, false
	}
	p.advance()
	return ast.Float(f, sp), true
}

func (p *parser) charLit() (ast.Node, bool) {
	sp := p.pos()
	text := p.s.TokenText()
	unq, err := strconv.Unquote(text)
	if err != nil || len(unq) == 0 {
		p.error("bad char literal " + text)
		p.advance()
		return ast.Node{}, false
	}
	r := []rune(unq)[0]
	p.advance()
	return ast.Char(r, sp), true
}

// quotedSymbol reads a backtick-prefixed name as a quoted symbol literal —
// the reader-level mirror of the formatter's "`sym" rendering (spec §4.10).
func (p *parser) quotedSymbol() (ast.Node, bool) {
	sp := p.pos()
	p.advance() // consume '`'
	if p.tok != scanner.Ident {
		p.error("expected symbol name after `")
		return ast.Node{}, false
	}
	name := p.s.TokenText()
	p.advance()
	return ast.Sym(name, true, sp), true
}

func (p *parser) symbolOrBool() (ast.Node, bool) {
	sp := p.pos()
	text := p.s.TokenText()
	p.advance()
	switch text {
	case "true":
		return ast.Bool(true, sp), true
	case "false":
		return ast.Bool(false, sp), true
	default:
		return ast.Sym(text, false, sp), true
	}
}
