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

// Package ast defines the syntax tree contract produced by the external
// source parser. The parser itself is not part of this module: it is
// treated as a black box that turns source text into a tree of Node values
// carrying debug Spans. The compiler package consumes this contract.
package ast

// Span ties a syntax tree node back to a region of source text.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol      int
}

// Zero reports whether the span carries no source-location information
// (e.g. for a synthesized node with no corresponding source text).
func (s Span) Zero() bool {
	return s == Span{}
}

// Kind discriminates the shapes a Node may take.
type Kind byte

const (
	// KindAtom is a scalar literal: bool, i64, f64, char, timestamp, or guid.
	KindAtom Kind = iota
	// KindSymbol is a name, optionally quoted (see Quoted).
	KindSymbol
	// KindList is an application: List[0] applied to List[1:], or a
	// special form when List[0] is a symbol matching a reserved keyword.
	KindList
)

// AtomKind distinguishes the scalar literal kinds a KindAtom node may hold.
type AtomKind byte

const (
	AtomBool AtomKind = iota
	AtomInt
	AtomFloat
	AtomChar
	AtomTimestamp
	AtomGUID
)

// Node is one syntax tree node as produced by the external parser.
type Node struct {
	Kind Kind
	Span Span

	// KindAtom fields.
	AtomKind AtomKind
	Bool     bool
	Int      int64
	Float    float64
	Char     rune
	Str      string // GUID textual form, timestamp textual form, etc.

	// KindSymbol fields.
	Symbol string
	Quoted bool

	// KindList fields.
	List []Node
}

// Atom constructors, used by the internal sexpr reader and by tests.

func Int(n int64, sp Span) Node    { return Node{Kind: KindAtom, AtomKind: AtomInt, Int: n, Span: sp} }
func Float(f float64, sp Span) Node {
	return Node{Kind: KindAtom, AtomKind: AtomFloat, Float: f, Span: sp}
}
func Bool(b bool, sp Span) Node { return Node{Kind: KindAtom, AtomKind: AtomBool, Bool: b, Span: sp} }
func Char(c rune, sp Span) Node { return Node{Kind: KindAtom, AtomKind: AtomChar, Char: c, Span: sp} }

// Sym constructs a symbol node. If quoted is true the compiler emits a
// literal push rather than resolving the name (spec: "a `quoted` attribute
// bit on the symbol").
func Sym(name string, quoted bool, sp Span) Node {
	return Node{Kind: KindSymbol, Symbol: name, Quoted: quoted, Span: sp}
}

// ListOf constructs an application/special-form node.
func ListOf(sp Span, items ...Node) Node {
	return Node{Kind: KindList, List: items, Span: sp}
}
