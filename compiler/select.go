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

package compiler

import "github.com/ray-lang/ray/ast"

// select lowers spec §4.7.1's query form into ordinary let/call/fn nodes and
// compiles the result exactly as if a programmer had written it out by
// hand — no new bytecode or VM support beyond FN_GROUP_MAP (unused by this
// lowering; see DESIGN.md) is needed.
//
// The runtime this targets has no lexical closures: a `fn` body resolves
// free symbols through the shared variable dict, not an enclosing scope.
// That rules out literally following §4.7.1's vecmap/listmap sketch (which
// presumes per-row/per-column implicit scoping); instead a column
// reference inside a where/by/output-column clause is lowered to an
// explicit lookup against the active table — `(first (at (value t) (find
// (key t) (enlist 'name))))` — and intermediate results are threaded through gensym'd
// variables in that same shared dict. See DESIGN.md for the full writeup
// of this simplification and of `by`'s reduction to one representative row
// per group (no aggregate-function calling convention exists to do
// otherwise without inventing primitives the registry doesn't have).
func (x *ctx) compileSelect(node ast.Node, args []ast.Node, consumer bool) {
	var fromExpr, whereExpr, byExpr, takeExpr ast.Node
	haveFrom, haveWhere, haveBy, haveTake := false, false, false, false

	type outCol struct {
		name string
		expr ast.Node
	}
	var cols []outCol

	for _, a := range args {
		if a.Kind != ast.KindList || len(a.List) != 2 || a.List[0].Kind != ast.KindSymbol {
			x.fail(a.Span, "select: each clause must be (key expr)")
			return
		}
		key, val := a.List[0].Symbol, a.List[1]
		switch key {
		case "from":
			fromExpr, haveFrom = val, true
		case "where":
			whereExpr, haveWhere = val, true
		case "by":
			byExpr, haveBy = val, true
		case "take":
			takeExpr, haveTake = val, true
		default:
			cols = append(cols, outCol{key, val})
		}
	}
	if !haveFrom {
		x.fail(node.Span, "select: a `from` clause is required")
		return
	}

	tableVar := x.gensymName()
	x.compileExpr(letNode(tableVar, fromExpr), false)

	if haveWhere {
		idxVar := x.gensymName()
		x.compileScoped(tableVar, func() {
			x.compileExpr(letNode(idxVar, callNode("where", whereExpr)), false)
		})
		x.compileExpr(letNode(tableVar, reindexTable(symNode(tableVar), symNode(idxVar))), false)
	}

	if haveTake {
		x.compileExpr(letNode(tableVar, retakeTable(symNode(tableVar), takeExpr)), false)
	}

	if haveBy {
		byVecVar := x.gensymName()
		x.compileScoped(tableVar, func() {
			x.compileExpr(letNode(byVecVar, byExpr), false)
		})
		// one representative row per distinct key: the first row at which
		// that key occurred, recovered via find(haystack, distinct(haystack)).
		idxVar := x.gensymName()
		x.compileExpr(letNode(idxVar, callNode("find", symNode(byVecVar), callNode("distinct", symNode(byVecVar)))), false)
		x.compileExpr(letNode(tableVar, reindexTable(symNode(tableVar), symNode(idxVar))), false)
		cols = append([]outCol{{byOutputName(byExpr), byExpr}}, cols...)
	}

	if len(cols) == 0 {
		x.compileExpr(symNode(tableVar), consumer)
		return
	}

	names := make([]ast.Node, len(cols))
	exprs := make([]ast.Node, len(cols))
	for i, c := range cols {
		names[i] = ast.Sym(c.name, true, node.Span)
		exprs[i] = c.expr
	}
	// table() requires a true VSymbol vector of column names, not a KList
	// of symbol atoms — built here as a compile-time concat-of-enlists
	// fold since the column count is known at compile time.
	result := callNode("table", namesVector(names), callNode("list", exprs...))
	x.compileScoped(tableVar, func() {
		x.compileExpr(result, consumer)
	})
}

// compileScoped runs f with column-reference resolution active against
// tableVar, restoring the previous scope (possibly another select's)
// afterward so nested select forms compile correctly.
func (x *ctx) compileScoped(tableVar string, f func()) {
	prev := x.columnScope
	x.columnScope = tableVar
	f()
	x.columnScope = prev
}

// compileColumnLookup lowers a bare free symbol encountered while
// columnScope is active to an explicit column fetch against that table.
// columnScope is cleared while compiling the lookup itself, since its
// `t` references are gensym'd temporaries, not columns.
func (x *ctx) compileColumnLookup(span ast.Span, name string) {
	t := x.columnScope
	// find requires both sides to share a vector kind, so the quoted
	// column name is lifted to a one-element symbol vector via enlist
	// before the lookup, and the one-element gather `at` produces back
	// out via first.
	expr := callNode("first",
		callNode("at",
			callNode("value", symNode(t)),
			callNode("find", callNode("key", symNode(t)), callNode("enlist", ast.Sym(name, true, span))),
		),
	)
	x.columnScope = ""
	x.compileExpr(expr, true)
	x.columnScope = t
}

// namesVector folds a compile-time-known list of quoted-symbol nodes into
// a runtime VSymbol vector via concat-of-enlists (table()'s column-name
// argument must be a real symbol vector, not a KList of symbol atoms).
func namesVector(names []ast.Node) ast.Node {
	node := callNode("enlist", names[0])
	for _, n := range names[1:] {
		node = callNode("concat", node, callNode("enlist", n))
	}
	return node
}

func byOutputName(e ast.Node) string {
	if e.Kind == ast.KindSymbol && !e.Quoted {
		return e.Symbol
	}
	return "by"
}

// --- synthesized-AST helpers -------------------------------------------
//
// select desugars entirely into ordinary syntax, built here and fed back
// through compileExpr, rather than emitting bytecode by hand.

func symNode(name string) ast.Node { return ast.Sym(name, false, ast.Span{}) }

func callNode(head string, args ...ast.Node) ast.Node {
	items := make([]ast.Node, 0, len(args)+1)
	items = append(items, symNode(head))
	items = append(items, args...)
	return ast.ListOf(ast.Span{}, items...)
}

func letNode(name string, val ast.Node) ast.Node {
	return callNode("let", symNode(name), val)
}

func fnNode(params []string, body ast.Node) ast.Node {
	plist := make([]ast.Node, len(params))
	for i, p := range params {
		plist[i] = symNode(p)
	}
	return ast.ListOf(ast.Span{}, symNode("fn"), ast.ListOf(ast.Span{}, plist...), body)
}

// reindexTable rebuilds t with every column gathered by row index idx:
// `(table (key t) (each (fn (col) (at col idx)) (value t)))`.
func reindexTable(t, idx ast.Node) ast.Node {
	return callNode("table",
		callNode("key", t),
		callNode("each", fnNode([]string{"col"}, callNode("at", symNode("col"), idx)), callNode("value", t)),
	)
}

// retakeTable rebuilds t with every column cyclically take'n to n elements:
// `(table (key t) (each (fn (col) (take n col)) (value t)))`.
func retakeTable(t, n ast.Node) ast.Node {
	return callNode("table",
		callNode("key", t),
		callNode("each", fnNode([]string{"col"}, callNode("take", n, symNode("col"))), callNode("value", t)),
	)
}
