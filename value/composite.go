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

package value

import "github.com/ray-lang/ray/internal/symbol"

// List builds a KList value taking ownership of the supplied children
// (spec: "`list(len, …children)` taking ownership of provided children").
func List(children ...Value) Value {
	items := make([]Value, len(children))
	copy(items, children)
	return Value{Kind: KList, p: &payload{rc: 1, length: len(items), items: items}}
}

// Items returns a list's (or a table's column-list's) backing slice.
func (v Value) Items() []Value { return v.p.items }

// Dict builds a KDict value. Fails (returns a KError) if keys is not a
// vector, or if keys and vals have different lengths.
func Dict(keys, vals Value) Value {
	if !keys.Kind.IsVector() {
		return NewError(ErrType, "dict: keys must be a vector", Span{})
	}
	if keys.Len() != vals.Len() {
		return NewError(ErrLength, "dict: keys and values must have equal length", Span{})
	}
	keys = Clone(keys)
	vals = Clone(vals)
	return Value{Kind: KDict, p: &payload{rc: 1, length: keys.Len(), keys: &keys, items: []Value{vals}}}
}

// DictKeys returns a dict's key vector.
func (v Value) DictKeys() Value { return *v.p.keys }

// DictValues returns a dict's value vector.
func (v Value) DictValues() Value { return v.p.items[0] }

// Table builds a KTable value: keys must be a symbol vector naming
// columns, cols a KList of equal-length columns. Fails (returns a
// KError) otherwise.
func Table(keys Value, cols Value) Value {
	if keys.Kind != VSymbol {
		return NewError(ErrType, "table: keys must be a symbol vector", Span{})
	}
	if cols.Kind != KList {
		return NewError(ErrType, "table: cols must be a list", Span{})
	}
	if keys.Len() != cols.Len() {
		return NewError(ErrLength, "table: column-name count must match column count", Span{})
	}
	rows := -1
	for _, c := range cols.Items() {
		if c.Kind.IsAtom() {
			return NewError(ErrType, "table: column must be a vector or composite, not an atom", Span{})
		}
		n := c.Len()
		if rows == -1 {
			rows = n
		} else if n != rows {
			return NewError(ErrLength, "table: all columns must share one length", Span{})
		}
	}
	if rows == -1 {
		rows = 0
	}
	keys = Clone(keys)
	cols = Clone(cols)
	return Value{Kind: KTable, p: &payload{rc: 1, length: rows, keys: &keys, items: []Value{cols}}}
}

// TableColumnNames returns a table's column-name (symbol) vector.
func (v Value) TableColumnNames() Value { return *v.p.keys }

// TableColumns returns a table's column list.
func (v Value) TableColumns() Value { return v.p.items[0] }

// RowCount returns a table's row count (== the length shared by every
// column).
func (v Value) RowCount() int { return v.p.length }

// Enum builds a KEnum value: domain is the symbol vector naming the
// category universe, index is an i64 vector of indices into domain.
func Enum(domain, index Value) Value {
	domain = Clone(domain)
	index = Clone(index)
	return Value{Kind: KEnum, p: &payload{rc: 1, length: index.Len(), domain: &domain, index: &index}}
}

func (v Value) EnumDomain() Value { return *v.p.domain }
func (v Value) EnumIndex() Value  { return *v.p.index }

// Decode expands an enum back into a plain symbol vector by indexing its
// domain with its index column.
func (v Value) Decode() Value {
	v.mustKind(KEnum)
	dom := v.EnumDomain().Syms()
	idx := v.EnumIndex().Ints()
	out := make([]*symbol.Symbol, len(idx))
	for i, d := range idx {
		if d == NullInt || int(d) >= len(dom) {
			out[i] = nil
			continue
		}
		out[i] = dom[d]
	}
	return SymbolVector(out)
}

// Lambda is the compiled-function payload for KLambda values (spec §3.3).
// The bytecode buffer is a flat []uint64 (see package bytecode for the
// instruction encoding); package value only needs to own and refcount it.
//
// A Lambda may also stand in for a primitive reference rather than a
// compiled body (IsNative true, NativeIndex naming its slot in the
// runtime's primitive table) — the representation a bare primitive name
// like `+` resolves to when it is pushed as a first-class value (spec
// §4.7's "function registry -> OP_PUSH <primitive>"). A `fn` form and
// `self` produce compiled lambdas, not native ones. This lets OP_CALLD
// dispatch on one Kind (KLambda) regardless of which case it is, without
// value needing to import package prim.
type Lambda struct {
	Name      string   // empty for anonymous lambdas
	Params    []*symbol.Symbol
	Body      interface{} // *ast.Node of the source body, for decompilation/debug only
	Constants []Value     // the OP_PUSH_CONST pool
	Code      []uint64    // the compiled instruction stream
	StackHint int         // upper-bound operand-stack depth
	Debug     DebugInfo

	IsNative    bool
	NativeIndex int
}

// DebugInfo maps bytecode offsets to source spans, sorted by Offset.
type DebugInfo []DebugEntry

type DebugEntry struct {
	Offset int
	Span   Span
}

// SpanAt returns the span recorded for the instruction at or immediately
// before offset, for the error formatter's caret diagnostic.
func (d DebugInfo) SpanAt(offset int) Span {
	var best Span
	for _, e := range d {
		if e.Offset > offset {
			break
		}
		best = e.Span
	}
	return best
}

// LambdaValue wraps a *Lambda as a KLambda value.
func LambdaValue(l *Lambda) Value {
	return Value{Kind: KLambda, p: &payload{rc: 1, lambda: l}}
}

// AsLambda returns the wrapped *Lambda. Panics if v is not a KLambda.
func (v Value) AsLambda() *Lambda {
	v.mustKind(KLambda)
	return v.p.lambda
}
