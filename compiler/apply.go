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

import (
	"github.com/ray-lang/ray/ast"
	"github.com/ray-lang/ray/bytecode"
	"github.com/ray-lang/ray/prim"
)

// specialForms are the reserved keywords recognized as the head of a list
// (spec §4.7's special-form table plus select, §4.7.1).
var specialForms = map[string]bool{
	"quote": true, "time": true, "set": true, "let": true, "fn": true,
	"if": true, "try": true, "throw": true, "return": true, "select": true,
}

func (x *ctx) compileList(node ast.Node, consumer bool) {
	if len(node.List) == 0 {
		x.fail(node.Span, "empty application")
		return
	}
	head := node.List[0]
	if head.Kind == ast.KindSymbol && !head.Quoted && specialForms[head.Symbol] {
		x.compileSpecialForm(head.Symbol, node, consumer)
		return
	}
	x.compileApply(node, consumer)
}

// compileApply lowers a non-special call. If the head is a free symbol
// that resolves directly to a registered primitive (and isn't shadowed by
// a parameter or `self`), it emits the compact CALL1/CALL2/CALLN form;
// otherwise it falls back to the generic push-callable-then-CALLD path
// (spec §4.7: "If the head resolves via the variable dict at runtime, the
// compiler emits OP_CALLD").
func (x *ctx) compileApply(node ast.Node, consumer bool) {
	head := node.List[0]
	args := node.List[1:]

	if head.Kind == ast.KindSymbol && !head.Quoted && head.Symbol != "self" {
		if _, shadowed := x.paramSlot(head.Symbol); !shadowed {
			if idx, d, ok := x.c.resolve.Primitive(head.Symbol); ok {
				x.compilePrimitiveCall(node.Span, idx, d, args)
				x.popIfUnused(node.Span, consumer)
				return
			}
		}
	}

	// Generic dynamic dispatch: push the callable, then the arguments, then
	// CALLD. The callable producer is compiled exactly as a consumed bare
	// expression would be (self/param/dict symbol, or a nested expression).
	x.compileExpr(head, true)
	for _, a := range args {
		x.compileExpr(a, true)
	}
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpCallD, Arg: uint64(len(args))})
	x.popIfUnused(node.Span, consumer)
}

// compilePrimitiveCall emits the compact CALL1/CALL2/CALLN form, checking
// the argument count against the primitive's declared arity class (spec
// §4.7: "the arity must match the declared class").
func (x *ctx) compilePrimitiveCall(span ast.Span, idx uint64, d *prim.Descriptor, args []ast.Node) {
	switch d.Arity {
	case prim.Unary:
		if len(args) != 1 {
			x.fail(span, "%s: expected 1 argument, got %d", d.Name, len(args))
			return
		}
		x.compileExpr(args[0], true)
		x.emit(span, bytecode.Instr{Op: bytecode.OpCall1, Attr: d.Attrs, Wide: idx})
	case prim.Binary:
		if len(args) != 2 {
			x.fail(span, "%s: expected 2 arguments, got %d", d.Name, len(args))
			return
		}
		x.compileExpr(args[0], true)
		x.compileExpr(args[1], true)
		x.emit(span, bytecode.Instr{Op: bytecode.OpCall2, Attr: d.Attrs, Wide: idx})
	default:
		for _, a := range args {
			x.compileExpr(a, true)
		}
		x.emit(span, bytecode.Instr{Op: bytecode.OpCallN, Attr: d.Attrs, Arg: uint64(len(args)), Wide: idx})
	}
}
