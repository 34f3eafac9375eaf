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
	"github.com/ray-lang/ray/value"
)

func (x *ctx) compileAtomLiteral(node ast.Node, consumer bool) {
	v := atomValue(node)
	idx := x.addConst(v)
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
	x.popIfUnused(node.Span, consumer)
}

func atomValue(node ast.Node) value.Value {
	switch node.AtomKind {
	case ast.AtomBool:
		return value.Bool(node.Bool)
	case ast.AtomInt:
		return value.Int(node.Int)
	case ast.AtomFloat:
		return value.Float(node.Float)
	case ast.AtomChar:
		return value.CharAtom(node.Char)
	default:
		return value.Bool(false)
	}
}

// compileSymbolRef compiles a bare (non-head-of-application) symbol
// reference per spec §4.7's "Symbol operand compilation": a quoted symbol
// pushes its own literal; otherwise the parameter list, then the
// primitive registry, then the variable dict, in that priority order.
func (x *ctx) compileSymbolRef(node ast.Node, consumer bool) {
	if node.Quoted {
		idx := x.addConst(value.SymAtom(x.c.interner.Intern(node.Symbol)))
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
		x.popIfUnused(node.Span, consumer)
		return
	}
	if node.Symbol == "self" {
		x.pushSelf(node.Span)
		x.popIfUnused(node.Span, consumer)
		return
	}
	if slot, ok := x.paramSlot(node.Symbol); ok {
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpLoad, Arg: uint64(slot)})
		x.popIfUnused(node.Span, consumer)
		return
	}
	if idx, _, ok := x.c.resolve.Primitive(node.Symbol); ok {
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPush, Arg: idx})
		x.popIfUnused(node.Span, consumer)
		return
	}
	if x.columnScope != "" {
		x.compileColumnLookup(node.Span, node.Symbol)
		x.popIfUnused(node.Span, consumer)
		return
	}
	sym := x.c.interner.Intern(node.Symbol)
	cidx := x.addConst(value.SymAtom(sym))
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: cidx})
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpLGet})
	x.popIfUnused(node.Span, consumer)
}

// pushSelf reserves a constant-pool slot for a self-reference and records
// it for compileLambda to patch with the finished lambda once it exists
// (spec: "self-reference ... compiles as OP_PUSH <this-lambda>"; the
// lambda being compiled can't be named as a constant until it is built).
func (x *ctx) pushSelf(span ast.Span) {
	idx := x.addConst(value.Value{})
	x.selfSlots = append(x.selfSlots, int(idx))
	x.emit(span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
}
