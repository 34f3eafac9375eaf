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
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/value"
)

func (x *ctx) compileSpecialForm(name string, node ast.Node, consumer bool) {
	args := node.List[1:]
	switch name {
	case "quote":
		x.compileQuote(node, args, consumer)
	case "time":
		x.compileTime(node, args, consumer)
	case "set":
		x.compileSetOrLet(node, args, consumer, true)
	case "let":
		x.compileSetOrLet(node, args, consumer, false)
	case "fn":
		x.compileFn(node, args, consumer)
	case "if":
		x.compileIf(node, args, consumer)
	case "try":
		x.compileTry(node, args, consumer)
	case "throw":
		x.compileThrow(node, args, consumer)
	case "return":
		x.compileReturn(node, args)
	case "select":
		x.compileSelect(node, args, consumer)
	}
}

// `quote x` (arity 1): OP_PUSH <literal> — the argument is taken as data,
// never evaluated. A symbol quotes to its own name; an atom quotes to
// itself; a list quotes to a KList of its (recursively quoted) elements.
func (x *ctx) compileQuote(node ast.Node, args []ast.Node, consumer bool) {
	if len(args) != 1 {
		x.fail(node.Span, "quote: expected 1 argument, got %d", len(args))
		return
	}
	v := x.quoteValue(args[0])
	idx := x.addConst(v)
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
	x.popIfUnused(node.Span, consumer)
}

func (x *ctx) quoteValue(node ast.Node) value.Value {
	switch node.Kind {
	case ast.KindAtom:
		return atomValue(node)
	case ast.KindSymbol:
		return value.SymAtom(x.c.interner.Intern(node.Symbol))
	case ast.KindList:
		items := make([]value.Value, len(node.List))
		for i, c := range node.List {
			items[i] = x.quoteValue(c)
		}
		return value.List(items...)
	default:
		return value.Bool(false)
	}
}

// `time e` (arity 1): OP_TIMER_SET ; <e> ; OP_TIMER_GET. The timed
// expression's own value is discarded — `time` always produces the
// elapsed nanosecond count.
func (x *ctx) compileTime(node ast.Node, args []ast.Node, consumer bool) {
	if len(args) != 1 {
		x.fail(node.Span, "time: expected 1 argument, got %d", len(args))
		return
	}
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpTimerSet})
	x.compileExpr(args[0], false)
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpTimerGet})
	x.popIfUnused(node.Span, consumer)
}

// `set k v` / `let k v` (arity 2). `set` calls the stateful `set`
// primitive (registered by the runtime); `let` emits OP_LSET directly.
// Both require k to be an unquoted symbol literal, compiled as a quoted
// push (never resolved as a value reference) — `let x v` must bind the
// name `x`, not whatever `x` currently evaluates to.
func (x *ctx) compileSetOrLet(node ast.Node, args []ast.Node, consumer, isSet bool) {
	if len(args) != 2 {
		x.fail(node.Span, "%s: expected 2 arguments, got %d", node.List[0].Symbol, len(args))
		return
	}
	k := args[0]
	if k.Kind != ast.KindSymbol {
		x.fail(k.Span, "%s: first argument must be a symbol", node.List[0].Symbol)
		return
	}
	kidx := x.addConst(value.SymAtom(x.c.interner.Intern(k.Symbol)))
	x.emit(k.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: kidx})
	x.compileExpr(args[1], true)
	if isSet {
		idx, d, ok := x.c.resolve.Primitive("set")
		if !ok {
			x.fail(node.Span, "set: the `set` primitive is not registered")
			return
		}
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpCall2, Attr: d.Attrs, Wide: idx})
	} else {
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpLSet})
	}
	x.popIfUnused(node.Span, consumer)
}

// `fn (params…) body…` (arity >= 2): compiles an inner lambda and pushes
// it as a constant of the enclosing scope.
func (x *ctx) compileFn(node ast.Node, args []ast.Node, consumer bool) {
	if len(args) < 2 {
		x.fail(node.Span, "fn: expected a parameter list and at least one body expression")
		return
	}
	paramList := args[0]
	if paramList.Kind != ast.KindList {
		x.fail(paramList.Span, "fn: parameter list must be a list of symbols")
		return
	}
	params := make([]*symbol.Symbol, len(paramList.List))
	for i, p := range paramList.List {
		if p.Kind != ast.KindSymbol {
			x.fail(p.Span, "fn: parameter %d is not a symbol", i)
			return
		}
		params[i] = x.c.interner.Intern(p.Symbol)
	}
	lam, err := x.c.compileLambda(params, args[1:])
	if err != nil {
		x.err = err
		return
	}
	idx := x.addConst(value.LambdaValue(lam))
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
	x.popIfUnused(node.Span, consumer)
}

// `if c t [e]` (arity 2-3).
func (x *ctx) compileIf(node ast.Node, args []ast.Node, consumer bool) {
	if len(args) < 2 || len(args) > 3 {
		x.fail(node.Span, "if: expected 2 or 3 arguments, got %d", len(args))
		return
	}
	x.compileExpr(args[0], true)
	jne := x.emit(node.Span, bytecode.Instr{Op: bytecode.OpJne})
	x.compileExpr(args[1], consumer)
	if len(args) == 3 {
		jmp := x.emit(node.Span, bytecode.Instr{Op: bytecode.OpJmp})
		x.b.PatchArg(jne, uint64(x.b.Offset()))
		x.compileExpr(args[2], consumer)
		x.b.PatchArg(jmp, uint64(x.b.Offset()))
	} else if consumer {
		// no else branch taken: the then-branch already pushed (and
		// consumed) its value on the taken path; the not-taken path
		// still needs something on the stack for the caller.
		jmp := x.emit(node.Span, bytecode.Instr{Op: bytecode.OpJmp})
		x.b.PatchArg(jne, uint64(x.b.Offset()))
		idx := x.addConst(value.Bool(false))
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
		x.b.PatchArg(jmp, uint64(x.b.Offset()))
	} else {
		x.b.PatchArg(jne, uint64(x.b.Offset()))
	}
}

// `try e h` (arity 2).
func (x *ctx) compileTry(node ast.Node, args []ast.Node, consumer bool) {
	if len(args) != 2 {
		x.fail(node.Span, "try: expected 2 arguments, got %d", len(args))
		return
	}
	try := x.emit(node.Span, bytecode.Instr{Op: bytecode.OpTry})
	x.compileExpr(args[0], consumer)
	jmp := x.emit(node.Span, bytecode.Instr{Op: bytecode.OpJmp})
	x.b.PatchArg(try, uint64(x.b.Offset()))
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpCatch})
	x.compileExpr(args[1], consumer)
	x.b.PatchArg(jmp, uint64(x.b.Offset()))
}

// `throw e` (arity 1). Never leaves a value on the stack: control either
// unwinds to a handler or aborts the VM.
func (x *ctx) compileThrow(node ast.Node, args []ast.Node, _ bool) {
	if len(args) != 1 {
		x.fail(node.Span, "throw: expected 1 argument, got %d", len(args))
		return
	}
	x.compileExpr(args[0], true)
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpThrow})
}

// `return [e]` (arity 0-1).
func (x *ctx) compileReturn(node ast.Node, args []ast.Node) {
	if len(args) > 1 {
		x.fail(node.Span, "return: expected 0 or 1 arguments, got %d", len(args))
		return
	}
	if len(args) == 1 {
		x.compileExpr(args[0], true)
	} else {
		idx := x.addConst(value.Bool(false))
		x.emit(node.Span, bytecode.Instr{Op: bytecode.OpPushConst, Arg: idx})
	}
	x.emit(node.Span, bytecode.Instr{Op: bytecode.OpRet})
}
