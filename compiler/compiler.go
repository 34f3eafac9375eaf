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
	"fmt"

	"github.com/ray-lang/ray/ast"
	"github.com/ray-lang/ray/bytecode"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
)

// Resolver is how the compiler finds a primitive's CALL-family operand
// (its table index and descriptor) without importing the package that
// owns the table.
type Resolver interface {
	Primitive(name string) (idx uint64, d *prim.Descriptor, ok bool)
}

// Compiler turns syntax trees into lambdas against one fixed interner and
// primitive table.
type Compiler struct {
	interner *symbol.Interner
	resolve  Resolver
	gensym   int
}

// New builds a Compiler. interner is shared with the running runtime so
// that symbols the compiler interns (quoted literals, LGET/LSET operands)
// compare equal (by pointer) to the ones the variable dict uses.
func New(interner *symbol.Interner, resolve Resolver) *Compiler {
	return &Compiler{interner: interner, resolve: resolve}
}

// ctx is one lambda's in-progress compilation: its instruction builder,
// constant pool, debug table, parameter scope, and a running operand-stack
// depth used to compute the lambda's StackHint (spec §4.8's "stack-size
// contract").
type ctx struct {
	c      *Compiler
	b      *bytecode.Builder
	consts []value.Value
	debug  []value.DebugEntry
	params []*symbol.Symbol

	depth, maxDepth int

	selfSlots []int // constant-pool indices reserved by `self`, patched after the lambda exists
	err       error

	// columnScope, when non-empty, names the gensym'd table variable that
	// a free symbol inside a select clause (§4.7.1) resolves against
	// instead of the ordinary variable dict. Empty outside select clauses.
	columnScope string
}

func newCtx(c *Compiler, params []*symbol.Symbol) *ctx {
	return &ctx{c: c, b: bytecode.NewBuilder(), params: params}
}

func (x *ctx) fail(span ast.Span, format string, args ...interface{}) {
	if x.err != nil {
		return
	}
	x.err = &CompileError{Span: span, Msg: fmt.Sprintf(format, args...)}
}

// CompileError is returned by Compile on any compile-time failure, marked
// with the offending node's span (spec §7's "compiler returns an
// error-typed lambda ... marked with the offending node's span" — realized
// here as a Go error rather than a sentinel lambda).
type CompileError struct {
	Span ast.Span
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.StartLine, e.Span.StartCol, e.Msg)
}

func (x *ctx) emit(span ast.Span, instr bytecode.Instr) int {
	at := x.b.Emit(instr)
	x.debug = append(x.debug, value.DebugEntry{Offset: at, Span: span})
	x.adjustDepth(instr)
	return at
}

// adjustDepth keeps a running, intentionally approximate operand-stack
// depth so the compiled lambda carries a usable StackHint; it is a bound,
// not an exact simulation of every opcode's stack effect.
func (x *ctx) adjustDepth(instr bytecode.Instr) {
	switch instr.Op {
	case bytecode.OpPop, bytecode.OpJne, bytecode.OpThrow:
		x.depth--
	case bytecode.OpPush, bytecode.OpPushConst, bytecode.OpDup, bytecode.OpLoad, bytecode.OpCatch, bytecode.OpTimerGet:
		x.depth++
	case bytecode.OpLSet:
		x.depth--
	case bytecode.OpCall1:
		// pop 1, push 1: net zero
	case bytecode.OpCall2:
		x.depth--
	case bytecode.OpCallN, bytecode.OpCallD:
		arity := int(instr.Arg)
		if instr.Op == bytecode.OpCallD {
			arity++ // the callable itself
		}
		x.depth -= arity - 1
	}
	if x.depth < 0 {
		x.depth = 0
	}
	if x.depth > x.maxDepth {
		x.maxDepth = x.depth
	}
}

func (x *ctx) addConst(v value.Value) uint64 {
	x.consts = append(x.consts, v)
	return uint64(len(x.consts) - 1)
}

// paramSlot returns the slot of name in the current scope's parameter
// list, if bound there.
func (x *ctx) paramSlot(name string) (int, bool) {
	for i, p := range x.params {
		if p.String() == name {
			return i, true
		}
	}
	return -1, false
}

func (x *ctx) gensym() *symbol.Symbol {
	x.c.gensym++
	return x.c.interner.Intern(fmt.Sprintf("__gensym_%d", x.c.gensym))
}

// gensymName is gensym without interning — for names destined to appear as
// ast.Node symbols in a synthesized tree (select's lowering), which get
// interned when that tree is compiled like any other variable reference.
func (x *ctx) gensymName() string {
	x.c.gensym++
	return fmt.Sprintf("__sel_%d", x.c.gensym)
}

// Compile lowers a single top-level expression into a lambda whose
// bytecode ends in OP_RET, per §4.7. The expression's value is always
// consumed (has_consumer=true at the top level).
func (c *Compiler) Compile(node ast.Node) (*value.Lambda, error) {
	return c.compileLambda(nil, []ast.Node{node})
}

// compileLambda compiles a multi-expression body under a fixed parameter
// scope: every expression but the last is compiled with has_consumer=false
// (spec §4.7: "a trailing OP_POP is emitted" when unused), the last with
// has_consumer=true, followed by OP_RET.
func (c *Compiler) compileLambda(params []*symbol.Symbol, body []ast.Node) (*value.Lambda, error) {
	x := newCtx(c, params)
	retSpan := ast.Span{}
	if len(body) == 0 {
		x.compileExpr(ast.Bool(false, retSpan), true)
	}
	for idx, expr := range body {
		last := idx == len(body)-1
		x.compileExpr(expr, last)
		if last {
			retSpan = expr.Span
		}
		if x.err != nil {
			return nil, x.err
		}
	}
	x.emit(retSpan, bytecode.Instr{Op: bytecode.OpRet})

	lam := &value.Lambda{
		Params:    params,
		Constants: x.consts,
		Code:      x.b.Code(),
		StackHint: x.maxDepth + 1,
		Debug:     value.DebugInfo(x.debug),
	}
	for _, slot := range x.selfSlots {
		lam.Constants[slot] = value.LambdaValue(lam)
	}
	return lam, nil
}

// compileExpr is the recursive compiler. consumer reports whether the
// caller wants this expression's value left on the stack; if not, a
// trailing OP_POP is emitted once the value is produced.
func (x *ctx) compileExpr(node ast.Node, consumer bool) {
	if x.err != nil {
		return
	}
	switch node.Kind {
	case ast.KindAtom:
		x.compileAtomLiteral(node, consumer)
	case ast.KindSymbol:
		x.compileSymbolRef(node, consumer)
	case ast.KindList:
		x.compileList(node, consumer)
	default:
		x.fail(node.Span, "unrecognized node kind %d", node.Kind)
	}
}

func (x *ctx) popIfUnused(span ast.Span, consumer bool) {
	if !consumer {
		x.emit(span, bytecode.Instr{Op: bytecode.OpPop})
	}
}
