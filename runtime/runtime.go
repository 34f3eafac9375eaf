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

// Package runtime wires the pieces the other packages deliberately leave
// apart — the symbol interner, the primitive table, the variable dict, the
// compiler, and the VM — into one environment (spec §4.6's C6). It owns the
// two stateful primitives, `set` and `each`, that the stateless prim.New
// registry can't provide: `set` writes to the variable dict, and `each`
// calls back into the VM to apply a lambda argument, so both need a
// reference to the very Runtime they're registered on.
package runtime

import (
	"io"

	"github.com/ray-lang/ray/compiler"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
	"github.com/ray-lang/ray/vm"
)

// specialForms are the reserved keywords compiler.compileSpecialForm
// recognizes (spec §4.7's table) plus `self` (§4.7's self-reference case).
// Pre-interned at construction per the supplemented core/symbols.c eager
// reserved-word table (SPEC_FULL.md §7).
var specialForms = []string{
	"quote", "time", "set", "let", "fn", "if", "try", "throw", "return", "select", "self",
}

// alwaysBoundPrimitives are pre-interned regardless of whether a program
// references them, mirroring core/symbols.c's eager symbol table rather
// than leaving every primitive name to be interned lazily on first use.
var alwaysBoundPrimitives = []string{
	"+", "-", "*", "%", "=", "<>", "<", "<=", ">", ">=", "and", "or",
}

const defaultOperandStackHint = 256

// Option configures a Runtime at construction, mirroring the teacher's
// vm.Option functional-options pattern (and this repo's own vm.Option).
type Option func(*Runtime)

// OperandStackHint sets the VM's initial operand-stack capacity.
func OperandStackHint(n int) Option {
	return func(r *Runtime) { r.stackHint = n }
}

// Slaves records the parallel-refcount mode from spec §5 ("when the
// runtime is configured with 'slaves' ... refcount updates use atomic
// fetch-add/sub"). n is the worker count; 0 means the default
// single-threaded plain-integer mode. The mode is fixed at construction
// and may not change thereafter, per §5.
//
// value.Clone/Drop use plain (non-atomic) refcount updates regardless of
// this setting — retrofitting atomic rc across every Value payload is out
// of scope for this pass (see DESIGN.md); Slaves is recorded here so a
// caller's configuration round-trips and so a future rc implementation has
// somewhere to read the mode from, but it does not yet change rc behavior.
func Slaves(n int) Option {
	return func(r *Runtime) { r.slaves = n }
}

// Output sets the writer handed to the VM via vm.Output. The `string`
// primitive returns a char vector and does not write to it.
func Output(w io.Writer) Option {
	return func(r *Runtime) { r.output = w }
}

// Runtime is one environment: an interner, a primitive table, a variable
// dict, and the compiler+VM pair that share them (spec §4.6's "runtime_init
// creates the function registry ... an empty variables dict, the symbol
// interner, and the VM").
type Runtime struct {
	interner *symbol.Interner
	vars     *varEnv
	table    []*prim.Descriptor
	byName   map[string]uint64
	compiler *compiler.Compiler
	vm       *vm.Instance

	stackHint int
	slaves    int
	output    io.Writer
}

// New builds a Runtime, applying opts over sane defaults, then runs
// runtime_init: pre-interns the reserved words and always-bound
// primitives, installs the stateful `set`/`each` primitives, and
// constructs the compiler and VM over the finished table.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		vars:      newVarEnv(),
		interner:  symbol.New(),
		stackHint: defaultOperandStackHint,
		output:    io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}

	reg := prim.New()
	r.table = make([]*prim.Descriptor, 0, len(reg)+2)
	r.byName = make(map[string]uint64, len(reg)+2)
	for name, d := range reg {
		r.byName[name] = uint64(len(r.table))
		r.table = append(r.table, d)
	}
	r.register(&prim.Descriptor{Name: "set", Arity: prim.Binary, Binary: r.primSet})
	r.register(&prim.Descriptor{Name: "each", Arity: prim.Binary, Binary: r.primEach})

	r.vm = vm.New(
		vm.Primitives(r.table),
		vm.Vars(r.vars),
		vm.OperandStackHint(r.stackHint),
		vm.Output(r.output),
	)
	r.compiler = compiler.New(r.interner, r)

	for _, name := range specialForms {
		r.interner.Intern(name)
	}
	for _, name := range alwaysBoundPrimitives {
		r.interner.Intern(name)
	}

	return r
}

// register appends d to the primitive table, indexing it by name — used
// both for the stateful primitives above and available to callers that
// want to extend the table (e.g. host-embedding primitives) before the
// first Eval.
func (r *Runtime) register(d *prim.Descriptor) {
	r.byName[d.Name] = uint64(len(r.table))
	r.table = append(r.table, d)
}

// Primitive implements compiler.Resolver.
func (r *Runtime) Primitive(name string) (idx uint64, d *prim.Descriptor, ok bool) {
	idx, ok = r.byName[name]
	if !ok {
		return 0, nil, false
	}
	return idx, r.table[idx], true
}

// Interner exposes the runtime's symbol interner, for callers that need to
// intern or look up names outside of Eval (e.g. a REPL completer).
func (r *Runtime) Interner() *symbol.Interner { return r.interner }

// InstructionCount returns the number of bytecode instructions executed so
// far across every Eval call, for a REPL driver's -stats reporting.
func (r *Runtime) InstructionCount() int64 { return r.vm.InstructionCount() }

// primSet is the stateful `set` primitive the `set` special form compiles
// a call to (spec §4.7's "set k v ... call primitive set"): writes v into
// the variable dict under k and returns v.
func (r *Runtime) primSet(k, v value.Value) value.Value {
	if k.Kind != value.KSymbol {
		return value.NewError(value.ErrType, "set: key must be a symbol", value.Span{})
	}
	return r.vars.Set(k.AsSymbol(), v)
}

// primEach is the stateful `each` primitive select's lowering depends on
// (SPEC_FULL.md §6.5): applies fn to every element of list xs, recursing
// into the VM for a compiled lambda or calling straight through the
// primitive table for a native primitive reference (spec §3.3's lambda
// union of "compiled body" and "primitive reference").
func (r *Runtime) primEach(fn, xs value.Value) value.Value {
	if fn.Kind != value.KLambda || xs.Kind != value.KList {
		return value.NewError(value.ErrType, "each: expects (lambda, list)", value.Span{})
	}
	lam := fn.AsLambda()
	items := xs.Items()
	out := make([]value.Value, len(items))
	for i, item := range items {
		if lam.IsNative {
			out[i] = r.table[lam.NativeIndex].Call([]value.Value{value.Clone(item)})
			continue
		}
		res, err := r.vm.Eval(lam, []value.Value{value.Clone(item)})
		if err != nil {
			panic(err) // fatal VM condition; each never recovers from it
		}
		out[i] = res
	}
	return value.List(out...)
}
