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

package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-lang/ray/compiler"
	"github.com/ray-lang/ray/internal/sexpr"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
	"github.com/ray-lang/ray/vm"
)

// testVars is a minimal vm.VarEnv backing the compiled lambdas' variable
// dict for these tests — just a plain symbol-keyed map, no runtime
// lifecycle behavior.
type testVars struct {
	m map[*symbol.Symbol]value.Value
}

func newTestVars() *testVars { return &testVars{m: map[*symbol.Symbol]value.Value{}} }

func (v *testVars) Get(sym *symbol.Symbol) (value.Value, bool) {
	val, ok := v.m[sym]
	return val, ok
}

func (v *testVars) Set(sym *symbol.Symbol, val value.Value) value.Value {
	v.m[sym] = val
	return val
}

// tableResolver implements compiler.Resolver over a flat primitive table,
// the same shape runtime will eventually build and hand to both the
// compiler and the VM.
type tableResolver struct {
	table []*prim.Descriptor
	byIdx map[string]uint64
}

func (r *tableResolver) Primitive(name string) (uint64, *prim.Descriptor, bool) {
	idx, ok := r.byIdx[name]
	if !ok {
		return 0, nil, false
	}
	return idx, r.table[idx], true
}

// eachOver is the stateful `each` primitive select's lowering depends on
// (spec §4.7.1) — applies fn to every item of a KList, recursing into the
// VM for a compiled lambda or calling straight through for a native
// primitive reference. Standing in here for runtime's future registration
// of the same primitive.
func eachOver(inst *vm.Instance, table []*prim.Descriptor, fn, xs value.Value) value.Value {
	if fn.Kind != value.KLambda || xs.Kind != value.KList {
		return value.NewError(value.ErrType, "each: expects (lambda, list)", value.Span{})
	}
	lam := fn.AsLambda()
	items := xs.Items()
	out := make([]value.Value, len(items))
	for i, item := range items {
		if lam.IsNative {
			out[i] = table[lam.NativeIndex].Call([]value.Value{value.Clone(item)})
			continue
		}
		res, err := inst.Eval(lam, []value.Value{value.Clone(item)})
		if err != nil {
			panic(err) // fatal VM condition; never expected from well-formed test input
		}
		out[i] = res
	}
	return value.List(out...)
}

// newEnv builds one shared primitive table (the full registry plus the
// test-local `each`), a VM instance over it, and a Compiler resolving
// against the same table — mirroring how runtime will wire compiler and vm
// together against one shared index space. inst is forward-declared so
// each's closure can call back into the very instance it is registered on.
func newEnv(t *testing.T) (*compiler.Compiler, *vm.Instance) {
	t.Helper()
	reg := prim.New()

	table := make([]*prim.Descriptor, 0, len(reg)+1)
	byIdx := map[string]uint64{}
	for name, d := range reg {
		byIdx[name] = uint64(len(table))
		table = append(table, d)
	}

	var inst *vm.Instance
	byIdx["each"] = uint64(len(table))
	table = append(table, &prim.Descriptor{
		Name:  "each",
		Arity: prim.Binary,
		Binary: func(fn, xs value.Value) value.Value {
			return eachOver(inst, table, fn, xs)
		},
	})

	inst = vm.New(vm.Primitives(table), vm.Vars(newTestVars()))
	c := compiler.New(symbol.New(), &tableResolver{table: table, byIdx: byIdx})
	return c, inst
}

func eval(t *testing.T, c *compiler.Compiler, inst *vm.Instance, src string) value.Value {
	t.Helper()
	node, err := sexpr.ParseOne("t", src)
	require.NoError(t, err)
	lam, err := c.Compile(node)
	require.NoError(t, err)
	result, err := inst.Eval(lam, nil)
	require.NoError(t, err)
	return result
}

func TestCompileArithmetic(t *testing.T) {
	c, inst := newEnv(t)
	result := eval(t, c, inst, "(+ 1 (* 2 3))")
	assert.Equal(t, int64(7), result.AsInt())
}

func TestCompileIfBranches(t *testing.T) {
	c, inst := newEnv(t)
	assert.Equal(t, int64(10), eval(t, c, inst, "(if (< 3 5) 10 20)").AsInt())
	assert.Equal(t, int64(20), eval(t, c, inst, "(if (< 5 3) 10 20)").AsInt())
}

func TestCompileSelfRecursiveFibonacci(t *testing.T) {
	c, inst := newEnv(t)
	src := "((fn (n) (if (< n 2) n (+ (self (- n 1)) (self (- n 2))))) 10)"
	assert.Equal(t, int64(55), eval(t, c, inst, src).AsInt())
}

func TestCompileTryCatchesThrow(t *testing.T) {
	c, inst := newEnv(t)
	result := eval(t, c, inst, "(try (throw 7) 42)")
	assert.Equal(t, int64(42), result.AsInt())
}

func TestCompileThrowUncaughtIsErrorValue(t *testing.T) {
	c, inst := newEnv(t)
	result := eval(t, c, inst, "(throw 7)")
	assert.True(t, result.IsError())
}

func TestCompileLetSequencingInLambdaBody(t *testing.T) {
	c, inst := newEnv(t)
	result := eval(t, c, inst, "((fn () (let x 5) (* x x)))")
	assert.Equal(t, int64(25), result.AsInt())
}

func TestCompileSelectWhereFiltersRowsByColumnName(t *testing.T) {
	c, inst := newEnv(t)
	src := "((fn () " +
		"(let t (table (concat (enlist `a) (enlist `b)) (list (til 5) (< (til 5) 3)))) " +
		"(select (from t) (where (< a 3)) (keep a))))"
	result := eval(t, c, inst, src)
	require.False(t, result.IsError(), "select result: %+v", result)
	require.Equal(t, value.KTable, result.Kind)
	names := result.TableColumnNames()
	require.Equal(t, 1, names.Len())
	assert.Equal(t, "keep", names.Syms()[0].String())
	cols := result.TableColumns().Items()
	require.Len(t, cols, 1)
	assert.Equal(t, []int64{0, 1, 2}, cols[0].Ints())
}
