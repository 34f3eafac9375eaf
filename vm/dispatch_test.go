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

package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-lang/ray/bytecode"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
)

// fakeVars is a minimal VarEnv for tests that don't exercise the real
// environment's symbol-keyed dict.
type fakeVars struct {
	m map[*symbol.Symbol]value.Value
}

func newFakeVars() *fakeVars { return &fakeVars{m: map[*symbol.Symbol]value.Value{}} }

func (f *fakeVars) Get(sym *symbol.Symbol) (value.Value, bool) {
	v, ok := f.m[sym]
	return v, ok
}

func (f *fakeVars) Set(sym *symbol.Symbol, v value.Value) value.Value {
	f.m[sym] = v
	return v
}

func newTestInstance() (*Instance, []*prim.Descriptor, *fakeVars) {
	reg := prim.New()
	names := []string{"+", "-", "*", "<", "="}
	table := make([]*prim.Descriptor, len(names))
	for i, n := range names {
		d, ok := reg.Lookup(n)
		if !ok {
			panic("missing primitive " + n)
		}
		table[i] = d
	}
	vars := newFakeVars()
	i := New(Primitives(table), Vars(vars))
	return i, table, vars
}

func primIndex(table []*prim.Descriptor, name string) uint64 {
	for idx, d := range table {
		if d.Name == name {
			return uint64(idx)
		}
	}
	panic("not found: " + name)
}

func lambdaOf(code []uint64, consts []value.Value) *value.Lambda {
	return &value.Lambda{Code: code, Constants: consts}
}

func TestPushConstAndRetReturnsConstant(t *testing.T) {
	i, _, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{value.Int(42)})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.AsInt())
}

func TestCall2InvokesArithmeticPrimitive(t *testing.T) {
	i, table, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1})
	b.Emit(bytecode.Instr{Op: bytecode.OpCall2, Wide: primIndex(table, "+")})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{value.Int(3), value.Int(4)})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.AsInt())
}

func TestJneTakesElseBranchOnFalse(t *testing.T) {
	i, _, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0}) // false condition
	jne := b.Emit(bytecode.Instr{Op: bytecode.OpJne})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1}) // then: 1
	jmp := b.Emit(bytecode.Instr{Op: bytecode.OpJmp})
	elseAt := b.Offset()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 2}) // else: 2
	endAt := b.Offset()
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	b.PatchArg(jne, uint64(elseAt))
	b.PatchArg(jmp, uint64(endAt))

	lam := lambdaOf(b.Code(), []value.Value{value.Bool(false), value.Int(1), value.Int(2)})
	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.AsInt())
}

func TestLoadReadsParameterBySlot(t *testing.T) {
	i, table, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpLoad, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpLoad, Arg: 1})
	b.Emit(bytecode.Instr{Op: bytecode.OpCall2, Wide: primIndex(table, "*")})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), nil)

	result, err := i.Eval(lam, []value.Value{value.Int(6), value.Int(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.AsInt())
}

func TestLSetThenLGetRoundTripsThroughVarEnv(t *testing.T) {
	i, _, _ := newTestInstance()
	in := symbol.New()
	x := in.Intern("x")

	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0}) // symbol x
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1}) // value 9
	b.Emit(bytecode.Instr{Op: bytecode.OpLSet})
	b.Emit(bytecode.Instr{Op: bytecode.OpPop})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpLGet})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{value.SymAtom(x), value.Int(9)})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.AsInt())
}

func TestTryCatchHandlesThrow(t *testing.T) {
	i, _, _ := newTestInstance()
	b := bytecode.NewBuilder()
	try := b.Emit(bytecode.Instr{Op: bytecode.OpTry})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpThrow})
	jmp := b.Emit(bytecode.Instr{Op: bytecode.OpJmp})
	handlerAt := b.Offset()
	b.Emit(bytecode.Instr{Op: bytecode.OpCatch})
	b.Emit(bytecode.Instr{Op: bytecode.OpPop}) // discard the caught error
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1})
	endAt := b.Offset()
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	b.PatchArg(try, uint64(handlerAt))
	b.PatchArg(jmp, uint64(endAt))

	lam := lambdaOf(b.Code(), []value.Value{value.Int(1), value.Int(99)})
	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), result.AsInt())
}

func TestThrowUncaughtSurfacesAsErrorValue(t *testing.T) {
	i, _, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpThrow})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{value.Int(1)})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.True(t, result.IsError())
	assert.Equal(t, value.ErrThrow, result.ErrorCode())
}

func TestCallDDispatchesNestedLambda(t *testing.T) {
	i, table, _ := newTestInstance()

	// inner: fn(x) -> x + 1
	ib := bytecode.NewBuilder()
	ib.Emit(bytecode.Instr{Op: bytecode.OpLoad, Arg: 0})
	ib.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	ib.Emit(bytecode.Instr{Op: bytecode.OpCall2, Wide: primIndex(table, "+")})
	ib.Emit(bytecode.Instr{Op: bytecode.OpRet})
	inner := lambdaOf(ib.Code(), []value.Value{value.Int(1)})

	// outer: push inner as const, push arg, CALLD arity 1
	ob := bytecode.NewBuilder()
	ob.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1}) // arg 41
	ob.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0}) // the inner lambda
	ob.Emit(bytecode.Instr{Op: bytecode.OpSwap})
	ob.Emit(bytecode.Instr{Op: bytecode.OpCallD, Arg: 1})
	ob.Emit(bytecode.Instr{Op: bytecode.OpRet})
	outer := lambdaOf(ob.Code(), []value.Value{value.LambdaValue(inner), value.Int(41)})

	result, err := i.Eval(outer, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.AsInt())
}

func TestCallDDispatchesNativePrimitiveReference(t *testing.T) {
	i, table, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPush, Arg: primIndex(table, "-")})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 1})
	b.Emit(bytecode.Instr{Op: bytecode.OpCallD, Arg: 2})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{value.Int(10), value.Int(3)})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.AsInt())
}

func TestTimerSetGetProducesNonNegativeDuration(t *testing.T) {
	i, _, _ := newTestInstance()
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpTimerSet})
	b.Emit(bytecode.Instr{Op: bytecode.OpTimerGet})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), nil)

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.AsInt(), int64(0))
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	i, _, _ := newTestInstance()
	code := []uint64{uint64(250)} // not a defined opcode
	lam := lambdaOf(code, nil)

	_, err := i.Eval(lam, nil)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

func TestMaxFrameDepthIsFatal(t *testing.T) {
	i := New(Vars(newFakeVars()), MaxFrameDepth(2))

	// a lambda that calls itself via CALLD, pushing itself as its own
	// single argument forever — exercises the frame-depth guard directly
	// rather than relying on prim contents.
	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpDup})
	b.Emit(bytecode.Instr{Op: bytecode.OpCallD, Arg: 1})
	lam := lambdaOf(b.Code(), nil)
	lam.Constants = []value.Value{value.LambdaValue(lam)}

	_, err := i.Eval(lam, nil)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

// TestCall1WithGroupMapAttrMapsOverDictValues exercises groupMapCall (spec
// §4.5's FN_GROUP_MAP bit) directly: a unary primitive whose descriptor
// carries AttrGroupMap, called with a dict of group-key -> per-group list
// (the shape `group`+`at` produce), is applied once per group rather than
// once over the whole dict.
func TestCall1WithGroupMapAttrMapsOverDictValues(t *testing.T) {
	gsum := &prim.Descriptor{
		Name:  "gsum",
		Arity: prim.Unary,
		Attrs: bytecode.AttrGroupMap,
		Unary: func(a value.Value) value.Value {
			var total int64
			for _, n := range a.Ints() {
				total += n
			}
			return value.Int(total)
		},
	}
	table := []*prim.Descriptor{gsum}
	i := New(Primitives(table), Vars(newFakeVars()))

	keys := value.IntVector([]int64{10, 20})
	groups := value.Dict(keys, value.List(
		value.IntVector([]int64{1, 2, 3}),
		value.IntVector([]int64{4, 5}),
	))

	b := bytecode.NewBuilder()
	b.Emit(bytecode.Instr{Op: bytecode.OpPushConst, Arg: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpCall1, Attr: bytecode.AttrGroupMap, Wide: 0})
	b.Emit(bytecode.Instr{Op: bytecode.OpRet})
	lam := lambdaOf(b.Code(), []value.Value{groups})

	result, err := i.Eval(lam, nil)
	require.NoError(t, err)
	require.Equal(t, value.KDict, result.Kind)
	assert.Equal(t, []int64{10, 20}, result.DictKeys().Ints())
	sums := result.DictValues().Items()
	require.Len(t, sums, 2)
	assert.Equal(t, int64(6), sums[0].AsInt())
	assert.Equal(t, int64(9), sums[1].AsInt())
}
