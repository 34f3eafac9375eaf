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

package prim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, reg Registry, name string, args ...value.Value) value.Value {
	t.Helper()
	d, ok := reg.Lookup(name)
	require.True(t, ok, "primitive %q not registered", name)
	return d.Call(args)
}

func TestArithmeticBroadcastsOverVectors(t *testing.T) {
	reg := New()
	xs := value.IntVector([]int64{1, 2, 3})
	out := call(t, reg, "+", xs, value.Int(10))
	assert.Equal(t, []int64{11, 12, 13}, out.Ints())
}

func TestDivisionAlwaysProducesFloat(t *testing.T) {
	reg := New()
	out := call(t, reg, "%", value.Int(7), value.Int(2))
	assert.Equal(t, value.KFloat, out.Kind)
	assert.InDelta(t, 3.5, out.AsFloat(), 1e-9)
}

func TestIntArithmeticPropagatesNull(t *testing.T) {
	reg := New()
	out := call(t, reg, "+", value.Int(value.NullInt), value.Int(5))
	assert.Equal(t, value.NullInt, out.AsInt())
}

func TestTilProducesIndexVector(t *testing.T) {
	reg := New()
	out := call(t, reg, "til", value.Int(5))
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, out.Ints())
}

func TestSumOverIntVector(t *testing.T) {
	reg := New()
	out := call(t, reg, "sum", value.IntVector([]int64{1, 2, 3, 4}))
	assert.Equal(t, int64(10), out.AsInt())
}

func TestDistinctPreservesFirstOccurrenceOrder(t *testing.T) {
	reg := New()
	xs := value.IntVector([]int64{3, 1, 3, 2})
	out := call(t, reg, "distinct", xs)
	assert.Equal(t, []int64{3, 1, 2}, out.Ints())
}

func TestExceptPreservesLeftOrder(t *testing.T) {
	reg := New()
	a := value.IntVector([]int64{3, 1, 2, 1})
	b := value.IntVector([]int64{1})
	out := call(t, reg, "except", a, b)
	assert.Equal(t, []int64{3, 2}, out.Ints())
}

func TestUnionPreservesLeftOrder(t *testing.T) {
	reg := New()
	a := value.IntVector([]int64{1, 2})
	b := value.IntVector([]int64{2, 3})
	out := call(t, reg, "union", a, b)
	assert.Equal(t, []int64{1, 2, 3}, out.Ints())
}

func TestMinMaxReduceAndZip(t *testing.T) {
	reg := New()
	xs := value.IntVector([]int64{5, 1, 3})
	assert.Equal(t, int64(1), call(t, reg, "min", xs).AsInt())
	assert.Equal(t, int64(5), call(t, reg, "max", xs).AsInt())

	zipped := call(t, reg, "min", value.IntVector([]int64{1, 9}), value.IntVector([]int64{4, 2}))
	assert.Equal(t, []int64{1, 2}, zipped.Ints())
}

func TestAscSortsAndSetsAttribute(t *testing.T) {
	reg := New()
	out := call(t, reg, "asc", value.IntVector([]int64{3, 1, 2}))
	assert.Equal(t, []int64{1, 2, 3}, out.Ints())
	assert.True(t, out.Attrs.Has(value.AttrAscending))
}

func TestAmendMutatesInPlace(t *testing.T) {
	reg := New()
	xs := value.IntVector([]int64{1, 2, 3})
	out := call(t, reg, "amend", xs, value.Int(1), value.Int(99))
	assert.Equal(t, []int64{1, 99, 3}, out.Ints())
}

func TestTakeCyclesShortVectors(t *testing.T) {
	reg := New()
	xs := value.IntVector([]int64{1, 2})
	out := call(t, reg, "take", value.Int(5), xs)
	assert.Equal(t, []int64{1, 2, 1, 2, 1}, out.Ints())
}

func TestWhereReturnsTrueIndices(t *testing.T) {
	reg := New()
	xs := value.BoolVector([]bool{true, false, true})
	out := call(t, reg, "where", xs)
	assert.Equal(t, []int64{0, 2}, out.Ints())
}

func TestExceptDistinguishesFloatsWithEqualFormattedLength(t *testing.T) {
	reg := New()
	// "1.0" and "2.0" format to the same length, so a length-keyed except
	// would wrongly treat 2.0 as a duplicate of 1.0 and drop it.
	a := value.FloatVector([]float64{1.0, 2.0})
	b := value.FloatVector([]float64{1.0})
	out := call(t, reg, "except", a, b)
	assert.Equal(t, []float64{2.0}, out.Floats())
}

func TestUnionDistinguishesFloatsWithEqualFormattedLength(t *testing.T) {
	reg := New()
	a := value.FloatVector([]float64{1.0})
	b := value.FloatVector([]float64{2.0})
	out := call(t, reg, "union", a, b)
	assert.Equal(t, []float64{1.0, 2.0}, out.Floats())
}

func TestExceptDistinguishesDistinctGUIDs(t *testing.T) {
	reg := New()
	g1, g2 := uuid.New(), uuid.New()
	a := value.GUIDVector([]uuid.UUID{g1, g2})
	b := value.GUIDVector([]uuid.UUID{g1})
	out := call(t, reg, "except", a, b)
	assert.Equal(t, []uuid.UUID{g2}, out.GUIDs())
}

func TestMapPutGetDelRoundTrip(t *testing.T) {
	reg := New()
	in := symbol.New()
	k := value.SymAtom(in.Intern("a"))

	m := call(t, reg, "map")
	require.Equal(t, value.KAnymap, m.Kind)

	m = call(t, reg, "mput", m, k, value.Int(7))
	assert.Equal(t, int64(1), call(t, reg, "mcount", m).AsInt())

	got := call(t, reg, "mget", m, k)
	require.False(t, got.IsError())
	assert.Equal(t, int64(7), got.AsInt())

	m = call(t, reg, "mdel", m, k)
	assert.Equal(t, int64(0), call(t, reg, "mcount", m).AsInt())

	miss := call(t, reg, "mget", m, k)
	require.True(t, miss.IsError())
	assert.Equal(t, value.ErrNotFound, miss.ErrorCode())
}

func TestMapConstructorTakesKeyValuePairs(t *testing.T) {
	reg := New()
	in := symbol.New()
	a, b := value.SymAtom(in.Intern("a")), value.SymAtom(in.Intern("b"))

	m := call(t, reg, "map", a, value.Int(1), b, value.Int(2))
	assert.Equal(t, int64(2), call(t, reg, "mcount", m).AsInt())
	assert.Equal(t, int64(1), call(t, reg, "mget", m, a).AsInt())
	assert.Equal(t, int64(2), call(t, reg, "mget", m, b).AsInt())
}

func TestLeftJoinMatchesOnColumnAndFillsNullForMisses(t *testing.T) {
	reg := New()
	in := symbol.New()
	idSym, nameSym, scoreSym := in.Intern("id"), in.Intern("name"), in.Intern("score")

	left := value.Table(
		value.SymbolVector([]*symbol.Symbol{idSym, nameSym}),
		value.List(value.IntVector([]int64{1, 2, 3}), value.IntVector([]int64{10, 20, 30})),
	)
	right := value.Table(
		value.SymbolVector([]*symbol.Symbol{idSym, scoreSym}),
		value.List(value.IntVector([]int64{2, 1}), value.IntVector([]int64{200, 100})),
	)

	out := call(t, reg, "lj", left, right, value.SymbolVector([]*symbol.Symbol{idSym}))
	require.Equal(t, value.KTable, out.Kind)
	names := out.TableColumnNames().Syms()
	require.Len(t, names, 3)
	assert.Equal(t, []string{"id", "name", "score"}, []string{names[0].String(), names[1].String(), names[2].String()})

	cols := out.TableColumns().Items()
	assert.Equal(t, []int64{1, 2, 3}, cols[0].Ints())
	assert.Equal(t, []int64{10, 20, 30}, cols[1].Ints())
	assert.Equal(t, []int64{100, 200, value.NullInt}, cols[2].Ints())
}
