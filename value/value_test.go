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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDropLeavesPayloadUnchanged(t *testing.T) {
	v := IntVector([]int64{1, 2, 3})
	c := Clone(v)
	assert.Equal(t, int32(2), v.RefCount())
	Drop(c)
	assert.Equal(t, int32(1), v.RefCount())
	assert.True(t, Equals(v, IntVector([]int64{1, 2, 3})))
}

func TestDropFreesAtZero(t *testing.T) {
	v := IntVector([]int64{1, 2, 3})
	Drop(v)
	assert.Nil(t, v.p.ints)
}

func TestDropRecursesIntoListChildren(t *testing.T) {
	child := IntVector([]int64{1})
	l := List(child)
	assert.Equal(t, int32(1), child.RefCount(), "List takes ownership of the child without cloning it")
	Drop(l)
	assert.Equal(t, int32(0), child.RefCount())
}

func TestCowDistinctBackingStore(t *testing.T) {
	v := IntVector([]int64{1, 2, 3})
	shared := Clone(v)
	owned := Cow(shared)
	assert.NotSame(t, v.p, owned.p)
	assert.True(t, Equals(v, owned))
	owned.Ints()[0] = 99
	assert.Equal(t, int64(1), v.Ints()[0], "mutating the cow copy must not affect the original")
}

func TestCowNoopWhenUniquelyOwned(t *testing.T) {
	v := IntVector([]int64{1, 2, 3})
	owned := Cow(v)
	assert.Same(t, v.p, owned.p)
}

func TestDictRequiresVectorKeys(t *testing.T) {
	bad := Dict(List(Int(1)), IntVector([]int64{1}))
	require.True(t, bad.IsError())
	assert.Equal(t, ErrType, bad.ErrorCode())
}

func TestDictRequiresEqualLength(t *testing.T) {
	bad := Dict(IntVector([]int64{1, 2}), IntVector([]int64{1}))
	require.True(t, bad.IsError())
	assert.Equal(t, ErrLength, bad.ErrorCode())
}

func TestTableRequiresSymbolKeysAndEqualLengthColumns(t *testing.T) {
	good := Table(SymbolVector(nil), List())
	require.False(t, good.IsError())
	assert.Equal(t, 0, good.RowCount())

	badKind := Table(IntVector([]int64{1}), List(IntVector([]int64{1})))
	require.True(t, badKind.IsError())
	assert.Equal(t, ErrType, badKind.ErrorCode())
}

func TestEqualsAtomsAndVectors(t *testing.T) {
	assert.True(t, Equals(Int(5), Int(5)))
	assert.False(t, Equals(Int(5), Int(6)))
	assert.True(t, Equals(IntVector([]int64{1, 2}), IntVector([]int64{1, 2})))
	assert.False(t, Equals(IntVector([]int64{1, 2}), IntVector([]int64{1, 3})))
}

func TestFloatNullSentinelIsNaN(t *testing.T) {
	v := Vector(VFloat, 1)
	assert.True(t, Equals(v, v), "NaN null sentinel must compare equal to itself under Equals")
}
