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

package index

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ray-lang/ray/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctPreservesFirstOccurrenceOrder(t *testing.T) {
	xs := value.IntVector([]int64{3, 1, 3, 2, 1, 4})
	d := Distinct(xs)
	assert.Equal(t, []int64{3, 1, 2, 4}, d.Ints())
	assert.True(t, d.Attrs.Has(value.AttrDistinct))
}

func TestFindReturnsFirstIndexOfEachNeedle(t *testing.T) {
	xs := value.IntVector([]int64{3, 1, 3, 2, 1, 4})
	ys := value.IntVector([]int64{1, 2, 4, 9})
	f := Find(xs, ys)
	assert.Equal(t, []int64{1, 3, 5, value.NullInt}, f.Ints())
}

func TestFindOfDistinctIsFirstIndexVector(t *testing.T) {
	xs := value.IntVector([]int64{3, 1, 3, 2, 1, 4})
	d := Distinct(xs)
	f := Find(xs, d)
	assert.Equal(t, []int64{0, 1, 3, 5}, f.Ints())
}

func TestGroupPartitionsByEqualValue(t *testing.T) {
	xs := value.IntVector([]int64{10, 20, 10, 30, 20})
	gc, bins := Group(xs, nil)
	assert.Equal(t, 3, gc)
	b := bins.Ints()
	for i := range b {
		for j := range b {
			assert.Equal(t, xs.Ints()[i] == xs.Ints()[j], b[i] == b[j], "positions %d,%d must agree on grouping iff their values are equal", i, j)
		}
	}
}

func TestGroupCountsSumToInputLength(t *testing.T) {
	xs := value.IntVector([]int64{10, 20, 10, 30, 20, 10})
	gc, bins := Group(xs, nil)
	counts := GroupCounts(gc, bins)
	var total int64
	for _, c := range counts.Ints() {
		total += c
	}
	assert.Equal(t, int64(xs.Len()), total)
}

func TestJoinSingleColumnEqualsFind(t *testing.T) {
	left := value.IntVector([]int64{1, 2, 3, 2})
	right := value.IntVector([]int64{2, 3, 9})
	j := Join([]value.Value{left}, []value.Value{right}, 1)
	f := Find(right, left)
	assert.Equal(t, f.Ints(), j.Ints())
}

func TestJoinMultiColumnDependsOnFullTuple(t *testing.T) {
	leftA := value.IntVector([]int64{1, 1})
	leftB := value.IntVector([]int64{1, 2})
	rightA := value.IntVector([]int64{1})
	rightB := value.IntVector([]int64{2})
	j := Join([]value.Value{leftA, leftB}, []value.Value{rightA, rightB}, 2)
	require.Equal(t, 2, len(j.Ints()))
	assert.Equal(t, value.NullInt, j.Ints()[0], "row (1,1) must not match right row (1,2)")
	assert.Equal(t, int64(0), j.Ints()[1], "row (1,2) must match right row 0")
}

func TestJoinOnGUIDColumnMatchesByValueNotRowIndex(t *testing.T) {
	g1, g2, g3 := uuid.New(), uuid.New(), uuid.New()

	// left row 0 carries g2 (same value as right row 1, different row
	// index); left row 1 carries g3, which the right side does not hold at
	// all — a row-index-keyed join would wrongly match it to right row 1.
	left := value.GUIDVector([]uuid.UUID{g2, g3})
	right := value.GUIDVector([]uuid.UUID{g1, g2})

	j := Join([]value.Value{left}, []value.Value{right}, 1)
	require.Equal(t, 2, len(j.Ints()))
	assert.Equal(t, int64(1), j.Ints()[0], "left row 0 (g2) must match right row 1 by value, not row 0 by position")
	assert.Equal(t, value.NullInt, j.Ints()[1], "left row 1 (g3) has no match on either side")
}

func TestSmallRangeAndHashPathsAgree(t *testing.T) {
	small := value.IntVector([]int64{0, 1, 2, 1, 0})
	large := value.IntVector([]int64{1_000_000, 2_000_000, 1_000_000})
	assert.Equal(t, Distinct(small).Ints(), []int64{0, 1, 2})
	assert.Equal(t, Distinct(large).Ints(), []int64{1_000_000, 2_000_000})
}
