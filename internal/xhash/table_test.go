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

package xhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInsertsAndFindsExisting(t *testing.T) {
	tb := New(8, true)
	i1 := tb.Next(42)
	i2 := tb.Next(42)
	assert.Equal(t, i1, i2, "interning the same key twice must return the same slot")
	assert.Equal(t, 1, tb.Len())
}

func TestGetAbsent(t *testing.T) {
	tb := New(8, false)
	tb.Next(1)
	_, ok := tb.Get(2)
	assert.False(t, ok)
	idx, ok := tb.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), tb.Keys[idx])
}

func TestGrowsOnOverflow(t *testing.T) {
	tb := New(4, true)
	for i := int64(0); i < 100; i++ {
		tb.Put(i, i*10)
	}
	assert.Equal(t, 100, tb.Len())
	for i := int64(0); i < 100; i++ {
		idx, ok := tb.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*10, tb.Values[idx])
	}
}

func TestIndexHashU64FoldsColumns(t *testing.T) {
	h1 := IndexHashU64(0, HashFNV1a(1, nil))
	h2 := IndexHashU64(h1, HashFNV1a(2, nil))
	h3 := IndexHashU64(0, HashFNV1a(2, nil))
	assert.NotEqual(t, h2, h3, "folding order-sensitive mixing must depend on both columns")
}
