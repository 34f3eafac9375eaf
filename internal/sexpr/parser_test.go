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

package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-lang/ray/ast"
)

func TestParseAtom(t *testing.T) {
	n, err := ParseOne("t", "42")
	require.NoError(t, err)
	assert.Equal(t, ast.KindAtom, n.Kind)
	assert.Equal(t, int64(42), n.Int)
}

func TestParseList(t *testing.T) {
	n, err := ParseOne("t", "(+ 1 2)")
	require.NoError(t, err)
	require.Equal(t, ast.KindList, n.Kind)
	require.Len(t, n.List, 3)
	assert.Equal(t, "+", n.List[0].Symbol)
	assert.Equal(t, int64(1), n.List[1].Int)
	assert.Equal(t, int64(2), n.List[2].Int)
}

func TestParseQuotedSymbol(t *testing.T) {
	n, err := ParseOne("t", "`foo")
	require.NoError(t, err)
	assert.Equal(t, ast.KindSymbol, n.Kind)
	assert.True(t, n.Quoted)
	assert.Equal(t, "foo", n.Symbol)
}

func TestParseNestedLet(t *testing.T) {
	n, err := ParseOne("t", "(let x (+ 1 2))")
	require.NoError(t, err)
	require.Len(t, n.List, 3)
	assert.Equal(t, "let", n.List[0].Symbol)
	assert.Equal(t, "x", n.List[1].Symbol)
	assert.Equal(t, ast.KindList, n.List[2].Kind)
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	forms, err := Parse("t", "1 2 (+ 1 2)")
	require.NoError(t, err)
	require.Len(t, forms, 3)
}

func TestParseUnterminatedListIsError(t *testing.T) {
	_, err := Parse("t", "(+ 1 2")
	require.Error(t, err)
}
