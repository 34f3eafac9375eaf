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

package runtime_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-lang/ray/runtime"
	"github.com/ray-lang/ray/value"
)

func TestEvalStringArithmetic(t *testing.T) {
	r := runtime.New()
	v, err := r.EvalString("t", "(+ 1 (* 2 3))")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.AsInt())
}

func TestEvalStringSetPersistsAcrossCalls(t *testing.T) {
	r := runtime.New()
	_, err := r.EvalString("t", "(set x 41)")
	require.NoError(t, err)
	v, err := r.EvalString("t", "(+ x 1)")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInt())
}

func TestEvalStringLetBindsForLaterExpressionsInLambdaBody(t *testing.T) {
	r := runtime.New()
	v, err := r.EvalString("t", "((fn () (let y 5) (* y y)))")
	require.NoError(t, err)
	assert.Equal(t, int64(25), v.AsInt())
}

func TestEvalStringUndefinedVariableIsNotFoundError(t *testing.T) {
	r := runtime.New()
	v, err := r.EvalString("t", "nosuchvar")
	require.NoError(t, err)
	require.True(t, v.IsError())
	assert.Equal(t, value.ErrNotFound, v.ErrorCode())
}

func TestEvalStringCompileErrorIsParseErrorValue(t *testing.T) {
	r := runtime.New()
	v, err := r.EvalString("t", "(if)")
	require.NoError(t, err)
	require.True(t, v.IsError())
	assert.Equal(t, value.ErrParse, v.ErrorCode())
}

func TestEvalStringSelfRecursiveFibonacci(t *testing.T) {
	r := runtime.New()
	v, err := r.EvalString("t", "((fn (n) (if (< n 2) n (+ (self (- n 1)) (self (- n 2))))) 10)")
	require.NoError(t, err)
	assert.Equal(t, int64(55), v.AsInt())
}

func TestEvalStringSelectFiltersByColumn(t *testing.T) {
	r := runtime.New()
	src := "((fn () " +
		"(let t (table (concat (enlist `a) (enlist `b)) (list (til 5) (< (til 5) 3)))) " +
		"(select (from t) (where (< a 3)) (keep a))))"
	v, err := r.EvalString("t", src)
	require.NoError(t, err)
	require.False(t, v.IsError(), "select result: %+v", v)
	require.Equal(t, value.KTable, v.Kind)
	names := v.TableColumnNames()
	require.Equal(t, 1, names.Len())
	assert.Equal(t, "keep", names.Syms()[0].String())
	cols := v.TableColumns().Items()
	require.Len(t, cols, 1)
	assert.Equal(t, []int64{0, 1, 2}, cols[0].Ints())
}

func TestEvalAllRunsEachTopLevelForm(t *testing.T) {
	r := runtime.New()
	results, err := r.EvalAll("t", "(set x 1) (set x (+ x 1)) x")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int64(2), results[2].AsInt())
}

func TestOutputOptionIsWired(t *testing.T) {
	var buf bytes.Buffer
	r := runtime.New(runtime.Output(&buf))
	_, err := r.EvalString("t", "1")
	require.NoError(t, err)
}
