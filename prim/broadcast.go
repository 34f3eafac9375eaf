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

import "github.com/ray-lang/ray/value"

// atomAt returns the i'th element of a vector as an atom Value.
func atomAt(v value.Value, i int) value.Value {
	switch v.Kind {
	case value.VBool:
		return value.Bool(v.Bools()[i])
	case value.VInt:
		return value.Int(v.Ints()[i])
	case value.VFloat:
		return value.Float(v.Floats()[i])
	case value.VSymbol:
		return value.SymAtom(v.Syms()[i])
	case value.VChar:
		return value.CharAtom(v.Chars()[i])
	case value.VTimestamp:
		return value.Timestamp(v.Times()[i])
	case value.VGUID:
		return value.GUID(v.GUIDs()[i])
	default:
		panic("prim: atomAt on non-vector kind " + v.Kind.String())
	}
}

// buildVector collects n atom results into a vector, inferring the result
// vector kind from the first element (atomic primitives never change kind
// family across positions: comparisons always yield VBool, arithmetic
// keeps the operand kind or promotes to VFloat, etc.).
func buildVector(n int, at func(i int) value.Value) value.Value {
	if n == 0 {
		return value.BoolVector(nil)
	}
	first := at(0)
	switch first.Kind {
	case value.KBool:
		xs := make([]bool, n)
		xs[0] = first.AsBool()
		for i := 1; i < n; i++ {
			xs[i] = at(i).AsBool()
		}
		return value.BoolVector(xs)
	case value.KInt, value.KTimestamp:
		xs := make([]int64, n)
		xs[0] = first.AsInt()
		for i := 1; i < n; i++ {
			v := at(i)
			if v.Kind == value.KTimestamp {
				xs[i] = v.AsTimestamp()
			} else {
				xs[i] = v.AsInt()
			}
		}
		if first.Kind == value.KTimestamp {
			return value.TimestampVector(xs)
		}
		return value.IntVector(xs)
	case value.KFloat:
		xs := make([]float64, n)
		xs[0] = first.AsFloat()
		for i := 1; i < n; i++ {
			xs[i] = at(i).AsFloat()
		}
		return value.FloatVector(xs)
	case value.KSymbol:
		xs := make([]*value.Symbol, n)
		xs[0] = first.AsSymbol()
		for i := 1; i < n; i++ {
			xs[i] = at(i).AsSymbol()
		}
		return value.SymbolVector(xs)
	case value.KChar:
		xs := make([]rune, n)
		xs[0] = first.AsChar()
		for i := 1; i < n; i++ {
			xs[i] = at(i).AsChar()
		}
		return value.CharVectorFromRunes(xs)
	case value.KGUID:
		xs := make([]value.UUID, n)
		xs[0] = first.AsGUID()
		for i := 1; i < n; i++ {
			xs[i] = at(i).AsGUID()
		}
		return value.GUIDVector(xs)
	case value.KError:
		return first
	default:
		items := make([]value.Value, n)
		items[0] = first
		for i := 1; i < n; i++ {
			items[i] = at(i)
		}
		return value.List(items...)
	}
}

// mapVector applies f element-wise across a vector (or an atom, for
// homogeneity with callers that don't distinguish), short-circuiting on
// the first element-wise error.
func mapVector(v value.Value, f func(elem value.Value) value.Value) value.Value {
	if v.Kind.IsAtom() {
		return f(v)
	}
	n := v.Len()
	results := make([]value.Value, n)
	for i := 0; i < n; i++ {
		r := f(atomAt(v, i))
		if r.IsError() {
			return r
		}
		results[i] = r
	}
	return buildVector(n, func(i int) value.Value { return results[i] })
}

// zipVectors applies f element-wise across two equal-length vectors,
// short-circuiting on the first element-wise error.
func zipVectors(a, b value.Value, f func(x, y value.Value) value.Value) value.Value {
	n := a.Len()
	results := make([]value.Value, n)
	for i := 0; i < n; i++ {
		r := f(atomAt(a, i), atomAt(b, i))
		if r.IsError() {
			return r
		}
		results[i] = r
	}
	return buildVector(n, func(i int) value.Value { return results[i] })
}
