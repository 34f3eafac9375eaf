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
	"github.com/ray-lang/ray/internal/xhash"
	"github.com/ray-lang/ray/value"
)

// Distinct returns the first-occurrence-ordered set of distinct elements
// of xs, with the AttrDistinct hint set on the result.
func Distinct(xs value.Value) value.Value {
	n := xs.Len()
	keep := make([]int, 0, n)
	if lo, hi, ok := smallRange(xs, n); ok {
		seen := make([]bool, hi-lo+1)
		ky := keyerFor(xs)
		for i := 0; i < n; i++ {
			k := ky.keyAt(i) - lo
			if !seen[k] {
				seen[k] = true
				keep = append(keep, i)
			}
		}
	} else {
		ky := keyerFor(xs)
		tb := xhash.NewWith(n, false, ky.hash, ky.cmp, ky.seed)
		for i := 0; i < n; i++ {
			before := tb.Len()
			tb.Next(ky.keyAt(i))
			if tb.Len() != before {
				keep = append(keep, i)
			}
		}
	}
	out := gather(xs, keep)
	out.Attrs |= value.AttrDistinct
	return out
}

// gather selects the elements at idx (in order) from a vector column.
func gather(xs value.Value, idx []int) value.Value {
	switch xs.Kind {
	case value.VInt:
		src := xs.Ints()
		out := make([]int64, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.IntVector(out)
	case value.VTimestamp:
		src := xs.Times()
		out := make([]int64, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.TimestampVector(out)
	case value.VFloat:
		src := xs.Floats()
		out := make([]float64, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.FloatVector(out)
	case value.VBool:
		src := xs.Bools()
		out := make([]bool, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.BoolVector(out)
	case value.VChar:
		src := xs.Chars()
		out := make([]rune, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.CharVectorFromRunes(out)
	case value.VSymbol:
		src := xs.Syms()
		out := make([]*value.Symbol, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.SymbolVector(out)
	case value.VGUID:
		src := xs.GUIDs()
		out := make([]value.UUID, len(idx))
		for i, j := range idx {
			out[i] = src[j]
		}
		return value.GUIDVector(out)
	case value.KList:
		src := xs.Items()
		out := make([]value.Value, len(idx))
		for i, j := range idx {
			out[i] = value.Clone(src[j])
		}
		return value.List(out...)
	default:
		panic("index: gather: unsupported kind " + xs.Kind.String())
	}
}
