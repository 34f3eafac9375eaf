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

// Find returns, for each element of ys, the index of its first occurrence
// in xs (value.NullInt if absent). xs and ys must share a vector kind.
func Find(xs, ys value.Value) value.Value {
	n := xs.Len()
	out := make([]int64, ys.Len())
	if lo, hi, ok := smallRange(xs, n); ok {
		first := make([]int64, hi-lo+1)
		for i := range first {
			first[i] = value.NullInt
		}
		kx := keyerFor(xs)
		for i := 0; i < n; i++ {
			k := kx.keyAt(i) - lo
			if first[k] == value.NullInt {
				first[k] = int64(i)
			}
		}
		ky := keyerFor(ys)
		for i := 0; i < ys.Len(); i++ {
			k := ky.keyAt(i) - lo
			if k < 0 || k >= int64(len(first)) {
				out[i] = value.NullInt
				continue
			}
			out[i] = first[k]
		}
		return value.IntVector(out)
	}
	kx := keyerFor(xs)
	tb := xhash.NewWith(n, true, kx.hash, kx.cmp, kx.seed)
	for i := 0; i < n; i++ {
		before := tb.Len()
		idx := tb.Next(kx.keyAt(i))
		if tb.Len() != before {
			// first occurrence of this key: record its row index
			tb.Values[idx] = int64(i)
		}
	}
	ky := keyerFor(ys)
	for i := 0; i < ys.Len(); i++ {
		if idx, ok := tb.Get(ky.keyAt(i)); ok {
			out[i] = tb.Values[idx]
		} else {
			out[i] = value.NullInt
		}
	}
	return value.IntVector(out)
}
