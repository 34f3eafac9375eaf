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
	"math"

	"github.com/ray-lang/ray/internal/xhash"
	"github.com/ray-lang/ray/value"
)

// keyer adapts one vector column to the xhash.Table contract: keyAt(i)
// returns the i64 "key" xhash should use to represent element i, and
// hash/cmp/seed describe how to interpret that key.
type keyer struct {
	keyAt func(i int) int64
	hash  xhash.HashFn
	cmp   xhash.CmpFn
	seed  interface{}
}

func keyerFor(v value.Value) keyer {
	switch v.Kind {
	case value.VInt, value.VTimestamp:
		xs := v.Ints()
		if v.Kind == value.VTimestamp {
			xs = v.Times()
		}
		return keyer{keyAt: func(i int) int64 { return xs[i] }, hash: xhash.HashKMH, cmp: xhash.CmpI64}
	case value.VBool:
		xs := v.Bools()
		return keyer{keyAt: func(i int) int64 {
			if xs[i] {
				return 1
			}
			return 0
		}, hash: xhash.HashI64, cmp: xhash.CmpI64}
	case value.VFloat:
		xs := v.Floats()
		return keyer{keyAt: func(i int) int64 { return int64(math.Float64bits(xs[i])) }, hash: xhash.HashFNV1a, cmp: xhash.CmpI64}
	case value.VChar:
		xs := v.Chars()
		return keyer{keyAt: func(i int) int64 { return int64(xs[i]) }, hash: xhash.HashI64, cmp: xhash.CmpI64}
	case value.VSymbol:
		xs := v.Syms()
		return keyer{keyAt: func(i int) int64 {
			if xs[i] == nil {
				return value.NullInt
			}
			return xs[i].ID()
		}, hash: xhash.HashKMH, cmp: xhash.CmpI64}
	case value.VGUID:
		xs := v.GUIDs()
		seed := xhash.GUIDSeed{Column: xs}
		return keyer{keyAt: func(i int) int64 { return int64(i) }, hash: xhash.HashGUID, cmp: xhash.CmpGUID, seed: seed}
	default:
		panic("index: unsupported column kind " + v.Kind.String())
	}
}

// smallRange reports whether v's value range is small enough (<=n, per
// spec's "value range is small (≤ element count)") to use a direct-indexed
// array instead of a hash table. Only bool and small non-negative int
// columns qualify; everything else always hashes.
func smallRange(v value.Value, n int) (lo, hi int64, ok bool) {
	switch v.Kind {
	case value.VBool:
		return 0, 1, true
	case value.VInt:
		xs := v.Ints()
		if len(xs) == 0 {
			return 0, 0, true
		}
		lo, hi = xs[0], xs[0]
		for _, x := range xs {
			if x == value.NullInt {
				continue
			}
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		if lo >= 0 && hi-lo < int64(n) && hi-lo < 1<<20 {
			return lo, hi, true
		}
	}
	return 0, 0, false
}
