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

// Group assigns each position in xs a group id in first-appearance order
// (0..groupCount-1). If filter is non-nil, only the positions it names are
// grouped; positions outside filter get value.NullInt as their bin.
// Returns (groupCount, bins).
func Group(xs value.Value, filter []int) (int, value.Value) {
	n := xs.Len()
	bins := make([]int64, n)
	for i := range bins {
		bins[i] = value.NullInt
	}
	rows := filter
	if rows == nil {
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
	}
	groupCount := 0
	if lo, hi, ok := smallRange(xs, len(rows)); ok {
		id := make([]int64, hi-lo+1)
		for i := range id {
			id[i] = -1
		}
		ky := keyerFor(xs)
		for _, r := range rows {
			k := ky.keyAt(r) - lo
			if id[k] == -1 {
				id[k] = int64(groupCount)
				groupCount++
			}
			bins[r] = id[k]
		}
	} else {
		ky := keyerFor(xs)
		tb := xhash.NewWith(len(rows), true, ky.hash, ky.cmp, ky.seed)
		for _, r := range rows {
			before := tb.Len()
			idx := tb.Next(ky.keyAt(r))
			if tb.Len() != before {
				tb.Values[idx] = int64(groupCount)
				groupCount++
			}
			bins[r] = tb.Values[idx]
		}
	}
	return groupCount, value.IntVector(bins)
}

// GroupCounts computes the per-group element counts on demand from a
// Group result (spec: "per_group_counts is produced on demand by
// group_cnts").
func GroupCounts(groupCount int, bins value.Value) value.Value {
	counts := make([]int64, groupCount)
	for _, b := range bins.Ints() {
		if b == value.NullInt {
			continue
		}
		counts[b]++
	}
	return value.IntVector(counts)
}
