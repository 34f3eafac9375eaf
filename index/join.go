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

// joinSide flags which column set a folded row key belongs to.
const joinSideShift = 62

func encodeRowKey(side int, row int) int64 {
	return int64(row) | (int64(side) << joinSideShift)
}

func decodeRowKey(key int64) (side int, row int) {
	return int(key >> joinSideShift), int(key &^ (int64(1) << joinSideShift))
}

type joinSeed struct {
	leftKeyers  []keyer
	rightKeyers []keyer
}

func (s *joinSeed) keyersFor(side int) []keyer {
	if side == 0 {
		return s.rightKeyers
	}
	return s.leftKeyers
}

// joinHash and joinCmp must route each keyer's raw keyAt() result through
// that same keyer's own hash/cmp, not compare keyAt() output directly: for
// most kinds keyAt already is the comparable representative value, but
// VGUID's keyAt (index/column.go) deliberately returns the bare row index,
// with the real GUID bytes only reachable via HashGUID/CmpGUID's seed
// lookup. Folding/comparing raw keyAt() would hash/compare GUID row
// positions instead of GUID values.
func joinHash(key int64, seed interface{}) uint64 {
	s := seed.(*joinSeed)
	side, row := decodeRowKey(key)
	ks := s.keyersFor(side)
	var h uint64
	for _, k := range ks {
		h = xhash.IndexHashU64(h, k.hash(k.keyAt(row), k.seed))
	}
	return h
}

func joinCmp(a, b int64, seed interface{}) bool {
	s := seed.(*joinSeed)
	sa, ra := decodeRowKey(a)
	sb, rb := decodeRowKey(b)
	ka := s.keyersFor(sa)
	kb := s.keyersFor(sb)
	for i := range ka {
		if !keyerEqual(ka[i], ra, kb[i], rb) {
			return false
		}
	}
	return true
}

// keyerEqual compares row ra under ka against row rb under kb. A plain
// ka.cmp(ka.keyAt(ra), kb.keyAt(rb), ka.seed) is wrong whenever the two
// keyers carry independent seeds — GUID's keyAt is a bare index into its
// own seed's Column, so comparing it against the other side's seed would
// read the wrong column. Resolve each side through its own seed first,
// then compare the resolved GUIDs directly.
func keyerEqual(ka keyer, ra int, kb keyer, rb int) bool {
	ga, aIsGUID := ka.seed.(xhash.GUIDSeed)
	gb, bIsGUID := kb.seed.(xhash.GUIDSeed)
	if aIsGUID || bIsGUID {
		return ga.Column[ka.keyAt(ra)] == gb.Column[kb.keyAt(rb)]
	}
	return ka.cmp(ka.keyAt(ra), kb.keyAt(rb), ka.seed)
}

// Join performs an inner key lookup across nCols columns: row hashes of
// both sides are folded column-wise (index_hash_u64), rows are probed for
// equality column-by-column, and the result is a left-length vector of
// right-side row indices (value.NullInt for no match). Corresponding
// columns in leftCols and rightCols must share a vector kind.
func Join(leftCols, rightCols []value.Value, nCols int) value.Value {
	seed := &joinSeed{
		leftKeyers:  make([]keyer, nCols),
		rightKeyers: make([]keyer, nCols),
	}
	for i := 0; i < nCols; i++ {
		seed.leftKeyers[i] = keyerFor(leftCols[i])
		seed.rightKeyers[i] = keyerFor(rightCols[i])
	}

	rightLen := rightCols[0].Len()
	leftLen := leftCols[0].Len()

	tb := xhash.NewWith(rightLen, true, joinHash, joinCmp, seed)
	for r := 0; r < rightLen; r++ {
		before := tb.Len()
		idx := tb.Next(encodeRowKey(0, r))
		if tb.Len() != before {
			// first right row with this key tuple wins, matching
			// find/distinct's first-occurrence semantics
			tb.Values[idx] = int64(r)
		}
	}
	out := make([]int64, leftLen)
	for l := 0; l < leftLen; l++ {
		probe := encodeRowKey(1, l)
		if idx, ok := tb.Get(probe); ok {
			out[l] = tb.Values[idx]
		} else {
			out[l] = value.NullInt
		}
	}
	return value.IntVector(out)
}
