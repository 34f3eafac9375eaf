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

import "github.com/pkg/errors"

// NullKey is the empty-slot sentinel for the keys column.
const NullKey int64 = -1 << 63

// HashFn computes a hash for key, given an opaque seed blob supplied by the
// caller (e.g. a pointer to out-of-line column data that key indexes into).
type HashFn func(key int64, seed interface{}) uint64

// CmpFn reports whether two keys denote the same logical value, given the
// same seed blob.
type CmpFn func(a, b int64, seed interface{}) bool

// Table is the two-column open-addressed hash table from spec §4.3. Keys
// are always an i64 column; Values, if present (HasValues), may hold
// anything the caller chooses to store there (row indices, group ids, ...).
type Table struct {
	Keys      []int64
	Values    []int64
	HasValues bool
	size      int // number of occupied slots
	Hash      HashFn
	Cmp       CmpFn
	Seed      interface{}
}

// New creates a table with the given initial capacity (rounded up to a
// power of two, minimum 8) using the default identity hash/cmp pair over
// plain i64 keys.
func New(capacityHint int, withValues bool) *Table {
	return NewWith(capacityHint, withValues, HashI64, CmpI64, nil)
}

// NewWith creates a table using a caller-supplied hash/cmp pair and seed,
// for keys that are pointers to out-of-line data (GUIDs, structural
// values, folded row hashes).
func NewWith(capacityHint int, withValues bool, hash HashFn, cmp CmpFn, seed interface{}) *Table {
	cap := nextPow2(capacityHint)
	if cap < 8 {
		cap = 8
	}
	t := &Table{
		Keys:      make([]int64, cap),
		HasValues: withValues,
		Hash:      hash,
		Cmp:       cmp,
		Seed:      seed,
	}
	for i := range t.Keys {
		t.Keys[i] = NullKey
	}
	if withValues {
		t.Values = make([]int64, cap)
	}
	return t
}

// Len returns the number of occupied slots.
func (t *Table) Len() int { return t.size }

// Cap returns the table's current capacity (always a power of two).
func (t *Table) Cap() int { return len(t.Keys) }

// Get locates an existing key and returns its slot index, or -1 (with ok
// false) if the key is absent. This is tab_get from spec §4.3.
func (t *Table) Get(key int64) (idx int, ok bool) {
	mask := int64(len(t.Keys) - 1)
	h := int64(t.Hash(key, t.Seed))
	for i := h & mask; ; i = (i + 1) & mask {
		k := t.Keys[i]
		if k == NullKey {
			return -1, false
		}
		if t.Cmp(k, key, t.Seed) {
			return int(i), true
		}
	}
}

// Next locates the slot for key, inserting it if absent, and returns its
// index. This is tab_next from spec §4.3: it grows (doubling capacity,
// rehashing all live entries) and retries whenever the full probe sequence
// is exhausted without finding the key or a free slot, so it never fails —
// a retry loop that does not terminate after a bounded number of grows is
// the "hash table full" condition spec §4.3 calls a fatal panic, which
// cannot occur here because doubling always frees a slot for one more key.
func (t *Table) Next(key int64) int {
	for attempt := 0; ; attempt++ {
		if idx, inserted := t.tryNext(key); inserted >= 0 {
			return idx
		} else if idx >= 0 {
			return idx
		}
		t.grow()
		if attempt > 64 {
			panic(errors.Errorf("xhash: table full after %d rehashes (cap=%d)", attempt, t.Cap()))
		}
	}
}

// tryNext attempts one probe pass. It returns (idx, idx) if key was found
// or freshly inserted, or (-1, -1) if the probe sequence wrapped without
// success (caller must grow and retry).
func (t *Table) tryNext(key int64) (found int, inserted int) {
	mask := int64(len(t.Keys) - 1)
	h := int64(t.Hash(key, t.Seed))
	start := h & mask
	for i := start; ; i = (i + 1) & mask {
		k := t.Keys[i]
		if k == NullKey {
			t.Keys[i] = key
			t.size++
			return int(i), int(i)
		}
		if t.Cmp(k, key, t.Seed) {
			return int(i), int(i)
		}
		if (i+1)&mask == start {
			return -1, -1
		}
	}
}

// Put stores val at key's slot (inserting the key if needed) and returns
// the slot index.
func (t *Table) Put(key, val int64) int {
	if !t.HasValues {
		panic("xhash: Put called on a keys-only table")
	}
	idx := t.Next(key)
	t.Values[idx] = val
	return idx
}

func (t *Table) grow() {
	old := t.Keys
	oldVals := t.Values
	newCap := len(old) * 2
	t.Keys = make([]int64, newCap)
	for i := range t.Keys {
		t.Keys[i] = NullKey
	}
	if t.HasValues {
		t.Values = make([]int64, newCap)
	}
	t.size = 0
	for i, k := range old {
		if k == NullKey {
			continue
		}
		idx := t.Next(k)
		if t.HasValues {
			t.Values[idx] = oldVals[i]
		}
	}
}

func nextPow2(n int) int {
	if n <= 0 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
