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

package value

import "github.com/dolthub/swiss"

// AnyMap is the KAnymap composite: a general key→value map, distinct from
// KDict (whose keys must be a vector). It is not backed by the
// open-addressed xhash table that the indexing primitives use for
// columnar/vector keys (package index) — that table is specialized for
// i64-keyed columns with pluggable structural hash/cmp, where AnyMap's
// keys and values are themselves arbitrary Values. It is backed instead by
// github.com/dolthub/swiss, the SwissTable-style generic hash map
// contributed by the retrieval pack's mna/nenuphar example.
type AnyMap struct {
	m *swiss.Map[Value, Value]
}

// Anymap builds an empty KAnymap value.
func Anymap() Value {
	am := &AnyMap{m: swiss.NewMap[Value, Value](8)}
	return Value{Kind: KAnymap, p: &payload{rc: 1, length: 0, amap: am}}
}

// AsAnyMap returns the wrapped *AnyMap. Panics if v is not a KAnymap.
func (v Value) AsAnyMap() *AnyMap {
	v.mustKind(KAnymap)
	return v.p.amap
}

// Get looks up key, returning the zero Value and false if absent.
func (m *AnyMap) Get(key Value) (Value, bool) {
	return m.m.Get(key)
}

// Put stores val under key, replacing any previous entry. The map takes
// ownership of both key and val (callers should Clone beforehand if they
// retain their own reference).
func (m *AnyMap) Put(key, val Value) {
	m.m.Put(key, val)
}

// Delete removes key, if present.
func (m *AnyMap) Delete(key Value) bool {
	return m.m.Delete(key)
}

// Count returns the number of entries.
func (m *AnyMap) Count() int { return m.m.Count() }

// Each calls f for every entry, in unspecified order. f returning false
// stops iteration early.
func (m *AnyMap) Each(f func(k, v Value) bool) {
	m.m.Iter(func(k, v Value) bool { return !f(k, v) })
}

// clone returns a shallow copy of the map: a fresh backing table with the
// same key/value Values cloned (their refcounts bumped, not deep-copied).
func (m *AnyMap) clone() *AnyMap {
	nm := swiss.NewMap[Value, Value](uint32(m.m.Count()))
	m.m.Iter(func(k, v Value) bool {
		nm.Put(clone1(k), clone1(v))
		return false
	})
	return &AnyMap{m: nm}
}
