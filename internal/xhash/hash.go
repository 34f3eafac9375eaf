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

import "github.com/google/uuid"

// HashKMH is Knuth's multiplicative hash.
func HashKMH(key int64, _ interface{}) uint64 {
	return uint64(key) * 0x9E3779B97F4A7C15
}

// HashFNV1a is the FNV-1a hash over key's 8 bytes.
func HashFNV1a(key int64, _ interface{}) uint64 {
	const offset = 0xcbf29ce484222325
	const prime = 0x100000001b3
	h := uint64(offset)
	u := uint64(key)
	for i := 0; i < 8; i++ {
		h ^= u & 0xff
		h *= prime
		u >>= 8
	}
	return h
}

// HashI64 is the identity hash, used when keys are already well
// distributed i64 values.
func HashI64(key int64, _ interface{}) uint64 { return uint64(key) }

// CmpI64 is the default i64 equality comparator.
func CmpI64(a, b int64, _ interface{}) bool { return a == b }

// GUIDSeed adapts a []uuid.UUID column as the seed for GUID-keyed tables:
// the i64 "key" is an index into Column.
type GUIDSeed struct {
	Column []uuid.UUID
}

// HashGUID hashes a GUID key (an index into seed.(GUIDSeed).Column) by
// XORing its two 64-bit halves, per spec §4.3's "GUID (xor of halves)".
func HashGUID(key int64, seed interface{}) uint64 {
	g := seed.(GUIDSeed).Column[key]
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(g[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(g[i])
	}
	return hi ^ lo
}

// CmpGUID compares two GUID keys by value.
func CmpGUID(a, b int64, seed interface{}) bool {
	col := seed.(GUIDSeed).Column
	return col[a] == col[b]
}

// ObjSeed is the seed for object-keyed tables: a pair of callbacks that
// hash and compare the objects at two row indices structurally.
type ObjSeed struct {
	Hash func(idx int64) uint64
	Eq   func(a, b int64) bool
}

// HashObj dispatches on the object kind via the seed's Hash callback, per
// spec §4.3's "object-structural (dispatches on value kind)".
func HashObj(key int64, seed interface{}) uint64 {
	return seed.(ObjSeed).Hash(key)
}

// CmpObj compares two object keys structurally via the seed's Eq callback.
func CmpObj(a, b int64, seed interface{}) bool {
	return seed.(ObjSeed).Eq(a, b)
}

// IndexHashU64 is the universal mixer used to fold multiple column hashes
// of the same row into a single row hash, per spec §4.3:
// mix(xor, shift, multiply).
func IndexHashU64(hashSoFar, key uint64) uint64 {
	h := hashSoFar ^ key
	h ^= h >> 23
	h *= 0x2127599bf4325c37
	h ^= h >> 47
	return h
}
