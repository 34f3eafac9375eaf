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

package symbol

import (
	"sync/atomic"
	"unsafe"
)

// Symbol is a stable, interned name. The zero value is not a valid Symbol;
// always obtain one through an Interner.
type Symbol struct {
	name string
	hash uint64
}

// String returns the interned byte sequence.
func (s *Symbol) String() string { return s.name }

// ID returns the symbol's stable integer identity: the interned pointer
// cast to an integer. Two symbols compare equal (by ==) iff their IDs
// match, and IDs may be used directly as hash table keys.
func (s *Symbol) ID() int64 { return int64(uintptr(unsafe.Pointer(s))) }

// Hash returns the 64-bit mixer hash of the interned name, computed once at
// intern time and cached on the Symbol.
func (s *Symbol) Hash() uint64 { return s.hash }

const bucketCount = 4096 // power of two

type node struct {
	sym  Symbol
	next unsafe.Pointer // *node, written once via atomic CAS
}

// Interner is a concurrent-safe, append-only symbol table. The zero value
// is ready to use. An Interner never evicts: every name interned through it
// remains reachable (and its pointer stable) for the life of the Interner.
type Interner struct {
	buckets [bucketCount]unsafe.Pointer // *node, head of the chain
	count   int64                       // approximate, for diagnostics only
}

// New returns a ready-to-use Interner.
func New() *Interner {
	return &Interner{}
}

// Intern deduplicates name into a stable *Symbol. Calling Intern with equal
// byte sequences, concurrently or not, always returns the same pointer.
func (in *Interner) Intern(name string) *Symbol {
	h := mix64(name)
	b := &in.buckets[h%bucketCount]
	for {
		head := atomic.LoadPointer(b)
		for p := head; p != nil; {
			n := (*node)(p)
			if n.sym.hash == h && n.sym.name == name {
				return &n.sym
			}
			p = atomic.LoadPointer(&n.next)
		}
		// Not found as of this read: build a new node and try to install it
		// at the head of the chain. On CAS failure another writer raced us
		// in (possibly interning the same name); retry the whole scan.
		nn := &node{sym: Symbol{name: name, hash: h}, next: head}
		if atomic.CompareAndSwapPointer(b, head, unsafe.Pointer(nn)) {
			atomic.AddInt64(&in.count, 1)
			return &nn.sym
		}
	}
}

// Lookup returns the interned Symbol for name, if any, without interning it.
func (in *Interner) Lookup(name string) (*Symbol, bool) {
	h := mix64(name)
	for p := atomic.LoadPointer(&in.buckets[h%bucketCount]); p != nil; {
		n := (*node)(p)
		if n.sym.hash == h && n.sym.name == name {
			return &n.sym, true
		}
		p = atomic.LoadPointer(&n.next)
	}
	return nil, false
}

// Count returns the approximate number of distinct interned names.
func (in *Interner) Count() int64 { return atomic.LoadInt64(&in.count) }

// mix64 is the 64-bit murmur-style mixer used to seed bucket selection and
// to cache each Symbol's hash for reuse by the hash table (C3) when symbols
// are used as index keys.
func mix64(s string) uint64 {
	var h uint64 = 0xcbf29ce484222325 // FNV offset basis, reused as a seed
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 0x100000001b3
	}
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
