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

// Package symbol implements the process-wide symbol interner.
//
// Interning deduplicates a byte sequence into a stable *Symbol pointer: two
// interned pointers compare equal iff the underlying byte sequences match,
// which lets the rest of the runtime use pointer equality (and the pointer
// cast to an integer) as an O(1) proxy for name equality and hashing.
//
// Lookups and inserts must be safe against concurrent access — in the full
// system, event-loop threads intern names off the REPL's goroutine — so
// buckets are built from a lock-free singly linked list with a
// compare-and-swap on the head. Symbol payloads are never freed or moved:
// once interned, a pointer is valid for the lifetime of the process.
package symbol
