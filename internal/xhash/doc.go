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

// Package xhash implements the two-column open-addressed hash table used
// by the indexing primitives (distinct, find, group, join) and by the
// select-form compiler. It is intentionally generic over the notion of
// "key": callers supply a Hash/Cmp pair so the same table backs both
// direct i64 keys and structural keys (GUIDs, folded multi-column row
// hashes, arbitrary value kinds).
//
// The table never returns "full": on a collision overflow it rehashes into
// double the capacity and retries, so capacity is always a power of two
// and probing is linear from hash(key) & (cap-1).
package xhash
