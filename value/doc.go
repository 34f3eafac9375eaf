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

// Package value implements the runtime's tagged value heap (spec C1): a
// single representation spanning atoms, typed vectors, lists, dicts,
// tables, enums, anymaps, lambdas, and errors, all reference-counted with
// copy-on-write.
//
// Every non-atom Value carries a shared *payload behind a pointer; Clone
// bumps its refcount, Drop decrements it and frees recursively at zero,
// and Cow duplicates the payload (cloning children, not deep-copying them)
// whenever a mutator is about to touch a Value it does not own outright.
// Atoms need none of this: their payload is stored inline in the Value
// struct itself and Drop/Clone on them are no-ops.
package value
