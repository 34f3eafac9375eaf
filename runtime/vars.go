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

package runtime

import (
	"sync"

	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/value"
)

// varEnv is the Variables environment from spec §3.4: a dict of symbol ->
// value, consulted when a symbol is neither a lambda parameter nor a
// primitive, and written by `set`/`let`. Guarded by a mutex per §5's
// "process-wide shared resources require discipline" — the core evaluator
// itself is single-threaded, but an embedding host may read/write vars
// from another goroutine between Eval calls.
type varEnv struct {
	mu sync.RWMutex
	m  map[*symbol.Symbol]value.Value
}

func newVarEnv() *varEnv {
	return &varEnv{m: make(map[*symbol.Symbol]value.Value)}
}

// Get implements vm.VarEnv.
func (e *varEnv) Get(sym *symbol.Symbol) (value.Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.m[sym]
	return v, ok
}

// Set implements vm.VarEnv, also backing the `set` primitive and the
// `let`-via-OP_LSET path.
func (e *varEnv) Set(sym *symbol.Symbol, v value.Value) value.Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	if old, ok := e.m[sym]; ok {
		value.Drop(old)
	}
	e.m[sym] = v
	return v
}
