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

package prim

// New returns the full table of stateless primitives: everything spec §4.5
// names plus the supplemented set from SPEC_FULL.md §6.5. Primitives that
// need access to process-wide state (`set`, `each`) are registered
// separately by package runtime, which closes over its own instance to
// build them — see runtime.New.
func New() Registry {
	reg := make(Registry, 64)
	registerArith(reg)
	registerVector(reg)
	registerAnymap(reg)
	return reg
}

// Lookup returns the descriptor registered under name, if any.
func (r Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r[name]
	return d, ok
}

// Register adds or replaces a descriptor — used by package runtime to wire
// in the few primitives that need environment or VM callback access.
func (r Registry) Register(d *Descriptor) {
	r.register(d)
}
