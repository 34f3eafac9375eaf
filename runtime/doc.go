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

// Package runtime is the environment component (spec §4.6, C6): it owns
// the symbol interner, the primitive table, and the variable dict, and
// wires them into a compiler.Compiler and a vm.Instance that share them.
//
// Name resolution at compile time follows spec §3.4's fixed priority order
// — lambda parameter list, then the primitive registry, then (at runtime)
// the variable dict — realized here by handing the compiler a
// Runtime-backed compiler.Resolver and the VM a Runtime-backed
// vm.VarEnv, so neither package needs to know how the other's lookup
// works.
//
// Two primitives are registered here rather than in package prim because
// they need state prim.New can't see: `set` (writes the variable dict) and
// `each` (calls back into the VM to apply a lambda argument, per select's
// lowering in package compiler).
package runtime
