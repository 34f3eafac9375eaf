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

// Package compiler lowers ast.Node syntax trees into compiled value.Lambda
// bytecode (C7, spec §4.7). It never imports package runtime — the
// primitive table it compiles CALL instructions against is supplied
// through the Resolver interface, so runtime (which owns that table) can
// depend on compiler without a cycle.
//
// Atoms push constants, bare symbols resolve through the fixed priority
// order (quoted literal, `self`, parameter, primitive, variable dict), and
// list forms are either one of the reserved special forms (quote, time,
// set, let, fn, if, try, throw, return, select) or an ordinary
// application, compiled to the compact CALL1/CALL2/CALLN form when the
// head is a statically known primitive and to OP_CALLD otherwise.
//
// select.go handles the one special form that doesn't compile directly:
// it desugars §4.7.1's query sketch into ordinary let/fn/call syntax and
// recompiles that, rather than emitting bytecode for it by hand — see
// DESIGN.md for why.
package compiler
