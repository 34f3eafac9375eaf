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

// Package prim implements the primitive-operator library (C5): the native
// functions a compiled lambda's CALL1/CALL2/CALLN instructions invoke.
// Every primitive is registered by name with an arity class and an
// attribute byte (ATOMIC, LEFT_ATOMIC, RIGHT_ATOMIC, FN_GROUP_MAP) per
// spec §4.5 and §6 (External Interfaces' "Primitive ABI"). Primitives that
// need access to process-wide state (the variable dict, for `set`) are
// wired by package runtime at registry-construction time rather than
// threaded through every call here — see runtime.New.
package prim
