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

// Package bytecode defines the instruction vocabulary shared by the
// compiler (C7) and the VM (C8): the Op enum from spec §4.8 and the
// fixed-width encoding that stores each instruction as one or two uint64
// words (opcode in the low byte, operand packed into the rest; wide
// operands such as OP_CALLN's function pointer take a second word). Spec
// §9 notes the source stores unaligned byte-oriented opcodes and invites a
// fixed-width redesign "if the target language discourages unaligned
// pokes" — Go does, so this package takes that redesign.
package bytecode
