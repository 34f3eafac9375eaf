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

// Package vm implements the bytecode VM (C8): a stack machine over an
// operand stack and a chain of call frames, each carrying its own
// try/catch descriptor chain. Instruction dispatch is the single loop in
// dispatch.go, decoding one bytecode.Instr per iteration via
// bytecode.Decode.
//
//	PUSH/PUSH_CONST/POP/DUP/SWAP/LOAD   stack manipulation
//	LGET/LSET                           variable environment access
//	LPUSH/LPOP                          secondary scratch stack
//	CALL1/CALL2/CALLN/CALLD             primitive and lambda invocation
//	JMP/JNE                             control flow
//	TRY/CATCH/THROW                     error unwinding
//	TIMER_SET/TIMER_GET                 wall-clock timing
//	RET/HALT                            frame and VM termination
//
// Non-recoverable conditions (an unknown opcode, call-frame recursion past
// MaxFrameDepth, the instruction pointer running off the end of the
// bytecode, an out-of-range constant, primitive or load index) abort via
// the typed panic in fatal.go rather than returning an ordinary
// value.Value error. The operand stack is not checked against a lambda's
// StackHint, and a nil symbol is not treated as fatal.
package vm
