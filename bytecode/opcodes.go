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

package bytecode

// Op is a single bytecode instruction opcode (spec §4.8's opcode table).
type Op uint8

const (
	OpNop Op = iota
	OpPush
	OpPushConst
	OpPop
	OpDup
	OpSwap
	OpLoad
	OpLGet
	OpLSet
	OpLPush
	OpLPop
	OpCall1
	OpCall2
	OpCallN
	OpCallD
	OpJmp
	OpJne
	OpTry
	OpCatch
	OpThrow
	OpTimerSet
	OpTimerGet
	OpRet
	OpHalt
)

var names = [...]string{
	OpNop:       "nop",
	OpPush:      "push",
	OpPushConst: "push_const",
	OpPop:       "pop",
	OpDup:       "dup",
	OpSwap:      "swap",
	OpLoad:      "load",
	OpLGet:      "lget",
	OpLSet:      "lset",
	OpLPush:     "lpush",
	OpLPop:      "lpop",
	OpCall1:     "call1",
	OpCall2:     "call2",
	OpCallN:     "calln",
	OpCallD:     "calld",
	OpJmp:       "jmp",
	OpJne:       "jne",
	OpTry:       "try",
	OpCatch:     "catch",
	OpThrow:     "throw",
	OpTimerSet:  "timer_set",
	OpTimerGet:  "timer_get",
	OpRet:       "ret",
	OpHalt:      "halt",
}

func (op Op) String() string {
	if int(op) < len(names) && names[op] != "" {
		return names[op]
	}
	return "bad_op"
}

// wide reports whether op carries a second 64-bit operand word in
// addition to its packed opcode/attr/operand word (spec: CALL1/CALL2
// carry a full u64 function pointer; CALLN carries a u64 function pointer
// plus its u8 arity, which fits in the first word's operand field).
func (op Op) wide() bool {
	switch op {
	case OpCall1, OpCall2, OpCallN:
		return true
	default:
		return false
	}
}

// Attr is the primitive attribute bitfield from spec §4.5/§6 (External
// Interfaces): {ATOMIC, LEFT_ATOMIC, RIGHT_ATOMIC, FN_GROUP_MAP}.
type Attr uint8

const (
	AttrAtomic Attr = 1 << iota
	AttrLeftAtomic
	AttrRightAtomic
	AttrGroupMap
)
