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

// Instr is one decoded instruction: an opcode, its attribute byte (used by
// the CALL family to carry a primitive's ATOMIC/LEFT_ATOMIC/RIGHT_ATOMIC/
// FN_GROUP_MAP flags per spec §4.5), a 48-bit packed operand (jump target,
// constant pool index, frame slot, or arity), and — for the CALL family only
// — a second full-width operand word (a primitive or lambda id; see Op.wide).
type Instr struct {
	Op    Op
	Attr  Attr
	Arg   uint64
	Wide  uint64
}

const argMask = 1<<48 - 1

// Encode appends instr's word(s) to code and returns the extended slice.
func Encode(code []uint64, instr Instr) []uint64 {
	word := uint64(instr.Op) | uint64(instr.Attr)<<8 | (instr.Arg&argMask)<<16
	code = append(code, word)
	if instr.Op.wide() {
		code = append(code, instr.Wide)
	}
	return code
}

// Decode reads the instruction at pc and returns it along with the pc of
// the next instruction.
func Decode(code []uint64, pc int) (Instr, int) {
	word := code[pc]
	instr := Instr{
		Op:   Op(word & 0xff),
		Attr: Attr(word >> 8 & 0xff),
		Arg:  word >> 16 & argMask,
	}
	pc++
	if instr.Op.wide() {
		instr.Wide = code[pc]
		pc++
	}
	return instr, pc
}

// Len reports how many uint64 words instr occupies once encoded.
func (instr Instr) Len() int {
	if instr.Op.wide() {
		return 2
	}
	return 1
}

// Builder assembles a word stream incrementally, tracking word offsets so
// the compiler can patch forward jump targets after the jump's destination
// is known (mirrors an assembler's backpatch table).
type Builder struct {
	code []uint64
}

// NewBuilder returns an empty instruction builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Offset returns the word offset the next emitted instruction will occupy.
func (b *Builder) Offset() int {
	return len(b.code)
}

// Emit appends instr and returns the word offset it was written at.
func (b *Builder) Emit(instr Instr) int {
	at := len(b.code)
	b.code = Encode(b.code, instr)
	return at
}

// PatchArg overwrites the packed operand of the instruction whose first
// word sits at offset at — used to back-patch jump targets once resolved.
func (b *Builder) PatchArg(at int, arg uint64) {
	word := b.code[at]
	word = word&^(uint64(argMask)<<16) | (arg&argMask)<<16
	b.code[at] = word
}

// Code returns the assembled word stream.
func (b *Builder) Code() []uint64 {
	return b.code
}
