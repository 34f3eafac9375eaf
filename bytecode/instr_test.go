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

import "testing"

func TestEncodeDecodeRoundTripsNarrowInstr(t *testing.T) {
	in := Instr{Op: OpJmp, Arg: 12345}
	code := Encode(nil, in)
	if len(code) != 1 {
		t.Fatalf("expected 1 word, got %d", len(code))
	}
	out, next := Decode(code, 0)
	if out.Op != in.Op || out.Arg != in.Arg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if next != 1 {
		t.Fatalf("expected next pc 1, got %d", next)
	}
}

func TestEncodeDecodeRoundTripsWideInstr(t *testing.T) {
	in := Instr{Op: OpCallN, Attr: AttrAtomic, Arg: 3, Wide: 0xdeadbeef}
	code := Encode(nil, in)
	if len(code) != 2 {
		t.Fatalf("expected 2 words, got %d", len(code))
	}
	out, next := Decode(code, 0)
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if next != 2 {
		t.Fatalf("expected next pc 2, got %d", next)
	}
}

func TestBuilderPatchArgRewritesJumpTarget(t *testing.T) {
	b := NewBuilder()
	jmpAt := b.Emit(Instr{Op: OpJne, Arg: 0})
	b.Emit(Instr{Op: OpPop})
	target := b.Offset()
	b.PatchArg(jmpAt, uint64(target))

	out, _ := Decode(b.Code(), jmpAt)
	if out.Arg != uint64(target) {
		t.Fatalf("expected patched target %d, got %d", target, out.Arg)
	}
}

func TestSequentialDecodeWalksMixedWidths(t *testing.T) {
	b := NewBuilder()
	b.Emit(Instr{Op: OpPush, Arg: 1})
	b.Emit(Instr{Op: OpCall1, Wide: 7})
	b.Emit(Instr{Op: OpRet})

	code := b.Code()
	var ops []Op
	for pc := 0; pc < len(code); {
		var instr Instr
		instr, pc = Decode(code, pc)
		ops = append(ops, instr.Op)
	}
	want := []Op{OpPush, OpCall1, OpRet}
	if len(ops) != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), len(ops))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("instr %d: got %s want %s", i, ops[i], want[i])
		}
	}
}
