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

package vm

import (
	"fmt"
	"time"

	"github.com/ray-lang/ray/bytecode"
	"github.com/ray-lang/ray/format"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
)

// Eval executes lambda with args bound as its parameters (positions
// base..base+arity-1) and returns its result. A thrown-but-uncaught error
// surfaces as an ordinary KError value in result, per spec §4.9 — errors
// are first-class values throughout, never a Go error. The returned err is
// non-nil only for the fatal, non-recoverable conditions in fatal.go.
func (i *Instance) Eval(lambda *value.Lambda, args []value.Value) (result value.Value, err error) {
	defer recoverFatal(&err)

	i.stack = i.stack[:0]
	if need := len(args) + lambda.StackHint; cap(i.stack) < need {
		i.stack = make([]value.Value, 0, need)
	}
	i.scratch = i.scratch[:0]
	i.frames = i.frames[:0]
	i.aborted = false

	for _, a := range args {
		i.push(a)
	}
	base := len(i.stack) - len(args)
	i.frames = append(i.frames, &frame{lambda: lambda, pc: 0, base: base})

	return i.run(), nil
}

func (i *Instance) run() value.Value {
	for {
		f := i.curFrame()
		if f.pc >= len(f.lambda.Code) {
			fatal("vm: instruction pointer ran off the end of the bytecode")
		}
		instrPC := f.pc
		instr, next := bytecode.Decode(f.lambda.Code, f.pc)
		f.pc = next
		i.insCount++

		switch instr.Op {
		case bytecode.OpNop:

		case bytecode.OpPush:
			i.push(i.primitiveRef(instr.Arg))

		case bytecode.OpPushConst:
			if int(instr.Arg) >= len(f.lambda.Constants) {
				fatal("vm: constant index %d out of range", instr.Arg)
			}
			i.push(value.Clone(f.lambda.Constants[instr.Arg]))

		case bytecode.OpPop:
			value.Drop(i.pop())

		case bytecode.OpDup:
			i.push(value.Clone(i.top()))

		case bytecode.OpSwap:
			n := len(i.stack)
			i.stack[n-1], i.stack[n-2] = i.stack[n-2], i.stack[n-1]

		case bytecode.OpLoad:
			idx := f.base + int(instr.Arg)
			if idx < 0 || idx >= len(i.stack) {
				fatal("vm: load slot %d out of range", instr.Arg)
			}
			i.push(value.Clone(i.stack[idx]))

		case bytecode.OpLGet:
			sym := i.pop().AsSymbol()
			v, ok := i.vars.Get(sym)
			if !ok {
				i.raise(value.NewError(value.ErrNotFound, fmt.Sprintf("undefined variable: %s", sym.String()), f.lambda.Debug.SpanAt(instrPC)))
				break
			}
			i.push(value.Clone(v))

		case bytecode.OpLSet:
			v := i.pop()
			sym := i.pop().AsSymbol()
			i.push(i.vars.Set(sym, v))

		case bytecode.OpLPush:
			i.scratch = append(i.scratch, i.pop())

		case bytecode.OpLPop:
			n := len(i.scratch) - 1
			v := i.scratch[n]
			i.scratch = i.scratch[:n]
			i.push(v)

		case bytecode.OpCall1:
			a := i.pop()
			i.raise(i.invokePrimitive(instr.Attr, instr.Wide, []value.Value{a}))

		case bytecode.OpCall2:
			b := i.pop()
			a := i.pop()
			i.raise(i.invokePrimitive(instr.Attr, instr.Wide, []value.Value{a, b}))

		case bytecode.OpCallN:
			args := i.popArgs(int(instr.Arg))
			i.raise(i.invokePrimitive(instr.Attr, instr.Wide, args))

		case bytecode.OpCallD:
			args := i.popArgs(int(instr.Arg))
			callable := i.pop()
			if callable.Kind != value.KLambda {
				i.raise(value.NewError(value.ErrType, "call: value is not callable", f.lambda.Debug.SpanAt(instrPC)))
				break
			}
			lam := callable.AsLambda()
			if lam.IsNative {
				i.raise(i.invokePrimitive(0, uint64(lam.NativeIndex), args))
			} else {
				i.callLambda(lam, args)
			}

		case bytecode.OpJmp:
			f.pc = int(instr.Arg)

		case bytecode.OpJne:
			if isFalsy(i.pop()) {
				f.pc = int(instr.Arg)
			}

		case bytecode.OpTry:
			f.tries = append(f.tries, tryFrame{stackDepth: len(i.stack), handlerIP: int(instr.Arg)})

		case bytecode.OpCatch:
			i.push(i.pendingErr)
			i.pendingErr = value.Value{}

		case bytecode.OpThrow:
			v := i.pop()
			if !v.IsError() {
				v = value.NewError(value.ErrThrow, "thrown: "+format.Value(v), f.lambda.Debug.SpanAt(instrPC))
			}
			i.raise(v)

		case bytecode.OpTimerSet:
			f.timerStart = time.Now().UnixNano()

		case bytecode.OpTimerGet:
			i.push(value.Int(time.Now().UnixNano() - f.timerStart))

		case bytecode.OpRet:
			if i.ret() {
				return i.pop()
			}

		case bytecode.OpHalt:
			if len(i.stack) == 0 {
				return value.Value{}
			}
			return i.pop()

		default:
			fatal("vm: unknown opcode %d", instr.Op)
		}

		if i.aborted {
			return i.abortVal
		}
	}
}

// raise pushes v if it is not an error, or starts an unwind if it is —
// the VM's uniform "any returned value whose tag is error is thrown"
// detection (spec §4.9) applied after every primitive/variable-env result.
func (i *Instance) raise(v value.Value) {
	if !v.IsError() {
		i.push(v)
		return
	}
	if !i.unwind(v) {
		i.aborted = true
		i.abortVal = v
	}
}

// unwind searches outward from the current frame for an installed try
// frame, restoring its saved stack depth and resuming at its handler-ip
// with errVal parked as pendingErr for the handler's OP_CATCH to collect.
// Frames with no try frame of their own are discarded (an error thrown
// inside a nested call propagates past it), matching §4.8's "otherwise
// return the error from the VM" once every frame is exhausted.
func (i *Instance) unwind(errVal value.Value) bool {
	for len(i.frames) > 0 {
		f := i.curFrame()
		if n := len(f.tries); n > 0 {
			t := f.tries[n-1]
			f.tries = f.tries[:n-1]
			i.stack = i.stack[:t.stackDepth]
			f.pc = t.handlerIP
			i.pendingErr = errVal
			return true
		}
		i.frames = i.frames[:len(i.frames)-1]
	}
	return false
}

func (i *Instance) popArgs(arity int) []value.Value {
	args := make([]value.Value, arity)
	for k := arity - 1; k >= 0; k-- {
		args[k] = i.pop()
	}
	return args
}

func (i *Instance) primitiveRef(idx uint64) value.Value {
	if int(idx) >= len(i.primitives) {
		fatal("vm: primitive index %d out of range", idx)
	}
	d := i.primitives[idx]
	return value.LambdaValue(&value.Lambda{Name: d.Name, IsNative: true, NativeIndex: int(idx)})
}

func (i *Instance) invokePrimitive(attr bytecode.Attr, idx uint64, args []value.Value) value.Value {
	if int(idx) >= len(i.primitives) {
		fatal("vm: primitive index %d out of range", idx)
	}
	d := i.primitives[idx]
	if attr&bytecode.AttrGroupMap != 0 {
		return i.groupMapCall(d, args)
	}
	return d.Call(args)
}

// groupMapCall applies d once per group of a grouped argument instead of
// once over the whole call, for bytecode the compiler marked FN_GROUP_MAP
// (select's `by` lowering, spec §4.7.1 step 4). The grouped argument is
// expected to be a dict of group-key -> per-group value list, the shape
// `group`+`at` produce; anything else falls back to an ordinary call since
// there is nothing to unwrap.
func (i *Instance) groupMapCall(d *prim.Descriptor, args []value.Value) value.Value {
	gi := len(args) - 1
	g := args[gi]
	if g.Kind != value.KDict || g.DictValues().Kind != value.KList {
		return d.Call(args)
	}
	keys := g.DictKeys()
	items := g.DictValues().Items()
	out := make([]value.Value, len(items))
	call := append([]value.Value(nil), args...)
	for idx, item := range items {
		call[gi] = item
		out[idx] = d.Call(call)
	}
	return value.Dict(keys, value.List(out...))
}

func (i *Instance) callLambda(lam *value.Lambda, args []value.Value) {
	if len(i.frames) >= i.maxFrames {
		fatal("vm: stack overflow: exceeded max frame depth of %d", i.maxFrames)
	}
	for _, a := range args {
		i.push(a)
	}
	base := len(i.stack) - len(args)
	i.frames = append(i.frames, &frame{lambda: lam, pc: 0, base: base})
}

// ret pops the current frame, leaving its result (already on top of the
// operand stack per the compiler's trailing OP_RET convention) in place of
// its now-discarded parameters/locals. Reports whether the VM has no
// frames left to run.
func (i *Instance) ret() bool {
	f := i.curFrame()
	result := i.pop()
	i.stack = i.stack[:f.base]
	i.push(result)
	i.frames = i.frames[:len(i.frames)-1]
	return len(i.frames) == 0
}

func isFalsy(v value.Value) bool {
	switch v.Kind {
	case value.KBool:
		return !v.AsBool()
	case value.KInt:
		return v.AsInt() == 0
	default:
		return false
	}
}
