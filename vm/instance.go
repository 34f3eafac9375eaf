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
	"io"

	"github.com/ray-lang/ray/internal/outbuf"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/prim"
	"github.com/ray-lang/ray/value"
)

// VarEnv is the variable-dict contract the VM needs for LGET/LSET and for
// dispatching OP_CALLD against a name bound by `let`/`set`. Package runtime
// implements this; vm never imports runtime, avoiding the cycle that would
// otherwise come from runtime owning the VM (spec §4.6's "runtime_init
// creates ... the VM").
type VarEnv interface {
	Get(sym *symbol.Symbol) (value.Value, bool)
	Set(sym *symbol.Symbol, v value.Value) value.Value
}

const (
	defaultOperandStack = 256
	defaultFrameDepth   = 256
)

// Option configures an Instance at construction, mirroring the teacher's
// vm.Option functional-options constructor.
type Option func(*Instance)

// OperandStackHint sets the initial capacity of the operand stack (spec
// §4.8's "stack-size contract" — the compiler's per-lambda upper-bound
// hint feeds Eval's preallocation, this sets the VM-wide floor).
func OperandStackHint(n int) Option {
	return func(i *Instance) { i.stack = make([]value.Value, 0, n) }
}

// MaxFrameDepth bounds call-frame recursion; exceeding it is a fatal
// condition (spec §7's "stack overflow past the lambda's declared bound").
func MaxFrameDepth(n int) Option {
	return func(i *Instance) { i.maxFrames = n }
}

// Output sets the writer the Instance holds, wrapped in an outbuf.Writer.
// No instruction or primitive writes to it.
func Output(w io.Writer) Option {
	return func(i *Instance) { i.out = outbuf.New(w) }
}

// Primitives installs the primitive table; CALL1/CALL2/CALLN/CALLD
// instructions address it by the index the compiler baked into the
// instruction's wide operand.
func Primitives(table []*prim.Descriptor) Option {
	return func(i *Instance) { i.primitives = table }
}

// Vars installs the variable environment LGET/LSET/CALLD read and write.
func Vars(env VarEnv) Option {
	return func(i *Instance) { i.vars = env }
}

// Instance is one VM: an operand stack and a chain of call frames, each
// with its own try/catch descriptor chain.
type Instance struct {
	stack     []value.Value
	scratch   []value.Value
	frames    []*frame
	maxFrames int

	primitives []*prim.Descriptor
	vars       VarEnv
	out        *outbuf.Writer

	pendingErr value.Value
	aborted    bool
	abortVal   value.Value

	insCount int64
}

// frame holds one lambda activation: its instruction pointer, the operand
// stack base marking where its locals begin, and its try/catch chain.
type frame struct {
	lambda *value.Lambda
	pc     int
	base   int
	tries  []tryFrame

	timerStart int64 // set by OP_TIMER_SET, read by OP_TIMER_GET
}

// tryFrame is one installed OP_TRY guard: the operand-stack depth to
// restore and the bytecode offset of its handler.
type tryFrame struct {
	stackDepth int
	handlerIP  int
}

// New builds a VM instance, applying opts over sane defaults.
func New(opts ...Option) *Instance {
	i := &Instance{maxFrames: defaultFrameDepth}
	for _, opt := range opts {
		opt(i)
	}
	if i.stack == nil {
		i.stack = make([]value.Value, 0, defaultOperandStack)
	}
	if i.out == nil {
		i.out = outbuf.New(io.Discard)
	}
	return i
}

// InstructionCount returns the number of instructions executed so far,
// across every Eval call on this Instance.
func (i *Instance) InstructionCount() int64 { return i.insCount }

func (i *Instance) push(v value.Value) { i.stack = append(i.stack, v) }

func (i *Instance) pop() value.Value {
	n := len(i.stack) - 1
	v := i.stack[n]
	i.stack = i.stack[:n]
	return v
}

func (i *Instance) top() value.Value { return i.stack[len(i.stack)-1] }

func (i *Instance) curFrame() *frame { return i.frames[len(i.frames)-1] }
