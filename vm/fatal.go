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
	"runtime/debug"

	"github.com/pkg/errors"
)

// fatalError is the typed panic value non-recoverable conditions raise
// (unknown opcode decode, call-frame depth past MaxFrameDepth, and the
// out-of-range checks in dispatch.go). Grounded on jcorbin/gothird's
// internal/panicerr: a recovered panic becomes a describable error instead
// of an opaque one, while still aborting the call that triggered it.
type fatalError struct {
	reason string
	stack  []byte
}

func (fe fatalError) Error() string {
	return fmt.Sprintf("vm: fatal: %s", fe.reason)
}

func (fe fatalError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, fe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nstack:\n%s", fe.stack)
	}
}

func fatal(format string, args ...interface{}) {
	panic(fatalError{reason: fmt.Sprintf(format, args...), stack: debug.Stack()})
}

// IsFatal reports whether err was produced by recovering one of the VM's
// non-recoverable panics.
func IsFatal(err error) bool {
	var fe fatalError
	return errors.As(err, &fe)
}

// recoverFatal turns a fatalError panic into a returned error, re-panicking
// anything else (a programmer bug, not a spec-sanctioned abort).
func recoverFatal(err *error) {
	e := recover()
	if e == nil {
		return
	}
	fe, ok := e.(fatalError)
	if !ok {
		panic(e)
	}
	*err = fe
}
