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

package value

import "github.com/ray-lang/ray/ast"

// Span re-exports ast.Span so callers outside the compiler don't need to
// import package ast just to construct an error value.
type Span = ast.Span

// ErrCode enumerates the error taxonomy from spec §4.9 / §7.
type ErrCode int

const (
	ErrInit ErrCode = iota
	ErrParse
	ErrFormat
	ErrType
	ErrLength
	ErrIndex
	ErrAlloc
	ErrIO
	ErrNotFound
	ErrNotExist
	ErrNotImplemented
	ErrStackOverflow
	ErrThrow
)

func (c ErrCode) String() string {
	switch c {
	case ErrInit:
		return "INIT"
	case ErrParse:
		return "PARSE"
	case ErrFormat:
		return "FORMAT"
	case ErrType:
		return "TYPE"
	case ErrLength:
		return "LENGTH"
	case ErrIndex:
		return "INDEX"
	case ErrAlloc:
		return "ALLOC"
	case ErrIO:
		return "IO"
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrNotExist:
		return "NOT_EXIST"
	case ErrNotImplemented:
		return "NOT_IMPLEMENTED"
	case ErrStackOverflow:
		return "STACK_OVERFLOW"
	case ErrThrow:
		return "THROW"
	default:
		return "UNKNOWN"
	}
}

// NewError constructs a KError value. It is the sole failure-signaling
// mechanism for primitives and the compiler (spec §4.9): callers return it
// as an ordinary Value rather than a Go error, and the VM detects the
// KError tag on the operand stack top after a call.
func NewError(code ErrCode, msg string, span Span) Value {
	return Value{Kind: KError, p: &payload{rc: 1, errv: &errData{code: code, msg: msg, span: span}}}
}

// IsError reports whether v is a KError value.
func (v Value) IsError() bool { return v.Kind == KError }

// ErrorCode returns the error's code. Panics if v is not a KError.
func (v Value) ErrorCode() ErrCode {
	v.mustKind(KError)
	return v.p.errv.code
}

// ErrorMessage returns the error's human-readable message.
func (v Value) ErrorMessage() string {
	v.mustKind(KError)
	return v.p.errv.msg
}

// ErrorSpan returns the source span the error was raised at, zeroed if
// synthesized without source context.
func (v Value) ErrorSpan() Span {
	v.mustKind(KError)
	return v.p.errv.span
}

// Error implements Go's error interface so a KError value can be threaded
// through github.com/pkg/errors-wrapped chains at the REPL/driver boundary
// without a second translation layer.
func (v Value) Error() string {
	return "[" + v.ErrorCode().String() + "] " + v.ErrorMessage()
}
