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

// Package sexpr is a minimal internal reader that turns a parenthesized
// expression syntax into ast.Node trees, so the compiler and VM can be
// driven end to end by tests and the REPL without a real external parser.
// It is not the syntax-tree-producing component External Interfaces names
// (§6 "Syntax tree input") — that component is a black box this module
// never implements; sexpr exists only to exercise the rest of the runtime.
package sexpr

import (
	"fmt"
	"strconv"
	"text/scanner"
)

// ParseError collects up to maxErrors scan/parse problems, grounded on the
// teacher's assembler error-accumulation style (asm.ErrAsm).
type ParseError []struct {
	Pos scanner.Position
	Msg string
}

func (e ParseError) Error() string {
	s := ""
	for i, err := range e {
		if i > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("%s: %s", err.Pos, err.Msg)
	}
	return s
}

const maxErrors = 10
