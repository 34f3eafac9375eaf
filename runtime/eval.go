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

package runtime

import (
	"github.com/ray-lang/ray/ast"
	"github.com/ray-lang/ray/compiler"
	"github.com/ray-lang/ray/internal/sexpr"
	"github.com/ray-lang/ray/value"
)

// Eval compiles node and runs it, returning its result. A compile error is
// surfaced as a KError value carrying ERR_PARSE (spec §7's error taxonomy
// extends to compile-time failures the same way it covers runtime ones),
// rather than as a second, Go-error-shaped failure channel.
func (r *Runtime) Eval(node ast.Node) (value.Value, error) {
	lam, err := r.compiler.Compile(node)
	if err != nil {
		cerr, _ := err.(*compiler.CompileError)
		if cerr != nil {
			return value.NewError(value.ErrParse, cerr.Msg, cerr.Span), nil
		}
		return value.Value{}, err
	}
	return r.vm.Eval(lam, nil)
}

// EvalString parses src as a single top-level form (via the internal
// s-expression reader — spec.md's own parser is an external black box this
// repo stands in for only to drive the REPL and tests, never the spec'd
// "parser" component) and evaluates it.
func (r *Runtime) EvalString(name, src string) (value.Value, error) {
	node, err := sexpr.ParseOne(name, src)
	if err != nil {
		return value.NewError(value.ErrParse, err.Error(), ast.Span{}), nil
	}
	return r.Eval(node)
}

// EvalAll parses src as a sequence of top-level forms and evaluates each in
// turn, returning every result — the REPL driver's one load-a-file entry
// point.
func (r *Runtime) EvalAll(name, src string) ([]value.Value, error) {
	nodes, err := sexpr.Parse(name, src)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := r.Eval(node)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
