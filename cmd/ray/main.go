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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ray-lang/ray/format"
	"github.com/ray-lang/ray/runtime"
)

var (
	loadFile  string
	stackHint int
	slaves    int
	execStats bool
)

func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func newRuntime(out io.Writer) *runtime.Runtime {
	opts := []runtime.Option{runtime.Output(out)}
	if stackHint > 0 {
		opts = append(opts, runtime.OperandStackHint(stackHint))
	}
	if slaves > 0 {
		opts = append(opts, runtime.Slaves(slaves))
	}
	return runtime.New(opts...)
}

func loadSource(r *runtime.Runtime, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	results, err := r.EvalAll(path, string(src))
	if err != nil {
		return errors.Wrapf(err, "evaluating %s", path)
	}
	for _, v := range results {
		if v.IsError() {
			return errors.Errorf("%s: %s: %s", path, v.ErrorCode(), v.ErrorMessage())
		}
	}
	return nil
}

func repl(r *runtime.Runtime, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, "  ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if line == "" {
			continue
		}
		v, err := r.EvalString("<stdin>", line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, format.Value(v))
	}
}

func main() {
	var err error
	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		stdout.Flush()
		atExit(err)
	}()

	flag.StringVar(&loadFile, "load", "", "evaluate `file` before starting the REPL")
	flag.IntVar(&stackHint, "stack", 0, "initial operand-stack capacity (0: use the default)")
	flag.IntVar(&slaves, "slaves", 0, "parallel-refcount worker count (0: single-threaded)")
	flag.BoolVar(&execStats, "stats", false, "print the executed instruction count on exit")
	flag.Parse()

	r := newRuntime(stdout)

	if loadFile != "" {
		if err = loadSource(r, loadFile); err != nil {
			return
		}
	}

	if flag.NArg() > 0 {
		for _, expr := range flag.Args() {
			v, evalErr := r.EvalString("<arg>", expr)
			if evalErr != nil {
				err = evalErr
				return
			}
			fmt.Fprintln(stdout, format.Value(v))
		}
	} else {
		err = repl(r, os.Stdin, stdout)
	}

	if execStats {
		fmt.Fprintf(os.Stderr, "executed %d instructions\n", r.InstructionCount())
	}
}
