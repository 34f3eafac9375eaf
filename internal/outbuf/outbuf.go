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

// Package outbuf wraps an io.Writer with buffering and an explicit Flush,
// grounded on jcorbin/gothird's internal/flushio: a bytes.Buffer or
// strings.Builder needs no flushing, anything else is wrapped in a
// bufio.Writer.
package outbuf

import (
	"bufio"
	"io"
)

type flusher interface {
	io.Writer
	Flush() error
}

// Writer is the output writer a vm.Instance holds (set by vm.Output). No
// instruction or primitive writes through it and nothing calls its Flush;
// the REPL driver in cmd/ray prints through its own bufio.Writer.
type Writer struct {
	w flusher
}

// New wraps w. If w already buffers (bytes.Buffer, strings.Builder, or
// anything else exposing Flush), it is used directly; otherwise it is
// wrapped in a bufio.Writer.
func New(w io.Writer) *Writer {
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
	}
	switch wt := w.(type) {
	case flusher:
		return &Writer{w: wt}
	default:
		if _, ok := w.(buffer); ok {
			return &Writer{w: nopFlusher{w}}
		}
		return &Writer{w: bufio.NewWriter(w)}
	}
}

func (o *Writer) Write(p []byte) (int, error) { return o.w.Write(p) }

func (o *Writer) WriteString(s string) (int, error) { return o.w.Write([]byte(s)) }

// Flush pushes any buffered bytes to the underlying writer.
func (o *Writer) Flush() error { return o.w.Flush() }

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }
