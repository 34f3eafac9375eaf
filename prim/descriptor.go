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

package prim

import (
	"github.com/ray-lang/ray/bytecode"
	"github.com/ray-lang/ray/value"
)

// Arity classes a primitive may declare, per spec §4.5.
type Arity int

const (
	Unary Arity = iota
	Binary
	Variadic
)

type UnaryFn func(a value.Value) value.Value
type BinaryFn func(a, b value.Value) value.Value
type VariadicFn func(args []value.Value) value.Value

// Descriptor is a registered primitive: a name, its arity class, its
// attribute bits, and exactly one of the three native shapes named in
// External Interfaces' "Primitive ABI".
type Descriptor struct {
	Name     string
	Arity    Arity
	Attrs    bytecode.Attr
	Unary    UnaryFn
	Binary   BinaryFn
	Variadic VariadicFn
}

// Registry maps a primitive's name to its descriptor. Package runtime owns
// the symbol-keyed registry (function registry, C6); this map is the
// name-keyed source of truth it is built from.
type Registry map[string]*Descriptor

func (r Registry) register(d *Descriptor) {
	r[d.Name] = d
}

// Call invokes d with args, applying broadcasting (for Unary/Binary
// primitives whose Attrs include an ATOMIC flag) before dispatch. It does
// no FN_GROUP_MAP unwrapping; the VM's invokePrimitive does that before
// calling Call once per group.
func (d *Descriptor) Call(args []value.Value) value.Value {
	switch d.Arity {
	case Unary:
		return d.callUnary(args[0])
	case Binary:
		return d.callBinary(args[0], args[1])
	default:
		return d.Variadic(args)
	}
}

func (d *Descriptor) callUnary(a value.Value) value.Value {
	if d.Attrs&bytecode.AttrAtomic != 0 && a.Kind.IsVector() {
		return mapVector(a, func(elem value.Value) value.Value { return d.Unary(elem) })
	}
	return d.Unary(a)
}

func (d *Descriptor) callBinary(a, b value.Value) value.Value {
	atomic := d.Attrs&bytecode.AttrAtomic != 0
	left := atomic || d.Attrs&bytecode.AttrLeftAtomic != 0
	right := atomic || d.Attrs&bytecode.AttrRightAtomic != 0
	switch {
	case left && right && a.Kind.IsVector() && b.Kind.IsVector():
		if a.Len() != b.Len() {
			return value.NewError(value.ErrLength, "broadcast: vectors must share length", value.Span{})
		}
		return zipVectors(a, b, d.Binary)
	case left && a.Kind.IsVector() && !b.Kind.IsVector():
		return mapVector(a, func(elem value.Value) value.Value { return d.Binary(elem, b) })
	case right && b.Kind.IsVector() && !a.Kind.IsVector():
		return mapVector(b, func(elem value.Value) value.Value { return d.Binary(a, elem) })
	default:
		return d.Binary(a, b)
	}
}
