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

import "github.com/ray-lang/ray/value"

// registerAnymap wires the KAnymap composite (spec §3.1's "general
// key->value map") into the primitive table. Before this, value.Anymap
// and value.Value.AsAnyMap had no caller outside the value package itself
// — a real composite kind nothing could construct or read.
func registerAnymap(reg Registry) {
	reg.register(&Descriptor{Name: "map", Arity: Variadic, Variadic: primMap})
	reg.register(&Descriptor{Name: "mput", Arity: Variadic, Variadic: primMapPut})
	reg.register(&Descriptor{Name: "mget", Arity: Binary, Binary: primMapGet})
	reg.register(&Descriptor{Name: "mdel", Arity: Binary, Binary: primMapDel})
	reg.register(&Descriptor{Name: "mcount", Arity: Unary, Unary: primMapCount})
}

// primMap builds an anymap, empty when called with no arguments or seeded
// from alternating key/value arguments (`(map 'a 1 'b 2)`).
func primMap(args []value.Value) value.Value {
	if len(args)%2 != 0 {
		return value.NewError(value.ErrLength, "map: expects an even number of key/value arguments", value.Span{})
	}
	m := value.Anymap()
	am := m.AsAnyMap()
	for i := 0; i < len(args); i += 2 {
		am.Put(value.Clone(args[i]), value.Clone(args[i+1]))
	}
	return m
}

// primMapPut stores val under key in m, mutating and returning m (the
// amend/gathered-vector convention: mutate a uniquely-owned copy, return
// it, rather than a (map, result) pair).
func primMapPut(args []value.Value) value.Value {
	if len(args) != 3 {
		return value.NewError(value.ErrLength, "mput: expects (m, key, val)", value.Span{})
	}
	if args[0].Kind != value.KAnymap {
		return value.NewError(value.ErrType, "mput: m must be an anymap", value.Span{})
	}
	m := value.Cow(args[0])
	m.AsAnyMap().Put(value.Clone(args[1]), value.Clone(args[2]))
	return m
}

// primMapGet looks up key in m, returning ERR_NOT_FOUND on a miss rather
// than a null-like value (unlike `find`, which returns a null index), since
// an anymap's value kind isn't known ahead of a successful lookup.
func primMapGet(m, key value.Value) value.Value {
	if m.Kind != value.KAnymap {
		return value.NewError(value.ErrType, "mget: m must be an anymap", value.Span{})
	}
	v, ok := m.AsAnyMap().Get(key)
	if !ok {
		return value.NewError(value.ErrNotFound, "mget: key not found", value.Span{})
	}
	return value.Clone(v)
}

// primMapDel removes key from m, mutating and returning m. Deleting an
// absent key is a no-op, matching dict/table's tolerant lookup style.
func primMapDel(m, key value.Value) value.Value {
	if m.Kind != value.KAnymap {
		return value.NewError(value.ErrType, "mdel: m must be an anymap", value.Span{})
	}
	out := value.Cow(m)
	out.AsAnyMap().Delete(key)
	return out
}

func primMapCount(m value.Value) value.Value {
	if m.Kind != value.KAnymap {
		return value.NewError(value.ErrType, "mcount: expects an anymap", value.Span{})
	}
	return value.Int(int64(m.AsAnyMap().Count()))
}
