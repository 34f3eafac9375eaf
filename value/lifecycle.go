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

// Clone increments v's reference count and returns v (the same logical
// value, now with one more owner). Atoms need no bookkeeping: Clone is a
// no-op copy for them. This is an O(1) operation — children are not
// touched, matching ordinary refcounting discipline; they are visited only
// when Drop recurses at rc==0, rather than bumping every child's count.
func Clone(v Value) Value {
	if v.p != nil {
		v.p.rc++
	}
	return v
}

func clone1(v Value) Value { return Clone(v) }

// Drop decrements v's reference count. At zero it recursively drops every
// nested child (list elements, both table halves, table columns, enum
// domain/index, anymap entries, lambda constants) before releasing the
// payload. Atoms require no Drop.
func Drop(v Value) {
	if v.p == nil {
		return
	}
	v.p.rc--
	if v.p.rc > 0 {
		return
	}
	switch v.Kind {
	case KList:
		for _, c := range v.p.items {
			Drop(c)
		}
	case KDict:
		Drop(*v.p.keys)
		Drop(v.p.items[0])
	case KTable:
		Drop(*v.p.keys)
		Drop(v.p.items[0])
	case KEnum:
		Drop(*v.p.domain)
		Drop(*v.p.index)
	case KAnymap:
		v.p.amap.Each(func(k, val Value) bool {
			Drop(k)
			Drop(val)
			return true
		})
	case KLambda:
		for _, c := range v.p.lambda.Constants {
			Drop(c)
		}
	case KError:
		// no nested Values to release
	}
	v.p.bools = nil
	v.p.ints = nil
	v.p.floats = nil
	v.p.syms = nil
	v.p.chars = nil
	v.p.times = nil
	v.p.guids = nil
	v.p.items = nil
}

// Cow ("copy on write") returns a Value safe to mutate in place: v itself
// if it is uniquely owned (rc==1), or a fresh, uniquely-owned duplicate of
// its payload otherwise. Duplication is shallow for composites (children
// are Cloned, not deep-copied) and a true element copy for vectors.
func Cow(v Value) Value {
	if v.p == nil || v.p.rc == 1 {
		return v
	}
	switch v.Kind {
	case VBool:
		return BoolVector(append([]bool(nil), v.p.bools...))
	case VInt:
		return IntVector(append([]int64(nil), v.p.ints...))
	case VFloat:
		return FloatVector(append([]float64(nil), v.p.floats...))
	case VSymbol:
		return SymbolVector(append([]*Symbol(nil), v.p.syms...))
	case VChar:
		cp := append([]rune(nil), v.p.chars...)
		return Value{Kind: VChar, p: &payload{rc: 1, length: len(cp), chars: cp}}
	case VTimestamp:
		cp := append([]int64(nil), v.p.times...)
		return Value{Kind: VTimestamp, p: &payload{rc: 1, length: len(cp), times: cp}}
	case VGUID:
		return GUIDVector(append([]UUID(nil), v.p.guids...))
	case KList:
		items := make([]Value, len(v.p.items))
		for i, c := range v.p.items {
			items[i] = Clone(c)
		}
		return Value{Kind: KList, p: &payload{rc: 1, length: len(items), items: items}}
	case KDict:
		k := Clone(*v.p.keys)
		val := Clone(v.p.items[0])
		return Value{Kind: KDict, p: &payload{rc: 1, length: v.p.length, keys: &k, items: []Value{val}}}
	case KTable:
		k := Clone(*v.p.keys)
		cols := Clone(v.p.items[0])
		return Value{Kind: KTable, p: &payload{rc: 1, length: v.p.length, keys: &k, items: []Value{cols}}}
	case KEnum:
		d := Clone(*v.p.domain)
		idx := Clone(*v.p.index)
		return Value{Kind: KEnum, p: &payload{rc: 1, length: v.p.length, domain: &d, index: &idx}}
	case KAnymap:
		return Value{Kind: KAnymap, p: &payload{rc: 1, length: v.p.length, amap: v.p.amap.clone()}}
	default:
		// KLambda, KError: immutable once constructed, so sharing the
		// payload across owners is always safe; no mutator ever calls Cow
		// on one of these.
		return v
	}
}
