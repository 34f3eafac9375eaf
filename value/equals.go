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

import "math"

// Equals reports structural equality: atoms by payload, vectors by
// kind+length+element-wise equality, composites recursively.
func Equals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KBool:
		return a.i == b.i
	case KInt:
		return a.i == b.i
	case KFloat:
		return floatEq(a.f, b.f)
	case KSymbol:
		return a.sym == b.sym
	case KChar:
		return a.ch == b.ch
	case KTimestamp:
		return a.i == b.i
	case KGUID:
		return a.guid == b.guid
	}
	if a.p == nil || b.p == nil {
		return a.p == b.p
	}
	if a.Len() != b.Len() {
		return false
	}
	switch a.Kind {
	case VBool:
		return boolsEq(a.Bools(), b.Bools())
	case VInt:
		return intsEq(a.Ints(), b.Ints())
	case VFloat:
		return floatsEq(a.Floats(), b.Floats())
	case VSymbol:
		return symsEq(a.Syms(), b.Syms())
	case VChar:
		return runesEq(a.Chars(), b.Chars())
	case VTimestamp:
		return intsEq(a.Times(), b.Times())
	case VGUID:
		return guidsEq(a.GUIDs(), b.GUIDs())
	case KList:
		for i, x := range a.Items() {
			if !Equals(x, b.Items()[i]) {
				return false
			}
		}
		return true
	case KDict:
		return Equals(a.DictKeys(), b.DictKeys()) && Equals(a.DictValues(), b.DictValues())
	case KTable:
		return Equals(a.TableColumnNames(), b.TableColumnNames()) && Equals(a.TableColumns(), b.TableColumns())
	case KEnum:
		return Equals(a.EnumDomain(), b.EnumDomain()) && Equals(a.EnumIndex(), b.EnumIndex())
	case KAnymap:
		if a.p.amap.Count() != b.p.amap.Count() {
			return false
		}
		eq := true
		a.p.amap.Each(func(k, v Value) bool {
			bv, ok := b.p.amap.Get(k)
			if !ok || !Equals(v, bv) {
				eq = false
				return false
			}
			return true
		})
		return eq
	case KLambda:
		return a.p.lambda == b.p.lambda
	case KError:
		return a.p.errv.code == b.p.errv.code && a.p.errv.msg == b.p.errv.msg
	}
	return false
}

func floatEq(x, y float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	return x == y
}

func boolsEq(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intsEq(a, b []int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatsEq(a, b []float64) bool {
	for i := range a {
		if !floatEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func symsEq(a, b []*Symbol) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func runesEq(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func guidsEq(a, b []UUID) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
