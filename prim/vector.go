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
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ray-lang/ray/format"
	"github.com/ray-lang/ray/index"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/value"
)

func registerVector(reg Registry) {
	reg.register(&Descriptor{Name: "til", Arity: Unary, Unary: primTil})
	reg.register(&Descriptor{Name: "count", Arity: Unary, Unary: primCount})
	reg.register(&Descriptor{Name: "first", Arity: Unary, Unary: primFirst})
	reg.register(&Descriptor{Name: "last", Arity: Unary, Unary: primLast})
	reg.register(&Descriptor{Name: "reverse", Arity: Unary, Unary: primReverse})
	reg.register(&Descriptor{Name: "enlist", Arity: Unary, Unary: primEnlist})
	reg.register(&Descriptor{Name: "flip", Arity: Unary, Unary: primFlip})
	reg.register(&Descriptor{Name: "string", Arity: Unary, Unary: primString})
	reg.register(&Descriptor{Name: "type", Arity: Unary, Unary: primType})
	reg.register(&Descriptor{Name: "where", Arity: Unary, Unary: primWhere})
	reg.register(&Descriptor{Name: "value", Arity: Unary, Unary: primValue})
	reg.register(&Descriptor{Name: "key", Arity: Unary, Unary: primKey})
	reg.register(&Descriptor{Name: "distinct", Arity: Unary, Unary: func(a value.Value) value.Value { return index.Distinct(a) }})
	reg.register(&Descriptor{Name: "sum", Arity: Unary, Unary: primSum})
	reg.register(&Descriptor{Name: "avg", Arity: Unary, Unary: primAvg})
	reg.register(&Descriptor{Name: "asc", Arity: Unary, Unary: func(a value.Value) value.Value { return primSort(a, false) }})
	reg.register(&Descriptor{Name: "desc", Arity: Unary, Unary: func(a value.Value) value.Value { return primSort(a, true) }})
	reg.register(&Descriptor{Name: "group", Arity: Unary, Unary: primGroup})

	reg.register(&Descriptor{Name: "at", Arity: Binary, Binary: primAt})
	reg.register(&Descriptor{Name: "take", Arity: Binary, Binary: primTake})
	reg.register(&Descriptor{Name: "except", Arity: Binary, Binary: primExcept})
	reg.register(&Descriptor{Name: "union", Arity: Binary, Binary: primUnion})
	reg.register(&Descriptor{Name: "concat", Arity: Binary, Binary: primConcat})
	reg.register(&Descriptor{Name: "like", Arity: Binary, Binary: primLike})
	reg.register(&Descriptor{Name: "find", Arity: Binary, Binary: func(a, b value.Value) value.Value { return index.Find(a, b) }})

	reg.register(&Descriptor{Name: "min", Arity: Variadic, Variadic: reduceOrZip("min", minAtom)})
	reg.register(&Descriptor{Name: "max", Arity: Variadic, Variadic: reduceOrZip("max", maxAtom)})
	reg.register(&Descriptor{Name: "amend", Arity: Variadic, Variadic: primAmend})
	reg.register(&Descriptor{Name: "lj", Arity: Variadic, Variadic: primLeftJoin})
	reg.register(&Descriptor{Name: "list", Arity: Variadic, Variadic: func(args []value.Value) value.Value {
		return value.List(args...)
	}})
	reg.register(&Descriptor{Name: "table", Arity: Variadic, Variadic: func(args []value.Value) value.Value {
		if len(args) != 2 {
			return value.NewError(value.ErrLength, "table: expects (names, columns)", value.Span{})
		}
		return value.Table(args[0], args[1])
	}})
}

func primTil(a value.Value) value.Value {
	if a.Kind != value.KInt {
		return value.NewError(value.ErrType, "til: operand must be an int atom", value.Span{})
	}
	n := a.AsInt()
	if n < 0 {
		return value.NewError(value.ErrLength, "til: operand must be non-negative", value.Span{})
	}
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = int64(i)
	}
	return value.IntVector(xs)
}

// primEnlist wraps a in a one-element container. An atom becomes a
// one-element vector of its own kind (so it composes with vector-only
// primitives like find/where), not a one-element KList — a bare KList of
// one symbol, say, can't stand in for a VSymbol column.
func primEnlist(a value.Value) value.Value {
	if !a.Kind.IsAtom() {
		return value.List(value.Clone(a))
	}
	switch a.Kind {
	case value.KBool:
		return value.BoolVector([]bool{a.AsBool()})
	case value.KInt:
		return value.IntVector([]int64{a.AsInt()})
	case value.KFloat:
		return value.FloatVector([]float64{a.AsFloat()})
	case value.KSymbol:
		return value.SymbolVector([]*symbol.Symbol{a.AsSymbol()})
	case value.KChar:
		return value.CharVector(string(a.AsChar()))
	case value.KTimestamp:
		return value.TimestampVector([]int64{a.AsTimestamp()})
	case value.KGUID:
		return value.GUIDVector([]value.UUID{a.AsGUID()})
	default:
		return value.List(value.Clone(a))
	}
}

func primCount(a value.Value) value.Value {
	if a.Kind.IsAtom() {
		return value.Int(1)
	}
	return value.Int(int64(a.Len()))
}

func primFirst(a value.Value) value.Value {
	if a.Kind.IsAtom() {
		return a
	}
	if a.Len() == 0 {
		return value.NewError(value.ErrIndex, "first: empty operand", value.Span{})
	}
	if a.Kind == value.KList {
		return value.Clone(a.Items()[0])
	}
	return atomAt(a, 0)
}

func primLast(a value.Value) value.Value {
	if a.Kind.IsAtom() {
		return a
	}
	if a.Len() == 0 {
		return value.NewError(value.ErrIndex, "last: empty operand", value.Span{})
	}
	if a.Kind == value.KList {
		return value.Clone(a.Items()[a.Len()-1])
	}
	return atomAt(a, a.Len()-1)
}

func primReverse(a value.Value) value.Value {
	if a.Kind.IsAtom() {
		return a
	}
	n := a.Len()
	if a.Kind == value.KList {
		items := make([]value.Value, n)
		for i, c := range a.Items() {
			items[n-1-i] = value.Clone(c)
		}
		return value.List(items...)
	}
	return gatherIndices(a, reversedIndices(n))
}

func reversedIndices(n int) []int64 {
	idx := make([]int64, n)
	for i := range idx {
		idx[i] = int64(n - 1 - i)
	}
	return idx
}

func primFlip(a value.Value) value.Value {
	switch a.Kind {
	case value.KTable:
		return value.Dict(a.TableColumnNames(), a.TableColumns())
	case value.KDict:
		if a.DictValues().Kind != value.KList {
			return value.NewError(value.ErrType, "flip: dict values must be a list of columns", value.Span{})
		}
		return value.Table(a.DictKeys(), a.DictValues())
	default:
		return value.NewError(value.ErrType, "flip: operand must be a table or dict", value.Span{})
	}
}

func primString(a value.Value) value.Value {
	return value.CharVector(format.Value(a))
}

func primType(a value.Value) value.Value {
	return value.CharVector(a.Kind.String())
}

func primWhere(a value.Value) value.Value {
	if a.Kind != value.VBool {
		return value.NewError(value.ErrType, "where: operand must be a bool vector", value.Span{})
	}
	xs := a.Bools()
	out := make([]int64, 0, len(xs))
	for i, b := range xs {
		if b {
			out = append(out, int64(i))
		}
	}
	return value.IntVector(out)
}

func primValue(a value.Value) value.Value {
	switch a.Kind {
	case value.KDict:
		return value.Clone(a.DictValues())
	case value.KTable:
		return value.Clone(a.TableColumns())
	case value.KEnum:
		return a.Decode()
	default:
		return a
	}
}

func primKey(a value.Value) value.Value {
	switch a.Kind {
	case value.KDict:
		return value.Clone(a.DictKeys())
	case value.KTable:
		return value.Clone(a.TableColumnNames())
	case value.KEnum:
		return value.Clone(a.EnumDomain())
	default:
		return index.Distinct(a)
	}
}

func primSum(a value.Value) value.Value {
	switch a.Kind {
	case value.VInt:
		var s int64
		for _, x := range a.Ints() {
			if x == value.NullInt {
				continue
			}
			s += x
		}
		return value.Int(s)
	case value.VFloat:
		var s float64
		for _, x := range a.Floats() {
			s += x
		}
		return value.Float(s)
	default:
		return value.NewError(value.ErrType, "sum: operand must be a numeric vector", value.Span{})
	}
}

func primAvg(a value.Value) value.Value {
	if a.Len() == 0 {
		return value.Float(value.NullFloat)
	}
	s := primSum(a)
	if s.IsError() {
		return s
	}
	return divide(s, value.Int(int64(a.Len())))
}

func minAtom(a, b value.Value) value.Value {
	if comparison("<", func(x, y int64) bool { return x < y }, func(x, y float64) bool { return x < y })(a, b).AsBool() {
		return a
	}
	return b
}

func maxAtom(a, b value.Value) value.Value {
	if comparison(">", func(x, y int64) bool { return x > y }, func(x, y float64) bool { return x > y })(a, b).AsBool() {
		return a
	}
	return b
}

func reduceOrZip(name string, pick func(a, b value.Value) value.Value) VariadicFn {
	return func(args []value.Value) value.Value {
		switch len(args) {
		case 1:
			v := args[0]
			if v.Kind.IsAtom() {
				return v
			}
			if v.Len() == 0 {
				return value.NewError(value.ErrIndex, name+": empty operand", value.Span{})
			}
			acc := atomAt(v, 0)
			for i := 1; i < v.Len(); i++ {
				acc = pick(acc, atomAt(v, i))
			}
			return acc
		case 2:
			a, b := args[0], args[1]
			if a.Kind.IsAtom() && b.Kind.IsAtom() {
				return pick(a, b)
			}
			if a.Kind.IsVector() && b.Kind.IsVector() {
				return zipVectors(a, b, pick)
			}
			if a.Kind.IsVector() {
				return mapVector(a, func(x value.Value) value.Value { return pick(x, b) })
			}
			return mapVector(b, func(x value.Value) value.Value { return pick(a, x) })
		default:
			return value.NewError(value.ErrLength, name+": expects 1 or 2 arguments", value.Span{})
		}
	}
}

func primSort(a value.Value, desc bool) value.Value {
	if a.Kind.IsAtom() {
		return a
	}
	n := a.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		less := comparison("<", func(x, y int64) bool { return x < y }, func(x, y float64) bool { return x < y })
		if desc {
			return less(atomAt(a, idx[j]), atomAt(a, idx[i])).AsBool()
		}
		return less(atomAt(a, idx[i]), atomAt(a, idx[j])).AsBool()
	})
	idx64 := make([]int64, n)
	for i, v := range idx {
		idx64[i] = int64(v)
	}
	out := gatherIndices(a, idx64)
	if desc {
		out.Attrs |= value.AttrDescending
	} else {
		out.Attrs |= value.AttrAscending
	}
	return out
}

func primGroup(a value.Value) value.Value {
	_, bins := index.Group(a, nil)
	return bins
}

func primAt(a, idx value.Value) value.Value {
	switch idx.Kind {
	case value.KInt:
		i := int(idx.AsInt())
		if a.Kind == value.KList {
			if i < 0 || i >= a.Len() {
				return value.NewError(value.ErrIndex, "at: index out of range", value.Span{})
			}
			return value.Clone(a.Items()[i])
		}
		if i < 0 || i >= a.Len() {
			return value.NewError(value.ErrIndex, "at: index out of range", value.Span{})
		}
		return atomAt(a, i)
	case value.VInt:
		return gatherIndices(a, idx.Ints())
	default:
		return value.NewError(value.ErrType, "at: index must be an int atom or int vector", value.Span{})
	}
}

// gatherIndices builds a new vector/list/table by selecting positions from
// xs named by idx (value.NullInt yields a null/zero element at that
// position).
func gatherIndices(xs value.Value, idx []int64) value.Value {
	if xs.Kind == value.KList {
		items := make([]value.Value, len(idx))
		for i, at := range idx {
			if at == value.NullInt || int(at) >= xs.Len() {
				continue
			}
			items[i] = value.Clone(xs.Items()[at])
		}
		return value.List(items...)
	}
	if xs.Kind == value.KTable {
		cols := xs.TableColumns().Items()
		newCols := make([]value.Value, len(cols))
		for i, c := range cols {
			newCols[i] = gatherIndices(c, idx)
		}
		return value.Table(value.Clone(xs.TableColumnNames()), value.List(newCols...))
	}
	return buildVector(len(idx), func(i int) value.Value {
		at := idx[i]
		if at == value.NullInt || int(at) >= xs.Len() || at < 0 {
			return nullLike(xs)
		}
		return atomAt(xs, int(at))
	})
}

func nullLike(xs value.Value) value.Value {
	switch xs.Kind {
	case value.VInt, value.VTimestamp:
		return value.Int(value.NullInt)
	case value.VFloat:
		return value.Float(value.NullFloat)
	case value.VBool:
		return value.Bool(false)
	case value.VSymbol:
		return value.SymAtom(nil)
	case value.VChar:
		return value.CharAtom(0)
	case value.VGUID:
		return value.GUID(value.UUID{})
	default:
		return atomAt(xs, 0)
	}
}

func primTake(n, xs value.Value) value.Value {
	if n.Kind != value.KInt {
		return value.NewError(value.ErrType, "take: count must be an int atom", value.Span{})
	}
	count := n.AsInt()
	length := int64(xs.Len())
	if length == 0 {
		return value.NewError(value.ErrLength, "take: operand must be non-empty", value.Span{})
	}
	idx := make([]int64, absInt64(count))
	if count >= 0 {
		for i := range idx {
			idx[i] = int64(i) % length
		}
	} else {
		absN := int64(len(idx))
		for i := range idx {
			idx[i] = pmod(length-absN+int64(i), length)
		}
	}
	return gatherIndices(xs, idx)
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// pmod is Euclidean modulo: always returns a value in [0, m).
func pmod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func primExcept(a, b value.Value) value.Value {
	seen := make(map[int64]bool)
	for i := 0; i < b.Len(); i++ {
		seen[keyOf(atomAt(b, i))] = true
	}
	var idx []int64
	for i := 0; i < a.Len(); i++ {
		if !seen[keyOf(atomAt(a, i))] {
			idx = append(idx, int64(i))
		}
	}
	return gatherIndices(a, idx)
}

// primUnion concatenates then dedups, which preserves left-operand order
// (spec §9's open question: except/union must keep the left operand's
// order) since Distinct keeps first-occurrence order and a's elements all
// occur before b's in the concatenation.
func primUnion(a, b value.Value) value.Value {
	return index.Distinct(primConcat(a, b))
}

// keyOf derives an equality key for except/union's membership set, mirroring
// index/column.go's keyerFor per kind rather than a lossy proxy.
func keyOf(a value.Value) int64 {
	switch a.Kind {
	case value.KInt, value.KTimestamp:
		return a.AsInt()
	case value.KBool:
		if a.AsBool() {
			return 1
		}
		return 0
	case value.KChar:
		return int64(a.AsChar())
	case value.KSymbol:
		return a.AsSymbol().ID()
	case value.KFloat:
		return int64(math.Float64bits(a.AsFloat()))
	case value.KGUID:
		return guidFoldKey(a.AsGUID())
	default:
		return int64(len(format.Value(a)))
	}
}

// guidFoldKey xors a GUID's two halves into a single i64, the same fold
// internal/xhash.HashGUID uses for GUID columns (spec §4.3's "GUID (xor of
// halves)"). Collisions are possible in principle, same as any folded hash
// key, but this is the pack's own representative for "this GUID" rather
// than a proxy unrelated to the value's identity.
func guidFoldKey(g uuid.UUID) int64 {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(g[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(g[i])
	}
	return int64(hi ^ lo)
}

func primConcat(a, b value.Value) value.Value {
	if a.Kind == value.KList || b.Kind == value.KList {
		items := append(listItems(a), listItems(b)...)
		return value.List(items...)
	}
	if a.Kind != b.Kind {
		return value.NewError(value.ErrType, "concat: operands must share a vector kind", value.Span{})
	}
	n := a.Len()
	return buildVector(n+b.Len(), func(i int) value.Value {
		if i < n {
			return atomAt(a, i)
		}
		return atomAt(b, i-n)
	})
}

func listItems(v value.Value) []value.Value {
	if v.Kind == value.KList {
		out := make([]value.Value, len(v.Items()))
		for i, c := range v.Items() {
			out[i] = value.Clone(c)
		}
		return out
	}
	out := make([]value.Value, v.Len())
	for i := range out {
		out[i] = atomAt(v, i)
	}
	return out
}

func primLike(a, pattern value.Value) value.Value {
	if a.Kind != value.VChar || pattern.Kind != value.VChar {
		return value.NewError(value.ErrType, "like: operands must be strings", value.Span{})
	}
	return value.Bool(globMatch(pattern.AsString(), a.AsString()))
}

func globMatch(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	for _, p := range parts[1 : len(parts)-1] {
		i := strings.Index(s, p)
		if i < 0 {
			return false
		}
		s = s[i+len(p):]
	}
	return strings.HasSuffix(s, parts[len(parts)-1])
}

func primAmend(args []value.Value) value.Value {
	if len(args) != 3 {
		return value.NewError(value.ErrLength, "amend: expects (x, index, value)", value.Span{})
	}
	x, idxV, newV := value.Cow(args[0]), args[1], args[2]
	var idx []int64
	switch idxV.Kind {
	case value.KInt:
		idx = []int64{idxV.AsInt()}
	case value.VInt:
		idx = idxV.Ints()
	default:
		return value.NewError(value.ErrType, "amend: index must be an int atom or vector", value.Span{})
	}
	for i, at := range idx {
		var v value.Value
		if newV.Kind.IsVector() {
			v = atomAt(newV, i)
		} else {
			v = newV
		}
		if res := setAt(x, int(at), v); res.IsError() {
			return res
		}
	}
	return x
}

func setAt(x value.Value, i int, v value.Value) value.Value {
	if i < 0 || i >= x.Len() {
		return value.NewError(value.ErrIndex, "amend: index out of range", value.Span{})
	}
	switch x.Kind {
	case value.VBool:
		x.Bools()[i] = v.AsBool()
	case value.VInt:
		x.Ints()[i] = v.AsInt()
	case value.VFloat:
		x.Floats()[i] = v.AsFloat()
	case value.VSymbol:
		x.Syms()[i] = v.AsSymbol()
	case value.VChar:
		x.Chars()[i] = v.AsChar()
	case value.VTimestamp:
		x.Times()[i] = v.AsTimestamp()
	case value.VGUID:
		x.GUIDs()[i] = v.AsGUID()
	case value.KList:
		value.Drop(x.Items()[i])
		x.Items()[i] = v
	default:
		return value.NewError(value.ErrType, "amend: unsupported target kind", value.Span{})
	}
	return value.Value{}
}
