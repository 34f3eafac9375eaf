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

import (
	"math"

	"github.com/google/uuid"
	"github.com/ray-lang/ray/internal/symbol"
)

// Value is the runtime's single tagged-union representation. Atom payloads
// are stored inline; vectors and composites share a *payload behind a
// refcount. The zero Value has Kind 0, which is none of the defined kinds,
// and requires no cleanup.
type Value struct {
	Kind  Kind
	Attrs Attrs

	// Inline atom payload. Only the field matching Kind is meaningful.
	i    int64 // bool (0/1), i64, timestamp (unix nanoseconds)
	f    float64
	sym  *symbol.Symbol
	ch   rune
	guid uuid.UUID

	p *payload // non-nil for vectors and composites
}

// Symbol and UUID are re-exported so callers elsewhere in the runtime
// don't need to import internal/symbol or google/uuid directly just to
// name these types.
type Symbol = symbol.Symbol
type UUID = uuid.UUID

// payload is the shared, refcounted backing store for non-atom Values.
type payload struct {
	rc     int32
	length int

	// Vector columns: exactly one of these is non-nil, matching the
	// owning Value's Kind.
	bools  []bool
	ints   []int64
	floats []float64
	syms   []*symbol.Symbol
	chars  []rune
	times  []int64
	guids  []uuid.UUID

	// Composite payloads.
	items  []Value // KList elements, or KTable's column list
	keys   *Value  // KDict/KTable key vector
	lambda *Lambda // KLambda
	errv   *errData
	amap   *AnyMap  // KAnymap
	domain *Value   // KEnum domain (symbol vector)
	index  *Value   // KEnum index (i64 vector)
}

type errData struct {
	code ErrCode
	msg  string
	span Span
}

// Len returns a vector's or composite's element count (row count for
// tables, key/value count for dicts). Panics on an atom.
func (v Value) Len() int {
	if v.p == nil {
		panic("value: Len called on an atom")
	}
	return v.p.length
}

// RefCount returns the current reference count of a non-atom Value, or 1
// for an atom (atoms are never shared in the refcounted sense).
func (v Value) RefCount() int32 {
	if v.p == nil {
		return 1
	}
	return v.p.rc
}

// ---- atom constructors ----

func Bool(b bool) Value {
	var i int64
	if b {
		i = 1
	}
	return Value{Kind: KBool, i: i}
}

func Int(n int64) Value { return Value{Kind: KInt, i: n} }

func Float(f float64) Value { return Value{Kind: KFloat, f: f} }

func SymAtom(s *symbol.Symbol) Value { return Value{Kind: KSymbol, sym: s} }

func CharAtom(r rune) Value { return Value{Kind: KChar, ch: r} }

func Timestamp(unixNanos int64) Value { return Value{Kind: KTimestamp, i: unixNanos} }

func GUID(g uuid.UUID) Value { return Value{Kind: KGUID, guid: g} }

// Accessors for atom payloads. Each panics if called on the wrong Kind, by
// design: callers are expected to dispatch on Kind first, the way every
// primitive in package prim does.

func (v Value) AsBool() bool {
	v.mustKind(KBool)
	return v.i != 0
}
func (v Value) AsInt() int64 {
	v.mustKind(KInt)
	return v.i
}
func (v Value) AsFloat() float64 {
	v.mustKind(KFloat)
	return v.f
}
func (v Value) AsSymbol() *symbol.Symbol {
	v.mustKind(KSymbol)
	return v.sym
}
func (v Value) AsChar() rune {
	v.mustKind(KChar)
	return v.ch
}
func (v Value) AsTimestamp() int64 {
	v.mustKind(KTimestamp)
	return v.i
}
func (v Value) AsGUID() uuid.UUID {
	v.mustKind(KGUID)
	return v.guid
}

func (v Value) mustKind(k Kind) {
	if v.Kind != k {
		panic("value: wrong atom kind: have " + v.Kind.String() + " want " + k.String())
	}
}

// ---- vector constructors ----

// Vector allocates a typed vector of the given kind and length with
// null-sentinel-filled (for Bool/Char/GUID, zero-filled) payload, rc=1.
func Vector(kind Kind, length int) Value {
	if !kind.IsVector() {
		panic("value: Vector called with non-vector kind " + kind.String())
	}
	p := &payload{rc: 1, length: length}
	switch kind {
	case VBool:
		p.bools = make([]bool, length)
	case VInt:
		p.ints = make([]int64, length)
		for i := range p.ints {
			p.ints[i] = NullInt
		}
	case VFloat:
		p.floats = make([]float64, length)
		for i := range p.floats {
			p.floats[i] = NullFloat
		}
	case VSymbol:
		p.syms = make([]*symbol.Symbol, length)
	case VChar:
		p.chars = make([]rune, length)
	case VTimestamp:
		p.times = make([]int64, length)
		for i := range p.times {
			p.times[i] = NullInt
		}
	case VGUID:
		p.guids = make([]uuid.UUID, length)
	}
	return Value{Kind: kind, p: p}
}

// IntVector wraps an existing []int64 slice as an owned VInt vector.
func IntVector(xs []int64) Value {
	return Value{Kind: VInt, p: &payload{rc: 1, length: len(xs), ints: xs}}
}

// FloatVector wraps an existing []float64 slice as an owned VFloat vector.
func FloatVector(xs []float64) Value {
	return Value{Kind: VFloat, p: &payload{rc: 1, length: len(xs), floats: xs}}
}

// BoolVector wraps an existing []bool slice as an owned VBool vector.
func BoolVector(xs []bool) Value {
	return Value{Kind: VBool, p: &payload{rc: 1, length: len(xs), bools: xs}}
}

// SymbolVector wraps an existing []*symbol.Symbol slice as an owned
// VSymbol vector.
func SymbolVector(xs []*symbol.Symbol) Value {
	return Value{Kind: VSymbol, p: &payload{rc: 1, length: len(xs), syms: xs}}
}

// CharVector wraps a string as an owned VChar vector (ray's "string").
func CharVector(s string) Value {
	rs := []rune(s)
	return Value{Kind: VChar, p: &payload{rc: 1, length: len(rs), chars: rs}}
}

// GUIDVector wraps an existing []uuid.UUID slice as an owned VGUID vector.
func GUIDVector(xs []uuid.UUID) Value {
	return Value{Kind: VGUID, p: &payload{rc: 1, length: len(xs), guids: xs}}
}

// TimestampVector wraps an existing []int64 slice (unix nanoseconds) as an
// owned VTimestamp vector.
func TimestampVector(xs []int64) Value {
	return Value{Kind: VTimestamp, p: &payload{rc: 1, length: len(xs), times: xs}}
}

// CharVectorFromRunes wraps an existing []rune slice as an owned VChar
// vector, without the UTF-8 round trip CharVector(string) does.
func CharVectorFromRunes(xs []rune) Value {
	return Value{Kind: VChar, p: &payload{rc: 1, length: len(xs), chars: xs}}
}

// Raw column accessors. Callers must Cow(v) first if they intend to
// mutate in place.

func (v Value) Bools() []bool          { return v.p.bools }
func (v Value) Ints() []int64          { return v.p.ints }
func (v Value) Floats() []float64      { return v.p.floats }
func (v Value) Syms() []*symbol.Symbol { return v.p.syms }
func (v Value) Chars() []rune          { return v.p.chars }
func (v Value) Times() []int64         { return v.p.times }
func (v Value) GUIDs() []uuid.UUID     { return v.p.guids }

// AsString renders a VChar vector as a Go string (the inverse of
// CharVector); it does not format arbitrary values — see package format
// for that. Value deliberately does not implement fmt.Stringer: a String()
// method would be silently invoked by %v/%s on every Kind, including ones
// for which rendering requires the formatter's full dispatch.
func (v Value) AsString() string {
	v.mustVecKind(VChar)
	return string(v.p.chars)
}

func (v Value) mustVecKind(k Kind) {
	if v.Kind != k {
		panic("value: wrong vector kind: have " + v.Kind.String() + " want " + k.String())
	}
}

// Null sentinels, per spec §3.1.
const (
	NullInt = int64(-1) << 63
)

var NullFloat = math.NaN()
