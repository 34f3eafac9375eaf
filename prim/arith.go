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

	"github.com/ray-lang/ray/value"
)

func isNullInt(v value.Value) bool {
	return v.Kind == value.KInt && v.AsInt() == value.NullInt
}

// promote widens two numeric atoms to a common kind (int stays int unless
// either side is float, in which case both become float) and returns their
// float64 views alongside whether the result should stay integral.
func promote(a, b value.Value) (af, bf float64, bothInt bool) {
	if a.Kind == value.KInt && b.Kind == value.KInt {
		return float64(a.AsInt()), float64(b.AsInt()), true
	}
	af = numAsFloat(a)
	bf = numAsFloat(b)
	return af, bf, false
}

func numAsFloat(v value.Value) float64 {
	switch v.Kind {
	case value.KInt:
		return float64(v.AsInt())
	case value.KFloat:
		return v.AsFloat()
	default:
		return math.NaN()
	}
}

func numericBinary(name string, intOp func(x, y int64) int64, floatOp func(x, y float64) float64) BinaryFn {
	return func(a, b value.Value) value.Value {
		if !a.Kind.IsAtom() || !b.Kind.IsAtom() || (a.Kind != value.KInt && a.Kind != value.KFloat) || (b.Kind != value.KInt && b.Kind != value.KFloat) {
			return value.NewError(value.ErrType, name+": operands must be numeric atoms", value.Span{})
		}
		if isNullInt(a) || isNullInt(b) {
			if a.Kind == value.KInt && b.Kind == value.KInt {
				return value.Int(value.NullInt)
			}
		}
		_, _, bothInt := promote(a, b)
		if bothInt && intOp != nil {
			return value.Int(intOp(a.AsInt(), b.AsInt()))
		}
		af, bf, _ := promote(a, b)
		return value.Float(floatOp(af, bf))
	}
}

// Division always produces f64 regardless of operand kinds, per spec §4.5.
func divide(a, b value.Value) value.Value {
	if !a.Kind.IsAtom() || !b.Kind.IsAtom() || (a.Kind != value.KInt && a.Kind != value.KFloat) || (b.Kind != value.KInt && b.Kind != value.KFloat) {
		return value.NewError(value.ErrType, "%: operands must be numeric atoms", value.Span{})
	}
	if isNullInt(a) || isNullInt(b) {
		return value.Float(value.NullFloat)
	}
	af, bf, _ := promote(a, b)
	return value.Float(af / bf)
}

func mod(a, b value.Value) value.Value {
	if a.Kind != value.KInt || b.Kind != value.KInt {
		return value.NewError(value.ErrType, "mod: operands must be int atoms", value.Span{})
	}
	if isNullInt(a) || isNullInt(b) || b.AsInt() == 0 {
		return value.Int(value.NullInt)
	}
	x, y := a.AsInt(), b.AsInt()
	m := x % y
	if (m < 0) != (y < 0) && m != 0 {
		m += y
	}
	return value.Int(m)
}

func comparison(name string, intCmp func(x, y int64) bool, floatCmp func(x, y float64) bool) BinaryFn {
	return func(a, b value.Value) value.Value {
		if a.Kind == value.KInt && b.Kind == value.KInt {
			if isNullInt(a) || isNullInt(b) {
				return value.Bool(false)
			}
			return value.Bool(intCmp(a.AsInt(), b.AsInt()))
		}
		return value.Bool(floatCmp(numAsFloat(a), numAsFloat(b)))
	}
}

func registerArith(reg Registry) {
	reg.register(&Descriptor{Name: "+", Arity: Binary, Attrs: atomicBits,
		Binary: numericBinary("+", func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y })})
	reg.register(&Descriptor{Name: "-", Arity: Binary, Attrs: atomicBits,
		Binary: numericBinary("-", func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })})
	reg.register(&Descriptor{Name: "*", Arity: Binary, Attrs: atomicBits,
		Binary: numericBinary("*", func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y })})
	reg.register(&Descriptor{Name: "%", Arity: Binary, Attrs: atomicBits, Binary: divide})
	reg.register(&Descriptor{Name: "mod", Arity: Binary, Attrs: atomicBits, Binary: mod})

	reg.register(&Descriptor{Name: "=", Arity: Binary, Attrs: atomicBits,
		Binary: func(a, b value.Value) value.Value { return value.Bool(value.Equals(a, b)) }})
	reg.register(&Descriptor{Name: "<>", Arity: Binary, Attrs: atomicBits,
		Binary: func(a, b value.Value) value.Value { return value.Bool(!value.Equals(a, b)) }})
	reg.register(&Descriptor{Name: "<", Arity: Binary, Attrs: atomicBits,
		Binary: comparison("<", func(x, y int64) bool { return x < y }, func(x, y float64) bool { return x < y })})
	reg.register(&Descriptor{Name: "<=", Arity: Binary, Attrs: atomicBits,
		Binary: comparison("<=", func(x, y int64) bool { return x <= y }, func(x, y float64) bool { return x <= y })})
	reg.register(&Descriptor{Name: ">", Arity: Binary, Attrs: atomicBits,
		Binary: comparison(">", func(x, y int64) bool { return x > y }, func(x, y float64) bool { return x > y })})
	reg.register(&Descriptor{Name: ">=", Arity: Binary, Attrs: atomicBits,
		Binary: comparison(">=", func(x, y int64) bool { return x >= y }, func(x, y float64) bool { return x >= y })})

	reg.register(&Descriptor{Name: "and", Arity: Binary, Attrs: atomicBits,
		Binary: func(a, b value.Value) value.Value {
			if a.Kind != value.KBool || b.Kind != value.KBool {
				return value.NewError(value.ErrType, "and: operands must be bool atoms", value.Span{})
			}
			return value.Bool(a.AsBool() && b.AsBool())
		}})
	reg.register(&Descriptor{Name: "or", Arity: Binary, Attrs: atomicBits,
		Binary: func(a, b value.Value) value.Value {
			if a.Kind != value.KBool || b.Kind != value.KBool {
				return value.NewError(value.ErrType, "or: operands must be bool atoms", value.Span{})
			}
			return value.Bool(a.AsBool() || b.AsBool())
		}})

	reg.register(&Descriptor{Name: "not", Arity: Unary, Attrs: atomicBits,
		Unary: func(a value.Value) value.Value {
			if a.Kind != value.KBool {
				return value.NewError(value.ErrType, "not: operand must be a bool atom", value.Span{})
			}
			return value.Bool(!a.AsBool())
		}})
	reg.register(&Descriptor{Name: "neg", Arity: Unary, Attrs: atomicBits,
		Unary: func(a value.Value) value.Value {
			switch a.Kind {
			case value.KInt:
				if isNullInt(a) {
					return a
				}
				return value.Int(-a.AsInt())
			case value.KFloat:
				return value.Float(-a.AsFloat())
			default:
				return value.NewError(value.ErrType, "neg: operand must be a numeric atom", value.Span{})
			}
		}})
	reg.register(&Descriptor{Name: "floor", Arity: Unary, Attrs: atomicBits,
		Unary: func(a value.Value) value.Value {
			switch a.Kind {
			case value.KInt:
				return a
			case value.KFloat:
				return value.Int(int64(math.Floor(a.AsFloat())))
			default:
				return value.NewError(value.ErrType, "floor: operand must be a numeric atom", value.Span{})
			}
		}})
	reg.register(&Descriptor{Name: "ceiling", Arity: Unary, Attrs: atomicBits,
		Unary: func(a value.Value) value.Value {
			switch a.Kind {
			case value.KInt:
				return a
			case value.KFloat:
				return value.Int(int64(math.Ceil(a.AsFloat())))
			default:
				return value.NewError(value.ErrType, "ceiling: operand must be a numeric atom", value.Span{})
			}
		}})
}
