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
	"github.com/ray-lang/ray/index"
	"github.com/ray-lang/ray/internal/symbol"
	"github.com/ray-lang/ray/value"
)

// primLeftJoin implements `lj` (left join), the C4 `join` operation (spec
// §4.4) exposed as a callable primitive the way `group`/`distinct`/`find`
// already are, rather than left reachable only from the `select` compiler
// form. Arguments: (left table, right table, on column-name vector). Every
// left row survives; right columns not named in `on` are gathered by the
// matched right row index (value.NullInt, i.e. no match, produces the
// usual null-like element — see gatherIndices).
func primLeftJoin(args []value.Value) value.Value {
	if len(args) != 3 {
		return value.NewError(value.ErrLength, "lj: expects (left, right, on)", value.Span{})
	}
	left, right, on := args[0], args[1], args[2]
	if left.Kind != value.KTable || right.Kind != value.KTable {
		return value.NewError(value.ErrType, "lj: left and right must be tables", value.Span{})
	}
	if on.Kind != value.VSymbol {
		return value.NewError(value.ErrType, "lj: on must be a symbol vector", value.Span{})
	}

	leftNames := left.TableColumnNames().Syms()
	leftCols := left.TableColumns().Items()
	rightNames := right.TableColumnNames().Syms()
	rightCols := right.TableColumns().Items()
	onNames := on.Syms()

	leftKeyCols := make([]value.Value, len(onNames))
	rightKeyCols := make([]value.Value, len(onNames))
	rightKeyIdx := make(map[*symbol.Symbol]bool, len(onNames))
	for i, name := range onNames {
		li := symIndex(leftNames, name)
		ri := symIndex(rightNames, name)
		if li < 0 || ri < 0 {
			return value.NewError(value.ErrNotFound, "lj: on column "+name.String()+" missing from a side", value.Span{})
		}
		leftKeyCols[i] = leftCols[li]
		rightKeyCols[i] = rightCols[ri]
		rightKeyIdx[name] = true
	}

	matched := index.Join(leftKeyCols, rightKeyCols, len(onNames))

	outNames := append([]*symbol.Symbol(nil), leftNames...)
	outCols := make([]value.Value, 0, len(leftCols)+len(rightCols))
	for _, c := range leftCols {
		outCols = append(outCols, value.Clone(c))
	}
	for i, name := range rightNames {
		if rightKeyIdx[name] {
			continue
		}
		outNames = append(outNames, name)
		outCols = append(outCols, gatherIndices(rightCols[i], matched.Ints()))
	}

	return value.Table(value.SymbolVector(outNames), value.List(outCols...))
}

func symIndex(names []*symbol.Symbol, name *symbol.Symbol) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
