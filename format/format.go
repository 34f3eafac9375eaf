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

package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ray-lang/ray/value"
)

// Value renders v per spec §4.10's literal contract.
func Value(v value.Value) string {
	switch {
	case v.Kind.IsAtom():
		return atomLiteral(v)
	case v.Kind.IsVector():
		return vectorLiteral(v)
	case v.Kind == value.KError:
		return errorLiteral(v)
	default:
		return compositeLiteral(v)
	}
}

func atomLiteral(v value.Value) string {
	switch v.Kind {
	case value.KBool:
		if v.AsBool() {
			return "1b"
		}
		return "0b"
	case value.KInt:
		if v.AsInt() == value.NullInt {
			return "0Nj"
		}
		return strconv.FormatInt(v.AsInt(), 10) + "j"
	case value.KFloat:
		f := v.AsFloat()
		if math.IsNaN(f) {
			return "0n"
		}
		return strconv.FormatFloat(f, 'g', -1, 64) + "f"
	case value.KSymbol:
		if v.AsSymbol() == nil {
			return "`"
		}
		return "`" + v.AsSymbol().String()
	case value.KChar:
		return "'" + string(v.AsChar()) + "'"
	case value.KTimestamp:
		if v.AsTimestamp() == value.NullInt {
			return "0Np"
		}
		return time.Unix(0, v.AsTimestamp()).UTC().Format(time.RFC3339Nano)
	case value.KGUID:
		return v.AsGUID().String()
	default:
		return "?"
	}
}

func vectorLiteral(v value.Value) string {
	if v.Kind == value.VChar {
		return "\"" + v.AsString() + "\""
	}
	n := v.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = atomLiteral(elementAtom(v, i))
	}
	return strings.Join(parts, " ")
}

// elementAtom re-wraps a vector element as an atom so atomLiteral can
// render it; avoids prim's buildVector machinery, which this package must
// not depend on (format sits below prim/vm in the dependency order).
func elementAtom(v value.Value, i int) value.Value {
	switch v.Kind {
	case value.VBool:
		return value.Bool(v.Bools()[i])
	case value.VInt:
		return value.Int(v.Ints()[i])
	case value.VFloat:
		return value.Float(v.Floats()[i])
	case value.VSymbol:
		return value.SymAtom(v.Syms()[i])
	case value.VChar:
		return value.CharAtom(v.Chars()[i])
	case value.VTimestamp:
		return value.Timestamp(v.Times()[i])
	case value.VGUID:
		return value.GUID(v.GUIDs()[i])
	default:
		return value.Value{}
	}
}

func compositeLiteral(v value.Value) string {
	switch v.Kind {
	case value.KList:
		parts := make([]string, len(v.Items()))
		for i, c := range v.Items() {
			parts[i] = Value(c)
		}
		return "(" + strings.Join(parts, ";") + ")"
	case value.KDict:
		return Value(v.DictKeys()) + "!" + Value(v.DictValues())
	case value.KTable:
		return tableLiteral(v)
	case value.KEnum:
		return Value(v.Decode())
	case value.KAnymap:
		return "{anymap:" + strconv.Itoa(v.AsAnyMap().Count()) + "}"
	case value.KLambda:
		l := v.AsLambda()
		if l.Name != "" {
			return "{" + l.Name + "}"
		}
		return "{lambda}"
	default:
		return "?"
	}
}

// tableLiteral renders a ruled grid: column headers over rows.
func tableLiteral(v value.Value) string {
	names := v.TableColumnNames().Syms()
	cols := v.TableColumns().Items()
	rows := v.RowCount()

	headers := make([]string, len(names))
	for i, n := range names {
		headers[i] = n.String()
	}
	grid := make([][]string, rows)
	for r := 0; r < rows; r++ {
		row := make([]string, len(cols))
		for c, col := range cols {
			row[c] = atomLiteral(elementAtom(col, r))
		}
		grid[r] = row
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range grid {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths)
	b.WriteString(strings.Repeat("-", ruleWidth(widths)))
	b.WriteByte('\n')
	for _, row := range grid {
		writeRow(&b, row, widths)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-len(c)))
	}
	b.WriteByte('\n')
}

func ruleWidth(widths []int) int {
	w := 0
	for _, x := range widths {
		w += x + 1
	}
	if w > 0 {
		w--
	}
	return w
}

func errorLiteral(v value.Value) string {
	return "** [E" + v.ErrorCode().String() + "] error: " + v.ErrorMessage()
}
