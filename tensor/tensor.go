/*
Copyright © 2025 the Mech authors.
This file is part of Mech.

Mech is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Mech is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Mech.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tensor provides the small fixed-size numeric aggregates that
// physical quantities wrap: a scalar, a three-component Cartesian
// vector, a general 3×3 dyadic tensor, and a symmetric 3×3 dyadic
// tensor stored by its upper triangle.
//
// All types have value semantics. Equality and ordering are
// lexicographic over components. The four text renderings (Format,
// JSON, XML, YAML) emit components at a caller-chosen fixed decimal
// precision; scalar values render bare while vectors and tensors
// render grouped or keyed component lists.
package tensor

import (
	"strconv"
	"strings"
)

// Value is the constraint shared by the container types in this
// package. It is what the quantity wrappers are generic over.
type Value[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(k float64) V
	Map(f func(float64) float64) V
	Equal(V) bool
	Less(V) bool
	Components() []float64
	Format(prec int) string
	JSON(prec int) string
	XML(prec int) string
	YAML(prec int) string
}

func formatFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// group renders components as "(a, b, c; d, e, f)" with rows separated
// by "; " and components within a row by ", ".
func group(rows [][]float64, prec int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, row := range rows {
		if i > 0 {
			b.WriteString("; ")
		}
		for j, x := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(x, prec))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// keyedJSON renders named components as a JSON object.
func keyedJSON(names []string, xs []float64, prec int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(name)
		b.WriteString(`":`)
		b.WriteString(formatFloat(xs[i], prec))
	}
	b.WriteByte('}')
	return b.String()
}

// keyedXML renders named components as a sequence of per-component
// tags.
func keyedXML(names []string, xs []float64, prec int) string {
	var b strings.Builder
	for i, name := range names {
		b.WriteByte('<')
		b.WriteString(name)
		b.WriteByte('>')
		b.WriteString(formatFloat(xs[i], prec))
		b.WriteString("</")
		b.WriteString(name)
		b.WriteByte('>')
	}
	return b.String()
}

// keyedYAML renders named components as a YAML flow mapping.
func keyedYAML(names []string, xs []float64, prec int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(formatFloat(xs[i], prec))
	}
	b.WriteByte('}')
	return b.String()
}

func lessLex(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
