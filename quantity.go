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

// Package mech provides strongly-typed physical quantities built from
// the value containers in package tensor and the unit families in
// package units, together with the cross-quantity relations connecting
// them.
//
// A quantity is constructed from a raw value and an explicit unit
// variant; the value is converted once, at construction, to the unit
// family's standard unit, and is stored only in that form. All
// arithmetic and all cross-quantity relations operate directly on
// standard-unit values; conversion back out happens only when a caller
// asks for a value in a specific unit.
//
// Dimensional compatibility is enforced at compile time: each concrete
// quantity is its own type, so quantities of different families cannot
// be mixed in arithmetic.
package mech

import (
	"github.com/spatialmodel/mech/internal/hash"
	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// Precision is the number of decimal digits used by every text
// rendering of a quantity value.
const Precision = 15

// Quantity pairs a value container with a unit family. The value is
// always held in the family's standard unit. The zero value is the
// zero quantity.
type Quantity[V tensor.Value[V], U units.Unit[U]] struct {
	value V
}

// New returns a quantity holding v, which is expressed in unit u,
// converted to the family's standard unit.
func New[V tensor.Value[V], U units.Unit[U]](v V, u U) Quantity[V, U] {
	return Quantity[V, U]{value: v.Map(u.ToStandard)}
}

// Value returns the held value in the family's standard unit.
func (q Quantity[V, U]) Value() V { return q.value }

// In returns the held value converted to unit u. The conversion is
// pure; the stored value is unchanged.
func (q Quantity[V, U]) In(u U) V { return q.value.Map(u.FromStandard) }

// Add returns the componentwise sum of two same-family quantities.
func (q Quantity[V, U]) Add(o Quantity[V, U]) Quantity[V, U] {
	return Quantity[V, U]{q.value.Add(o.value)}
}

// Sub returns the componentwise difference of two same-family
// quantities.
func (q Quantity[V, U]) Sub(o Quantity[V, U]) Quantity[V, U] {
	return Quantity[V, U]{q.value.Sub(o.value)}
}

// Scale returns the quantity multiplied by the dimensionless factor k.
func (q Quantity[V, U]) Scale(k float64) Quantity[V, U] {
	return Quantity[V, U]{q.value.Scale(k)}
}

// Div returns the quantity divided by the dimensionless factor k.
// A zero k yields IEEE infinities or NaNs; no check is performed.
func (q Quantity[V, U]) Div(k float64) Quantity[V, U] {
	return Quantity[V, U]{q.value.Map(func(x float64) float64 { return x / k })}
}

// Equal reports whether two same-family quantities hold equal
// standard-unit values.
func (q Quantity[V, U]) Equal(o Quantity[V, U]) bool {
	return q.value.Equal(o.value)
}

// Less orders same-family quantities lexicographically by
// standard-unit components.
func (q Quantity[V, U]) Less(o Quantity[V, U]) bool {
	return q.value.Less(o.value)
}

// Zero returns the additive identity quantity of this family.
func (Quantity[V, U]) Zero() Quantity[V, U] { return Quantity[V, U]{} }

// IsZero reports whether the quantity equals its family's zero.
func (q Quantity[V, U]) IsZero() bool {
	var zero V
	return q.value.Equal(zero)
}

// Hash returns a key that is equal for equal quantities.
func (q Quantity[V, U]) Hash() uint64 {
	return hash.Key(canonical(q.value.Components()))
}

// String renders the standard-unit value followed by the standard
// unit's abbreviation, e.g. "1.110000000000000 m/s^2".
func (q Quantity[V, U]) String() string {
	var u U
	return q.StringIn(u.Standard())
}

// StringIn renders the value converted to u, followed by u's
// abbreviation.
func (q Quantity[V, U]) StringIn(u U) string {
	return q.In(u).Format(Precision) + " " + u.Abbreviation()
}

// JSON renders the quantity as {"value":…,"unit":"…"} in the standard
// unit.
func (q Quantity[V, U]) JSON() string {
	var u U
	return q.JSONIn(u.Standard())
}

// JSONIn renders the quantity as {"value":…,"unit":"…"} with the value
// converted to u.
func (q Quantity[V, U]) JSONIn(u U) string {
	return `{"value":` + q.In(u).JSON(Precision) + `,"unit":"` + u.Abbreviation() + `"}`
}

// XML renders the quantity as <value>…</value><unit>…</unit> in the
// standard unit.
func (q Quantity[V, U]) XML() string {
	var u U
	return q.XMLIn(u.Standard())
}

// XMLIn renders the quantity as <value>…</value><unit>…</unit> with
// the value converted to u.
func (q Quantity[V, U]) XMLIn(u U) string {
	return "<value>" + q.In(u).XML(Precision) + "</value><unit>" + u.Abbreviation() + "</unit>"
}

// YAML renders the quantity as {value:…,unit:"…"} in the standard
// unit.
func (q Quantity[V, U]) YAML() string {
	var u U
	return q.YAMLIn(u.Standard())
}

// YAMLIn renders the quantity as {value:…,unit:"…"} with the value
// converted to u.
func (q Quantity[V, U]) YAMLIn(u U) string {
	return "{value:" + q.In(u).YAML(Precision) + `,unit:"` + u.Abbreviation() + `"}`
}

// canonical replaces negative zeros so that equal values hash equally.
func canonical(c []float64) []float64 {
	for i, x := range c {
		if x == 0 {
			c[i] = 0
		}
	}
	return c
}
