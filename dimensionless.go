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

package mech

import (
	"github.com/spatialmodel/mech/internal/hash"
	"github.com/spatialmodel/mech/tensor"
)

// Dimensionless is a quantity with the all-zero dimension signature.
// It has no unit: text renderings omit the unit suffix, and scalar
// dimensionless values serialize as bare numbers while tensor-valued
// dimensionless values serialize as component objects. That asymmetry
// follows the value-container shape and is relied on by consumers.
type Dimensionless[V tensor.Value[V]] struct {
	value V
}

// NewDimensionless returns a dimensionless quantity holding v.
func NewDimensionless[V tensor.Value[V]](v V) Dimensionless[V] {
	return Dimensionless[V]{value: v}
}

// Value returns the held value.
func (q Dimensionless[V]) Value() V { return q.value }

// Add returns the componentwise sum.
func (q Dimensionless[V]) Add(o Dimensionless[V]) Dimensionless[V] {
	return Dimensionless[V]{q.value.Add(o.value)}
}

// Sub returns the componentwise difference.
func (q Dimensionless[V]) Sub(o Dimensionless[V]) Dimensionless[V] {
	return Dimensionless[V]{q.value.Sub(o.value)}
}

// Scale returns the value multiplied by k.
func (q Dimensionless[V]) Scale(k float64) Dimensionless[V] {
	return Dimensionless[V]{q.value.Scale(k)}
}

// Div returns the value divided by k, with IEEE semantics for zero k.
func (q Dimensionless[V]) Div(k float64) Dimensionless[V] {
	return Dimensionless[V]{q.value.Map(func(x float64) float64 { return x / k })}
}

// Equal reports componentwise equality.
func (q Dimensionless[V]) Equal(o Dimensionless[V]) bool {
	return q.value.Equal(o.value)
}

// Less orders lexicographically by component.
func (q Dimensionless[V]) Less(o Dimensionless[V]) bool {
	return q.value.Less(o.value)
}

// Zero returns the additive identity.
func (Dimensionless[V]) Zero() Dimensionless[V] { return Dimensionless[V]{} }

// IsZero reports whether the value is zero.
func (q Dimensionless[V]) IsZero() bool {
	var zero V
	return q.value.Equal(zero)
}

// Hash returns a key that is equal for equal quantities.
func (q Dimensionless[V]) Hash() uint64 {
	return hash.Key(canonical(q.value.Components()))
}

// String renders the bare value with no unit suffix.
func (q Dimensionless[V]) String() string { return q.value.Format(Precision) }

// JSON renders the bare value: a number for scalars, a component
// object for vectors and tensors.
func (q Dimensionless[V]) JSON() string { return q.value.JSON(Precision) }

// XML renders the bare value with per-component tags for vectors and
// tensors.
func (q Dimensionless[V]) XML() string { return q.value.XML(Precision) }

// YAML renders the bare value.
func (q Dimensionless[V]) YAML() string { return q.value.YAML(Precision) }
