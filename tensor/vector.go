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

package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a three-component Cartesian vector.
type Vector struct {
	X, Y, Z float64
}

var vectorNames = []string{"x", "y", "z"}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

func (v Vector) Map(f func(float64) float64) Vector {
	return Vector{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector) Equal(o Vector) bool { return v == o }

// Less orders vectors lexicographically by component.
func (v Vector) Less(o Vector) bool {
	return lessLex(v.Components(), o.Components())
}

func (v Vector) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

// Dot returns the scalar product v·o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector product v×o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean magnitude of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Vec returns the vector as a gonum column vector.
func (v Vector) Vec() *mat.VecDense {
	return mat.NewVecDense(3, v.Components())
}

// Format renders the vector as "(x, y, z)".
func (v Vector) Format(prec int) string {
	return group([][]float64{{v.X, v.Y, v.Z}}, prec)
}

func (v Vector) JSON(prec int) string {
	return keyedJSON(vectorNames, v.Components(), prec)
}

func (v Vector) XML(prec int) string {
	return keyedXML(vectorNames, v.Components(), prec)
}

func (v Vector) YAML(prec int) string {
	return keyedYAML(vectorNames, v.Components(), prec)
}
