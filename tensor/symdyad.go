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

import "gonum.org/v1/gonum/mat"

// SymDyad is a symmetric 3×3 dyadic tensor stored by its six
// upper-triangle components.
type SymDyad struct {
	XX, XY, XZ float64
	YY, YZ     float64
	ZZ         float64
}

var symDyadNames = []string{"xx", "xy", "xz", "yy", "yz", "zz"}

// SymIdentity returns the 3×3 identity tensor.
func SymIdentity() SymDyad {
	return SymDyad{XX: 1, YY: 1, ZZ: 1}
}

func (s SymDyad) Add(o SymDyad) SymDyad {
	return SymDyad{
		s.XX + o.XX, s.XY + o.XY, s.XZ + o.XZ,
		s.YY + o.YY, s.YZ + o.YZ,
		s.ZZ + o.ZZ,
	}
}

func (s SymDyad) Sub(o SymDyad) SymDyad {
	return SymDyad{
		s.XX - o.XX, s.XY - o.XY, s.XZ - o.XZ,
		s.YY - o.YY, s.YZ - o.YZ,
		s.ZZ - o.ZZ,
	}
}

func (s SymDyad) Scale(k float64) SymDyad {
	return s.Map(func(x float64) float64 { return x * k })
}

func (s SymDyad) Map(f func(float64) float64) SymDyad {
	return SymDyad{
		f(s.XX), f(s.XY), f(s.XZ),
		f(s.YY), f(s.YZ),
		f(s.ZZ),
	}
}

func (s SymDyad) Equal(o SymDyad) bool { return s == o }

// Less orders symmetric dyads lexicographically by unique component.
func (s SymDyad) Less(o SymDyad) bool {
	return lessLex(s.Components(), o.Components())
}

func (s SymDyad) Components() []float64 {
	return []float64{s.XX, s.XY, s.XZ, s.YY, s.YZ, s.ZZ}
}

// Trace returns the sum of the diagonal components.
func (s SymDyad) Trace() float64 { return s.XX + s.YY + s.ZZ }

// Dyad expands the symmetric tensor to a full dyad.
func (s SymDyad) Dyad() Dyad {
	return Dyad{
		s.XX, s.XY, s.XZ,
		s.XY, s.YY, s.YZ,
		s.XZ, s.YZ, s.ZZ,
	}
}

// Sym returns the tensor as a gonum symmetric matrix.
func (s SymDyad) Sym() *mat.SymDense {
	return mat.NewSymDense(3, s.Dyad().Components())
}

// Format renders the unique components as "(xx, xy, xz; yy, yz; zz)".
func (s SymDyad) Format(prec int) string {
	return group([][]float64{
		{s.XX, s.XY, s.XZ},
		{s.YY, s.YZ},
		{s.ZZ},
	}, prec)
}

func (s SymDyad) JSON(prec int) string {
	return keyedJSON(symDyadNames, s.Components(), prec)
}

func (s SymDyad) XML(prec int) string {
	return keyedXML(symDyadNames, s.Components(), prec)
}

func (s SymDyad) YAML(prec int) string {
	return keyedYAML(symDyadNames, s.Components(), prec)
}
