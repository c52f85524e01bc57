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

// Dyad is a general 3×3 dyadic tensor with nine independent
// components.
type Dyad struct {
	XX, XY, XZ float64
	YX, YY, YZ float64
	ZX, ZY, ZZ float64
}

var dyadNames = []string{"xx", "xy", "xz", "yx", "yy", "yz", "zx", "zy", "zz"}

func (d Dyad) Add(o Dyad) Dyad {
	return Dyad{
		d.XX + o.XX, d.XY + o.XY, d.XZ + o.XZ,
		d.YX + o.YX, d.YY + o.YY, d.YZ + o.YZ,
		d.ZX + o.ZX, d.ZY + o.ZY, d.ZZ + o.ZZ,
	}
}

func (d Dyad) Sub(o Dyad) Dyad {
	return Dyad{
		d.XX - o.XX, d.XY - o.XY, d.XZ - o.XZ,
		d.YX - o.YX, d.YY - o.YY, d.YZ - o.YZ,
		d.ZX - o.ZX, d.ZY - o.ZY, d.ZZ - o.ZZ,
	}
}

func (d Dyad) Scale(k float64) Dyad {
	return d.Map(func(x float64) float64 { return x * k })
}

func (d Dyad) Map(f func(float64) float64) Dyad {
	return Dyad{
		f(d.XX), f(d.XY), f(d.XZ),
		f(d.YX), f(d.YY), f(d.YZ),
		f(d.ZX), f(d.ZY), f(d.ZZ),
	}
}

func (d Dyad) Equal(o Dyad) bool { return d == o }

// Less orders dyads lexicographically by component, row-major.
func (d Dyad) Less(o Dyad) bool {
	return lessLex(d.Components(), o.Components())
}

func (d Dyad) Components() []float64 {
	return []float64{
		d.XX, d.XY, d.XZ,
		d.YX, d.YY, d.YZ,
		d.ZX, d.ZY, d.ZZ,
	}
}

// Trace returns the sum of the diagonal components.
func (d Dyad) Trace() float64 { return d.XX + d.YY + d.ZZ }

// Transpose returns the dyad with rows and columns exchanged.
func (d Dyad) Transpose() Dyad {
	return Dyad{
		d.XX, d.YX, d.ZX,
		d.XY, d.YY, d.ZY,
		d.XZ, d.YZ, d.ZZ,
	}
}

// IsSymmetric reports whether the dyad equals its transpose.
func (d Dyad) IsSymmetric() bool {
	return d.XY == d.YX && d.XZ == d.ZX && d.YZ == d.ZY
}

// Sym returns the symmetric tensor with the dyad's upper triangle.
// The lower triangle is discarded.
func (d Dyad) Sym() SymDyad {
	return SymDyad{d.XX, d.XY, d.XZ, d.YY, d.YZ, d.ZZ}
}

// Mat returns the dyad as a gonum dense matrix.
func (d Dyad) Mat() *mat.Dense {
	return mat.NewDense(3, 3, d.Components())
}

// Format renders the dyad as "(xx, xy, xz; yx, yy, yz; zx, zy, zz)".
func (d Dyad) Format(prec int) string {
	return group([][]float64{
		{d.XX, d.XY, d.XZ},
		{d.YX, d.YY, d.YZ},
		{d.ZX, d.ZY, d.ZZ},
	}, prec)
}

func (d Dyad) JSON(prec int) string {
	return keyedJSON(dyadNames, d.Components(), prec)
}

func (d Dyad) XML(prec int) string {
	return keyedXML(dyadNames, d.Components(), prec)
}

func (d Dyad) YAML(prec int) string {
	return keyedYAML(dyadNames, d.Components(), prec)
}
