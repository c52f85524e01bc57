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

// Scalar is a single-component value.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar { return s + o }

func (s Scalar) Sub(o Scalar) Scalar { return s - o }

func (s Scalar) Scale(k float64) Scalar { return s * Scalar(k) }

func (s Scalar) Map(f func(float64) float64) Scalar { return Scalar(f(float64(s))) }

func (s Scalar) Equal(o Scalar) bool { return s == o }

func (s Scalar) Less(o Scalar) bool { return s < o }

func (s Scalar) Components() []float64 { return []float64{float64(s)} }

// Format renders the scalar as a bare fixed-precision decimal.
func (s Scalar) Format(prec int) string { return formatFloat(float64(s), prec) }

// JSON renders the scalar as a bare number, with no wrapping object.
func (s Scalar) JSON(prec int) string { return formatFloat(float64(s), prec) }

// XML renders the scalar as bare tag content.
func (s Scalar) XML(prec int) string { return formatFloat(float64(s), prec) }

// YAML renders the scalar as a bare number.
func (s Scalar) YAML(prec int) string { return formatFloat(float64(s), prec) }
