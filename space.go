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
	"fmt"

	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// Length is a spatial extent, stored in metres.
type Length struct {
	Quantity[tensor.Scalar, units.Length]
}

// NewLength returns a quantity of magnitude value expressed in unit u.
func NewLength(value float64, u units.Length) Length {
	return Length{New(tensor.Scalar(value), u)}
}

func (l Length) Add(o Length) Length { return Length{l.Quantity.Add(o.Quantity)} }

func (l Length) Sub(o Length) Length { return Length{l.Quantity.Sub(o.Quantity)} }

func (l Length) Mul(k float64) Length { return Length{l.Quantity.Scale(k)} }

func (l Length) Div(k float64) Length { return Length{l.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (l Length) Ratio(o Length) float64 { return float64(l.value) / float64(o.value) }

func (l Length) Equal(o Length) bool { return l.Quantity.Equal(o.Quantity) }

func (l Length) Less(o Length) bool { return l.Quantity.Less(o.Quantity) }

// Zero returns the zero Length.
func (Length) Zero() Length { return Length{} }

// Area is a surface area, stored in square metres.
type Area struct {
	Quantity[tensor.Scalar, units.Area]
}

// NewArea returns a quantity of magnitude value expressed in unit u.
func NewArea(value float64, u units.Area) Area {
	return Area{New(tensor.Scalar(value), u)}
}

func (a Area) Add(o Area) Area { return Area{a.Quantity.Add(o.Quantity)} }

func (a Area) Sub(o Area) Area { return Area{a.Quantity.Sub(o.Quantity)} }

func (a Area) Mul(k float64) Area { return Area{a.Quantity.Scale(k)} }

func (a Area) Div(k float64) Area { return Area{a.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (a Area) Ratio(o Area) float64 { return float64(a.value) / float64(o.value) }

func (a Area) Equal(o Area) bool { return a.Quantity.Equal(o.Quantity) }

func (a Area) Less(o Area) bool { return a.Quantity.Less(o.Quantity) }

// Zero returns the zero Area.
func (Area) Zero() Area { return Area{} }

// Volume is a spatial volume, stored in cubic metres.
type Volume struct {
	Quantity[tensor.Scalar, units.Volume]
}

// NewVolume returns a quantity of magnitude value expressed in unit u.
func NewVolume(value float64, u units.Volume) Volume {
	return Volume{New(tensor.Scalar(value), u)}
}

func (v Volume) Add(o Volume) Volume { return Volume{v.Quantity.Add(o.Quantity)} }

func (v Volume) Sub(o Volume) Volume { return Volume{v.Quantity.Sub(o.Quantity)} }

func (v Volume) Mul(k float64) Volume { return Volume{v.Quantity.Scale(k)} }

func (v Volume) Div(k float64) Volume { return Volume{v.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (v Volume) Ratio(o Volume) float64 { return float64(v.value) / float64(o.value) }

func (v Volume) Equal(o Volume) bool { return v.Quantity.Equal(o.Quantity) }

func (v Volume) Less(o Volume) bool { return v.Quantity.Less(o.Quantity) }

// Zero returns the zero Volume.
func (Volume) Zero() Volume { return Volume{} }

// Angle is a plane angle, stored in radians. Angles are dimensionless but carry angular units at the boundary.
type Angle struct {
	Quantity[tensor.Scalar, units.Angle]
}

// NewAngle returns a quantity of magnitude value expressed in unit u.
func NewAngle(value float64, u units.Angle) Angle {
	return Angle{New(tensor.Scalar(value), u)}
}

func (a Angle) Add(o Angle) Angle { return Angle{a.Quantity.Add(o.Quantity)} }

func (a Angle) Sub(o Angle) Angle { return Angle{a.Quantity.Sub(o.Quantity)} }

func (a Angle) Mul(k float64) Angle { return Angle{a.Quantity.Scale(k)} }

func (a Angle) Div(k float64) Angle { return Angle{a.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (a Angle) Ratio(o Angle) float64 { return float64(a.value) / float64(o.value) }

func (a Angle) Equal(o Angle) bool { return a.Quantity.Equal(o.Quantity) }

func (a Angle) Less(o Angle) bool { return a.Quantity.Less(o.Quantity) }

// Zero returns the zero Angle.
func (Angle) Zero() Angle { return Angle{} }

// AreaFromLengths derives the area of a rectangle with sides l and w.
func AreaFromLengths(l, w Length) Area {
	return NewArea(float64(l.value)*float64(w.value), units.SquareMetre)
}

// LengthFromArea derives the side of a rectangle of area a whose other
// side is l.
func LengthFromArea(a Area, l Length) (Length, error) {
	if l.IsZero() {
		return Length{}, fmt.Errorf("mech: cannot divide %s by zero length %s", a, l)
	}
	return NewLength(float64(a.value)/float64(l.value), units.Metre), nil
}

// VolumeFromAreaLength derives the volume of a prism with base a and
// height l.
func VolumeFromAreaLength(a Area, l Length) Volume {
	return NewVolume(float64(a.value)*float64(l.value), units.CubicMetre)
}

// AreaFromVolume derives the base of a prism of volume v and height l.
func AreaFromVolume(v Volume, l Length) (Area, error) {
	if l.IsZero() {
		return Area{}, fmt.Errorf("mech: cannot divide %s by zero length %s", v, l)
	}
	return NewArea(float64(v.value)/float64(l.value), units.SquareMetre), nil
}

// LengthFromVolume derives the height of a prism of volume v and base a.
func LengthFromVolume(v Volume, a Area) (Length, error) {
	if a.IsZero() {
		return Length{}, fmt.Errorf("mech: cannot divide %s by zero area %s", v, a)
	}
	return NewLength(float64(v.value)/float64(a.value), units.Metre), nil
}
