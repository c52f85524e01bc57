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

// Speed is a scalar speed, stored in metres per second.
type Speed struct {
	Quantity[tensor.Scalar, units.Speed]
}

// NewSpeed returns a quantity of magnitude value expressed in unit u.
func NewSpeed(value float64, u units.Speed) Speed {
	return Speed{New(tensor.Scalar(value), u)}
}

func (s Speed) Add(o Speed) Speed { return Speed{s.Quantity.Add(o.Quantity)} }

func (s Speed) Sub(o Speed) Speed { return Speed{s.Quantity.Sub(o.Quantity)} }

func (s Speed) Mul(k float64) Speed { return Speed{s.Quantity.Scale(k)} }

func (s Speed) Div(k float64) Speed { return Speed{s.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (s Speed) Ratio(o Speed) float64 { return float64(s.value) / float64(o.value) }

func (s Speed) Equal(o Speed) bool { return s.Quantity.Equal(o.Quantity) }

func (s Speed) Less(o Speed) bool { return s.Quantity.Less(o.Quantity) }

// Zero returns the zero Speed.
func (Speed) Zero() Speed { return Speed{} }

// Acceleration is a scalar acceleration magnitude, stored in metres per square second.
type Acceleration struct {
	Quantity[tensor.Scalar, units.Acceleration]
}

// NewAcceleration returns a quantity of magnitude value expressed in unit u.
func NewAcceleration(value float64, u units.Acceleration) Acceleration {
	return Acceleration{New(tensor.Scalar(value), u)}
}

func (a Acceleration) Add(o Acceleration) Acceleration { return Acceleration{a.Quantity.Add(o.Quantity)} }

func (a Acceleration) Sub(o Acceleration) Acceleration { return Acceleration{a.Quantity.Sub(o.Quantity)} }

func (a Acceleration) Mul(k float64) Acceleration { return Acceleration{a.Quantity.Scale(k)} }

func (a Acceleration) Div(k float64) Acceleration { return Acceleration{a.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (a Acceleration) Ratio(o Acceleration) float64 { return float64(a.value) / float64(o.value) }

func (a Acceleration) Equal(o Acceleration) bool { return a.Quantity.Equal(o.Quantity) }

func (a Acceleration) Less(o Acceleration) bool { return a.Quantity.Less(o.Quantity) }

// Zero returns the zero Acceleration.
func (Acceleration) Zero() Acceleration { return Acceleration{} }

// SpeedFromLengthTime derives the speed covering length l in
// duration d.
func SpeedFromLengthTime(l Length, d Time) (Speed, error) {
	if d.IsZero() {
		return Speed{}, fmt.Errorf("mech: cannot divide %s by zero duration %s", l, d)
	}
	return NewSpeed(float64(l.value)/float64(d.value), units.MetrePerSecond), nil
}

// LengthFromSpeedTime derives the length covered at speed s over
// duration d.
func LengthFromSpeedTime(s Speed, d Time) Length {
	return NewLength(float64(s.value)*float64(d.value), units.Metre)
}

// TimeFromLengthSpeed derives the duration needed to cover length l at
// speed s.
func TimeFromLengthSpeed(l Length, s Speed) (Time, error) {
	if s.IsZero() {
		return Time{}, fmt.Errorf("mech: cannot divide %s by zero speed %s", l, s)
	}
	return NewTime(float64(l.value)/float64(s.value), units.Second), nil
}

// SpeedFromLengthFrequency derives the speed traversing length l at
// repetition frequency f.
func SpeedFromLengthFrequency(l Length, f Frequency) Speed {
	return NewSpeed(float64(l.value)*float64(f.value), units.MetrePerSecond)
}

// AccelerationFromSpeedTime derives the acceleration reaching speed s
// in duration d.
func AccelerationFromSpeedTime(s Speed, d Time) (Acceleration, error) {
	if d.IsZero() {
		return Acceleration{}, fmt.Errorf("mech: cannot divide %s by zero duration %s", s, d)
	}
	return NewAcceleration(float64(s.value)/float64(d.value), units.MetrePerSquareSecond), nil
}

// SpeedFromAccelerationTime derives the speed reached after
// accelerating at a for duration d.
func SpeedFromAccelerationTime(a Acceleration, d Time) Speed {
	return NewSpeed(float64(a.value)*float64(d.value), units.MetrePerSecond)
}

// TimeFromSpeedAcceleration derives the duration needed to reach speed
// s at acceleration a.
func TimeFromSpeedAcceleration(s Speed, a Acceleration) (Time, error) {
	if a.IsZero() {
		return Time{}, fmt.Errorf("mech: cannot divide %s by zero acceleration %s", s, a)
	}
	return NewTime(float64(s.value)/float64(a.value), units.Second), nil
}

// AccelerationFromSpeedFrequency derives the acceleration changing
// speed by s at frequency f.
func AccelerationFromSpeedFrequency(s Speed, f Frequency) Acceleration {
	return NewAcceleration(float64(s.value)*float64(f.value), units.MetrePerSquareSecond)
}
