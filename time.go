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

// Time is a duration, stored in seconds.
type Time struct {
	Quantity[tensor.Scalar, units.Time]
}

// NewTime returns a quantity of magnitude value expressed in unit u.
func NewTime(value float64, u units.Time) Time {
	return Time{New(tensor.Scalar(value), u)}
}

func (t Time) Add(o Time) Time { return Time{t.Quantity.Add(o.Quantity)} }

func (t Time) Sub(o Time) Time { return Time{t.Quantity.Sub(o.Quantity)} }

func (t Time) Mul(k float64) Time { return Time{t.Quantity.Scale(k)} }

func (t Time) Div(k float64) Time { return Time{t.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (t Time) Ratio(o Time) float64 { return float64(t.value) / float64(o.value) }

func (t Time) Equal(o Time) bool { return t.Quantity.Equal(o.Quantity) }

func (t Time) Less(o Time) bool { return t.Quantity.Less(o.Quantity) }

// Zero returns the zero Time.
func (Time) Zero() Time { return Time{} }

// Frequency is a temporal frequency, stored in hertz.
type Frequency struct {
	Quantity[tensor.Scalar, units.Frequency]
}

// NewFrequency returns a quantity of magnitude value expressed in unit u.
func NewFrequency(value float64, u units.Frequency) Frequency {
	return Frequency{New(tensor.Scalar(value), u)}
}

func (f Frequency) Add(o Frequency) Frequency { return Frequency{f.Quantity.Add(o.Quantity)} }

func (f Frequency) Sub(o Frequency) Frequency { return Frequency{f.Quantity.Sub(o.Quantity)} }

func (f Frequency) Mul(k float64) Frequency { return Frequency{f.Quantity.Scale(k)} }

func (f Frequency) Div(k float64) Frequency { return Frequency{f.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (f Frequency) Ratio(o Frequency) float64 { return float64(f.value) / float64(o.value) }

func (f Frequency) Equal(o Frequency) bool { return f.Quantity.Equal(o.Quantity) }

func (f Frequency) Less(o Frequency) bool { return f.Quantity.Less(o.Quantity) }

// Zero returns the zero Frequency.
func (Frequency) Zero() Frequency { return Frequency{} }

// FrequencyFromPeriod derives the frequency whose period is d.
func FrequencyFromPeriod(d Time) (Frequency, error) {
	if d.IsZero() {
		return Frequency{}, fmt.Errorf("mech: cannot derive a frequency from zero period %s", d)
	}
	return NewFrequency(1/float64(d.value), units.Hertz), nil
}

// PeriodFromFrequency derives the period of frequency f.
func PeriodFromFrequency(f Frequency) (Time, error) {
	if f.IsZero() {
		return Time{}, fmt.Errorf("mech: cannot derive a period from zero frequency %s", f)
	}
	return NewTime(1/float64(f.value), units.Second), nil
}
