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

// Strain is a dimensionless symmetric deformation tensor.
type Strain struct {
	Dimensionless[tensor.SymDyad]
}

// NewStrain returns a strain tensor holding v.
func NewStrain(v tensor.SymDyad) Strain {
	return Strain{NewDimensionless(v)}
}

func (s Strain) Add(o Strain) Strain { return Strain{s.Dimensionless.Add(o.Dimensionless)} }

func (s Strain) Sub(o Strain) Strain { return Strain{s.Dimensionless.Sub(o.Dimensionless)} }

func (s Strain) Mul(k float64) Strain { return Strain{s.Dimensionless.Scale(k)} }

func (s Strain) Div(k float64) Strain { return Strain{s.Dimensionless.Div(k)} }

func (s Strain) Equal(o Strain) bool { return s.Dimensionless.Equal(o.Dimensionless) }

func (s Strain) Less(o Strain) bool { return s.Dimensionless.Less(o.Dimensionless) }

// Zero returns the zero Strain.
func (Strain) Zero() Strain { return Strain{} }

// Trace returns the volumetric strain, the sum of the diagonal
// components.
func (s Strain) Trace() float64 { return s.value.Trace() }

// StrainRate is a symmetric deformation-rate tensor, stored in hertz.
type StrainRate struct {
	Quantity[tensor.SymDyad, units.Frequency]
}

// NewStrainRate returns a strain-rate tensor holding v expressed in
// unit u.
func NewStrainRate(v tensor.SymDyad, u units.Frequency) StrainRate {
	return StrainRate{New(v, u)}
}

func (r StrainRate) Add(o StrainRate) StrainRate { return StrainRate{r.Quantity.Add(o.Quantity)} }

func (r StrainRate) Sub(o StrainRate) StrainRate { return StrainRate{r.Quantity.Sub(o.Quantity)} }

func (r StrainRate) Mul(k float64) StrainRate { return StrainRate{r.Quantity.Scale(k)} }

func (r StrainRate) Div(k float64) StrainRate { return StrainRate{r.Quantity.Div(k)} }

func (r StrainRate) Equal(o StrainRate) bool { return r.Quantity.Equal(o.Quantity) }

func (r StrainRate) Less(o StrainRate) bool { return r.Quantity.Less(o.Quantity) }

// Zero returns the zero StrainRate.
func (StrainRate) Zero() StrainRate { return StrainRate{} }

// Stress is a symmetric Cauchy stress tensor, stored in pascals.
type Stress struct {
	Quantity[tensor.SymDyad, units.Pressure]
}

// NewStress returns a stress tensor holding v expressed in unit u.
func NewStress(v tensor.SymDyad, u units.Pressure) Stress {
	return Stress{New(v, u)}
}

func (s Stress) Add(o Stress) Stress { return Stress{s.Quantity.Add(o.Quantity)} }

func (s Stress) Sub(o Stress) Stress { return Stress{s.Quantity.Sub(o.Quantity)} }

func (s Stress) Mul(k float64) Stress { return Stress{s.Quantity.Scale(k)} }

func (s Stress) Div(k float64) Stress { return Stress{s.Quantity.Div(k)} }

func (s Stress) Equal(o Stress) bool { return s.Quantity.Equal(o.Quantity) }

func (s Stress) Less(o Stress) bool { return s.Quantity.Less(o.Quantity) }

// Zero returns the zero Stress.
func (Stress) Zero() Stress { return Stress{} }

// Trace returns the sum of the diagonal stress components as a
// pressure.
func (s Stress) Trace() Pressure {
	return NewPressure(s.value.Trace(), units.Pascal)
}

// StressFromPressure derives the stress tensor of a static fluid at
// pressure p, -p times the identity.
func StressFromPressure(p Pressure) Stress {
	return NewStress(tensor.SymIdentity().Scale(-float64(p.value)), units.Pascal)
}

// PressureFromStress derives the mechanical pressure of stress s,
// minus a third of its trace.
func PressureFromStress(s Stress) Pressure {
	return NewPressure(-s.value.Trace()/3, units.Pascal)
}

// StrainRateFromStrainTime derives the mean rate producing strain s
// over duration d.
func StrainRateFromStrainTime(s Strain, d Time) (StrainRate, error) {
	if d.IsZero() {
		return StrainRate{}, fmt.Errorf("mech: cannot divide strain %s by zero duration %s", s, d)
	}
	return NewStrainRate(s.value.Scale(1/float64(d.value)), units.Hertz), nil
}

// StrainFromRateTime derives the strain accumulated at rate r over
// duration d.
func StrainFromRateTime(r StrainRate, d Time) Strain {
	return NewStrain(r.value.Scale(float64(d.value)))
}
