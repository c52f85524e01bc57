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

// Force is a scalar force magnitude, stored in newtons.
type Force struct {
	Quantity[tensor.Scalar, units.Force]
}

// NewForce returns a quantity of magnitude value expressed in unit u.
func NewForce(value float64, u units.Force) Force {
	return Force{New(tensor.Scalar(value), u)}
}

func (f Force) Add(o Force) Force { return Force{f.Quantity.Add(o.Quantity)} }

func (f Force) Sub(o Force) Force { return Force{f.Quantity.Sub(o.Quantity)} }

func (f Force) Mul(k float64) Force { return Force{f.Quantity.Scale(k)} }

func (f Force) Div(k float64) Force { return Force{f.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (f Force) Ratio(o Force) float64 { return float64(f.value) / float64(o.value) }

func (f Force) Equal(o Force) bool { return f.Quantity.Equal(o.Quantity) }

func (f Force) Less(o Force) bool { return f.Quantity.Less(o.Quantity) }

// Zero returns the zero Force.
func (Force) Zero() Force { return Force{} }

// Pressure is a scalar pressure, stored in pascals.
type Pressure struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewPressure returns a quantity of magnitude value expressed in unit u.
func NewPressure(value float64, u units.Pressure) Pressure {
	return Pressure{New(tensor.Scalar(value), u)}
}

func (p Pressure) Add(o Pressure) Pressure { return Pressure{p.Quantity.Add(o.Quantity)} }

func (p Pressure) Sub(o Pressure) Pressure { return Pressure{p.Quantity.Sub(o.Quantity)} }

func (p Pressure) Mul(k float64) Pressure { return Pressure{p.Quantity.Scale(k)} }

func (p Pressure) Div(k float64) Pressure { return Pressure{p.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (p Pressure) Ratio(o Pressure) float64 { return float64(p.value) / float64(o.value) }

func (p Pressure) Equal(o Pressure) bool { return p.Quantity.Equal(o.Quantity) }

func (p Pressure) Less(o Pressure) bool { return p.Quantity.Less(o.Quantity) }

// Zero returns the zero Pressure.
func (Pressure) Zero() Pressure { return Pressure{} }

// Energy is an energy, stored in joules.
type Energy struct {
	Quantity[tensor.Scalar, units.Energy]
}

// NewEnergy returns a quantity of magnitude value expressed in unit u.
func NewEnergy(value float64, u units.Energy) Energy {
	return Energy{New(tensor.Scalar(value), u)}
}

func (e Energy) Add(o Energy) Energy { return Energy{e.Quantity.Add(o.Quantity)} }

func (e Energy) Sub(o Energy) Energy { return Energy{e.Quantity.Sub(o.Quantity)} }

func (e Energy) Mul(k float64) Energy { return Energy{e.Quantity.Scale(k)} }

func (e Energy) Div(k float64) Energy { return Energy{e.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (e Energy) Ratio(o Energy) float64 { return float64(e.value) / float64(o.value) }

func (e Energy) Equal(o Energy) bool { return e.Quantity.Equal(o.Quantity) }

func (e Energy) Less(o Energy) bool { return e.Quantity.Less(o.Quantity) }

// Zero returns the zero Energy.
func (Energy) Zero() Energy { return Energy{} }

// Power is a power, stored in watts.
type Power struct {
	Quantity[tensor.Scalar, units.Power]
}

// NewPower returns a quantity of magnitude value expressed in unit u.
func NewPower(value float64, u units.Power) Power {
	return Power{New(tensor.Scalar(value), u)}
}

func (p Power) Add(o Power) Power { return Power{p.Quantity.Add(o.Quantity)} }

func (p Power) Sub(o Power) Power { return Power{p.Quantity.Sub(o.Quantity)} }

func (p Power) Mul(k float64) Power { return Power{p.Quantity.Scale(k)} }

func (p Power) Div(k float64) Power { return Power{p.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (p Power) Ratio(o Power) float64 { return float64(p.value) / float64(o.value) }

func (p Power) Equal(o Power) bool { return p.Quantity.Equal(o.Quantity) }

func (p Power) Less(o Power) bool { return p.Quantity.Less(o.Quantity) }

// Zero returns the zero Power.
func (Power) Zero() Power { return Power{} }

// ForceFromMassAcceleration derives the force accelerating mass m at a.
func ForceFromMassAcceleration(m Mass, a Acceleration) Force {
	return NewForce(float64(m.value)*float64(a.value), units.Newton)
}

// MassFromForceAcceleration derives the mass accelerated at a by
// force f.
func MassFromForceAcceleration(f Force, a Acceleration) (Mass, error) {
	if a.IsZero() {
		return Mass{}, fmt.Errorf("mech: cannot divide %s by zero acceleration %s", f, a)
	}
	return NewMass(float64(f.value)/float64(a.value), units.Kilogram), nil
}

// AccelerationFromForceMass derives the acceleration of mass m under
// force f.
func AccelerationFromForceMass(f Force, m Mass) (Acceleration, error) {
	if m.IsZero() {
		return Acceleration{}, fmt.Errorf("mech: cannot divide %s by zero mass %s", f, m)
	}
	return NewAcceleration(float64(f.value)/float64(m.value), units.MetrePerSquareSecond), nil
}

// PressureFromForceArea derives the pressure exerted by force f over
// area a.
func PressureFromForceArea(f Force, a Area) (Pressure, error) {
	if a.IsZero() {
		return Pressure{}, fmt.Errorf("mech: cannot divide %s by zero area %s", f, a)
	}
	return NewPressure(float64(f.value)/float64(a.value), units.Pascal), nil
}

// ForceFromPressureArea derives the force exerted by pressure p over
// area a.
func ForceFromPressureArea(p Pressure, a Area) Force {
	return NewForce(float64(p.value)*float64(a.value), units.Newton)
}

// AreaFromForcePressure derives the area over which force f exerts
// pressure p.
func AreaFromForcePressure(f Force, p Pressure) (Area, error) {
	if p.IsZero() {
		return Area{}, fmt.Errorf("mech: cannot divide %s by zero pressure %s", f, p)
	}
	return NewArea(float64(f.value)/float64(p.value), units.SquareMetre), nil
}

// EnergyFromForceLength derives the work done by force f over length l.
func EnergyFromForceLength(f Force, l Length) Energy {
	return NewEnergy(float64(f.value)*float64(l.value), units.Joule)
}

// ForceFromEnergyLength derives the force doing work e over length l.
func ForceFromEnergyLength(e Energy, l Length) (Force, error) {
	if l.IsZero() {
		return Force{}, fmt.Errorf("mech: cannot divide %s by zero length %s", e, l)
	}
	return NewForce(float64(e.value)/float64(l.value), units.Newton), nil
}

// LengthFromEnergyForce derives the length over which force f does
// work e.
func LengthFromEnergyForce(e Energy, f Force) (Length, error) {
	if f.IsZero() {
		return Length{}, fmt.Errorf("mech: cannot divide %s by zero force %s", e, f)
	}
	return NewLength(float64(e.value)/float64(f.value), units.Metre), nil
}

// PowerFromEnergyTime derives the power transferring energy e in
// duration d.
func PowerFromEnergyTime(e Energy, d Time) (Power, error) {
	if d.IsZero() {
		return Power{}, fmt.Errorf("mech: cannot divide %s by zero duration %s", e, d)
	}
	return NewPower(float64(e.value)/float64(d.value), units.Watt), nil
}

// EnergyFromPowerTime derives the energy transferred at power p over
// duration d.
func EnergyFromPowerTime(p Power, d Time) Energy {
	return NewEnergy(float64(p.value)*float64(d.value), units.Joule)
}

// TimeFromEnergyPower derives the duration needed to transfer energy e
// at power p.
func TimeFromEnergyPower(e Energy, p Power) (Time, error) {
	if p.IsZero() {
		return Time{}, fmt.Errorf("mech: cannot divide %s by zero power %s", e, p)
	}
	return NewTime(float64(e.value)/float64(p.value), units.Second), nil
}

// PowerFromEnergyFrequency derives the power transferring energy e at
// repetition frequency f.
func PowerFromEnergyFrequency(e Energy, f Frequency) Power {
	return NewPower(float64(e.value)*float64(f.value), units.Watt)
}
