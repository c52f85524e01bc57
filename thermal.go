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

// Temperature is an absolute temperature, stored in kelvins.
type Temperature struct {
	Quantity[tensor.Scalar, units.Temperature]
}

// NewTemperature returns a quantity of magnitude value expressed in unit u.
func NewTemperature(value float64, u units.Temperature) Temperature {
	return Temperature{New(tensor.Scalar(value), u)}
}

func (t Temperature) Add(o Temperature) Temperature { return Temperature{t.Quantity.Add(o.Quantity)} }

func (t Temperature) Sub(o Temperature) Temperature { return Temperature{t.Quantity.Sub(o.Quantity)} }

func (t Temperature) Mul(k float64) Temperature { return Temperature{t.Quantity.Scale(k)} }

func (t Temperature) Div(k float64) Temperature { return Temperature{t.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (t Temperature) Ratio(o Temperature) float64 { return float64(t.value) / float64(o.value) }

func (t Temperature) Equal(o Temperature) bool { return t.Quantity.Equal(o.Quantity) }

func (t Temperature) Less(o Temperature) bool { return t.Quantity.Less(o.Quantity) }

// Zero returns the zero Temperature.
func (Temperature) Zero() Temperature { return Temperature{} }

// SpecificHeatCapacity is heat capacity per mass, stored in joules per kilogram per kelvin.
type SpecificHeatCapacity struct {
	Quantity[tensor.Scalar, units.SpecificHeatCapacity]
}

// NewSpecificHeatCapacity returns a quantity of magnitude value expressed in unit u.
func NewSpecificHeatCapacity(value float64, u units.SpecificHeatCapacity) SpecificHeatCapacity {
	return SpecificHeatCapacity{New(tensor.Scalar(value), u)}
}

func (c SpecificHeatCapacity) Add(o SpecificHeatCapacity) SpecificHeatCapacity { return SpecificHeatCapacity{c.Quantity.Add(o.Quantity)} }

func (c SpecificHeatCapacity) Sub(o SpecificHeatCapacity) SpecificHeatCapacity { return SpecificHeatCapacity{c.Quantity.Sub(o.Quantity)} }

func (c SpecificHeatCapacity) Mul(k float64) SpecificHeatCapacity { return SpecificHeatCapacity{c.Quantity.Scale(k)} }

func (c SpecificHeatCapacity) Div(k float64) SpecificHeatCapacity { return SpecificHeatCapacity{c.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (c SpecificHeatCapacity) Ratio(o SpecificHeatCapacity) float64 { return float64(c.value) / float64(o.value) }

func (c SpecificHeatCapacity) Equal(o SpecificHeatCapacity) bool { return c.Quantity.Equal(o.Quantity) }

func (c SpecificHeatCapacity) Less(o SpecificHeatCapacity) bool { return c.Quantity.Less(o.Quantity) }

// Zero returns the zero SpecificHeatCapacity.
func (SpecificHeatCapacity) Zero() SpecificHeatCapacity { return SpecificHeatCapacity{} }

// ThermalConductivity is a material's heat conduction coefficient, stored in watts per metre per kelvin.
type ThermalConductivity struct {
	Quantity[tensor.Scalar, units.ThermalConductivity]
}

// NewThermalConductivity returns a quantity of magnitude value expressed in unit u.
func NewThermalConductivity(value float64, u units.ThermalConductivity) ThermalConductivity {
	return ThermalConductivity{New(tensor.Scalar(value), u)}
}

func (c ThermalConductivity) Add(o ThermalConductivity) ThermalConductivity { return ThermalConductivity{c.Quantity.Add(o.Quantity)} }

func (c ThermalConductivity) Sub(o ThermalConductivity) ThermalConductivity { return ThermalConductivity{c.Quantity.Sub(o.Quantity)} }

func (c ThermalConductivity) Mul(k float64) ThermalConductivity { return ThermalConductivity{c.Quantity.Scale(k)} }

func (c ThermalConductivity) Div(k float64) ThermalConductivity { return ThermalConductivity{c.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (c ThermalConductivity) Ratio(o ThermalConductivity) float64 { return float64(c.value) / float64(o.value) }

func (c ThermalConductivity) Equal(o ThermalConductivity) bool { return c.Quantity.Equal(o.Quantity) }

func (c ThermalConductivity) Less(o ThermalConductivity) bool { return c.Quantity.Less(o.Quantity) }

// Zero returns the zero ThermalConductivity.
func (ThermalConductivity) Zero() ThermalConductivity { return ThermalConductivity{} }

// ThermalDiffusivity is the diffusivity of heat, stored in square metres per second.
type ThermalDiffusivity struct {
	Quantity[tensor.Scalar, units.Diffusivity]
}

// NewThermalDiffusivity returns a quantity of magnitude value expressed in unit u.
func NewThermalDiffusivity(value float64, u units.Diffusivity) ThermalDiffusivity {
	return ThermalDiffusivity{New(tensor.Scalar(value), u)}
}

func (a ThermalDiffusivity) Add(o ThermalDiffusivity) ThermalDiffusivity { return ThermalDiffusivity{a.Quantity.Add(o.Quantity)} }

func (a ThermalDiffusivity) Sub(o ThermalDiffusivity) ThermalDiffusivity { return ThermalDiffusivity{a.Quantity.Sub(o.Quantity)} }

func (a ThermalDiffusivity) Mul(k float64) ThermalDiffusivity { return ThermalDiffusivity{a.Quantity.Scale(k)} }

func (a ThermalDiffusivity) Div(k float64) ThermalDiffusivity { return ThermalDiffusivity{a.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (a ThermalDiffusivity) Ratio(o ThermalDiffusivity) float64 { return float64(a.value) / float64(o.value) }

func (a ThermalDiffusivity) Equal(o ThermalDiffusivity) bool { return a.Quantity.Equal(o.Quantity) }

func (a ThermalDiffusivity) Less(o ThermalDiffusivity) bool { return a.Quantity.Less(o.Quantity) }

// Zero returns the zero ThermalDiffusivity.
func (ThermalDiffusivity) Zero() ThermalDiffusivity { return ThermalDiffusivity{} }

// ThermalDiffusivityFromConductivity derives the thermal diffusivity
// of a material with conductivity k, density rho, and specific heat
// capacity c.
func ThermalDiffusivityFromConductivity(k ThermalConductivity, rho MassDensity, c SpecificHeatCapacity) (ThermalDiffusivity, error) {
	if rho.IsZero() {
		return ThermalDiffusivity{}, fmt.Errorf("mech: cannot divide %s by zero density %s", k, rho)
	}
	if c.IsZero() {
		return ThermalDiffusivity{}, fmt.Errorf("mech: cannot divide %s by zero specific heat capacity %s", k, c)
	}
	return NewThermalDiffusivity(float64(k.value)/(float64(rho.value)*float64(c.value)), units.SquareMetrePerSecond), nil
}

// ThermalConductivityFromDiffusivity derives the conductivity of a
// material with thermal diffusivity a, density rho, and specific heat
// capacity c.
func ThermalConductivityFromDiffusivity(a ThermalDiffusivity, rho MassDensity, c SpecificHeatCapacity) ThermalConductivity {
	return NewThermalConductivity(float64(a.value)*float64(rho.value)*float64(c.value), units.WattPerMetrePerKelvin)
}

// SpecificHeatCapacityFromDiffusivity derives the specific heat
// capacity of a material with conductivity k, density rho, and thermal
// diffusivity a.
func SpecificHeatCapacityFromDiffusivity(k ThermalConductivity, rho MassDensity, a ThermalDiffusivity) (SpecificHeatCapacity, error) {
	if rho.IsZero() {
		return SpecificHeatCapacity{}, fmt.Errorf("mech: cannot divide %s by zero density %s", k, rho)
	}
	if a.IsZero() {
		return SpecificHeatCapacity{}, fmt.Errorf("mech: cannot divide %s by zero thermal diffusivity %s", k, a)
	}
	return NewSpecificHeatCapacity(float64(k.value)/(float64(rho.value)*float64(a.value)), units.JoulePerKilogramPerKelvin), nil
}
