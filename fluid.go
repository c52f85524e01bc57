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

// DynamicViscosity is a fluid's resistance to shear, stored in pascal-seconds.
type DynamicViscosity struct {
	Quantity[tensor.Scalar, units.DynamicViscosity]
}

// NewDynamicViscosity returns a quantity of magnitude value expressed in unit u.
func NewDynamicViscosity(value float64, u units.DynamicViscosity) DynamicViscosity {
	return DynamicViscosity{New(tensor.Scalar(value), u)}
}

func (m DynamicViscosity) Add(o DynamicViscosity) DynamicViscosity { return DynamicViscosity{m.Quantity.Add(o.Quantity)} }

func (m DynamicViscosity) Sub(o DynamicViscosity) DynamicViscosity { return DynamicViscosity{m.Quantity.Sub(o.Quantity)} }

func (m DynamicViscosity) Mul(k float64) DynamicViscosity { return DynamicViscosity{m.Quantity.Scale(k)} }

func (m DynamicViscosity) Div(k float64) DynamicViscosity { return DynamicViscosity{m.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (m DynamicViscosity) Ratio(o DynamicViscosity) float64 { return float64(m.value) / float64(o.value) }

func (m DynamicViscosity) Equal(o DynamicViscosity) bool { return m.Quantity.Equal(o.Quantity) }

func (m DynamicViscosity) Less(o DynamicViscosity) bool { return m.Quantity.Less(o.Quantity) }

// Zero returns the zero DynamicViscosity.
func (DynamicViscosity) Zero() DynamicViscosity { return DynamicViscosity{} }

// BulkDynamicViscosity is a compressible fluid's resistance to volumetric deformation, stored in pascal-seconds.
type BulkDynamicViscosity struct {
	Quantity[tensor.Scalar, units.DynamicViscosity]
}

// NewBulkDynamicViscosity returns a quantity of magnitude value expressed in unit u.
func NewBulkDynamicViscosity(value float64, u units.DynamicViscosity) BulkDynamicViscosity {
	return BulkDynamicViscosity{New(tensor.Scalar(value), u)}
}

func (m BulkDynamicViscosity) Add(o BulkDynamicViscosity) BulkDynamicViscosity { return BulkDynamicViscosity{m.Quantity.Add(o.Quantity)} }

func (m BulkDynamicViscosity) Sub(o BulkDynamicViscosity) BulkDynamicViscosity { return BulkDynamicViscosity{m.Quantity.Sub(o.Quantity)} }

func (m BulkDynamicViscosity) Mul(k float64) BulkDynamicViscosity { return BulkDynamicViscosity{m.Quantity.Scale(k)} }

func (m BulkDynamicViscosity) Div(k float64) BulkDynamicViscosity { return BulkDynamicViscosity{m.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (m BulkDynamicViscosity) Ratio(o BulkDynamicViscosity) float64 { return float64(m.value) / float64(o.value) }

func (m BulkDynamicViscosity) Equal(o BulkDynamicViscosity) bool { return m.Quantity.Equal(o.Quantity) }

func (m BulkDynamicViscosity) Less(o BulkDynamicViscosity) bool { return m.Quantity.Less(o.Quantity) }

// Zero returns the zero BulkDynamicViscosity.
func (BulkDynamicViscosity) Zero() BulkDynamicViscosity { return BulkDynamicViscosity{} }

// KinematicViscosity is dynamic viscosity per mass density, stored in square metres per second.
type KinematicViscosity struct {
	Quantity[tensor.Scalar, units.Diffusivity]
}

// NewKinematicViscosity returns a quantity of magnitude value expressed in unit u.
func NewKinematicViscosity(value float64, u units.Diffusivity) KinematicViscosity {
	return KinematicViscosity{New(tensor.Scalar(value), u)}
}

func (n KinematicViscosity) Add(o KinematicViscosity) KinematicViscosity { return KinematicViscosity{n.Quantity.Add(o.Quantity)} }

func (n KinematicViscosity) Sub(o KinematicViscosity) KinematicViscosity { return KinematicViscosity{n.Quantity.Sub(o.Quantity)} }

func (n KinematicViscosity) Mul(k float64) KinematicViscosity { return KinematicViscosity{n.Quantity.Scale(k)} }

func (n KinematicViscosity) Div(k float64) KinematicViscosity { return KinematicViscosity{n.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (n KinematicViscosity) Ratio(o KinematicViscosity) float64 { return float64(n.value) / float64(o.value) }

func (n KinematicViscosity) Equal(o KinematicViscosity) bool { return n.Quantity.Equal(o.Quantity) }

func (n KinematicViscosity) Less(o KinematicViscosity) bool { return n.Quantity.Less(o.Quantity) }

// Zero returns the zero KinematicViscosity.
func (KinematicViscosity) Zero() KinematicViscosity { return KinematicViscosity{} }

// ReynoldsNumber is the dimensionless ratio of inertial to viscous
// forces in a flow.
type ReynoldsNumber struct {
	Dimensionless[tensor.Scalar]
}

// NewReynoldsNumber returns a Reynolds number of the given magnitude.
func NewReynoldsNumber(value float64) ReynoldsNumber {
	return ReynoldsNumber{NewDimensionless(tensor.Scalar(value))}
}

func (n ReynoldsNumber) Add(o ReynoldsNumber) ReynoldsNumber {
	return ReynoldsNumber{n.Dimensionless.Add(o.Dimensionless)}
}

func (n ReynoldsNumber) Sub(o ReynoldsNumber) ReynoldsNumber {
	return ReynoldsNumber{n.Dimensionless.Sub(o.Dimensionless)}
}

func (n ReynoldsNumber) Mul(k float64) ReynoldsNumber { return ReynoldsNumber{n.Dimensionless.Scale(k)} }

func (n ReynoldsNumber) Div(k float64) ReynoldsNumber { return ReynoldsNumber{n.Dimensionless.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (n ReynoldsNumber) Ratio(o ReynoldsNumber) float64 { return float64(n.value) / float64(o.value) }

func (n ReynoldsNumber) Equal(o ReynoldsNumber) bool { return n.Dimensionless.Equal(o.Dimensionless) }

func (n ReynoldsNumber) Less(o ReynoldsNumber) bool { return n.Dimensionless.Less(o.Dimensionless) }

// Zero returns the zero ReynoldsNumber.
func (ReynoldsNumber) Zero() ReynoldsNumber { return ReynoldsNumber{} }

// PrandtlNumber is the dimensionless ratio of momentum diffusivity to
// thermal diffusivity.
type PrandtlNumber struct {
	Dimensionless[tensor.Scalar]
}

// NewPrandtlNumber returns a Prandtl number of the given magnitude.
func NewPrandtlNumber(value float64) PrandtlNumber {
	return PrandtlNumber{NewDimensionless(tensor.Scalar(value))}
}

func (n PrandtlNumber) Add(o PrandtlNumber) PrandtlNumber {
	return PrandtlNumber{n.Dimensionless.Add(o.Dimensionless)}
}

func (n PrandtlNumber) Sub(o PrandtlNumber) PrandtlNumber {
	return PrandtlNumber{n.Dimensionless.Sub(o.Dimensionless)}
}

func (n PrandtlNumber) Mul(k float64) PrandtlNumber { return PrandtlNumber{n.Dimensionless.Scale(k)} }

func (n PrandtlNumber) Div(k float64) PrandtlNumber { return PrandtlNumber{n.Dimensionless.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (n PrandtlNumber) Ratio(o PrandtlNumber) float64 { return float64(n.value) / float64(o.value) }

func (n PrandtlNumber) Equal(o PrandtlNumber) bool { return n.Dimensionless.Equal(o.Dimensionless) }

func (n PrandtlNumber) Less(o PrandtlNumber) bool { return n.Dimensionless.Less(o.Dimensionless) }

// Zero returns the zero PrandtlNumber.
func (PrandtlNumber) Zero() PrandtlNumber { return PrandtlNumber{} }

// DynamicViscosityFromKinematic derives the dynamic viscosity of a
// fluid with density rho and kinematic viscosity nu.
func DynamicViscosityFromKinematic(rho MassDensity, nu KinematicViscosity) DynamicViscosity {
	return NewDynamicViscosity(float64(rho.value)*float64(nu.value), units.PascalSecond)
}

// KinematicViscosityFromDynamic derives the kinematic viscosity of a
// fluid with dynamic viscosity mu and density rho.
func KinematicViscosityFromDynamic(mu DynamicViscosity, rho MassDensity) (KinematicViscosity, error) {
	if rho.IsZero() {
		return KinematicViscosity{}, fmt.Errorf("mech: cannot divide %s by zero density %s", mu, rho)
	}
	return NewKinematicViscosity(float64(mu.value)/float64(rho.value), units.SquareMetrePerSecond), nil
}

// MassDensityFromViscosities derives the density of a fluid with
// dynamic viscosity mu and kinematic viscosity nu.
func MassDensityFromViscosities(mu DynamicViscosity, nu KinematicViscosity) (MassDensity, error) {
	if nu.IsZero() {
		return MassDensity{}, fmt.Errorf("mech: cannot divide %s by zero kinematic viscosity %s", mu, nu)
	}
	return NewMassDensity(float64(mu.value)/float64(nu.value), units.KilogramPerCubicMetre), nil
}

// ReynoldsNumberFromDynamic derives Re = rho v L / mu for a flow with
// density rho, speed v, characteristic length l, and dynamic viscosity
// mu.
func ReynoldsNumberFromDynamic(rho MassDensity, v Speed, l Length, mu DynamicViscosity) (ReynoldsNumber, error) {
	if mu.IsZero() {
		return ReynoldsNumber{}, fmt.Errorf("mech: cannot divide by zero dynamic viscosity %s", mu)
	}
	return NewReynoldsNumber(float64(rho.value) * float64(v.value) * float64(l.value) / float64(mu.value)), nil
}

// ReynoldsNumberFromKinematic derives Re = v L / nu for a flow with
// speed v, characteristic length l, and kinematic viscosity nu.
func ReynoldsNumberFromKinematic(v Speed, l Length, nu KinematicViscosity) (ReynoldsNumber, error) {
	if nu.IsZero() {
		return ReynoldsNumber{}, fmt.Errorf("mech: cannot divide by zero kinematic viscosity %s", nu)
	}
	return NewReynoldsNumber(float64(v.value) * float64(l.value) / float64(nu.value)), nil
}

// DynamicViscosityFromReynolds recovers mu = rho v L / Re.
func DynamicViscosityFromReynolds(rho MassDensity, v Speed, l Length, re ReynoldsNumber) (DynamicViscosity, error) {
	if re.IsZero() {
		return DynamicViscosity{}, fmt.Errorf("mech: cannot divide by zero Reynolds number %s", re)
	}
	return NewDynamicViscosity(float64(rho.value)*float64(v.value)*float64(l.value)/float64(re.value), units.PascalSecond), nil
}

// KinematicViscosityFromReynolds recovers nu = v L / Re.
func KinematicViscosityFromReynolds(v Speed, l Length, re ReynoldsNumber) (KinematicViscosity, error) {
	if re.IsZero() {
		return KinematicViscosity{}, fmt.Errorf("mech: cannot divide by zero Reynolds number %s", re)
	}
	return NewKinematicViscosity(float64(v.value)*float64(l.value)/float64(re.value), units.SquareMetrePerSecond), nil
}

// SpeedFromReynolds recovers v = Re nu / L.
func SpeedFromReynolds(re ReynoldsNumber, nu KinematicViscosity, l Length) (Speed, error) {
	if l.IsZero() {
		return Speed{}, fmt.Errorf("mech: cannot divide by zero length %s", l)
	}
	return NewSpeed(float64(re.value)*float64(nu.value)/float64(l.value), units.MetrePerSecond), nil
}

// LengthFromReynolds recovers L = Re nu / v.
func LengthFromReynolds(re ReynoldsNumber, nu KinematicViscosity, v Speed) (Length, error) {
	if v.IsZero() {
		return Length{}, fmt.Errorf("mech: cannot divide by zero speed %s", v)
	}
	return NewLength(float64(re.value)*float64(nu.value)/float64(v.value), units.Metre), nil
}

// PrandtlNumberFromDiffusivities derives Pr = nu / alpha from the
// momentum and thermal diffusivities.
func PrandtlNumberFromDiffusivities(nu KinematicViscosity, alpha ThermalDiffusivity) (PrandtlNumber, error) {
	if alpha.IsZero() {
		return PrandtlNumber{}, fmt.Errorf("mech: cannot divide %s by zero thermal diffusivity %s", nu, alpha)
	}
	return NewPrandtlNumber(float64(nu.value) / float64(alpha.value)), nil
}

// PrandtlNumberFromConductivity derives Pr = c_p mu / k from the
// specific heat capacity, dynamic viscosity, and thermal conductivity.
func PrandtlNumberFromConductivity(c SpecificHeatCapacity, mu DynamicViscosity, k ThermalConductivity) (PrandtlNumber, error) {
	if k.IsZero() {
		return PrandtlNumber{}, fmt.Errorf("mech: cannot divide by zero thermal conductivity %s", k)
	}
	return NewPrandtlNumber(float64(c.value) * float64(mu.value) / float64(k.value)), nil
}

// KinematicViscosityFromPrandtl recovers nu = Pr alpha.
func KinematicViscosityFromPrandtl(pr PrandtlNumber, alpha ThermalDiffusivity) KinematicViscosity {
	return NewKinematicViscosity(float64(pr.value)*float64(alpha.value), units.SquareMetrePerSecond)
}

// ThermalDiffusivityFromPrandtl recovers alpha = nu / Pr.
func ThermalDiffusivityFromPrandtl(nu KinematicViscosity, pr PrandtlNumber) (ThermalDiffusivity, error) {
	if pr.IsZero() {
		return ThermalDiffusivity{}, fmt.Errorf("mech: cannot divide %s by zero Prandtl number %s", nu, pr)
	}
	return NewThermalDiffusivity(float64(nu.value)/float64(pr.value), units.SquareMetrePerSecond), nil
}

// DynamicViscosityFromPrandtl recovers mu = Pr k / c_p.
func DynamicViscosityFromPrandtl(pr PrandtlNumber, k ThermalConductivity, c SpecificHeatCapacity) (DynamicViscosity, error) {
	if c.IsZero() {
		return DynamicViscosity{}, fmt.Errorf("mech: cannot divide by zero specific heat capacity %s", c)
	}
	return NewDynamicViscosity(float64(pr.value)*float64(k.value)/float64(c.value), units.PascalSecond), nil
}

// ThermalConductivityFromPrandtl recovers k = c_p mu / Pr.
func ThermalConductivityFromPrandtl(c SpecificHeatCapacity, mu DynamicViscosity, pr PrandtlNumber) (ThermalConductivity, error) {
	if pr.IsZero() {
		return ThermalConductivity{}, fmt.Errorf("mech: cannot divide by zero Prandtl number %s", pr)
	}
	return NewThermalConductivity(float64(c.value)*float64(mu.value)/float64(pr.value), units.WattPerMetrePerKelvin), nil
}
