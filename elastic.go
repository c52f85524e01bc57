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

// YoungModulus is an isotropic solid's uniaxial stiffness, stored in pascals.
type YoungModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewYoungModulus returns a quantity of magnitude value expressed in unit u.
func NewYoungModulus(value float64, u units.Pressure) YoungModulus {
	return YoungModulus{New(tensor.Scalar(value), u)}
}

func (e YoungModulus) Add(o YoungModulus) YoungModulus { return YoungModulus{e.Quantity.Add(o.Quantity)} }

func (e YoungModulus) Sub(o YoungModulus) YoungModulus { return YoungModulus{e.Quantity.Sub(o.Quantity)} }

func (e YoungModulus) Mul(k float64) YoungModulus { return YoungModulus{e.Quantity.Scale(k)} }

func (e YoungModulus) Div(k float64) YoungModulus { return YoungModulus{e.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (e YoungModulus) Ratio(o YoungModulus) float64 { return float64(e.value) / float64(o.value) }

func (e YoungModulus) Equal(o YoungModulus) bool { return e.Quantity.Equal(o.Quantity) }

func (e YoungModulus) Less(o YoungModulus) bool { return e.Quantity.Less(o.Quantity) }

// Zero returns the zero YoungModulus.
func (YoungModulus) Zero() YoungModulus { return YoungModulus{} }

// ShearModulus is an isotropic solid's resistance to shear, stored in pascals.
type ShearModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewShearModulus returns a quantity of magnitude value expressed in unit u.
func NewShearModulus(value float64, u units.Pressure) ShearModulus {
	return ShearModulus{New(tensor.Scalar(value), u)}
}

func (g ShearModulus) Add(o ShearModulus) ShearModulus { return ShearModulus{g.Quantity.Add(o.Quantity)} }

func (g ShearModulus) Sub(o ShearModulus) ShearModulus { return ShearModulus{g.Quantity.Sub(o.Quantity)} }

func (g ShearModulus) Mul(k float64) ShearModulus { return ShearModulus{g.Quantity.Scale(k)} }

func (g ShearModulus) Div(k float64) ShearModulus { return ShearModulus{g.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (g ShearModulus) Ratio(o ShearModulus) float64 { return float64(g.value) / float64(o.value) }

func (g ShearModulus) Equal(o ShearModulus) bool { return g.Quantity.Equal(o.Quantity) }

func (g ShearModulus) Less(o ShearModulus) bool { return g.Quantity.Less(o.Quantity) }

// Zero returns the zero ShearModulus.
func (ShearModulus) Zero() ShearModulus { return ShearModulus{} }

// LameFirstModulus is Lamé's first parameter of an isotropic solid, stored in pascals.
type LameFirstModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewLameFirstModulus returns a quantity of magnitude value expressed in unit u.
func NewLameFirstModulus(value float64, u units.Pressure) LameFirstModulus {
	return LameFirstModulus{New(tensor.Scalar(value), u)}
}

func (l LameFirstModulus) Add(o LameFirstModulus) LameFirstModulus { return LameFirstModulus{l.Quantity.Add(o.Quantity)} }

func (l LameFirstModulus) Sub(o LameFirstModulus) LameFirstModulus { return LameFirstModulus{l.Quantity.Sub(o.Quantity)} }

func (l LameFirstModulus) Mul(k float64) LameFirstModulus { return LameFirstModulus{l.Quantity.Scale(k)} }

func (l LameFirstModulus) Div(k float64) LameFirstModulus { return LameFirstModulus{l.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (l LameFirstModulus) Ratio(o LameFirstModulus) float64 { return float64(l.value) / float64(o.value) }

func (l LameFirstModulus) Equal(o LameFirstModulus) bool { return l.Quantity.Equal(o.Quantity) }

func (l LameFirstModulus) Less(o LameFirstModulus) bool { return l.Quantity.Less(o.Quantity) }

// Zero returns the zero LameFirstModulus.
func (LameFirstModulus) Zero() LameFirstModulus { return LameFirstModulus{} }

// PWaveModulus is an isotropic solid's uniaxial strain modulus, stored in pascals.
type PWaveModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewPWaveModulus returns a quantity of magnitude value expressed in unit u.
func NewPWaveModulus(value float64, u units.Pressure) PWaveModulus {
	return PWaveModulus{New(tensor.Scalar(value), u)}
}

func (m PWaveModulus) Add(o PWaveModulus) PWaveModulus { return PWaveModulus{m.Quantity.Add(o.Quantity)} }

func (m PWaveModulus) Sub(o PWaveModulus) PWaveModulus { return PWaveModulus{m.Quantity.Sub(o.Quantity)} }

func (m PWaveModulus) Mul(k float64) PWaveModulus { return PWaveModulus{m.Quantity.Scale(k)} }

func (m PWaveModulus) Div(k float64) PWaveModulus { return PWaveModulus{m.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (m PWaveModulus) Ratio(o PWaveModulus) float64 { return float64(m.value) / float64(o.value) }

func (m PWaveModulus) Equal(o PWaveModulus) bool { return m.Quantity.Equal(o.Quantity) }

func (m PWaveModulus) Less(o PWaveModulus) bool { return m.Quantity.Less(o.Quantity) }

// Zero returns the zero PWaveModulus.
func (PWaveModulus) Zero() PWaveModulus { return PWaveModulus{} }

// IsentropicBulkModulus is an isotropic solid's volumetric stiffness at constant entropy, stored in pascals.
type IsentropicBulkModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewIsentropicBulkModulus returns a quantity of magnitude value expressed in unit u.
func NewIsentropicBulkModulus(value float64, u units.Pressure) IsentropicBulkModulus {
	return IsentropicBulkModulus{New(tensor.Scalar(value), u)}
}

func (b IsentropicBulkModulus) Add(o IsentropicBulkModulus) IsentropicBulkModulus { return IsentropicBulkModulus{b.Quantity.Add(o.Quantity)} }

func (b IsentropicBulkModulus) Sub(o IsentropicBulkModulus) IsentropicBulkModulus { return IsentropicBulkModulus{b.Quantity.Sub(o.Quantity)} }

func (b IsentropicBulkModulus) Mul(k float64) IsentropicBulkModulus { return IsentropicBulkModulus{b.Quantity.Scale(k)} }

func (b IsentropicBulkModulus) Div(k float64) IsentropicBulkModulus { return IsentropicBulkModulus{b.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (b IsentropicBulkModulus) Ratio(o IsentropicBulkModulus) float64 { return float64(b.value) / float64(o.value) }

func (b IsentropicBulkModulus) Equal(o IsentropicBulkModulus) bool { return b.Quantity.Equal(o.Quantity) }

func (b IsentropicBulkModulus) Less(o IsentropicBulkModulus) bool { return b.Quantity.Less(o.Quantity) }

// Zero returns the zero IsentropicBulkModulus.
func (IsentropicBulkModulus) Zero() IsentropicBulkModulus { return IsentropicBulkModulus{} }

// IsothermalBulkModulus is an isotropic solid's volumetric stiffness at constant temperature, stored in pascals.
type IsothermalBulkModulus struct {
	Quantity[tensor.Scalar, units.Pressure]
}

// NewIsothermalBulkModulus returns a quantity of magnitude value expressed in unit u.
func NewIsothermalBulkModulus(value float64, u units.Pressure) IsothermalBulkModulus {
	return IsothermalBulkModulus{New(tensor.Scalar(value), u)}
}

func (b IsothermalBulkModulus) Add(o IsothermalBulkModulus) IsothermalBulkModulus { return IsothermalBulkModulus{b.Quantity.Add(o.Quantity)} }

func (b IsothermalBulkModulus) Sub(o IsothermalBulkModulus) IsothermalBulkModulus { return IsothermalBulkModulus{b.Quantity.Sub(o.Quantity)} }

func (b IsothermalBulkModulus) Mul(k float64) IsothermalBulkModulus { return IsothermalBulkModulus{b.Quantity.Scale(k)} }

func (b IsothermalBulkModulus) Div(k float64) IsothermalBulkModulus { return IsothermalBulkModulus{b.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (b IsothermalBulkModulus) Ratio(o IsothermalBulkModulus) float64 { return float64(b.value) / float64(o.value) }

func (b IsothermalBulkModulus) Equal(o IsothermalBulkModulus) bool { return b.Quantity.Equal(o.Quantity) }

func (b IsothermalBulkModulus) Less(o IsothermalBulkModulus) bool { return b.Quantity.Less(o.Quantity) }

// Zero returns the zero IsothermalBulkModulus.
func (IsothermalBulkModulus) Zero() IsothermalBulkModulus { return IsothermalBulkModulus{} }

// PoissonRatio is the dimensionless negative ratio of transverse to
// axial strain.
type PoissonRatio struct {
	Dimensionless[tensor.Scalar]
}

// NewPoissonRatio returns a Poisson's ratio of the given magnitude.
func NewPoissonRatio(value float64) PoissonRatio {
	return PoissonRatio{NewDimensionless(tensor.Scalar(value))}
}

func (n PoissonRatio) Add(o PoissonRatio) PoissonRatio {
	return PoissonRatio{n.Dimensionless.Add(o.Dimensionless)}
}

func (n PoissonRatio) Sub(o PoissonRatio) PoissonRatio {
	return PoissonRatio{n.Dimensionless.Sub(o.Dimensionless)}
}

func (n PoissonRatio) Mul(k float64) PoissonRatio { return PoissonRatio{n.Dimensionless.Scale(k)} }

func (n PoissonRatio) Div(k float64) PoissonRatio { return PoissonRatio{n.Dimensionless.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (n PoissonRatio) Ratio(o PoissonRatio) float64 { return float64(n.value) / float64(o.value) }

func (n PoissonRatio) Equal(o PoissonRatio) bool { return n.Dimensionless.Equal(o.Dimensionless) }

func (n PoissonRatio) Less(o PoissonRatio) bool { return n.Dimensionless.Less(o.Dimensionless) }

// Zero returns the zero PoissonRatio.
func (PoissonRatio) Zero() PoissonRatio { return PoissonRatio{} }

// PoissonRatioFromYoungShear derives nu = E/(2G) - 1.
func PoissonRatioFromYoungShear(e YoungModulus, g ShearModulus) (PoissonRatio, error) {
	if g.IsZero() {
		return PoissonRatio{}, fmt.Errorf("mech: cannot divide %s by zero shear modulus %s", e, g)
	}
	return NewPoissonRatio(float64(e.value)/(2*float64(g.value)) - 1), nil
}

// YoungModulusFromShearPoisson derives E = 2G(1 + nu).
func YoungModulusFromShearPoisson(g ShearModulus, nu PoissonRatio) YoungModulus {
	return NewYoungModulus(2*float64(g.value)*(1+float64(nu.value)), units.Pascal)
}
