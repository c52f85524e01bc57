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

// Mass is an amount of matter, stored in kilograms.
type Mass struct {
	Quantity[tensor.Scalar, units.Mass]
}

// NewMass returns a quantity of magnitude value expressed in unit u.
func NewMass(value float64, u units.Mass) Mass {
	return Mass{New(tensor.Scalar(value), u)}
}

func (m Mass) Add(o Mass) Mass { return Mass{m.Quantity.Add(o.Quantity)} }

func (m Mass) Sub(o Mass) Mass { return Mass{m.Quantity.Sub(o.Quantity)} }

func (m Mass) Mul(k float64) Mass { return Mass{m.Quantity.Scale(k)} }

func (m Mass) Div(k float64) Mass { return Mass{m.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (m Mass) Ratio(o Mass) float64 { return float64(m.value) / float64(o.value) }

func (m Mass) Equal(o Mass) bool { return m.Quantity.Equal(o.Quantity) }

func (m Mass) Less(o Mass) bool { return m.Quantity.Less(o.Quantity) }

// Zero returns the zero Mass.
func (Mass) Zero() Mass { return Mass{} }

// MassDensity is mass per volume, stored in kilograms per cubic metre.
type MassDensity struct {
	Quantity[tensor.Scalar, units.MassDensity]
}

// NewMassDensity returns a quantity of magnitude value expressed in unit u.
func NewMassDensity(value float64, u units.MassDensity) MassDensity {
	return MassDensity{New(tensor.Scalar(value), u)}
}

func (d MassDensity) Add(o MassDensity) MassDensity { return MassDensity{d.Quantity.Add(o.Quantity)} }

func (d MassDensity) Sub(o MassDensity) MassDensity { return MassDensity{d.Quantity.Sub(o.Quantity)} }

func (d MassDensity) Mul(k float64) MassDensity { return MassDensity{d.Quantity.Scale(k)} }

func (d MassDensity) Div(k float64) MassDensity { return MassDensity{d.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (d MassDensity) Ratio(o MassDensity) float64 { return float64(d.value) / float64(o.value) }

func (d MassDensity) Equal(o MassDensity) bool { return d.Quantity.Equal(o.Quantity) }

func (d MassDensity) Less(o MassDensity) bool { return d.Quantity.Less(o.Quantity) }

// Zero returns the zero MassDensity.
func (MassDensity) Zero() MassDensity { return MassDensity{} }

// MassRate is a mass flow rate, stored in kilograms per second.
type MassRate struct {
	Quantity[tensor.Scalar, units.MassRate]
}

// NewMassRate returns a quantity of magnitude value expressed in unit u.
func NewMassRate(value float64, u units.MassRate) MassRate {
	return MassRate{New(tensor.Scalar(value), u)}
}

func (r MassRate) Add(o MassRate) MassRate { return MassRate{r.Quantity.Add(o.Quantity)} }

func (r MassRate) Sub(o MassRate) MassRate { return MassRate{r.Quantity.Sub(o.Quantity)} }

func (r MassRate) Mul(k float64) MassRate { return MassRate{r.Quantity.Scale(k)} }

func (r MassRate) Div(k float64) MassRate { return MassRate{r.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (r MassRate) Ratio(o MassRate) float64 { return float64(r.value) / float64(o.value) }

func (r MassRate) Equal(o MassRate) bool { return r.Quantity.Equal(o.Quantity) }

func (r MassRate) Less(o MassRate) bool { return r.Quantity.Less(o.Quantity) }

// Zero returns the zero MassRate.
func (MassRate) Zero() MassRate { return MassRate{} }

// VolumeRate is a volumetric flow rate, stored in cubic metres per second.
type VolumeRate struct {
	Quantity[tensor.Scalar, units.VolumeRate]
}

// NewVolumeRate returns a quantity of magnitude value expressed in unit u.
func NewVolumeRate(value float64, u units.VolumeRate) VolumeRate {
	return VolumeRate{New(tensor.Scalar(value), u)}
}

func (r VolumeRate) Add(o VolumeRate) VolumeRate { return VolumeRate{r.Quantity.Add(o.Quantity)} }

func (r VolumeRate) Sub(o VolumeRate) VolumeRate { return VolumeRate{r.Quantity.Sub(o.Quantity)} }

func (r VolumeRate) Mul(k float64) VolumeRate { return VolumeRate{r.Quantity.Scale(k)} }

func (r VolumeRate) Div(k float64) VolumeRate { return VolumeRate{r.Quantity.Div(k)} }

// Ratio returns the dimensionless quotient of two same-family
// quantities, with IEEE semantics for a zero divisor.
func (r VolumeRate) Ratio(o VolumeRate) float64 { return float64(r.value) / float64(o.value) }

func (r VolumeRate) Equal(o VolumeRate) bool { return r.Quantity.Equal(o.Quantity) }

func (r VolumeRate) Less(o VolumeRate) bool { return r.Quantity.Less(o.Quantity) }

// Zero returns the zero VolumeRate.
func (VolumeRate) Zero() VolumeRate { return VolumeRate{} }

// MassDensityFromMassVolume derives the density of mass m occupying
// volume v.
func MassDensityFromMassVolume(m Mass, v Volume) (MassDensity, error) {
	if v.IsZero() {
		return MassDensity{}, fmt.Errorf("mech: cannot divide %s by zero volume %s", m, v)
	}
	return NewMassDensity(float64(m.value)/float64(v.value), units.KilogramPerCubicMetre), nil
}

// MassFromDensityVolume derives the mass of volume v at density d.
func MassFromDensityVolume(d MassDensity, v Volume) Mass {
	return NewMass(float64(d.value)*float64(v.value), units.Kilogram)
}

// VolumeFromMassDensity derives the volume occupied by mass m at
// density d.
func VolumeFromMassDensity(m Mass, d MassDensity) (Volume, error) {
	if d.IsZero() {
		return Volume{}, fmt.Errorf("mech: cannot divide %s by zero density %s", m, d)
	}
	return NewVolume(float64(m.value)/float64(d.value), units.CubicMetre), nil
}

// MassRateFromMassTime derives the rate transferring mass m in
// duration d.
func MassRateFromMassTime(m Mass, d Time) (MassRate, error) {
	if d.IsZero() {
		return MassRate{}, fmt.Errorf("mech: cannot divide %s by zero duration %s", m, d)
	}
	return NewMassRate(float64(m.value)/float64(d.value), units.KilogramPerSecond), nil
}

// MassFromRateTime derives the mass transferred at rate r over
// duration d.
func MassFromRateTime(r MassRate, d Time) Mass {
	return NewMass(float64(r.value)*float64(d.value), units.Kilogram)
}

// TimeFromMassRate derives the duration needed to transfer mass m at
// rate r.
func TimeFromMassRate(m Mass, r MassRate) (Time, error) {
	if r.IsZero() {
		return Time{}, fmt.Errorf("mech: cannot divide %s by zero mass rate %s", m, r)
	}
	return NewTime(float64(m.value)/float64(r.value), units.Second), nil
}

// MassRateFromDensityVolumeRate derives the mass rate of a stream with
// density d flowing at volume rate q.
func MassRateFromDensityVolumeRate(d MassDensity, q VolumeRate) MassRate {
	return NewMassRate(float64(d.value)*float64(q.value), units.KilogramPerSecond)
}

// VolumeRateFromMassRateDensity derives the volume rate of a stream
// with mass rate r and density d.
func VolumeRateFromMassRateDensity(r MassRate, d MassDensity) (VolumeRate, error) {
	if d.IsZero() {
		return VolumeRate{}, fmt.Errorf("mech: cannot divide %s by zero density %s", r, d)
	}
	return NewVolumeRate(float64(r.value)/float64(d.value), units.CubicMetrePerSecond), nil
}
