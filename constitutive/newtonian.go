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

package constitutive

import (
	"github.com/spatialmodel/mech"
	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// IncompressibleNewtonianFluid is a viscous fluid whose deviatoric
// stress is linear in the strain rate. A zero viscosity yields IEEE
// specials on inversion, unguarded.
type IncompressibleNewtonianFluid struct {
	viscosity mech.DynamicViscosity
}

// Incompressible constructs the fluid from its dynamic viscosity μ.
func Incompressible(mu mech.DynamicViscosity) IncompressibleNewtonianFluid {
	return IncompressibleNewtonianFluid{viscosity: mu}
}

// DynamicViscosity returns the fluid's dynamic viscosity μ.
func (m IncompressibleNewtonianFluid) DynamicViscosity() mech.DynamicViscosity {
	return m.viscosity
}

func (IncompressibleNewtonianFluid) Type() Type { return IncompressibleNewtonianFluidType }

// Stress reads only the strain rate; the strain argument is ignored.
func (m IncompressibleNewtonianFluid) Stress(strain mech.Strain, rate mech.StrainRate) mech.Stress {
	return m.StressFromStrainRate(rate)
}

// StressFromStrain returns the zero stress: a fluid's stress does not
// depend on strain.
func (IncompressibleNewtonianFluid) StressFromStrain(strain mech.Strain) mech.Stress {
	return mech.Stress{}
}

// StressFromStrainRate evaluates σ = 2μr.
func (m IncompressibleNewtonianFluid) StressFromStrainRate(rate mech.StrainRate) mech.Stress {
	mu := float64(m.viscosity.Value())
	return mech.NewStress(rate.Value().Scale(2*mu), units.Pascal)
}

// Strain returns the zero strain: the stress carries no strain
// information.
func (IncompressibleNewtonianFluid) Strain(stress mech.Stress) mech.Strain {
	return mech.Strain{}
}

// StrainRate evaluates the inverse map r = σ/(2μ).
func (m IncompressibleNewtonianFluid) StrainRate(stress mech.Stress) mech.StrainRate {
	mu := float64(m.viscosity.Value())
	return mech.NewStrainRate(stress.Value().Scale(1/(2*mu)), units.Hertz)
}

func (m IncompressibleNewtonianFluid) String() string {
	return m.Type().String() + "{dynamic_viscosity: " + m.viscosity.String() + "}"
}

func (m IncompressibleNewtonianFluid) JSON() string {
	return `{"type":"` + m.Type().String() + `","dynamic_viscosity":` + m.viscosity.JSON() + `}`
}

func (m IncompressibleNewtonianFluid) XML() string {
	return "<type>" + m.Type().String() + "</type><dynamic_viscosity>" + m.viscosity.XML() +
		"</dynamic_viscosity>"
}

func (m IncompressibleNewtonianFluid) YAML() string {
	return `{type:"` + m.Type().String() + `",dynamic_viscosity:` + m.viscosity.YAML() + `}`
}

func (IncompressibleNewtonianFluid) isModel() {}

// CompressibleNewtonianFluid is a viscous fluid whose stress carries
// an additional volumetric term scaled by the bulk viscosity.
type CompressibleNewtonianFluid struct {
	viscosity mech.DynamicViscosity
	bulk      mech.BulkDynamicViscosity
}

// Compressible constructs the fluid from its dynamic viscosity μ and
// bulk dynamic viscosity μB.
func Compressible(mu mech.DynamicViscosity, bulk mech.BulkDynamicViscosity) CompressibleNewtonianFluid {
	return CompressibleNewtonianFluid{viscosity: mu, bulk: bulk}
}

// DynamicViscosity returns the fluid's dynamic viscosity μ.
func (m CompressibleNewtonianFluid) DynamicViscosity() mech.DynamicViscosity {
	return m.viscosity
}

// BulkDynamicViscosity returns the fluid's bulk dynamic viscosity μB.
func (m CompressibleNewtonianFluid) BulkDynamicViscosity() mech.BulkDynamicViscosity {
	return m.bulk
}

func (CompressibleNewtonianFluid) Type() Type { return CompressibleNewtonianFluidType }

// Stress reads only the strain rate; the strain argument is ignored.
func (m CompressibleNewtonianFluid) Stress(strain mech.Strain, rate mech.StrainRate) mech.Stress {
	return m.StressFromStrainRate(rate)
}

// StressFromStrain returns the zero stress: a fluid's stress does not
// depend on strain.
func (CompressibleNewtonianFluid) StressFromStrain(strain mech.Strain) mech.Stress {
	return mech.Stress{}
}

// StressFromStrainRate evaluates σ = 2μr + μB tr(r) I.
func (m CompressibleNewtonianFluid) StressFromStrainRate(rate mech.StrainRate) mech.Stress {
	mu := float64(m.viscosity.Value())
	mb := float64(m.bulk.Value())
	r := rate.Value()
	sigma := r.Scale(2 * mu).Add(tensor.SymIdentity().Scale(mb * r.Trace()))
	return mech.NewStress(sigma, units.Pascal)
}

// Strain returns the zero strain: the stress carries no strain
// information.
func (CompressibleNewtonianFluid) Strain(stress mech.Stress) mech.Strain {
	return mech.Strain{}
}

// StrainRate evaluates the inverse map
// r = σ/(2μ) - [μB/(2μ(2μ+3μB))] tr(σ) I.
func (m CompressibleNewtonianFluid) StrainRate(stress mech.Stress) mech.StrainRate {
	mu := float64(m.viscosity.Value())
	mb := float64(m.bulk.Value())
	sigma := stress.Value()
	r := sigma.Scale(1 / (2 * mu)).Sub(
		tensor.SymIdentity().Scale(mb / (2 * mu * (2*mu + 3*mb)) * sigma.Trace()))
	return mech.NewStrainRate(r, units.Hertz)
}

func (m CompressibleNewtonianFluid) String() string {
	return m.Type().String() + "{dynamic_viscosity: " + m.viscosity.String() +
		", bulk_dynamic_viscosity: " + m.bulk.String() + "}"
}

func (m CompressibleNewtonianFluid) JSON() string {
	return `{"type":"` + m.Type().String() + `","dynamic_viscosity":` + m.viscosity.JSON() +
		`,"bulk_dynamic_viscosity":` + m.bulk.JSON() + `}`
}

func (m CompressibleNewtonianFluid) XML() string {
	return "<type>" + m.Type().String() + "</type><dynamic_viscosity>" + m.viscosity.XML() +
		"</dynamic_viscosity><bulk_dynamic_viscosity>" + m.bulk.XML() +
		"</bulk_dynamic_viscosity>"
}

func (m CompressibleNewtonianFluid) YAML() string {
	return `{type:"` + m.Type().String() + `",dynamic_viscosity:` + m.viscosity.YAML() +
		`,bulk_dynamic_viscosity:` + m.bulk.YAML() + `}`
}

func (CompressibleNewtonianFluid) isModel() {}
