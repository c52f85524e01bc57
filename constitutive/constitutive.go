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

// Package constitutive models how a material's stress relates to its
// strain and strain rate.
//
// Three material archetypes are provided: an elastic isotropic solid,
// whose stress depends on strain only, and incompressible and
// compressible Newtonian fluids, whose stress depends on strain rate
// only. Every model holds its material parameters fixed at
// construction and evaluates pure closed-form tensor formulas.
package constitutive

import (
	"fmt"

	"github.com/spatialmodel/mech"
)

// Type tags the material archetype of a Model.
type Type int

const (
	ElasticIsotropicSolidType Type = iota
	IncompressibleNewtonianFluidType
	CompressibleNewtonianFluidType
)

var typeNames = []string{
	"elastic_isotropic_solid",
	"incompressible_newtonian_fluid",
	"compressible_newtonian_fluid",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Model is a constitutive material law. The set of implementations is
// closed: ElasticIsotropicSolid, IncompressibleNewtonianFluid, and
// CompressibleNewtonianFluid.
type Model interface {
	// Type reports the material archetype.
	Type() Type

	// Stress evaluates the stress produced by strain and strain rate
	// together. A solid reads only the strain; a fluid reads only the
	// rate.
	Stress(strain mech.Strain, rate mech.StrainRate) mech.Stress

	// StressFromStrain evaluates the stress produced by strain alone.
	// Fluids return the zero stress.
	StressFromStrain(strain mech.Strain) mech.Stress

	// StressFromStrainRate evaluates the stress produced by strain
	// rate alone. Solids return the zero stress.
	StressFromStrainRate(rate mech.StrainRate) mech.Stress

	// Strain inverts the stress map back to a strain. Fluids return
	// the zero strain.
	Strain(stress mech.Stress) mech.Strain

	// StrainRate inverts the stress map back to a strain rate. Solids
	// return the zero rate.
	StrainRate(stress mech.Stress) mech.StrainRate

	fmt.Stringer

	// JSON renders the model as {"type":"…", parameters…}.
	JSON() string
	// XML renders the model with one tag per field.
	XML() string
	// YAML renders the model as a flow mapping.
	YAML() string

	isModel()
}
