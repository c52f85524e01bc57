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
	"math"

	"github.com/spatialmodel/mech"
	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// ElasticIsotropicSolid is a linear elastic isotropic material. It is
// canonically parameterized by the shear modulus G and Lamé's first
// modulus λ; every other classical modulus pair is converted to (G, λ)
// at construction. Degenerate parameter pairs yield IEEE infinities or
// NaNs, unguarded.
type ElasticIsotropicSolid struct {
	shear mech.ShearModulus
	lame  mech.LameFirstModulus
}

func newElastic(g, l float64) ElasticIsotropicSolid {
	return ElasticIsotropicSolid{
		shear: mech.NewShearModulus(g, units.Pascal),
		lame:  mech.NewLameFirstModulus(l, units.Pascal),
	}
}

// ElasticFromLameShear constructs the solid from its canonical
// parameters.
func ElasticFromLameShear(l mech.LameFirstModulus, g mech.ShearModulus) ElasticIsotropicSolid {
	return ElasticIsotropicSolid{shear: g, lame: l}
}

// ElasticFromBulkYoung constructs the solid from the bulk modulus K
// and Young's modulus E.
func ElasticFromBulkYoung(k mech.IsentropicBulkModulus, e mech.YoungModulus) ElasticIsotropicSolid {
	kv := float64(k.Value())
	ev := float64(e.Value())
	return newElastic(3*kv*ev/(9*kv-ev), 3*kv*(3*kv-ev)/(9*kv-ev))
}

// ElasticFromBulkLame constructs the solid from the bulk modulus K and
// Lamé's first modulus λ.
func ElasticFromBulkLame(k mech.IsentropicBulkModulus, l mech.LameFirstModulus) ElasticIsotropicSolid {
	kv := float64(k.Value())
	lv := float64(l.Value())
	return newElastic(3*(kv-lv)/2, lv)
}

// ElasticFromBulkShear constructs the solid from the bulk modulus K
// and the shear modulus G.
func ElasticFromBulkShear(k mech.IsentropicBulkModulus, g mech.ShearModulus) ElasticIsotropicSolid {
	kv := float64(k.Value())
	gv := float64(g.Value())
	return newElastic(gv, kv-2*gv/3)
}

// ElasticFromBulkPoisson constructs the solid from the bulk modulus K
// and Poisson's ratio ν.
func ElasticFromBulkPoisson(k mech.IsentropicBulkModulus, nu mech.PoissonRatio) ElasticIsotropicSolid {
	kv := float64(k.Value())
	nv := float64(nu.Value())
	return newElastic(3*kv*(1-2*nv)/(2*(1+nv)), 3*kv*nv/(1+nv))
}

// ElasticFromBulkPWave constructs the solid from the bulk modulus K
// and the P-wave modulus M.
func ElasticFromBulkPWave(k mech.IsentropicBulkModulus, m mech.PWaveModulus) ElasticIsotropicSolid {
	kv := float64(k.Value())
	mv := float64(m.Value())
	return newElastic(3*(mv-kv)/4, (3*kv-mv)/2)
}

// ElasticFromYoungLame constructs the solid from Young's modulus E and
// Lamé's first modulus λ.
func ElasticFromYoungLame(e mech.YoungModulus, l mech.LameFirstModulus) ElasticIsotropicSolid {
	ev := float64(e.Value())
	lv := float64(l.Value())
	r := math.Sqrt(ev*ev + 9*lv*lv + 2*ev*lv)
	return newElastic((ev-3*lv+r)/4, lv)
}

// ElasticFromYoungShear constructs the solid from Young's modulus E
// and the shear modulus G.
func ElasticFromYoungShear(e mech.YoungModulus, g mech.ShearModulus) ElasticIsotropicSolid {
	ev := float64(e.Value())
	gv := float64(g.Value())
	return newElastic(gv, gv*(ev-2*gv)/(3*gv-ev))
}

// ElasticFromYoungPoisson constructs the solid from Young's modulus E
// and Poisson's ratio ν.
func ElasticFromYoungPoisson(e mech.YoungModulus, nu mech.PoissonRatio) ElasticIsotropicSolid {
	ev := float64(e.Value())
	nv := float64(nu.Value())
	return newElastic(ev/(2*(1+nv)), ev*nv/((1+nv)*(1-2*nv)))
}

// ElasticFromYoungPWave constructs the solid from Young's modulus E
// and the P-wave modulus M.
func ElasticFromYoungPWave(e mech.YoungModulus, m mech.PWaveModulus) ElasticIsotropicSolid {
	ev := float64(e.Value())
	mv := float64(m.Value())
	s := math.Sqrt(ev*ev + 9*mv*mv - 10*ev*mv)
	return newElastic((3*mv+ev-s)/8, (mv-ev+s)/4)
}

// ElasticFromLamePoisson constructs the solid from Lamé's first
// modulus λ and Poisson's ratio ν.
func ElasticFromLamePoisson(l mech.LameFirstModulus, nu mech.PoissonRatio) ElasticIsotropicSolid {
	lv := float64(l.Value())
	nv := float64(nu.Value())
	return newElastic(lv*(1-2*nv)/(2*nv), lv)
}

// ElasticFromLamePWave constructs the solid from Lamé's first modulus
// λ and the P-wave modulus M.
func ElasticFromLamePWave(l mech.LameFirstModulus, m mech.PWaveModulus) ElasticIsotropicSolid {
	lv := float64(l.Value())
	mv := float64(m.Value())
	return newElastic((mv-lv)/2, lv)
}

// ElasticFromShearPoisson constructs the solid from the shear modulus
// G and Poisson's ratio ν.
func ElasticFromShearPoisson(g mech.ShearModulus, nu mech.PoissonRatio) ElasticIsotropicSolid {
	gv := float64(g.Value())
	nv := float64(nu.Value())
	return newElastic(gv, 2*gv*nv/(1-2*nv))
}

// ElasticFromShearPWave constructs the solid from the shear modulus G
// and the P-wave modulus M.
func ElasticFromShearPWave(g mech.ShearModulus, m mech.PWaveModulus) ElasticIsotropicSolid {
	gv := float64(g.Value())
	mv := float64(m.Value())
	return newElastic(gv, mv-2*gv)
}

// ElasticFromPoissonPWave constructs the solid from Poisson's ratio ν
// and the P-wave modulus M.
func ElasticFromPoissonPWave(nu mech.PoissonRatio, m mech.PWaveModulus) ElasticIsotropicSolid {
	nv := float64(nu.Value())
	mv := float64(m.Value())
	return newElastic(mv*(1-2*nv)/(2*(1-nv)), mv*nv/(1-nv))
}

// ShearModulus returns the canonical shear modulus G.
func (m ElasticIsotropicSolid) ShearModulus() mech.ShearModulus { return m.shear }

// LameFirstModulus returns the canonical Lamé's first modulus λ.
func (m ElasticIsotropicSolid) LameFirstModulus() mech.LameFirstModulus { return m.lame }

// YoungModulus returns E = G(3λ+2G)/(λ+G).
func (m ElasticIsotropicSolid) YoungModulus() mech.YoungModulus {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	return mech.NewYoungModulus(g*(3*l+2*g)/(l+g), units.Pascal)
}

// PoissonRatio returns ν = λ/(2(λ+G)).
func (m ElasticIsotropicSolid) PoissonRatio() mech.PoissonRatio {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	return mech.NewPoissonRatio(l / (2 * (l + g)))
}

// PWaveModulus returns M = λ+2G.
func (m ElasticIsotropicSolid) PWaveModulus() mech.PWaveModulus {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	return mech.NewPWaveModulus(l+2*g, units.Pascal)
}

// BulkModulus returns K = λ+2G/3.
func (m ElasticIsotropicSolid) BulkModulus() mech.IsentropicBulkModulus {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	return mech.NewIsentropicBulkModulus(l+2*g/3, units.Pascal)
}

// IsothermalBulkModulus returns the same K=λ+2G/3 typed as an
// isothermal modulus; the two coincide for an ideal elastic solid.
func (m ElasticIsotropicSolid) IsothermalBulkModulus() mech.IsothermalBulkModulus {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	return mech.NewIsothermalBulkModulus(l+2*g/3, units.Pascal)
}

func (ElasticIsotropicSolid) Type() Type { return ElasticIsotropicSolidType }

// Stress reads only the strain; the rate argument is ignored.
func (m ElasticIsotropicSolid) Stress(strain mech.Strain, rate mech.StrainRate) mech.Stress {
	return m.StressFromStrain(strain)
}

// StressFromStrain evaluates σ = 2Gε + λ tr(ε) I.
func (m ElasticIsotropicSolid) StressFromStrain(strain mech.Strain) mech.Stress {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	eps := strain.Value()
	sigma := eps.Scale(2 * g).Add(tensor.SymIdentity().Scale(l * eps.Trace()))
	return mech.NewStress(sigma, units.Pascal)
}

// StressFromStrainRate returns the zero stress: an elastic solid's
// stress does not depend on strain rate.
func (ElasticIsotropicSolid) StressFromStrainRate(rate mech.StrainRate) mech.Stress {
	return mech.Stress{}
}

// Strain evaluates the inverse map
// ε = σ/(2G) - [λ/(2G(2G+3λ))] tr(σ) I.
func (m ElasticIsotropicSolid) Strain(stress mech.Stress) mech.Strain {
	g := float64(m.shear.Value())
	l := float64(m.lame.Value())
	sigma := stress.Value()
	eps := sigma.Scale(1 / (2 * g)).Sub(
		tensor.SymIdentity().Scale(l / (2 * g * (2*g + 3*l)) * sigma.Trace()))
	return mech.NewStrain(eps)
}

// StrainRate returns the zero rate: an elastic solid's stress carries
// no strain-rate information.
func (ElasticIsotropicSolid) StrainRate(stress mech.Stress) mech.StrainRate {
	return mech.StrainRate{}
}

func (m ElasticIsotropicSolid) String() string {
	return m.Type().String() + "{shear_modulus: " + m.shear.String() +
		", lame_first_modulus: " + m.lame.String() + "}"
}

func (m ElasticIsotropicSolid) JSON() string {
	return `{"type":"` + m.Type().String() + `","shear_modulus":` + m.shear.JSON() +
		`,"lame_first_modulus":` + m.lame.JSON() + `}`
}

func (m ElasticIsotropicSolid) XML() string {
	return "<type>" + m.Type().String() + "</type><shear_modulus>" + m.shear.XML() +
		"</shear_modulus><lame_first_modulus>" + m.lame.XML() + "</lame_first_modulus>"
}

func (m ElasticIsotropicSolid) YAML() string {
	return `{type:"` + m.Type().String() + `",shear_modulus:` + m.shear.YAML() +
		`,lame_first_modulus:` + m.lame.YAML() + `}`
}

func (ElasticIsotropicSolid) isModel() {}
