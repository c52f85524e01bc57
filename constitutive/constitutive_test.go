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
	"testing"

	"github.com/spatialmodel/mech"
	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

const testTolerance = 1.e-9

func different(a, b, tolerance float64) bool {
	if 2*abs(a-b)/abs(a+b) > tolerance && abs(a-b) > tolerance {
		return true
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Aluminum.
func aluminum() ElasticIsotropicSolid {
	return ElasticFromYoungPoisson(
		mech.NewYoungModulus(68.9, units.Gigapascal),
		mech.NewPoissonRatio(0.33),
	)
}

func TestElasticModulusPairEquivalence(t *testing.T) {
	ref := aluminum()
	k := ref.BulkModulus()
	e := ref.YoungModulus()
	l := ref.LameFirstModulus()
	g := ref.ShearModulus()
	nu := ref.PoissonRatio()
	m := ref.PWaveModulus()

	models := map[string]ElasticIsotropicSolid{
		"bulk/young":    ElasticFromBulkYoung(k, e),
		"bulk/lame":     ElasticFromBulkLame(k, l),
		"bulk/shear":    ElasticFromBulkShear(k, g),
		"bulk/poisson":  ElasticFromBulkPoisson(k, nu),
		"bulk/pwave":    ElasticFromBulkPWave(k, m),
		"young/lame":    ElasticFromYoungLame(e, l),
		"young/shear":   ElasticFromYoungShear(e, g),
		"young/poisson": ElasticFromYoungPoisson(e, nu),
		"young/pwave":   ElasticFromYoungPWave(e, m),
		"lame/shear":    ElasticFromLameShear(l, g),
		"lame/poisson":  ElasticFromLamePoisson(l, nu),
		"lame/pwave":    ElasticFromLamePWave(l, m),
		"shear/poisson": ElasticFromShearPoisson(g, nu),
		"shear/pwave":   ElasticFromShearPWave(g, m),
		"poisson/pwave": ElasticFromPoissonPWave(nu, m),
	}
	wantG := float64(ref.ShearModulus().Value())
	wantL := float64(ref.LameFirstModulus().Value())
	for name, model := range models {
		if gotG := float64(model.ShearModulus().Value()); different(gotG, wantG, testTolerance) {
			t.Errorf("%s: shear modulus = %g; want %g", name, gotG, wantG)
		}
		if gotL := float64(model.LameFirstModulus().Value()); different(gotL, wantL, testTolerance) {
			t.Errorf("%s: Lamé's first modulus = %g; want %g", name, gotL, wantL)
		}
	}
}

func TestElasticForwardInverse(t *testing.T) {
	model := aluminum()
	strain := mech.NewStrain(tensor.SymDyad{XX: 1e-3, XY: 2e-4, XZ: -5e-5, YY: 7e-4, YZ: -1e-4, ZZ: 3e-4})
	back := model.Strain(model.StressFromStrain(strain))
	got := back.Value().Components()
	want := strain.Value().Components()
	for i := range want {
		if different(got[i], want[i], testTolerance) {
			t.Errorf("component %d: recovered strain %g; want %g", i, got[i], want[i])
		}
	}
}

func TestElasticStressValue(t *testing.T) {
	// G = 1 Pa, λ = 1 Pa: σ = 2ε + tr(ε)I.
	model := ElasticFromLameShear(
		mech.NewLameFirstModulus(1, units.Pascal),
		mech.NewShearModulus(1, units.Pascal),
	)
	strain := mech.NewStrain(tensor.SymDyad{XX: 1, XY: 2, XZ: 3, YY: 4, YZ: 5, ZZ: 6})
	want := mech.NewStress(tensor.SymDyad{XX: 13, XY: 4, XZ: 6, YY: 19, YZ: 10, ZZ: 23}, units.Pascal)
	if got := model.StressFromStrain(strain); !got.Equal(want) {
		t.Errorf("stress = %v; want %v", got, want)
	}
}

func TestCrossZero(t *testing.T) {
	strain := mech.NewStrain(tensor.SymDyad{XX: 1e-3, XY: 0, XZ: 0, YY: 1e-3, YZ: 0, ZZ: 1e-3})
	rate := mech.NewStrainRate(tensor.SymDyad{XX: 1, XY: 0, XZ: 0, YY: 1, YZ: 0, ZZ: 1}, units.Hertz)
	stress := mech.NewStress(tensor.SymDyad{XX: 1, XY: 0, XZ: 0, YY: 1, YZ: 0, ZZ: 1}, units.Pascal)

	solid := aluminum()
	if got := solid.StressFromStrainRate(rate); !got.Equal(mech.Stress{}) {
		t.Errorf("solid stress from rate = %v; want zero", got)
	}
	if got := solid.StrainRate(stress); !got.Equal(mech.StrainRate{}) {
		t.Errorf("solid rate from stress = %v; want zero", got)
	}

	fluids := []Model{
		Incompressible(mech.NewDynamicViscosity(2, units.PascalSecond)),
		Compressible(
			mech.NewDynamicViscosity(2, units.PascalSecond),
			mech.NewBulkDynamicViscosity(1, units.PascalSecond),
		),
	}
	for _, fluid := range fluids {
		if got := fluid.StressFromStrain(strain); !got.Equal(mech.Stress{}) {
			t.Errorf("%v stress from strain = %v; want zero", fluid.Type(), got)
		}
		if got := fluid.Strain(stress); !got.Equal(mech.Strain{}) {
			t.Errorf("%v strain from stress = %v; want zero", fluid.Type(), got)
		}
		// The combined form must read only the rate.
		if got, want := fluid.Stress(strain, rate), fluid.StressFromStrainRate(rate); !got.Equal(want) {
			t.Errorf("%v combined stress = %v; want %v", fluid.Type(), got, want)
		}
	}
	if got, want := solid.Stress(strain, rate), solid.StressFromStrain(strain); !got.Equal(want) {
		t.Errorf("solid combined stress = %v; want %v", got, want)
	}
}

func TestIncompressibleFluid(t *testing.T) {
	model := Incompressible(mech.NewDynamicViscosity(2, units.PascalSecond))
	rate := mech.NewStrainRate(tensor.SymDyad{XX: 32, XY: 1, XZ: -2, YY: 16, YZ: -1, ZZ: 8}, units.Hertz)
	want := mech.NewStress(tensor.SymDyad{XX: 128, XY: 4, XZ: -8, YY: 64, YZ: -4, ZZ: 32}, units.Pascal)
	got := model.StressFromStrainRate(rate)
	if !got.Equal(want) {
		t.Errorf("stress = %v; want %v", got, want)
	}
	if back := model.StrainRate(got); !back.Equal(rate) {
		t.Errorf("recovered rate = %v; want %v", back, rate)
	}
}

func TestCompressibleFluidEndToEnd(t *testing.T) {
	model := Compressible(
		mech.NewDynamicViscosity(2, units.PascalSecond),
		mech.NewBulkDynamicViscosity(1, units.PascalSecond),
	)
	rate := mech.NewStrainRate(tensor.SymDyad{XX: 32, XY: 1, XZ: -2, YY: 16, YZ: -1, ZZ: 8}, units.Hertz)
	want := mech.NewStress(tensor.SymDyad{XX: 184, XY: 4, XZ: -8, YY: 120, YZ: -4, ZZ: 88}, units.Pascal)
	got := model.StressFromStrainRate(rate)
	if !got.Equal(want) {
		t.Errorf("stress = %v; want %v", got, want)
	}
	if back := model.StrainRate(got); !back.Equal(rate) {
		t.Errorf("recovered rate = %v; want %v", back, rate)
	}
}

func TestTypeNames(t *testing.T) {
	cases := []struct {
		model Model
		want  string
	}{
		{aluminum(), "elastic_isotropic_solid"},
		{Incompressible(mech.NewDynamicViscosity(1, units.PascalSecond)), "incompressible_newtonian_fluid"},
		{Compressible(
			mech.NewDynamicViscosity(1, units.PascalSecond),
			mech.NewBulkDynamicViscosity(1, units.PascalSecond),
		), "compressible_newtonian_fluid"},
	}
	for _, c := range cases {
		if got := c.model.Type().String(); got != c.want {
			t.Errorf("Type = %q; want %q", got, c.want)
		}
	}
}

func TestModelSerialization(t *testing.T) {
	fluid := Incompressible(mech.NewDynamicViscosity(2, units.PascalSecond))
	wantJSON := `{"type":"incompressible_newtonian_fluid",` +
		`"dynamic_viscosity":{"value":2.000000000000000,"unit":"Pa·s"}}`
	if got := fluid.JSON(); got != wantJSON {
		t.Errorf("JSON = %q; want %q", got, wantJSON)
	}
	wantYAML := `{type:"incompressible_newtonian_fluid",` +
		`dynamic_viscosity:{value:2.000000000000000,unit:"Pa·s"}}`
	if got := fluid.YAML(); got != wantYAML {
		t.Errorf("YAML = %q; want %q", got, wantYAML)
	}
	wantXML := "<type>incompressible_newtonian_fluid</type>" +
		"<dynamic_viscosity><value>2.000000000000000</value><unit>Pa·s</unit></dynamic_viscosity>"
	if got := fluid.XML(); got != wantXML {
		t.Errorf("XML = %q; want %q", got, wantXML)
	}

	solid := ElasticFromLameShear(
		mech.NewLameFirstModulus(1, units.Pascal),
		mech.NewShearModulus(2, units.Pascal),
	)
	wantString := "elastic_isotropic_solid{shear_modulus: 2.000000000000000 Pa, " +
		"lame_first_modulus: 1.000000000000000 Pa}"
	if got := solid.String(); got != wantString {
		t.Errorf("String = %q; want %q", got, wantString)
	}
}
