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
	"strings"
	"testing"

	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

const testTolerance = 1.e-12

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

func TestQuantityGroupLaws(t *testing.T) {
	a := NewLength(3, units.Metre)
	b := NewLength(200, units.Centimetre)
	if got, want := a.Add(b), NewLength(5, units.Metre); !got.Equal(want) {
		t.Errorf("Add = %v; want %v", got, want)
	}
	if got := a.Add(b).Sub(b); !got.Equal(a) {
		t.Errorf("Add then Sub must be the identity; got %v", got)
	}
	if got, want := a.Mul(2), NewLength(6, units.Metre); !got.Equal(want) {
		t.Errorf("Mul = %v; want %v", got, want)
	}
	if got := a.Mul(4).Div(4); !got.Equal(a) {
		t.Errorf("Mul then Div must be the identity; got %v", got)
	}
	if got, want := b.Ratio(a), 2.0/3.0; different(got, want, testTolerance) {
		t.Errorf("Ratio = %v; want %v", got, want)
	}
	if !a.Add(a.Zero()).Equal(a) {
		t.Error("adding the zero quantity must be the identity")
	}
	c := NewLength(7, units.Metre)
	if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
		t.Error("addition must be associative")
	}
	if !a.Sub(a).Equal(Length{}) {
		t.Error("a quantity minus itself must be zero")
	}
	if !b.Less(a) || a.Less(b) {
		t.Error("2 m must order below 3 m")
	}
}

func TestModulusConductivityArithmetic(t *testing.T) {
	k := NewIsentropicBulkModulus(76, units.Gigapascal)
	if got, want := k.Mul(2).Div(2), k; !got.Equal(want) {
		t.Errorf("bulk modulus Mul then Div = %v; want %v", got, want)
	}
	if got, want := k.Ratio(k.Mul(4)), 0.25; got != want {
		t.Errorf("bulk modulus Ratio = %v; want %v", got, want)
	}
	kt := NewIsothermalBulkModulus(76, units.Gigapascal)
	if got, want := kt.Mul(3).Sub(kt.Mul(2)), kt; !got.Equal(want) {
		t.Errorf("isothermal bulk modulus arithmetic = %v; want %v", got, want)
	}
	c := NewThermalConductivity(0.598, units.WattPerMetrePerKelvin)
	if got, want := c.Mul(2), c.Add(c); !got.Equal(want) {
		t.Errorf("conductivity Mul(2) = %v; want %v", got, want)
	}
	if got, want := c.Div(1), c; !got.Equal(want) {
		t.Errorf("conductivity Div(1) = %v; want %v", got, want)
	}
}

func TestStandardUnitStorage(t *testing.T) {
	p := NewPressure(1, units.Atmosphere)
	if got, want := float64(p.Value()), 101325.0; got != want {
		t.Errorf("standard value = %v; want %v", got, want)
	}
	if got := float64(p.In(units.Atmosphere)); different(got, 1, testTolerance) {
		t.Errorf("round trip = %v; want 1", got)
	}
	if got := float64(p.In(units.Kilopascal)); different(got, 101.325, testTolerance) {
		t.Errorf("kPa = %v; want 101.325", got)
	}
}

func TestSerializationShapes(t *testing.T) {
	a := NewAcceleration(1.11, units.MetrePerSquareSecond)
	cases := []struct {
		got, want string
	}{
		{a.String(), "1.110000000000000 m/s^2"},
		{a.JSON(), `{"value":1.110000000000000,"unit":"m/s^2"}`},
		{a.XML(), "<value>1.110000000000000</value><unit>m/s^2</unit>"},
		{a.YAML(), `{value:1.110000000000000,unit:"m/s^2"}`},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("case %d: got %q; want %q", i, c.got, c.want)
		}
	}

	// Constructed in a non-standard unit: renderings in that unit keep
	// the constructed value and abbreviation.
	b := NewAcceleration(1.11, units.FootPerSquareSecond)
	got := b.StringIn(units.FootPerSquareSecond)
	if !strings.HasSuffix(got, " ft/s^2") {
		t.Errorf("StringIn = %q; want an ft/s^2 suffix", got)
	}
	if v := float64(b.In(units.FootPerSquareSecond)); different(v, 1.11, testTolerance) {
		t.Errorf("In(ft/s^2) = %v; want 1.11", v)
	}

	s := NewStress(tensor.SymDyad{XX: 184, XY: 4, XZ: -8, YY: 120, YZ: -4, ZZ: 88}, units.Pascal)
	wantJSON := `{"value":{"xx":184.000000000000000,"xy":4.000000000000000,` +
		`"xz":-8.000000000000000,"yy":120.000000000000000,"yz":-4.000000000000000,` +
		`"zz":88.000000000000000},"unit":"Pa"}`
	if got := s.JSON(); got != wantJSON {
		t.Errorf("stress JSON = %q; want %q", got, wantJSON)
	}

	// Dimensionless scalars render bare numbers; dimensionless tensors
	// keep their component keys.
	re := NewReynoldsNumber(2300)
	if got, want := re.JSON(), "2300.000000000000000"; got != want {
		t.Errorf("Reynolds JSON = %q; want %q", got, want)
	}
	eps := NewStrain(tensor.SymDyad{XX: 1e-3})
	wantStrain := `{"xx":0.001000000000000,"xy":0.000000000000000,` +
		`"xz":0.000000000000000,"yy":0.000000000000000,"yz":0.000000000000000,` +
		`"zz":0.000000000000000}`
	if got := eps.JSON(); got != wantStrain {
		t.Errorf("strain JSON = %q; want %q", got, wantStrain)
	}
}

func TestStringIn(t *testing.T) {
	p := NewPressure(6894.757293168361, units.Pascal)
	if got, want := p.StringIn(units.PoundPerSquareInch), "1.000000000000000 psi"; got != want {
		t.Errorf("StringIn = %q; want %q", got, want)
	}
}

func TestHashEqualityCoherence(t *testing.T) {
	a := NewSpeed(5, units.MetrePerSecond)
	b := NewSpeed(18, units.KilometrePerHour)
	if !a.Equal(b) {
		t.Fatalf("5 m/s must equal 18 km/h")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal quantities must hash equally")
	}
	if c := NewSpeed(6, units.MetrePerSecond); a.Hash() == c.Hash() {
		t.Error("distinct speeds should not collide")
	}
	// Negative zero must hash like zero.
	neg := NewForce(0, units.Newton).Mul(-1)
	if neg.Hash() != (Force{}).Hash() {
		t.Error("negative zero must hash like zero")
	}
}
