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
	"testing"

	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

func TestSpeedLengthTime(t *testing.T) {
	l := NewLength(100, units.Metre)
	d := NewTime(8, units.Second)
	v, err := SpeedFromLengthTime(l, d)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewSpeed(12.5, units.MetrePerSecond); !v.Equal(want) {
		t.Errorf("speed = %v; want %v", v, want)
	}
	if back := LengthFromSpeedTime(v, d); !back.Equal(l) {
		t.Errorf("length = %v; want %v", back, l)
	}
	dBack, err := TimeFromLengthSpeed(l, v)
	if err != nil {
		t.Fatal(err)
	}
	if !dBack.Equal(d) {
		t.Errorf("time = %v; want %v", dBack, d)
	}
	if _, err := SpeedFromLengthTime(l, Time{}); err == nil {
		t.Error("a zero duration must be rejected")
	}
}

func TestFrequencyPeriodReciprocal(t *testing.T) {
	d := NewTime(8, units.Millisecond)
	f, err := FrequencyFromPeriod(d)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewFrequency(125, units.Hertz); !f.Equal(want) {
		t.Errorf("frequency = %v; want %v", f, want)
	}
	back, err := PeriodFromFrequency(f)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("period = %v; want %v", back, d)
	}
	if _, err := FrequencyFromPeriod(Time{}); err == nil {
		t.Error("a zero period must be rejected")
	}
}

func TestPressureForceArea(t *testing.T) {
	f := NewForce(600, units.Newton)
	a := NewArea(3, units.SquareMetre)
	p, err := PressureFromForceArea(f, a)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewPressure(200, units.Pascal); !p.Equal(want) {
		t.Errorf("pressure = %v; want %v", p, want)
	}
	if back := ForceFromPressureArea(p, a); !back.Equal(f) {
		t.Errorf("force = %v; want %v", back, f)
	}
	aBack, err := AreaFromForcePressure(f, p)
	if err != nil {
		t.Fatal(err)
	}
	if !aBack.Equal(a) {
		t.Errorf("area = %v; want %v", aBack, a)
	}
	if _, err := PressureFromForceArea(f, Area{}); err == nil {
		t.Error("a zero area must be rejected")
	}
}

func TestForceMassAcceleration(t *testing.T) {
	m := NewMass(2, units.Kilogram)
	g := NewAcceleration(1, units.StandardGravity)
	f := ForceFromMassAcceleration(m, g)
	if want := NewForce(2*9.80665, units.Newton); !f.Equal(want) {
		t.Errorf("force = %v; want %v", f, want)
	}
	mBack, err := MassFromForceAcceleration(f, g)
	if err != nil {
		t.Fatal(err)
	}
	if !mBack.Equal(m) {
		t.Errorf("mass = %v; want %v", mBack, m)
	}
}

func TestMassDensityVolume(t *testing.T) {
	rho := NewMassDensity(1000, units.KilogramPerCubicMetre)
	v := NewVolume(2, units.CubicMetre)
	m := MassFromDensityVolume(rho, v)
	if want := NewMass(2000, units.Kilogram); !m.Equal(want) {
		t.Errorf("mass = %v; want %v", m, want)
	}
	rhoBack, err := MassDensityFromMassVolume(m, v)
	if err != nil {
		t.Fatal(err)
	}
	if !rhoBack.Equal(rho) {
		t.Errorf("density = %v; want %v", rhoBack, rho)
	}
	vBack, err := VolumeFromMassDensity(m, rho)
	if err != nil {
		t.Fatal(err)
	}
	if !vBack.Equal(v) {
		t.Errorf("volume = %v; want %v", vBack, v)
	}
}

func TestViscosityDensityRelation(t *testing.T) {
	rho := NewMassDensity(1000, units.KilogramPerCubicMetre)
	nu := NewKinematicViscosity(1e-6, units.SquareMetrePerSecond)
	mu := DynamicViscosityFromKinematic(rho, nu)
	if got := float64(mu.Value()); different(got, 1e-3, testTolerance) {
		t.Errorf("dynamic viscosity = %v; want 1e-3", got)
	}
	nuBack, err := KinematicViscosityFromDynamic(mu, rho)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(nuBack.Value()), float64(nu.Value()), testTolerance) {
		t.Errorf("kinematic viscosity = %v; want %v", nuBack, nu)
	}
	rhoBack, err := MassDensityFromViscosities(mu, nu)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(rhoBack.Value()), float64(rho.Value()), testTolerance) {
		t.Errorf("density = %v; want %v", rhoBack, rho)
	}
}

func TestReynoldsNumber(t *testing.T) {
	rho := NewMassDensity(1000, units.KilogramPerCubicMetre)
	v := NewSpeed(2, units.MetrePerSecond)
	l := NewLength(0.05, units.Metre)
	mu := NewDynamicViscosity(1e-3, units.PascalSecond)

	re, err := ReynoldsNumberFromDynamic(rho, v, l, mu)
	if err != nil {
		t.Fatal(err)
	}
	if got := float64(re.Value()); different(got, 1e5, testTolerance) {
		t.Errorf("Re = %v; want 1e5", got)
	}
	nu, err := KinematicViscosityFromDynamic(mu, rho)
	if err != nil {
		t.Fatal(err)
	}
	re2, err := ReynoldsNumberFromKinematic(v, l, nu)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(re2.Value()), float64(re.Value()), testTolerance) {
		t.Errorf("kinematic Re = %v; want %v", re2.Value(), re.Value())
	}
	muBack, err := DynamicViscosityFromReynolds(rho, v, l, re)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(muBack.Value()), float64(mu.Value()), testTolerance) {
		t.Errorf("recovered viscosity = %v; want %v", muBack, mu)
	}
	vBack, err := SpeedFromReynolds(re2, nu, l)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(vBack.Value()), float64(v.Value()), testTolerance) {
		t.Errorf("recovered speed = %v; want %v", vBack, v)
	}
	lBack, err := LengthFromReynolds(re2, nu, v)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(lBack.Value()), float64(l.Value()), testTolerance) {
		t.Errorf("recovered length = %v; want %v", lBack, l)
	}
	if _, err := ReynoldsNumberFromDynamic(rho, v, l, DynamicViscosity{}); err == nil {
		t.Error("a zero viscosity must be rejected")
	}
}

func TestPrandtlNumber(t *testing.T) {
	// Water near room temperature.
	rho := NewMassDensity(998, units.KilogramPerCubicMetre)
	mu := NewDynamicViscosity(1.002e-3, units.PascalSecond)
	c := NewSpecificHeatCapacity(4182, units.JoulePerKilogramPerKelvin)
	k := NewThermalConductivity(0.598, units.WattPerMetrePerKelvin)

	pr, err := PrandtlNumberFromConductivity(c, mu, k)
	if err != nil {
		t.Fatal(err)
	}
	alpha, err := ThermalDiffusivityFromConductivity(k, rho, c)
	if err != nil {
		t.Fatal(err)
	}
	nu, err := KinematicViscosityFromDynamic(mu, rho)
	if err != nil {
		t.Fatal(err)
	}
	pr2, err := PrandtlNumberFromDiffusivities(nu, alpha)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(pr.Value()), float64(pr2.Value()), testTolerance) {
		t.Errorf("Pr mismatch: %v vs %v", pr.Value(), pr2.Value())
	}
	nuBack := KinematicViscosityFromPrandtl(pr2, alpha)
	if different(float64(nuBack.Value()), float64(nu.Value()), testTolerance) {
		t.Errorf("recovered nu = %v; want %v", nuBack, nu)
	}
	alphaBack, err := ThermalDiffusivityFromPrandtl(nu, pr2)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(alphaBack.Value()), float64(alpha.Value()), testTolerance) {
		t.Errorf("recovered alpha = %v; want %v", alphaBack, alpha)
	}
	kBack, err := ThermalConductivityFromPrandtl(c, mu, pr)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(kBack.Value()), float64(k.Value()), testTolerance) {
		t.Errorf("recovered k = %v; want %v", kBack, k)
	}
}

func TestStressPressureRelation(t *testing.T) {
	p := NewPressure(101325, units.Pascal)
	s := StressFromPressure(p)
	want := NewStress(tensor.SymDyad{XX: -101325, YY: -101325, ZZ: -101325}, units.Pascal)
	if !s.Equal(want) {
		t.Errorf("stress = %v; want %v", s, want)
	}
	if back := PressureFromStress(s); !back.Equal(p) {
		t.Errorf("pressure = %v; want %v", back, p)
	}
	if got, want := s.Trace(), p.Mul(-3); !got.Equal(want) {
		t.Errorf("trace = %v; want %v", got, want)
	}
}

func TestStrainRateFromStrainTime(t *testing.T) {
	eps := NewStrain(tensor.SymDyad{XX: 4e-3, XY: 0, XZ: 0, YY: 2e-3, YZ: 0, ZZ: -2e-3})
	d := NewTime(2, units.Second)
	r, err := StrainRateFromStrainTime(eps, d)
	if err != nil {
		t.Fatal(err)
	}
	want := NewStrainRate(tensor.SymDyad{XX: 2e-3, XY: 0, XZ: 0, YY: 1e-3, YZ: 0, ZZ: -1e-3}, units.Hertz)
	if !r.Equal(want) {
		t.Errorf("rate = %v; want %v", r, want)
	}
	if back := StrainFromRateTime(r, d); !back.Equal(eps) {
		t.Errorf("strain = %v; want %v", back, eps)
	}
	if _, err := StrainRateFromStrainTime(eps, Time{}); err == nil {
		t.Error("a zero duration must be rejected")
	}
}

func TestVectorQuantities(t *testing.T) {
	d := NewDisplacement(tensor.Vector{X: 30, Y: 0, Z: 40}, units.Metre)
	if got, want := d.Norm(), NewLength(50, units.Metre); !got.Equal(want) {
		t.Errorf("norm = %v; want %v", got, want)
	}
	dt := NewTime(10, units.Second)
	v, err := VelocityFromDisplacementTime(d, dt)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewVelocity(tensor.Vector{X: 3, Y: 0, Z: 4}, units.MetrePerSecond); !v.Equal(want) {
		t.Errorf("velocity = %v; want %v", v, want)
	}
	if got, want := SpeedFromVelocity(v), NewSpeed(5, units.MetrePerSecond); !got.Equal(want) {
		t.Errorf("speed = %v; want %v", got, want)
	}
	if back := DisplacementFromVelocityTime(v, dt); !back.Equal(d) {
		t.Errorf("displacement = %v; want %v", back, d)
	}

	m := NewMass(2, units.Kilogram)
	a := NewAccelerationVector(tensor.Vector{X: 0, Y: 0, Z: -9.80665}, units.MetrePerSquareSecond)
	f := ForceVectorFromMassAcceleration(m, a)
	if want := NewForceVector(tensor.Vector{X: 0, Y: 0, Z: -19.6133}, units.Newton); !f.Equal(want) {
		t.Errorf("force = %v; want %v", f, want)
	}
	aBack, err := AccelerationVectorFromForceMass(f, m)
	if err != nil {
		t.Fatal(err)
	}
	if !aBack.Equal(a) {
		t.Errorf("acceleration = %v; want %v", aBack, a)
	}
}

func TestEnergyPowerRelations(t *testing.T) {
	f := NewForce(10, units.Newton)
	l := NewLength(4, units.Metre)
	e := EnergyFromForceLength(f, l)
	if want := NewEnergy(40, units.Joule); !e.Equal(want) {
		t.Errorf("energy = %v; want %v", e, want)
	}
	d := NewTime(8, units.Second)
	p, err := PowerFromEnergyTime(e, d)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewPower(5, units.Watt); !p.Equal(want) {
		t.Errorf("power = %v; want %v", p, want)
	}
	if got := EnergyFromPowerTime(p, d); !got.Equal(e) {
		t.Errorf("energy back = %v; want %v", got, e)
	}
	freq, err := FrequencyFromPeriod(d)
	if err != nil {
		t.Fatal(err)
	}
	if got := PowerFromEnergyFrequency(e, freq); !got.Equal(p) {
		t.Errorf("power from frequency = %v; want %v", got, p)
	}
}

func TestElasticModulusRelations(t *testing.T) {
	g := NewShearModulus(26, units.Gigapascal)
	nu := NewPoissonRatio(0.33)
	e := YoungModulusFromShearPoisson(g, nu)
	if got := float64(e.Value()); different(got, 2*26e9*1.33, testTolerance) {
		t.Errorf("E = %v; want %v", got, 2*26e9*1.33)
	}
	nuBack, err := PoissonRatioFromYoungShear(e, g)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(nuBack.Value()), 0.33, testTolerance) {
		t.Errorf("nu = %v; want 0.33", nuBack.Value())
	}
	if _, err := PoissonRatioFromYoungShear(e, ShearModulus{}); err == nil {
		t.Error("a zero shear modulus must be rejected")
	}
}
