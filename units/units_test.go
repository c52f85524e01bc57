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

package units

import (
	"math"
	"testing"

	"github.com/ctessum/unit"
)

const testTolerance = 1.e-12

// different reports whether a and b differ by more than the relative
// tolerance.
func different(a, b, tolerance float64) bool {
	if a == b {
		return false
	}
	return math.Abs(a-b) > tolerance*math.Max(math.Abs(a), math.Abs(b))
}

// sample values for round-trip checks: zero, one, a large magnitude, a
// small magnitude, and a negative value.
var roundTripSamples = []float64{0, 1, 6.02e23, 1.38e-23, -273.15}

func testFamily[U Unit[U]](t *testing.T, name string, us []U) {
	t.Run(name, func(t *testing.T) {
		var zero U
		std := zero.Standard()
		for _, x := range roundTripSamples {
			if got := std.ToStandard(x); got != x {
				t.Errorf("%v: ToStandard(%g) = %g; want exact identity", std, x, got)
			}
			if got := std.FromStandard(x); got != x {
				t.Errorf("%v: FromStandard(%g) = %g; want exact identity", std, x, got)
			}
		}
		seen := make(map[string]U)
		for _, u := range us {
			if u.Abbreviation() == "" {
				t.Errorf("%s: empty abbreviation for variant %v", name, u)
			}
			if prev, ok := seen[u.Abbreviation()]; ok && prev != u {
				t.Errorf("%s: abbreviation %q shared by %v and %v", name, u.Abbreviation(), prev, u)
			}
			seen[u.Abbreviation()] = u
			if !u.Dimensions().IsDimensionless() && u.Dimensions() != std.Dimensions() {
				t.Errorf("%v: dimensions %v differ from standard %v", u, u.Dimensions(), std.Dimensions())
			}
			for _, x := range roundTripSamples {
				got := u.FromStandard(u.ToStandard(x))
				if different(got, x, testTolerance) {
					t.Errorf("%v: round trip of %g gave %g", u, x, got)
				}
			}
		}
	})
}

func TestConversionRoundTrips(t *testing.T) {
	testFamily(t, "time", TimeUnits)
	testFamily(t, "frequency", FrequencyUnits)
	testFamily(t, "length", LengthUnits)
	testFamily(t, "area", AreaUnits)
	testFamily(t, "volume", VolumeUnits)
	testFamily(t, "volumeRate", VolumeRateUnits)
	testFamily(t, "angle", AngleUnits)
	testFamily(t, "mass", MassUnits)
	testFamily(t, "massDensity", MassDensityUnits)
	testFamily(t, "massRate", MassRateUnits)
	testFamily(t, "speed", SpeedUnits)
	testFamily(t, "acceleration", AccelerationUnits)
	testFamily(t, "force", ForceUnits)
	testFamily(t, "pressure", PressureUnits)
	testFamily(t, "energy", EnergyUnits)
	testFamily(t, "power", PowerUnits)
	testFamily(t, "temperature", TemperatureUnits)
	testFamily(t, "dynamicViscosity", DynamicViscosityUnits)
	testFamily(t, "diffusivity", DiffusivityUnits)
	testFamily(t, "specificHeatCapacity", SpecificHeatCapacityUnits)
	testFamily(t, "thermalConductivity", ThermalConductivityUnits)
}

// Conversion factors must compose as a group: converting A→standard→B
// must equal the direct A→B factor.
func TestConversionComposition(t *testing.T) {
	for _, a := range PressureUnits {
		for _, b := range PressureUnits {
			direct := pressureFactors[a] / pressureFactors[b]
			composed := b.FromStandard(a.ToStandard(1))
			if different(direct, composed, testTolerance) {
				t.Errorf("pressure %v→%v: composed factor %g, direct %g", a, b, composed, direct)
			}
		}
	}
}

func TestParseSpellings(t *testing.T) {
	cases := []struct {
		spelling string
		want     string // canonical abbreviation of the parsed unit
		parse    func(string) (string, error)
	}{
		{"pascals", "Pa", parsePressureAbbrev},
		{"N/m^2", "Pa", parsePressureAbbrev},
		{"N/m²", "Pa", parsePressureAbbrev},
		{"lbf/in^2", "psi", parsePressureAbbrev},
		{"N·s/m^2", "Pa·s", parseDynamicViscosityAbbrev},
		{"N*s/m^2", "Pa·s", parseDynamicViscosityAbbrev},
		{"kg/(m·s)", "Pa·s", parseDynamicViscosityAbbrev},
		{"centipoise", "cP", parseDynamicViscosityAbbrev},
		{"1/s", "Hz", parseFrequencyAbbrev},
		{"s^-1", "Hz", parseFrequencyAbbrev},
		{"meter", "m", parseLengthAbbrev},
		{"micron", "μm", parseLengthAbbrev},
		{"°", "deg", parseAngleAbbrev},
		{"sq ft", "ft^2", parseAreaAbbrev},
		{"cc", "mL", parseVolumeAbbrev},
		{"kelvins", "K", parseTemperatureAbbrev},
		{"cSt", "cSt", parseDiffusivityAbbrev},
	}
	for _, c := range cases {
		got, err := c.parse(c.spelling)
		if err != nil {
			t.Errorf("parse(%q): %v", c.spelling, err)
			continue
		}
		if got != c.want {
			t.Errorf("parse(%q) = %q; want %q", c.spelling, got, c.want)
		}
	}
}

func parsePressureAbbrev(s string) (string, error) {
	u, err := ParsePressure(s)
	return u.Abbreviation(), err
}

func parseDynamicViscosityAbbrev(s string) (string, error) {
	u, err := ParseDynamicViscosity(s)
	return u.Abbreviation(), err
}

func parseFrequencyAbbrev(s string) (string, error) {
	u, err := ParseFrequency(s)
	return u.Abbreviation(), err
}

func parseLengthAbbrev(s string) (string, error) {
	u, err := ParseLength(s)
	return u.Abbreviation(), err
}

func parseAngleAbbrev(s string) (string, error) {
	u, err := ParseAngle(s)
	return u.Abbreviation(), err
}

func parseAreaAbbrev(s string) (string, error) {
	u, err := ParseArea(s)
	return u.Abbreviation(), err
}

func parseVolumeAbbrev(s string) (string, error) {
	u, err := ParseVolume(s)
	return u.Abbreviation(), err
}

func parseTemperatureAbbrev(s string) (string, error) {
	u, err := ParseTemperature(s)
	return u.Abbreviation(), err
}

func parseDiffusivityAbbrev(s string) (string, error) {
	u, err := ParseDiffusivity(s)
	return u.Abbreviation(), err
}

func TestParseUnknownSpelling(t *testing.T) {
	if _, err := ParsePressure("furlongs per fortnight"); err == nil {
		t.Error("expected an error for an unrecognized pressure spelling")
	}
	if _, err := ParseLength(""); err == nil {
		t.Error("expected an error for an empty length spelling")
	}
	// Spellings are matched against an explicit table, not normalized.
	if _, err := ParsePressure("PASCALS"); err == nil {
		t.Error("expected an error: spelling lookup is not case-normalizing")
	}
}

func TestDimensionsString(t *testing.T) {
	cases := []struct {
		d    Dimensions
		want string
	}{
		{Dimensions{}, "1"},
		{Dimensions{Length: 1}, "m"},
		{Dimensions{Length: 1, Time: -1}, "m s^-1"},
		{Dimensions{Mass: 1, Length: -1, Time: -2}, "kg m^-1 s^-2"},
		{Dimensions{Mass: 1, Length: 1, Time: -3, Temperature: -1}, "m kg s^-3 K^-1"},
		{Dimensions{Substance: 1, Length: -3}, "mol m^-3"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("%#v.String() = %q; want %q", c.d, got, c.want)
		}
	}
}

func TestDimensionsSI(t *testing.T) {
	d, err := Pascal.Dimensions().SI()
	if err != nil {
		t.Fatal(err)
	}
	if !d.Matches(unit.Pascal) {
		t.Errorf("pressure SI dimensions = %v; want %v", d, unit.Pascal)
	}
	d, err = Hertz.Dimensions().SI()
	if err != nil {
		t.Fatal(err)
	}
	if !d.Matches(unit.Herz) {
		t.Errorf("frequency SI dimensions = %v; want %v", d, unit.Herz)
	}
	if _, err := (Dimensions{Substance: 1}).SI(); err == nil {
		t.Error("expected an error for a substance-amount exponent")
	}
}

func TestStandardUnitIsZeroValue(t *testing.T) {
	// Quantities rely on the zero value of each family being the
	// standard unit.
	if Time(0) != Second || Pressure(0) != Pascal || Frequency(0) != Hertz {
		t.Error("standard units must be the zero enum value")
	}
	if StandardGravity.Standard() != MetrePerSquareSecond {
		t.Error("Standard must return the family standard regardless of receiver")
	}
}
