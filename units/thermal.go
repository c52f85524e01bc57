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

import "fmt"

// Temperature is a unit of absolute temperature. The standard unit is
// the kelvin. Only pure-scale units are registered; offset units such
// as degrees Celsius are outside this registry's contract.
type Temperature int

const (
	Kelvin Temperature = iota
	Rankine
)

// TemperatureUnits lists every temperature unit variant.
var TemperatureUnits = []Temperature{Kelvin, Rankine}

var temperatureAbbreviations = []string{"K", "°R"}

var temperatureFactors = []float64{1, 5.0 / 9.0}

var temperatureSpellings = map[string]Temperature{
	"K":       Kelvin,
	"kelvin":  Kelvin,
	"kelvins": Kelvin,
	"°R":      Rankine,
	"R":       Rankine,
	"degR":    Rankine,
	"rankine": Rankine,
}

func (u Temperature) Abbreviation() string { return temperatureAbbreviations[u] }

func (u Temperature) String() string { return u.Abbreviation() }

// Dimensions returns the temperature dimension signature.
func (Temperature) Dimensions() Dimensions { return Dimensions{Temperature: 1} }

// ToStandard converts x from u to kelvins.
func (u Temperature) ToStandard(x float64) float64 { return x * temperatureFactors[u] }

// FromStandard converts x from kelvins to u.
func (u Temperature) FromStandard(x float64) float64 { return x / temperatureFactors[u] }

// Standard returns the kelvin.
func (Temperature) Standard() Temperature { return Kelvin }

// ParseTemperature returns the temperature unit named by s.
func ParseTemperature(s string) (Temperature, error) {
	u, ok := temperatureSpellings[s]
	if !ok {
		return Kelvin, fmt.Errorf("units: unrecognized temperature unit %q", s)
	}
	return u, nil
}

// SpecificHeatCapacity is a unit of specific heat capacity. The
// standard unit is the joule per kilogram per kelvin.
type SpecificHeatCapacity int

const (
	JoulePerKilogramPerKelvin SpecificHeatCapacity = iota
	KilojoulePerKilogramPerKelvin
	NanojoulePerGramPerKelvin
	FootPoundPerSlugPerRankine
)

// SpecificHeatCapacityUnits lists every specific heat capacity unit
// variant.
var SpecificHeatCapacityUnits = []SpecificHeatCapacity{
	JoulePerKilogramPerKelvin, KilojoulePerKilogramPerKelvin,
	NanojoulePerGramPerKelvin, FootPoundPerSlugPerRankine,
}

var specificHeatCapacityAbbreviations = []string{
	"J/(kg·K)", "kJ/(kg·K)", "nJ/(g·K)", "ft·lbf/(slug·°R)",
}

var specificHeatCapacityFactors = []float64{1, 1e3, 1e-6, 0.167225472}

var specificHeatCapacitySpellings = map[string]SpecificHeatCapacity{
	"J/(kg·K)":         JoulePerKilogramPerKelvin,
	"J/(kg*K)":         JoulePerKilogramPerKelvin,
	"J/kg/K":           JoulePerKilogramPerKelvin,
	"m^2/(s^2·K)":      JoulePerKilogramPerKelvin,
	"kJ/(kg·K)":        KilojoulePerKilogramPerKelvin,
	"kJ/(kg*K)":        KilojoulePerKilogramPerKelvin,
	"kJ/kg/K":          KilojoulePerKilogramPerKelvin,
	"nJ/(g·K)":         NanojoulePerGramPerKelvin,
	"nJ/(g*K)":         NanojoulePerGramPerKelvin,
	"nJ/g/K":           NanojoulePerGramPerKelvin,
	"ft·lbf/(slug·°R)": FootPoundPerSlugPerRankine,
	"ft*lbf/(slug*R)":  FootPoundPerSlugPerRankine,
	"ft·lbf/slug/°R":   FootPoundPerSlugPerRankine,
}

func (u SpecificHeatCapacity) Abbreviation() string {
	return specificHeatCapacityAbbreviations[u]
}

func (u SpecificHeatCapacity) String() string { return u.Abbreviation() }

// Dimensions returns the specific heat capacity dimension signature.
func (SpecificHeatCapacity) Dimensions() Dimensions {
	return Dimensions{Length: 2, Time: -2, Temperature: -1}
}

// ToStandard converts x from u to joules per kilogram per kelvin.
func (u SpecificHeatCapacity) ToStandard(x float64) float64 {
	return x * specificHeatCapacityFactors[u]
}

// FromStandard converts x from joules per kilogram per kelvin to u.
func (u SpecificHeatCapacity) FromStandard(x float64) float64 {
	return x / specificHeatCapacityFactors[u]
}

// Standard returns the joule per kilogram per kelvin.
func (SpecificHeatCapacity) Standard() SpecificHeatCapacity {
	return JoulePerKilogramPerKelvin
}

// ParseSpecificHeatCapacity returns the specific heat capacity unit
// named by s.
func ParseSpecificHeatCapacity(s string) (SpecificHeatCapacity, error) {
	u, ok := specificHeatCapacitySpellings[s]
	if !ok {
		return JoulePerKilogramPerKelvin, fmt.Errorf("units: unrecognized specific heat capacity unit %q", s)
	}
	return u, nil
}

// ThermalConductivity is a unit of thermal conductivity. The standard
// unit is the watt per metre per kelvin.
type ThermalConductivity int

const (
	WattPerMetrePerKelvin ThermalConductivity = iota
	NanowattPerMillimetrePerKelvin
	PoundPerSecondPerRankine
)

// ThermalConductivityUnits lists every thermal conductivity unit
// variant.
var ThermalConductivityUnits = []ThermalConductivity{
	WattPerMetrePerKelvin, NanowattPerMillimetrePerKelvin,
	PoundPerSecondPerRankine,
}

var thermalConductivityAbbreviations = []string{
	"W/(m·K)", "nW/(mm·K)", "lbf/(s·°R)",
}

var thermalConductivityFactors = []float64{1, 1e-6, 8.0067989074689}

var thermalConductivitySpellings = map[string]ThermalConductivity{
	"W/(m·K)":    WattPerMetrePerKelvin,
	"W/(m*K)":    WattPerMetrePerKelvin,
	"W/m/K":      WattPerMetrePerKelvin,
	"nW/(mm·K)":  NanowattPerMillimetrePerKelvin,
	"nW/(mm*K)":  NanowattPerMillimetrePerKelvin,
	"nW/mm/K":    NanowattPerMillimetrePerKelvin,
	"lbf/(s·°R)": PoundPerSecondPerRankine,
	"lbf/(s*R)":  PoundPerSecondPerRankine,
	"lbf/s/°R":   PoundPerSecondPerRankine,
}

func (u ThermalConductivity) Abbreviation() string {
	return thermalConductivityAbbreviations[u]
}

func (u ThermalConductivity) String() string { return u.Abbreviation() }

// Dimensions returns the thermal conductivity dimension signature.
func (ThermalConductivity) Dimensions() Dimensions {
	return Dimensions{Mass: 1, Length: 1, Time: -3, Temperature: -1}
}

// ToStandard converts x from u to watts per metre per kelvin.
func (u ThermalConductivity) ToStandard(x float64) float64 {
	return x * thermalConductivityFactors[u]
}

// FromStandard converts x from watts per metre per kelvin to u.
func (u ThermalConductivity) FromStandard(x float64) float64 {
	return x / thermalConductivityFactors[u]
}

// Standard returns the watt per metre per kelvin.
func (ThermalConductivity) Standard() ThermalConductivity {
	return WattPerMetrePerKelvin
}

// ParseThermalConductivity returns the thermal conductivity unit named
// by s.
func ParseThermalConductivity(s string) (ThermalConductivity, error) {
	u, ok := thermalConductivitySpellings[s]
	if !ok {
		return WattPerMetrePerKelvin, fmt.Errorf("units: unrecognized thermal conductivity unit %q", s)
	}
	return u, nil
}
