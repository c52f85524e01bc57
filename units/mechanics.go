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

// Force is a unit of force. The standard unit is the newton.
type Force int

const (
	Newton Force = iota
	Kilonewton
	Millinewton
	Micronewton
	Pound
	Dyne
)

// ForceUnits lists every force unit variant.
var ForceUnits = []Force{
	Newton, Kilonewton, Millinewton, Micronewton, Pound, Dyne,
}

var forceAbbreviations = []string{"N", "kN", "mN", "μN", "lbf", "dyn"}

var forceFactors = []float64{1, 1e3, 1e-3, 1e-6, 4.4482216152605, 1e-5}

var forceSpellings = map[string]Force{
	"N":           Newton,
	"newton":      Newton,
	"newtons":     Newton,
	"kg·m/s^2":    Newton,
	"kg*m/s^2":    Newton,
	"kN":          Kilonewton,
	"kilonewton":  Kilonewton,
	"kilonewtons": Kilonewton,
	"mN":          Millinewton,
	"millinewton": Millinewton,
	"μN":          Micronewton,
	"uN":          Micronewton,
	"micronewton": Micronewton,
	"lbf":         Pound,
	"lbs":         Pound,
	"dyn":         Dyne,
	"dyne":        Dyne,
	"dynes":       Dyne,
}

func (u Force) Abbreviation() string { return forceAbbreviations[u] }

func (u Force) String() string { return u.Abbreviation() }

// Dimensions returns the force dimension signature.
func (Force) Dimensions() Dimensions { return Dimensions{Mass: 1, Length: 1, Time: -2} }

// ToStandard converts x from u to newtons.
func (u Force) ToStandard(x float64) float64 { return x * forceFactors[u] }

// FromStandard converts x from newtons to u.
func (u Force) FromStandard(x float64) float64 { return x / forceFactors[u] }

// Standard returns the newton.
func (Force) Standard() Force { return Newton }

// ParseForce returns the force unit named by s.
func ParseForce(s string) (Force, error) {
	u, ok := forceSpellings[s]
	if !ok {
		return Newton, fmt.Errorf("units: unrecognized force unit %q", s)
	}
	return u, nil
}

// Pressure is a unit of pressure or stress. The standard unit is the
// pascal.
type Pressure int

const (
	Pascal Pressure = iota
	Kilopascal
	Megapascal
	Gigapascal
	Bar
	Atmosphere
	PoundPerSquareInch
	PoundPerSquareFoot
)

// PressureUnits lists every pressure unit variant.
var PressureUnits = []Pressure{
	Pascal, Kilopascal, Megapascal, Gigapascal, Bar, Atmosphere,
	PoundPerSquareInch, PoundPerSquareFoot,
}

var pressureAbbreviations = []string{
	"Pa", "kPa", "MPa", "GPa", "bar", "atm", "psi", "psf",
}

var pressureFactors = []float64{
	1, 1e3, 1e6, 1e9, 1e5, 101325, 6894.757293168361, 47.88025898033584,
}

var pressureSpellings = map[string]Pressure{
	"Pa":          Pascal,
	"pa":          Pascal,
	"pascal":      Pascal,
	"pascals":     Pascal,
	"N/m^2":       Pascal,
	"N/m2":        Pascal,
	"N/m²":        Pascal,
	"N·m^-2":      Pascal,
	"N*m^-2":      Pascal,
	"kg/(m·s^2)":  Pascal,
	"kPa":         Kilopascal,
	"kilopascal":  Kilopascal,
	"kilopascals": Kilopascal,
	"kN/m^2":      Kilopascal,
	"MPa":         Megapascal,
	"megapascal":  Megapascal,
	"megapascals": Megapascal,
	"N/mm^2":      Megapascal,
	"N/mm2":       Megapascal,
	"GPa":         Gigapascal,
	"gigapascal":  Gigapascal,
	"gigapascals": Gigapascal,
	"kN/mm^2":     Gigapascal,
	"bar":         Bar,
	"bars":        Bar,
	"atm":         Atmosphere,
	"atmosphere":  Atmosphere,
	"atmospheres": Atmosphere,
	"psi":         PoundPerSquareInch,
	"lbf/in^2":    PoundPerSquareInch,
	"lbf/in2":     PoundPerSquareInch,
	"psf":         PoundPerSquareFoot,
	"lbf/ft^2":    PoundPerSquareFoot,
	"lbf/ft2":     PoundPerSquareFoot,
}

func (u Pressure) Abbreviation() string { return pressureAbbreviations[u] }

func (u Pressure) String() string { return u.Abbreviation() }

// Dimensions returns the pressure dimension signature.
func (Pressure) Dimensions() Dimensions { return Dimensions{Mass: 1, Length: -1, Time: -2} }

// ToStandard converts x from u to pascals.
func (u Pressure) ToStandard(x float64) float64 { return x * pressureFactors[u] }

// FromStandard converts x from pascals to u.
func (u Pressure) FromStandard(x float64) float64 { return x / pressureFactors[u] }

// Standard returns the pascal.
func (Pressure) Standard() Pressure { return Pascal }

// ParsePressure returns the pressure unit named by s.
func ParsePressure(s string) (Pressure, error) {
	u, ok := pressureSpellings[s]
	if !ok {
		return Pascal, fmt.Errorf("units: unrecognized pressure unit %q", s)
	}
	return u, nil
}

// Energy is a unit of energy. The standard unit is the joule.
type Energy int

const (
	Joule Energy = iota
	Millijoule
	Kilojoule
	Megajoule
	FootPound
	InchPound
)

// EnergyUnits lists every energy unit variant.
var EnergyUnits = []Energy{
	Joule, Millijoule, Kilojoule, Megajoule, FootPound, InchPound,
}

var energyAbbreviations = []string{
	"J", "mJ", "kJ", "MJ", "ft·lbf", "in·lbf",
}

var energyFactors = []float64{
	1, 1e-3, 1e3, 1e6, 1.3558179483314004, 0.1129848290276167,
}

var energySpellings = map[string]Energy{
	"J":          Joule,
	"joule":      Joule,
	"joules":     Joule,
	"N·m":        Joule,
	"N*m":        Joule,
	"mJ":         Millijoule,
	"millijoule": Millijoule,
	"kJ":         Kilojoule,
	"kilojoule":  Kilojoule,
	"kilojoules": Kilojoule,
	"MJ":         Megajoule,
	"megajoule":  Megajoule,
	"megajoules": Megajoule,
	"ft·lbf":     FootPound,
	"ft*lbf":     FootPound,
	"ft-lbf":     FootPound,
	"ft·lb":      FootPound,
	"in·lbf":     InchPound,
	"in*lbf":     InchPound,
	"in-lbf":     InchPound,
	"in·lb":      InchPound,
}

func (u Energy) Abbreviation() string { return energyAbbreviations[u] }

func (u Energy) String() string { return u.Abbreviation() }

// Dimensions returns the energy dimension signature.
func (Energy) Dimensions() Dimensions { return Dimensions{Mass: 1, Length: 2, Time: -2} }

// ToStandard converts x from u to joules.
func (u Energy) ToStandard(x float64) float64 { return x * energyFactors[u] }

// FromStandard converts x from joules to u.
func (u Energy) FromStandard(x float64) float64 { return x / energyFactors[u] }

// Standard returns the joule.
func (Energy) Standard() Energy { return Joule }

// ParseEnergy returns the energy unit named by s.
func ParseEnergy(s string) (Energy, error) {
	u, ok := energySpellings[s]
	if !ok {
		return Joule, fmt.Errorf("units: unrecognized energy unit %q", s)
	}
	return u, nil
}

// Power is a unit of power. The standard unit is the watt.
type Power int

const (
	Watt Power = iota
	Milliwatt
	Kilowatt
	Megawatt
	FootPoundPerSecond
	Horsepower
)

// PowerUnits lists every power unit variant.
var PowerUnits = []Power{
	Watt, Milliwatt, Kilowatt, Megawatt, FootPoundPerSecond, Horsepower,
}

var powerAbbreviations = []string{
	"W", "mW", "kW", "MW", "ft·lbf/s", "hp",
}

var powerFactors = []float64{
	1, 1e-3, 1e3, 1e6, 1.3558179483314004, 745.6998715822702,
}

var powerSpellings = map[string]Power{
	"W":          Watt,
	"watt":       Watt,
	"watts":      Watt,
	"J/s":        Watt,
	"mW":         Milliwatt,
	"milliwatt":  Milliwatt,
	"kW":         Kilowatt,
	"kilowatt":   Kilowatt,
	"kilowatts":  Kilowatt,
	"MW":         Megawatt,
	"megawatt":   Megawatt,
	"megawatts":  Megawatt,
	"ft·lbf/s":   FootPoundPerSecond,
	"ft*lbf/s":   FootPoundPerSecond,
	"ft-lbf/s":   FootPoundPerSecond,
	"hp":         Horsepower,
	"horsepower": Horsepower,
}

func (u Power) Abbreviation() string { return powerAbbreviations[u] }

func (u Power) String() string { return u.Abbreviation() }

// Dimensions returns the power dimension signature.
func (Power) Dimensions() Dimensions { return Dimensions{Mass: 1, Length: 2, Time: -3} }

// ToStandard converts x from u to watts.
func (u Power) ToStandard(x float64) float64 { return x * powerFactors[u] }

// FromStandard converts x from watts to u.
func (u Power) FromStandard(x float64) float64 { return x / powerFactors[u] }

// Standard returns the watt.
func (Power) Standard() Power { return Watt }

// ParsePower returns the power unit named by s.
func ParsePower(s string) (Power, error) {
	u, ok := powerSpellings[s]
	if !ok {
		return Watt, fmt.Errorf("units: unrecognized power unit %q", s)
	}
	return u, nil
}
