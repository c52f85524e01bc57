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

// DynamicViscosity is a unit of dynamic viscosity. The standard unit
// is the pascal-second.
type DynamicViscosity int

const (
	PascalSecond DynamicViscosity = iota
	KilopascalSecond
	Poise
	Centipoise
	PoundSecondPerSquareFoot
	PoundSecondPerSquareInch
)

// DynamicViscosityUnits lists every dynamic viscosity unit variant.
var DynamicViscosityUnits = []DynamicViscosity{
	PascalSecond, KilopascalSecond, Poise, Centipoise,
	PoundSecondPerSquareFoot, PoundSecondPerSquareInch,
}

var dynamicViscosityAbbreviations = []string{
	"Pa·s", "kPa·s", "P", "cP", "lbf·s/ft^2", "lbf·s/in^2",
}

var dynamicViscosityFactors = []float64{
	1, 1e3, 0.1, 1e-3, 47.88025898033584, 6894.757293168361,
}

var dynamicViscositySpellings = map[string]DynamicViscosity{
	"Pa·s":       PascalSecond,
	"Pa*s":       PascalSecond,
	"Pa-s":       PascalSecond,
	"Pa s":       PascalSecond,
	"N·s/m^2":    PascalSecond,
	"N*s/m^2":    PascalSecond,
	"N·s/m2":     PascalSecond,
	"kg/(m·s)":   PascalSecond,
	"kg/(m*s)":   PascalSecond,
	"kPa·s":      KilopascalSecond,
	"kPa*s":      KilopascalSecond,
	"kPa-s":      KilopascalSecond,
	"P":          Poise,
	"poise":      Poise,
	"cP":         Centipoise,
	"centipoise": Centipoise,
	"lbf·s/ft^2": PoundSecondPerSquareFoot,
	"lbf*s/ft^2": PoundSecondPerSquareFoot,
	"psf·s":      PoundSecondPerSquareFoot,
	"lbf·s/in^2": PoundSecondPerSquareInch,
	"lbf*s/in^2": PoundSecondPerSquareInch,
	"psi·s":      PoundSecondPerSquareInch,
}

func (u DynamicViscosity) Abbreviation() string {
	return dynamicViscosityAbbreviations[u]
}

func (u DynamicViscosity) String() string { return u.Abbreviation() }

// Dimensions returns the dynamic viscosity dimension signature.
func (DynamicViscosity) Dimensions() Dimensions {
	return Dimensions{Mass: 1, Length: -1, Time: -1}
}

// ToStandard converts x from u to pascal-seconds.
func (u DynamicViscosity) ToStandard(x float64) float64 {
	return x * dynamicViscosityFactors[u]
}

// FromStandard converts x from pascal-seconds to u.
func (u DynamicViscosity) FromStandard(x float64) float64 {
	return x / dynamicViscosityFactors[u]
}

// Standard returns the pascal-second.
func (DynamicViscosity) Standard() DynamicViscosity { return PascalSecond }

// ParseDynamicViscosity returns the dynamic viscosity unit named by s.
func ParseDynamicViscosity(s string) (DynamicViscosity, error) {
	u, ok := dynamicViscositySpellings[s]
	if !ok {
		return PascalSecond, fmt.Errorf("units: unrecognized dynamic viscosity unit %q", s)
	}
	return u, nil
}

// Diffusivity is a unit of diffusivity, covering kinematic viscosity
// and thermal diffusivity. The standard unit is the square metre per
// second.
type Diffusivity int

const (
	SquareMetrePerSecond Diffusivity = iota
	SquareMillimetrePerSecond
	Stokes
	Centistokes
	SquareFootPerSecond
	SquareInchPerSecond
)

// DiffusivityUnits lists every diffusivity unit variant.
var DiffusivityUnits = []Diffusivity{
	SquareMetrePerSecond, SquareMillimetrePerSecond, Stokes, Centistokes,
	SquareFootPerSecond, SquareInchPerSecond,
}

var diffusivityAbbreviations = []string{
	"m^2/s", "mm^2/s", "St", "cSt", "ft^2/s", "in^2/s",
}

var diffusivityFactors = []float64{
	1, 1e-6, 1e-4, 1e-6, 0.09290304, 0.00064516,
}

var diffusivitySpellings = map[string]Diffusivity{
	"m^2/s":       SquareMetrePerSecond,
	"m2/s":        SquareMetrePerSecond,
	"m²/s":        SquareMetrePerSecond,
	"mm^2/s":      SquareMillimetrePerSecond,
	"mm2/s":       SquareMillimetrePerSecond,
	"mm²/s":       SquareMillimetrePerSecond,
	"St":          Stokes,
	"stokes":      Stokes,
	"cSt":         Centistokes,
	"centistokes": Centistokes,
	"ft^2/s":      SquareFootPerSecond,
	"ft2/s":       SquareFootPerSecond,
	"ft²/s":       SquareFootPerSecond,
	"in^2/s":      SquareInchPerSecond,
	"in2/s":       SquareInchPerSecond,
	"in²/s":       SquareInchPerSecond,
}

func (u Diffusivity) Abbreviation() string { return diffusivityAbbreviations[u] }

func (u Diffusivity) String() string { return u.Abbreviation() }

// Dimensions returns the diffusivity dimension signature.
func (Diffusivity) Dimensions() Dimensions { return Dimensions{Length: 2, Time: -1} }

// ToStandard converts x from u to square metres per second.
func (u Diffusivity) ToStandard(x float64) float64 { return x * diffusivityFactors[u] }

// FromStandard converts x from square metres per second to u.
func (u Diffusivity) FromStandard(x float64) float64 { return x / diffusivityFactors[u] }

// Standard returns the square metre per second.
func (Diffusivity) Standard() Diffusivity { return SquareMetrePerSecond }

// ParseDiffusivity returns the diffusivity unit named by s.
func ParseDiffusivity(s string) (Diffusivity, error) {
	u, ok := diffusivitySpellings[s]
	if !ok {
		return SquareMetrePerSecond, fmt.Errorf("units: unrecognized diffusivity unit %q", s)
	}
	return u, nil
}
