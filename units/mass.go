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

// Mass is a unit of mass. The standard unit is the kilogram.
type Mass int

const (
	Kilogram Mass = iota
	Gram
	Milligram
	Tonne
	Slug
	PoundMass
)

// MassUnits lists every mass unit variant.
var MassUnits = []Mass{Kilogram, Gram, Milligram, Tonne, Slug, PoundMass}

var massAbbreviations = []string{"kg", "g", "mg", "t", "slug", "lbm"}

var massFactors = []float64{1, 1e-3, 1e-6, 1e3, 14.59390293720636, 0.45359237}

var massSpellings = map[string]Mass{
	"kg":         Kilogram,
	"kilogram":   Kilogram,
	"kilograms":  Kilogram,
	"g":          Gram,
	"gram":       Gram,
	"grams":      Gram,
	"mg":         Milligram,
	"milligram":  Milligram,
	"milligrams": Milligram,
	"t":          Tonne,
	"tonne":      Tonne,
	"tonnes":     Tonne,
	"Mg":         Tonne,
	"slug":       Slug,
	"slugs":      Slug,
	"lbm":        PoundMass,
	"lb":         PoundMass,
	"pound":      PoundMass,
	"pounds":     PoundMass,
}

func (u Mass) Abbreviation() string { return massAbbreviations[u] }

func (u Mass) String() string { return u.Abbreviation() }

// Dimensions returns the mass dimension signature.
func (Mass) Dimensions() Dimensions { return Dimensions{Mass: 1} }

// ToStandard converts x from u to kilograms.
func (u Mass) ToStandard(x float64) float64 { return x * massFactors[u] }

// FromStandard converts x from kilograms to u.
func (u Mass) FromStandard(x float64) float64 { return x / massFactors[u] }

// Standard returns the kilogram.
func (Mass) Standard() Mass { return Kilogram }

// ParseMass returns the mass unit named by s.
func ParseMass(s string) (Mass, error) {
	u, ok := massSpellings[s]
	if !ok {
		return Kilogram, fmt.Errorf("units: unrecognized mass unit %q", s)
	}
	return u, nil
}

// MassDensity is a unit of mass density. The standard unit is the
// kilogram per cubic metre.
type MassDensity int

const (
	KilogramPerCubicMetre MassDensity = iota
	GramPerCubicCentimetre
	SlugPerCubicFoot
	PoundPerCubicFoot
	PoundPerCubicInch
)

// MassDensityUnits lists every mass density unit variant.
var MassDensityUnits = []MassDensity{
	KilogramPerCubicMetre, GramPerCubicCentimetre, SlugPerCubicFoot,
	PoundPerCubicFoot, PoundPerCubicInch,
}

var massDensityAbbreviations = []string{
	"kg/m^3", "g/cm^3", "slug/ft^3", "lbm/ft^3", "lbm/in^3",
}

var massDensityFactors = []float64{
	1, 1e3, 515.3788183931963, 16.018463373960142, 27679.904710203125,
}

var massDensitySpellings = map[string]MassDensity{
	"kg/m^3":    KilogramPerCubicMetre,
	"kg/m3":     KilogramPerCubicMetre,
	"kg/m³":     KilogramPerCubicMetre,
	"kg·m^-3":   KilogramPerCubicMetre,
	"kg*m^-3":   KilogramPerCubicMetre,
	"g/cm^3":    GramPerCubicCentimetre,
	"g/cm3":     GramPerCubicCentimetre,
	"g/cm³":     GramPerCubicCentimetre,
	"g/mL":      GramPerCubicCentimetre,
	"slug/ft^3": SlugPerCubicFoot,
	"slug/ft3":  SlugPerCubicFoot,
	"lbm/ft^3":  PoundPerCubicFoot,
	"lbm/ft3":   PoundPerCubicFoot,
	"lb/ft^3":   PoundPerCubicFoot,
	"lbm/in^3":  PoundPerCubicInch,
	"lbm/in3":   PoundPerCubicInch,
	"lb/in^3":   PoundPerCubicInch,
}

func (u MassDensity) Abbreviation() string { return massDensityAbbreviations[u] }

func (u MassDensity) String() string { return u.Abbreviation() }

// Dimensions returns the mass density dimension signature.
func (MassDensity) Dimensions() Dimensions { return Dimensions{Mass: 1, Length: -3} }

// ToStandard converts x from u to kilograms per cubic metre.
func (u MassDensity) ToStandard(x float64) float64 { return x * massDensityFactors[u] }

// FromStandard converts x from kilograms per cubic metre to u.
func (u MassDensity) FromStandard(x float64) float64 { return x / massDensityFactors[u] }

// Standard returns the kilogram per cubic metre.
func (MassDensity) Standard() MassDensity { return KilogramPerCubicMetre }

// ParseMassDensity returns the mass density unit named by s.
func ParseMassDensity(s string) (MassDensity, error) {
	u, ok := massDensitySpellings[s]
	if !ok {
		return KilogramPerCubicMetre, fmt.Errorf("units: unrecognized mass density unit %q", s)
	}
	return u, nil
}

// MassRate is a unit of mass flow rate. The standard unit is the
// kilogram per second.
type MassRate int

const (
	KilogramPerSecond MassRate = iota
	GramPerSecond
	KilogramPerMinute
	SlugPerSecond
	PoundPerSecond
)

// MassRateUnits lists every mass rate unit variant.
var MassRateUnits = []MassRate{
	KilogramPerSecond, GramPerSecond, KilogramPerMinute, SlugPerSecond,
	PoundPerSecond,
}

var massRateAbbreviations = []string{
	"kg/s", "g/s", "kg/min", "slug/s", "lbm/s",
}

var massRateFactors = []float64{
	1, 1e-3, 1.0 / 60.0, 14.59390293720636, 0.45359237,
}

var massRateSpellings = map[string]MassRate{
	"kg/s":   KilogramPerSecond,
	"kg/sec": KilogramPerSecond,
	"g/s":    GramPerSecond,
	"g/sec":  GramPerSecond,
	"kg/min": KilogramPerMinute,
	"slug/s": SlugPerSecond,
	"lbm/s":  PoundPerSecond,
	"lb/s":   PoundPerSecond,
}

func (u MassRate) Abbreviation() string { return massRateAbbreviations[u] }

func (u MassRate) String() string { return u.Abbreviation() }

// Dimensions returns the mass rate dimension signature.
func (MassRate) Dimensions() Dimensions { return Dimensions{Mass: 1, Time: -1} }

// ToStandard converts x from u to kilograms per second.
func (u MassRate) ToStandard(x float64) float64 { return x * massRateFactors[u] }

// FromStandard converts x from kilograms per second to u.
func (u MassRate) FromStandard(x float64) float64 { return x / massRateFactors[u] }

// Standard returns the kilogram per second.
func (MassRate) Standard() MassRate { return KilogramPerSecond }

// ParseMassRate returns the mass rate unit named by s.
func ParseMassRate(s string) (MassRate, error) {
	u, ok := massRateSpellings[s]
	if !ok {
		return KilogramPerSecond, fmt.Errorf("units: unrecognized mass rate unit %q", s)
	}
	return u, nil
}

// VolumeRate is a unit of volumetric flow rate. The standard unit is
// the cubic metre per second.
type VolumeRate int

const (
	CubicMetrePerSecond VolumeRate = iota
	LitrePerSecond
	LitrePerMinute
	CubicFootPerSecond
	CubicFootPerMinute
)

// VolumeRateUnits lists every volume rate unit variant.
var VolumeRateUnits = []VolumeRate{
	CubicMetrePerSecond, LitrePerSecond, LitrePerMinute,
	CubicFootPerSecond, CubicFootPerMinute,
}

var volumeRateAbbreviations = []string{
	"m^3/s", "L/s", "L/min", "ft^3/s", "ft^3/min",
}

var volumeRateFactors = []float64{
	1, 1e-3, 1e-3 / 60.0, 0.028316846592, 0.028316846592 / 60.0,
}

var volumeRateSpellings = map[string]VolumeRate{
	"m^3/s":    CubicMetrePerSecond,
	"m3/s":     CubicMetrePerSecond,
	"m³/s":     CubicMetrePerSecond,
	"L/s":      LitrePerSecond,
	"l/s":      LitrePerSecond,
	"L/min":    LitrePerMinute,
	"l/min":    LitrePerMinute,
	"lpm":      LitrePerMinute,
	"ft^3/s":   CubicFootPerSecond,
	"ft3/s":    CubicFootPerSecond,
	"cfs":      CubicFootPerSecond,
	"ft^3/min": CubicFootPerMinute,
	"ft3/min":  CubicFootPerMinute,
	"cfm":      CubicFootPerMinute,
}

func (u VolumeRate) Abbreviation() string { return volumeRateAbbreviations[u] }

func (u VolumeRate) String() string { return u.Abbreviation() }

// Dimensions returns the volume rate dimension signature.
func (VolumeRate) Dimensions() Dimensions { return Dimensions{Length: 3, Time: -1} }

// ToStandard converts x from u to cubic metres per second.
func (u VolumeRate) ToStandard(x float64) float64 { return x * volumeRateFactors[u] }

// FromStandard converts x from cubic metres per second to u.
func (u VolumeRate) FromStandard(x float64) float64 { return x / volumeRateFactors[u] }

// Standard returns the cubic metre per second.
func (VolumeRate) Standard() VolumeRate { return CubicMetrePerSecond }

// ParseVolumeRate returns the volume rate unit named by s.
func ParseVolumeRate(s string) (VolumeRate, error) {
	u, ok := volumeRateSpellings[s]
	if !ok {
		return CubicMetrePerSecond, fmt.Errorf("units: unrecognized volume rate unit %q", s)
	}
	return u, nil
}
