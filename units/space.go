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
	"fmt"
	"math"
)

// Length is a unit of length. The standard unit is the metre.
type Length int

const (
	Metre Length = iota
	Millimetre
	Centimetre
	Kilometre
	Micrometre
	Nanometre
	Inch
	Foot
	Yard
	Mile
)

// LengthUnits lists every length unit variant.
var LengthUnits = []Length{
	Metre, Millimetre, Centimetre, Kilometre, Micrometre, Nanometre,
	Inch, Foot, Yard, Mile,
}

var lengthAbbreviations = []string{
	"m", "mm", "cm", "km", "μm", "nm", "in", "ft", "yd", "mi",
}

var lengthFactors = []float64{
	1, 1e-3, 1e-2, 1e3, 1e-6, 1e-9, 0.0254, 0.3048, 0.9144, 1609.344,
}

var lengthSpellings = map[string]Length{
	"m":           Metre,
	"metre":       Metre,
	"metres":      Metre,
	"meter":       Metre,
	"meters":      Metre,
	"mm":          Millimetre,
	"millimetre":  Millimetre,
	"millimeter":  Millimetre,
	"cm":          Centimetre,
	"centimetre":  Centimetre,
	"centimeter":  Centimetre,
	"km":          Kilometre,
	"kilometre":   Kilometre,
	"kilometer":   Kilometre,
	"μm":          Micrometre,
	"um":          Micrometre,
	"micrometre":  Micrometre,
	"micrometer":  Micrometre,
	"micron":      Micrometre,
	"nm":          Nanometre,
	"nanometre":   Nanometre,
	"nanometer":   Nanometre,
	"in":          Inch,
	"inch":        Inch,
	"inches":      Inch,
	"\"":          Inch,
	"ft":          Foot,
	"foot":        Foot,
	"feet":        Foot,
	"'":           Foot,
	"yd":          Yard,
	"yard":        Yard,
	"yards":       Yard,
	"mi":          Mile,
	"mile":        Mile,
	"miles":       Mile,
}

func (u Length) Abbreviation() string { return lengthAbbreviations[u] }

func (u Length) String() string { return u.Abbreviation() }

// Dimensions returns the length dimension signature.
func (Length) Dimensions() Dimensions { return Dimensions{Length: 1} }

// ToStandard converts x from u to metres.
func (u Length) ToStandard(x float64) float64 { return x * lengthFactors[u] }

// FromStandard converts x from metres to u.
func (u Length) FromStandard(x float64) float64 { return x / lengthFactors[u] }

// Standard returns the metre.
func (Length) Standard() Length { return Metre }

// ParseLength returns the length unit named by s.
func ParseLength(s string) (Length, error) {
	u, ok := lengthSpellings[s]
	if !ok {
		return Metre, fmt.Errorf("units: unrecognized length unit %q", s)
	}
	return u, nil
}

// Area is a unit of area. The standard unit is the square metre.
type Area int

const (
	SquareMetre Area = iota
	SquareMillimetre
	SquareCentimetre
	SquareKilometre
	SquareInch
	SquareFoot
	SquareYard
	SquareMile
)

// AreaUnits lists every area unit variant.
var AreaUnits = []Area{
	SquareMetre, SquareMillimetre, SquareCentimetre, SquareKilometre,
	SquareInch, SquareFoot, SquareYard, SquareMile,
}

var areaAbbreviations = []string{
	"m^2", "mm^2", "cm^2", "km^2", "in^2", "ft^2", "yd^2", "mi^2",
}

var areaFactors = []float64{
	1, 1e-6, 1e-4, 1e6, 0.00064516, 0.09290304, 0.83612736, 2589988.110336,
}

var areaSpellings = map[string]Area{
	"m^2":   SquareMetre,
	"m2":    SquareMetre,
	"m²":    SquareMetre,
	"sq m":  SquareMetre,
	"mm^2":  SquareMillimetre,
	"mm2":   SquareMillimetre,
	"mm²":   SquareMillimetre,
	"cm^2":  SquareCentimetre,
	"cm2":   SquareCentimetre,
	"cm²":   SquareCentimetre,
	"km^2":  SquareKilometre,
	"km2":   SquareKilometre,
	"km²":   SquareKilometre,
	"in^2":  SquareInch,
	"in2":   SquareInch,
	"in²":   SquareInch,
	"sq in": SquareInch,
	"ft^2":  SquareFoot,
	"ft2":   SquareFoot,
	"ft²":   SquareFoot,
	"sq ft": SquareFoot,
	"yd^2":  SquareYard,
	"yd2":   SquareYard,
	"yd²":   SquareYard,
	"mi^2":  SquareMile,
	"mi2":   SquareMile,
	"mi²":   SquareMile,
	"sq mi": SquareMile,
}

func (u Area) Abbreviation() string { return areaAbbreviations[u] }

func (u Area) String() string { return u.Abbreviation() }

// Dimensions returns the area dimension signature.
func (Area) Dimensions() Dimensions { return Dimensions{Length: 2} }

// ToStandard converts x from u to square metres.
func (u Area) ToStandard(x float64) float64 { return x * areaFactors[u] }

// FromStandard converts x from square metres to u.
func (u Area) FromStandard(x float64) float64 { return x / areaFactors[u] }

// Standard returns the square metre.
func (Area) Standard() Area { return SquareMetre }

// ParseArea returns the area unit named by s.
func ParseArea(s string) (Area, error) {
	u, ok := areaSpellings[s]
	if !ok {
		return SquareMetre, fmt.Errorf("units: unrecognized area unit %q", s)
	}
	return u, nil
}

// Volume is a unit of volume. The standard unit is the cubic metre.
type Volume int

const (
	CubicMetre Volume = iota
	Litre
	Millilitre
	CubicMillimetre
	CubicInch
	CubicFoot
	CubicYard
)

// VolumeUnits lists every volume unit variant.
var VolumeUnits = []Volume{
	CubicMetre, Litre, Millilitre, CubicMillimetre, CubicInch, CubicFoot,
	CubicYard,
}

var volumeAbbreviations = []string{
	"m^3", "L", "mL", "mm^3", "in^3", "ft^3", "yd^3",
}

var volumeFactors = []float64{
	1, 1e-3, 1e-6, 1e-9, 1.6387064e-5, 0.028316846592, 0.764554857984,
}

var volumeSpellings = map[string]Volume{
	"m^3":        CubicMetre,
	"m3":         CubicMetre,
	"m³":         CubicMetre,
	"cu m":       CubicMetre,
	"L":          Litre,
	"l":          Litre,
	"litre":      Litre,
	"litres":     Litre,
	"liter":      Litre,
	"liters":     Litre,
	"mL":         Millilitre,
	"ml":         Millilitre,
	"millilitre": Millilitre,
	"milliliter": Millilitre,
	"cc":         Millilitre,
	"mm^3":       CubicMillimetre,
	"mm3":        CubicMillimetre,
	"mm³":        CubicMillimetre,
	"in^3":       CubicInch,
	"in3":        CubicInch,
	"in³":        CubicInch,
	"cu in":      CubicInch,
	"ft^3":       CubicFoot,
	"ft3":        CubicFoot,
	"ft³":        CubicFoot,
	"cu ft":      CubicFoot,
	"yd^3":       CubicYard,
	"yd3":        CubicYard,
	"yd³":        CubicYard,
	"cu yd":      CubicYard,
}

func (u Volume) Abbreviation() string { return volumeAbbreviations[u] }

func (u Volume) String() string { return u.Abbreviation() }

// Dimensions returns the volume dimension signature.
func (Volume) Dimensions() Dimensions { return Dimensions{Length: 3} }

// ToStandard converts x from u to cubic metres.
func (u Volume) ToStandard(x float64) float64 { return x * volumeFactors[u] }

// FromStandard converts x from cubic metres to u.
func (u Volume) FromStandard(x float64) float64 { return x / volumeFactors[u] }

// Standard returns the cubic metre.
func (Volume) Standard() Volume { return CubicMetre }

// ParseVolume returns the volume unit named by s.
func ParseVolume(s string) (Volume, error) {
	u, ok := volumeSpellings[s]
	if !ok {
		return CubicMetre, fmt.Errorf("units: unrecognized volume unit %q", s)
	}
	return u, nil
}

// Angle is a unit of plane angle. The standard unit is the radian.
type Angle int

const (
	Radian Angle = iota
	Degree
	Revolution
	Arcminute
	Arcsecond
)

// AngleUnits lists every angle unit variant.
var AngleUnits = []Angle{Radian, Degree, Revolution, Arcminute, Arcsecond}

var angleAbbreviations = []string{"rad", "deg", "rev", "arcmin", "arcsec"}

var angleFactors = []float64{
	1,
	math.Pi / 180,
	2 * math.Pi,
	math.Pi / 180 / 60,
	math.Pi / 180 / 3600,
}

var angleSpellings = map[string]Angle{
	"rad":         Radian,
	"radian":      Radian,
	"radians":     Radian,
	"deg":         Degree,
	"degree":      Degree,
	"degrees":     Degree,
	"°":           Degree,
	"rev":         Revolution,
	"revolution":  Revolution,
	"revolutions": Revolution,
	"arcmin":      Arcminute,
	"arcminute":   Arcminute,
	"arcminutes":  Arcminute,
	"'":           Arcminute,
	"arcsec":      Arcsecond,
	"arcsecond":   Arcsecond,
	"arcseconds":  Arcsecond,
	"\"":          Arcsecond,
}

func (u Angle) Abbreviation() string { return angleAbbreviations[u] }

func (u Angle) String() string { return u.Abbreviation() }

// Dimensions returns the (dimensionless) angle signature.
func (Angle) Dimensions() Dimensions { return Dimensions{} }

// ToStandard converts x from u to radians.
func (u Angle) ToStandard(x float64) float64 { return x * angleFactors[u] }

// FromStandard converts x from radians to u.
func (u Angle) FromStandard(x float64) float64 { return x / angleFactors[u] }

// Standard returns the radian.
func (Angle) Standard() Angle { return Radian }

// ParseAngle returns the angle unit named by s.
func ParseAngle(s string) (Angle, error) {
	u, ok := angleSpellings[s]
	if !ok {
		return Radian, fmt.Errorf("units: unrecognized angle unit %q", s)
	}
	return u, nil
}
