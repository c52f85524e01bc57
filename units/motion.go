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

// Speed is a unit of speed. The standard unit is the metre per second.
type Speed int

const (
	MetrePerSecond Speed = iota
	KilometrePerHour
	MilePerHour
	FootPerSecond
	InchPerSecond
)

// SpeedUnits lists every speed unit variant.
var SpeedUnits = []Speed{
	MetrePerSecond, KilometrePerHour, MilePerHour, FootPerSecond,
	InchPerSecond,
}

var speedAbbreviations = []string{"m/s", "km/hr", "mi/hr", "ft/s", "in/s"}

var speedFactors = []float64{1, 1000.0 / 3600.0, 0.44704, 0.3048, 0.0254}

var speedSpellings = map[string]Speed{
	"m/s":    MetrePerSecond,
	"m/sec":  MetrePerSecond,
	"m·s^-1": MetrePerSecond,
	"m*s^-1": MetrePerSecond,
	"km/hr":  KilometrePerHour,
	"km/h":   KilometrePerHour,
	"kph":    KilometrePerHour,
	"mi/hr":  MilePerHour,
	"mi/h":   MilePerHour,
	"mph":    MilePerHour,
	"ft/s":   FootPerSecond,
	"ft/sec": FootPerSecond,
	"fps":    FootPerSecond,
	"in/s":   InchPerSecond,
	"in/sec": InchPerSecond,
	"ips":    InchPerSecond,
}

func (u Speed) Abbreviation() string { return speedAbbreviations[u] }

func (u Speed) String() string { return u.Abbreviation() }

// Dimensions returns the speed dimension signature.
func (Speed) Dimensions() Dimensions { return Dimensions{Length: 1, Time: -1} }

// ToStandard converts x from u to metres per second.
func (u Speed) ToStandard(x float64) float64 { return x * speedFactors[u] }

// FromStandard converts x from metres per second to u.
func (u Speed) FromStandard(x float64) float64 { return x / speedFactors[u] }

// Standard returns the metre per second.
func (Speed) Standard() Speed { return MetrePerSecond }

// ParseSpeed returns the speed unit named by s.
func ParseSpeed(s string) (Speed, error) {
	u, ok := speedSpellings[s]
	if !ok {
		return MetrePerSecond, fmt.Errorf("units: unrecognized speed unit %q", s)
	}
	return u, nil
}

// Acceleration is a unit of acceleration. The standard unit is the
// metre per square second.
type Acceleration int

const (
	MetrePerSquareSecond Acceleration = iota
	MillimetrePerSquareSecond
	FootPerSquareSecond
	InchPerSquareSecond
	StandardGravity
)

// AccelerationUnits lists every acceleration unit variant.
var AccelerationUnits = []Acceleration{
	MetrePerSquareSecond, MillimetrePerSquareSecond, FootPerSquareSecond,
	InchPerSquareSecond, StandardGravity,
}

var accelerationAbbreviations = []string{
	"m/s^2", "mm/s^2", "ft/s^2", "in/s^2", "g0",
}

var accelerationFactors = []float64{1, 1e-3, 0.3048, 0.0254, 9.80665}

var accelerationSpellings = map[string]Acceleration{
	"m/s^2":   MetrePerSquareSecond,
	"m/s2":    MetrePerSquareSecond,
	"m/s²":    MetrePerSquareSecond,
	"m·s^-2":  MetrePerSquareSecond,
	"m*s^-2":  MetrePerSquareSecond,
	"mm/s^2":  MillimetrePerSquareSecond,
	"mm/s2":   MillimetrePerSquareSecond,
	"mm/s²":   MillimetrePerSquareSecond,
	"ft/s^2":  FootPerSquareSecond,
	"ft/s2":   FootPerSquareSecond,
	"ft/s²":   FootPerSquareSecond,
	"in/s^2":  InchPerSquareSecond,
	"in/s2":   InchPerSquareSecond,
	"in/s²":   InchPerSquareSecond,
	"g0":      StandardGravity,
	"gee":     StandardGravity,
	"g-force": StandardGravity,
}

func (u Acceleration) Abbreviation() string { return accelerationAbbreviations[u] }

func (u Acceleration) String() string { return u.Abbreviation() }

// Dimensions returns the acceleration dimension signature.
func (Acceleration) Dimensions() Dimensions { return Dimensions{Length: 1, Time: -2} }

// ToStandard converts x from u to metres per square second.
func (u Acceleration) ToStandard(x float64) float64 { return x * accelerationFactors[u] }

// FromStandard converts x from metres per square second to u.
func (u Acceleration) FromStandard(x float64) float64 { return x / accelerationFactors[u] }

// Standard returns the metre per square second.
func (Acceleration) Standard() Acceleration { return MetrePerSquareSecond }

// ParseAcceleration returns the acceleration unit named by s.
func ParseAcceleration(s string) (Acceleration, error) {
	u, ok := accelerationSpellings[s]
	if !ok {
		return MetrePerSquareSecond, fmt.Errorf("units: unrecognized acceleration unit %q", s)
	}
	return u, nil
}
