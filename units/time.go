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

// Time is a unit of time. The standard unit is the second.
type Time int

const (
	Second Time = iota
	Millisecond
	Microsecond
	Minute
	Hour
)

// TimeUnits lists every time unit variant.
var TimeUnits = []Time{Second, Millisecond, Microsecond, Minute, Hour}

var timeAbbreviations = []string{"s", "ms", "μs", "min", "hr"}

var timeFactors = []float64{1, 1e-3, 1e-6, 60, 3600}

var timeSpellings = map[string]Time{
	"s":            Second,
	"sec":          Second,
	"secs":         Second,
	"second":       Second,
	"seconds":      Second,
	"ms":           Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"μs":           Microsecond,
	"us":           Microsecond,
	"microsecond":  Microsecond,
	"microseconds": Microsecond,
	"min":          Minute,
	"mins":         Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"hr":           Hour,
	"hrs":          Hour,
	"h":            Hour,
	"hour":         Hour,
	"hours":        Hour,
}

func (u Time) Abbreviation() string { return timeAbbreviations[u] }

func (u Time) String() string { return u.Abbreviation() }

// Dimensions returns the time dimension signature.
func (Time) Dimensions() Dimensions { return Dimensions{Time: 1} }

// ToStandard converts x from u to seconds.
func (u Time) ToStandard(x float64) float64 { return x * timeFactors[u] }

// FromStandard converts x from seconds to u.
func (u Time) FromStandard(x float64) float64 { return x / timeFactors[u] }

// Standard returns the second.
func (Time) Standard() Time { return Second }

// ParseTime returns the time unit named by s.
func ParseTime(s string) (Time, error) {
	u, ok := timeSpellings[s]
	if !ok {
		return Second, fmt.Errorf("units: unrecognized time unit %q", s)
	}
	return u, nil
}

// Frequency is a unit of frequency. The standard unit is the hertz.
type Frequency int

const (
	Hertz Frequency = iota
	Kilohertz
	Megahertz
	Gigahertz
	PerMinute
	PerHour
)

// FrequencyUnits lists every frequency unit variant.
var FrequencyUnits = []Frequency{
	Hertz, Kilohertz, Megahertz, Gigahertz, PerMinute, PerHour,
}

var frequencyAbbreviations = []string{"Hz", "kHz", "MHz", "GHz", "/min", "/hr"}

var frequencyFactors = []float64{1, 1e3, 1e6, 1e9, 1.0 / 60.0, 1.0 / 3600.0}

var frequencySpellings = map[string]Frequency{
	"Hz":        Hertz,
	"hz":        Hertz,
	"hertz":     Hertz,
	"1/s":       Hertz,
	"/s":        Hertz,
	"s^-1":      Hertz,
	"kHz":       Kilohertz,
	"khz":       Kilohertz,
	"kilohertz": Kilohertz,
	"MHz":       Megahertz,
	"megahertz": Megahertz,
	"GHz":       Gigahertz,
	"gigahertz": Gigahertz,
	"/min":      PerMinute,
	"1/min":     PerMinute,
	"min^-1":    PerMinute,
	"/hr":       PerHour,
	"1/hr":      PerHour,
	"hr^-1":     PerHour,
}

func (u Frequency) Abbreviation() string { return frequencyAbbreviations[u] }

func (u Frequency) String() string { return u.Abbreviation() }

// Dimensions returns the frequency dimension signature.
func (Frequency) Dimensions() Dimensions { return Dimensions{Time: -1} }

// ToStandard converts x from u to hertz.
func (u Frequency) ToStandard(x float64) float64 { return x * frequencyFactors[u] }

// FromStandard converts x from hertz to u.
func (u Frequency) FromStandard(x float64) float64 { return x / frequencyFactors[u] }

// Standard returns the hertz.
func (Frequency) Standard() Frequency { return Hertz }

// ParseFrequency returns the frequency unit named by s.
func ParseFrequency(s string) (Frequency, error) {
	u, ok := frequencySpellings[s]
	if !ok {
		return Hertz, fmt.Errorf("units: unrecognized frequency unit %q", s)
	}
	return u, nil
}
