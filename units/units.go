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

// Package units enumerates units of measure grouped into physical
// dimension families, with conversion factors relating every unit in a
// family to the single standard unit of that family.
//
// Each family is an integer enumeration whose zero value is the
// standard unit. Conversions are pure scale transforms: multiplying by
// a unit's factor converts to the standard unit, dividing converts
// back out. There are no offset units (degrees Celsius and Fahrenheit
// are deliberately absent).
//
// The package-level tables (abbreviations, spellings, factors) are
// initialized at program start and never written to afterwards, so
// they may be read concurrently without locking.
package units

import (
	"fmt"
	"strings"

	"github.com/ctessum/unit"
)

// Unit is the constraint satisfied by every unit family in this
// package. Standard returns the family's designated standard unit,
// which is the unit all quantities are stored in internally.
type Unit[U any] interface {
	comparable
	Abbreviation() string
	Dimensions() Dimensions
	ToStandard(x float64) float64
	FromStandard(x float64) float64
	Standard() U
}

// Dimensions is the signature of a unit family: the exponent of each
// of the seven base dimensions. The zero value is dimensionless.
type Dimensions struct {
	Length      int
	Mass        int
	Time        int
	Temperature int
	Current     int
	Substance   int
	Luminosity  int
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimensions) IsDimensionless() bool {
	return d == Dimensions{}
}

// String renders the signature with base-unit symbols in fixed order,
// positive powers ahead of negative powers, e.g. "kg m^-1 s^-2" for
// pressure. A dimensionless signature renders as "1".
func (d Dimensions) String() string {
	type atom struct {
		symbol string
		pow    int
	}
	atoms := []atom{
		{"m", d.Length},
		{"kg", d.Mass},
		{"s", d.Time},
		{"K", d.Temperature},
		{"A", d.Current},
		{"mol", d.Substance},
		{"cd", d.Luminosity},
	}
	var b strings.Builder
	for _, negative := range []bool{false, true} {
		for _, a := range atoms {
			if a.pow == 0 || (a.pow < 0) != negative {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(a.symbol)
			if a.pow != 1 {
				fmt.Fprintf(&b, "^%d", a.pow)
			}
		}
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}

// SI converts the signature to the dimension map used by
// github.com/ctessum/unit, for interoperation with code built on that
// package. The interop library reserves the "mol" symbol, so a
// signature with a substance-amount exponent cannot be converted.
func (d Dimensions) SI() (unit.Dimensions, error) {
	if d.Substance != 0 {
		return nil, fmt.Errorf("units: cannot convert %v to SI interop dimensions: substance amount is not representable", d)
	}
	out := unit.Dimensions{}
	for _, a := range []struct {
		dim unit.Dimension
		pow int
	}{
		{unit.LengthDim, d.Length},
		{unit.MassDim, d.Mass},
		{unit.TimeDim, d.Time},
		{unit.TemperatureDim, d.Temperature},
		{unit.CurrentDim, d.Current},
		{unit.LuminousIntensityDim, d.Luminosity},
	} {
		if a.pow != 0 {
			out[a.dim] = a.pow
		}
	}
	return out, nil
}
