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

	"github.com/ctessum/unit"

	"github.com/spatialmodel/mech/units"
)

func TestSIExport(t *testing.T) {
	p := NewPressure(2, units.Bar)
	u, err := SI(p.Quantity)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Value(), 200000.0; got != want {
		t.Errorf("value = %v; want %v", got, want)
	}
	if !u.Dimensions().Matches(unit.Pascal) {
		t.Errorf("dimensions = %v; want %v", u.Dimensions(), unit.Pascal)
	}

	f, err := SI(NewFrequency(50, units.Hertz).Quantity)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Dimensions().Matches(unit.Herz) {
		t.Errorf("dimensions = %v; want %v", f.Dimensions(), unit.Herz)
	}
	if got, want := f.Value(), 50.0; got != want {
		t.Errorf("value = %v; want %v", got, want)
	}
}
