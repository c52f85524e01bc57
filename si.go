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
	"github.com/ctessum/unit"

	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// SI exports a scalar quantity as a dimensioned unit.Unit holding the
// standard-unit magnitude, for interoperation with code built on the
// unit package. It returns an error when the family's dimension
// signature has no unit.Dimensions equivalent.
func SI[U units.Unit[U]](q Quantity[tensor.Scalar, U]) (*unit.Unit, error) {
	var u U
	dims, err := u.Dimensions().SI()
	if err != nil {
		return nil, err
	}
	return unit.New(float64(q.Value()), dims), nil
}
