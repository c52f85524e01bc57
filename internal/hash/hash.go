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

// Package hash derives hash keys for quantity values, so that
// quantities can be deduplicated or used as map keys by their
// standard-unit components.
package hash

import (
	"encoding/gob"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

// Key returns a 64-bit FNV-1a hash key for object. Objects that are
// equal under reflect.DeepEqual receive equal keys.
func Key(object interface{}) uint64 {
	h := fnv.New64a()
	e := gob.NewEncoder(h)
	if err := e.Encode(object); err == nil {
		return h.Sum64()
	}
	// gob cannot encode every value; spew always can.
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	return h.Sum64()
}
