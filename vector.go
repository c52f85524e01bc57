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
	"fmt"

	"github.com/spatialmodel/mech/tensor"
	"github.com/spatialmodel/mech/units"
)

// Displacement is a vector-valued length, stored in metres.
type Displacement struct {
	Quantity[tensor.Vector, units.Length]
}

// NewDisplacement returns a displacement holding v expressed in unit u.
func NewDisplacement(v tensor.Vector, u units.Length) Displacement {
	return Displacement{New(v, u)}
}

func (d Displacement) Add(o Displacement) Displacement { return Displacement{d.Quantity.Add(o.Quantity)} }

func (d Displacement) Sub(o Displacement) Displacement { return Displacement{d.Quantity.Sub(o.Quantity)} }

func (d Displacement) Mul(k float64) Displacement { return Displacement{d.Quantity.Scale(k)} }

func (d Displacement) Div(k float64) Displacement { return Displacement{d.Quantity.Div(k)} }

func (d Displacement) Equal(o Displacement) bool { return d.Quantity.Equal(o.Quantity) }

func (d Displacement) Less(o Displacement) bool { return d.Quantity.Less(o.Quantity) }

// Zero returns the zero Displacement.
func (Displacement) Zero() Displacement { return Displacement{} }

// Norm returns the displacement magnitude as a length.
func (d Displacement) Norm() Length {
	return NewLength(d.value.Norm(), units.Metre)
}

// Velocity is a vector-valued speed, stored in metres per second.
type Velocity struct {
	Quantity[tensor.Vector, units.Speed]
}

// NewVelocity returns a velocity holding v expressed in unit u.
func NewVelocity(v tensor.Vector, u units.Speed) Velocity {
	return Velocity{New(v, u)}
}

func (v Velocity) Add(o Velocity) Velocity { return Velocity{v.Quantity.Add(o.Quantity)} }

func (v Velocity) Sub(o Velocity) Velocity { return Velocity{v.Quantity.Sub(o.Quantity)} }

func (v Velocity) Mul(k float64) Velocity { return Velocity{v.Quantity.Scale(k)} }

func (v Velocity) Div(k float64) Velocity { return Velocity{v.Quantity.Div(k)} }

func (v Velocity) Equal(o Velocity) bool { return v.Quantity.Equal(o.Quantity) }

func (v Velocity) Less(o Velocity) bool { return v.Quantity.Less(o.Quantity) }

// Zero returns the zero Velocity.
func (Velocity) Zero() Velocity { return Velocity{} }

// AccelerationVector is a vector-valued acceleration, stored in metres
// per square second.
type AccelerationVector struct {
	Quantity[tensor.Vector, units.Acceleration]
}

// NewAccelerationVector returns an acceleration holding v expressed in
// unit u.
func NewAccelerationVector(v tensor.Vector, u units.Acceleration) AccelerationVector {
	return AccelerationVector{New(v, u)}
}

func (a AccelerationVector) Add(o AccelerationVector) AccelerationVector {
	return AccelerationVector{a.Quantity.Add(o.Quantity)}
}

func (a AccelerationVector) Sub(o AccelerationVector) AccelerationVector {
	return AccelerationVector{a.Quantity.Sub(o.Quantity)}
}

func (a AccelerationVector) Mul(k float64) AccelerationVector {
	return AccelerationVector{a.Quantity.Scale(k)}
}

func (a AccelerationVector) Div(k float64) AccelerationVector {
	return AccelerationVector{a.Quantity.Div(k)}
}

func (a AccelerationVector) Equal(o AccelerationVector) bool { return a.Quantity.Equal(o.Quantity) }

func (a AccelerationVector) Less(o AccelerationVector) bool { return a.Quantity.Less(o.Quantity) }

// Zero returns the zero AccelerationVector.
func (AccelerationVector) Zero() AccelerationVector { return AccelerationVector{} }

// ForceVector is a vector-valued force, stored in newtons.
type ForceVector struct {
	Quantity[tensor.Vector, units.Force]
}

// NewForceVector returns a force holding v expressed in unit u.
func NewForceVector(v tensor.Vector, u units.Force) ForceVector {
	return ForceVector{New(v, u)}
}

func (f ForceVector) Add(o ForceVector) ForceVector { return ForceVector{f.Quantity.Add(o.Quantity)} }

func (f ForceVector) Sub(o ForceVector) ForceVector { return ForceVector{f.Quantity.Sub(o.Quantity)} }

func (f ForceVector) Mul(k float64) ForceVector { return ForceVector{f.Quantity.Scale(k)} }

func (f ForceVector) Div(k float64) ForceVector { return ForceVector{f.Quantity.Div(k)} }

func (f ForceVector) Equal(o ForceVector) bool { return f.Quantity.Equal(o.Quantity) }

func (f ForceVector) Less(o ForceVector) bool { return f.Quantity.Less(o.Quantity) }

// Zero returns the zero ForceVector.
func (ForceVector) Zero() ForceVector { return ForceVector{} }

// Norm returns the force magnitude.
func (f ForceVector) Norm() Force {
	return NewForce(f.value.Norm(), units.Newton)
}

// VelocityFromDisplacementTime derives the mean velocity covering
// displacement d in duration t.
func VelocityFromDisplacementTime(d Displacement, t Time) (Velocity, error) {
	if t.IsZero() {
		return Velocity{}, fmt.Errorf("mech: cannot divide %s by zero duration %s", d, t)
	}
	return NewVelocity(d.value.Scale(1/float64(t.value)), units.MetrePerSecond), nil
}

// DisplacementFromVelocityTime derives the displacement covered at
// velocity v over duration t.
func DisplacementFromVelocityTime(v Velocity, t Time) Displacement {
	return NewDisplacement(v.value.Scale(float64(t.value)), units.Metre)
}

// SpeedFromVelocity derives the scalar speed, the velocity magnitude.
func SpeedFromVelocity(v Velocity) Speed {
	return NewSpeed(v.value.Norm(), units.MetrePerSecond)
}

// ForceVectorFromMassAcceleration derives the force accelerating mass
// m at a.
func ForceVectorFromMassAcceleration(m Mass, a AccelerationVector) ForceVector {
	return NewForceVector(a.value.Scale(float64(m.value)), units.Newton)
}

// AccelerationVectorFromForceMass derives the acceleration of mass m
// under force f.
func AccelerationVectorFromForceMass(f ForceVector, m Mass) (AccelerationVector, error) {
	if m.IsZero() {
		return AccelerationVector{}, fmt.Errorf("mech: cannot divide %s by zero mass %s", f, m)
	}
	return NewAccelerationVector(f.value.Scale(1/float64(m.value)), units.MetrePerSquareSecond), nil
}
