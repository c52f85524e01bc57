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

package tensor

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const testTolerance = 1.e-12

func different(a, b, tolerance float64) bool {
	if 2*abs(a-b)/abs(a+b) > tolerance && abs(a-b) > tolerance {
		return true
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -5, 6}
	if got, want := a.Add(b), (Vector{5, -3, 9}); got != want {
		t.Errorf("Add = %v; want %v", got, want)
	}
	if got, want := a.Sub(b), (Vector{-3, 7, -3}); got != want {
		t.Errorf("Sub = %v; want %v", got, want)
	}
	if got, want := a.Scale(2), (Vector{2, 4, 6}); got != want {
		t.Errorf("Scale = %v; want %v", got, want)
	}
	if got, want := a.Dot(b), 12.0; got != want {
		t.Errorf("Dot = %v; want %v", got, want)
	}
	if got, want := a.Cross(b), (Vector{27, 6, -13}); got != want {
		t.Errorf("Cross = %v; want %v", got, want)
	}
	if got, want := (Vector{3, 4, 0}).Norm(), 5.0; got != want {
		t.Errorf("Norm = %v; want %v", got, want)
	}
}

func TestLexicographicOrdering(t *testing.T) {
	cases := []struct {
		a, b Vector
		less bool
	}{
		{Vector{1, 2, 3}, Vector{1, 2, 3}, false},
		{Vector{1, 2, 3}, Vector{1, 2, 4}, true},
		{Vector{1, 2, 3}, Vector{1, 3, 0}, true},
		{Vector{2, 0, 0}, Vector{1, 9, 9}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.less {
			t.Errorf("%v.Less(%v) = %v; want %v", c.a, c.b, got, c.less)
		}
	}
	s := SymDyad{1, 2, 3, 4, 5, 6}
	if s.Less(s) {
		t.Error("a symmetric dyad must not order below itself")
	}
	if !s.Less(SymDyad{1, 2, 3, 4, 5, 7}) {
		t.Error("ordering must fall through to the last unique component")
	}
}

func TestDyadTraceTranspose(t *testing.T) {
	d := Dyad{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	if got, want := d.Trace(), 15.0; got != want {
		t.Errorf("Trace = %v; want %v", got, want)
	}
	tr := d.Transpose()
	if got, want := tr.XY, 4.0; got != want {
		t.Errorf("Transpose.XY = %v; want %v", got, want)
	}
	if d.IsSymmetric() {
		t.Error("d is not symmetric")
	}
	s := SymDyad{1, 2, 3, 4, 5, 6}
	if !s.Dyad().IsSymmetric() {
		t.Error("an expanded SymDyad must be symmetric")
	}
	if got, want := s.Trace(), s.Dyad().Trace(); got != want {
		t.Errorf("trace mismatch between SymDyad (%v) and expansion (%v)", got, want)
	}
}

func TestGonumViews(t *testing.T) {
	d := Dyad{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	if got := mat.Trace(d.Mat()); got != d.Trace() {
		t.Errorf("mat.Trace = %v; want %v", got, d.Trace())
	}
	s := SymDyad{2, -1, 0, 2, -1, 2}
	var sum mat.Dense
	sum.Add(s.Sym(), s.Sym())
	want := s.Add(s)
	if !floats.Equal(sum.RawMatrix().Data, want.Dyad().Components()) {
		t.Errorf("gonum sum disagrees with componentwise Add")
	}
	// gonum's scaled norm can differ from the direct computation in
	// the last ulp.
	v := Vector{1, 2, 3}
	if got := mat.Norm(v.Vec(), 2); different(got, v.Norm(), testTolerance) {
		t.Errorf("mat.Norm = %v; want %v", got, v.Norm())
	}
}

func TestFormatting(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Scalar(1.11).Format(15), "1.110000000000000"},
		{Scalar(-2).JSON(2), "-2.00"},
		{Vector{1, -2, 3}.Format(1), "(1.0, -2.0, 3.0)"},
		{Vector{1, -2, 3}.JSON(0), `{"x":1,"y":-2,"z":3}`},
		{Vector{1, -2, 3}.XML(0), "<x>1</x><y>-2</y><z>3</z>"},
		{Vector{1, -2, 3}.YAML(0), "{x:1,y:-2,z:3}"},
		{SymDyad{1, 2, 3, 4, 5, 6}.Format(0), "(1, 2, 3; 4, 5; 6)"},
		{SymDyad{1, 2, 3, 4, 5, 6}.JSON(0), `{"xx":1,"xy":2,"xz":3,"yy":4,"yz":5,"zz":6}`},
		{SymDyad{1, 2, 3, 4, 5, 6}.YAML(0), "{xx:1,xy:2,xz:3,yy:4,yz:5,zz:6}"},
		{Dyad{1, 2, 3, 4, 5, 6, 7, 8, 9}.Format(0), "(1, 2, 3; 4, 5, 6; 7, 8, 9)"},
		{Dyad{1, 2, 3, 4, 5, 6, 7, 8, 9}.JSON(0), `{"xx":1,"xy":2,"xz":3,"yx":4,"yy":5,"yz":6,"zx":7,"zy":8,"zz":9}`},
		{Dyad{1, 2, 3, 4, 5, 6, 7, 8, 9}.XML(0), "<xx>1</xx><xy>2</xy><xz>3</xz><yx>4</yx><yy>5</yy><yz>6</yz><zx>7</zx><zy>8</zy><zz>9</zz>"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("case %d: got %q; want %q", i, c.got, c.want)
		}
	}
}

func TestMapConversion(t *testing.T) {
	s := SymDyad{32, 1, -2, 16, -1, 8}
	doubled := s.Map(func(x float64) float64 { return x * 2 })
	if doubled != s.Scale(2) {
		t.Error("Map with doubling must equal Scale(2)")
	}
	if got := SymIdentity().Trace(); got != 3 {
		t.Errorf("identity trace = %v; want 3", got)
	}
}
