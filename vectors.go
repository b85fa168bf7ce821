/*
 * vectors.go, part of intcoord.
 *
 * Copyright 2026 The intcoord Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package intcoord

import (
	"math"

	v3 "github.com/rmera/intcoord/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Distances equal or less than this are considered zero.

// Sines under this are considered zero, i.e. the three atoms defining the
// plane are collinear. A sine of 1e-6 is an angle of about 6e-5 degrees.
const collinearSin = 1e-6

// UnitVector returns the normalized vector from b to a, i.e. (a-b)/|a-b|.
// It returns a DegenerateGeometryError if a and b coincide.
func UnitVector(a, b *v3.Matrix) (*v3.Matrix, error) {
	d := v3.Zeros(1)
	d.SubVec(a, b)
	norm := d.Norm2()
	if norm <= appzero {
		return nil, &DegenerateGeometryError{Reason: "coincident atoms", deco: []string{"UnitVector"}}
	}
	d.ScaleVec(1/norm, d)
	return d, nil
}

// Dot returns the inner product of two 1x3 vectors.
func Dot(u, v *v3.Matrix) float64 {
	return u.Dot(v)
}

// CrossUnit takes two unit vectors u and v and returns u x v divided by the
// sine of the angle between them, which is a unit vector normal to the u-v plane.
// It returns a DegenerateGeometryError if u and v are parallel or antiparallel.
func CrossUnit(u, v *v3.Matrix) (*v3.Matrix, error) {
	cos := clampCos(Dot(u, v))
	sin := math.Sqrt(1 - cos*cos)
	if sin < collinearSin {
		return nil, &DegenerateGeometryError{Reason: "collinear atoms", deco: []string{"CrossUnit"}}
	}
	n := v3.Zeros(1)
	n.Cross(u, v)
	n.ScaleVec(1/sin, n)
	return n, nil
}

// clampCos takes care of floating point errors that would put
// a cosine out of the domain of math.Acos.
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}
