/*
 * angles.go, part of intcoord.
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

// Angle is the bond angle I-J-K, with J the central atom.
// Value is in radians, in [0, Pi]. If Err is not nil, the angle
// could not be computed, and Value is meaningless (0).
type Angle struct {
	I, J, K int
	Value   float64
	Err     error
}

// Deg returns the value of the angle in degrees.
func (A Angle) Deg() float64 {
	return Rad2Deg(A.Value)
}

// Angles returns all the bond angles in the geometry, i.e. for every atom J,
// all the pairs of atoms bonded to J. The angles are ordered by central atom,
// then by the order of the neighbors in the bond graph. Each I-J-K appears only once
// (K-J-I is not included).
// Angles that can't be computed are returned with a non-nil Err.
func Angles(G *Geometry, B *BondGraph) []Angle {
	angles := make([]Angle, 0, 2*B.NBonds())
	for j := 0; j < B.Len(); j++ {
		neigh := B.Neighbors(j)
		for a := 0; a < len(neigh); a++ {
			i := neigh[a]
			for b := a + 1; b < len(neigh); b++ {
				k := neigh[b]
				val, err := BondAngle(G.Coord(i), G.Coord(j), G.Coord(k))
				if err != nil {
					err = errDecorate(withAtoms(err, i, j, k), "Angles")
				}
				angles = append(angles, Angle{I: i, J: j, K: k, Value: val, Err: err})
			}
		}
	}
	return angles
}

// BondAngle returns the angle a-b-c, in radians, with b as the vertex.
func BondAngle(a, b, c *v3.Matrix) (float64, error) {
	uba, err := UnitVector(a, b)
	if err != nil {
		return 0, errDecorate(err, "BondAngle")
	}
	ubc, err := UnitVector(c, b)
	if err != nil {
		return 0, errDecorate(err, "BondAngle")
	}
	return math.Acos(clampCos(Dot(uba, ubc))), nil
}

// FailedAngles returns the number of angles that could not be computed.
func FailedAngles(angles []Angle) int {
	n := 0
	for _, v := range angles {
		if v.Err != nil {
			n++
		}
	}
	return n
}
