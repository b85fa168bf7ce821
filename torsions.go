/*
 * torsions.go, part of intcoord.
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

// Torsion is the dihedral angle I-J-K-L around the J-K bond.
// Value is in degrees, in (-180, 180]. If Err is not nil, the torsion
// could not be computed, and Value is meaningless (0).
type Torsion struct {
	I, J, K, L int
	Value      float64
	Err        error
}

// Torsions returns all the proper dihedrals in the geometry. Every bond J-K is
// used once as the central bond, with J<K, and for it every I bonded to J (I!=K)
// and every L bonded to K (L!=J, L!=I) gives one torsion. The reverse L-K-J-I
// is never included.
// Torsions that can't be computed are returned with a non-nil Err.
func Torsions(G *Geometry, B *BondGraph) []Torsion {
	torsions := make([]Torsion, 0, 2*B.NBonds())
	for j := 0; j < B.Len(); j++ {
		for _, k := range B.Neighbors(j) {
			if k < j {
				continue
			}
			for _, i := range B.Neighbors(j) {
				if i == k {
					continue
				}
				for _, l := range B.Neighbors(k) {
					if l == j || l == i {
						continue
					}
					val, err := Dihedral(G.Coord(i), G.Coord(j), G.Coord(k), G.Coord(l))
					if err != nil {
						err = errDecorate(withAtoms(err, i, j, k, l), "Torsions")
					}
					torsions = append(torsions, Torsion{I: i, J: j, K: k, L: l, Value: val, Err: err})
				}
			}
		}
	}
	return torsions
}

// Dihedral returns the dihedral angle a-b-c-d in degrees, where the first
// plane is defined by abc and the second by bcd. A clockwise rotation
// of d, looking from b to c, is positive (IUPAC convention).
// The result is in (-180, 180].
func Dihedral(a, b, c, d *v3.Matrix) (float64, error) {
	uba, err := UnitVector(a, b)
	if err != nil {
		return 0, errDecorate(err, "Dihedral")
	}
	ubc, err := UnitVector(c, b)
	if err != nil {
		return 0, errDecorate(err, "Dihedral")
	}
	ucb := v3.Zeros(1)
	ucb.ScaleVec(-1, ubc)
	ucd, err := UnitVector(d, c)
	if err != nil {
		return 0, errDecorate(err, "Dihedral")
	}
	n1, err := CrossUnit(uba, ubc) //normal to abc
	if err != nil {
		return 0, errDecorate(err, "Dihedral")
	}
	n2, err := CrossUnit(ucb, ucd) //normal to bcd
	if err != nil {
		return 0, errDecorate(err, "Dihedral")
	}
	mag := Rad2Deg(math.Acos(clampCos(Dot(n1, n2))))
	if mag == 0 {
		return 0, nil
	}
	//d on the side of the abc plane n1 points to means a counterclockwise rotation.
	if Dot(n1, ucd) > 0 {
		mag = -mag
	}
	if mag <= -180 {
		mag += 360
	}
	return mag, nil
}

// FailedTorsions returns the number of torsions that could not be computed.
func FailedTorsions(torsions []Torsion) int {
	n := 0
	for _, v := range torsions {
		if v.Err != nil {
			n++
		}
	}
	return n
}
