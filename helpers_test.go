/*
 * helpers_test.go, part of intcoord.
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
	"testing"
)

func mustGeometry(Te *testing.T, symbols []string, coords []float64) *Geometry {
	Te.Helper()
	G, err := NewGeometry(symbols, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return G
}

// ethane returns a staggered ethane: C1 at the origin, C2 on +z, the
// hydrogens of C1 at azimuths 0, 120 and 240 degrees and those of C2 at 60, 180 and 300.
func ethane(Te *testing.T) *Geometry {
	const rCH, rCC = 1.09, 1.54
	tetra := Deg2Rad(109.4712206)
	z := rCH * math.Cos(tetra) //negative
	rad := rCH * math.Sin(tetra)
	symbols := []string{"C", "C", "H", "H", "H", "H", "H", "H"}
	coords := []float64{0, 0, 0, 0, 0, rCC}
	for _, phi := range []float64{0, 120, 240} {
		p := Deg2Rad(phi)
		coords = append(coords, rad*math.Cos(p), rad*math.Sin(p), z)
	}
	for _, phi := range []float64{60, 180, 300} {
		p := Deg2Rad(phi)
		coords = append(coords, rad*math.Cos(p), rad*math.Sin(p), rCC-z)
	}
	return mustGeometry(Te, symbols, coords)
}

// angDiff returns the difference a-b between two angles in degrees, wrapped to [-180,180].
func angDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}
