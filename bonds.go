/*
 * bonds.go, part of intcoord.
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
	"fmt"

	v3 "github.com/rmera/intcoord/v3"
)

// Bond is a pair of bonded atoms, I < J, and the distance between them (A).
type Bond struct {
	I, J int
	Dist float64
}

// BondGraph contains, for every atom index, the indexes of the atoms bonded to it.
// The neighbors of each atom are kept in the order in which the bonds were found,
// which is the order the angle and torsion enumerations follow.
// A BondGraph is read-only once built.
type BondGraph struct {
	neighbors [][]int
	nbonds    int
	geom      *Geometry
}

// Len returns the number of atoms (bonded or not) in the graph.
func (B *BondGraph) Len() int {
	return len(B.neighbors)
}

// NBonds returns the number of bonds in the graph.
func (B *BondGraph) NBonds() int {
	return B.nbonds
}

// Neighbors returns the atoms bonded to atom i. The returned slice must not be modified.
func (B *BondGraph) Neighbors(i int) []int {
	return B.neighbors[i]
}

// Bonded returns true if atoms i and j are bonded.
func (B *BondGraph) Bonded(i, j int) bool {
	if i < 0 || j < 0 || i >= len(B.neighbors) || j >= len(B.neighbors) {
		return false
	}
	for _, v := range B.neighbors[i] {
		if v == j {
			return true
		}
	}
	return false
}

func (B *BondGraph) add(i, j int) {
	B.neighbors[i] = append(B.neighbors[i], j)
	B.neighbors[j] = append(B.neighbors[j], i)
	B.nbonds++
}

// BuildBonds assigns bonds to a geometry. Two atoms are bonded if their distance is
// strictly less than BondFactor times the sum of their covalent radii.
// It returns the bonds, each pair once with I<J, and the bond graph.
// If any atom has an element without a tabulated radius, an error
// is returned and no bonds are assigned.
func BuildBonds(G *Geometry) ([]Bond, *BondGraph, error) {
	b, g, err := BuildBondsWithFactor(G, BondFactor)
	return b, g, errDecorate(err, "BuildBonds")
}

// BuildBondsWithFactor is like BuildBonds, but scales the sum of radii by factor.
func BuildBondsWithFactor(G *Geometry, factor float64) ([]Bond, *BondGraph, error) {
	if factor <= 0 {
		return nil, nil, &CError{msg: fmt.Sprintf("non-positive bond factor %g", factor), deco: []string{"BuildBondsWithFactor"}}
	}
	tot := G.Len()
	//All the radii are checked first, so a missing element fails
	//the same way no matter where it is in the geometry.
	radii := make([]float64, tot)
	for i, at := range G.Atoms {
		r, ok := symbolCovrad[at.Symbol]
		if !ok {
			return nil, nil, &UnknownElementError{Symbol: at.Symbol, Index: i, deco: []string{"BuildBondsWithFactor"}}
		}
		radii[i] = r
	}
	bg := &BondGraph{neighbors: make([][]int, tot), geom: G}
	bonds := make([]Bond, 0, tot)
	var t1, t2 *v3.Matrix
	// O(N^2), but the geometries we deal with are small.
	for i := 0; i < tot; i++ {
		t1 = G.Coord(i)
		for j := i + 1; j < tot; j++ {
			t2 = G.Coord(j)
			d := v3.Distance(t1, t2)
			if d < factor*(radii[i]+radii[j]) {
				bonds = append(bonds, Bond{I: i, J: j, Dist: d})
				bg.add(i, j)
			}
		}
	}
	return bonds, bg, nil
}

// Bonds derives the bond list from the graph and the geometry, in the same
// order as BuildBonds produces it.
func (B *BondGraph) Bonds(G *Geometry) []Bond {
	bonds := make([]Bond, 0, B.nbonds)
	for i, neigh := range B.neighbors {
		for _, j := range neigh {
			if i < j {
				bonds = append(bonds, Bond{I: i, J: j, Dist: v3.Distance(G.Coord(i), G.Coord(j))})
			}
		}
	}
	return bonds
}
