/*
 * geometry.go, part of intcoord.
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

// Atom contains the information of one atom of a geometry. Index is the
// 0-based position of the atom in the geometry.
type Atom struct {
	Index  int
	Symbol string
}

// Geometry is an ordered set of atoms and their cartesian coordinates (A).
// The ith row of Coords belongs to Atoms[i]. A Geometry is not modified by
// any function in this package.
type Geometry struct {
	Atoms  []*Atom
	Coords *v3.Matrix
}

// NewGeometry builds a Geometry from the element symbols and a flat slice of
// coordinates (x1,y1,z1,x2,...). coords is not copied.
func NewGeometry(symbols []string, coords []float64) (*Geometry, error) {
	if len(symbols) == 0 {
		return nil, &CError{msg: "a geometry needs at least one atom", deco: []string{"NewGeometry"}}
	}
	if len(coords) != 3*len(symbols) {
		return nil, &CError{msg: fmt.Sprintf("%d atoms need %d coordinates, got %d", len(symbols), 3*len(symbols), len(coords)), deco: []string{"NewGeometry"}}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, &CError{msg: err.Error(), deco: []string{"NewMatrix", "NewGeometry"}}
	}
	ats := make([]*Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &Atom{Index: i, Symbol: s}
	}
	return &Geometry{Atoms: ats, Coords: c}, nil
}

// Len returns the number of atoms in the geometry.
func (G *Geometry) Len() int {
	return len(G.Atoms)
}

// Atom returns the ith atom.
func (G *Geometry) Atom(i int) *Atom {
	return G.Atoms[i]
}

// Coord returns a view of the coordinates of the ith atom.
func (G *Geometry) Coord(i int) *v3.Matrix {
	return G.Coords.VecView(i)
}
