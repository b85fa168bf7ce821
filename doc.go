/*
 * doc.go, part of intcoord.
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

// Package intcoord derives internal coordinates (bonds, bond angles and
// torsions) from the cartesian coordinates of a set of atoms.
//
// Bonds are assigned with a distance criterion: two atoms are bonded if
// they are closer than BondFactor times the sum of their covalent radii.
// Angles and torsions are then enumerated by walking the resulting bond graph.
//
// All atom indexes are 0-based. Functions in this package never modify their inputs.
//
// A geometry with an element that has no covalent radius can't be analyzed at all.
// On the other hand, an angle or torsion that is undefined (coincident or collinear atoms)
// only affects that entry, which carries a DegenerateGeometryError in its Err field.
package intcoord
