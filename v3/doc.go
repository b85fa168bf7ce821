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

// Package v3 implements a Matrix type representing a set of points in 3D space.
// Each row of the matrix is one point (or one vector), so an N-atom geometry is an
// Nx3 matrix. The type wraps a gonum mat.Dense, so every gonum function that takes a
// mat.Matrix can be used on it.
//
// Methods that take vector arguments expect 1x3 matrices, which is what VecView
// returns. Shape mismatches are programming errors and panic, as in gonum.
package v3
