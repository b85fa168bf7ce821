/*
 * analysis.go, part of intcoord.
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

// Analysis contains all the internal coordinates derived from one geometry.
type Analysis struct {
	Geometry *Geometry
	Bonds    []Bond
	Graph    *BondGraph
	Angles   []Angle
	Torsions []Torsion
}

// Analyze builds the bond graph of G and, from it, all the angles and torsions.
// An error is returned only if the bond graph can't be built (e.g. an unknown element).
// Angles or torsions that could not be computed are flagged in the result,
// see Analysis.Failures.
func Analyze(G *Geometry) (*Analysis, error) {
	A, err := AnalyzeWithFactor(G, BondFactor)
	return A, errDecorate(err, "Analyze")
}

// AnalyzeWithFactor is like Analyze, but uses factor instead of BondFactor
// to assign bonds.
func AnalyzeWithFactor(G *Geometry, factor float64) (*Analysis, error) {
	bonds, bg, err := BuildBondsWithFactor(G, factor)
	if err != nil {
		return nil, errDecorate(err, "AnalyzeWithFactor")
	}
	return &Analysis{
		Geometry: G,
		Bonds:    bonds,
		Graph:    bg,
		Angles:   Angles(G, bg),
		Torsions: Torsions(G, bg),
	}, nil
}

// Failures returns the errors of all the angles and torsions that could not be
// computed, angles first.
func (A *Analysis) Failures() []error {
	var errs []error
	for _, v := range A.Angles {
		if v.Err != nil {
			errs = append(errs, v.Err)
		}
	}
	for _, v := range A.Torsions {
		if v.Err != nil {
			errs = append(errs, v.Err)
		}
	}
	return errs
}
