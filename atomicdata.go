/*
 * atomicdata.go, part of intcoord.
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

// BondFactor scales the sum of the covalent radii of two atoms to give
// the distance under which they are considered bonded.
const BondFactor = 1.2

// A map for assigning covalent radii (A) to elements.
// "X" is a dummy atom. It has a radius of 0, which is a valid value, so
// lookups must check for presence, not for 0.
var symbolCovrad = map[string]float64{
	"H":  0.37,
	"He": 0.30,
	"Li": 1.02,
	"Be": 0.27,
	"B":  0.88,
	"C":  0.77,
	"N":  0.75,
	"O":  0.73,
	"F":  0.71,
	"Ne": 0.84,
	"Na": 1.02,
	"Mg": 0.72,
	"Al": 1.30,
	"Si": 1.18,
	"P":  1.10,
	"S":  1.03,
	"Cl": 0.99,
	"Ar": 1.00,
	"K":  1.38,
	"Ca": 1.00,
	"Sc": 0.75,
	"Ti": 0.86,
	"V":  0.79,
	"Cr": 0.73,
	"Mn": 0.67,
	"Fe": 0.61,
	"Co": 0.64,
	"Ni": 0.55,
	"Cu": 0.46,
	"Zn": 0.60,
	"Ga": 1.22,
	"Ge": 1.22,
	"As": 1.22,
	"Se": 1.17,
	"Br": 1.14,
	"Kr": 1.03,
	"I":  1.33,
	"X":  0.00,
}

// Covrad returns the covalent radius, in A, for the element symbol.
// Symbols are case-sensitive ("Cl", not "CL").
func Covrad(symbol string) (float64, error) {
	r, ok := symbolCovrad[symbol]
	if !ok {
		return 0, &UnknownElementError{Symbol: symbol, Index: -1, deco: []string{"Covrad"}}
	}
	return r, nil
}

// BondThreshold returns the distance under which two atoms with the given symbols
// are considered bonded, using BondFactor.
func BondThreshold(symbol1, symbol2 string) (float64, error) {
	return bondThreshold(symbol1, symbol2, BondFactor)
}

func bondThreshold(symbol1, symbol2 string, factor float64) (float64, error) {
	r1, err := Covrad(symbol1)
	if err != nil {
		return 0, errDecorate(err, "BondThreshold")
	}
	r2, err := Covrad(symbol2)
	if err != nil {
		return 0, errDecorate(err, "BondThreshold")
	}
	return factor * (r1 + r2), nil
}

