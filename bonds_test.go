/*
 * bonds_test.go, part of intcoord.
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
	"errors"
	"math"
	"testing"
)

func TestEthaneBonds(Te *testing.T) {
	G := ethane(Te)
	bonds, bg, err := BuildBonds(G)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 7 || bg.NBonds() != 7 {
		Te.Fatalf("expected 7 bonds, got %d (graph: %d)", len(bonds), bg.NBonds())
	}
	cc, ch := 0, 0
	for _, b := range bonds {
		if b.I >= b.J {
			Te.Errorf("bond %d-%d not ordered", b.I, b.J)
		}
		switch G.Atom(b.I).Symbol + G.Atom(b.J).Symbol {
		case "CC":
			cc++
			if math.Abs(b.Dist-1.54) > 1e-9 {
				Te.Errorf("wrong C-C distance %v", b.Dist)
			}
		case "CH":
			ch++
			if math.Abs(b.Dist-1.09) > 1e-9 {
				Te.Errorf("wrong C-H distance %v", b.Dist)
			}
		default:
			Te.Errorf("unexpected bond %d-%d", b.I, b.J)
		}
	}
	if cc != 1 || ch != 6 {
		Te.Errorf("expected 1 C-C and 6 C-H bonds, got %d and %d", cc, ch)
	}
	want := [][]int{{1, 2, 3, 4}, {0, 5, 6, 7}, {0}, {0}, {0}, {1}, {1}, {1}}
	for i, w := range want {
		got := bg.Neighbors(i)
		if len(got) != len(w) {
			Te.Fatalf("atom %d: neighbors %v, want %v", i, got, w)
		}
		for k := range w {
			if got[k] != w[k] {
				Te.Errorf("atom %d: neighbors %v, want %v", i, got, w)
				break
			}
		}
	}
	again := bg.Bonds(G)
	for i := range bonds {
		if again[i] != bonds[i] {
			Te.Errorf("Bonds from graph differ at %d: %v vs %v", i, again[i], bonds[i])
		}
	}
}

func TestBondSymmetry(Te *testing.T) {
	//A water dimer plus a lone argon.
	G := mustGeometry(Te, []string{"O", "H", "H", "O", "H", "H", "Ar"}, []float64{
		0, 0, 0,
		0.96, 0, 0,
		-0.24, 0.93, 0,
		2.9, 0, 0,
		3.2, 0.9, 0.1,
		3.2, -0.5, 0.8,
		10, 10, 10,
	})
	_, bg, err := BuildBonds(G)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < bg.Len(); i++ {
		for _, j := range bg.Neighbors(i) {
			if j == i {
				Te.Errorf("atom %d bonded to itself", i)
			}
			if !bg.Bonded(j, i) {
				Te.Errorf("%d-%d bonded but %d-%d not", i, j, j, i)
			}
		}
	}
	if bg.NBonds() != 4 {
		Te.Errorf("expected 4 bonds, got %d", bg.NBonds())
	}
	if len(bg.Neighbors(6)) != 0 {
		Te.Errorf("argon should have no bonds, got %v", bg.Neighbors(6))
	}
	if bg.Bonded(0, 99) || bg.Bonded(-1, 0) {
		Te.Error("out of range atoms can't be bonded")
	}
}

func TestBondThreshold(Te *testing.T) {
	thres, err := BondThreshold("C", "H")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(thres-1.2*(0.77+0.37)) > 1e-12 {
		Te.Errorf("wrong threshold %v", thres)
	}
	for _, c := range []struct {
		name   string
		d      float64
		bonded bool
	}{
		{"below", math.Nextafter(thres, 0), true},
		{"at", thres, false},
		{"above", math.Nextafter(thres, 10), false},
	} {
		G := mustGeometry(Te, []string{"C", "H"}, []float64{0, 0, 0, c.d, 0, 0})
		bonds, bg, err := BuildBonds(G)
		if err != nil {
			Te.Fatal(err)
		}
		if (len(bonds) == 1) != c.bonded || bg.Bonded(0, 1) != c.bonded {
			Te.Errorf("%s threshold: expected bonded=%v, got %d bonds", c.name, c.bonded, len(bonds))
		}
	}
}

func TestBondFactor(Te *testing.T) {
	G := mustGeometry(Te, []string{"C", "C"}, []float64{0, 0, 0, 2.0, 0, 0})
	if _, bg, _ := BuildBonds(G); bg.NBonds() != 0 {
		Te.Error("2.0 A C-C should not be bonded with the default factor")
	}
	_, bg, err := BuildBondsWithFactor(G, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	if bg.NBonds() != 1 {
		Te.Error("2.0 A C-C should be bonded with a factor of 1.5")
	}
	if _, _, err := BuildBondsWithFactor(G, 0); err == nil {
		Te.Error("expected error for a zero bond factor")
	}
}

func TestUnknownElement(Te *testing.T) {
	//The unknown atom is the last one, and it is far from everything else.
	G := mustGeometry(Te, []string{"C", "H", "Xx"}, []float64{0, 0, 0, 1.09, 0, 0, 50, 50, 50})
	bonds, bg, err := BuildBonds(G)
	if err == nil {
		Te.Fatal("expected an error for element Xx")
	}
	if bonds != nil || bg != nil {
		Te.Error("no partial result should be returned")
	}
	if !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("expected ErrUnknownElement, got %v", err)
	}
	var uerr *UnknownElementError
	if !errors.As(err, &uerr) || uerr.Symbol != "Xx" || uerr.Index != 2 {
		Te.Errorf("wrong error details: %v", err)
	}
	deco := uerr.Decorate("")
	if len(deco) != 2 || deco[1] != "BuildBonds" {
		Te.Errorf("wrong decoration %v", deco)
	}
	//a single unknown atom also fails, even if there are no pairs to examine.
	G = mustGeometry(Te, []string{"Uuo"}, []float64{0, 0, 0})
	if _, _, err := BuildBonds(G); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("expected ErrUnknownElement for a single atom, got %v", err)
	}
}

func TestDummyAtom(Te *testing.T) {
	//X has a radius of zero, which is not the same as not having one.
	G := mustGeometry(Te, []string{"X", "O"}, []float64{0, 0, 0, 0.8, 0, 0})
	_, bg, err := BuildBonds(G)
	if err != nil {
		Te.Fatal(err)
	}
	if !bg.Bonded(0, 1) {
		Te.Error("X-O at 0.8 A is under 1.2*(0+0.73) and should be bonded")
	}
}
