/*
 * structured.go, part of intcoord.
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

package report

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/rmera/intcoord"
)

// AtomRecord is one atom of a Document.
type AtomRecord struct {
	N      int     `json:"n" toml:"n"`
	Symbol string  `json:"symbol" toml:"symbol"`
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Z      float64 `json:"z" toml:"z"`
}

// BondRecord is one bond of a Document. Dist is in A.
type BondRecord struct {
	Atoms   [2]int  `json:"atoms" toml:"atoms"`
	Symbols string  `json:"symbols" toml:"symbols"`
	Dist    float64 `json:"dist" toml:"dist"`
}

// AngleRecord is one angle of a Document, in degrees. If Error is set, Degrees is meaningless.
type AngleRecord struct {
	Atoms   [3]int  `json:"atoms" toml:"atoms"`
	Symbols string  `json:"symbols" toml:"symbols"`
	Degrees float64 `json:"degrees" toml:"degrees"`
	Error   string  `json:"error,omitempty" toml:"error,omitempty"`
}

// TorsionRecord is one torsion of a Document, in degrees. If Error is set, Degrees is meaningless.
type TorsionRecord struct {
	Atoms   [4]int  `json:"atoms" toml:"atoms"`
	Symbols string  `json:"symbols" toml:"symbols"`
	Degrees float64 `json:"degrees" toml:"degrees"`
	Error   string  `json:"error,omitempty" toml:"error,omitempty"`
}

// Document is the machine-readable form of an analysis. Atom numbers are 1-based.
type Document struct {
	Comment  string          `json:"comment,omitempty" toml:"comment,omitempty"`
	Atoms    []AtomRecord    `json:"atoms,omitempty" toml:"atoms,omitempty"`
	Bonds    []BondRecord    `json:"bonds,omitempty" toml:"bonds,omitempty"`
	Angles   []AngleRecord   `json:"angles,omitempty" toml:"angles,omitempty"`
	Torsions []TorsionRecord `json:"torsions,omitempty" toml:"torsions,omitempty"`
}

// NewDocument collects the selected sections of A.
func NewDocument(A *intcoord.Analysis, s Sections, comment string) *Document {
	G := A.Geometry
	d := &Document{Comment: comment}
	if s.Geometry {
		for i, at := range G.Atoms {
			c := G.Coords.Vec(i)
			d.Atoms = append(d.Atoms, AtomRecord{N: i + 1, Symbol: at.Symbol, X: c[0], Y: c[1], Z: c[2]})
		}
	}
	if s.Bonds {
		for _, b := range A.Bonds {
			d.Bonds = append(d.Bonds, BondRecord{Atoms: [2]int{b.I + 1, b.J + 1}, Symbols: symbols(G, b.I, b.J), Dist: b.Dist})
		}
	}
	if s.Angles {
		for _, a := range A.Angles {
			r := AngleRecord{Atoms: [3]int{a.I + 1, a.J + 1, a.K + 1}, Symbols: symbols(G, a.I, a.J, a.K)}
			if a.Err != nil {
				r.Error = reason(a.Err)
			} else {
				r.Degrees = a.Deg()
			}
			d.Angles = append(d.Angles, r)
		}
	}
	if s.Torsions {
		for _, t := range A.Torsions {
			r := TorsionRecord{Atoms: [4]int{t.I + 1, t.J + 1, t.K + 1, t.L + 1}, Symbols: symbols(G, t.I, t.J, t.K, t.L)}
			if t.Err != nil {
				r.Error = reason(t.Err)
			} else {
				r.Degrees = t.Value
			}
			d.Torsions = append(d.Torsions, r)
		}
	}
	return d
}

// WriteJSON writes v, a *Document or a *Summary, as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteTOML writes v, a *Document or a *Summary, as TOML. Each section
// becomes an array of tables.
func WriteTOML(w io.Writer, v interface{}) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}
