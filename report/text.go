/*
 * text.go, part of intcoord.
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

// Package report renders the results of an intcoord analysis for people and
// for other programs. Atom numbers are 1-based in every output of this package.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/intcoord"
)

// Sections selects what parts of an analysis are rendered.
type Sections struct {
	Geometry bool
	Bonds    bool
	Angles   bool
	Torsions bool
}

// All selects every section.
var All = Sections{Geometry: true, Bonds: true, Angles: true, Torsions: true}

func symbols(G *intcoord.Geometry, idx ...int) string {
	s := make([]string, len(idx))
	for i, v := range idx {
		s[i] = G.Atom(v).Symbol
	}
	return strings.Join(s, "-")
}

func numbers(idx ...int) string {
	s := make([]string, len(idx))
	for i, v := range idx {
		s[i] = fmt.Sprint(v + 1)
	}
	return strings.Join(s, "-")
}

// errWriter keeps the first write error, so the text functions don't
// need to check every Fprintf.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

// WriteGeometry writes the atoms and their coordinates.
func WriteGeometry(w io.Writer, G *intcoord.Geometry, title string) error {
	e := &errWriter{w: w}
	e.printf("%s\n", title)
	for i, at := range G.Atoms {
		c := G.Coords.Vec(i)
		e.printf("%-4d %-2s %12.6f %12.6f %12.6f\n", i+1, at.Symbol, c[0], c[1], c[2])
	}
	e.printf("\n")
	return e.err
}

// WriteBonds writes one line per bond, with the distance in A.
func WriteBonds(w io.Writer, G *intcoord.Geometry, bonds []intcoord.Bond) error {
	e := &errWriter{w: w}
	e.printf("%d bond(s) found (Angstrom)\n", len(bonds))
	for _, b := range bonds {
		e.printf("%-8s %-12s %10.4f\n", numbers(b.I, b.J), "("+symbols(G, b.I, b.J)+")", b.Dist)
	}
	e.printf("\n")
	return e.err
}

// WriteAngles writes one line per angle, in degrees. Angles that could
// not be computed are marked as degenerate.
func WriteAngles(w io.Writer, G *intcoord.Geometry, angles []intcoord.Angle) error {
	e := &errWriter{w: w}
	e.printf("%d angle(s) found (degrees)\n", len(angles))
	for _, a := range angles {
		n, s := numbers(a.I, a.J, a.K), "("+symbols(G, a.I, a.J, a.K)+")"
		if a.Err != nil {
			e.printf("%-10s %-14s degenerate: %s\n", n, s, reason(a.Err))
			continue
		}
		e.printf("%-10s %-14s %10.3f\n", n, s, a.Deg())
	}
	e.printf("\n")
	return e.err
}

// WriteTorsions writes one line per torsion, in degrees. Torsions that could
// not be computed are marked as degenerate.
func WriteTorsions(w io.Writer, G *intcoord.Geometry, torsions []intcoord.Torsion) error {
	e := &errWriter{w: w}
	e.printf("%d torsion(s) found (degrees)\n", len(torsions))
	for _, t := range torsions {
		n, s := numbers(t.I, t.J, t.K, t.L), "("+symbols(G, t.I, t.J, t.K, t.L)+")"
		if t.Err != nil {
			e.printf("%-12s %-16s degenerate: %s\n", n, s, reason(t.Err))
			continue
		}
		e.printf("%-12s %-16s %10.3f\n", n, s, t.Value)
	}
	e.printf("\n")
	return e.err
}

// reason returns the short description of a degenerate geometry error.
func reason(err error) string {
	var d *intcoord.DegenerateGeometryError
	if errors.As(err, &d) {
		return d.Reason
	}
	return err.Error()
}

// WriteText writes the selected sections of A.
func WriteText(w io.Writer, A *intcoord.Analysis, s Sections) error {
	if s.Geometry {
		if err := WriteGeometry(w, A.Geometry, "initial geometry"); err != nil {
			return err
		}
	}
	if s.Bonds {
		if err := WriteBonds(w, A.Geometry, A.Bonds); err != nil {
			return err
		}
	}
	if s.Angles {
		if err := WriteAngles(w, A.Geometry, A.Angles); err != nil {
			return err
		}
	}
	if s.Torsions {
		if err := WriteTorsions(w, A.Geometry, A.Torsions); err != nil {
			return err
		}
	}
	return nil
}
