/*
 * stats.go, part of intcoord.
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
	"io"
	"math"
	"sort"

	"github.com/rmera/intcoord"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
)

// Stat summarizes the values of one kind of internal coordinate, e.g. all the
// C-H bonds. For torsions, the statistics are on the absolute values.
type Stat struct {
	Pattern string  `json:"pattern" toml:"pattern"`
	N       int     `json:"n" toml:"n"`
	Mean    float64 `json:"mean" toml:"mean"`
	StdDev  float64 `json:"stddev" toml:"stddev"`
	Min     float64 `json:"min" toml:"min"`
	Max     float64 `json:"max" toml:"max"`
}

// Summary contains statistics over a whole analysis.
type Summary struct {
	Atoms          int    `json:"atoms" toml:"atoms"`
	Components     int    `json:"components" toml:"components"` //connected fragments in the bond graph
	Bonds          []Stat `json:"bonds" toml:"bonds"`
	Angles         []Stat `json:"angles" toml:"angles"`
	Torsions       []Stat `json:"torsions" toml:"torsions"`
	FailedAngles   int    `json:"failed_angles" toml:"failed_angles"`
	FailedTorsions int    `json:"failed_torsions" toml:"failed_torsions"`
}

// pattern returns the element pattern of a chain of atoms, read in the
// direction that sorts first, so A-B-C and C-B-A are the same pattern.
func pattern(G *intcoord.Geometry, idx ...int) string {
	fw := symbols(G, idx...)
	rev := make([]int, len(idx))
	for i, v := range idx {
		rev[len(idx)-1-i] = v
	}
	bw := symbols(G, rev...)
	if bw < fw {
		return bw
	}
	return fw
}

type grouper struct {
	order  []string
	values map[string][]float64
}

func newGrouper() *grouper {
	return &grouper{values: make(map[string][]float64)}
}

func (g *grouper) add(pattern string, v float64) {
	if _, ok := g.values[pattern]; !ok {
		g.order = append(g.order, pattern)
	}
	g.values[pattern] = append(g.values[pattern], v)
}

func (g *grouper) stats() []Stat {
	sort.Strings(g.order)
	ret := make([]Stat, 0, len(g.order))
	for _, p := range g.order {
		x := g.values[p]
		mean, std := stat.MeanStdDev(x, nil)
		if len(x) < 2 {
			std = 0
		}
		ret = append(ret, Stat{Pattern: p, N: len(x), Mean: mean, StdDev: std, Min: floats.Min(x), Max: floats.Max(x)})
	}
	return ret
}

// Summarize computes the statistics of A, grouped by element pattern.
// Angles and torsions that could not be computed are only counted.
func Summarize(A *intcoord.Analysis) *Summary {
	G := A.Geometry
	s := &Summary{Atoms: G.Len(), Components: len(topo.ConnectedComponents(A.Graph))}
	b := newGrouper()
	for _, v := range A.Bonds {
		b.add(pattern(G, v.I, v.J), v.Dist)
	}
	a := newGrouper()
	for _, v := range A.Angles {
		if v.Err != nil {
			s.FailedAngles++
			continue
		}
		a.add(pattern(G, v.I, v.J, v.K), v.Deg())
	}
	t := newGrouper()
	for _, v := range A.Torsions {
		if v.Err != nil {
			s.FailedTorsions++
			continue
		}
		t.add(pattern(G, v.I, v.J, v.K, v.L), math.Abs(v.Value))
	}
	s.Bonds, s.Angles, s.Torsions = b.stats(), a.stats(), t.stats()
	return s
}

// WriteSummary writes s as a text table.
func WriteSummary(w io.Writer, s *Summary) error {
	e := &errWriter{w: w}
	e.printf("%d atom(s), %d fragment(s)\n", s.Atoms, s.Components)
	section := func(title string, stats []Stat) {
		e.printf("%s\n", title)
		e.printf("%-12s %5s %10s %10s %10s %10s\n", "pattern", "n", "mean", "stddev", "min", "max")
		for _, v := range stats {
			e.printf("%-12s %5d %10.3f %10.3f %10.3f %10.3f\n", v.Pattern, v.N, v.Mean, v.StdDev, v.Min, v.Max)
		}
		e.printf("\n")
	}
	section("bonds (Angstrom)", s.Bonds)
	section("angles (degrees)", s.Angles)
	section("torsions (absolute value, degrees)", s.Torsions)
	if s.FailedAngles+s.FailedTorsions > 0 {
		e.printf("%d angle(s) and %d torsion(s) could not be computed\n", s.FailedAngles, s.FailedTorsions)
	}
	return e.err
}
