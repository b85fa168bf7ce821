/*
 * plot.go, part of intcoord.
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
	"fmt"

	"github.com/rmera/intcoord"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions sets the look of a histogram. Sizes are in cm.
type PlotOptions struct {
	Bins   int
	Width  float64
	Height float64
}

// Histogram plots a histogram of values to filename. The format is
// taken from the extension of filename (png, svg, pdf, eps...).
func Histogram(values []float64, title, xlabel string, opts PlotOptions, filename string) error {
	if len(values) == 0 {
		return fmt.Errorf("Histogram: no values to plot for %q", title)
	}
	if opts.Bins <= 0 || opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("Histogram: invalid plot options %+v", opts)
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "count"
	p.Add(plotter.NewGrid())
	h, err := plotter.NewHist(plotter.Values(values), opts.Bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(vg.Length(opts.Width)*vg.Centimeter, vg.Length(opts.Height)*vg.Centimeter, filename)
}

// AngleValues returns the angles that could be computed, in degrees.
func AngleValues(angles []intcoord.Angle) []float64 {
	ret := make([]float64, 0, len(angles))
	for _, a := range angles {
		if a.Err == nil {
			ret = append(ret, a.Deg())
		}
	}
	return ret
}

// TorsionValues returns the torsions that could be computed, in degrees.
func TorsionValues(torsions []intcoord.Torsion) []float64 {
	ret := make([]float64, 0, len(torsions))
	for _, t := range torsions {
		if t.Err == nil {
			ret = append(ret, t.Value)
		}
	}
	return ret
}
