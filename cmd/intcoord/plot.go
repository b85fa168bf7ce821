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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rmera/intcoord/internal/logging"
	"github.com/rmera/intcoord/report"
	"github.com/spf13/cobra"
)

func newPlotCmd(a *app) *cobra.Command {
	var prefix, ext string
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot histograms of the bond angles and torsions",
		Long: "plot writes PREFIX_angles.EXT and PREFIX_torsions.EXT, histograms of the bond angles\n" +
			"and the torsions, in degrees. PREFIX defaults to the name of FILE without extensions.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, _, err := a.analyze(args[0])
			if err != nil {
				return err
			}
			if prefix == "" {
				prefix = plotPrefix(args[0])
			}
			opts := report.PlotOptions{Bins: a.cfg.Plot.Bins, Width: a.cfg.Plot.WidthCm, Height: a.cfg.Plot.HeightCm}
			plots := []struct {
				name   string
				title  string
				values []float64
			}{
				{"angles", "Bond angles", report.AngleValues(A.Angles)},
				{"torsions", "Torsions", report.TorsionValues(A.Torsions)},
			}
			for _, p := range plots {
				if len(p.values) == 0 {
					a.log.Warn("nothing to plot", logging.String("plot", p.name))
					continue
				}
				name := prefix + "_" + p.name + "." + strings.TrimPrefix(ext, ".")
				if err := report.Histogram(p.values, p.title, "degrees", opts, name); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "prefix for the plot files")
	cmd.Flags().StringVar(&ext, "ext", "png", "plot file format (png, svg, pdf, eps)")
	return cmd
}

// plotPrefix removes every extension from name, so mol.xyz.zst gives mol.
func plotPrefix(name string) string {
	dir, base := filepath.Split(name)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return filepath.Join(dir, base)
}
