/*
 * analyze.go, part of intcoord.
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

	"github.com/rmera/intcoord/internal/config"
	"github.com/rmera/intcoord/report"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var summary, noGeometry bool
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report the geometry, bonds, angles and torsions",
		Long: "analyze prints the geometry and all its internal coordinates. With --summary,\n" +
			"it prints statistics by element pattern (e.g. all the C-H bonds) instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, info, err := a.analyze(args[0])
			if err != nil {
				return err
			}
			if !summary {
				s := report.All
				s.Geometry = !noGeometry
				return a.render(cmd.OutOrStdout(), A, info, s)
			}
			sum := report.Summarize(A)
			w := cmd.OutOrStdout()
			switch a.cfg.Output.Format {
			case config.FormatJSON:
				return report.WriteJSON(w, sum)
			case config.FormatTOML:
				return report.WriteTOML(w, sum)
			case config.FormatText:
				return report.WriteSummary(w, sum)
			}
			return fmt.Errorf("the summary can't be written as %s", a.cfg.Output.Format)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print statistics instead of the full listing")
	cmd.Flags().BoolVar(&noGeometry, "no-geometry", false, "don't print the atoms and their coordinates")
	return cmd
}
