/*
 * root.go, part of intcoord.
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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rmera/intcoord"
	"github.com/rmera/intcoord/internal/config"
	"github.com/rmera/intcoord/internal/logging"
	"github.com/rmera/intcoord/report"
	"github.com/rmera/intcoord/xyz"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs. It is filled by the
// PersistentPreRunE of the root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.NewNop()}
	cmd := &cobra.Command{
		Use:   "intcoord",
		Short: "Internal coordinates from Cartesian geometries",
		Long: "intcoord reads a molecular geometry in XYZ format, assigns bonds from covalent radii,\n" +
			"and reports the bonds, bond angles and torsions (dihedral angles) of the molecule.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .intcoord.yaml or .intcoord.toml)")
	pf.StringP("format", "f", config.FormatText, "output format (text, json, toml, dot)")
	pf.Float64("bond-factor", intcoord.BondFactor, "two atoms are bonded if closer than this times the sum of their covalent radii")
	pf.Bool("lenient", false, "read unparsable coordinates as 0 instead of failing")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("log-format", "console", "log format (console, json)")

	cmd.AddCommand(
		newSectionCmd(a, "bonds", "List the bonds", report.Sections{Bonds: true}),
		newSectionCmd(a, "angles", "List the bond angles", report.Sections{Angles: true}),
		newSectionCmd(a, "torsions", "List the torsions", report.Sections{Torsions: true}),
		newAnalyzeCmd(a),
		newPlotCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

// init loads the configuration, with the flags taking precedence, and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	home, _ := os.UserHomeDir()
	if err := config.Init(a.v, a.cfgFile, home); err != nil {
		return err
	}
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"output.format": "format",
		"bond_factor":   "bond-factor",
		"log.format":    "log-format",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	if lenient, _ := flags.GetBool("lenient"); lenient {
		a.v.Set("xyz.strict", false)
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		a.v.Set("log.level", "debug")
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.log = log.Named("intcoord")
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("configuration read", logging.String("file", used))
	}
	return nil
}

// analyze reads the geometry in name and derives its internal coordinates.
// Reader warnings and failed angles or torsions are logged, not returned.
func (a *app) analyze(name string) (*intcoord.Analysis, *xyz.Info, error) {
	log := a.log.With(logging.String("file", name))
	G, info, err := xyz.ReadFile(name, xyz.Options{Lenient: !a.cfg.XYZ.Strict})
	if err != nil {
		return nil, nil, err
	}
	for _, w := range info.Warnings {
		log.Warn("geometry read with problems", logging.String("warning", w))
	}
	log.Debug("geometry read", logging.Int("atoms", G.Len()), logging.String("comment", info.Comment))
	A, err := intcoord.AnalyzeWithFactor(G, a.cfg.BondFactor)
	if err != nil {
		var uerr *intcoord.UnknownElementError
		if errors.As(err, &uerr) {
			log.Error("no covalent radius", logging.String("symbol", uerr.Symbol), logging.Int("atom", uerr.Index+1))
		}
		return nil, nil, err
	}
	for _, err := range A.Failures() {
		var derr *intcoord.DegenerateGeometryError
		if errors.As(err, &derr) {
			log.Warn("internal coordinate could not be computed", logging.Any("atoms", oneBased(derr.Atoms)), logging.String("reason", derr.Reason))
		}
	}
	log.Debug("analysis done", logging.Int("bonds", len(A.Bonds)), logging.Int("angles", len(A.Angles)), logging.Int("torsions", len(A.Torsions)))
	return A, info, nil
}

func oneBased(idx []int) []int {
	ret := make([]int, len(idx))
	for i, v := range idx {
		ret[i] = v + 1
	}
	return ret
}

// render writes the selected sections of A in the configured format.
func (a *app) render(w io.Writer, A *intcoord.Analysis, info *xyz.Info, s report.Sections) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		return report.WriteJSON(w, report.NewDocument(A, s, info.Comment))
	case config.FormatTOML:
		return report.WriteTOML(w, report.NewDocument(A, s, info.Comment))
	case config.FormatDOT:
		return report.WriteDOT(w, A.Graph, "molecule")
	case config.FormatText:
		return report.WriteText(w, A, s)
	}
	return fmt.Errorf("unknown output format %q", a.cfg.Output.Format)
}

func newSectionCmd(a *app, use, short string, s report.Sections) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, info, err := a.analyze(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), A, info, s)
		},
	}
}
