/*
 * watch.go, part of intcoord.
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
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rmera/intcoord/internal/logging"
	"github.com/rmera/intcoord/report"
	"github.com/spf13/cobra"
)

// Editors often write a file in several steps, so changes are
// only acted on after this much quiet time.
const debounce = 100 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Analyze FILE again every time it changes",
		Long: "watch prints the bonds, angles and torsions of FILE, and prints them again each time\n" +
			"FILE is written, until interrupted. Errors in a version of FILE are logged, and watching goes on.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

// watch analyzes name once, and then after every change, until ctx is done.
func (a *app) watch(ctx context.Context, name string, w io.Writer) error {
	target, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	//The directory, not the file, is watched, so files replaced by
	//a rename are still followed.
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log := a.log.With(logging.String("file", name))
	run := func() {
		A, info, err := a.analyze(name)
		if err != nil {
			log.Error("analysis failed", logging.Err(err))
			return
		}
		if err := a.render(w, A, info, report.Sections{Bonds: true, Angles: true, Torsions: true}); err != nil {
			log.Error("output failed", logging.Err(err))
		}
	}
	run()
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if abs, _ := filepath.Abs(event.Name); abs != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}
		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				log.Debug("file changed")
				run()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", logging.Err(err))
		}
	}
}
