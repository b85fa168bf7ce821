/*
 * main_test.go, part of intcoord.
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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rmera/intcoord"
	"github.com/rmera/intcoord/report"
	"github.com/rmera/intcoord/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethaneFile = "../../testdata/ethane.xyz"

const water = `3
water
O 0.000 0.000 0.000
H 0.957 0.000 0.000
H -0.240 0.927 0.000
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-format", "json"))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, n := range []string{"bonds", "angles", "torsions", "analyze", "plot", "watch"} {
		assert.True(t, names[n], "missing subcommand %s", n)
	}
	for _, f := range []string{"config", "format", "bond-factor", "lenient", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(f), "missing flag %s", f)
	}
}

func TestSectionCommands(t *testing.T) {
	out, err := execute(t, "bonds", ethaneFile)
	require.NoError(t, err)
	assert.Contains(t, out, "7 bond(s) found")
	assert.NotContains(t, out, "angle(s)")

	out, err = execute(t, "angles", ethaneFile)
	require.NoError(t, err)
	assert.Contains(t, out, "12 angle(s) found")

	out, err = execute(t, "torsions", ethaneFile)
	require.NoError(t, err)
	assert.Contains(t, out, "9 torsion(s) found")
}

func TestStructuredOutput(t *testing.T) {
	out, err := execute(t, "angles", "-f", "json", ethaneFile)
	require.NoError(t, err)
	var d report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Angles, 12)
	assert.Empty(t, d.Bonds)
	assert.Equal(t, "ethane, staggered", d.Comment)

	out, err = execute(t, "torsions", "--format", "TOML", ethaneFile)
	require.NoError(t, err)
	d = report.Document{}
	require.NoError(t, toml.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Torsions, 9)

	out, err = execute(t, "bonds", "-f", "dot", ethaneFile)
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, " -- "))
}

func TestAnalyze(t *testing.T) {
	out, err := execute(t, "analyze", ethaneFile)
	require.NoError(t, err)
	for _, s := range []string{"initial geometry", "7 bond(s)", "12 angle(s)", "9 torsion(s)"} {
		assert.Contains(t, out, s)
	}
	out, err = execute(t, "analyze", "--no-geometry", ethaneFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "initial geometry")

	out, err = execute(t, "analyze", "--summary", "-f", "json", ethaneFile)
	require.NoError(t, err)
	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 8, s.Atoms)
	require.Len(t, s.Torsions, 1)
	assert.Equal(t, 9, s.Torsions[0].N)

	_, err = execute(t, "analyze", "--summary", "-f", "dot", ethaneFile)
	assert.Error(t, err)
}

func TestBondFactor(t *testing.T) {
	//with a tiny factor nothing is bonded.
	out, err := execute(t, "bonds", "--bond-factor", "0.5", ethaneFile)
	require.NoError(t, err)
	assert.Contains(t, out, "0 bond(s) found")

	_, err = execute(t, "bonds", "--bond-factor", "-1", ethaneFile)
	assert.Error(t, err)
}

func TestInputErrors(t *testing.T) {
	unknown := writeFile(t, "unknown.xyz", "2\n\nC 0 0 0\nXx 1.5 0 0\n")
	_, err := execute(t, "bonds", unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, intcoord.ErrUnknownElement))

	broken := writeFile(t, "broken.xyz", strings.Replace(water, "0.927", "0.9.27", 1))
	_, err = execute(t, "angles", broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xyz.ErrMalformed))

	out, err := execute(t, "angles", "--lenient", broken)
	require.NoError(t, err)
	assert.Contains(t, out, "1 angle(s) found")

	_, err = execute(t, "bonds", filepath.Join(t.TempDir(), "nope.xyz"))
	assert.Error(t, err)

	_, err = execute(t, "bonds")
	assert.Error(t, err)

	_, err = execute(t, "bonds", "-f", "yaml", ethaneFile)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "intcoord.toml", "[output]\nformat = \"json\"\n")
	out, err := execute(t, "bonds", "--config", cfg, ethaneFile)
	require.NoError(t, err)
	var d report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Bonds, 7)

	//flags win over the file.
	out, err = execute(t, "bonds", "--config", cfg, "-f", "text", ethaneFile)
	require.NoError(t, err)
	assert.Contains(t, out, "7 bond(s) found")

	_, err = execute(t, "bonds", "--config", filepath.Join(t.TempDir(), "missing.toml"), ethaneFile)
	assert.Error(t, err)
}

func TestPlot(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "ethane")
	out, err := execute(t, "plot", "--prefix", prefix, ethaneFile)
	require.NoError(t, err)
	for _, s := range []string{"_angles.png", "_torsions.png"} {
		name := prefix + s
		assert.Contains(t, out, name)
		info, err := os.Stat(name)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
	//water has no torsions, only the angle plot is written.
	w := writeFile(t, "water.xyz", water)
	prefix = filepath.Join(t.TempDir(), "water")
	_, err = execute(t, "plot", "--prefix", prefix, "--ext", "svg", w)
	require.NoError(t, err)
	assert.FileExists(t, prefix+"_angles.svg")
	assert.NoFileExists(t, prefix+"_torsions.svg")
}

func TestPlotPrefix(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "mol"), plotPrefix(filepath.Join("a", "mol.xyz.zst")))
	assert.Equal(t, "mol", plotPrefix("mol"))
}

// syncBuffer lets the test read what the watcher writes.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatch(t *testing.T) {
	ethane, err := os.ReadFile(ethaneFile)
	require.NoError(t, err)
	name := writeFile(t, "mol.xyz", string(ethane))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd := newRootCmd()
	var out syncBuffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"watch", name})
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "7 bond(s) found")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(name, []byte(water), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "2 bond(s) found")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
