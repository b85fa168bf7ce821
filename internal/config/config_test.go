/*
 * config_test.go, part of intcoord.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v, "", t.TempDir()))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.BondFactor)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.True(t, cfg.XYZ.Strict)
	assert.Equal(t, 36, cfg.Plot.Bins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "intcoord.toml")
	content := "bond_factor = 1.3\n[output]\nformat = \"JSON\"\n[xyz]\nstrict = false\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	v := viper.New()
	require.NoError(t, Init(v, name, ""))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 1.3, cfg.BondFactor)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.False(t, cfg.XYZ.Strict)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestMissingExplicitFile(t *testing.T) {
	v := viper.New()
	assert.Error(t, Init(v, filepath.Join(t.TempDir(), "nothere.yaml"), ""))
}

func TestEnv(t *testing.T) {
	t.Setenv("INTCOORD_OUTPUT_FORMAT", "toml")
	t.Setenv("INTCOORD_PLOT_BINS", "10")
	v := viper.New()
	require.NoError(t, Init(v, "", t.TempDir()))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, cfg.Output.Format)
	assert.Equal(t, 10, cfg.Plot.Bins)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	good, err := Load(v)
	require.NoError(t, err)

	bad := good
	bad.BondFactor = 0
	assert.Error(t, bad.Validate())

	bad = good
	bad.Output.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Plot.Bins = 0
	assert.Error(t, bad.Validate())

	bad = good
	bad.Log.Level = "loud"
	assert.Error(t, bad.Validate())
}
