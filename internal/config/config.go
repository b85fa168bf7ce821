/*
 * config.go, part of intcoord.
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

// Package config holds the runtime configuration of the intcoord command.
// Values come from .intcoord.{yaml,toml}, INTCOORD_* environment variables
// and command line flags, through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/rmera/intcoord"
	"github.com/rmera/intcoord/internal/logging"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatDOT  = "dot"
)

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// XYZConfig controls the geometry reader.
type XYZConfig struct {
	Strict bool `mapstructure:"strict"`
}

// PlotConfig controls the histograms of the plot command.
type PlotConfig struct {
	Bins     int     `mapstructure:"bins"`
	WidthCm  float64 `mapstructure:"width_cm"`
	HeightCm float64 `mapstructure:"height_cm"`
}

// Config holds all the runtime configuration.
type Config struct {
	BondFactor float64        `mapstructure:"bond_factor"`
	Log        logging.Config `mapstructure:"log"`
	Output     OutputConfig   `mapstructure:"output"`
	XYZ        XYZConfig      `mapstructure:"xyz"`
	Plot       PlotConfig     `mapstructure:"plot"`
}

// SetDefaults registers the default values in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("bond_factor", intcoord.BondFactor)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", FormatText)
	v.SetDefault("xyz.strict", true)
	v.SetDefault("plot.bins", 36)
	v.SetDefault("plot.width_cm", 12.0)
	v.SetDefault("plot.height_cm", 9.0)
}

// Init prepares v to read the configuration file cfgFile or, if cfgFile is empty,
// .intcoord.yaml or .intcoord.toml in the current or home directory, and the
// INTCOORD_* environment variables (e.g. INTCOORD_OUTPUT_FORMAT).
func Init(v *viper.Viper, cfgFile, home string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".intcoord")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("INTCOORD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		//A missing default file is fine, but not a missing or broken explicit one.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load unmarshals and validates the configuration in v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	return cfg, cfg.Validate()
}

// Validate checks that the values make sense.
func (c Config) Validate() error {
	if c.BondFactor <= 0 {
		return fmt.Errorf("config: bond_factor must be positive, got %g", c.BondFactor)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatTOML, FormatDOT:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if c.Plot.Bins < 1 {
		return fmt.Errorf("config: plot.bins must be at least 1, got %d", c.Plot.Bins)
	}
	if c.Plot.WidthCm <= 0 || c.Plot.HeightCm <= 0 {
		return fmt.Errorf("config: plot dimensions must be positive")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
